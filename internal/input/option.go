package input

import (
	"strings"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

// endOfOptions stops option parsing; every later token is a non-option token.
const endOfOptions = "--"

// optionPair is one name/value produced by an option token. A short cluster
// such as -abc yields one pair per character.
type optionPair struct {
	name  string
	value any
	short bool
}

// parseOptionToken reports whether token has option syntax (-a, -abc, --foo,
// --foo=bar) and returns the pairs it carries.
func parseOptionToken(token string) ([]optionPair, bool) {
	if len(token) < 2 || token[0] != '-' {
		return nil, false
	}

	if token[1] != '-' {
		var pairs []optionPair
		for _, r := range token[1:] {
			pairs = append(pairs, optionPair{name: string(r), value: true, short: true})
		}
		return pairs, true
	}

	// Only the first '=' separates the name; the rest belongs to the value.
	name, value, hasValue := strings.Cut(token[2:], "=")
	if name == "" {
		return nil, false
	}
	if !hasValue {
		return []optionPair{{name: name, value: true}}, true
	}
	return []optionPair{{name: name, value: value}}, true
}

// register stores p in bucket. Repeated short names count up: true, 2, 3...
func register(bucket types.Options, p optionPair) {
	if p.short {
		switch v := bucket[p.name].(type) {
		case bool:
			if v {
				bucket[p.name] = 2
				return
			}
		case int:
			bucket[p.name] = v + 1
			return
		}
	}
	bucket[p.name] = p.value
}
