package app

import (
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/mod/semver"

	"github.com/mesh-intelligence/trellis/internal/input"
	"github.com/mesh-intelligence/trellis/internal/output"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

// runtimeVersion reports the running Go version; tests replace it.
var runtimeVersion = runtime.Version

// Create validates cfg, checks the Go runtime against cfg.MinimumRuntime,
// and returns an Application over a fresh Input and a stdout Output.
func Create(cfg types.Config, opts ...Option) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := CheckRuntime(cfg.Name, cfg.MinimumRuntime); err != nil {
		return nil, err
	}

	in, err := input.New(cfg.Args, cfg.Env)
	if err != nil {
		return nil, err
	}
	return New(cfg.Name, cfg.Version, in, output.New(), opts...), nil
}

// CheckRuntime returns ErrUnsupportedRuntime when the running Go version is
// older than minimum. An empty minimum, or a development toolchain whose
// version does not parse, passes.
func CheckRuntime(name, minimum string) error {
	if minimum == "" {
		return nil
	}

	want := toSemver(minimum)
	if !semver.IsValid(want) {
		return types.ErrInvalidArgument.Wrap("minimum runtime %q", minimum)
	}

	found := runtimeVersion()
	have := toSemver(found)
	if !semver.IsValid(have) {
		return nil
	}

	if semver.Compare(have, want) < 0 {
		return types.ErrUnsupportedRuntime.Wrap("%s: requires %s or newer, %s found", name, minimum, found)
	}
	return nil
}

// toSemver turns "go1.22.3", "go1.23rc1" or "1.22" into "v1.22.3", "v1.23"
// and "v1.22". Anything else yields a string semver rejects.
func toSemver(v string) string {
	v = strings.TrimPrefix(v, "go")
	if i := strings.IndexFunc(v, func(r rune) bool { return r != '.' && !unicode.IsDigit(r) }); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimSuffix(v, ".")
	if v == "" {
		return ""
	}
	return "v" + v
}
