// Package input implements the argument parser and the Input view that
// middleware read options, arguments and environment from.
package input

import (
	"github.com/mesh-intelligence/trellis/pkg/types"
)

var _ types.Input = (*Input)(nil)

// Input is a lazily parsed view of an argument vector and an environment.
// It is not safe for concurrent use; dispatch is single-threaded.
type Input struct {
	argv []string
	env  map[string]string

	argumentNames map[string]int

	recognizeCommand    bool
	recognizeSubcommand bool

	// parsed is nil until the first lookup and after any recognition change.
	parsed *types.ParsedArguments
}

// New captures argv and env. argv must hold at least the application name.
func New(argv []string, env map[string]string) (*Input, error) {
	if len(argv) == 0 {
		return nil, types.ErrEmptyArgumentVector
	}

	captured := make(map[string]string, len(env))
	for k, v := range env {
		captured[k] = v
	}

	return &Input{
		argv:          append([]string{}, argv...),
		env:           captured,
		argumentNames: make(map[string]int),
	}, nil
}

// members returns the memoized parse, parsing first if needed.
func (in *Input) members() *types.ParsedArguments {
	if in.parsed != nil {
		return in.parsed
	}
	// argv is never empty after New.
	p, _ := Parse(in.argv, in.recognizeCommand, in.recognizeSubcommand)
	in.parsed = &p
	return in.parsed
}

// Parsed returns a copy of the memoized parse.
func (in *Input) Parsed() types.ParsedArguments {
	return clone(*in.members())
}

func (in *Input) ApplicationName() string {
	return in.members().ApplicationName
}

// RecognizeCommand toggles command recognition and drops the memoized parse.
func (in *Input) RecognizeCommand(on bool) {
	in.recognizeCommand = on
	in.parsed = nil
}

// RecognizeSubcommand toggles subcommand recognition and drops the memoized
// parse. Turning it on turns on command recognition too.
func (in *Input) RecognizeSubcommand(on bool) {
	if on {
		in.recognizeCommand = true
	}
	in.recognizeSubcommand = on
	in.parsed = nil
}

func (in *Input) HasCommand() bool {
	if !in.recognizeCommand {
		return false
	}
	return in.members().CommandName != nil
}

func (in *Input) HasSubcommand() bool {
	if !in.recognizeSubcommand {
		return false
	}
	return in.members().SubcommandName != nil
}

func (in *Input) CommandName() (string, error) {
	if !in.HasCommand() {
		return "", types.ErrNameNotDefined.Wrap("command name")
	}
	return *in.members().CommandName, nil
}

func (in *Input) SubcommandName() (string, error) {
	if !in.HasSubcommand() {
		return "", types.ErrNameNotDefined.Wrap("subcommand name")
	}
	return *in.members().SubcommandName, nil
}

// Option resolves name with subcommand options first, then command, then
// application options.
func (in *Input) Option(name string) (any, error) {
	m := in.members()
	for _, bucket := range []types.Options{m.SubcommandOptions, m.CommandOptions, m.ApplicationOptions} {
		if v, ok := bucket[name]; ok {
			return v, nil
		}
	}
	return nil, types.ErrOptionNotFound.Wrap("%q", name)
}

func (in *Input) ApplicationOption(name string) (any, error) {
	return lookup(in.members().ApplicationOptions, "application", name)
}

func (in *Input) CommandOption(name string) (any, error) {
	return lookup(in.members().CommandOptions, "command", name)
}

func (in *Input) SubcommandOption(name string) (any, error) {
	return lookup(in.members().SubcommandOptions, "subcommand", name)
}

func lookup(bucket types.Options, scope, name string) (any, error) {
	v, ok := bucket[name]
	if !ok {
		return nil, types.ErrOptionNotFound.Wrap("%s option %q", scope, name)
	}
	return v, nil
}

func (in *Input) HasOption(name string) bool {
	return in.HasSubcommandOption(name) || in.HasCommandOption(name) || in.HasApplicationOption(name)
}

func (in *Input) HasApplicationOption(name string) bool {
	_, ok := in.members().ApplicationOptions[name]
	return ok
}

func (in *Input) HasCommandOption(name string) bool {
	_, ok := in.members().CommandOptions[name]
	return ok
}

func (in *Input) HasSubcommandOption(name string) bool {
	_, ok := in.members().SubcommandOptions[name]
	return ok
}

// Argument looks up a positional argument by index (int) or by a name
// assigned with NameArgument (string).
func (in *Input) Argument(key any) (string, error) {
	switch k := key.(type) {
	case int:
		return in.ArgumentByIndex(k)
	case string:
		return in.ArgumentByName(k)
	default:
		return "", types.ErrUnsupportedKeyType.Wrap("got %T", key)
	}
}

func (in *Input) ArgumentByIndex(index int) (string, error) {
	args := in.members().Arguments
	if index < 0 || index >= len(args) {
		return "", types.ErrIndexOutOfBounds.Wrap("index %d", index)
	}
	return args[index], nil
}

func (in *Input) ArgumentByName(name string) (string, error) {
	index, ok := in.argumentNames[name]
	if !ok {
		return "", types.ErrNameNotDefined.Wrap("argument %q", name)
	}
	return in.ArgumentByIndex(index)
}

// HasArgument reports whether Argument(key) would succeed.
func (in *Input) HasArgument(key any) bool {
	_, err := in.Argument(key)
	return err == nil
}

// Arguments returns a copy of the positional arguments.
func (in *Input) Arguments() []string {
	return append([]string{}, in.members().Arguments...)
}

// NameArgument aliases the positional argument at index. The alias survives
// re-parsing; it resolves against whatever sits at index at lookup time.
func (in *Input) NameArgument(index int, name string) {
	in.argumentNames[name] = index
}

func (in *Input) Env(name string) (string, error) {
	v, ok := in.env[name]
	if !ok {
		return "", types.ErrEnvNotFound.Wrap("%q", name)
	}
	return v, nil
}

func (in *Input) HasEnv(name string) bool {
	_, ok := in.env[name]
	return ok
}
