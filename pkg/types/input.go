package types

// Options maps an option name to its value. Values are bool (flag present),
// int (short flag repeated), or string (--name=value).
type Options map[string]any

// ParsedArguments is the structured view of an argument vector.
type ParsedArguments struct {
	ApplicationName    string
	ApplicationOptions Options

	// CommandName is nil when no command was recognised.
	CommandName    *string
	CommandOptions Options

	// SubcommandName is nil when no subcommand was recognised.
	SubcommandName    *string
	SubcommandOptions Options

	// Arguments holds the positional arguments, never empty strings.
	Arguments []string
}

// Input exposes parsed arguments and the captured environment to middleware.
//
// Lookups parse lazily and memoize the result. Enabling or disabling command
// or subcommand recognition invalidates the memoized parse.
type Input interface {
	// ApplicationName returns the first element of the argument vector.
	ApplicationName() string

	// RecognizeCommand toggles whether the first non-option token is taken
	// as the command name.
	RecognizeCommand(on bool)

	// RecognizeSubcommand toggles subcommand recognition. Turning it on also
	// turns on command recognition.
	RecognizeSubcommand(on bool)

	HasCommand() bool
	HasSubcommand() bool

	// CommandName returns ErrNameNotDefined when no command was recognised.
	CommandName() (string, error)

	// SubcommandName returns ErrNameNotDefined when no subcommand was recognised.
	SubcommandName() (string, error)

	// Option resolves name in subcommand, command, then application scope.
	// Returns ErrOptionNotFound when absent from all three.
	Option(name string) (any, error)
	ApplicationOption(name string) (any, error)
	CommandOption(name string) (any, error)
	SubcommandOption(name string) (any, error)

	HasOption(name string) bool
	HasApplicationOption(name string) bool
	HasCommandOption(name string) bool
	HasSubcommandOption(name string) bool

	// Argument dispatches on the key type: int to ArgumentByIndex, string to
	// ArgumentByName. Any other type returns ErrUnsupportedKeyType.
	Argument(key any) (string, error)

	// ArgumentByIndex returns ErrIndexOutOfBounds for an index outside the
	// positional arguments.
	ArgumentByIndex(index int) (string, error)

	// ArgumentByName resolves a name assigned with NameArgument. Returns
	// ErrNameNotDefined for an unknown name.
	ArgumentByName(name string) (string, error)

	HasArgument(key any) bool
	Arguments() []string

	// NameArgument aliases the positional argument at index as name.
	NameArgument(index int, name string)

	// Env returns ErrEnvNotFound when name is absent from the environment.
	Env(name string) (string, error)
	HasEnv(name string) bool

	// Parsed returns a copy of the memoized parse.
	Parsed() ParsedArguments
}
