package types

// Command groups the metadata and middleware of one application command.
type Command struct {
	Name        string
	Description string
	Usage       string

	// HasSubcommand turns on subcommand recognition before the command's
	// middleware run.
	HasSubcommand bool

	// Middleware run in order. Any without a route are scoped to Name.
	Middleware []Middleware
}
