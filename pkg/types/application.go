package types

// AppContext is the view of the Application that middleware receive.
type AppContext interface {
	Name() string
	Version() string

	ExitCode() int
	SetExitCode(code int)

	// ApplicationUsage renders the top-level usage text.
	ApplicationUsage() string

	CommandUsage(command string) (string, error)
	CommandDescription(command string) (string, error)
	HasCommandUsage(command string) bool
	HasCommandDescription(command string) bool
}

// Application owns the middleware queues and drives dispatch.
type Application interface {
	AppContext

	Input() Input
	Output() Output

	PushMiddleware(m Middleware)
	UnshiftMiddleware(m Middleware)
	PushErrorMiddleware(m Middleware)
	UnshiftErrorMiddleware(m Middleware)

	// RegisterMiddlewareParameter sets the shared value passed as Call.Shared.
	// It can be called once; a second call returns ErrParameterRegistered.
	RegisterMiddlewareParameter(v any) error

	// RegisterCommand records the command's metadata and queues its middleware.
	RegisterCommand(cmd Command)

	SetCommandUsage(command, usage string)
	SetCommandDescription(command, description string)

	// Run dispatches the middleware queues. It returns a fault only when an
	// error middleware re-raised it.
	Run() error
}
