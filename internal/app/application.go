// Package app implements the Application: the middleware queues, the
// route-matching dispatcher with its error-queue fallback, the command
// metadata registry, and the built-in --help and --version middleware.
package app

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/trellis/internal/middleware"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

var _ types.Application = (*Application)(nil)

// Application owns the Input, the Output and two ordered middleware queues.
// It is not safe for concurrent use.
type Application struct {
	name    string
	version string

	input  types.Input
	output types.Output

	queue      []types.Middleware
	errorQueue []types.Middleware

	shared    any
	hasShared bool

	exitCode int
	state    State

	commandDescriptions map[string]string
	commandUsages       map[string]string

	logger          *slog.Logger
	swallowUnrouted bool
	builtins        bool
}

// Option configures an Application.
type Option func(*Application)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(a *Application) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithSwallowUnrouted drops the implicit catch-all that re-raises faults no
// error middleware stopped. Run then returns nil for every routed or
// unrouted fault.
func WithSwallowUnrouted() Option {
	return func(a *Application) { a.swallowUnrouted = true }
}

// WithoutBuiltins skips registration of the --help, --version and usage
// error middleware.
func WithoutBuiltins() Option {
	return func(a *Application) { a.builtins = false }
}

// New returns an Application in the Idle state. Unless WithoutBuiltins is
// given, the --help and --version middleware are queued first and the
// usage error middleware are queued in the error queue.
func New(name, version string, in types.Input, out types.Output, opts ...Option) *Application {
	a := &Application{
		name:                name,
		version:             version,
		input:               in,
		output:              out,
		commandDescriptions: make(map[string]string),
		commandUsages:       make(map[string]string),
		logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		builtins:            true,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.builtins {
		registerBuiltins(a)
	}
	return a
}

func (a *Application) Name() string         { return a.name }
func (a *Application) Version() string      { return a.version }
func (a *Application) Input() types.Input   { return a.input }
func (a *Application) Output() types.Output { return a.output }
func (a *Application) State() State         { return a.state }
func (a *Application) ExitCode() int        { return a.exitCode }

// SetExitCode overrides the exit code. Middleware may call it at any point
// of dispatch, including after a fault set it to 1.
func (a *Application) SetExitCode(code int) {
	a.exitCode = code
}

// PushMiddleware appends m to the normal queue.
func (a *Application) PushMiddleware(m types.Middleware) {
	a.queue = append(a.queue, m)
}

// UnshiftMiddleware prepends m so it runs before everything queued so far.
func (a *Application) UnshiftMiddleware(m types.Middleware) {
	a.queue = append([]types.Middleware{m}, a.queue...)
}

// PushErrorMiddleware appends m to the error queue.
func (a *Application) PushErrorMiddleware(m types.Middleware) {
	a.errorQueue = append(a.errorQueue, m)
}

// UnshiftErrorMiddleware prepends m to the error queue.
func (a *Application) UnshiftErrorMiddleware(m types.Middleware) {
	a.errorQueue = append([]types.Middleware{m}, a.errorQueue...)
}

// RegisterMiddlewareParameter sets the value every middleware receives as
// Call.Shared. Pass a pointer to let middleware mutate it in place.
func (a *Application) RegisterMiddlewareParameter(v any) error {
	if a.hasShared {
		return types.ErrParameterRegistered
	}
	a.shared = v
	a.hasShared = true
	return nil
}

// Run computes the route once, walks the normal queue, and on a fault sets
// the exit code to 1 and walks the error queue routed by the fault kind.
//
// Run returns the fault only when it was re-raised by an error middleware;
// by default a trailing catch-all re-raises any fault that no error
// middleware stopped with Exit.
func (a *Application) Run() error {
	if a.state == Dispatching || a.state == ErrorDispatching {
		return types.ErrReentrantRun
	}
	defer func() { a.state = Done }()

	a.state = Dispatching
	route := a.route()
	a.logger.Debug("dispatch", "app", a.name, "route", route)

	queue := append(append([]types.Middleware{}, a.queue...), middleware.New(rejectUnclaimedCommand))
	call := &types.Call{Input: a.input, Output: a.output, App: a, Shared: a.shared}

	fault := a.process(queue, route, call, true)
	if fault == nil {
		return nil
	}

	a.state = ErrorDispatching
	a.SetExitCode(1)
	errorRoute := string(types.KindOf(fault))
	a.logger.Debug("fault", "kind", errorRoute, "error", fault)

	errorQueue := append([]types.Middleware{}, a.errorQueue...)
	if !a.swallowUnrouted {
		errorQueue = append(errorQueue, middleware.New(reraise))
	}

	call.Fault = fault
	return a.process(errorQueue, errorRoute, call, false)
}

// process runs every middleware in queue that matches route until one
// returns Exit or raises a fault, which is returned.
func (a *Application) process(queue []types.Middleware, route string, call *types.Call, useRegex bool) error {
	for i, m := range queue {
		if !m.MatchesRoute(route, useRegex) {
			continue
		}

		sig, err := m.Run(call)
		if err != nil {
			a.logger.Debug("middleware raised", "index", i, "route", route, "error", err)
			return err
		}
		if sig == types.Exit {
			a.logger.Debug("middleware exited", "index", i, "route", route)
			return nil
		}
	}
	return nil
}

// route is "" without a command, the command name otherwise, followed by a
// space and the subcommand name when one is recognised.
func (a *Application) route() string {
	command, err := a.input.CommandName()
	if err != nil {
		return ""
	}
	if sub, err := a.input.SubcommandName(); err == nil {
		return command + " " + sub
	}
	return command
}

// rejectUnclaimedCommand runs after every registered middleware. Reaching it
// with a command means nothing handled that command.
func rejectUnclaimedCommand(c *types.Call) (types.Signal, error) {
	command, err := c.Input.CommandName()
	if err != nil {
		return types.Continue, nil
	}
	return types.Exit, types.ErrInvalidCommand.Wrap("%q", command)
}

func reraise(c *types.Call) (types.Signal, error) {
	return types.Exit, c.Fault
}
