// Package shell is the public entry point of the framework. It exposes
// factories for the Input, Output, Middleware and Application while keeping
// the implementations internal.
//
// Example:
//
//	app, err := shell.Create(types.Config{
//	    Name:    "pocket",
//	    Version: "1.0.0",
//	    Args:    os.Args,
//	    Env:     shell.Environ(),
//	})
//	if err != nil {
//	    return err
//	}
//	app.PushMiddleware(shell.NewMiddleware(func(c *types.Call) (types.Signal, error) {
//	    return types.Exit, c.Output.Write("hello\n")
//	}))
//	if err := app.Run(); err != nil {
//	    return err
//	}
//	os.Exit(app.ExitCode())
package shell

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mesh-intelligence/trellis/internal/app"
	"github.com/mesh-intelligence/trellis/internal/input"
	"github.com/mesh-intelligence/trellis/internal/middleware"
	"github.com/mesh-intelligence/trellis/internal/output"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

// Option configures an Application built by NewApplication or Create.
type Option = app.Option

// WithLogger routes dispatch tracing to l.
func WithLogger(l *slog.Logger) Option { return app.WithLogger(l) }

// WithSwallowUnrouted makes Run return nil for faults no error middleware
// stopped.
func WithSwallowUnrouted() Option { return app.WithSwallowUnrouted() }

// WithoutBuiltins leaves out the --help, --version and usage error middleware.
func WithoutBuiltins() Option { return app.WithoutBuiltins() }

// NewInput captures argv and env. It returns ErrEmptyArgumentVector when argv
// is empty.
func NewInput(argv []string, env map[string]string) (types.Input, error) {
	return input.New(argv, env)
}

// NewOutput returns an Output bound to stdout in append mode.
func NewOutput() types.Output {
	return output.New()
}

// NewOutputTo returns an Output that writes to w until a SetStream call
// selects another target.
func NewOutputTo(w io.Writer) types.Output {
	o := output.New()
	o.SetWriter(w)
	return o
}

// NewMiddleware wraps handler in a Middleware that matches every route.
func NewMiddleware(handler types.HandlerFunc) types.Middleware {
	return middleware.New(handler)
}

// NewRoutedMiddleware wraps handler in a Middleware restricted to route.
func NewRoutedMiddleware(route string, handler types.HandlerFunc) types.Middleware {
	return middleware.NewRouted(route, handler)
}

// NewApplication assembles an Application from an existing Input and Output.
func NewApplication(name, version string, in types.Input, out types.Output, opts ...Option) types.Application {
	return app.New(name, version, in, out, opts...)
}

// Create validates cfg, checks the running Go version against
// cfg.MinimumRuntime, and returns an Application writing to stdout.
func Create(cfg types.Config, opts ...Option) (types.Application, error) {
	a, err := app.Create(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CommandRoute returns the route pattern RegisterCommand scopes a command's
// middleware to.
func CommandRoute(command string) string {
	return app.CommandRoute(command)
}

// NewLogger builds a slog.Logger from a level name and a format ("json" or
// text).
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	return app.NewLogger(level, format, w)
}

// Environ captures the process environment as a map.
func Environ() map[string]string {
	return EnvMap(os.Environ())
}

// EnvMap converts KEY=VALUE pairs to a map. Later pairs win; entries without
// '=' are skipped.
func EnvMap(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}
