package types

// Call is the argument handed to every middleware invocation. Input, Output
// and Shared are the same values for the whole run, so mutations made by one
// middleware are visible to the next.
type Call struct {
	Input  Input
	Output Output

	// App describes the running application.
	App AppContext

	// Shared is the value registered with RegisterMiddlewareParameter, or nil.
	Shared any

	// Fault is the error being handled. It is nil during normal dispatch.
	Fault error
}

// HandlerFunc is a middleware callback. Returning a non-nil error raises a
// fault and diverts dispatch to the error queue.
type HandlerFunc func(c *Call) (Signal, error)

// Middleware is a handler with an optional route filter.
type Middleware interface {
	// SetRoute assigns or replaces the route pattern.
	SetRoute(pattern string)

	// Route returns the pattern and whether one was set.
	Route() (string, bool)

	// MatchesRoute reports whether the middleware should run for route. A
	// middleware without a pattern matches every route. With useRegex the
	// pattern is a regular expression matched at the start of route;
	// otherwise it must equal route exactly.
	MatchesRoute(route string, useRegex bool) bool

	// Run invokes the handler.
	Run(c *Call) (Signal, error)
}
