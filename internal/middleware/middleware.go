// Package middleware implements the routed handler unit that the
// Application dispatches.
package middleware

import (
	"fmt"
	"regexp"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

var _ types.Middleware = (*Middleware)(nil)

// Middleware wraps a handler with an optional route pattern.
type Middleware struct {
	handler types.HandlerFunc

	route    string
	hasRoute bool

	// compiled caches the regexp for route; compileErr is kept so an
	// invalid pattern is only compiled once.
	compiled   *regexp.Regexp
	compileErr error
}

// New returns a Middleware that matches every route.
func New(handler types.HandlerFunc) *Middleware {
	return &Middleware{handler: handler}
}

// NewRouted returns a Middleware scoped to route.
func NewRouted(route string, handler types.HandlerFunc) *Middleware {
	m := New(handler)
	m.SetRoute(route)
	return m
}

// SetRoute assigns or replaces the route pattern.
func (m *Middleware) SetRoute(pattern string) {
	m.route = pattern
	m.hasRoute = true
	m.compiled = nil
	m.compileErr = nil
}

// Route returns the pattern and whether one was set.
func (m *Middleware) Route() (string, bool) {
	return m.route, m.hasRoute
}

// MatchesRoute reports whether m runs for route. Without a pattern it always
// matches. With useRegex the pattern must match at the start of route but may
// leave a suffix unmatched, so "queue( \S+)?" accepts "queue" and
// "queue shuffle" but not "dequeue". An invalid pattern never matches.
// Without useRegex the pattern must equal route.
func (m *Middleware) MatchesRoute(route string, useRegex bool) bool {
	if !m.hasRoute {
		return true
	}
	if !useRegex {
		return m.route == route
	}

	if m.compiled == nil && m.compileErr == nil {
		m.compiled, m.compileErr = regexp.Compile(`^(?:` + m.route + `)`)
	}
	if m.compileErr != nil {
		return false
	}
	return m.compiled.MatchString(route)
}

// Run invokes the handler. A panic in the handler is returned as an
// ErrPanic fault so it can be routed like any other.
func (m *Middleware) Run(c *types.Call) (sig types.Signal, err error) {
	defer func() {
		if r := recover(); r != nil {
			sig = types.Exit
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", types.ErrPanic, e)
				return
			}
			err = types.ErrPanic.Wrap("%v", r)
		}
	}()

	if m.handler == nil {
		return types.Continue, nil
	}
	return m.handler(c)
}
