package middleware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

func noop(c *types.Call) (types.Signal, error) { return types.Continue, nil }

func TestMatchesRoute_NoPatternMatchesEverything(t *testing.T) {
	m := New(noop)
	for _, route := range []string{"", "queue", "queue shuffle", "anything at all"} {
		assert.True(t, m.MatchesRoute(route, true), route)
		assert.True(t, m.MatchesRoute(route, false), route)
	}
	_, ok := m.Route()
	assert.False(t, ok)
}

func TestMatchesRoute_Regex(t *testing.T) {
	m := NewRouted(`queue( \S+)?`, noop)

	tests := []struct {
		route string
		want  bool
	}{
		{"queue", true},
		{"queue shuffle", true},
		{"dequeue", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, m.MatchesRoute(tt.route, true))
		})
	}
}

func TestMatchesRoute_RegexLeavesSuffix(t *testing.T) {
	m := NewRouted("command", noop)
	assert.True(t, m.MatchesRoute("command", true))
	assert.True(t, m.MatchesRoute("command subcommand", true))

	m = NewRouted("command subcommand", noop)
	assert.False(t, m.MatchesRoute("command", true))

	m = NewRouted("a|b", noop)
	assert.True(t, m.MatchesRoute("b", true))
	assert.False(t, m.MatchesRoute("cb", true))
}

func TestMatchesRoute_Exact(t *testing.T) {
	m := NewRouted("InvalidCommand", noop)
	assert.True(t, m.MatchesRoute("InvalidCommand", false))
	assert.False(t, m.MatchesRoute("InvalidCommandUsage", false))
	assert.False(t, m.MatchesRoute("invalidcommand", false))
}

func TestMatchesRoute_InvalidRegex(t *testing.T) {
	m := NewRouted("quota(", noop)
	assert.False(t, m.MatchesRoute("quota(", true))
	assert.True(t, m.MatchesRoute("quota(", false))
}

func TestSetRoute_Replaces(t *testing.T) {
	m := NewRouted("greet", noop)
	assert.True(t, m.MatchesRoute("greet", true))

	m.SetRoute("stash")
	assert.False(t, m.MatchesRoute("greet", true))
	assert.True(t, m.MatchesRoute("stash", true))

	route, ok := m.Route()
	assert.True(t, ok)
	assert.Equal(t, "stash", route)
}

func TestRun_PassesCallAndSignal(t *testing.T) {
	shared := &struct{ hits int }{}
	m := New(func(c *types.Call) (types.Signal, error) {
		c.Shared.(*struct{ hits int }).hits++
		return types.Continue, nil
	})

	sig, err := m.Run(&types.Call{Shared: shared})
	require.NoError(t, err)
	assert.Equal(t, types.Continue, sig)
	assert.Equal(t, 1, shared.hits)
}

func TestRun_ZeroSignalIsExit(t *testing.T) {
	m := New(func(c *types.Call) (types.Signal, error) {
		var s types.Signal
		return s, nil
	})
	sig, err := m.Run(&types.Call{})
	require.NoError(t, err)
	assert.Equal(t, types.Exit, sig)
}

func TestRun_ReturnsFault(t *testing.T) {
	boom := errors.New("boom")
	m := New(func(c *types.Call) (types.Signal, error) { return types.Continue, boom })

	_, err := m.Run(&types.Call{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, types.KindUnclassified, types.KindOf(err))
}

func TestRun_RecoversPanic(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"string", "kaboom"},
		{"error", errors.New("kaboom")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(func(c *types.Call) (types.Signal, error) { panic(tt.value) })

			sig, err := m.Run(&types.Call{})
			require.Error(t, err)
			assert.Equal(t, types.Exit, sig)
			assert.ErrorIs(t, err, types.ErrPanic)
			assert.Equal(t, types.KindPanic, types.KindOf(err))
			assert.Contains(t, err.Error(), "kaboom")
		})
	}
}

func TestRun_NilHandlerContinues(t *testing.T) {
	sig, err := New(nil).Run(&types.Call{})
	require.NoError(t, err)
	assert.Equal(t, types.Continue, sig)
}
