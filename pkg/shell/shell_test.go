package shell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

func TestEnvMap(t *testing.T) {
	got := EnvMap([]string{"HOME=/home/me", "EMPTY=", "EQ=a=b", "BROKEN", "=nokey", "HOME=/override"})

	assert.Equal(t, map[string]string{
		"HOME":  "/override",
		"EMPTY": "",
		"EQ":    "a=b",
	}, got)
}

func TestNewInput_EmptyArgv(t *testing.T) {
	_, err := NewInput(nil, nil)
	assert.ErrorIs(t, err, types.ErrEmptyArgumentVector)
}

func TestNewApplication_RoutesCommands(t *testing.T) {
	in, err := NewInput([]string{"pocket", "greet", "World"}, map[string]string{})
	require.NoError(t, err)

	var buf bytes.Buffer
	out := NewOutputTo(&buf)

	app := NewApplication("pocket", "1.0.0", in, out)
	app.RegisterCommand(types.Command{
		Name:        "greet",
		Description: "Say hello",
		Middleware: []types.Middleware{NewMiddleware(func(c *types.Call) (types.Signal, error) {
			name, err := c.Input.Argument(0)
			if err != nil {
				return types.Exit, err
			}
			return types.Exit, c.Output.Write("Hello, " + name)
		})},
	})
	app.PushMiddleware(NewRoutedMiddleware("never", func(c *types.Call) (types.Signal, error) {
		return types.Exit, c.Output.Write("unreachable")
	}))

	require.NoError(t, app.Run())
	assert.Equal(t, "Hello, World", buf.String())
	assert.Equal(t, 0, app.ExitCode())
}

func TestCreate_RejectsEmptyName(t *testing.T) {
	_, err := Create(types.Config{Args: []string{"x"}})
	assert.ErrorIs(t, err, types.ErrConfigNameEmpty)
}

func TestCommandRoute(t *testing.T) {
	assert.Equal(t, `stash( \S+)?$`, CommandRoute("stash"))
}
