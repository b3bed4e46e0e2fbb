package app

import (
	"fmt"

	"github.com/mesh-intelligence/trellis/internal/middleware"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

const (
	versionFormat        = "%s version %s"
	commandUsageFormat   = "usage: %s %s %s"
	invalidCommandFormat = "%[1]s: '%[2]s' is not a %[1]s command. See '%[1]s --help'."
)

// registerBuiltins queues --help and --version ahead of user middleware and
// the usage error middleware in the error queue.
func registerBuiltins(a *Application) {
	a.PushMiddleware(middleware.New(help))
	a.PushMiddleware(middleware.New(version))

	a.PushErrorMiddleware(middleware.NewRouted(string(types.KindInvalidApplicationUsage), invalidApplicationUsage))
	a.PushErrorMiddleware(middleware.NewRouted(string(types.KindInvalidCommand), invalidCommand))
	a.PushErrorMiddleware(middleware.NewRouted(string(types.KindInvalidCommandUsage), invalidCommandUsage))
}

// help prints the application usage, or the usage of the command given
// alongside --help. Asking for help on an unknown command raises
// ErrInvalidCommand.
func help(c *types.Call) (types.Signal, error) {
	if !c.Input.HasOption("help") {
		return types.Continue, nil
	}

	command, err := c.Input.CommandName()
	if err != nil {
		return types.Exit, writeLine(c.Output, c.App.ApplicationUsage())
	}

	usage, err := c.App.CommandUsage(command)
	if err != nil {
		return types.Exit, types.ErrInvalidCommand.Wrap("%q", command)
	}
	return types.Exit, writeLine(c.Output, fmt.Sprintf(commandUsageFormat, c.App.Name(), command, usage))
}

func version(c *types.Call) (types.Signal, error) {
	if !c.Input.HasOption("version") {
		return types.Continue, nil
	}
	return types.Exit, writeLine(c.Output, fmt.Sprintf(versionFormat, c.App.Name(), c.App.Version()))
}

func invalidApplicationUsage(c *types.Call) (types.Signal, error) {
	return types.Exit, writeLine(c.Output, c.App.ApplicationUsage())
}

func invalidCommand(c *types.Call) (types.Signal, error) {
	command, err := c.Input.CommandName()
	if err != nil {
		return types.Exit, writeLine(c.Output, c.App.ApplicationUsage())
	}
	return types.Exit, writeLine(c.Output, fmt.Sprintf(invalidCommandFormat, c.App.Name(), command))
}

// invalidCommandUsage prints the usage of the current command, falling back
// to the application usage when the command has none.
func invalidCommandUsage(c *types.Call) (types.Signal, error) {
	command, err := c.Input.CommandName()
	if err != nil {
		return types.Exit, writeLine(c.Output, c.App.ApplicationUsage())
	}
	usage, err := c.App.CommandUsage(command)
	if err != nil {
		return types.Exit, writeLine(c.Output, c.App.ApplicationUsage())
	}
	return types.Exit, writeLine(c.Output, fmt.Sprintf(commandUsageFormat, c.App.Name(), command, usage))
}

func writeLine(out types.Output, s string) error {
	return out.Write(s + "\n")
}
