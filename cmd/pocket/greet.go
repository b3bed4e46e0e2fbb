package main

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/trellis/pkg/shell"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

func greetCommand() types.Command {
	return types.Command{
		Name:        "greet",
		Description: "Greet someone",
		Usage:       "[--shout] <name>",
		Middleware:  []types.Middleware{shell.NewMiddleware(greet)},
	}
}

// greet writes "<greeting>, <name>" using the configured greeting.
func greet(c *types.Call) (types.Signal, error) {
	s := c.Shared.(*session)

	name, err := c.Input.Argument(0)
	if err != nil {
		return types.Exit, types.ErrInvalidCommandUsage.Wrap("greet needs a name")
	}

	line := fmt.Sprintf("%s, %s", s.config.GetString(cfgKeyGreeting), name)
	if c.Input.HasCommandOption("shout") {
		line = strings.ToUpper(line) + "!"
	}
	return types.Exit, c.Output.Write(line + "\n")
}
