package app

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mesh-intelligence/trellis/internal/middleware"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

const (
	applicationUsageFormat = "usage: %[1]s %[2]s <command> [<args>]\n\nCommands are:\n%[3]s\nSee '%[1]s --help <command>' to read about a specific command."
	applicationOptions     = "[--help] [--version]"
	commandLineFormat      = "   %-10s %s\n"
)

// CommandRoute returns the route pattern matching command alone or followed
// by a subcommand.
func CommandRoute(command string) string {
	return regexp.QuoteMeta(command) + `( \S+)?$`
}

// RegisterCommand records cmd's description and usage, turns on command
// recognition, and queues a middleware that sets subcommand recognition
// for cmd followed by cmd's own middleware. Middleware without a route are
// scoped to cmd.
func (a *Application) RegisterCommand(cmd types.Command) {
	a.SetCommandDescription(cmd.Name, cmd.Description)
	a.SetCommandUsage(cmd.Name, cmd.Usage)
	a.input.RecognizeCommand(true)

	route := CommandRoute(cmd.Name)
	hasSubcommand := cmd.HasSubcommand
	a.PushMiddleware(middleware.NewRouted(route, func(c *types.Call) (types.Signal, error) {
		c.Input.RecognizeSubcommand(hasSubcommand)
		return types.Continue, nil
	}))

	for _, m := range cmd.Middleware {
		if _, ok := m.Route(); !ok {
			m.SetRoute(route)
		}
		a.PushMiddleware(m)
	}
}

// SetCommandDescription records the one-line description listed in the
// application usage.
func (a *Application) SetCommandDescription(command, description string) {
	a.commandDescriptions[command] = description
}

// SetCommandUsage records the argument synopsis shown by --help <command>.
func (a *Application) SetCommandUsage(command, usage string) {
	a.commandUsages[command] = usage
}

func (a *Application) HasCommandDescription(command string) bool {
	_, ok := a.commandDescriptions[command]
	return ok
}

func (a *Application) HasCommandUsage(command string) bool {
	_, ok := a.commandUsages[command]
	return ok
}

// CommandDescription returns ErrNameNotDefined for an unknown command.
func (a *Application) CommandDescription(command string) (string, error) {
	d, ok := a.commandDescriptions[command]
	if !ok {
		return "", types.ErrNameNotDefined.Wrap("description for command %q", command)
	}
	return d, nil
}

// CommandUsage returns ErrNameNotDefined for an unknown command.
func (a *Application) CommandUsage(command string) (string, error) {
	u, ok := a.commandUsages[command]
	if !ok {
		return "", types.ErrNameNotDefined.Wrap("usage for command %q", command)
	}
	return u, nil
}

// ApplicationUsage lists the registered commands in name order.
func (a *Application) ApplicationUsage() string {
	names := make([]string, 0, len(a.commandDescriptions))
	for name := range a.commandDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines strings.Builder
	for _, name := range names {
		fmt.Fprintf(&lines, commandLineFormat, name, a.commandDescriptions[name])
	}
	return fmt.Sprintf(applicationUsageFormat, a.name, applicationOptions, lines.String())
}
