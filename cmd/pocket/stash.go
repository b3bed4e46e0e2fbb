package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mesh-intelligence/trellis/pkg/shell"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

type stashAction func(c *types.Call, store types.StashStore, args []string) error

var stashActions = map[string]stashAction{
	"save":  stashSave,
	"list":  stashList,
	"show":  stashShow,
	"pop":   stashPop,
	"drop":  stashDrop,
	"clear": stashClear,
}

func stashCommand() types.Command {
	return types.Command{
		Name:          "stash",
		Description:   "Save and recall notes",
		Usage:         "[save [--message=<text>] <words>... | list | show [<n>] | pop | drop <n> | clear]",
		HasSubcommand: true,
		Middleware:    []types.Middleware{shell.NewMiddleware(stash)},
	}
}

// stash opens the store in the data directory and runs the subcommand.
// Without a subcommand it lists; an unknown subcommand starts a message to
// save.
func stash(c *types.Call) (types.Signal, error) {
	s := c.Shared.(*session)

	action := stashList
	args := c.Input.Arguments()
	if sub, err := c.Input.SubcommandName(); err == nil {
		if a, ok := stashActions[sub]; ok {
			action = a
		} else {
			action = stashSave
			args = append([]string{sub}, args...)
		}
	}

	store := s.newStore()
	if err := store.Attach(s.dataDir); err != nil {
		return types.Exit, fmt.Errorf("open stash: %w", err)
	}
	defer store.Detach()

	return types.Exit, action(c, store, args)
}

func stashSave(c *types.Call, store types.StashStore, args []string) error {
	message := strings.Join(args, " ")
	if v, err := c.Input.Option("message"); err == nil {
		if str, ok := v.(string); ok {
			message = str
		}
	}
	if message == "" {
		return types.ErrInvalidCommandUsage.Wrap("stash save needs a message")
	}

	if _, err := store.Push(message); err != nil {
		return err
	}
	return c.Output.Write(fmt.Sprintf("Saved stash@{0}: %s\n", message))
}

func stashList(c *types.Call, store types.StashStore, _ []string) error {
	entries, err := store.List()
	if err != nil {
		return err
	}
	for i, e := range entries {
		c.Output.Buffer(fmt.Sprintf("stash@{%d}: %s\n", i, e.Message))
	}
	return c.Output.Flush()
}

func stashShow(c *types.Call, store types.StashStore, args []string) error {
	n, err := position(args, 0)
	if err != nil {
		return err
	}
	e, err := store.Get(n)
	if err != nil {
		return err
	}
	return c.Output.Write(fmt.Sprintf("stash@{%d} %s\nDate: %s\n\n    %s\n",
		n, e.ID, e.CreatedAt.Local().Format(time.RFC1123Z), e.Message))
}

func stashPop(c *types.Call, store types.StashStore, _ []string) error {
	e, err := store.Pop()
	if err != nil {
		return err
	}
	return c.Output.Write(fmt.Sprintf("Popped stash@{0}: %s\n", e.Message))
}

func stashDrop(c *types.Call, store types.StashStore, args []string) error {
	if len(args) == 0 {
		return types.ErrInvalidCommandUsage.Wrap("stash drop needs a position")
	}
	n, err := position(args, 0)
	if err != nil {
		return err
	}
	e, err := store.Drop(n)
	if err != nil {
		return err
	}
	return c.Output.Write(fmt.Sprintf("Dropped stash@{%d}: %s\n", n, e.Message))
}

func stashClear(c *types.Call, store types.StashStore, _ []string) error {
	n, err := store.Clear()
	if err != nil {
		return err
	}
	return c.Output.Write(fmt.Sprintf("Cleared %d stash entries\n", n))
}

// position parses args[0] as a stash position, accepting "2" and
// "stash@{2}". It returns def when args is empty.
func position(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	raw := strings.TrimSuffix(strings.TrimPrefix(args[0], "stash@{"), "}")
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, types.ErrInvalidArgument.Wrap("%q is not a stash position", args[0])
	}
	return n, nil
}
