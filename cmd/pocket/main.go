// Command pocket is a small multi-command CLI built on trellis: it greets
// people and keeps a stack of notes in a SQLite stash.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/mesh-intelligence/trellis/pkg/cobrashell"
	"github.com/mesh-intelligence/trellis/pkg/shell"
	"github.com/mesh-intelligence/trellis/pkg/types"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	os.Exit(run(os.Args[1:], shell.Environ(), os.Stdout, os.Stderr))
}

// run executes pocket with args (program name excluded) and returns the
// process exit code.
func run(args []string, env map[string]string, stdout, stderr io.Writer) int {
	root := cobrashell.NewCommand("pocket", "Greet people and stash notes",
		func(argv []string, out, errOut io.Writer) (types.Application, error) {
			return newApp(argv, env, out, errOut)
		})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}

	var exitErr *cobrashell.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	newDiagnostics(stderr, env).fatal(err)
	return exitSysError
}
