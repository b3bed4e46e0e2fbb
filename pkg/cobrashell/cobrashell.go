// Package cobrashell mounts an Application under a cobra command. Cobra
// resolves the command path; everything after it, flags included, is handed
// to the Application untouched.
package cobrashell

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

// Builder returns the Application for one invocation. argv starts with the
// cobra command name; stdout and stderr are the command's streams.
type Builder func(argv []string, stdout, stderr io.Writer) (types.Application, error)

// ExitError reports a run that completed with a non-zero exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewCommand returns a cobra command that builds an Application with build
// and runs it. Cobra's own flag parsing and help are disabled so the
// Application sees --help and --version itself.
//
// RunE returns the error Run re-raised, or an *ExitError when Run succeeded
// with a non-zero exit code.
func NewCommand(use, short string, build Builder) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := append([]string{cmd.Name()}, args...)

			app, err := build(argv, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("build %s: %w", cmd.Name(), err)
			}
			if err := app.Run(); err != nil {
				return err
			}
			if code := app.ExitCode(); code != 0 {
				return &ExitError{Code: code}
			}
			return nil
		},
	}
}

// ExitCode maps the error returned by a command's Execute to a process exit
// code: 0 for nil, the carried code for an *ExitError, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
