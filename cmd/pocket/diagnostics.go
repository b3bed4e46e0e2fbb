package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// diagnostics writes colored error lines to stderr. Color is off when
// NO_COLOR is set or stderr is not a terminal.
type diagnostics struct {
	w     io.Writer
	red   *color.Color
	amber *color.Color
}

func newDiagnostics(w io.Writer, env map[string]string) *diagnostics {
	d := &diagnostics{
		w:     w,
		red:   color.New(color.FgRed, color.Bold),
		amber: color.New(color.FgHiMagenta),
	}
	if _, ok := env["NO_COLOR"]; ok {
		d.red.DisableColor()
		d.amber.DisableColor()
	}
	return d
}

// fatal reports a fault pocket did not expect.
func (d *diagnostics) fatal(err error) {
	fmt.Fprintf(d.w, "%s %v\n", d.red.Sprint("fatal:"), err)
}

// userError reports a fault caused by the arguments given.
func (d *diagnostics) userError(err error) {
	fmt.Fprintf(d.w, "%s %v\n", d.amber.Sprint("error:"), err)
}
