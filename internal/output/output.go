// Package output implements the buffered Output sink.
package output

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/trellis/pkg/types"
)

var _ types.Output = (*Output)(nil)

// Output buffers text and writes it to stdout, stderr, a file, or an
// io.Writer supplied with SetWriter.
type Output struct {
	buffer strings.Builder

	protocol string
	target   string
	mode     types.StreamMode

	// opened is set after the first successful file write; later writes
	// append regardless of mode.
	opened bool

	writer io.Writer
}

// New returns an Output writing to stdout.
func New() *Output {
	return &Output{
		protocol: types.ProtocolStd,
		target:   types.TargetStdout,
		mode:     types.ModeAppend,
	}
}

// Buffer appends s without writing it.
func (o *Output) Buffer(s string) {
	o.buffer.WriteString(s)
}

// Buffered returns the text buffered since the last Flush.
func (o *Output) Buffered() string {
	return o.buffer.String()
}

// Flush writes the buffer and clears it. The buffer is kept when the write
// fails.
func (o *Output) Flush() error {
	if err := o.Write(o.buffer.String()); err != nil {
		return err
	}
	o.buffer.Reset()
	return nil
}

// SetWriter sends all writes to w until the next SetStream.
func (o *Output) SetWriter(w io.Writer) {
	o.writer = w
}

// SetStream selects the target. For ProtocolStd the target is "stdout" or
// "stderr" and mode must be ModeAppend. For ProtocolFile the target is a
// path whose directory must exist.
func (o *Output) SetStream(protocol, target string, mode types.StreamMode) error {
	if err := validate(protocol, target, mode); err != nil {
		return err
	}
	o.protocol = protocol
	o.target = target
	o.mode = mode
	o.opened = false
	o.writer = nil
	return nil
}

func validate(protocol, target string, mode types.StreamMode) error {
	switch protocol {
	case types.ProtocolStd:
		if target != types.TargetStdout && target != types.TargetStderr {
			return types.ErrInvalidStream.Wrap("unknown std target %q", target)
		}
		if mode != types.ModeAppend {
			return types.ErrInvalidStream.Wrap("std streams only support mode %q", types.ModeAppend)
		}
		return nil
	case types.ProtocolFile:
		if target == "" {
			return types.ErrInvalidStream.Wrap("empty file path")
		}
		if _, ok := fileFlags[mode]; !ok {
			return types.ErrInvalidStream.Wrap("unknown mode %q", mode)
		}
		info, err := os.Stat(filepath.Dir(target))
		if err != nil || !info.IsDir() {
			return types.ErrInvalidStream.Wrap("directory of %q is not usable", target)
		}
		if info, err := os.Stat(target); err == nil && info.IsDir() {
			return types.ErrInvalidStream.Wrap("%q is a directory", target)
		}
		return nil
	default:
		return types.ErrInvalidStream.Wrap("unknown protocol %q", protocol)
	}
}

// fileFlags maps a mode to the flags used for the first write.
var fileFlags = map[types.StreamMode]int{
	types.ModeAppend:    os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	types.ModeWrite:     os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	types.ModeExclusive: os.O_WRONLY | os.O_CREATE | os.O_EXCL,
	types.ModeCreate:    os.O_WRONLY | os.O_CREATE,
}

// Write writes s to the stream.
func (o *Output) Write(s string) error {
	if o.writer != nil {
		if _, err := io.WriteString(o.writer, s); err != nil {
			return types.ErrInvalidStream.Wrap("%v", err)
		}
		return nil
	}

	switch o.protocol {
	case types.ProtocolStd:
		w := os.Stdout
		if o.target == types.TargetStderr {
			w = os.Stderr
		}
		if _, err := io.WriteString(w, s); err != nil {
			return types.ErrInvalidStream.Wrap("%v", err)
		}
		return nil
	default:
		return o.writeFile(s)
	}
}

func (o *Output) writeFile(s string) error {
	flags := fileFlags[o.mode]
	if o.opened {
		flags = os.O_WRONLY | os.O_APPEND
	}

	f, err := os.OpenFile(o.target, flags, 0o644)
	if err != nil {
		return types.ErrInvalidStream.Wrap("open %s: %v", o.target, err)
	}
	o.opened = true

	if _, err := f.WriteString(s); err != nil {
		f.Close()
		return types.ErrInvalidStream.Wrap("write %s: %v", o.target, err)
	}
	if err := f.Close(); err != nil {
		return types.ErrInvalidStream.Wrap("close %s: %v", o.target, err)
	}
	return nil
}
