package types

// Stream protocols accepted by Output.SetStream.
const (
	// ProtocolStd targets the process streams "stdout" and "stderr".
	ProtocolStd = "std"
	// ProtocolFile targets a filesystem path.
	ProtocolFile = "file"
)

// Standard stream targets for ProtocolStd.
const (
	TargetStdout = "stdout"
	TargetStderr = "stderr"
)

// StreamMode selects how a file target is opened.
type StreamMode string

// Stream modes.
const (
	// ModeAppend creates the file if needed and appends.
	ModeAppend StreamMode = "a"
	// ModeWrite truncates the file on the first write, then appends.
	ModeWrite StreamMode = "w"
	// ModeExclusive fails unless the first write creates the file.
	ModeExclusive StreamMode = "x"
	// ModeCreate creates the file if needed and writes from its start
	// without truncating on the first write, then appends.
	ModeCreate StreamMode = "c"
)

// Output buffers text and writes it to a configured stream.
type Output interface {
	// Buffer appends s to the internal buffer without writing it.
	Buffer(s string)

	// Flush writes the buffered text to the stream and clears the buffer.
	Flush() error

	// Write writes s to the stream immediately.
	Write(s string) error

	// SetStream configures the target. Returns ErrInvalidStream when the
	// protocol, target and mode cannot be written.
	SetStream(protocol, target string, mode StreamMode) error

	// Buffered returns the text buffered since the last Flush.
	Buffered() string
}
