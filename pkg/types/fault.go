package types

import (
	"errors"
	"fmt"
)

// FaultKind identifies a class of fault. Error middleware are routed by exact
// comparison between their route and the kind of the fault being handled.
type FaultKind string

// Standard fault kinds.
const (
	KindEmptyArgumentVector     FaultKind = "EmptyArgumentVector"
	KindUnsupportedRuntime      FaultKind = "UnsupportedRuntime"
	KindOptionNotFound          FaultKind = "OptionNotFound"
	KindNameNotDefined          FaultKind = "NameNotDefined"
	KindIndexOutOfBounds        FaultKind = "IndexOutOfBounds"
	KindEnvNotFound             FaultKind = "EnvNotFound"
	KindUnsupportedKeyType      FaultKind = "UnsupportedKeyType"
	KindInvalidStream           FaultKind = "InvalidStream"
	KindInvalidCommand          FaultKind = "InvalidCommand"
	KindInvalidCommandUsage     FaultKind = "InvalidCommandUsage"
	KindInvalidApplicationUsage FaultKind = "InvalidApplicationUsage"
	KindInvalidArgument         FaultKind = "InvalidArgument"
	KindPanic                   FaultKind = "Panic"
	KindUnclassified            FaultKind = "Unclassified"
)

// Fault is an error tagged with a FaultKind. The package-level sentinels are
// Faults; concrete errors wrap them with Wrap or fmt.Errorf("%w: ...").
type Fault struct {
	Kind FaultKind
	Msg  string
}

// NewFault returns a Fault of the given kind. Applications use it to declare
// their own kinds alongside the standard ones.
func NewFault(kind FaultKind, msg string) *Fault {
	return &Fault{Kind: kind, Msg: msg}
}

func (f *Fault) Error() string {
	if f.Msg == "" {
		return string(f.Kind)
	}
	return f.Msg
}

// Wrap returns an error that carries f's kind and the formatted detail.
// errors.Is(f.Wrap(...), f) holds.
func (f *Fault) Wrap(format string, args ...any) error {
	return fmt.Errorf("%w: %s", f, fmt.Sprintf(format, args...))
}

// KindOf returns the kind of the first Fault in err's chain, or
// KindUnclassified when there is none.
func KindOf(err error) FaultKind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnclassified
}

// Construction errors.
var (
	ErrEmptyArgumentVector = NewFault(KindEmptyArgumentVector, "argument vector is empty")
	ErrUnsupportedRuntime  = NewFault(KindUnsupportedRuntime, "unsupported runtime")
)

// Input lookup errors.
var (
	ErrOptionNotFound     = NewFault(KindOptionNotFound, "option not found")
	ErrNameNotDefined     = NewFault(KindNameNotDefined, "name not defined")
	ErrIndexOutOfBounds   = NewFault(KindIndexOutOfBounds, "argument index out of bounds")
	ErrEnvNotFound        = NewFault(KindEnvNotFound, "environment variable not found")
	ErrUnsupportedKeyType = NewFault(KindUnsupportedKeyType, "argument key must be int or string")
)

// Output errors.
var (
	ErrInvalidStream = NewFault(KindInvalidStream, "invalid stream")
)

// Dispatch errors.
var (
	ErrInvalidCommand          = NewFault(KindInvalidCommand, "invalid command")
	ErrInvalidCommandUsage     = NewFault(KindInvalidCommandUsage, "invalid command usage")
	ErrInvalidApplicationUsage = NewFault(KindInvalidApplicationUsage, "invalid application usage")
	ErrInvalidArgument         = NewFault(KindInvalidArgument, "invalid argument")
	ErrPanic                   = NewFault(KindPanic, "middleware panicked")
)

// Application lifecycle errors. They report misuse of the Application itself
// and are returned to the caller, never routed through the error queue.
var (
	ErrReentrantRun        = errors.New("application is already running")
	ErrParameterRegistered = errors.New("middleware parameter already registered")
	ErrConfigNameEmpty     = errors.New("application name must not be empty")
)
