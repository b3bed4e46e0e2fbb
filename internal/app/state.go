package app

// State is the dispatch phase of an Application.
type State int

const (
	// Idle is the state before the first Run.
	Idle State = iota
	// Dispatching walks the normal middleware queue.
	Dispatching
	// ErrorDispatching walks the error queue after a fault.
	ErrorDispatching
	// Done is reached when a queue is exhausted or a middleware returns Exit.
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dispatching:
		return "dispatching"
	case ErrorDispatching:
		return "error-dispatching"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
