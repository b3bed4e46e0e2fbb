package types

// Signal tells the dispatcher whether to keep walking the middleware queue.
//
// The zero value is Exit. A handler has to return Continue explicitly for the
// next matching middleware to run.
type Signal int

const (
	// Exit stops the current queue.
	Exit Signal = iota
	// Continue hands control to the next matching middleware.
	Continue
)

// String returns the signal name.
func (s Signal) String() string {
	if s == Continue {
		return "continue"
	}
	return "exit"
}
