// Package interp implements the interpreter (L4): active configuration
// tracking, the trigger macrostep loop, parallel-region dispatch, and
// history recording, driving a cloned internal/graph.Graph according to a
// datamodel.Provider. It corresponds to the teacher's internal/core, but
// runs synchronously on the caller's goroutine (§5 "single-threaded,
// cooperative") instead of an actor with a buffered channel and a
// background goroutine.
package interp
