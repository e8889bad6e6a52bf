package statecraft

import "github.com/comalice/statecraft/internal/interp"

// Error kinds from §7, re-exported at the root so callers never need to
// import internal/interp directly. Use errors.Is against the Err* sentinels
// or errors.As against the *Error types to recover structured fields.
var (
	ErrInvalidConfig     = interp.ErrInvalidConfig
	ErrInvalidState      = interp.ErrInvalidState
	ErrInvalidTransition = interp.ErrInvalidTransition
	ErrGuardNotSatisfied = interp.ErrGuardNotSatisfied
	ErrInvalidAction     = interp.ErrInvalidAction
	ErrSessionFault      = interp.ErrSessionFault
)

type (
	// InvalidConfigError wraps a configuration-time validation failure.
	InvalidConfigError = interp.InvalidConfigError
	// InvalidStateError is raised when a path fails to resolve.
	InvalidStateError = interp.InvalidStateError
	// InvalidTransitionError is raised when no transition is enabled for an event.
	InvalidTransitionError = interp.InvalidTransitionError
	// GuardNotSatisfiedError is raised when matching transitions' guards all rejected.
	GuardNotSatisfiedError = interp.GuardNotSatisfiedError
	// InvalidActionError wraps a failure evaluating or executing action content.
	InvalidActionError = interp.InvalidActionError
	// SessionFaultError is raised when the eventless closure exceeds its fixpoint bound.
	SessionFaultError = interp.SessionFaultError
)
