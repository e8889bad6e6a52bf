package statecraft

import "github.com/comalice/statecraft/internal/interp"

// Session is a running instance of a statechart (§3.4, §6.2). Create one
// with New; drive it with Trigger.
type Session struct {
	inner *interp.Session
}

// New constructs a Session from cfg, validating every §3 invariant and
// raising InvalidConfigError on failure — no Session is produced in that
// case (§4.4 "Constructing").
func New(cfg MachineConfig, opts ...Option) (*Session, error) {
	var o interp.Options
	for _, opt := range opts {
		opt(&o)
	}
	inner, err := interp.New(cfg, o)
	if err != nil {
		return nil, err
	}
	return &Session{inner: inner}, nil
}

// ID returns the session's random 128-bit identifier, formatted as a UUID.
func (s *Session) ID() string { return s.inner.ID() }

// Trigger runs one macrostep for event: selecting and executing a
// transition, then settling any eventless closure (§4.4). A rejected event
// leaves the active configuration unchanged.
func (s *Session) Trigger(event string, payload any) (any, error) {
	return s.inner.Trigger(event, payload)
}

// Active returns the active configuration as state names, leaves first.
func (s *Session) Active() []string { return s.inner.Active() }

// State returns the current leaf's name.
func (s *Session) State() string { return s.inner.State() }

// States returns the sibling names of the current leaf, including itself.
func (s *Session) States() []string { return s.inner.States() }

// GetState resolves path (§4.1) and reports whether it is active.
func (s *Session) GetState(path string) (*StateInfo, error) {
	return s.inner.GetState(path)
}

// Is reports whether name is a member of the active configuration — the
// generic form of the spec's is_<name> predicate family.
func (s *Session) Is(name string) bool { return s.inner.Is(name) }

// AddState dynamically attaches child to the composite named by
// parentPath (§4.7).
func (s *Session) AddState(child *StateConfig, parentPath string) error {
	return s.inner.AddState(child, parentPath)
}

// AddTransition dynamically appends t to the state named by ownerPath
// (§4.7).
func (s *Session) AddTransition(t *TransitionConfig, ownerPath string) error {
	return s.inner.AddTransition(t, ownerPath)
}

// Safe wraps s behind a mutex for hosts that need one session reachable
// from multiple goroutines (§5 "the host must externally serialize").
func (s *Session) Safe() *Safe { return &Safe{session: s} }
