package statecraft

import "sync"

// Safe mutex-guards a *Session so it can be shared across goroutines,
// mirroring the teacher's own Machine, which wraps exactly this kind of
// shared mutable runtime state in a sync.RWMutex. Every method matches
// Session 1:1 and simply locks around the call; Session itself stays
// lock-free for the common single-goroutine case (§5).
type Safe struct {
	mu      sync.Mutex
	session *Session
}

// NewSafe wraps an existing Session for concurrent use.
func NewSafe(s *Session) *Safe { return &Safe{session: s} }

func (s *Safe) Trigger(event string, payload any) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Trigger(event, payload)
}

func (s *Safe) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Active()
}

func (s *Safe) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.State()
}

func (s *Safe) States() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.States()
}

func (s *Safe) GetState(path string) (*StateInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.GetState(path)
}

func (s *Safe) Is(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Is(name)
}

func (s *Safe) AddState(child *StateConfig, parentPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AddState(child, parentPath)
}

func (s *Safe) AddTransition(t *TransitionConfig, ownerPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.AddTransition(t, ownerPath)
}
