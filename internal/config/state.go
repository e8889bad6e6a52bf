// StateConfig is the declarative description of one state node (§3.1),
// supporting atomic, compound, parallel, final, history and condition
// kinds with hierarchical nesting via States.
package config

import (
	"fmt"

	"github.com/comalice/statecraft/internal/ident"
)

// StateKind enumerates the closed set of node kinds from §3.1.
type StateKind string

const (
	Atomic    StateKind = "atomic"
	Compound  StateKind = "compound"
	Parallel  StateKind = "parallel"
	Final     StateKind = "final"
	History   StateKind = "history"
	Condition StateKind = "condition"
)

// HistoryKind distinguishes shallow vs. deep history pseudostates (§4.6).
type HistoryKind string

const (
	HistoryShallow HistoryKind = "shallow"
	HistoryDeep    HistoryKind = "deep"
)

// DataItem is one <data> binding in a state's datamodel (§4.3 "Data binding
// timing"): exactly one of Src, Expr, Value is meaningful.
type DataItem struct {
	ID    string `json:"id" yaml:"id"`
	Src   string `json:"src,omitempty" yaml:"src,omitempty"`
	Expr  Expr   `json:"expr,omitempty" yaml:"expr,omitempty"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	// Late defers resolution to first access; the zero value resolves at
	// session construction ("early" binding).
	Late bool `json:"late,omitempty" yaml:"late,omitempty"`
}

// DatamodelConfig is a state's <datamodel> block.
type DatamodelConfig struct {
	Data []DataItem `json:"data,omitempty" yaml:"data,omitempty"`
}

// StateConfig describes one node. Initial holds a static path; InitialFunc
// is the deprecated callable form (§9) for hosts building configuration
// programmatically — at most one of the two should be set.
type StateConfig struct {
	Name        string                        `json:"name" yaml:"name"`
	Kind        StateKind                     `json:"kind,omitempty" yaml:"kind,omitempty"` // default Atomic
	Initial     string                        `json:"initial,omitempty" yaml:"initial,omitempty"`
	InitialFunc func(active []string) string  `json:"-" yaml:"-"`
	HistoryKind HistoryKind                   `json:"historyKind,omitempty" yaml:"historyKind,omitempty"`
	Datamodel   DatamodelConfig               `json:"datamodel,omitempty" yaml:"datamodel,omitempty"`
	States      []*StateConfig                `json:"states,omitempty" yaml:"states,omitempty"`
	Transitions []*TransitionConfig           `json:"transitions,omitempty" yaml:"transitions,omitempty"`
	OnEntry     []Action                      `json:"onEntry,omitempty" yaml:"onEntry,omitempty"`
	OnExit      []Action                      `json:"onExit,omitempty" yaml:"onExit,omitempty"`
}

// New creates a leaf StateConfig of the given kind (Atomic if omitted).
func New(name string, kind ...StateKind) *StateConfig {
	k := Atomic
	if len(kind) > 0 {
		k = kind[0]
	}
	return &StateConfig{Name: name, Kind: k}
}

// AddChild appends a child state, returning the child for chaining.
func (s *StateConfig) AddChild(child *StateConfig) *StateConfig {
	s.States = append(s.States, child)
	return child
}

// AddState appends a child state and returns the parent, for building a
// sibling list fluently: parent.AddState(a).AddState(b).
func (s *StateConfig) AddState(child *StateConfig) *StateConfig {
	s.States = append(s.States, child)
	return s
}

// WithInitial sets Initial and returns s for chaining.
func (s *StateConfig) WithInitial(initial string) *StateConfig {
	s.Initial = initial
	return s
}

// State adds and returns a new child state (sugar over AddChild+New).
func (s *StateConfig) State(name string, kind ...StateKind) *StateConfig {
	return s.AddChild(New(name, kind...))
}

// On adds a transition triggered by event to target and returns the owner,
// so calls chain: s.On("a", "x").On("b", "y").
func (s *StateConfig) On(event, target string, opts ...func(*TransitionConfig)) *StateConfig {
	t := &TransitionConfig{Event: event, Target: target, Type: External}
	for _, opt := range opts {
		opt(t)
	}
	s.Transitions = append(s.Transitions, t)
	return s
}

// Flatten returns every state in the subtree rooted at s, keyed by Name.
func (s *StateConfig) Flatten() map[string]*StateConfig {
	m := make(map[string]*StateConfig)
	s.flatten(m)
	return m
}

func (s *StateConfig) flatten(m map[string]*StateConfig) {
	if _, ok := m[s.Name]; ok {
		return
	}
	m[s.Name] = s
	for _, c := range s.States {
		c.flatten(m)
	}
}

// Validate recursively checks the §3.1 invariants local to a single node.
// Cross-node checks (e.g. transition target resolvability) are the job of
// internal/graph.Build, which has the full tree in view.
func (s *StateConfig) Validate() error {
	if err := ident.ValidateName(s.Name); err != nil {
		return fmt.Errorf("state %q: %w", s.Name, err)
	}

	switch s.Kind {
	case "", Atomic, Compound, Parallel, Final, History, Condition:
	default:
		return fmt.Errorf("state %q: unknown kind %q", s.Name, s.Kind)
	}

	switch s.Kind {
	case Compound:
		if len(s.States) == 0 {
			return fmt.Errorf("state %q: compound state requires at least one child", s.Name)
		}
		if s.Initial == "" && s.InitialFunc == nil {
			return fmt.Errorf("state %q: compound state requires Initial", s.Name)
		}
	case Parallel:
		if len(s.States) < 2 {
			return fmt.Errorf("state %q: parallel state requires at least two children", s.Name)
		}
		if s.Initial != "" || s.InitialFunc != nil {
			return fmt.Errorf("state %q: parallel state must not set Initial", s.Name)
		}
		for _, c := range s.States {
			if c.Kind != Compound && c.Kind != Parallel {
				return fmt.Errorf("state %q: parallel region %q must be composite, got %s", s.Name, c.Name, c.Kind)
			}
		}
	case Final:
		if len(s.States) > 0 {
			return fmt.Errorf("state %q: final state cannot have children", s.Name)
		}
		if len(s.Transitions) > 0 {
			return fmt.Errorf("state %q: final state cannot have outgoing transitions", s.Name)
		}
	case History:
		if len(s.States) > 0 {
			return fmt.Errorf("state %q: history pseudostate cannot have children", s.Name)
		}
		switch s.HistoryKind {
		case HistoryShallow, HistoryDeep:
		default:
			return fmt.Errorf("state %q: history pseudostate requires shallow or deep HistoryKind", s.Name)
		}
		if s.Initial == "" {
			return fmt.Errorf("state %q: history pseudostate requires a default transition target (Initial)", s.Name)
		}
		if len(s.OnEntry) > 0 || len(s.OnExit) > 0 {
			return fmt.Errorf("state %q: history pseudostate cannot have entry/exit actions", s.Name)
		}
	case Condition:
		if len(s.OnEntry) > 0 || len(s.OnExit) > 0 {
			return fmt.Errorf("state %q: condition pseudostate cannot have entry/exit actions", s.Name)
		}
	default: // atomic / unset
		if s.Initial != "" || s.InitialFunc != nil {
			return fmt.Errorf("state %q: atomic state cannot set Initial", s.Name)
		}
	}

	for _, t := range s.Transitions {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("state %q: %w", s.Name, err)
		}
	}

	seen := make(map[string]struct{}, len(s.States))
	for _, c := range s.States {
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("state %q: duplicate child name %q", s.Name, c.Name)
		}
		seen[c.Name] = struct{}{}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
