// TransitionConfig defines one outgoing edge of a state (§3.2): the event
// it responds to (empty for an eventless/automatic transition), its guard,
// its target path, its action content, and whether it is internal or
// external.
package config

import (
	"errors"
	"fmt"

	"github.com/comalice/statecraft/internal/ident"
)

// TransitionType controls whether the source state is exited when the
// target is a descendant (§3.2, §4.4 "internal transition").
type TransitionType string

const (
	External TransitionType = "external"
	Internal TransitionType = "internal"
)

// TransitionConfig is a single transition. Event == "" denotes an eventless
// transition, evaluated during the interpreter's fixpoint closure (§4.4).
type TransitionConfig struct {
	Event   string   `json:"event" yaml:"event"`
	Target  string   `json:"target" yaml:"target"`
	Cond    Expr     `json:"cond,omitempty" yaml:"cond,omitempty"`
	Content []Action `json:"content,omitempty" yaml:"content,omitempty"`
	Type    TransitionType `json:"type,omitempty" yaml:"type,omitempty"` // default External
}

// WithGuard sets Cond on a TransitionConfig built via StateConfig.On.
func WithGuard(cond Expr) func(*TransitionConfig) {
	return func(t *TransitionConfig) { t.Cond = cond }
}

// WithContent appends action content.
func WithContent(actions ...Action) func(*TransitionConfig) {
	return func(t *TransitionConfig) { t.Content = append(t.Content, actions...) }
}

// WithType overrides the transition's internal/external type.
func WithType(tt TransitionType) func(*TransitionConfig) {
	return func(t *TransitionConfig) { t.Type = tt }
}

// Validate checks the fields that don't require knowledge of the full
// state tree: target path syntax and the transition type enum. Whether the
// target actually resolves is checked by internal/graph.Build, which has
// the tree in view. Neither Validate nor Build checks whether Type=Internal
// suits the owning state's kind; the interpreter treats an Internal
// transition whose target is not the owner or one of its descendants as
// External.
func (t *TransitionConfig) Validate() error {
	if t.Target == "" {
		return errors.New("transition target is required")
	}
	if _, err := ident.Parse(t.Target); err != nil {
		return fmt.Errorf("transition target %q: %w", t.Target, err)
	}
	switch t.Type {
	case "", External, Internal:
	default:
		return fmt.Errorf("transition to %q: unknown type %q", t.Target, t.Type)
	}
	return nil
}
