// MachineConfig is the top-level configuration handed to a loader or built
// directly by a host program (§6.1). Unlike a flat id->state map, Root is
// the actual nested record — the grammar in §6.1 already is a state
// description, so the machine's "top level" is just its root state.
package config

import "errors"

// MachineConfig wraps the root state description plus machine-wide
// metadata. Root must be Compound or Parallel per §3.1 ("Root is
// composite").
type MachineConfig struct {
	ID   string       `json:"id,omitempty" yaml:"id,omitempty"`
	Root *StateConfig `json:"root" yaml:"root"`
}

// Validate checks that Root is present, composite, and internally
// consistent. It does not resolve transition targets against the whole
// tree — internal/graph.Build does that once node identity is established.
func (m *MachineConfig) Validate() error {
	if m.Root == nil {
		return errors.New("machine config requires a root state")
	}
	if m.Root.Kind != Compound && m.Root.Kind != Parallel {
		return errors.New("root state must be compound or parallel")
	}
	return m.Root.Validate()
}
