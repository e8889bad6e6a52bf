// MachineBuilder is a small fluent helper for assembling a MachineConfig in
// Go code, mirroring the teacher's own builder pattern but operating on the
// nested StateConfig tree directly rather than a flat id map with a
// separate stack. Most hosts that hand-build configuration will use
// StateConfig's own chaining methods (State/On/AddChild) directly; this
// type exists for call sites that want to build top-down and call Build
// once at the end.
package config

// NewMachineBuilder starts a builder around a compound or parallel root.
func NewMachineBuilder(id string, root *StateConfig) *MachineBuilder {
	return &MachineBuilder{id: id, root: root}
}

// MachineBuilder wraps a root StateConfig under construction.
type MachineBuilder struct {
	id   string
	root *StateConfig
}

// Root returns the root state for direct mutation.
func (b *MachineBuilder) Root() *StateConfig { return b.root }

// Build validates and returns the finished MachineConfig.
func (b *MachineBuilder) Build() (MachineConfig, error) {
	cfg := MachineConfig{ID: b.id, Root: b.root}
	if err := cfg.Validate(); err != nil {
		return MachineConfig{}, err
	}
	return cfg, nil
}
