package config

import "testing"

func TestMachineConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *MachineConfig
		wantErr bool
	}{
		{
			name: "minimal valid",
			config: &MachineConfig{
				ID: "machine",
				Root: New("root", Compound).
					WithInitial("child").
					AddState(New("child")),
			},
			wantErr: false,
		},
		{
			name:    "missing root",
			config:  &MachineConfig{ID: "machine"},
			wantErr: true,
		},
		{
			name: "root must be composite",
			config: &MachineConfig{
				ID:   "machine",
				Root: New("root", Atomic),
			},
			wantErr: true,
		},
		{
			name: "root compound missing initial",
			config: &MachineConfig{
				ID:   "machine",
				Root: &StateConfig{Name: "root", Kind: Compound, States: []*StateConfig{New("child")}},
			},
			wantErr: true,
		},
		{
			name: "nested compound hierarchy",
			config: &MachineConfig{
				ID: "machine",
				Root: func() *StateConfig {
					root := New("engine", Compound)
					root.Initial = "on"
					on := root.State("on", Compound)
					on.Initial = "low"
					on.State("low")
					on.State("high")
					return root
				}(),
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
