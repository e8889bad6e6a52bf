package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const stoplightYAML = `
id: stoplight
root:
  name: light
  kind: compound
  initial: red
  states:
    - name: red
      transitions:
        - event: turn_green
          target: green
    - name: green
      transitions:
        - event: turn_yellow
          target: yellow
    - name: yellow
      transitions:
        - event: turn_red
          target: red
`

func TestLoadYAML(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(stoplightYAML))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if cfg.ID != "stoplight" {
		t.Errorf("ID = %q, want stoplight", cfg.ID)
	}
	if cfg.Root.Name != "light" || cfg.Root.Kind != Compound {
		t.Fatalf("Root = %+v", cfg.Root)
	}
	if len(cfg.Root.States) != 3 {
		t.Fatalf("len(Root.States) = %d, want 3", len(cfg.Root.States))
	}
}

func TestLoadYAMLInvalidRejected(t *testing.T) {
	_, err := LoadYAML(strings.NewReader(`id: bad
root:
  name: root
  kind: atomic
`))
	if err == nil {
		t.Fatal("expected error for atomic root")
	}
}

const stoplightJSON = `{
  "id": "stoplight",
  "root": {
    "name": "light",
    "kind": "compound",
    "initial": "red",
    "states": [
      {"name": "red", "transitions": [{"event": "turn_green", "target": "green"}]},
      {"name": "green", "transitions": [{"event": "turn_yellow", "target": "yellow"}]},
      {"name": "yellow", "transitions": [{"event": "turn_red", "target": "red"}]}
    ]
  }
}`

func TestLoadJSON(t *testing.T) {
	cfg, err := LoadJSON(strings.NewReader(stoplightJSON))
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	if cfg.Root.Name != "light" {
		t.Errorf("Root.Name = %q, want light", cfg.Root.Name)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeTempFile(t, "stoplight.yaml", stoplightYAML)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.ID != "stoplight" {
		t.Errorf("ID = %q, want stoplight", cfg.ID)
	}
}

func TestLoadFileJSONExtension(t *testing.T) {
	path := writeTempFile(t, "stoplight.json", stoplightJSON)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Root.Name != "light" {
		t.Errorf("Root.Name = %q, want light", cfg.Root.Name)
	}
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writeTempFile: %v", err)
	}
	return path
}
