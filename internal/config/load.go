// Loading helpers for the wire-shaped MachineConfig record (§4.9). Not a
// declarative statechart loader in its own right — a host that ingests an
// external format (SCXML, say) decodes into MachineConfig itself and hands
// it to internal/graph.Build; these are a convenience for the common case
// of keeping the description as a YAML or JSON file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes a MachineConfig from r. yaml.v3 understands JSON as a
// subset of YAML, so this also accepts JSON-shaped documents.
func LoadYAML(r io.Reader) (MachineConfig, error) {
	var cfg MachineConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return MachineConfig{}, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return MachineConfig{}, err
	}
	return cfg, nil
}

// LoadJSON decodes a MachineConfig from r. It is a thin alias over LoadYAML
// since yaml.v3 decodes well-formed JSON directly; kept as a distinct name
// so call sites document their document's actual format.
func LoadJSON(r io.Reader) (MachineConfig, error) {
	return LoadYAML(r)
}

// LoadFile reads path and decodes it as YAML or JSON, chosen by its
// extension (.json selects LoadJSON; everything else, including .yml/.yaml,
// selects LoadYAML — they share a decoder so the distinction is cosmetic).
func LoadFile(path string) (MachineConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return MachineConfig{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}
