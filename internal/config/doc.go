// Package config defines the declarative configuration record a statechart
// session is built from (§6.1): states, transitions, action content and data
// bindings. These types are the interface the core exposes to configuration
// loaders — a loader (SCXML, YAML, JSON, or a hand-built Go literal) produces
// a MachineConfig; internal/graph.Build turns it into a runnable graph.
//
// Everything here is a plain data record: no behavior beyond validation and
// a small fluent builder for tests and examples. json/yaml struct tags are
// carried throughout so a MachineConfig round-trips through gopkg.in/yaml.v3
// (see LoadYAML/LoadJSON/LoadFile) without a bespoke marshaling layer.
package config
