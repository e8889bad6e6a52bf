// Package graph builds the resolved, in-memory state tree (§3.1/§4.1) from
// a validated internal/config.MachineConfig: each config.StateConfig becomes
// a Node carrying its resolved dotted path, its ordered children, and its
// parent link, with path and bare-name indices built once at construction
// (compare the teacher's stateCache precomputation in
// internal/core.Machine.Start). Ancestor chains are not cached; Ancestors
// and Depth walk the parent links on each call.
package graph
