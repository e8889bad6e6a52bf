package interp

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/datamodel"
	"github.com/comalice/statecraft/internal/graph"
)

var errSessionFaulted = errors.New("session is in the Faulted state")

// Session is the L4 interpreter: a cloned graph.Graph, the active leaf set,
// a datamodel.Provider, and the bookkeeping (history, internal event queue)
// the trigger loop needs. It implements datamodel.Session so a Provider can
// call back into it for In()/Active() without importing statecraft.
type Session struct {
	id     string
	graph  *graph.Graph
	leaves []*graph.Node

	provider      datamodel.Provider
	history       *historyStore
	internalQueue []config.Event
	payload       any

	logger        *slog.Logger
	fixpointBound int
	faulted       bool
}

// Options bundles the construction-time choices statecraft.Option applies;
// kept as a plain struct here so the root package's functional options have
// something concrete to mutate before New is called.
type Options struct {
	Logger          *slog.Logger
	FixpointBound   int
	InitialOverride string
	Provider        datamodel.Provider
}

// New clones cfg's graph, binds early datamodel entries, and runs the
// initial entry/descent chain down to a stable configuration (§4.4
// "Constructing" state). A non-nil error means no session was produced.
func New(cfg config.MachineConfig, opts Options) (*Session, error) {
	g, err := graph.Build(cfg)
	if err != nil {
		return nil, &InvalidConfigError{Err: err}
	}

	provider := opts.Provider
	if provider == nil {
		provider = datamodel.NewDefault()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bound := opts.FixpointBound
	if bound <= 0 {
		bound = DefaultFixpointBound
	}

	s := &Session{
		id:            uuid.NewString(),
		graph:         g,
		provider:      provider,
		history:       newHistoryStore(),
		logger:        logger,
		fixpointBound: bound,
	}
	provider.RegisterIn(func(name string) bool { return s.Is(name) })

	root := g.Root
	if opts.InitialOverride != "" {
		target, err := s.walkFrom(root, opts.InitialOverride)
		if err != nil {
			return nil, &InvalidConfigError{Err: err}
		}
		root = target
	}

	if err := s.bindData(g.Root); err != nil {
		return nil, &InvalidConfigError{Err: err}
	}
	if err := s.runActions(g.Root.OnEntry); err != nil {
		return nil, &InvalidConfigError{Err: err}
	}

	// An override target is entered together with the states between it
	// and the root, the same way a compound's Initial chain is.
	var entered []*graph.Node
	if root != g.Root {
		entered = entrySet(root, g.Root)
	}
	deeper, leaves, err := s.descendInto(root)
	if err != nil {
		return nil, &InvalidConfigError{Err: err}
	}
	entered = append(entered, deeper...)
	for _, n := range entered {
		if err := s.bindData(n); err != nil {
			return nil, &InvalidConfigError{Err: err}
		}
		if err := s.runActions(n.OnEntry); err != nil {
			return nil, &InvalidConfigError{Err: err}
		}
	}
	if len(leaves) == 0 {
		leaves = []*graph.Node{root}
	}
	s.leaves = leaves

	if err := s.settleEventless(); err != nil {
		return nil, &InvalidConfigError{Err: err}
	}
	return s, nil
}

// ID returns the session's random identifier (§3.4).
func (s *Session) ID() string { return s.id }

// Payload returns the payload passed to the Trigger call currently being
// processed, for use inside action callables. The Default provider does not
// expose it to source-string expressions.
func (s *Session) Payload() any { return s.payload }

// Provider returns the datamodel.Provider evaluating this session's guards
// and action content, so a host can seed or inspect its Environment
// directly (e.g. before the first Trigger).
func (s *Session) Provider() datamodel.Provider { return s.provider }

// Active returns the active configuration as state names, leaves first,
// deepest nodes before their ancestors (§6.2).
func (s *Session) Active() []string {
	nodes := s.activeNodes()
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Depth() > nodes[j].Depth() })
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}

// ActiveNames is an alias for Active retained for call sites (InitialFunc)
// that read more naturally against "the currently active names".
func (s *Session) ActiveNames() []string { return s.Active() }

// activeNodes returns every node in the active configuration: every leaf
// plus all of their ancestors, deduplicated.
func (s *Session) activeNodes() []*graph.Node {
	seen := make(map[*graph.Node]bool)
	var out []*graph.Node
	for _, leaf := range s.leaves {
		for n := leaf; n != nil; n = n.Parent {
			if seen[n] {
				break
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// Is reports whether name is in the active configuration (the builtin
// In("name") predicate, §4.3).
func (s *Session) Is(name string) bool {
	for _, n := range s.activeNodes() {
		if n.Name == name {
			return true
		}
	}
	return false
}

// State returns the current leaf name; for a machine with multiple active
// regions it returns the first entry of the active leaf list. That list
// starts in document order, but leaves entered by a later transition are
// appended after the leaves that stayed active.
func (s *Session) State() string {
	if len(s.leaves) == 0 {
		return ""
	}
	return s.leaves[0].Name
}

// States returns the sibling names of the current leaf (including itself).
func (s *Session) States() []string {
	if len(s.leaves) == 0 {
		return nil
	}
	parent := s.leaves[0].Parent
	if parent == nil {
		return []string{s.leaves[0].Name}
	}
	return parent.ChildNames()
}

// StateInfo is the introspection record returned by GetState (§6.2).
type StateInfo struct {
	Name   string
	Path   string
	Kind   config.StateKind
	Active bool
}

// GetState resolves path against the session's graph (§4.1) and reports
// whether it is currently active.
func (s *Session) GetState(path string) (*StateInfo, error) {
	n, err := resolvePath(s.graph, s.anchorLeaf(), path)
	if err != nil {
		return nil, err
	}
	active := false
	for _, a := range s.activeNodes() {
		if a == n {
			active = true
			break
		}
	}
	return &StateInfo{Name: n.Name, Path: n.Path, Kind: n.Kind, Active: active}, nil
}

func (s *Session) anchorLeaf() *graph.Node {
	if len(s.leaves) == 0 {
		return nil
	}
	return s.leaves[0]
}

// AddState attaches a new child state to the composite named by parentPath
// (§4.7). It validates the subtree in isolation before splicing it in;
// failures leave the graph unchanged.
func (s *Session) AddState(child *config.StateConfig, parentPath string) error {
	if err := child.Validate(); err != nil {
		return &InvalidConfigError{Err: err}
	}
	parent, err := resolvePath(s.graph, s.anchorLeaf(), parentPath)
	if err != nil {
		return err
	}
	if !parent.IsComposite() {
		return &InvalidConfigError{Err: errors.New("AddState target must be a compound or parallel state")}
	}
	if _, exists := parent.Child(child.Name); exists {
		return &InvalidConfigError{Err: errors.New("duplicate child name " + child.Name)}
	}
	return s.graph.Splice(parent, child)
}

// AddTransition appends a transition to the atomic/composite state named
// by ownerPath (§4.7), validating the transition and its target's
// resolvability before committing.
func (s *Session) AddTransition(t *config.TransitionConfig, ownerPath string) error {
	if err := t.Validate(); err != nil {
		return &InvalidConfigError{Err: err}
	}
	owner, err := resolvePath(s.graph, s.anchorLeaf(), ownerPath)
	if err != nil {
		return err
	}
	if err := s.graph.ValidateTargetStatic(t.Target); err != nil {
		return &InvalidConfigError{Err: err}
	}
	// Cap the slice at its length so append copies rather than writing into
	// a backing array shared with the configuration and other sessions.
	n := len(owner.Transitions)
	owner.Transitions = append(owner.Transitions[:n:n], t)
	return nil
}

func (s *Session) removeLeaf(leaf *graph.Node) {
	for i, l := range s.leaves {
		if l == leaf {
			s.leaves = append(s.leaves[:i], s.leaves[i+1:]...)
			return
		}
	}
}

func (s *Session) addLeaves(leaves []*graph.Node) {
	s.leaves = append(s.leaves, leaves...)
}
