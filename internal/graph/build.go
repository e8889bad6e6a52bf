package graph

import (
	"fmt"

	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/ident"
)

// Graph is the fully resolved state tree for one machine configuration.
// Every session builds its own Graph from the configuration (interp.New
// calls Build), so that dynamic mutation (AddState/AddTransition, §4.7) on
// one session never affects another.
type Graph struct {
	ID   string
	Root *Node

	byPath map[string]*Node
	// byName holds, for each bare name, every node carrying it in
	// breadth-first discovery order — Resolve's "first hit wins" (§4.1) is
	// simply byName[name][0].
	byName map[string][]*Node
}

// Build validates cfg and constructs the resolved tree. Absolute and bare
// transition targets are resolved against the finished tree at this point
// (§3.1's "target resolvability"); relative targets (leading-dot paths)
// depend on the active leaf at trigger time and so are validated lazily by
// the interpreter instead.
func Build(cfg config.MachineConfig) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		ID:     cfg.ID,
		byPath: make(map[string]*Node),
		byName: make(map[string][]*Node),
	}
	g.Root = g.build(cfg.Root, cfg.Root.Name, nil)

	// byName must reflect breadth-first discovery order, not the
	// depth-first order build() naturally produces.
	queue := []*Node{g.Root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		g.byName[n.Name] = append(g.byName[n.Name], n)
		queue = append(queue, n.ChildNodes()...)
	}

	if err := g.validateStaticTargets(g.Root); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) build(cfg *config.StateConfig, path string, parent *Node) *Node {
	n := newNode(cfg, path, parent)
	g.byPath[path] = n
	for _, childCfg := range cfg.States {
		childPath := ident.Join(path, childCfg.Name)
		child := g.build(childCfg, childPath, n)
		n.Children.Set(child.Name, child)
	}
	return n
}

func (g *Graph) validateStaticTargets(n *Node) error {
	for _, t := range n.Transitions {
		p, err := ident.Parse(t.Target)
		if err != nil {
			return fmt.Errorf("state %q: transition %q: %w", n.Path, t.Target, err)
		}
		if p.Kind == ident.Relative {
			continue // resolved against the active leaf at trigger time
		}
		if _, err := g.Resolve(t.Target); err != nil {
			return fmt.Errorf("state %q: transition %q: %w", n.Path, t.Target, err)
		}
	}
	for _, c := range n.ChildNodes() {
		if err := g.validateStaticTargets(c); err != nil {
			return err
		}
	}
	return nil
}

// NodeByPath returns the node at an exact absolute path, if any.
func (g *Graph) NodeByPath(path string) (*Node, bool) {
	n, ok := g.byPath[path]
	return n, ok
}

// Resolve resolves an absolute or bare path against the tree (§4.1).
// Relative paths (leading dots) require an active-leaf anchor the graph
// does not have; callers resolve those via Walk from the leaf instead.
func (g *Graph) Resolve(path string) (*Node, error) {
	p, err := ident.Parse(path)
	if err != nil {
		return nil, err
	}
	switch p.Kind {
	case ident.Absolute:
		if len(p.Segments) == 0 || p.Segments[0] != g.Root.Name {
			return nil, fmt.Errorf("%w: absolute path %q does not start at root %q", ErrNotFound, path, g.Root.Name)
		}
		return g.Walk(g.Root, p.Segments[1:])
	case ident.Bare:
		nodes, ok := g.byName[p.Segments[0]]
		if !ok || len(nodes) == 0 {
			return nil, fmt.Errorf("%w: no state named %q", ErrNotFound, p.Segments[0])
		}
		return nodes[0], nil
	default:
		return nil, fmt.Errorf("graph: Resolve does not accept relative paths (%q); use Walk from the active leaf", path)
	}
}

// Walk descends from from following segments, one child hop per segment.
func (g *Graph) Walk(from *Node, segments []string) (*Node, error) {
	cur := from
	for _, seg := range segments {
		child, ok := cur.Child(seg)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no child %q", ErrNotFound, cur.Path, seg)
		}
		cur = child
	}
	return cur, nil
}

// Ascend walks up n levels toward the root, erroring if there are fewer
// than n ancestors (§4.1 "each leading dot ascends one level").
func Ascend(from *Node, levels int) (*Node, error) {
	cur := from
	for i := 0; i < levels; i++ {
		if cur.Parent == nil {
			return nil, fmt.Errorf("%w: cannot ascend %d level(s) from %q", ErrNotFound, levels, from.Path)
		}
		cur = cur.Parent
	}
	return cur, nil
}
