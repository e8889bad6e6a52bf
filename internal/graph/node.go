package graph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/comalice/statecraft/internal/config"
)

// Node is one resolved state in the tree: a config.StateConfig plus its
// computed Path and Parent/Children links. Children preserve configuration
// order via an ordered map (§3.1 "children: ordered list") rather than a
// plain Go map, which has no iteration order guarantee.
type Node struct {
	Name        string
	Path        string
	Kind        config.StateKind
	HistoryKind config.HistoryKind
	Initial     string
	InitialFunc func(active []string) string
	Datamodel   config.DatamodelConfig
	Transitions []*config.TransitionConfig
	OnEntry     []config.Action
	OnExit      []config.Action

	Parent   *Node
	Children *orderedmap.OrderedMap[string, *Node]
}

func newNode(cfg *config.StateConfig, path string, parent *Node) *Node {
	return &Node{
		Name:        cfg.Name,
		Path:        path,
		Kind:        cfg.Kind,
		HistoryKind: cfg.HistoryKind,
		Initial:     cfg.Initial,
		InitialFunc: cfg.InitialFunc,
		Datamodel:   cfg.Datamodel,
		Transitions: cfg.Transitions,
		OnEntry:     cfg.OnEntry,
		OnExit:      cfg.OnExit,
		Parent:      parent,
		Children:    orderedmap.New[string, *Node](),
	}
}

// Child returns the named direct child, if any.
func (n *Node) Child(name string) (*Node, bool) {
	return n.Children.Get(name)
}

// ChildNames returns direct children's names in configuration order.
func (n *Node) ChildNames() []string {
	names := make([]string, 0, n.Children.Len())
	for pair := n.Children.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// ChildNodes returns direct children in configuration order.
func (n *Node) ChildNodes() []*Node {
	nodes := make([]*Node, 0, n.Children.Len())
	for pair := n.Children.Oldest(); pair != nil; pair = pair.Next() {
		nodes = append(nodes, pair.Value)
	}
	return nodes
}

// IsLeaf reports whether n has no children (atomic, final, history, or an
// empty condition pseudostate).
func (n *Node) IsLeaf() bool { return n.Children.Len() == 0 }

// IsComposite reports whether n is a compound or parallel state.
func (n *Node) IsComposite() bool {
	return n.Kind == config.Compound || n.Kind == config.Parallel
}

// Ancestors returns n's ancestor chain, root first, not including n itself.
func (n *Node) Ancestors() []*Node {
	var chain []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	// reverse to root-first
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Depth returns the number of ancestors (root has depth 0).
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}
