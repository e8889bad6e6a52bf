package interp

import (
	"fmt"

	"github.com/comalice/statecraft/internal/graph"
	"github.com/comalice/statecraft/internal/ident"
)

// resolvePath implements §4.1 in full: absolute and bare paths delegate to
// the graph; relative paths ascend from anchor (the active leaf of the
// region the lookup is being performed for) before descending.
func resolvePath(g *graph.Graph, anchor *graph.Node, path string) (*graph.Node, error) {
	p, err := ident.Parse(path)
	if err != nil {
		return nil, &InvalidStateError{Path: path, Err: err}
	}
	if p.Kind != ident.Relative {
		n, err := g.Resolve(path)
		if err != nil {
			return nil, &InvalidStateError{Path: path, Err: err}
		}
		return n, nil
	}

	if anchor == nil {
		return nil, &InvalidStateError{Path: path, Err: fmt.Errorf("relative path requires an active leaf anchor")}
	}
	base, err := graph.Ascend(anchor, p.Up)
	if err != nil {
		return nil, &InvalidStateError{Path: path, Err: err}
	}
	n, err := g.Walk(base, p.Segments)
	if err != nil {
		return nil, &InvalidStateError{Path: path, Err: err}
	}
	return n, nil
}

// lca returns the least common ancestor of a and b, inclusive of either
// endpoint when one is an ancestor of the other.
func lca(a, b *graph.Node) *graph.Node {
	depthOf := func(n *graph.Node) int { return n.Depth() }
	for a.Depth() > depthOf(b) {
		a = a.Parent
	}
	for b.Depth() > depthOf(a) {
		b = b.Parent
	}
	for a != b {
		a = a.Parent
		b = b.Parent
	}
	return a
}

// exitSet returns the chain from source up to but not including l, source
// first (innermost first, matching execution order directly).
func exitSet(source, l *graph.Node) []*graph.Node {
	var chain []*graph.Node
	for n := source; n != l; n = n.Parent {
		chain = append(chain, n)
	}
	return chain
}

// entrySet returns the chain from l's child on the target branch down to
// target, outermost first.
func entrySet(target, l *graph.Node) []*graph.Node {
	var chain []*graph.Node
	for n := target; n != l; n = n.Parent {
		chain = append(chain, n)
	}
	// reverse: chain currently target-first (innermost first); we want
	// outermost first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
