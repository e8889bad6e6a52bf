package graph

import (
	"fmt"

	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/ident"
)

// Splice attaches cfg as a new child of parent (§4.7 add_state), building
// its subtree and registering every new node's path and bare name. New
// bare-name entries are appended after whatever already resolves for that
// name — a dynamically added state never displaces an existing bare-name
// match that predates it, matching §4.1's "first hit wins" read
// chronologically rather than recomputing a fresh breadth-first search on
// every call.
func (g *Graph) Splice(parent *Node, cfg *config.StateConfig) error {
	childPath := ident.Join(parent.Path, cfg.Name)
	child := g.build(cfg, childPath, parent)
	if err := g.validateStaticTargets(child); err != nil {
		// build already registered the new subtree's paths; drop them again.
		for queue := []*Node{child}; len(queue) > 0; queue = queue[1:] {
			delete(g.byPath, queue[0].Path)
			queue = append(queue, queue[0].ChildNodes()...)
		}
		return err
	}
	parent.Children.Set(child.Name, child)
	g.registerBFS(child)
	return nil
}

// registerBFS adds n and its descendants to byPath/byName in breadth-first
// order rooted at n.
func (g *Graph) registerBFS(n *Node) {
	queue := []*Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		g.byPath[cur.Path] = cur
		g.byName[cur.Name] = append(g.byName[cur.Name], cur)
		queue = append(queue, cur.ChildNodes()...)
	}
}

// ValidateTargetStatic checks that a non-relative transition target
// resolves against the current tree, used by add_transition (§4.7).
// Relative targets are accepted unconditionally since their resolvability
// depends on the active leaf at trigger time.
func (g *Graph) ValidateTargetStatic(target string) error {
	p, err := ident.Parse(target)
	if err != nil {
		return err
	}
	if p.Kind == ident.Relative {
		return nil
	}
	if _, err := g.Resolve(target); err != nil {
		return fmt.Errorf("transition target %q: %w", target, err)
	}
	return nil
}
