package interp

import (
	"fmt"
	"strings"

	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/graph"
)

// descendInto computes the nodes a session enters beneath n (outer to
// inner, excluding n itself) and the resulting active leaves, following
// compound default-initial chains, entering every region of a parallel
// simultaneously in document order, and restoring history where present
// (§4.4 "while current_leaf is compound", §4.5, §4.6).
func (s *Session) descendInto(n *graph.Node) (entered []*graph.Node, leaves []*graph.Node, err error) {
	switch n.Kind {
	case config.Parallel:
		for _, child := range n.ChildNodes() {
			entered = append(entered, child)
			childEntered, childLeaves, err := s.descendInto(child)
			if err != nil {
				return nil, nil, err
			}
			entered = append(entered, childEntered...)
			leaves = append(leaves, childLeaves...)
		}
		return entered, leaves, nil

	case config.Compound:
		target, err := s.resolveInitial(n)
		if err != nil {
			return nil, nil, err
		}
		chain := entrySet(target, n)
		entered = append(entered, chain...)
		deeper, deeperLeaves, err := s.descendInto(target)
		if err != nil {
			return nil, nil, err
		}
		entered = append(entered, deeper...)
		leaves = append(leaves, deeperLeaves...)
		return entered, leaves, nil

	case config.History:
		return s.descendHistory(n)

	case config.Condition:
		return s.descendCondition(n)

	default: // atomic, final
		return nil, []*graph.Node{n}, nil
	}
}

// descendCondition resolves a condition pseudostate's outgoing transitions
// immediately, the way a UML choice pseudostate resolves before ever
// settling, rather than becoming or remaining the active leaf (§3.1,
// Glossary "pseudostate": "never a resting leaf"). The first transition
// whose guard passes, in document order, is taken; descent continues from
// its target, which may itself be another pseudostate.
func (s *Session) descendCondition(n *graph.Node) (entered []*graph.Node, leaves []*graph.Node, err error) {
	target, err := s.resolveCondition(n)
	if err != nil {
		return nil, nil, err
	}
	if target == n.Parent || !descendsFrom(target, n.Parent) {
		return nil, nil, &InvalidStateError{Path: target.Path, Err: fmt.Errorf("condition %q target lies outside its parent", n.Path)}
	}
	entered = entrySet(target, n.Parent)
	deeper, deeperLeaves, err := s.descendInto(target)
	if err != nil {
		return nil, nil, err
	}
	entered = append(entered, deeper...)
	leaves = append(leaves, deeperLeaves...)
	return entered, leaves, nil
}

// resolveCondition evaluates n's outgoing transitions in document order and
// returns the first one whose guard holds. A condition pseudostate with no
// satisfied guard is a modeling error, reported as GuardNotSatisfiedError
// (§4.2, §7) rather than left to settle as a leaf.
func (s *Session) resolveCondition(n *graph.Node) (*graph.Node, error) {
	for _, t := range n.Transitions {
		ok, err := s.provider.Eval(s, t.Cond)
		if err != nil {
			return nil, &InvalidActionError{Err: err}
		}
		if ok {
			return resolvePath(s.graph, n, t.Target)
		}
	}
	return nil, &GuardNotSatisfiedError{Event: n.Path}
}

// resolveInitial resolves a compound state's default-child path. Initial is
// interpreted as a path relative to n itself (a single child name, or a
// dotted path to a deeper descendant for configurations that skip
// intermediate defaults) rather than through the global bare/absolute
// resolver, since two unrelated subtrees may legitimately reuse the same
// default-child name.
func (s *Session) resolveInitial(n *graph.Node) (*graph.Node, error) {
	if n.InitialFunc != nil {
		path := n.InitialFunc(s.ActiveNames())
		return s.walkFrom(n, path)
	}
	if n.Initial == "" {
		return nil, &InvalidStateError{Path: n.Path, Err: fmt.Errorf("compound state has no initial child")}
	}
	return s.walkFrom(n, n.Initial)
}

func (s *Session) walkFrom(from *graph.Node, path string) (*graph.Node, error) {
	segs := strings.Split(path, ".")
	target, err := s.graph.Walk(from, segs)
	if err != nil {
		return nil, &InvalidStateError{Path: path, Err: err}
	}
	return target, nil
}

func (s *Session) descendHistory(h *graph.Node) (entered []*graph.Node, leaves []*graph.Node, err error) {
	parent := h.Parent
	if deepLeaves, ok := s.history.deep[h.Path]; ok && h.HistoryKind == config.HistoryDeep {
		seen := make(map[*graph.Node]bool)
		for _, leafPath := range deepLeaves {
			leaf, ok := s.graph.NodeByPath(leafPath)
			if !ok {
				continue
			}
			for _, e := range entrySet(leaf, parent) {
				if !seen[e] {
					seen[e] = true
					entered = append(entered, e)
				}
			}
			leaves = append(leaves, leaf)
		}
		if len(leaves) > 0 {
			return entered, leaves, nil
		}
	}
	if childName, ok := s.history.shallow[h.Path]; ok {
		child, ok := parent.Child(childName)
		if ok {
			entered = append(entered, entrySet(child, parent)...)
			deeper, deeperLeaves, err := s.descendInto(child)
			if err != nil {
				return nil, nil, err
			}
			entered = append(entered, deeper...)
			leaves = append(leaves, deeperLeaves...)
			return entered, leaves, nil
		}
	}

	target, err := resolvePath(s.graph, parent, h.Initial)
	if err != nil {
		return nil, nil, err
	}
	entered = append(entered, entrySet(target, parent)...)
	deeper, deeperLeaves, err := s.descendInto(target)
	if err != nil {
		return nil, nil, err
	}
	entered = append(entered, deeper...)
	leaves = append(leaves, deeperLeaves...)
	return entered, leaves, nil
}
