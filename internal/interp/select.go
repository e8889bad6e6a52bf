package interp

import (
	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/graph"
)

// candidate is one enabled transition found while walking a single active
// leaf's ancestor chain.
type candidate struct {
	leaf  *graph.Node
	owner *graph.Node
	trans *config.TransitionConfig
}

// selectionResult reports what §4.2's search found across every active
// leaf/region, distinguishing "nothing matched the event at all" from
// "something matched but every guard rejected it" per §7.
type selectionResult struct {
	candidates []candidate
	anyMatched bool
}

// selectTransitions walks each active leaf outward collecting the first
// enabled transition per leaf (innermost scope wins, document order within
// a scope — §4.2), then deduplicates transitions shared by multiple
// leaves (a transition registered on a common ancestor above a parallel
// split) and resolves conflicts between disjoint regions (§4.5).
func (s *Session) selectTransitions(event string) (selectionResult, error) {
	var result selectionResult
	seen := make(map[*config.TransitionConfig]bool)

	for _, leaf := range s.leaves {
		for n := leaf; n != nil; n = n.Parent {
			found, matchedAny, err := firstEnabled(s, n, event)
			if err != nil {
				return selectionResult{}, err
			}
			if matchedAny {
				result.anyMatched = true
			}
			if found != nil {
				if !seen[found] {
					seen[found] = true
					result.candidates = append(result.candidates, candidate{leaf: leaf, owner: n, trans: found})
				}
				break
			}
		}
	}

	result.candidates = s.resolveRegionConflicts(result.candidates)
	return result, nil
}

func firstEnabled(s *Session, owner *graph.Node, event string) (*config.TransitionConfig, bool, error) {
	matchedAny := false
	for _, t := range owner.Transitions {
		if t.Event != event {
			continue
		}
		matchedAny = true
		ok, err := s.provider.Eval(s, t.Cond)
		if err != nil {
			return nil, matchedAny, &InvalidActionError{Err: err}
		}
		if ok {
			return t, matchedAny, nil
		}
	}
	return nil, matchedAny, nil
}

// resolveRegionConflicts drops candidates whose exit set overlaps a
// candidate with a shallower (more outward) LCA, logging a diagnostic for
// each suppression (§4.5 "the outer-scope transition wins and the other is
// suppressed with a diagnostic").
func (s *Session) resolveRegionConflicts(candidates []candidate) []candidate {
	if len(candidates) < 2 {
		return candidates
	}

	targets := make([]*graph.Node, len(candidates))
	lcas := make([]*graph.Node, len(candidates))
	exits := make([][]*graph.Node, len(candidates))
	for i, c := range candidates {
		target, err := resolvePath(s.graph, c.leaf, c.trans.Target)
		if err != nil {
			target = c.leaf // best-effort; a bad target surfaces later when executed
		}
		targets[i] = target
		lcas[i] = lca(c.leaf, target)
		exits[i] = exitSet(c.leaf, lcas[i])
	}

	suppressed := make([]bool, len(candidates))
	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if suppressed[i] || suppressed[j] {
				continue
			}
			if !overlaps(exits[i], exits[j]) {
				continue
			}
			loser := i
			if lcas[j].Depth() < lcas[i].Depth() {
				loser = i
			} else {
				loser = j
			}
			winner := i
			if loser == i {
				winner = j
			}
			suppressed[loser] = true
			s.logger.Warn("suppressed conflicting parallel transition",
				"suppressed_owner", candidates[loser].owner.Path,
				"winning_owner", candidates[winner].owner.Path,
				"session", s.id)
		}
	}

	out := make([]candidate, 0, len(candidates))
	for i, c := range candidates {
		if !suppressed[i] {
			out = append(out, c)
		}
	}
	return out
}

func overlaps(a, b []*graph.Node) bool {
	set := make(map[*graph.Node]bool, len(a))
	for _, n := range a {
		set[n] = true
	}
	for _, n := range b {
		if set[n] {
			return true
		}
	}
	return false
}
