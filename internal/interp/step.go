package interp

import (
	"github.com/comalice/statecraft/internal/config"
	"github.com/comalice/statecraft/internal/graph"
)

// DefaultFixpointBound is the default eventless-closure iteration cap
// (§4.4, §8): "N configurable; default 1,000".
const DefaultFixpointBound = 1000

// Trigger runs one macrostep: select and execute a transition for event,
// then settle any eventless closure, per §4.4's trigger loop. A rejected
// event (InvalidTransitionError / GuardNotSatisfiedError) leaves the active
// configuration untouched.
func (s *Session) Trigger(event string, payload any) (any, error) {
	if s.faulted {
		return nil, &InvalidStateError{Path: event, Err: errSessionFaulted}
	}
	s.payload = payload

	result, err := s.selectTransitions(event)
	if err != nil {
		return nil, err
	}
	if len(result.candidates) == 0 {
		if result.anyMatched {
			return nil, &GuardNotSatisfiedError{Event: event}
		}
		return nil, &InvalidTransitionError{Event: event}
	}

	for _, c := range result.candidates {
		if err := s.executeTransition(c); err != nil {
			return nil, err
		}
	}

	if err := s.settleEventless(); err != nil {
		return nil, err
	}
	return nil, nil
}

func (s *Session) executeTransition(c candidate) error {
	target, err := resolvePath(s.graph, c.leaf, c.trans.Target)
	if err != nil {
		return err
	}
	s.logger.Debug("transition", "source", c.owner.Path, "event", c.trans.Event, "target", target.Path, "session", s.id)

	l := lca(c.leaf, target)
	isInternal := c.trans.Type == config.Internal && descendsFrom(target, c.owner)

	var exits []*graph.Node
	if isInternal {
		// internal transition from a compound owner to a descendant: owner
		// itself is not exited or re-entered (§4.4).
		exits = exitSet(c.leaf, c.owner)
	} else {
		exits = exitSet(c.leaf, l)
	}

	oldLeaves := s.leaves
	for _, n := range exits {
		if err := s.runActions(n.OnExit); err != nil {
			return err
		}
	}
	recordHistoryForExits(s, exits, oldLeaves)
	s.removeLeaf(c.leaf)

	// Any Parallel node in the exit chain may have sibling regions with
	// their own active leaf, never touched by this candidate's own chain.
	// Those leaves are about to be torn down along with their shared
	// ancestor and must be exited too, or they would be left active under
	// a subtree that no longer exists (§4.5).
	handled := map[*graph.Node]bool{c.leaf: true}
	for _, n := range exits {
		if n.Kind != config.Parallel {
			continue
		}
		for _, region := range n.ChildNodes() {
			for _, other := range oldLeaves {
				if handled[other] || !descendsFrom(other, region) {
					continue
				}
				handled[other] = true
				otherExits := exitSet(other, n)
				for _, m := range otherExits {
					if err := s.runActions(m.OnExit); err != nil {
						return err
					}
				}
				recordHistoryForExits(s, otherExits, oldLeaves)
				s.removeLeaf(other)
			}
		}
	}

	if err := s.runActions(c.trans.Content); err != nil {
		return err
	}

	// entries runs outermost to innermost and already ends with target
	// itself (entrySet includes its own starting node).
	var entries []*graph.Node
	if isInternal {
		entries = entrySet(target, c.owner)
	} else {
		entries = entrySet(target, l)
	}
	for _, n := range entries {
		if err := s.bindData(n); err != nil {
			return err
		}
		if err := s.runActions(n.OnEntry); err != nil {
			return err
		}
	}

	deeperEntries, leaves, err := s.descendInto(target)
	if err != nil {
		return err
	}
	for _, n := range deeperEntries {
		if err := s.bindData(n); err != nil {
			return err
		}
		if err := s.runActions(n.OnEntry); err != nil {
			return err
		}
	}
	if len(leaves) == 0 {
		leaves = []*graph.Node{target}
	}
	s.addLeaves(leaves)
	return nil
}

// recordHistoryForExits captures history for every exited node that has a
// history child, using the pre-exit leaf set (§4.6).
func recordHistoryForExits(s *Session, exits []*graph.Node, oldLeaves []*graph.Node) {
	for _, n := range exits {
		s.history.record(n, oldLeaves)
	}
}

// settleEventless loops until nothing is left to do or the fixpoint bound
// is exceeded (§4.4, §8). Each iteration either processes the oldest
// internally raised event or, when the internal queue is empty, executes
// every enabled eventless transition that survives selection (at most one
// per active leaf, after region-conflict resolution).
func (s *Session) settleEventless() error {
	for i := 0; ; i++ {
		if i >= s.fixpointBound {
			s.faulted = true
			s.logger.Warn("eventless closure exceeded fixpoint bound", "bound", s.fixpointBound, "session", s.id)
			return &SessionFaultError{Bound: s.fixpointBound}
		}
		if len(s.internalQueue) > 0 {
			ev := s.internalQueue[0]
			s.internalQueue = s.internalQueue[1:]
			if _, err := s.triggerInternal(ev.Name); err != nil {
				return err
			}
			continue
		}
		result, err := s.selectTransitions("")
		if err != nil {
			return err
		}
		if len(result.candidates) == 0 {
			return nil
		}
		for _, c := range result.candidates {
			if err := s.executeTransition(c); err != nil {
				return err
			}
		}
	}
}

// triggerInternal processes one internally-raised event as its own
// micro-step (§5 "each as its own micro-step"), without re-running
// settleEventless — the outer loop in settleEventless already handles that.
func (s *Session) triggerInternal(event string) (any, error) {
	result, err := s.selectTransitions(event)
	if err != nil {
		return nil, err
	}
	if len(result.candidates) == 0 {
		if result.anyMatched {
			return nil, &GuardNotSatisfiedError{Event: event}
		}
		return nil, &InvalidTransitionError{Event: event}
	}
	for _, c := range result.candidates {
		if err := s.executeTransition(c); err != nil {
			return nil, err
		}
	}
	return nil, nil
}
