package interp

import (
	"errors"
	"testing"

	"github.com/comalice/statecraft/internal/config"
)

func stoplightConfig() config.MachineConfig {
	light := config.New("light", config.Compound).WithInitial("red")
	light.AddState(config.New("red").On("turn_green", "green"))
	light.AddState(config.New("green").On("turn_yellow", "yellow"))
	light.AddState(config.New("yellow").On("turn_red", "red"))
	return config.MachineConfig{ID: "stoplight", Root: light}
}

func TestTriggerCyclesThroughStates(t *testing.T) {
	s, err := New(stoplightConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.State() != "red" {
		t.Fatalf("initial = %q, want red", s.State())
	}
	if _, err := s.Trigger("turn_green", nil); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if s.State() != "green" {
		t.Fatalf("state = %q, want green", s.State())
	}
}

func TestTriggerUnknownEventIsInvalidTransition(t *testing.T) {
	s, err := New(stoplightConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = s.Trigger("bogus", nil)
	var ite *InvalidTransitionError
	if !errors.As(err, &ite) {
		t.Fatalf("err = %v, want *InvalidTransitionError", err)
	}
	if s.State() != "red" {
		t.Errorf("state changed on rejected event: %q", s.State())
	}
}

func eventlessCascadeConfig() config.MachineConfig {
	root := config.New("root", config.Compound).WithInitial("a")
	a := config.New("a").On("", "b")
	root.AddState(a)
	b := config.New("b").On("", "c")
	root.AddState(b)
	root.AddState(config.New("c"))
	return config.MachineConfig{ID: "cascade", Root: root}
}

func TestEventlessCascadeSettlesAtConstruction(t *testing.T) {
	s, err := New(eventlessCascadeConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.State() != "c" {
		t.Fatalf("state = %q, want c (eventless closure should cascade a->b->c)", s.State())
	}
}

func selfLoopConfig() config.MachineConfig {
	root := config.New("root", config.Compound).WithInitial("spin")
	root.AddState(config.New("spin").On("", "spin"))
	return config.MachineConfig{ID: "spin", Root: root}
}

func TestEventlessSelfLoopFaultsSession(t *testing.T) {
	opts := Options{FixpointBound: 5}
	_, err := New(selfLoopConfig(), opts)
	var sfe *SessionFaultError
	if !errors.As(err, &sfe) {
		t.Fatalf("err = %v, want *SessionFaultError", err)
	}
}

func guardedForkConfig() config.MachineConfig {
	root := config.New("root", config.Compound).WithInitial("pending")
	pending := config.New("pending")
	pending.On("result", "accepted", config.WithGuard("accepted == true"))
	pending.On("result", "rejected", config.WithGuard("accepted == false"))
	root.AddState(pending)
	root.AddState(config.New("accepted"))
	root.AddState(config.New("rejected"))
	return config.MachineConfig{ID: "fork", Root: root}
}

func TestGuardedForkPicksEnabledBranch(t *testing.T) {
	s, err := New(guardedForkConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Provider().Env().Set("accepted", true)
	if _, err := s.Trigger("result", nil); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if s.State() != "accepted" {
		t.Fatalf("state = %q, want accepted", s.State())
	}
}

func TestGuardedForkAllRejectedReportsGuardNotSatisfied(t *testing.T) {
	s, err := New(guardedForkConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Neither "accepted == true" nor "accepted == false" holds for this
	// value, so every transition on the event is matched but rejected.
	s.Provider().Env().Set("accepted", "maybe")
	_, err = s.Trigger("result", nil)
	var gnse *GuardNotSatisfiedError
	if !errors.As(err, &gnse) {
		t.Fatalf("err = %v, want *GuardNotSatisfiedError", err)
	}
}

func historyConfig() config.MachineConfig {
	root := config.New("root", config.Compound).WithInitial("active")
	active := root.State("active", config.Compound)
	active.Initial = "step1"
	active.State("step1").On("next", "step2")
	active.State("step2").On("next", "step3")
	active.State("step3")
	active.On("suspend", "suspended")
	h := config.New("hist", config.History)
	h.HistoryKind = config.HistoryShallow
	h.Initial = "step1"
	active.AddState(h)
	suspended := config.New("suspended")
	suspended.On("resume", "hist")
	root.AddState(suspended)
	return config.MachineConfig{ID: "history", Root: root}
}

func TestShallowHistoryRestoresLastActiveChild(t *testing.T) {
	s, err := New(historyConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.Trigger("next", nil); err != nil {
		t.Fatalf("Trigger(next): %v", err)
	}
	if s.State() != "step2" {
		t.Fatalf("state = %q, want step2", s.State())
	}
	if _, err := s.Trigger("suspend", nil); err != nil {
		t.Fatalf("Trigger(suspend): %v", err)
	}
	if s.State() != "suspended" {
		t.Fatalf("state = %q, want suspended", s.State())
	}
	if _, err := s.Trigger("resume", nil); err != nil {
		t.Fatalf("Trigger(resume): %v", err)
	}
	if s.State() != "step2" {
		t.Fatalf("state = %q, want step2 (history should restore it)", s.State())
	}
}

func parallelConfig() config.MachineConfig {
	root := config.New("root", config.Parallel)
	regionA := root.State("a", config.Compound)
	regionA.Initial = "a1"
	regionA.State("a1").On("flipA", "a2")
	regionA.State("a2")
	regionB := root.State("b", config.Compound)
	regionB.Initial = "b1"
	regionB.State("b1").On("flipB", "b2")
	regionB.State("b2")
	return config.MachineConfig{ID: "parallel", Root: root}
}

func TestParallelRegionsTransitionIndependently(t *testing.T) {
	s, err := New(parallelConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.Is("a1") || !s.Is("b1") {
		t.Fatalf("Active() = %v, want a1 and b1", s.Active())
	}
	if _, err := s.Trigger("flipA", nil); err != nil {
		t.Fatalf("Trigger(flipA): %v", err)
	}
	if !s.Is("a2") || !s.Is("b1") {
		t.Fatalf("Active() = %v, want a2 and b1", s.Active())
	}
}

// outerWinsConfig nests a parallel state two levels deep so that the two
// regions' own "go" transitions climb to different ancestors (one only as
// far as "outer", the other all the way to root) while both exit chains
// pass through the shared parallel node "p" — a genuine overlap, not just
// a shared-ancestor dedup.
func outerWinsConfig() config.MachineConfig {
	root := config.New("root", config.Compound).WithInitial("outer")

	regionA := config.New("regionA", config.Compound).WithInitial("a1")
	regionA.AddState(config.New("a1").On("go", "fallback"))
	regionB := config.New("regionB", config.Compound).WithInitial("b1")
	regionB.AddState(config.New("b1").On("go", "farAway"))
	p := config.New("p", config.Parallel)
	p.AddState(regionA)
	p.AddState(regionB)

	outer := config.New("outer", config.Compound).WithInitial("p")
	outer.AddState(p)
	outer.AddState(config.New("fallback"))

	root.AddState(outer)
	root.AddState(config.New("farAway"))
	return config.MachineConfig{ID: "conflict", Root: root}
}

// conditionConfig routes through a choice pseudostate that inspects "score"
// to pick between two branches without ever settling on the pseudostate
// itself.
func conditionConfig() config.MachineConfig {
	root := config.New("root", config.Compound).WithInitial("start")
	root.AddState(config.New("start").On("go", "choice"))
	choice := config.New("choice", config.Condition)
	choice.On("", "high", config.WithGuard("score >= 10"))
	choice.On("", "low")
	root.AddState(choice)
	root.AddState(config.New("high"))
	root.AddState(config.New("low"))
	return config.MachineConfig{ID: "choice", Root: root}
}

func TestConditionPseudostateNeverSettlesAsLeaf(t *testing.T) {
	s, err := New(conditionConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Provider().Env().Set("score", int64(20))
	if _, err := s.Trigger("go", nil); err != nil {
		t.Fatalf("Trigger(go): %v", err)
	}
	if s.State() != "high" {
		t.Fatalf("state = %q, want high", s.State())
	}
	if s.Is("choice") {
		t.Error("condition pseudostate must never be a resting leaf")
	}
}

func TestConditionPseudostateFallsThroughToDefaultBranch(t *testing.T) {
	s, err := New(conditionConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Provider().Env().Set("score", int64(1))
	if _, err := s.Trigger("go", nil); err != nil {
		t.Fatalf("Trigger(go): %v", err)
	}
	if s.State() != "low" {
		t.Fatalf("state = %q, want low", s.State())
	}
}

func TestConditionPseudostateNoGuardSatisfiedReportsGuardNotSatisfied(t *testing.T) {
	root := config.New("root", config.Compound).WithInitial("start")
	root.AddState(config.New("start").On("go", "choice"))
	choice := config.New("choice", config.Condition)
	choice.On("", "high", config.WithGuard("score >= 10"))
	root.AddState(choice)
	root.AddState(config.New("high"))

	s, err := New(config.MachineConfig{ID: "choice", Root: root}, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Provider().Env().Set("score", int64(1))
	_, err = s.Trigger("go", nil)
	var gnse *GuardNotSatisfiedError
	if !errors.As(err, &gnse) {
		t.Fatalf("err = %v, want *GuardNotSatisfiedError", err)
	}
}

func TestOuterScopeWinsOnOverlappingExitSets(t *testing.T) {
	s, err := New(outerWinsConfig(), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !s.Is("a1") || !s.Is("b1") {
		t.Fatalf("Active() = %v, want a1 and b1", s.Active())
	}
	if _, err := s.Trigger("go", nil); err != nil {
		t.Fatalf("Trigger(go): %v", err)
	}
	// regionB's "go" (lca=root) and regionA's "go" (lca=outer) both match
	// and share "p" in their exit sets; the transition reaching the
	// shallower LCA wins, so the session ends up at root-level "farAway"
	// with regionA's competing transition suppressed entirely.
	if !s.Is("farAway") {
		t.Fatalf("Active() = %v, want farAway", s.Active())
	}
	if s.Is("fallback") {
		t.Error("regionA's suppressed transition should not have fired")
	}
}
