package graph

import (
	"errors"
	"testing"

	"github.com/comalice/statecraft/internal/config"
)

func switchConfig() config.MachineConfig {
	root := config.New("switch", config.Compound).WithInitial("off")
	root.AddState(config.New("off").On("toggle", "on"))
	root.AddState(config.New("on").On("toggle", "off"))
	return config.MachineConfig{ID: "switch", Root: root}
}

func TestBuildResolvesAbsoluteAndBare(t *testing.T) {
	g, err := Build(engineConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	n, err := g.Resolve("engine.on.low")
	if err != nil {
		t.Fatalf("Resolve absolute: %v", err)
	}
	if n.Path != "engine.on.low" {
		t.Errorf("Resolve absolute got %q", n.Path)
	}
	n, err = g.Resolve("low")
	if err != nil {
		t.Fatalf("Resolve bare: %v", err)
	}
	if n.Path != "engine.on.low" {
		t.Errorf("Resolve bare got %q", n.Path)
	}
}

func TestBuildRejectsUnresolvableTarget(t *testing.T) {
	root := config.New("root", config.Compound).WithInitial("a")
	root.AddState(config.New("a").On("go", "nowhere"))
	root.AddState(config.New("b"))
	_, err := Build(config.MachineConfig{ID: "m", Root: root})
	if err == nil {
		t.Fatal("expected error for unresolvable transition target")
	}
}

func TestBuildDefersRelativeTargetValidation(t *testing.T) {
	root := config.New("root", config.Compound).WithInitial("a")
	root.AddState(config.New("a").On("go", "..b"))
	root.AddState(config.New("b"))
	if _, err := Build(config.MachineConfig{ID: "m", Root: root}); err != nil {
		t.Fatalf("relative target should be deferred, got: %v", err)
	}
}

func TestResolveBareFirstHitWins(t *testing.T) {
	root := config.New("root", config.Parallel)
	a := root.State("a", config.Compound)
	a.Initial = "shared"
	a.State("shared")
	a.State("other")
	b := root.State("b", config.Compound)
	b.Initial = "x"
	b.State("x")
	b.State("shared")

	g, err := Build(config.MachineConfig{ID: "m", Root: root})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	n, err := g.Resolve("shared")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if n.Path != "root.a.shared" {
		t.Errorf("Resolve(shared) = %q, want root.a.shared (breadth-first first hit)", n.Path)
	}
}

func TestAscend(t *testing.T) {
	g, err := Build(engineConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	low, _ := g.NodeByPath("engine.on.low")
	on, err := Ascend(low, 1)
	if err != nil {
		t.Fatalf("Ascend(1): %v", err)
	}
	if on.Name != "on" {
		t.Errorf("Ascend(1) = %q, want on", on.Name)
	}
	if _, err := Ascend(low, 10); !errors.Is(err, ErrNotFound) {
		t.Errorf("Ascend(10) error = %v, want ErrNotFound", err)
	}
}

func TestSplice(t *testing.T) {
	g, err := Build(switchConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	off, _ := g.NodeByPath("switch.off")
	newChild := config.New("blinking")
	if err := g.Splice(g.Root, newChild); err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if _, ok := g.NodeByPath("switch.blinking"); !ok {
		t.Fatal("expected switch.blinking to be registered by path")
	}
	n, err := g.Resolve("blinking")
	if err != nil {
		t.Fatalf("Resolve(blinking): %v", err)
	}
	if n.Path != "switch.blinking" {
		t.Errorf("Resolve(blinking) = %q", n.Path)
	}
	_ = off
}

func TestSpliceBareNameAppendsChronologically(t *testing.T) {
	g, err := Build(switchConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// "off" already resolves to switch.off; splicing a new node named "off"
	// under a different parent must not displace the existing resolution.
	shadow := config.New("shadow", config.Compound).WithInitial("off")
	shadow.AddState(config.New("off"))
	if err := g.Splice(g.Root, shadow); err != nil {
		t.Fatalf("Splice: %v", err)
	}
	n, err := g.Resolve("off")
	if err != nil {
		t.Fatalf("Resolve(off): %v", err)
	}
	if n.Path != "switch.off" {
		t.Errorf("Resolve(off) = %q, want switch.off (first hit wins chronologically)", n.Path)
	}
}

func TestValidateTargetStatic(t *testing.T) {
	g, err := Build(switchConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := g.ValidateTargetStatic("on"); err != nil {
		t.Errorf("ValidateTargetStatic(on): %v", err)
	}
	if err := g.ValidateTargetStatic("..missing"); err != nil {
		t.Errorf("ValidateTargetStatic should defer relative targets, got: %v", err)
	}
	if err := g.ValidateTargetStatic("nope"); err == nil {
		t.Error("expected error for unresolvable bare target")
	}
}
