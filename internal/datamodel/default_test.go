package datamodel

import "testing"

type fakeSession struct {
	active []string
}

func (f *fakeSession) Active() []string { return f.active }
func (f *fakeSession) Is(name string) bool {
	for _, a := range f.active {
		if a == name {
			return true
		}
	}
	return false
}

func TestDefaultEvalLiteralsAndIdents(t *testing.T) {
	d := NewDefault()
	d.Env().Set("count", int64(3))
	sess := &fakeSession{}

	cases := []struct {
		expr string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"count == 3", true},
		{"count != 3", false},
		{"count < 5 && count > 0", true},
		{"count >= 10 || count <= 3", true},
		{"!(count == 3)", false},
	}
	for _, tt := range cases {
		got, err := d.Eval(sess, tt.expr)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.expr, err)
		}
		if got != tt.want {
			t.Errorf("Eval(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestDefaultEvalIn(t *testing.T) {
	d := NewDefault()
	d.RegisterIn(func(name string) bool { return name == "on" })
	sess := &fakeSession{active: []string{"on"}}

	got, err := d.Eval(sess, `In("on")`)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !got {
		t.Error("expected In(\"on\") to be true")
	}

	got, err = d.Eval(sess, `In("off")`)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if got {
		t.Error("expected In(\"off\") to be false")
	}
}

func TestDefaultExecArithmeticAndAssignSource(t *testing.T) {
	d := NewDefault()
	d.Env().Set("x", int64(10))
	sess := &fakeSession{}

	v, err := d.Exec(sess, "x + 5")
	if err != nil {
		t.Fatalf("Exec error: %v", err)
	}
	if v != float64(15) {
		t.Errorf("Exec(x + 5) = %v, want 15", v)
	}
}

func TestDefaultEvalDottedFieldAccess(t *testing.T) {
	d := NewDefault()
	d.Env().Set("data", map[string]any{"name": "alice"})
	sess := &fakeSession{}

	v, err := d.Exec(sess, "data.name")
	if err != nil {
		t.Fatalf("Exec error: %v", err)
	}
	if v != "alice" {
		t.Errorf("Exec(data.name) = %v, want alice", v)
	}
}

func TestDefaultEvalCallable(t *testing.T) {
	d := NewDefault()
	sess := &fakeSession{active: []string{"on"}}
	called := false
	guard := func(s Session) bool {
		called = true
		return s.Is("on")
	}
	got, err := d.Eval(sess, guard)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	if !got || !called {
		t.Error("callable guard was not invoked correctly")
	}
}

func TestDefaultEvalUndefinedIdentifier(t *testing.T) {
	d := NewDefault()
	sess := &fakeSession{}
	if _, err := d.Eval(sess, "missing == 1"); err == nil {
		t.Error("expected error for undefined identifier")
	}
}

func TestNullRejectsSourceStrings(t *testing.T) {
	n := NewNull()
	sess := &fakeSession{}
	if _, err := n.Eval(sess, "x == 1"); err == nil {
		t.Error("expected Null to reject source string guard")
	}
	if _, err := n.Exec(sess, "x + 1"); err == nil {
		t.Error("expected Null to reject source string action")
	}
}

func TestNullAcceptsCallablesAndBooleans(t *testing.T) {
	n := NewNull()
	sess := &fakeSession{}
	got, err := n.Eval(sess, true)
	if err != nil || !got {
		t.Errorf("Eval(true) = %v, %v", got, err)
	}
	got, err = n.Eval(sess, func(Session) bool { return false })
	if err != nil || got {
		t.Errorf("Eval(callable) = %v, %v", got, err)
	}
}
