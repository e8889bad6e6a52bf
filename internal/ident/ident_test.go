package ident

import "testing"

func TestValidateName(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"light", true},
		{"on:low", true},
		{"a1-b_2", true},
		{"", false},
		{"1abc", false},
		{"has space", false},
		{"has.dot", false},
	}
	for _, c := range cases {
		err := ValidateName(c.name)
		if (err == nil) != c.ok {
			t.Errorf("ValidateName(%q) err=%v, want ok=%v", c.name, err, c.ok)
		}
	}
}

func TestParseAbsolute(t *testing.T) {
	p, err := Parse("engine.on.low")
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != Absolute {
		t.Errorf("got kind %v want Absolute", p.Kind)
	}
	if len(p.Segments) != 3 || p.Segments[2] != "low" {
		t.Errorf("got segments %v", p.Segments)
	}
}

func TestParseBare(t *testing.T) {
	p, err := Parse("low")
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != Bare {
		t.Errorf("got kind %v want Bare", p.Kind)
	}
}

func TestParseRelative(t *testing.T) {
	p, err := Parse(".sibling")
	if err != nil {
		t.Fatal(err)
	}
	if p.Kind != Relative || p.Up != 1 || p.Segments[0] != "sibling" {
		t.Errorf("got %+v", p)
	}

	p2, err := Parse("..uncle.cousin")
	if err != nil {
		t.Fatal(err)
	}
	if p2.Up != 2 || len(p2.Segments) != 2 {
		t.Errorf("got %+v", p2)
	}

	p3, err := Parse(".")
	if err != nil {
		t.Fatal(err)
	}
	if p3.Kind != Relative || p3.Up != 0 || len(p3.Segments) != 0 {
		t.Errorf("got %+v", p3)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestParseInvalidSegment(t *testing.T) {
	if _, err := Parse("a..1bad"); err == nil {
		t.Error("expected error for invalid segment")
	}
}
