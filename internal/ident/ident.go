// Package ident validates state identifiers and parses the path grammar
// from §4.1: absolute dotted paths, bare names, and relative paths
// beginning with one or more leading dots. It has no knowledge of the
// state graph itself — internal/graph and internal/interp do the actual
// resolution, using the parse result this package produces.
package ident

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmpty = errors.New("identifier cannot be empty")

// ValidateName checks a single segment against `[A-Za-z][A-Za-z0-9:_-]*`.
// Segments come from the application domain (e.g. "light", "on:low"). '.'
// is rejected inside a segment because paths are split on '.', and a
// literal dot inside one segment would make path parsing ambiguous.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmpty
	}
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i == 0:
			return fmt.Errorf("identifier %q: must start with a letter", name)
		case r >= '0' && r <= '9', r == ':', r == '_', r == '-':
		default:
			return fmt.Errorf("identifier %q: invalid character %q at position %d", name, r, i)
		}
	}
	return nil
}

// PathKind classifies a parsed path per §4.1.
type PathKind int

const (
	// Absolute: dotted names walked from root, e.g. "engine.on.low".
	Absolute PathKind = iota
	// Bare: a single segment with no leading dots, resolved by
	// breadth-first search from root.
	Bare
	// Relative: one or more leading dots, ascending from the current
	// active leaf before descending the remaining segments.
	Relative
)

// Path is a parsed path per §4.1.
type Path struct {
	Kind PathKind
	// Up is the number of leading dots for a Relative path (1 = parent).
	Up int
	// Segments are the remaining dotted identifier segments to descend,
	// in order. For Bare, exactly one segment. For "." alone (current
	// leaf), Segments is empty and Up is 0.
	Segments []string
	// Raw is the original, unparsed string (for error messages).
	Raw string
}

// Parse splits a path string into its component segments and classifies it.
// It validates every identifier segment but does not attempt resolution —
// that requires a graph.
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, ErrEmpty
	}

	if path == "." {
		return Path{Kind: Relative, Up: 0, Raw: path}, nil
	}

	if path[0] == '.' {
		up := 0
		rest := path
		for len(rest) > 0 && rest[0] == '.' {
			up++
			rest = rest[1:]
		}
		var segs []string
		if rest != "" {
			segs = strings.Split(rest, ".")
			for _, s := range segs {
				if err := ValidateName(s); err != nil {
					return Path{}, fmt.Errorf("relative path %q: %w", path, err)
				}
			}
		}
		return Path{Kind: Relative, Up: up, Segments: segs, Raw: path}, nil
	}

	segs := strings.Split(path, ".")
	for _, s := range segs {
		if err := ValidateName(s); err != nil {
			return Path{}, fmt.Errorf("path %q: %w", path, err)
		}
	}
	if len(segs) == 1 {
		return Path{Kind: Bare, Segments: segs, Raw: path}, nil
	}
	return Path{Kind: Absolute, Segments: segs, Raw: path}, nil
}

// Join composes a dotted absolute path from segments, root-first.
func Join(segments ...string) string {
	return strings.Join(segments, ".")
}
