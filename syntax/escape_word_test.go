package syntax

import "testing"

// TestBoundaryEscapesGatedOnWordFlag confirms \b/\B compile to the
// plain Boundary node when WORD is off and only switch to the
// WORD-flag-aware DefaultBoundary when WORD is active (spec §4.2.2).
func TestBoundaryEscapesGatedOnWordFlag(t *testing.T) {
	_, root, err := Parse(`\b`, 0, 0, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := root.(*Boundary); !ok {
		t.Fatalf("expected *Boundary with WORD off, got %T", root)
	}

	_, root, err = Parse(`\b`, 0, WORD, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := root.(*DefaultBoundary); !ok {
		t.Fatalf("expected *DefaultBoundary with WORD on, got %T", root)
	}
}

// TestWordPositionEscapesGatedOnWordFlag confirms \m/\M only become
// StartOfWord/EndOfWord assertions under the WORD flag; otherwise they
// fall through to their literal-character meaning like any other
// unrecognised escape letter (spec §4.2.2 parenthetical).
func TestWordPositionEscapesGatedOnWordFlag(t *testing.T) {
	_, root, err := Parse(`\m`, 0, 0, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, ok := root.(*Character)
	if !ok || c.Value != 'm' {
		t.Fatalf("expected literal 'm' with WORD off, got %#v", root)
	}

	_, root, err = Parse(`\m`, 0, WORD, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := root.(*StartOfWord); !ok {
		t.Fatalf("expected *StartOfWord with WORD on, got %T", root)
	}

	_, root, err = Parse(`\M`, 0, WORD, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := root.(*EndOfWord); !ok {
		t.Fatalf("expected *EndOfWord with WORD on, got %T", root)
	}
}
