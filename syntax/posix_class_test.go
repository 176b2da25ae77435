package syntax

import "testing"

// TestPosixClassRecognisedNameStillWorks is a regression check that the
// tryParsePosixClass refactor didn't change behaviour for a genuinely
// recognised name.
func TestPosixClassRecognisedNameStillWorks(t *testing.T) {
	_, root, err := Parse(`[[:alpha:]]`, 0, 0, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root == nil {
		t.Fatal("expected a non-nil class node for [:alpha:]")
	}
}

// TestPosixClassUnknownNameFallsBackToLiteral confirms an unrecognised
// `[:name:]` is not a hard error: the scanner rewinds to just before
// the inner '[' and its characters are treated as ordinary class
// members (spec §4.2.3), not as a nested `[...]` class.
func TestPosixClassUnknownNameFallsBackToLiteral(t *testing.T) {
	_, root, err := Parse(`[[:bogus:]`, 0, 0, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	union, ok := root.(*SetUnion)
	if !ok {
		t.Fatalf("expected a *SetUnion of literal members, got %T", root)
	}
	var got []rune
	for _, item := range union.Items {
		c, ok := item.(*Character)
		if !ok {
			t.Fatalf("expected all members to be literal *Character, got %T", item)
		}
		got = append(got, c.Value)
	}
	want := []rune{'[', ':', 'b', 'o', 'g', 'u', 's', ':'}
	if len(got) != len(want) {
		t.Fatalf("expected %d literal members, got %d: %q", len(want), len(got), got)
	}
	for i, r := range want {
		if got[i] != r {
			t.Fatalf("member %d: expected %q, got %q", i, r, got[i])
		}
	}
}

// TestPosixClassUnknownNameAsUnionOperand confirms the rewind-to-literal
// fallback also works when the unrecognised `[:name:]` is the right
// operand of an explicit union, not the whole class body.
func TestPosixClassUnknownNameAsUnionOperand(t *testing.T) {
	_, root, err := Parse(`[a||[:bogus:]]`, 0, 0, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	union, ok := root.(*SetUnion)
	if !ok || len(union.Items) != 2 {
		t.Fatalf("expected a top-level 2-operand *SetUnion, got %#v", root)
	}
	a, ok := union.Items[0].(*Character)
	if !ok || a.Value != 'a' {
		t.Fatalf("expected left operand literal 'a', got %#v", union.Items[0])
	}
	if _, ok := union.Items[1].(*SetUnion); !ok {
		t.Fatalf("expected right operand to be the literalised [:bogus:] run, got %T", union.Items[1])
	}
}
