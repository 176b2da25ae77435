package rxcompile

import "testing"

func TestCompileSimplePattern(t *testing.T) {
	prog, err := Compile(`ab+c`, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Code) == 0 {
		t.Fatal("expected a non-empty opcode stream")
	}
	if prog.GroupCount != 0 {
		t.Fatalf("expected 0 capturing groups, got %d", prog.GroupCount)
	}
}

func TestCompileCapturingGroups(t *testing.T) {
	prog, err := Compile(`(?<year>\d{4})-(?<month>\d{2})`, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prog.GroupCount != 2 {
		t.Fatalf("expected 2 capturing groups, got %d", prog.GroupCount)
	}
	if prog.GroupNames["year"] != 1 || prog.GroupNames["month"] != 2 {
		t.Fatalf("unexpected group name table: %#v", prog.GroupNames)
	}
}

func TestCompileReturnsError(t *testing.T) {
	_, err := Compile(`a{2,1}`, Options{})
	if err == nil {
		t.Fatal("expected an error for min > max repeat")
	}
	rxErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if rxErr.Msg != ErrMinGreaterThanMax {
		t.Fatalf("expected %q, got %q", ErrMinGreaterThanMax, rxErr.Msg)
	}
}

func TestCompileOldBehaviourFlagRestart(t *testing.T) {
	// Under old (non-NEW) behaviour, a positional global flag not already
	// in the initial set triggers a restart with it merged in, rather
	// than a hard error (spec's restart contract).
	prog, err := Compile(`(?a)abc`, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Code) == 0 {
		t.Fatal("expected a non-empty opcode stream")
	}
}

func TestCompileInlineV0V1SelectsNewFlag(t *testing.T) {
	// (?V1)/(?V0) are the two-letter alias for NEW on/off (spec §6.3).
	// With NEW unset, (?V1) at the pattern head makes the parser ask for
	// one restart with NEW merged into the global flags; (?V0) never
	// triggers a restart.
	prog, err := Compile(`(?V1)a`, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Flags(prog.Flags)&NEW == 0 {
		t.Fatal("expected (?V1) to set the NEW global flag")
	}

	prog, err = Compile(`(?V0)a`, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Flags(prog.Flags)&NEW != 0 {
		t.Fatal("expected (?V0) to leave the NEW global flag unset")
	}
}

func TestCompileUnknownExtensionIsError(t *testing.T) {
	_, err := Compile(`(?R)`, Options{})
	if err == nil {
		t.Fatal("expected an error for the unsupported recursive-subpattern extension")
	}
	rxErr, ok := err.(*Error)
	if !ok || rxErr.Msg != ErrUnknownExtension {
		t.Fatalf("expected ErrUnknownExtension, got %#v", err)
	}
}
