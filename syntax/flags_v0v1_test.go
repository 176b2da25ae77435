package syntax

import "testing"

// TestInlineFlagsV1AtHeadRequestsRestart confirms (?V1) is recognised
// as the two-letter alias for NEW (spec §6.3) rather than an unknown
// extension: at the pattern head, under old behaviour, selecting it
// raises UnscopedFlagSet so rxcompile.Compile can restart with NEW
// merged into the initial flags (see TestCompileInlineV0V1SelectsNewFlag
// for the end-to-end outcome, since raw Parse never retries).
func TestInlineFlagsV1AtHeadRequestsRestart(t *testing.T) {
	_, _, err := Parse(`(?V1)a`, 0, 0, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if _, ok := err.(UnscopedFlagSet); !ok {
		t.Fatalf("expected UnscopedFlagSet, got %#v", err)
	}
}

// TestInlineFlagsV0IsNoopWhenNewAlreadyUnset confirms (?V0) clears NEW
// directly without requesting a restart, since narrowing to old
// behaviour never needs the initial global set to change.
func TestInlineFlagsV0IsNoopWhenNewAlreadyUnset(t *testing.T) {
	ctx, _ := mustParse(t, `(?V0)a`)
	if ctx.GlobalFlags.Has(NEW) {
		t.Fatal("expected (?V0) to leave the NEW global flag unset")
	}
}

func TestInlineFlagsUnknownVSuffixIsError(t *testing.T) {
	_, _, err := Parse(`(?V2)a`, 0, 0, NewDefaultProperties(), DefaultCaseFolder{}, nil)
	if err == nil {
		t.Fatal("expected an error for an unrecognised V-suffix")
	}
	pe, ok := err.(ParseError)
	if !ok || pe.Msg != ErrUnknownExtension {
		t.Fatalf("expected ErrUnknownExtension, got %#v", err)
	}
}
