package syntax

import "testing"

func TestParseFuzzyClauseAttachesToGroup(t *testing.T) {
	_, root := mustParse(t, `x{2i+1d<=3}`)
	// The fuzzy clause wraps the single preceding atom in a sentinel
	// Group (Number 0); each character is its own atom at parse time, so
	// only a single-character pattern keeps this assertion simple.
	g, ok := root.(*Group)
	if !ok {
		t.Fatalf("expected fuzzy clause to wrap atom in *Group, got %T", root)
	}
	if g.Number != 0 {
		t.Fatalf("expected sentinel group number 0, got %d", g.Number)
	}
	if g.Fuzzy == nil {
		t.Fatal("expected Fuzzy to be set")
	}
	if g.Fuzzy.Raw != "2i+1d<=3" {
		t.Fatalf("expected raw fuzzy text preserved, got %q", g.Fuzzy.Raw)
	}
}

func TestBraceRepeatNotMistakenForFuzzy(t *testing.T) {
	_, root := mustParse(t, `a{3,5}`)
	rep, ok := root.(*GreedyRepeat)
	if !ok {
		t.Fatalf("expected {3,5} to parse as a plain repeat, got %T", root)
	}
	if rep.Min != 3 || rep.Max != 5 {
		t.Fatalf("expected {3,5}, got {%d,%d}", rep.Min, rep.Max)
	}
}

func TestLooksLikeFuzzyClauseRequiresCostTag(t *testing.T) {
	if looksLikeFuzzyClause("<=5") {
		t.Fatal("a bound with no cost-tag letter should not look like a fuzzy clause")
	}
	if !looksLikeFuzzyClause("e<=2") {
		t.Fatal("\"e<=2\" should look like a fuzzy clause")
	}
}
