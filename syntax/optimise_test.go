package syntax

import "testing"

func optimiseCtx() *Context {
	return NewContext(0, 0, NewDefaultProperties(), DefaultCaseFolder{}, nil)
}

func TestOptimiseFixpointIdempotent(t *testing.T) {
	ctx, root := mustParse(t, `abc|abd|abe`)
	once := OptimiseFixpoint(ctx, root, 8)
	twice := once.Optimise(ctx)
	if !twice.Equal(once) {
		t.Fatalf("optimise is not idempotent: first pass and second pass differ")
	}
}

func TestOptimisePackCharacters(t *testing.T) {
	ctx := optimiseCtx()
	items := []Node{
		&Character{Value: 'a', Positive: true},
		&Character{Value: 'b', Positive: true},
		&Character{Value: 'c', Positive: true},
	}
	packed := packCharacters(ctx, items)
	if len(packed) != 1 {
		t.Fatalf("expected a single packed String, got %d items", len(packed))
	}
	s, ok := packed[0].(*String)
	if !ok {
		t.Fatalf("expected *String, got %T", packed[0])
	}
	if string(s.Chars) != "abc" {
		t.Fatalf("expected \"abc\", got %q", string(s.Chars))
	}
}

func TestOptimiseFactorCommonAffixes(t *testing.T) {
	ctx := optimiseCtx()
	arms := []Node{
		&Sequence{Items: []Node{
			&Character{Value: 'a', Positive: true},
			&Character{Value: 'b', Positive: true},
			&Character{Value: 'x', Positive: true},
		}},
		&Sequence{Items: []Node{
			&Character{Value: 'a', Positive: true},
			&Character{Value: 'b', Positive: true},
			&Character{Value: 'y', Positive: true},
		}},
	}
	out := factorCommonAffixes(ctx, arms)
	if len(out) != 1 {
		t.Fatalf("expected factoring to collapse to a single sequence, got %d items", len(out))
	}
}

func TestReduceToSetUnion(t *testing.T) {
	arms := []Node{
		&Character{Value: 'a', Positive: true},
		&Character{Value: 'b', Positive: true},
		&Character{Value: 'c', Positive: true},
	}
	node, ok := reduceToSetUnion(Position{}, arms)
	if !ok {
		t.Fatal("expected reduceToSetUnion to succeed on plain positive atoms")
	}
	su, ok := node.(*SetUnion)
	if !ok || len(su.Items) != 3 {
		t.Fatalf("expected a 3-item *SetUnion, got %#v", node)
	}
}

func TestReduceToSetUnionBailsOnNonAtom(t *testing.T) {
	arms := []Node{
		&Character{Value: 'a', Positive: true},
		&Sequence{Items: []Node{&Character{Value: 'b', Positive: true}, &Character{Value: 'c', Positive: true}}},
	}
	_, ok := reduceToSetUnion(Position{}, arms)
	if ok {
		t.Fatal("expected reduceToSetUnion to bail on a non-atom arm")
	}
}

func TestCharacterIgnCollapsesOnCaseStableValue(t *testing.T) {
	ctx := optimiseCtx()
	// '1' has no case equivalents: CharacterIgn should collapse to Character.
	n := (&CharacterIgn{Character{Value: '1', Positive: true}}).Optimise(ctx)
	if _, ok := n.(*Character); !ok {
		t.Fatalf("expected collapse to *Character, got %T", n)
	}
}
