package syntax

import "testing"

func TestSequenceCompileConcatenates(t *testing.T) {
	n := &Sequence{Items: []Node{
		&Character{Value: 'a', Positive: true},
		&Character{Value: 'b', Positive: true},
	}}
	e := newEmitter()
	n.Compile(e, false)
	if len(e.code) != 6 {
		t.Fatalf("expected 2 CHARACTER ops (3 words each), got %d words", len(e.code))
	}
	if Op(e.code[0]) != CHARACTER || e.code[2] != 'a' {
		t.Fatalf("unexpected first op: %v", e.code[:3])
	}
	if Op(e.code[3]) != CHARACTER || e.code[5] != 'b' {
		t.Fatalf("unexpected second op: %v", e.code[3:6])
	}
}

func TestSequenceCompileReversedFlipsOrder(t *testing.T) {
	n := &Sequence{Items: []Node{
		&Character{Value: 'a', Positive: true},
		&Character{Value: 'b', Positive: true},
	}}
	e := newEmitter()
	n.Compile(e, true)
	if Op(e.code[0]) != CHARACTER_REV || e.code[2] != 'b' {
		t.Fatalf("expected 'b' compiled first under reverse, got %v", e.code[:3])
	}
	if Op(e.code[3]) != CHARACTER_REV || e.code[5] != 'a' {
		t.Fatalf("expected 'a' compiled second under reverse, got %v", e.code[3:6])
	}
}

func TestBranchCompileEmitsBranchNextEnd(t *testing.T) {
	n := &Branch{Arms: []Node{
		&Character{Value: 'a', Positive: true},
		&Character{Value: 'b', Positive: true},
		&Character{Value: 'c', Positive: true},
	}}
	e := newEmitter()
	n.Compile(e, false)
	want := []uint32{
		uint32(BRANCH),
		uint32(CHARACTER), 1, 'a',
		uint32(NEXT),
		uint32(CHARACTER), 1, 'b',
		uint32(NEXT),
		uint32(CHARACTER), 1, 'c',
		uint32(END),
	}
	if len(e.code) != len(want) {
		t.Fatalf("got %d words, want %d: %v", len(e.code), len(want), e.code)
	}
	for i := range want {
		if e.code[i] != want[i] {
			t.Fatalf("word %d: got %d, want %d (%v)", i, e.code[i], want[i], e.code)
		}
	}
}

func TestGroupCompileForward(t *testing.T) {
	n := &Group{Number: 1, Body: &Character{Value: 'a', Positive: true}}
	e := newEmitter()
	n.Compile(e, false)
	want := []uint32{uint32(GROUP), 1, 0, uint32(CHARACTER), 1, 'a', uint32(END)}
	if len(e.code) != len(want) {
		t.Fatalf("got %v, want %v", e.code, want)
	}
	for i := range want {
		if e.code[i] != want[i] {
			t.Fatalf("got %v, want %v", e.code, want)
		}
	}
}

func TestGroupCompileReverseHasNoEnd(t *testing.T) {
	n := &Group{Number: 1, Body: &Character{Value: 'a', Positive: true}}
	e := newEmitter()
	n.Compile(e, true)
	want := []uint32{uint32(END_GROUP), 1, uint32(CHARACTER_REV), 1, 'a', uint32(START_GROUP), 1}
	if len(e.code) != len(want) {
		t.Fatalf("got %v, want %v", e.code, want)
	}
	for i := range want {
		if e.code[i] != want[i] {
			t.Fatalf("got %v, want %v", e.code, want)
		}
	}
}

func TestGroupCompileFuzzyEmitsRawLengthAndChars(t *testing.T) {
	n := &Group{Number: 0, Body: &Character{Value: 'x', Positive: true}, Fuzzy: &FuzzyClause{Raw: "ab"}}
	e := newEmitter()
	n.Compile(e, false)
	want := []uint32{
		uint32(GROUP), 0, 1,
		2, 'a', 'b',
		uint32(CHARACTER), 1, 'x',
		uint32(END),
	}
	if len(e.code) != len(want) {
		t.Fatalf("got %v, want %v", e.code, want)
	}
	for i := range want {
		if e.code[i] != want[i] {
			t.Fatalf("word %d: got %v, want %v", i, e.code, want)
		}
	}
}

func TestConditionalCompileWithoutNo(t *testing.T) {
	n := &Conditional{Ref: 2, Yes: &Character{Value: 'a', Positive: true}}
	e := newEmitter()
	n.Compile(e, false)
	want := []uint32{uint32(GROUP_EXISTS), 2, uint32(CHARACTER), 1, 'a', uint32(END)}
	if len(e.code) != len(want) {
		t.Fatalf("got %v, want %v", e.code, want)
	}
	for i := range want {
		if e.code[i] != want[i] {
			t.Fatalf("got %v, want %v", e.code, want)
		}
	}
}

func TestConditionalCompileWithNoInsertsNext(t *testing.T) {
	n := &Conditional{
		Ref: 2,
		Yes: &Character{Value: 'a', Positive: true},
		No:  &Character{Value: 'b', Positive: true},
	}
	e := newEmitter()
	n.Compile(e, false)
	want := []uint32{
		uint32(GROUP_EXISTS), 2,
		uint32(CHARACTER), 1, 'a',
		uint32(NEXT),
		uint32(CHARACTER), 1, 'b',
		uint32(END),
	}
	if len(e.code) != len(want) {
		t.Fatalf("got %v, want %v", e.code, want)
	}
	for i := range want {
		if e.code[i] != want[i] {
			t.Fatalf("got %v, want %v", e.code, want)
		}
	}
}

func TestGreedyRepeatCompileNonAtomicBody(t *testing.T) {
	n := &GreedyRepeat{repeatBase{
		Body: &Sequence{Items: []Node{
			&Character{Value: 'a', Positive: true},
			&Group{Number: 1, Body: &Character{Value: 'b', Positive: true}},
		}},
		Min: 1, Max: 3,
	}}
	e := newEmitter()
	n.Compile(e, false)
	if Op(e.code[0]) != GREEDY_REPEAT {
		t.Fatalf("expected GREEDY_REPEAT for a non-atomic body, got %s", Op(e.code[0]))
	}
	if e.code[1] != 1 || e.code[2] != 3 {
		t.Fatalf("expected min/max 1/3, got %d/%d", e.code[1], e.code[2])
	}
	if Op(e.code[len(e.code)-1]) != END_GREEDY_REPEAT {
		t.Fatalf("expected trailing END_GREEDY_REPEAT, got %s", Op(e.code[len(e.code)-1]))
	}
}

func TestGreedyRepeatCompileAtomicBodyUsesRepeatOne(t *testing.T) {
	n := &GreedyRepeat{repeatBase{
		Body: &Character{Value: 'a', Positive: true},
		Min:  0, Max: uint64(Unlimited),
	}}
	e := newEmitter()
	n.Compile(e, false)
	if Op(e.code[0]) != GREEDY_REPEAT_ONE {
		t.Fatalf("expected GREEDY_REPEAT_ONE for an atomic body, got %s", Op(e.code[0]))
	}
}

func TestLazyRepeatCompile(t *testing.T) {
	n := &LazyRepeat{repeatBase{
		Body: &Character{Value: 'a', Positive: true},
		Min:  0, Max: 1,
	}}
	e := newEmitter()
	n.Compile(e, false)
	if Op(e.code[0]) != LAZY_REPEAT_ONE {
		t.Fatalf("expected LAZY_REPEAT_ONE, got %s", Op(e.code[0]))
	}
	if Op(e.code[len(e.code)-1]) != END_LAZY_REPEAT {
		t.Fatalf("expected trailing END_LAZY_REPEAT, got %s", Op(e.code[len(e.code)-1]))
	}
}

func TestAtomicCompile(t *testing.T) {
	n := &Atomic{Body: &Character{Value: 'a', Positive: true}}
	e := newEmitter()
	n.Compile(e, false)
	want := []uint32{uint32(ATOMIC), uint32(CHARACTER), 1, 'a', uint32(END)}
	if len(e.code) != len(want) {
		t.Fatalf("got %v, want %v", e.code, want)
	}
	for i := range want {
		if e.code[i] != want[i] {
			t.Fatalf("got %v, want %v", e.code, want)
		}
	}
}

func TestLookAroundCompileAheadPositive(t *testing.T) {
	n := &LookAround{Behind: false, Positive: true, Body: &Character{Value: 'a', Positive: true}}
	e := newEmitter()
	n.Compile(e, false)
	want := []uint32{uint32(LOOKAROUND), 1, 1, uint32(CHARACTER), 1, 'a', uint32(END)}
	if len(e.code) != len(want) {
		t.Fatalf("got %v, want %v", e.code, want)
	}
	for i := range want {
		if e.code[i] != want[i] {
			t.Fatalf("got %v, want %v", e.code, want)
		}
	}
}

func TestLookAroundCompileBehindCompilesBodyReversed(t *testing.T) {
	n := &LookAround{Behind: true, Positive: false, Body: &Sequence{Items: []Node{
		&Character{Value: 'a', Positive: true},
		&Character{Value: 'b', Positive: true},
	}}}
	e := newEmitter()
	n.Compile(e, false)
	if e.code[1] != 0 {
		t.Fatalf("expected Positive=0, got %d", e.code[1])
	}
	if e.code[2] != 0 {
		t.Fatalf("expected !Behind=0 for a lookbehind, got %d", e.code[2])
	}
	// Behind=true propagates reverse=true into the body, so 'b' compiles
	// before 'a' and both use the _REV opcode variant.
	if Op(e.code[3]) != CHARACTER_REV || e.code[5] != 'b' {
		t.Fatalf("expected reversed body to start with 'b', got %v", e.code[3:6])
	}
}

func TestAtomicOptimiseHoistsLeadingAtomicItems(t *testing.T) {
	ctx := optimiseCtx()
	n := &Atomic{Body: &Sequence{Items: []Node{
		&Character{Value: 'a', Positive: true},
		&Group{Number: 1, Body: &Character{Value: 'b', Positive: true}},
	}}}
	got := n.Optimise(ctx)
	seq, ok := got.(*Sequence)
	if !ok {
		t.Fatalf("expected hoisting to produce a *Sequence, got %T", got)
	}
	if len(seq.Items) != 2 {
		t.Fatalf("expected 2 items after hoisting, got %d", len(seq.Items))
	}
	if _, ok := seq.Items[0].(*Character); !ok {
		t.Fatalf("expected the hoisted leading item to be a bare *Character, got %T", seq.Items[0])
	}
	if _, ok := seq.Items[1].(*Atomic); !ok {
		t.Fatalf("expected the group (contains a capture) to stay wrapped in *Atomic, got %T", seq.Items[1])
	}
}
