package syntax

import "testing"

func TestBuildBitsetSingleSubset(t *testing.T) {
	items := []Node{
		&Character{Value: 'a', Positive: true},
		&Character{Value: 'b', Positive: true},
		&Character{Value: 'z', Positive: true},
	}
	plan, ok := buildBitset(items)
	if !ok {
		t.Fatal("expected buildBitset to succeed on plain positive code points")
	}
	if len(plan.Subsets) != 1 {
		t.Fatalf("expected a single subset (all code points share top byte 0), got %d", len(plan.Subsets))
	}
	if !plan.Single {
		t.Fatal("expected a shared-top-byte plan to collapse to Single/SMALL_BITSET")
	}
	if plan.TopByte != 0 {
		t.Fatalf("expected TopByte 0, got %d", plan.TopByte)
	}
}

func TestBuildBitsetRejectsNegatedMember(t *testing.T) {
	items := []Node{
		&Character{Value: 'a', Positive: true},
		&Character{Value: 'b', Positive: false},
	}
	if _, ok := buildBitset(items); ok {
		t.Fatal("expected buildBitset to reject a negated member")
	}
}

func TestBuildBitsetMultipleGroupsDedupSubsets(t *testing.T) {
	// U+0041 ('A') and U+0141 share the low byte 0x41 but differ in top
	// byte, so they land in different groups; each group sets only bit
	// 0x41, so both groups' subsets are identical and are interned once,
	// exercising the index table path (len(Groups) > 1) with a shared
	// subset.
	items := []Node{
		&Character{Value: 'A', Positive: true},
		&Character{Value: rune(0x141), Positive: true},
	}
	plan, ok := buildBitset(items)
	if !ok {
		t.Fatal("expected buildBitset to succeed")
	}
	if plan.Single {
		t.Fatal("expected a multi-top-byte plan, not Single")
	}
	if len(plan.Groups) != 2 {
		t.Fatalf("expected 2 top-byte groups (0x00 and 0x01), got %d", len(plan.Groups))
	}
}

func TestBuildBitsetSharedNonZeroTopByteStaysSmall(t *testing.T) {
	// Both code points live in the 0x01xx top-byte group: spec §4.7
	// says "all characters share the same top byte" picks SMALL_BITSET
	// regardless of which byte that is, not just top byte 0.
	items := []Node{
		&Character{Value: rune(0x141), Positive: true},
		&Character{Value: rune(0x142), Positive: true},
	}
	plan, ok := buildBitset(items)
	if !ok {
		t.Fatal("expected buildBitset to succeed")
	}
	if !plan.Single {
		t.Fatal("expected a shared-top-byte plan to collapse to Single/SMALL_BITSET")
	}
	if plan.TopByte != 0x01 {
		t.Fatalf("expected TopByte 0x01, got %#x", plan.TopByte)
	}
}

func TestEmitBitsetSmallVsBig(t *testing.T) {
	small := []Node{&Character{Value: 'a', Positive: true}, &Character{Value: 'b', Positive: true}}
	plan, ok := buildBitset(small)
	if !ok {
		t.Fatal("expected buildBitset to succeed")
	}
	e := newEmitter()
	emitBitset(e, plan, true, false, false)
	if Op(e.code[0]) != SMALL_BITSET {
		t.Fatalf("expected SMALL_BITSET for a single group/subset, got %s", Op(e.code[0]))
	}
	if e.code[2] != 0 {
		t.Fatalf("expected top_byte 0, got %d", e.code[2])
	}
	// header(op+flags+top_byte) + CodesPerSubset raw words.
	if len(e.code) != 3+CodesPerSubset {
		t.Fatalf("expected %d words, got %d", 3+CodesPerSubset, len(e.code))
	}

	big := []Node{&Character{Value: 'A', Positive: true}, &Character{Value: rune(0x141), Positive: true}}
	plan2, ok := buildBitset(big)
	if !ok {
		t.Fatal("expected buildBitset to succeed")
	}
	e2 := newEmitter()
	emitBitset(e2, plan2, true, false, false)
	if Op(e2.code[0]) != BIG_BITSET {
		t.Fatalf("expected BIG_BITSET for multiple groups, got %s", Op(e2.code[0]))
	}

	sharedNonZero := []Node{&Character{Value: rune(0x141), Positive: true}, &Character{Value: rune(0x142), Positive: true}}
	plan3, ok := buildBitset(sharedNonZero)
	if !ok {
		t.Fatal("expected buildBitset to succeed")
	}
	e3 := newEmitter()
	emitBitset(e3, plan3, true, false, false)
	if Op(e3.code[0]) != SMALL_BITSET {
		t.Fatalf("expected SMALL_BITSET for a shared non-zero top byte, got %s", Op(e3.code[0]))
	}
	if e3.code[2] != 0x01 {
		t.Fatalf("expected top_byte 0x01, got %d", e3.code[2])
	}
}
