package syntax

// bitsetPlan is the intermediate form between a set of member atoms
// and the SMALL_BITSET/BIG_BITSET wire encoding of spec §4.7: code
// points are grouped by their top byte, each group's 256-bit subset is
// interned, and groups reference subsets by index so repeated subsets
// (common once code points run into the tens of thousands) are stored
// once.
type bitsetPlan struct {
	// Single is true when every code point shares one top byte
	// (TopByte): the plan lowers to SMALL_BITSET regardless of whether
	// that shared byte happens to be 0 (spec §4.7).
	Single  bool
	TopByte int
	Groups  []int // subset index per top-byte group, len = maxGroup+1; unused when Single
	Subsets [][CodesPerSubset]uint32
}

// buildBitset tries to fold items into a bitset plan. It only succeeds
// when every item is a single, positive, concrete code point: ranges
// are expanded to individual Character members by the class parser
// before reaching here (see parse_class.go), and anything that doesn't
// fold (a property, a negated member, a nested compound set) sends the
// caller back to the general SET_UNION opcode path.
func buildBitset(items []Node) (*bitsetPlan, bool) {
	if len(items) == 0 {
		return nil, false
	}
	runes := make([]rune, 0, len(items))
	for _, it := range items {
		c, ok := it.(*Character)
		if !ok || !c.Positive || c.ZeroWidth {
			return nil, false
		}
		runes = append(runes, c.Value)
	}

	minGroup, maxGroup := int(runes[0])>>8, int(runes[0])>>8
	for _, r := range runes[1:] {
		g := int(r) >> 8
		if g < minGroup {
			minGroup = g
		}
		if g > maxGroup {
			maxGroup = g
		}
	}

	if minGroup == maxGroup {
		var bits [CodesPerSubset]uint32
		for _, r := range runes {
			setBit(&bits, int(r)&0xFF)
		}
		return &bitsetPlan{Single: true, TopByte: minGroup, Subsets: [][CodesPerSubset]uint32{bits}}, true
	}

	groupBits := make([]*[CodesPerSubset]uint32, maxGroup+1)
	for _, r := range runes {
		g := int(r) >> 8
		if groupBits[g] == nil {
			groupBits[g] = &[CodesPerSubset]uint32{}
		}
		setBit(groupBits[g], int(r)&0xFF)
	}

	var zero [CodesPerSubset]uint32
	subsets := make([][CodesPerSubset]uint32, 0, maxGroup+1)
	groups := make([]int, maxGroup+1)
	index := map[[CodesPerSubset]uint32]int{}
	for g := 0; g <= maxGroup; g++ {
		bits := zero
		if groupBits[g] != nil {
			bits = *groupBits[g]
		}
		idx, seen := index[bits]
		if !seen {
			idx = len(subsets)
			subsets = append(subsets, bits)
			index[bits] = idx
		}
		groups[g] = idx
	}

	return &bitsetPlan{Groups: groups, Subsets: subsets}, true
}

// setBit marks bit i (0..255) within a CodesPerSubset-word subset.
func setBit(bits *[CodesPerSubset]uint32, i int) {
	bits[i/CodeBits] |= 1 << uint(i%CodeBits)
}

// emitBitset lowers a plan to SMALL_BITSET (a single 256-bit subset,
// no index table needed) or BIG_BITSET (an index table of
// IndexesPerCode packed 16-bit entries per code word, followed by the
// interned subset pool), per spec §4.7.
func emitBitset(e *Emitter, plan *bitsetPlan, positive, zeroWidth, reverse bool) {
	if plan.Single {
		op := SMALL_BITSET
		if reverse {
			op = SMALL_BITSET_REV
		}
		e.emit(op, atomFlags(positive, zeroWidth), uint32(plan.TopByte))
		for _, w := range plan.Subsets[0] {
			e.emitRaw(w)
		}
		return
	}

	op := BIG_BITSET
	if reverse {
		op = BIG_BITSET_REV
	}
	e.emit(op, atomFlags(positive, zeroWidth), uint32(len(plan.Groups)), uint32(len(plan.Subsets)))

	for i := 0; i < len(plan.Groups); i += IndexesPerCode {
		var word uint32
		for j := 0; j < IndexesPerCode && i+j < len(plan.Groups); j++ {
			word |= uint32(uint16(plan.Groups[i+j])) << uint(16*j)
		}
		e.emitRaw(word)
	}
	for _, s := range plan.Subsets {
		for _, w := range s {
			e.emitRaw(w)
		}
	}
}
