package syntax

// SetUnion, SetInter, SetDiff and SetSymDiff implement the four-level
// character-class operator tower of spec §3.4/§4.1 item set.SetItems
// are assumed atomic (Character/CharacterIgn/Property or a nested set)
// per the grammar; SetUnion.Compile tries the bitset fast path first
// (spec §4.7) and falls back to a compound opcode chaining the members;
// the other three operators always emit their compound opcode.
type SetUnion struct {
	P         Position
	Items     []Node
	Positive  bool
	ZeroWidth bool
}

func (n *SetUnion) Pos() Position        { return n.P }
func (n *SetUnion) IsEmpty() bool        { return false }
func (n *SetUnion) IsAtomic() bool       { return true }
func (n *SetUnion) ContainsGroup() bool  { return false }
func (n *SetUnion) CanRepeat() bool      { return true }
func (n *SetUnion) HasSimpleStart() bool { return true }

func (n *SetUnion) FirstSet(ctx *Context) FirstSet {
	if !n.Positive {
		return unknownFirstSet()
	}
	return FirstSet{Kind: FirstSetAtoms, Atoms: []Node{n}}
}

// Optimise flattens nested positive unions into their parent (set
// union is associative) and dedups structurally-equal members; in a
// positive, non-zero-width union a single surviving member collapses
// the union away entirely.
func (n *SetUnion) Optimise(ctx *Context) Node {
	items := optimiseAll(ctx, n.Items)
	items = flattenSetUnion(items)
	items = dedupAtoms(items)
	if len(items) == 1 && n.Positive && !n.ZeroWidth {
		return items[0]
	}
	return &SetUnion{P: n.P, Items: items, Positive: n.Positive, ZeroWidth: n.ZeroWidth}
}

func flattenSetUnion(items []Node) []Node {
	out := make([]Node, 0, len(items))
	for _, it := range items {
		if su, ok := it.(*SetUnion); ok && su.Positive && !su.ZeroWidth {
			out = append(out, su.Items...)
		} else {
			out = append(out, it)
		}
	}
	return out
}

func (n *SetUnion) Compile(e *Emitter, reverse bool) {
	if bs, ok := buildBitset(n.Items); ok {
		emitBitset(e, bs, n.Positive, n.ZeroWidth, reverse)
		return
	}
	op := SET_UNION
	if reverse {
		op = SET_UNION_REV
	}
	e.emit(op, atomFlags(n.Positive, n.ZeroWidth))
	for _, it := range n.Items {
		it.Compile(e, reverse)
	}
	e.end()
}

func (n *SetUnion) Equal(other Node) bool {
	o, ok := other.(*SetUnion)
	return ok && o.Positive == n.Positive && o.ZeroWidth == n.ZeroWidth && nodesEqual(o.Items, n.Items)
}

// SetInter is `[[a]&&[b]]`: intersection.
type SetInter struct {
	P         Position
	Items     []Node
	Positive  bool
	ZeroWidth bool
}

func (n *SetInter) Pos() Position        { return n.P }
func (n *SetInter) IsEmpty() bool        { return false }
func (n *SetInter) IsAtomic() bool       { return true }
func (n *SetInter) ContainsGroup() bool  { return false }
func (n *SetInter) CanRepeat() bool      { return true }
func (n *SetInter) HasSimpleStart() bool { return true }

func (n *SetInter) FirstSet(ctx *Context) FirstSet {
	if !n.Positive {
		return unknownFirstSet()
	}
	return FirstSet{Kind: FirstSetAtoms, Atoms: []Node{n}}
}

func (n *SetInter) Optimise(ctx *Context) Node {
	items := optimiseAll(ctx, n.Items)
	if len(items) == 1 && n.Positive && !n.ZeroWidth {
		return items[0]
	}
	return &SetInter{P: n.P, Items: items, Positive: n.Positive, ZeroWidth: n.ZeroWidth}
}

func (n *SetInter) Compile(e *Emitter, reverse bool) {
	op := SET_INTER
	if reverse {
		op = SET_INTER_REV
	}
	e.emit(op, atomFlags(n.Positive, n.ZeroWidth))
	for _, it := range n.Items {
		it.Compile(e, reverse)
	}
	e.end()
}

func (n *SetInter) Equal(other Node) bool {
	o, ok := other.(*SetInter)
	return ok && o.Positive == n.Positive && o.ZeroWidth == n.ZeroWidth && nodesEqual(o.Items, n.Items)
}

// SetDiff is `[a--b]`: the highest-precedence (tightest-binding)
// explicit operator in the tower.
type SetDiff struct {
	P             Position
	Left, Right   Node
	Positive      bool
	ZeroWidth     bool
}

func (n *SetDiff) Pos() Position        { return n.P }
func (n *SetDiff) IsEmpty() bool        { return false }
func (n *SetDiff) IsAtomic() bool       { return true }
func (n *SetDiff) ContainsGroup() bool  { return false }
func (n *SetDiff) CanRepeat() bool      { return true }
func (n *SetDiff) HasSimpleStart() bool { return true }

func (n *SetDiff) FirstSet(ctx *Context) FirstSet {
	if !n.Positive {
		return unknownFirstSet()
	}
	return FirstSet{Kind: FirstSetAtoms, Atoms: []Node{n}}
}

func (n *SetDiff) Optimise(ctx *Context) Node {
	n.Left = n.Left.Optimise(ctx)
	n.Right = n.Right.Optimise(ctx)
	return n
}

func (n *SetDiff) Compile(e *Emitter, reverse bool) {
	op := SET_DIFF
	if reverse {
		op = SET_DIFF_REV
	}
	e.emit(op, atomFlags(n.Positive, n.ZeroWidth))
	n.Left.Compile(e, reverse)
	n.Right.Compile(e, reverse)
	e.end()
}

func (n *SetDiff) Equal(other Node) bool {
	o, ok := other.(*SetDiff)
	return ok && o.Positive == n.Positive && o.ZeroWidth == n.ZeroWidth &&
		o.Left.Equal(n.Left) && o.Right.Equal(n.Right)
}

// SetSymDiff is `[a~~b]`: binds looser than `--` and `&&` and tighter
// than the explicit `||` union.
type SetSymDiff struct {
	P           Position
	Left, Right Node
	Positive    bool
	ZeroWidth   bool
}

func (n *SetSymDiff) Pos() Position        { return n.P }
func (n *SetSymDiff) IsEmpty() bool        { return false }
func (n *SetSymDiff) IsAtomic() bool       { return true }
func (n *SetSymDiff) ContainsGroup() bool  { return false }
func (n *SetSymDiff) CanRepeat() bool      { return true }
func (n *SetSymDiff) HasSimpleStart() bool { return true }

func (n *SetSymDiff) FirstSet(ctx *Context) FirstSet {
	if !n.Positive {
		return unknownFirstSet()
	}
	return FirstSet{Kind: FirstSetAtoms, Atoms: []Node{n}}
}

func (n *SetSymDiff) Optimise(ctx *Context) Node {
	n.Left = n.Left.Optimise(ctx)
	n.Right = n.Right.Optimise(ctx)
	return n
}

func (n *SetSymDiff) Compile(e *Emitter, reverse bool) {
	op := SET_SYM_DIFF
	if reverse {
		op = SET_SYM_DIFF_REV
	}
	e.emit(op, atomFlags(n.Positive, n.ZeroWidth))
	n.Left.Compile(e, reverse)
	n.Right.Compile(e, reverse)
	e.end()
}

func (n *SetSymDiff) Equal(other Node) bool {
	o, ok := other.(*SetSymDiff)
	return ok && o.Positive == n.Positive && o.ZeroWidth == n.ZeroWidth &&
		o.Left.Equal(n.Left) && o.Right.Equal(n.Right)
}

// negate returns a copy of a set member with its polarity flipped; the
// node passed in is left unchanged. Node kinds other than the ones
// listed are returned as they are.
func negate(node Node) Node {
	switch t := node.(type) {
	case *Character:
		return &Character{P: t.P, Value: t.Value, Positive: !t.Positive, ZeroWidth: t.ZeroWidth}
	case *Property:
		return &Property{P: t.P, Packed: t.Packed, Positive: !t.Positive, ZeroWidth: t.ZeroWidth}
	case *SetUnion:
		return &SetUnion{P: t.P, Items: t.Items, Positive: !t.Positive, ZeroWidth: t.ZeroWidth}
	case *SetInter:
		return &SetInter{P: t.P, Items: t.Items, Positive: !t.Positive, ZeroWidth: t.ZeroWidth}
	case *SetDiff:
		return &SetDiff{P: t.P, Left: t.Left, Right: t.Right, Positive: !t.Positive, ZeroWidth: t.ZeroWidth}
	case *SetSymDiff:
		return &SetSymDiff{P: t.P, Left: t.Left, Right: t.Right, Positive: !t.Positive, ZeroWidth: t.ZeroWidth}
	default:
		return node
	}
}
