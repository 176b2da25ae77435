package syntax

// Character is a single code point match, or (Positive=false) its
// one-element negative set — spec §3.4 invariant: a positive Character
// and a negative Character together model a one-element set pair.
type Character struct {
	P         Position
	Value     rune
	Positive  bool
	ZeroWidth bool
}

func (n *Character) Pos() Position        { return n.P }
func (n *Character) IsEmpty() bool        { return false }
func (n *Character) IsAtomic() bool       { return true }
func (n *Character) ContainsGroup() bool  { return false }
func (n *Character) CanRepeat() bool      { return true }
func (n *Character) HasSimpleStart() bool { return true }

func (n *Character) FirstSet(ctx *Context) FirstSet {
	if !n.Positive {
		return unknownFirstSet()
	}
	return FirstSet{Kind: FirstSetAtoms, Atoms: []Node{n}}
}

func (n *Character) Optimise(ctx *Context) Node { return n }

func (n *Character) Compile(e *Emitter, reverse bool) {
	op := CHARACTER
	if reverse {
		op = CHARACTER_REV
	}
	e.emit(op, atomFlags(n.Positive, n.ZeroWidth), uint32(n.Value))
}

func (n *Character) Equal(other Node) bool {
	o, ok := other.(*Character)
	return ok && o.Value == n.Value && o.Positive == n.Positive && o.ZeroWidth == n.ZeroWidth
}

// CharacterIgn is the case-folded variant of Character: it matches any
// code point case-equivalent to Value (spec §3.4).
type CharacterIgn struct {
	Character
}

func (n *CharacterIgn) Optimise(ctx *Context) Node {
	// CharacterIgn collapse (spec §4.4): if Value is case-insensitive
	// stable, a plain Character suffices.
	if ctx.CaseFold != nil && IsCaseStable(ctx.CaseFold, n.Value) {
		return &Character{P: n.P, Value: n.Value, Positive: n.Positive, ZeroWidth: n.ZeroWidth}
	}
	return n
}

func (n *CharacterIgn) Compile(e *Emitter, reverse bool) {
	op := CHARACTER_IGN
	if reverse {
		op = CHARACTER_IGN_REV
	}
	e.emit(op, atomFlags(n.Positive, n.ZeroWidth), uint32(n.Value))
}

func (n *CharacterIgn) Equal(other Node) bool {
	o, ok := other.(*CharacterIgn)
	return ok && o.Value == n.Value && o.Positive == n.Positive && o.ZeroWidth == n.ZeroWidth
}

// Any is the `.` dot without DOTALL or WORD semantics: any character
// except a line terminator.
type Any struct{ P Position }

func (n *Any) Pos() Position        { return n.P }
func (n *Any) IsEmpty() bool        { return false }
func (n *Any) IsAtomic() bool       { return true }
func (n *Any) ContainsGroup() bool  { return false }
func (n *Any) CanRepeat() bool      { return true }
func (n *Any) HasSimpleStart() bool { return true }
func (n *Any) FirstSet(ctx *Context) FirstSet { return unknownFirstSet() }
func (n *Any) Optimise(ctx *Context) Node     { return n }
func (n *Any) Compile(e *Emitter, reverse bool) {
	op := ANY
	if reverse {
		op = ANY_REV
	}
	e.emit(op)
}
func (n *Any) Equal(other Node) bool { _, ok := other.(*Any); return ok }

// AnyAll is `.` under DOTALL: matches any character including newline.
type AnyAll struct{ P Position }

func (n *AnyAll) Pos() Position        { return n.P }
func (n *AnyAll) IsEmpty() bool        { return false }
func (n *AnyAll) IsAtomic() bool       { return true }
func (n *AnyAll) ContainsGroup() bool  { return false }
func (n *AnyAll) CanRepeat() bool      { return true }
func (n *AnyAll) HasSimpleStart() bool { return true }
func (n *AnyAll) FirstSet(ctx *Context) FirstSet { return unknownFirstSet() }
func (n *AnyAll) Optimise(ctx *Context) Node     { return n }
func (n *AnyAll) Compile(e *Emitter, reverse bool) {
	op := ANY_ALL
	if reverse {
		op = ANY_ALL_REV
	}
	e.emit(op)
}
func (n *AnyAll) Equal(other Node) bool { _, ok := other.(*AnyAll); return ok }

// AnyU is `.` under the WORD flag's dot semantics.
type AnyU struct{ P Position }

func (n *AnyU) Pos() Position        { return n.P }
func (n *AnyU) IsEmpty() bool        { return false }
func (n *AnyU) IsAtomic() bool       { return true }
func (n *AnyU) ContainsGroup() bool  { return false }
func (n *AnyU) CanRepeat() bool      { return true }
func (n *AnyU) HasSimpleStart() bool { return true }
func (n *AnyU) FirstSet(ctx *Context) FirstSet { return unknownFirstSet() }
func (n *AnyU) Optimise(ctx *Context) Node     { return n }
func (n *AnyU) Compile(e *Emitter, reverse bool) {
	op := ANY_U
	if reverse {
		op = ANY_U_REV
	}
	e.emit(op)
}
func (n *AnyU) Equal(other Node) bool { _, ok := other.(*AnyU); return ok }

// Property is a `\p{...}`/`\P{...}` Unicode property match.
type Property struct {
	P         Position
	Packed    PackedProperty
	Positive  bool
	ZeroWidth bool
}

func (n *Property) Pos() Position        { return n.P }
func (n *Property) IsEmpty() bool        { return false }
func (n *Property) IsAtomic() bool       { return true }
func (n *Property) ContainsGroup() bool  { return false }
func (n *Property) CanRepeat() bool      { return true }
func (n *Property) HasSimpleStart() bool { return true }
func (n *Property) FirstSet(ctx *Context) FirstSet {
	if !n.Positive {
		return unknownFirstSet()
	}
	return FirstSet{Kind: FirstSetAtoms, Atoms: []Node{n}}
}
func (n *Property) Optimise(ctx *Context) Node { return n }
func (n *Property) Compile(e *Emitter, reverse bool) {
	op := PROPERTY
	if reverse {
		op = PROPERTY_REV
	}
	e.emit(op, atomFlags(n.Positive, n.ZeroWidth), uint32(n.Packed))
}
func (n *Property) Equal(other Node) bool {
	o, ok := other.(*Property)
	return ok && o.Packed == n.Packed && o.Positive == n.Positive && o.ZeroWidth == n.ZeroWidth
}

// Grapheme is `\X`: an extended grapheme cluster. It compiles to a
// lazy run of AnyAll terminated by a grapheme-boundary test, exactly as
// spec §4.2.2 prescribes.
type Grapheme struct{ P Position }

func (n *Grapheme) Pos() Position        { return n.P }
func (n *Grapheme) IsEmpty() bool        { return false }
func (n *Grapheme) IsAtomic() bool       { return false }
func (n *Grapheme) ContainsGroup() bool  { return false }
func (n *Grapheme) CanRepeat() bool      { return true }
func (n *Grapheme) HasSimpleStart() bool { return false }
func (n *Grapheme) FirstSet(ctx *Context) FirstSet { return unknownFirstSet() }
func (n *Grapheme) Optimise(ctx *Context) Node     { return n }
func (n *Grapheme) Compile(e *Emitter, reverse bool) {
	e.emit(LAZY_REPEAT, 1, uint32(Unlimited))
	aa := &AnyAll{P: n.P}
	aa.Compile(e, reverse)
	e.end()
	e.emit(GRAPHEME_BOUNDARY, 0)
}
func (n *Grapheme) Equal(other Node) bool { _, ok := other.(*Grapheme); return ok }

// RefGroup is a back-reference to a previously closed group.
type RefGroup struct {
	P      Position
	Number uint32
}

func (n *RefGroup) Pos() Position        { return n.P }
func (n *RefGroup) IsEmpty() bool        { return false }
func (n *RefGroup) IsAtomic() bool       { return true }
func (n *RefGroup) ContainsGroup() bool  { return false }
func (n *RefGroup) CanRepeat() bool      { return true }
func (n *RefGroup) HasSimpleStart() bool { return false }
func (n *RefGroup) FirstSet(ctx *Context) FirstSet { return unknownFirstSet() }
func (n *RefGroup) Optimise(ctx *Context) Node     { return n }
func (n *RefGroup) Compile(e *Emitter, reverse bool) {
	op := REF_GROUP
	if reverse {
		op = REF_GROUP_REV
	}
	e.emit(op, n.Number)
}
func (n *RefGroup) Equal(other Node) bool {
	o, ok := other.(*RefGroup)
	return ok && o.Number == n.Number
}

// RefGroupIgn is the case-insensitive variant of RefGroup.
type RefGroupIgn struct {
	P      Position
	Number uint32
}

func (n *RefGroupIgn) Pos() Position        { return n.P }
func (n *RefGroupIgn) IsEmpty() bool        { return false }
func (n *RefGroupIgn) IsAtomic() bool       { return true }
func (n *RefGroupIgn) ContainsGroup() bool  { return false }
func (n *RefGroupIgn) CanRepeat() bool      { return true }
func (n *RefGroupIgn) HasSimpleStart() bool { return false }
func (n *RefGroupIgn) FirstSet(ctx *Context) FirstSet { return unknownFirstSet() }
func (n *RefGroupIgn) Optimise(ctx *Context) Node     { return n }
func (n *RefGroupIgn) Compile(e *Emitter, reverse bool) {
	op := REF_GROUP_IGN
	if reverse {
		op = REF_GROUP_IGN_REV
	}
	e.emit(op, n.Number)
}
func (n *RefGroupIgn) Equal(other Node) bool {
	o, ok := other.(*RefGroupIgn)
	return ok && o.Number == n.Number
}

// String is a packed literal run, the product of character packing
// (spec §4.4).
type String struct {
	P     Position
	Chars []rune
}

func (n *String) Pos() Position        { return n.P }
func (n *String) IsEmpty() bool        { return len(n.Chars) == 0 }
func (n *String) IsAtomic() bool       { return true }
func (n *String) ContainsGroup() bool  { return false }
func (n *String) CanRepeat() bool      { return len(n.Chars) > 0 }
func (n *String) HasSimpleStart() bool { return len(n.Chars) > 0 }
func (n *String) FirstSet(ctx *Context) FirstSet {
	if len(n.Chars) == 0 {
		return epsilonFirstSet()
	}
	return FirstSet{Kind: FirstSetAtoms, Atoms: []Node{&Character{P: n.P, Value: n.Chars[0], Positive: true}}}
}
func (n *String) Optimise(ctx *Context) Node {
	if len(n.Chars) == 0 {
		return &Sequence{P: n.P}
	}
	if len(n.Chars) == 1 {
		return &Character{P: n.P, Value: n.Chars[0], Positive: true}
	}
	return n
}
func (n *String) Compile(e *Emitter, reverse bool) {
	chars := n.Chars
	op := STRING
	if reverse {
		op = STRING_REV
		chars = reverseRunes(chars)
	}
	e.emit(op, uint32(len(chars)))
	for _, c := range chars {
		e.emitRaw(uint32(c))
	}
}
func (n *String) Equal(other Node) bool {
	o, ok := other.(*String)
	return ok && runesEqual(o.Chars, n.Chars)
}

// StringIgn is the case-folded variant of String.
type StringIgn struct {
	P     Position
	Chars []rune
}

func (n *StringIgn) Pos() Position        { return n.P }
func (n *StringIgn) IsEmpty() bool        { return len(n.Chars) == 0 }
func (n *StringIgn) IsAtomic() bool       { return true }
func (n *StringIgn) ContainsGroup() bool  { return false }
func (n *StringIgn) CanRepeat() bool      { return len(n.Chars) > 0 }
func (n *StringIgn) HasSimpleStart() bool { return len(n.Chars) > 0 }
func (n *StringIgn) FirstSet(ctx *Context) FirstSet {
	if len(n.Chars) == 0 {
		return epsilonFirstSet()
	}
	return FirstSet{Kind: FirstSetAtoms, Atoms: []Node{&CharacterIgn{Character{P: n.P, Value: n.Chars[0], Positive: true}}}}
}
func (n *StringIgn) Optimise(ctx *Context) Node {
	if len(n.Chars) == 0 {
		return &Sequence{P: n.P}
	}
	if len(n.Chars) == 1 {
		return (&CharacterIgn{Character{P: n.P, Value: n.Chars[0], Positive: true}}).Optimise(ctx)
	}
	return n
}
func (n *StringIgn) Compile(e *Emitter, reverse bool) {
	chars := n.Chars
	op := STRING_IGN
	if reverse {
		op = STRING_IGN_REV
		chars = reverseRunes(chars)
	}
	e.emit(op, uint32(len(chars)))
	for _, c := range chars {
		e.emitRaw(uint32(c))
	}
}
func (n *StringIgn) Equal(other Node) bool {
	o, ok := other.(*StringIgn)
	return ok && runesEqual(o.Chars, n.Chars)
}
