package syntax

// zeroWidthCommon is embedded by every zero-width assertion: they all
// share the same IsEmpty/IsAtomic/ContainsGroup/CanRepeat/FirstSet
// shape (spec §4.5: "Zero-width: {ε}").
type zeroWidthCommon struct{ P Position }

func (z zeroWidthCommon) Pos() Position        { return z.P }
func (z zeroWidthCommon) IsEmpty() bool        { return true }
func (z zeroWidthCommon) IsAtomic() bool       { return true }
func (z zeroWidthCommon) ContainsGroup() bool  { return false }
func (z zeroWidthCommon) CanRepeat() bool      { return false }
func (z zeroWidthCommon) HasSimpleStart() bool { return false }
func (z zeroWidthCommon) FirstSet(ctx *Context) FirstSet { return epsilonFirstSet() }

// Boundary is `\b`/`\B`.
type Boundary struct {
	zeroWidthCommon
	Positive bool
}

func (n *Boundary) Optimise(ctx *Context) Node { return n }
func (n *Boundary) Compile(e *Emitter, reverse bool) {
	e.emit(BOUNDARY, atomFlags(n.Positive, true))
}
func (n *Boundary) Equal(other Node) bool {
	o, ok := other.(*Boundary)
	return ok && o.Positive == n.Positive
}

// DefaultBoundary is the WORD-flag-aware boundary assertion.
type DefaultBoundary struct {
	zeroWidthCommon
	Positive bool
}

func (n *DefaultBoundary) Optimise(ctx *Context) Node { return n }
func (n *DefaultBoundary) Compile(e *Emitter, reverse bool) {
	e.emit(DEFAULT_BOUNDARY, atomFlags(n.Positive, true))
}
func (n *DefaultBoundary) Equal(other Node) bool {
	o, ok := other.(*DefaultBoundary)
	return ok && o.Positive == n.Positive
}

// direction bits reused by the StartOfWord/EndOfWord supplement so the
// DEFAULT_BOUNDARY opcode carries them without growing the catalogue
// (SPEC_FULL §4.2).
const wordDirBit = 1 << 2

// StartOfWord is `\m`, the Unicode start-of-word assertion (SPEC_FULL
// §4.2, supplemented from original_source/mrab-regex).
type StartOfWord struct{ zeroWidthCommon }

func (n *StartOfWord) Optimise(ctx *Context) Node { return n }
func (n *StartOfWord) Compile(e *Emitter, reverse bool) {
	e.emit(DEFAULT_BOUNDARY, atomFlags(true, true)|wordDirBit)
}
func (n *StartOfWord) Equal(other Node) bool { _, ok := other.(*StartOfWord); return ok }

// EndOfWord is `\M`.
type EndOfWord struct{ zeroWidthCommon }

func (n *EndOfWord) Optimise(ctx *Context) Node { return n }
func (n *EndOfWord) Compile(e *Emitter, reverse bool) {
	e.emit(DEFAULT_BOUNDARY, atomFlags(false, true)|wordDirBit)
}
func (n *EndOfWord) Equal(other Node) bool { _, ok := other.(*EndOfWord); return ok }

type StartOfLine struct{ zeroWidthCommon }

func (n *StartOfLine) Optimise(ctx *Context) Node       { return n }
func (n *StartOfLine) Compile(e *Emitter, reverse bool) { e.emit(START_OF_LINE) }
func (n *StartOfLine) Equal(other Node) bool            { _, ok := other.(*StartOfLine); return ok }

type StartOfLineU struct{ zeroWidthCommon }

func (n *StartOfLineU) Optimise(ctx *Context) Node       { return n }
func (n *StartOfLineU) Compile(e *Emitter, reverse bool) { e.emit(START_OF_LINE_U) }
func (n *StartOfLineU) Equal(other Node) bool            { _, ok := other.(*StartOfLineU); return ok }

type StartOfString struct{ zeroWidthCommon }

func (n *StartOfString) Optimise(ctx *Context) Node       { return n }
func (n *StartOfString) Compile(e *Emitter, reverse bool) { e.emit(START_OF_STRING) }
func (n *StartOfString) Equal(other Node) bool            { _, ok := other.(*StartOfString); return ok }

type EndOfLine struct{ zeroWidthCommon }

func (n *EndOfLine) Optimise(ctx *Context) Node       { return n }
func (n *EndOfLine) Compile(e *Emitter, reverse bool) { e.emit(END_OF_LINE) }
func (n *EndOfLine) Equal(other Node) bool            { _, ok := other.(*EndOfLine); return ok }

type EndOfLineU struct{ zeroWidthCommon }

func (n *EndOfLineU) Optimise(ctx *Context) Node       { return n }
func (n *EndOfLineU) Compile(e *Emitter, reverse bool) { e.emit(END_OF_LINE_U) }
func (n *EndOfLineU) Equal(other Node) bool            { _, ok := other.(*EndOfLineU); return ok }

type EndOfString struct{ zeroWidthCommon }

func (n *EndOfString) Optimise(ctx *Context) Node       { return n }
func (n *EndOfString) Compile(e *Emitter, reverse bool) { e.emit(END_OF_STRING) }
func (n *EndOfString) Equal(other Node) bool            { _, ok := other.(*EndOfString); return ok }

type EndOfStringLine struct{ zeroWidthCommon }

func (n *EndOfStringLine) Optimise(ctx *Context) Node       { return n }
func (n *EndOfStringLine) Compile(e *Emitter, reverse bool) { e.emit(END_OF_STRING_LINE) }
func (n *EndOfStringLine) Equal(other Node) bool            { _, ok := other.(*EndOfStringLine); return ok }

type EndOfStringLineU struct{ zeroWidthCommon }

func (n *EndOfStringLineU) Optimise(ctx *Context) Node       { return n }
func (n *EndOfStringLineU) Compile(e *Emitter, reverse bool) { e.emit(END_OF_STRING_LINE_U) }
func (n *EndOfStringLineU) Equal(other Node) bool            { _, ok := other.(*EndOfStringLineU); return ok }

// SearchAnchor is `\G`: match only at the start of the current search.
type SearchAnchor struct{ zeroWidthCommon }

func (n *SearchAnchor) Optimise(ctx *Context) Node       { return n }
func (n *SearchAnchor) Compile(e *Emitter, reverse bool) { e.emit(SEARCH_ANCHOR, 0) }
func (n *SearchAnchor) Equal(other Node) bool            { _, ok := other.(*SearchAnchor); return ok }

// KeepOut is `\K`: reset the reported match start to the current
// position. Parsed as a zero-width marker and compiled as a SEARCH_ANCHOR
// variant per SPEC_FULL §4.2 item 3 — an opaque pass-through the VM
// recognises by its flag bit, the same way fuzzy clauses (§4.2.6) are
// opaque annotations through the front end.
type KeepOut struct{ zeroWidthCommon }

const keepOutBit = 1 << 1

func (n *KeepOut) Optimise(ctx *Context) Node       { return n }
func (n *KeepOut) Compile(e *Emitter, reverse bool) { e.emit(SEARCH_ANCHOR, keepOutBit) }
func (n *KeepOut) Equal(other Node) bool            { _, ok := other.(*KeepOut); return ok }
