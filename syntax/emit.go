package syntax

// Program is the flat opcode stream plus the metadata that survives
// compilation (spec §3.5 lifecycle, §6.1 output).
type Program struct {
	Code        []uint32
	GroupCount  uint32
	GroupNames  map[string]uint32
	Flags       uint32 // global flags the VM must honour
	SimpleStart bool
	FirstSetLen int // 0 if no preamble was emitted
}

// Emitter accumulates opcode words. Structure opcodes write their body
// between themselves and a matching END (or NEXT-separated arms
// terminated by END for BRANCH), per spec §3.5/§4.6; repeats close with
// END_GREEDY_REPEAT/END_LAZY_REPEAT, and a group compiled in reverse is
// bracketed by END_GROUP ... START_GROUP instead.
type Emitter struct {
	code []uint32
}

func newEmitter() *Emitter { return &Emitter{} }

func (e *Emitter) emit(op Op, args ...uint32) {
	e.code = append(e.code, uint32(op))
	e.code = append(e.code, args...)
}

func (e *Emitter) emitRaw(words ...uint32) {
	e.code = append(e.code, words...)
}

func (e *Emitter) end() { e.code = append(e.code, uint32(END)) }
func (e *Emitter) next() { e.code = append(e.code, uint32(NEXT)) }

func (e *Emitter) len() int { return len(e.code) }

// Compile emits the opcode stream for root per spec §4.6: an optional
// first-set preamble, the compiled body, then SUCCESS.
func Compile(root Node, ctx *Context, reverse bool) *Program {
	e := newEmitter()

	fs := root.FirstSet(ctx)
	simple := root.HasSimpleStart()
	firstSetLen := 0
	if !simple && fs.Kind == FirstSetAtoms && len(fs.Atoms) > 0 {
		preamble := compileFirstSet(fs, ctx)
		before := e.len()
		preamble.Compile(e, false)
		firstSetLen = e.len() - before
	}

	root.Compile(e, reverse)
	e.emit(SUCCESS)

	return &Program{
		Code:        e.code,
		GroupCount:  ctx.GroupCount(),
		GroupNames:  ctx.GroupNames(),
		Flags:       uint32(ctx.GlobalFlags),
		SimpleStart: simple,
		FirstSetLen: firstSetLen,
	}
}

// compileFirstSet builds the parallel zero-width SetUnion node used as
// the prefilter preamble (spec §4.5): a SetUnion of the first-set atoms
// with ZeroWidth=true, optimised before compiling.
func compileFirstSet(fs FirstSet, ctx *Context) Node {
	items := make([]Node, len(fs.Atoms))
	copy(items, fs.Atoms)
	su := &SetUnion{Items: items, Positive: true, ZeroWidth: true}
	return su.Optimise(ctx)
}
