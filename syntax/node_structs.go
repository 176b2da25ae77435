package syntax

// Sequence is a concatenation of items (spec §3.4).
type Sequence struct {
	P     Position
	Items []Node
}

func (n *Sequence) Pos() Position { return n.P }

func (n *Sequence) IsEmpty() bool {
	for _, it := range n.Items {
		if !it.IsEmpty() {
			return false
		}
	}
	return true
}

func (n *Sequence) IsAtomic() bool {
	for _, it := range n.Items {
		if !it.IsAtomic() {
			return false
		}
	}
	return true
}

func (n *Sequence) ContainsGroup() bool {
	for _, it := range n.Items {
		if it.ContainsGroup() {
			return true
		}
	}
	return false
}

func (n *Sequence) CanRepeat() bool { return !n.IsEmpty() }

func (n *Sequence) HasSimpleStart() bool {
	if len(n.Items) == 0 {
		return false
	}
	return n.Items[0].HasSimpleStart()
}

// FirstSet folds left per spec §4.5: new = (old - {ε}) ∪ child.firstset,
// stopping as soon as ε drops out of the running set.
func (n *Sequence) FirstSet(ctx *Context) FirstSet {
	running := epsilonFirstSet()
	for _, it := range n.Items {
		child := it.FirstSet(ctx)
		merged := unionFirstSets([]FirstSet{
			{Kind: running.Kind, Atoms: running.Atoms},
			child,
		})
		merged.Epsilon = running.Epsilon && child.Epsilon
		running = merged
		if !running.Epsilon {
			break
		}
	}
	return running
}

func (n *Sequence) Optimise(ctx *Context) Node {
	items := optimiseAll(ctx, n.Items)
	items = flattenSequence(items)
	items = packCharacters(ctx, items)
	switch len(items) {
	case 0:
		return &Sequence{P: n.P}
	case 1:
		return items[0]
	default:
		return &Sequence{P: n.P, Items: items}
	}
}

func flattenSequence(items []Node) []Node {
	out := make([]Node, 0, len(items))
	for _, it := range items {
		if sub, ok := it.(*Sequence); ok {
			out = append(out, sub.Items...)
		} else {
			out = append(out, it)
		}
	}
	return out
}

func (n *Sequence) Compile(e *Emitter, reverse bool) {
	items := n.Items
	if reverse {
		items = make([]Node, len(n.Items))
		for i, it := range n.Items {
			items[len(n.Items)-1-i] = it
		}
	}
	for _, it := range items {
		it.Compile(e, reverse)
	}
}

func (n *Sequence) Equal(other Node) bool {
	o, ok := other.(*Sequence)
	return ok && nodesEqual(o.Items, n.Items)
}

// Branch is an alternation (spec §3.4); Optimise runs the factoring
// passes of spec §4.4.
type Branch struct {
	P    Position
	Arms []Node
}

func (n *Branch) Pos() Position { return n.P }

func (n *Branch) IsEmpty() bool {
	for _, a := range n.Arms {
		if !a.IsEmpty() {
			return false
		}
	}
	return true
}

func (n *Branch) IsAtomic() bool { return false }

func (n *Branch) ContainsGroup() bool {
	for _, a := range n.Arms {
		if a.ContainsGroup() {
			return true
		}
	}
	return false
}

func (n *Branch) CanRepeat() bool { return true }

func (n *Branch) HasSimpleStart() bool { return false }

func (n *Branch) FirstSet(ctx *Context) FirstSet {
	sets := make([]FirstSet, len(n.Arms))
	for i, a := range n.Arms {
		sets[i] = a.FirstSet(ctx)
	}
	fs := unionFirstSets(sets)
	if fs.Kind == FirstSetAtoms {
		fs.Atoms = dedupAtoms(fs.Atoms)
	}
	return fs
}

func (n *Branch) Optimise(ctx *Context) Node {
	arms := optimiseAll(ctx, n.Arms)
	arms = flattenBranch(arms)
	arms = factorCommonAffixes(ctx, arms)
	arms = mergeCommonPrefixBranches(ctx, arms)
	if len(arms) == 1 {
		return arms[0]
	}
	if reduced, ok := reduceToSetUnion(n.P, arms); ok {
		return reduced.Optimise(ctx)
	}
	return &Branch{P: n.P, Arms: arms}
}

func flattenBranch(arms []Node) []Node {
	out := make([]Node, 0, len(arms))
	for _, a := range arms {
		if sub, ok := a.(*Branch); ok {
			out = append(out, sub.Arms...)
		} else {
			out = append(out, a)
		}
	}
	return out
}

func (n *Branch) Compile(e *Emitter, reverse bool) {
	e.emit(BRANCH)
	for i, a := range n.Arms {
		a.Compile(e, reverse)
		if i != len(n.Arms)-1 {
			e.next()
		}
	}
	e.end()
}

func (n *Branch) Equal(other Node) bool {
	o, ok := other.(*Branch)
	return ok && nodesEqual(o.Arms, n.Arms)
}

// Group is a capturing group, `(...)`/`(?<name>...)`.
type Group struct {
	P      Position
	Number uint32
	Name   string
	Body   Node
	Fuzzy  *FuzzyClause
}

func (n *Group) Pos() Position       { return n.P }
func (n *Group) IsEmpty() bool       { return n.Body.IsEmpty() }
func (n *Group) IsAtomic() bool      { return false }
func (n *Group) ContainsGroup() bool { return true }
func (n *Group) CanRepeat() bool     { return true }
func (n *Group) HasSimpleStart() bool { return n.Body.HasSimpleStart() }
func (n *Group) FirstSet(ctx *Context) FirstSet { return n.Body.FirstSet(ctx) }

func (n *Group) Optimise(ctx *Context) Node {
	n.Body = n.Body.Optimise(ctx)
	return n
}

func (n *Group) Compile(e *Emitter, reverse bool) {
	if reverse {
		e.emit(END_GROUP, n.Number)
		n.Body.Compile(e, reverse)
		e.emit(START_GROUP, n.Number)
		return
	}
	e.emit(GROUP, n.Number, boolToU32(n.Fuzzy != nil))
	if n.Fuzzy != nil {
		chars := []rune(n.Fuzzy.Raw)
		e.emitRaw(uint32(len(chars)))
		for _, c := range chars {
			e.emitRaw(uint32(c))
		}
	}
	n.Body.Compile(e, reverse)
	e.end()
}

func (n *Group) Equal(other Node) bool {
	o, ok := other.(*Group)
	if !ok || o.Number != n.Number || !o.Body.Equal(n.Body) {
		return false
	}
	if (o.Fuzzy == nil) != (n.Fuzzy == nil) {
		return false
	}
	return o.Fuzzy == nil || o.Fuzzy.Raw == n.Fuzzy.Raw
}

// removeCaptures turns a Group into its bare Body, used when composing
// subpatterns that must not introduce new capture numbering (spec
// §3.4 "remove_captures").
func removeCaptures(node Node) Node {
	switch t := node.(type) {
	case *Group:
		return removeCaptures(t.Body)
	case *Sequence:
		items := make([]Node, len(t.Items))
		for i, it := range t.Items {
			items[i] = removeCaptures(it)
		}
		return &Sequence{P: t.P, Items: items}
	case *Branch:
		arms := make([]Node, len(t.Arms))
		for i, a := range t.Arms {
			arms[i] = removeCaptures(a)
		}
		return &Branch{P: t.P, Arms: arms}
	default:
		return node
	}
}

// Conditional is `(?(n|name)yes|no)`.
type Conditional struct {
	P       Position
	Ref     uint32
	RefName string
	Yes     Node
	No      Node // nil if absent
}

func (n *Conditional) Pos() Position { return n.P }
func (n *Conditional) IsEmpty() bool {
	if n.No == nil {
		return n.Yes.IsEmpty()
	}
	return n.Yes.IsEmpty() && n.No.IsEmpty()
}
func (n *Conditional) IsAtomic() bool      { return false }
func (n *Conditional) ContainsGroup() bool {
	if n.Yes.ContainsGroup() {
		return true
	}
	return n.No != nil && n.No.ContainsGroup()
}
func (n *Conditional) CanRepeat() bool      { return true }
func (n *Conditional) HasSimpleStart() bool { return false }
func (n *Conditional) FirstSet(ctx *Context) FirstSet {
	sets := []FirstSet{n.Yes.FirstSet(ctx)}
	if n.No != nil {
		sets = append(sets, n.No.FirstSet(ctx))
	} else {
		sets = append(sets, epsilonFirstSet())
	}
	return unionFirstSets(sets)
}

func (n *Conditional) Optimise(ctx *Context) Node {
	n.Yes = n.Yes.Optimise(ctx)
	if n.No != nil {
		n.No = n.No.Optimise(ctx)
	}
	return n
}

func (n *Conditional) Compile(e *Emitter, reverse bool) {
	e.emit(GROUP_EXISTS, n.Ref)
	n.Yes.Compile(e, reverse)
	if n.No != nil {
		e.next()
		n.No.Compile(e, reverse)
	}
	e.end()
}

func (n *Conditional) Equal(other Node) bool {
	o, ok := other.(*Conditional)
	if !ok || o.Ref != n.Ref || !o.Yes.Equal(n.Yes) {
		return false
	}
	if (o.No == nil) != (n.No == nil) {
		return false
	}
	return o.No == nil || o.No.Equal(n.No)
}

// repeatBase is shared by GreedyRepeat/LazyRepeat.
type repeatBase struct {
	P        Position
	Body     Node
	Min, Max uint64
}

func (n *repeatBase) Pos() Position { return n.P }
func (n *repeatBase) IsEmpty() bool { return n.Max == 0 || n.Body.IsEmpty() }
func (n *repeatBase) ContainsGroup() bool { return n.Body.ContainsGroup() }
func (n *repeatBase) CanRepeat() bool     { return false }
func (n *repeatBase) HasSimpleStart() bool {
	return n.Min > 0 && n.Body.HasSimpleStart()
}
func (n *repeatBase) FirstSet(ctx *Context) FirstSet {
	fs := n.Body.FirstSet(ctx)
	if n.Min == 0 {
		fs.Epsilon = true
	}
	return fs
}

// normaliseRepeat applies spec §4.4 repeat normalisation: {1,1}
// collapses to the body; an empty body collapses the whole repeat.
func normaliseRepeat(pos Position, body Node, min, max uint64) (Node, bool) {
	if body.IsEmpty() {
		return &Sequence{P: pos}, true
	}
	if min == 1 && max == 1 {
		return body, true
	}
	return nil, false
}

// GreedyRepeat is `x*`, `x+`, `x?`, `x{m,n}` in greedy form.
type GreedyRepeat struct{ repeatBase }

func (n *GreedyRepeat) IsAtomic() bool { return false }

func (n *GreedyRepeat) Optimise(ctx *Context) Node {
	n.Body = n.Body.Optimise(ctx)
	if collapsed, ok := normaliseRepeat(n.P, n.Body, n.Min, n.Max); ok {
		return collapsed
	}
	return n
}

func (n *GreedyRepeat) Compile(e *Emitter, reverse bool) {
	op := GREEDY_REPEAT
	if n.Body.IsAtomic() {
		op = GREEDY_REPEAT_ONE
	}
	e.emit(op, uint32(n.Min), uint32(minU64(n.Max, uint64(Unlimited))))
	n.Body.Compile(e, reverse)
	e.emit(END_GREEDY_REPEAT)
}

func (n *GreedyRepeat) Equal(other Node) bool {
	o, ok := other.(*GreedyRepeat)
	return ok && o.Min == n.Min && o.Max == n.Max && o.Body.Equal(n.Body)
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// LazyRepeat is the `?`-suffixed non-greedy variant.
type LazyRepeat struct{ repeatBase }

func (n *LazyRepeat) IsAtomic() bool { return false }

func (n *LazyRepeat) Optimise(ctx *Context) Node {
	n.Body = n.Body.Optimise(ctx)
	if collapsed, ok := normaliseRepeat(n.P, n.Body, n.Min, n.Max); ok {
		return collapsed
	}
	return n
}

func (n *LazyRepeat) Compile(e *Emitter, reverse bool) {
	op := LAZY_REPEAT
	if n.Body.IsAtomic() {
		op = LAZY_REPEAT_ONE
	}
	e.emit(op, uint32(n.Min), uint32(minU64(n.Max, uint64(Unlimited))))
	n.Body.Compile(e, reverse)
	e.emit(END_LAZY_REPEAT)
}

func (n *LazyRepeat) Equal(other Node) bool {
	o, ok := other.(*LazyRepeat)
	return ok && o.Min == n.Min && o.Max == n.Max && o.Body.Equal(n.Body)
}

// Atomic is `(?>...)` / a possessive quantifier's wrapper.
type Atomic struct {
	P    Position
	Body Node
}

func (n *Atomic) Pos() Position        { return n.P }
func (n *Atomic) IsEmpty() bool        { return n.Body.IsEmpty() }
func (n *Atomic) IsAtomic() bool       { return true }
func (n *Atomic) ContainsGroup() bool  { return n.Body.ContainsGroup() }
func (n *Atomic) CanRepeat() bool      { return true }
func (n *Atomic) HasSimpleStart() bool { return n.Body.HasSimpleStart() }
func (n *Atomic) FirstSet(ctx *Context) FirstSet { return n.Body.FirstSet(ctx) }

// Optimise performs the atomic leak-out pass of spec §4.4: leading and
// trailing atomic, non-capturing, side-effect-free children move out
// of the atomic scope; if nothing non-atomic remains, the wrapper
// itself is dropped.
func (n *Atomic) Optimise(ctx *Context) Node {
	n.Body = n.Body.Optimise(ctx)
	seq, ok := n.Body.(*Sequence)
	if !ok {
		if n.Body.IsAtomic() {
			return n.Body
		}
		return n
	}

	canHoist := func(it Node) bool { return it.IsAtomic() && !it.ContainsGroup() }

	lo, hi := 0, len(seq.Items)
	for lo < hi && canHoist(seq.Items[lo]) {
		lo++
	}
	for hi > lo && canHoist(seq.Items[hi-1]) {
		hi--
	}
	if lo == 0 && hi == len(seq.Items) {
		// Nothing hoistable left outside; whole thing stays atomic
		// as-is, or collapses if it was atomic throughout already.
		if seq.IsAtomic() {
			return seq
		}
		return n
	}

	var out []Node
	out = append(out, seq.Items[:lo]...)
	middle := seq.Items[lo:hi]
	if len(middle) > 0 {
		body := Node(&Sequence{P: n.P, Items: middle})
		if s, ok := body.(*Sequence); ok && len(s.Items) == 1 {
			body = s.Items[0]
		}
		if !body.IsAtomic() {
			out = append(out, &Atomic{P: n.P, Body: body})
		} else {
			out = append(out, body)
		}
	}
	out = append(out, seq.Items[hi:]...)
	return (&Sequence{P: n.P, Items: out}).Optimise(ctx)
}

func (n *Atomic) Compile(e *Emitter, reverse bool) {
	e.emit(ATOMIC)
	n.Body.Compile(e, reverse)
	e.end()
}

func (n *Atomic) Equal(other Node) bool {
	o, ok := other.(*Atomic)
	return ok && o.Body.Equal(n.Body)
}

// LookAround is lookahead/lookbehind (spec §3.4).
type LookAround struct {
	P        Position
	Behind   bool
	Positive bool
	Body     Node
}

func (n *LookAround) Pos() Position        { return n.P }
func (n *LookAround) IsEmpty() bool        { return true }
func (n *LookAround) IsAtomic() bool       { return true }
func (n *LookAround) ContainsGroup() bool  { return n.Body.ContainsGroup() }
func (n *LookAround) CanRepeat() bool      { return false }
func (n *LookAround) HasSimpleStart() bool { return false }
func (n *LookAround) FirstSet(ctx *Context) FirstSet { return epsilonFirstSet() }

func (n *LookAround) Optimise(ctx *Context) Node {
	n.Body = n.Body.Optimise(ctx)
	return n
}

func (n *LookAround) Compile(e *Emitter, reverse bool) {
	e.emit(LOOKAROUND, boolToU32(n.Positive), boolToU32(!n.Behind))
	// A lookbehind body is compiled walking backward from the current
	// position, matching spec §4.6 ("compiled in lookbehind direction
	// if behind"); the reverse_reader idiom adapted from the teacher.
	n.Body.Compile(e, n.Behind)
	e.end()
}

func (n *LookAround) Equal(other Node) bool {
	o, ok := other.(*LookAround)
	return ok && o.Behind == n.Behind && o.Positive == n.Positive && o.Body.Equal(n.Body)
}
