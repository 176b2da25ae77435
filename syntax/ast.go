package syntax

// Node is the common interface every AST variant implements (spec
// §3.4). Forward/self-referencing group validation and name→number
// resolution (the spec's "fix_groups") happen eagerly during parsing,
// where the Context is already at hand, rather than as a separate tree
// walk — see DESIGN.md for that adaptation; the parser never hands out
// a node that still needs fixing.
type Node interface {
	// Pos returns the source span this node was parsed from.
	Pos() Position

	// IsEmpty reports whether the node can only ever match the empty
	// string (used by repeat normalisation and sequence flattening).
	IsEmpty() bool

	// IsAtomic reports whether backtracking never needs to re-enter
	// this node's internals (true for zero-width assertions, already
	// atomic, or otherwise "fire and forget" nodes).
	IsAtomic() bool

	// ContainsGroup reports whether any capturing Group appears
	// anywhere inside the node, used to forbid hoisting it out of a
	// branch during factoring (spec §4.4 correctness contract).
	ContainsGroup() bool

	// CanRepeat reports whether wrapping the node in a repeat is
	// meaningful (zero-width assertions and already-repeated nodes
	// generally return false to avoid redundant *{0,}* shapes).
	CanRepeat() bool

	// FirstSet returns the leading-character-set contribution of this
	// node (spec §4.5).
	FirstSet(ctx *Context) FirstSet

	// HasSimpleStart reports whether the compiled program begins with
	// a concrete, cheap-to-test atom, making a first-set preamble
	// redundant.
	HasSimpleStart() bool

	// Optimise applies this node's rewrite rules once and returns the
	// (possibly different) node to use in its place. It consumes self:
	// callers must not use the receiver after calling Optimise.
	Optimise(ctx *Context) Node

	// Compile serialises the node to e, honouring reverse direction
	// (spec §4.6).
	Compile(e *Emitter, reverse bool)

	// Equal performs the structural equality spec.md requires for
	// idempotent-optimisation and set-member-dedup checks, keyed by
	// class and immutable fields.
	Equal(other Node) bool
}

// FirstSetKind distinguishes the three first-set shapes of spec §4.5.
type FirstSetKind int

const (
	// FirstSetNothing means the node can never start a match.
	FirstSetNothing FirstSetKind = iota
	// FirstSetUnknown is the sentinel "give up, can't prefilter".
	FirstSetUnknown
	// FirstSetAtoms holds a concrete set of leading atoms.
	FirstSetAtoms
)

// FirstSet is the result of Node.FirstSet. Epsilon records whether the
// empty match is also possible from this point (used while folding a
// Sequence left to right, spec §4.5).
type FirstSet struct {
	Kind    FirstSetKind
	Atoms   []Node
	Epsilon bool
}

func nothingFirstSet() FirstSet  { return FirstSet{Kind: FirstSetNothing} }
func unknownFirstSet() FirstSet  { return FirstSet{Kind: FirstSetUnknown} }
func epsilonFirstSet() FirstSet  { return FirstSet{Kind: FirstSetNothing, Epsilon: true} }

// unionFirstSets merges the first-sets of sibling branches (spec:
// "Branch: union of branch first-sets").
func unionFirstSets(sets []FirstSet) FirstSet {
	out := FirstSet{Kind: FirstSetNothing}
	for _, s := range sets {
		if s.Epsilon {
			out.Epsilon = true
		}
		switch s.Kind {
		case FirstSetNothing:
			continue
		case FirstSetUnknown:
			return FirstSet{Kind: FirstSetUnknown, Epsilon: out.Epsilon}
		case FirstSetAtoms:
			if out.Kind == FirstSetNothing {
				out.Kind = FirstSetAtoms
			}
			out.Atoms = append(out.Atoms, s.Atoms...)
		}
	}
	return out
}

// dedupAtoms removes structurally-equal atoms so a unioned first-set
// doesn't carry duplicate SMALL/BIG bitset members.
func dedupAtoms(atoms []Node) []Node {
	out := make([]Node, 0, len(atoms))
	for _, a := range atoms {
		dup := false
		for _, b := range out {
			if a.Equal(b) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}
