package syntax

// This file holds the package-level optimiser helpers shared across
// several Node.Optimise implementations (spec §4.4): character
// packing, branch prefix/suffix factoring, common-prefix branch
// merging and branch-to-set reduction. Each runs as a single pass;
// Compile (in compile.go) drives the fixed-point loop by re-running
// Optimise until the tree stops changing.

// sequenceItems unwraps n into its flat item list, treating a
// non-Sequence node as a one-item sequence.
func sequenceItems(n Node) []Node {
	if seq, ok := n.(*Sequence); ok {
		return seq.Items
	}
	return []Node{n}
}

// sequenceFrom is the inverse of sequenceItems.
func sequenceFrom(items []Node) Node {
	if len(items) == 1 {
		return items[0]
	}
	return &Sequence{Items: items}
}

// packCharacters coalesces runs of plain positive Character/CharacterIgn
// nodes into String/StringIgn nodes (spec §4.4 "pack_characters").
func packCharacters(ctx *Context, items []Node) []Node {
	out := make([]Node, 0, len(items))
	i := 0
	for i < len(items) {
		if c, ok := items[i].(*Character); ok && c.Positive && !c.ZeroWidth {
			run, next := collectCharRun(items, i)
			if len(run) > 1 {
				out = append(out, (&String{P: c.P, Chars: run}).Optimise(ctx))
			} else {
				out = append(out, c)
			}
			i = next
			continue
		}
		if c, ok := items[i].(*CharacterIgn); ok && c.Positive && !c.ZeroWidth {
			run, next := collectCharIgnRun(items, i)
			if len(run) > 1 {
				out = append(out, (&StringIgn{P: c.P, Chars: run}).Optimise(ctx))
			} else {
				out = append(out, c)
			}
			i = next
			continue
		}
		out = append(out, items[i])
		i++
	}
	return out
}

func collectCharRun(items []Node, start int) ([]rune, int) {
	c := items[start].(*Character)
	run := []rune{c.Value}
	j := start + 1
	for j < len(items) {
		c2, ok := items[j].(*Character)
		if !ok || !c2.Positive || c2.ZeroWidth {
			break
		}
		run = append(run, c2.Value)
		j++
	}
	return run, j
}

func collectCharIgnRun(items []Node, start int) ([]rune, int) {
	c := items[start].(*CharacterIgn)
	run := []rune{c.Value}
	j := start + 1
	for j < len(items) {
		c2, ok := items[j].(*CharacterIgn)
		if !ok || !c2.Positive || c2.ZeroWidth {
			break
		}
		run = append(run, c2.Value)
		j++
	}
	return run, j
}

// commonPrefixLen returns how many leading items every list shares,
// compared by structural Equal.
func commonPrefixLen(lists [][]Node) int {
	if len(lists) == 0 {
		return 0
	}
	n := len(lists[0])
	for _, l := range lists[1:] {
		if len(l) < n {
			n = len(l)
		}
	}
	count := 0
	for count < n {
		ref := lists[0][count]
		ok := true
		for _, l := range lists[1:] {
			if !l[count].Equal(ref) {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		count++
	}
	return count
}

// commonSuffixLen is commonPrefixLen's mirror, bounded so it never
// overlaps the already-claimed prefix.
func commonSuffixLen(lists [][]Node, prefixLen int) int {
	minLen := -1
	for _, l := range lists {
		avail := len(l) - prefixLen
		if minLen == -1 || avail < minLen {
			minLen = avail
		}
	}
	if minLen <= 0 {
		return 0
	}
	count := 0
	for count < minLen {
		ref := lists[0][len(lists[0])-1-count]
		ok := true
		for _, l := range lists[1:] {
			if !l[len(l)-1-count].Equal(ref) {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		count++
	}
	return count
}

// factorCommonAffixes hoists a shared leading/trailing run of items out
// of every branch arm (spec §4.4): `abc|abd` becomes `ab(?:c|d)`. It
// returns the original arms unchanged when nothing is shared.
func factorCommonAffixes(ctx *Context, arms []Node) []Node {
	if len(arms) < 2 {
		return arms
	}
	lists := make([][]Node, len(arms))
	for i, a := range arms {
		lists[i] = sequenceItems(a)
	}
	prefixLen := commonPrefixLen(lists)
	suffixLen := commonSuffixLen(lists, prefixLen)
	if prefixLen == 0 && suffixLen == 0 {
		return arms
	}

	newArms := make([]Node, len(lists))
	for i, l := range lists {
		mid := l[prefixLen : len(l)-suffixLen]
		newArms[i] = sequenceFrom(mid)
	}

	var body Node
	if allEmpty(newArms) {
		body = &Sequence{}
	} else {
		body = (&Branch{Arms: newArms}).Optimise(ctx)
	}

	combined := make([]Node, 0, prefixLen+1+suffixLen)
	combined = append(combined, lists[0][:prefixLen]...)
	combined = append(combined, body)
	combined = append(combined, lists[0][len(lists[0])-suffixLen:]...)
	return []Node{sequenceFrom(combined).Optimise(ctx)}
}

func allEmpty(nodes []Node) bool {
	for _, n := range nodes {
		if !n.IsEmpty() {
			return false
		}
	}
	return true
}

// mergeCommonPrefixBranches groups arms that share only their very
// first item (rather than the arbitrary-length run factorCommonAffixes
// looks for) into a nested branch: `ax|ay|b` becomes `a(?:x|y)|b`.
func mergeCommonPrefixBranches(ctx *Context, arms []Node) []Node {
	if len(arms) < 2 {
		return arms
	}
	type group struct {
		first Node
		rest  [][]Node
	}
	var groups []*group
	for _, a := range arms {
		items := sequenceItems(a)
		if len(items) == 0 {
			groups = append(groups, &group{rest: [][]Node{items}})
			continue
		}
		first := items[0]
		merged := false
		for _, g := range groups {
			if g.first != nil && g.first.Equal(first) {
				g.rest = append(g.rest, items[1:])
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, &group{first: first, rest: [][]Node{items[1:]}})
		}
	}
	if len(groups) == len(arms) {
		return arms
	}

	out := make([]Node, 0, len(groups))
	for _, g := range groups {
		if g.first == nil {
			out = append(out, sequenceFrom(g.rest[0]))
			continue
		}
		if len(g.rest) == 1 {
			out = append(out, sequenceFrom(append([]Node{g.first}, g.rest[0]...)))
			continue
		}
		restArms := make([]Node, len(g.rest))
		for i, r := range g.rest {
			restArms[i] = sequenceFrom(r)
		}
		rest := (&Branch{Arms: restArms}).Optimise(ctx)
		out = append(out, sequenceFrom([]Node{g.first, rest}).Optimise(ctx))
	}
	return out
}

// reduceToSetUnion collapses a branch of single concrete atoms into one
// SetUnion, e.g. `a|b|c` into the set `[abc]` (spec §4.4). It bails
// (returns ok=false) the moment any arm isn't a plain positive atom.
func reduceToSetUnion(pos Position, arms []Node) (Node, bool) {
	items := make([]Node, 0, len(arms))
	for _, a := range arms {
		switch t := a.(type) {
		case *Character:
			if !t.Positive || t.ZeroWidth {
				return nil, false
			}
			items = append(items, t)
		case *Property:
			if !t.Positive || t.ZeroWidth {
				return nil, false
			}
			items = append(items, t)
		case *SetUnion:
			if !t.Positive || t.ZeroWidth {
				return nil, false
			}
			items = append(items, t.Items...)
		default:
			return nil, false
		}
	}
	return &SetUnion{P: pos, Items: items, Positive: true}, true
}

// OptimiseFixpoint repeatedly applies Node.Optimise until a pass leaves
// the tree structurally unchanged or maxPasses is reached (spec §4.4:
// the rewrite rules are confluent but may need more than one pass to
// reach their fixed point, e.g. packCharacters exposing a new common
// prefix for factorCommonAffixes). maxPasses is a defensive bound, not
// a tuning knob: well-formed rewrite rules converge in two or three
// passes for any realistic pattern.
func OptimiseFixpoint(ctx *Context, root Node, maxPasses int) Node {
	cur := root
	for i := 0; i < maxPasses; i++ {
		next := cur.Optimise(ctx)
		if next.Equal(cur) {
			return next
		}
		cur = next
	}
	return cur
}
