package syntax

import "strings"

// parseGroupOpen parses everything after the opening '(' already
// consumed by parseAtom: plain capturing groups, the `?`-prefixed
// extension forms (non-capturing, named capture, lookaround, atomic,
// conditional, branch-reset, inline flags, comments), and the
// supplemented recursive-subpattern forms, which this front end
// rejects (spec's flat, non-recursive opcode stream has no CALL/RETURN
// opcode to target).
func (p *Parser) parseGroupOpen(scoped *Flags) (Node, bool) {
	begin := p.s.Pos() - 1 // the '(' itself

	if !p.s.MatchRune('?') {
		return p.parsePlainCapture(begin, scoped), true
	}

	switch {
	case p.s.MatchRune(':'):
		body := p.parseAlternation(scoped)
		p.s.Expect(")")
		return body, true

	case p.s.MatchRune('#'):
		for {
			ch, ok := p.s.Get()
			if !ok {
				throwAt(begin, p.s.Pos(), ErrMissingRparen)
			}
			if ch == ')' {
				break
			}
		}
		return nil, false

	case p.s.MatchRune('='):
		body := p.parseAlternation(scoped)
		p.s.Expect(")")
		return &LookAround{P: combinePos(begin, p.s.Pos()), Positive: true, Body: body}, true

	case p.s.MatchRune('!'):
		body := p.parseAlternation(scoped)
		p.s.Expect(")")
		return &LookAround{P: combinePos(begin, p.s.Pos()), Positive: false, Body: body}, true

	case p.s.MatchRune('>'):
		body := p.parseAlternation(scoped)
		p.s.Expect(")")
		return &Atomic{P: combinePos(begin, p.s.Pos()), Body: body}, true

	case p.s.MatchRune('<'):
		return p.parseLtExtension(begin, scoped)

	case p.s.MatchRune('\''):
		name := p.scanUntil('\'')
		return p.finishNamedCapture(begin, name, scoped), true

	case p.s.MatchRune('P'):
		return p.parsePExtension(begin, scoped)

	case p.s.MatchRune('|'):
		return p.parseBranchReset(begin, scoped), true

	case p.s.MatchRune('('):
		return p.parseConditional(begin, scoped), true

	case p.s.MatchRune('&'):
		name := p.scanUntil(')')
		_ = name
		throwAt(begin, p.s.Pos(), ErrUnknownExtension)

	case p.s.MatchRune('R'):
		p.s.Expect(")")
		throwAt(begin, p.s.Pos(), ErrUnknownExtension)

	default:
		return p.parseInlineFlagsOrError(begin, scoped)
	}
	return nil, false
}

func (p *Parser) parsePlainCapture(begin uint16, scoped *Flags) Node {
	n := p.ctx.NewGroup()
	body := p.parseAlternation(scoped)
	p.s.Expect(")")
	p.ctx.CloseGroup(n)
	return &Group{P: combinePos(begin, p.s.Pos()), Number: n, Body: body}
}

func (p *Parser) finishNamedCapture(begin uint16, name string, scoped *Flags) Node {
	if name == "" || !isValidGroupName(name) {
		throwAt(begin, p.s.Pos(), ErrBadGroupName)
	}
	n := p.ctx.NewGroup()
	if !p.ctx.BindName(name, n) {
		throwAt(begin, p.s.Pos(), ErrDuplicateGroup)
	}
	body := p.parseAlternation(scoped)
	p.s.Expect(")")
	p.ctx.CloseGroup(n)
	return &Group{P: combinePos(begin, p.s.Pos()), Number: n, Name: name, Body: body}
}

// parseLtExtension handles everything starting `(?<`: lookbehind
// ((?<=...), (?<!...)) and named capture ((?<name>...)).
func (p *Parser) parseLtExtension(begin uint16, scoped *Flags) (Node, bool) {
	if p.s.MatchRune('=') {
		body := p.parseAlternation(scoped)
		p.s.Expect(")")
		return &LookAround{P: combinePos(begin, p.s.Pos()), Behind: true, Positive: true, Body: body}, true
	}
	if p.s.MatchRune('!') {
		body := p.parseAlternation(scoped)
		p.s.Expect(")")
		return &LookAround{P: combinePos(begin, p.s.Pos()), Behind: true, Positive: false, Body: body}, true
	}
	name := p.scanUntil('>')
	return p.finishNamedCapture(begin, name, scoped), true
}

// parsePExtension handles `(?P<name>...)` and `(?P=name)`.
func (p *Parser) parsePExtension(begin uint16, scoped *Flags) (Node, bool) {
	if p.s.MatchRune('<') {
		name := p.scanUntil('>')
		return p.finishNamedCapture(begin, name, scoped), true
	}
	if p.s.MatchRune('=') {
		name := p.scanUntil(')')
		n, ok := p.ctx.GroupByName(name)
		if !ok {
			throwAt(begin, p.s.Pos(), ErrUnknownGroup)
		}
		if p.ctx.IsOpen(n) {
			throwAt(begin, p.s.Pos(), ErrOpenGroupBackref)
		}
		if scoped.Has(IGNORECASE) {
			return &RefGroupIgn{P: combinePos(begin, p.s.Pos()), Number: n}, true
		}
		return &RefGroup{P: combinePos(begin, p.s.Pos()), Number: n}, true
	}
	throwAt(begin, p.s.Pos(), ErrUnknownExtension)
	return nil, false
}

// parseBranchReset handles `(?|alt1|alt2|...)`: every alternative
// shares the same group numbering, restored between siblings so
// `(?|(a)|(b))` has exactly one group 1 regardless of which
// alternative matched (spec §4.2.4).
func (p *Parser) parseBranchReset(begin uint16, scoped *Flags) Node {
	snap := p.ctx.snapshotForBranchReset()
	startCount := snap.count

	var arms []Node
	maxCount := startCount
	union := copyUintSet(snap.used)
	nameIndex := copyStringUintMap(snap.groupIndex)
	nameOf := copyUintStringMap(snap.groupName)
	for {
		armScoped := *scoped
		p.ctx.restoreForBranchReset(snap)
		arm := p.parseSequence(&armScoped)
		arms = append(arms, arm)
		if p.ctx.groupCount > maxCount {
			maxCount = p.ctx.groupCount
		}
		for g := range p.ctx.usedGroups {
			union[g] = struct{}{}
		}
		// First sibling to bind a name wins (spec §9 Open Question
		// resolution); a later sibling's same-named group still gets
		// its own number, it just doesn't rebind the name.
		for name, n := range p.ctx.groupIndex {
			if _, bound := nameIndex[name]; !bound {
				nameIndex[name] = n
				nameOf[n] = name
			}
		}
		if !p.s.MatchRune('|') {
			break
		}
	}
	p.ctx.mergeBranchResetUsed(maxCount, union, nameIndex, nameOf)
	p.s.Expect(")")

	var body Node = &Branch{P: combinePos(begin, p.s.Pos()), Arms: arms}
	if len(arms) == 1 {
		body = arms[0]
	}
	return body
}

// parseConditional handles `(?(ref)yes|no)` / `(?(ref)yes)`.
func (p *Parser) parseConditional(begin uint16, scoped *Flags) Node {
	refText := p.scanUntil(')')
	cond := &Conditional{P: begin2pos(begin)}
	if n, ok := parseUintLiteral(refText); ok {
		cond.Ref = n
	} else {
		n, ok := p.ctx.GroupByName(refText)
		if !ok {
			throwAt(begin, p.s.Pos(), ErrUnknownGroup)
		}
		cond.Ref = n
		cond.RefName = refText
	}

	yesScoped := *scoped
	yes := p.parseSequence(&yesScoped)
	cond.Yes = yes
	if p.s.MatchRune('|') {
		noScoped := *scoped
		no := p.parseSequence(&noScoped)
		cond.No = no
	}
	p.s.Expect(")")
	cond.P = combinePos(begin, p.s.Pos())
	return cond
}

func begin2pos(begin uint16) Position { return Position{Begin: begin, End: begin} }

// parseInlineFlagsOrError parses `(?flags)`, `(?flags:...)` and
// `(?flags-flags:...)`. A bare `(?flags)` with no body changes scoped
// (and, under old behaviour / at the pattern head, global) flags for
// the remainder of the enclosing scope; `(?flags:...)`/`(?-flags:...)`
// scope the change to the group body only.
func (p *Parser) parseInlineFlagsOrError(begin uint16, scoped *Flags) (Node, bool) {
	add, remove, ok := p.scanFlagLetters()
	if !ok {
		throwAt(begin, p.s.Pos(), ErrUnknownExtension)
	}

	if p.s.MatchRune(':') {
		local := (*scoped &^ (remove & ScopedFlags)) | (add & ScopedFlags)
		if addGlobal := add & GlobalFlags; addGlobal != 0 {
			p.applyGlobalFlags(begin, addGlobal)
		}
		if remove&NEW != 0 {
			p.ctx.GlobalFlags &^= NEW
		}
		body := p.parseAlternation(&local)
		p.s.Expect(")")
		return body, true
	}

	// NEW (n / V0 / V1) is exempt from the can't-turn-off rule below:
	// selecting old behaviour inline is a direct regime switch (spec
	// §6.3), not the removal of an otherwise-fixed global mode.
	if remove&(GlobalFlags&^NEW) != 0 || remove&PolicyFlags != 0 {
		throwAt(begin, p.s.Pos(), ErrBadInlineFlagsCantTurnOff)
	}
	p.s.Expect(")")
	if addGlobal := add & GlobalFlags; addGlobal != 0 {
		p.applyGlobalFlags(begin, addGlobal)
	}
	if remove&NEW != 0 {
		p.ctx.GlobalFlags &^= NEW
	}
	*scoped = (*scoped &^ (remove & ScopedFlags)) | (add & ScopedFlags)
	*scoped |= add & PolicyFlags
	return nil, false
}

// applyGlobalFlags implements the positional-global-flag restart rule
// (spec §4.2.1, §9 Open Question): under NEW behaviour a positional
// global flag not at the pattern head is a hard error; under old
// behaviour a flag at the pattern head that is not already set asks the
// driver to restart with the bits merged into the initial global flags,
// and a flag deeper in the pattern is simply set without a restart.
func (p *Parser) applyGlobalFlags(begin uint16, add Flags) {
	if p.ctx.GlobalFlags.Has(NEW) {
		if !p.allowGlobalFlags {
			throwAt(begin, p.s.Pos(), ErrBadInlineFlags)
		}
		p.ctx.GlobalFlags |= add
		return
	}
	if !p.allowGlobalFlags || p.ctx.GlobalFlags&add == add {
		p.ctx.GlobalFlags |= add
		return
	}
	panic(UnscopedFlagSet{Added: uint32(add)})
}

// scanFlagLetters parses the `flags` / `flags-flags` run after `(?`
// and before a `:` or `)`, returning the bits to add and the bits to
// remove.
func (p *Parser) scanFlagLetters() (add, remove Flags, ok bool) {
	removing := false
	any := false
	for {
		ch, got := p.s.RawAt(int(p.s.Pos()))
		if !got {
			break
		}
		if ch == '-' {
			p.s.Get()
			removing = true
			continue
		}
		if ch == ':' || ch == ')' {
			break
		}
		if ch == 'V' {
			p.s.Get()
			nxt, got2 := p.s.RawAt(int(p.s.Pos()))
			if !got2 || (nxt != '0' && nxt != '1') {
				return 0, 0, false
			}
			p.s.Get()
			any = true
			// V0/V1 is the two-letter alias for NEW off/on (spec §6.3);
			// it sets NEW directly rather than following the preceding
			// '-' (V0/V1 never appear negated themselves).
			if nxt == '1' {
				add |= NEW
			} else {
				remove |= NEW
			}
			continue
		}
		bit, known := LookupFlagLetter(byte(ch))
		if !known {
			return 0, 0, false
		}
		p.s.Get()
		any = true
		if removing {
			remove |= bit
		} else {
			add |= bit
		}
	}
	return add, remove, any
}

func (p *Parser) scanUntil(closer rune) string {
	var b strings.Builder
	for {
		ch, ok := p.s.Get()
		if !ok {
			throwAt(p.s.Pos(), p.s.Pos(), ErrMissingClosing)
		}
		if ch == closer {
			break
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func isValidGroupName(name string) bool {
	for i, r := range name {
		if i == 0 && !(r == '_' || isAlphanumeric(byte(r)) && !isDigit(byte(r))) {
			return false
		}
		if r != '_' && !isAlphanumeric(byte(r)) {
			return false
		}
	}
	return true
}

func parseUintLiteral(s string) (uint32, bool) {
	if s == "" {
		return 0, false
	}
	var n uint32
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + uint32(r-'0')
	}
	return n, true
}
