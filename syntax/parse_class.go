package syntax

// Character-class parsing implements the four-level set-algebra
// precedence tower (spec §4.2.3): implicit union of members binds
// tightest, then `--` diff, then `&&` inter, then `~~` symdiff, then
// the explicit `||` union binds loosest. A term is either a run of
// plain/escaped members and ranges, a POSIX `[:name:]` class, or a
// fully nested `[...]` class.

// parseClass parses the body of a `[...]` class assuming the opening
// '[' has already been consumed by the caller.
func (p *Parser) parseClass(scoped *Flags) Node {
	positive := true
	if p.s.MatchRune('^') {
		positive = false
	}

	prevInsideClass := p.s.SetInsideClass(true)
	node := p.parseSetUnionExplicit(scoped)
	p.s.SetInsideClass(prevInsideClass)
	p.s.Expect("]")

	if !positive {
		node = negate(node)
	}
	return node
}

// parseSetUnionExplicit is the loosest-binding level: `a||b||c`.
func (p *Parser) parseSetUnionExplicit(scoped *Flags) Node {
	left := p.parseSetSymDiff(scoped)
	for p.s.Match("||") {
		right := p.parseSetSymDiff(scoped)
		left = &SetUnion{P: spanOf(left, right), Items: []Node{left, right}, Positive: true}
	}
	return left
}

func (p *Parser) parseSetSymDiff(scoped *Flags) Node {
	left := p.parseSetInter(scoped)
	for p.s.Match("~~") {
		right := p.parseSetInter(scoped)
		left = &SetSymDiff{P: spanOf(left, right), Left: left, Right: right, Positive: true}
	}
	return left
}

func (p *Parser) parseSetInter(scoped *Flags) Node {
	left := p.parseSetDiff(scoped)
	for p.s.Match("&&") {
		right := p.parseSetDiff(scoped)
		left = &SetInter{P: spanOf(left, right), Items: []Node{left, right}, Positive: true}
	}
	return left
}

func (p *Parser) parseSetDiff(scoped *Flags) Node {
	left := p.parseSetTerm(scoped)
	for p.s.Match("--") {
		right := p.parseSetTerm(scoped)
		left = &SetDiff{P: spanOf(left, right), Left: left, Right: right, Positive: true}
	}
	return left
}

func spanOf(a, b Node) Position { return combinePos(a.Pos().Begin, b.Pos().End) }

// parseSetTerm parses one nested class, one POSIX class, or a run of
// plain/escaped members and ranges, stopping at an explicit operator,
// the closing ']', or EOF.
func (p *Parser) parseSetTerm(scoped *Flags) Node {
	if p.s.HasPrefix("[:") {
		if node, ok := p.tryParsePosixClass(); ok {
			return node
		}
		// Unrecognised `[:name:]`: not a POSIX class after all. The
		// scanner was already rewound to just before the '[', so fall
		// through to ordinary member parsing and treat it as literal
		// characters (spec §4.2.3), not as a nested `[...]` class.
		return p.parseSetMemberRun(scoped)
	}
	if p.s.Peek1('[') {
		p.s.Get()
		return p.parseClass(scoped)
	}
	return p.parseSetMemberRun(scoped)
}

// parseSetMemberRun parses a run of plain/escaped members and ranges,
// stopping at an explicit operator, the closing ']', or EOF.
func (p *Parser) parseSetMemberRun(scoped *Flags) Node {
	begin := p.s.Pos()
	var members []Node
	for {
		if p.isSetOperatorAhead() {
			break
		}
		ch, ok := p.s.Peek()
		if !ok || ch == ']' {
			break
		}
		members = append(members, p.parseSetMember(scoped))
	}
	if len(members) == 0 {
		throwAt(begin, p.s.Pos(), ErrBadSet)
	}
	if len(members) == 1 {
		return members[0]
	}
	return &SetUnion{P: Position{Begin: begin, End: p.s.Pos()}, Items: members, Positive: true}
}

// isSetOperatorAhead reports whether the next two runes spell an
// explicit set operator, without consuming anything. A lone '-' is
// left alone here; parseSetMember decides whether it starts a range.
func (p *Parser) isSetOperatorAhead() bool {
	a, ok := p.s.PeekAt(0)
	if !ok {
		return false
	}
	b, ok2 := p.s.PeekAt(1)
	if !ok2 {
		return false
	}
	switch {
	case a == '-' && b == '-':
		return true
	case a == '&' && b == '&':
		return true
	case a == '~' && b == '~':
		return true
	case a == '|' && b == '|':
		return true
	}
	return false
}

// parseSetMember parses one member: an escape, or a literal character,
// folding a following `-end` into a range when the member was a single
// concrete code point.
func (p *Parser) parseSetMember(scoped *Flags) Node {
	begin := p.s.Pos()
	ch, _ := p.s.Get()

	var member Node
	var memberRune rune
	isRangeable := false

	switch ch {
	case '\\':
		member = p.parseClassEscape(scoped)
		if c, ok := member.(*Character); ok && c.Positive {
			memberRune, isRangeable = c.Value, true
		}
	default:
		member = p.classLiteral(Position{Begin: begin, End: p.s.Pos()}, ch, scoped)
		memberRune, isRangeable = ch, true
	}

	if isRangeable && p.canStartRange() {
		p.s.Get() // the '-'
		end := p.parseRangeEnd(begin)
		return p.buildRange(begin, memberRune, end, scoped)
	}
	return member
}

// classLiteral wraps a single literal code point the same way
// literalFromCodepoint does outside a class: IGNORECASE gets a
// CharacterIgn, which self-collapses back to a plain Character when
// the code point is case-stable.
func (p *Parser) classLiteral(pos Position, r rune, scoped *Flags) Node {
	if scoped != nil && scoped.Has(IGNORECASE) {
		return (&CharacterIgn{Character{P: pos, Value: r, Positive: true}}).Optimise(p.ctx)
	}
	return &Character{P: pos, Value: r, Positive: true}
}

// canStartRange reports whether the upcoming '-' begins a range rather
// than an explicit `--` diff operator or a literal trailing dash
// before ']'.
func (p *Parser) canStartRange() bool {
	a, ok := p.s.PeekAt(0)
	if !ok || a != '-' {
		return false
	}
	b, ok2 := p.s.PeekAt(1)
	if !ok2 || b == '-' || b == ']' {
		return false
	}
	return true
}

func (p *Parser) parseRangeEnd(begin uint16) rune {
	ch, ok := p.s.Get()
	if !ok {
		throwAt(begin, p.s.Pos(), ErrBadCharacterRange)
	}
	if ch == '\\' {
		node := p.parseClassEscape(nil)
		c, ok := node.(*Character)
		if !ok || !c.Positive {
			throwAt(begin, p.s.Pos(), ErrBadCharacterRange)
		}
		return c.Value
	}
	return ch
}

// maxExpandedRange caps eager range expansion (see buildRange) so a
// pathological `\x00-\x{10FFFF}` can't exhaust memory; this front end
// has no dedicated range-bound node, unlike a production VM's bitset
// builder, so very large ranges are rejected rather than silently
// truncated.
const maxExpandedRange = 1 << 16

func (p *Parser) buildRange(begin uint16, lo, hi rune, scoped *Flags) Node {
	if hi < lo {
		throwAt(begin, p.s.Pos(), ErrBadCharacterRange)
	}
	if int64(hi)-int64(lo)+1 > maxExpandedRange {
		throwAt(begin, p.s.Pos(), ErrBadCharacterRange)
	}
	end := p.s.Pos()
	if lo == hi {
		return p.classLiteral(Position{Begin: begin, End: end}, lo, scoped)
	}
	members := make([]Node, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		members = append(members, p.classLiteral(Position{Begin: begin, End: end}, r, scoped))
	}
	return &SetUnion{P: Position{Begin: begin, End: end}, Items: members, Positive: true}
}

// parseClassEscape parses an escape inside a class body, where `\b` is
// backspace (not the word-boundary assertion) and zero-width
// assertions have no meaning. scoped may be nil when called from
// parseRangeEnd, where IGNORECASE is irrelevant (a range endpoint is
// always a bare code point).
func (p *Parser) parseClassEscape(scoped *Flags) Node {
	begin := p.s.Pos() - 1
	ch, ok := p.s.Get()
	if !ok {
		throwAt(begin, p.s.Pos(), ErrBadEscape)
	}
	pos := Position{Begin: begin, End: p.s.Pos()}

	switch ch {
	case 'd':
		return p.digitClass(pos, true)
	case 'D':
		return p.digitClass(pos, false)
	case 's':
		return p.spaceClass(pos, true)
	case 'S':
		return p.spaceClass(pos, false)
	case 'w':
		return p.wordClass(pos, true)
	case 'W':
		return p.wordClass(pos, false)
	case 'p':
		return p.parseUnicodeProperty(begin, true, safeFlags(scoped))
	case 'P':
		return p.parseUnicodeProperty(begin, false, safeFlags(scoped))
	case 'b':
		return &Character{P: pos, Value: 0x08, Positive: true}
	case 'a':
		return &Character{P: pos, Value: 0x07, Positive: true}
	case 'f':
		return &Character{P: pos, Value: 0x0C, Positive: true}
	case 'n':
		return &Character{P: pos, Value: 0x0A, Positive: true}
	case 'r':
		return &Character{P: pos, Value: 0x0D, Positive: true}
	case 't':
		return &Character{P: pos, Value: 0x09, Positive: true}
	case 'v':
		return &Character{P: pos, Value: 0x0B, Positive: true}
	case 'e':
		return &Character{P: pos, Value: 0x1B, Positive: true}
	case '0':
		return &Character{P: pos, Value: p.parseOctalAfterZero(), Positive: true}
	case 'x':
		return &Character{P: pos, Value: p.parseHexEscape(begin), Positive: true}
	case 'u':
		return &Character{P: pos, Value: p.parseFixedHex(begin, 4), Positive: true}
	case 'U':
		return &Character{P: pos, Value: p.parseFixedHex(begin, 8), Positive: true}
	case 'o':
		return &Character{P: pos, Value: p.parseBracedOctal(begin), Positive: true}
	case 'N':
		return p.parseNamedCharacter(begin, safeFlags(scoped))
	default:
		return &Character{P: pos, Value: ch, Positive: true}
	}
}

func safeFlags(f *Flags) *Flags {
	if f == nil {
		var zero Flags
		return &zero
	}
	return f
}

// tryParsePosixClass attempts to parse `[:name:]`/`[:^name:]`, already
// confirmed present by HasPrefix("[:"). An unrecognised name is not a
// hard error: the scanner rewinds to just before the '[' and ok=false
// is returned so the caller can fall back to literal member parsing
// (spec §4.2.3).
func (p *Parser) tryParsePosixClass() (Node, bool) {
	save := p.s.Save()
	begin := p.s.Pos()
	p.s.Get() // '['
	p.s.Get() // ':'
	positive := true
	if p.s.MatchRune('^') {
		positive = false
	}
	name := p.scanUntil(':')
	if !isKnownPosixClassName(name) {
		p.s.Restore(save)
		return nil, false
	}
	p.s.Expect("]")
	pos := Position{Begin: begin, End: p.s.Pos()}
	return posixClassNode(p.ctx, pos, name, positive, begin), true
}

func isKnownPosixClassName(name string) bool {
	switch name {
	case "alpha", "alnum", "upper", "lower", "space", "word", "digit",
		"punct", "cntrl", "print", "graph", "blank", "xdigit":
		return true
	default:
		return false
	}
}

func posixClassNode(ctx *Context, pos Position, name string, positive bool, begin uint16) Node {
	switch name {
	case "alpha":
		return propertyByName(ctx, pos, "ALPHA", positive, begin)
	case "alnum":
		return propertyByName(ctx, pos, "ALPHANUMERIC", positive, begin)
	case "upper":
		return propertyByName(ctx, pos, "UPPERCASE", positive, begin)
	case "lower":
		return propertyByName(ctx, pos, "LOWERCASE", positive, begin)
	case "space":
		return propertyByName(ctx, pos, "WHITESPACE", positive, begin)
	case "word":
		id, ok := ctx.Properties.PropertyID("ALPHANUMERIC")
		if !ok {
			throwMsg(pos, ErrUnknownProperty)
		}
		return &SetUnion{P: pos, Items: []Node{
			&Property{P: pos, Packed: PackProperty(id, 0), Positive: true},
			&Character{P: pos, Value: '_', Positive: true},
		}, Positive: positive}
	case "digit":
		id, ok := ctx.Properties.PropertyID("GC")
		if !ok {
			throwMsg(pos, ErrUnknownProperty)
		}
		val, ok := ctx.Properties.ValueID(id, "ND")
		if !ok {
			throwMsg(pos, ErrUnknownPropertyValue)
		}
		return &Property{P: pos, Packed: PackProperty(id, val), Positive: positive}
	case "punct", "cntrl", "print", "graph", "blank", "xdigit":
		return asciiPosixClass(pos, name, positive)
	default:
		throwAt(begin, pos.End, ErrBadSet)
		return nil
	}
}

func propertyByName(ctx *Context, pos Position, propName string, positive bool, begin uint16) Node {
	id, ok := ctx.Properties.PropertyID(propName)
	if !ok {
		throwAt(begin, pos.End, ErrUnknownProperty)
	}
	return &Property{P: pos, Packed: PackProperty(id, 0), Positive: positive}
}

// asciiPosixClass builds the POSIX classes the default property
// resolver doesn't ship (SPEC_FULL §1 scoping: a richer resolver can
// be plugged in, but these ASCII definitions keep the front end usable
// standalone).
func asciiPosixClass(pos Position, name string, positive bool) Node {
	var ranges [][2]rune
	switch name {
	case "punct":
		ranges = [][2]rune{{'!', '/'}, {':', '@'}, {'[', '`'}, {'{', '~'}}
	case "cntrl":
		ranges = [][2]rune{{0x00, 0x1F}, {0x7F, 0x7F}}
	case "print":
		ranges = [][2]rune{{0x20, 0x7E}}
	case "graph":
		ranges = [][2]rune{{0x21, 0x7E}}
	case "blank":
		ranges = [][2]rune{{' ', ' '}, {'\t', '\t'}}
	case "xdigit":
		ranges = [][2]rune{{'0', '9'}, {'A', 'F'}, {'a', 'f'}}
	}
	var members []Node
	for _, r := range ranges {
		for c := r[0]; c <= r[1]; c++ {
			members = append(members, &Character{P: pos, Value: c, Positive: true})
		}
	}
	return &SetUnion{P: pos, Items: members, Positive: positive}
}
