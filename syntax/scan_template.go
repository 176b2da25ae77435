package syntax

// Replacement-template scanning is out of scope for this front end
// (SPEC_FULL §1) except for the one primitive an external template
// engine needs: recognizing a group reference or escape inside a
// replacement string. ScanTemplateRef reuses the same Scanner and
// numeric-escape conventions the pattern grammar uses (spec §4.2.2),
// so `\1`, `\g<name>` and `\N{U+XXXX}` mean the same thing in a
// replacement template as they do in a pattern.

// TemplateRefKind classifies what ScanTemplateRef found.
type TemplateRefKind int

const (
	// TemplateRefNumber is a numbered group reference, `\1`..`\99` or
	// `\g<n>`/`\g<-n>` resolved to an absolute number by the caller
	// (ScanTemplateRef itself does not know the pattern's group count,
	// so a relative `\g<-n>` is reported with Relative set instead).
	TemplateRefNumber TemplateRefKind = iota
	// TemplateRefName is a named group reference, `\g<name>`.
	TemplateRefName
	// TemplateRefChar is a single escaped literal character, including
	// the `\N{U+XXXX}` code-point form.
	TemplateRefChar
)

// TemplateRef describes one `\...` reference scanned from a
// replacement template.
type TemplateRef struct {
	Kind TemplateRefKind

	Number   uint32 // valid when Kind == TemplateRefNumber
	Relative bool   // true when Number is relative (from `\g<-n>`)
	Name     string // valid when Kind == TemplateRefName
	Char     rune   // valid when Kind == TemplateRefChar
}

// ScanTemplateRef scans one `\...` reference starting at pos in s, where
// pos is a rune offset (not a byte offset), matching Scanner's own
// convention. It returns the parsed reference, its
// width in runes, and whether a reference was recognized at all; ok is
// false for anything that isn't a backslash escape, leaving width 0 so
// the caller can fall back to copying one literal rune.
func ScanTemplateRef(s string, pos int) (ref TemplateRef, width int, ok bool) {
	sc := NewScanner(s)
	sc.Restore(pos)

	if ch, got := sc.Get(); !got || ch != '\\' {
		return TemplateRef{}, 0, false
	}
	body, got := sc.Get()
	if !got {
		return TemplateRef{}, 0, false
	}

	switch {
	case body == 'g':
		ref, ok = scanTemplateBackref(sc)
	case body == 'N':
		ref, ok = scanTemplateNamedChar(sc)
	case isDigit(byte(body)):
		ref, ok = scanTemplateNumericBackref(sc, body)
	default:
		ref, ok = TemplateRef{Kind: TemplateRefChar, Char: body}, true
	}
	if !ok {
		return TemplateRef{}, 0, false
	}
	return ref, int(sc.Pos()) - pos, true
}

func scanTemplateBackref(sc *Scanner) (TemplateRef, bool) {
	closer := rune('>')
	switch {
	case sc.MatchRune('<'):
	case sc.MatchRune('{'):
		closer = '}'
	default:
		return TemplateRef{}, false
	}
	var body []rune
	for {
		ch, ok := sc.Get()
		if !ok {
			return TemplateRef{}, false
		}
		if ch == closer {
			break
		}
		body = append(body, ch)
	}
	text := string(body)
	if text == "" {
		return TemplateRef{}, false
	}
	if text[0] == '-' || text[0] == '+' {
		n, ok := parseUintLiteral(text[1:])
		if !ok {
			return TemplateRef{}, false
		}
		return TemplateRef{Kind: TemplateRefNumber, Number: n, Relative: true}, true
	}
	if isDigit(text[0]) {
		n, ok := parseUintLiteral(text)
		if !ok {
			return TemplateRef{}, false
		}
		return TemplateRef{Kind: TemplateRefNumber, Number: n}, true
	}
	return TemplateRef{Kind: TemplateRefName, Name: text}, true
}

func scanTemplateNamedChar(sc *Scanner) (TemplateRef, bool) {
	if !sc.MatchRune('{') {
		return TemplateRef{}, false
	}
	if !sc.Match("U+") {
		return TemplateRef{}, false
	}
	var v rune
	any := false
	for {
		ch, ok := sc.Peek()
		if !ok || !isHexDigit(byte(ch)) {
			break
		}
		sc.Get()
		v = v*16 + hexDigitValue(byte(ch))
		any = true
	}
	if !any || !sc.MatchRune('}') {
		return TemplateRef{}, false
	}
	return TemplateRef{Kind: TemplateRefChar, Char: v}, true
}

func scanTemplateNumericBackref(sc *Scanner, first rune) (TemplateRef, bool) {
	n := uint32(first - '0')
	for {
		ch, ok := sc.Peek()
		if !ok || !isDigit(byte(ch)) {
			break
		}
		sc.Get()
		n = n*10 + uint32(ch-'0')
	}
	return TemplateRef{Kind: TemplateRefNumber, Number: n}, true
}

func hexDigitValue(ch byte) rune {
	switch {
	case ch >= '0' && ch <= '9':
		return rune(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return rune(ch-'a') + 10
	default:
		return rune(ch-'A') + 10
	}
}
