package syntax

import "strings"

// FuzzyClause is the opaque payload of a `{e<=n}`-shaped fuzzy-match
// clause (SPEC_FULL §4.2.6, supplemented from
// original_source/mrab-regex's _parse_fuzzy): the front end validates
// only its lexical shape and carries the raw text through unchanged —
// the matching VM interprets the edit-distance semantics.
type FuzzyClause struct {
	Raw string
}

// isFuzzyRune reports whether r can legally appear inside a fuzzy
// clause body: the one-letter cost tags (i/d/s/e/m), digits, and the
// comparison/arithmetic punctuation that composes them
// (`i+d+s<=n`, `e<=n`, `m<e<=n`, ...).
func isFuzzyRune(r rune) bool {
	switch r {
	case 'i', 'd', 's', 'e', 'm', '<', '=', '+', ',':
		return true
	}
	return r >= '0' && r <= '9'
}

// tryParseFuzzyBody consumes up to the matching '}' assuming the
// opening '{' was already consumed by the caller. It fails (leaving
// the scanner position to the caller to restore) the moment a rune
// outside the fuzzy-clause alphabet appears, so a normal `{3,5}`-style
// repeat can never be mistaken for one.
func tryParseFuzzyBody(s *Scanner) (*FuzzyClause, bool) {
	var b strings.Builder
	for {
		ch, ok := s.Get()
		if !ok {
			return nil, false
		}
		if ch == '}' {
			break
		}
		if !isFuzzyRune(ch) {
			return nil, false
		}
		b.WriteRune(ch)
	}
	raw := b.String()
	if raw == "" || !looksLikeFuzzyClause(raw) {
		return nil, false
	}
	return &FuzzyClause{Raw: raw}, true
}

// looksLikeFuzzyClause requires at least one cost-tag letter, ruling
// out a stray `{<=5}` or similar nonsense slipping through.
func looksLikeFuzzyClause(raw string) bool {
	return strings.ContainsAny(raw, "ides")
}
