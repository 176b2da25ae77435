package syntax

import "strings"

// Scanner is a code-point cursor over the pattern text with position
// save/restore and optional whitespace/comment skipping controlled by
// the VERBOSE flag (spec §3.2, §4.1). It plays the role the teacher's
// batch lexer.go token stream played, but incrementally: the parser
// drives it rune by rune instead of consuming a pre-built token array.
type Scanner struct {
	src              []rune
	pos              int
	ignoreWhitespace bool
	insideClass      bool
}

// NewScanner creates a scanner positioned at the start of pattern.
func NewScanner(pattern string) *Scanner {
	return &Scanner{src: []rune(pattern)}
}

// Len returns the number of code points in the pattern.
func (s *Scanner) Len() int { return len(s.src) }

// Eof reports whether the cursor (after skipping ignorables) is past
// the end of the pattern.
func (s *Scanner) Eof() bool {
	s.skipIgnorable()
	return s.pos >= len(s.src)
}

// Pos returns the current cursor offset.
func (s *Scanner) Pos() uint16 { return uint16(s.pos) }

// Save returns an opaque cursor snapshot for later Restore.
func (s *Scanner) Save() int { return s.pos }

// Restore rewinds the cursor to a snapshot returned by Save. Every
// speculative production that may fail must call this on rollback
// (spec §3.2 invariant).
func (s *Scanner) Restore(pos int) { s.pos = pos }

// SetIgnoreWhitespace toggles VERBOSE-mode skipping and returns the
// previous value, so callers can restore it on scope exit.
func (s *Scanner) SetIgnoreWhitespace(v bool) bool {
	prev := s.ignoreWhitespace
	s.ignoreWhitespace = v
	return prev
}

// SetInsideClass disables comment/whitespace skipping while parsing a
// `[...]` class, where '#' is a literal, not a comment start.
func (s *Scanner) SetInsideClass(v bool) bool {
	prev := s.insideClass
	s.insideClass = v
	return prev
}

func (s *Scanner) skipIgnorable() {
	if !s.ignoreWhitespace || s.insideClass {
		return
	}
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case isAsciiSpace(ch):
			s.pos++
		case ch == '#':
			s.pos++
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

// RawAt returns the rune at an absolute offset with no skipping, or
// the EOF sentinel (0, false) past the end. Used by escape/lookahead
// code that needs to peek without disturbing VERBOSE skipping.
func (s *Scanner) RawAt(pos int) (rune, bool) {
	if pos < 0 || pos >= len(s.src) {
		return 0, false
	}
	return s.src[pos], true
}

// Peek returns the next significant rune without consuming it. The
// bool is false at EOF (the "empty separator" sentinel of spec §3.2).
func (s *Scanner) Peek() (rune, bool) {
	s.skipIgnorable()
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

// PeekAt peeks n significant runes ahead of the cursor, 0 meaning the
// very next one. It does not skip ignorables past the first rune.
func (s *Scanner) PeekAt(n int) (rune, bool) {
	s.skipIgnorable()
	i := s.pos + n
	if i < 0 || i >= len(s.src) {
		return 0, false
	}
	return s.src[i], true
}

// Get advances one significant rune, skipping whitespace/comments when
// enabled, and returns it. At EOF it yields the sentinel and does not
// advance.
func (s *Scanner) Get() (rune, bool) {
	s.skipIgnorable()
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.pos]
	s.pos++
	return ch, true
}

// Match peeks whether the upcoming runes equal lit; on success it
// consumes them and returns true, otherwise the cursor is unchanged.
func (s *Scanner) Match(lit string) bool {
	save := s.Save()
	for _, want := range lit {
		got, ok := s.Get()
		if !ok || got != want {
			s.Restore(save)
			return false
		}
	}
	return true
}

// MatchRune is the single-rune form of Match.
func (s *Scanner) MatchRune(want rune) bool {
	save := s.Save()
	got, ok := s.Get()
	if !ok || got != want {
		s.Restore(save)
		return false
	}
	return true
}

// Expect consumes lit or raises a "missing X" ParseError.
func (s *Scanner) Expect(lit string) {
	if !s.Match(lit) {
		throwAt(s.Pos(), s.Pos()+1, "missing "+lit)
	}
}

// HasPrefix reports whether the upcoming raw (unskipped) text starts
// with lit, without consuming anything. Used for fixed lookahead like
// "?P<" that must not be affected by VERBOSE skipping.
func (s *Scanner) HasPrefix(lit string) bool {
	rest := string(s.src[s.pos:])
	return strings.HasPrefix(rest, lit)
}

func isAsciiSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
