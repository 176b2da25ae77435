package syntax

import "fmt"

// ParseError is raised by panic from deep inside parsing and recovered
// at Parser.Parse, mirroring quasilyte-regex/syntax/parser.go's
// defer/recover shape around the same type name.
type ParseError struct {
	Pos Position
	Msg string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Begin, e.Pos.End, e.Msg)
}

// UnscopedFlagSet is the internal restart signal from spec §4.2.1: a
// positional global-affecting flag under old (non-NEW) behaviour asks
// the top-level driver to merge Added into the global flags and
// re-parse the pattern from scratch. It is caught only by the public
// Compile entry point and never escapes the package boundary.
type UnscopedFlagSet struct {
	Added uint32
}

func (e UnscopedFlagSet) Error() string { return "unscoped flag set, restart required" }

func throwf(pos Position, format string, args ...interface{}) {
	panic(ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

func throwAt(begin, end uint16, msg string) {
	panic(ParseError{Pos: Position{Begin: begin, End: end}, Msg: msg})
}

func throwMsg(pos Position, msg string) {
	panic(ParseError{Pos: pos, Msg: msg})
}

// The error messages from spec §6.1. These live here, not in the root
// package, because the parser that raises them lives here too; the
// root package re-exports them the same way it re-exports Op (see
// opcode.go) so callers outside this package still see them on
// rxcompile.Err*.
const (
	ErrNothingToRepeat           = "nothing to repeat"
	ErrMinGreaterThanMax         = "min repeat greater than max repeat"
	ErrRepeatTooBig              = "repeat count too big"
	ErrMissingRparen             = "missing )"
	ErrMissingGT                 = "missing >"
	ErrMissingLT                 = "missing <"
	ErrMissingClosing            = "missing <closing>"
	ErrBadGroupName              = "bad group name"
	ErrUnknownGroup              = "unknown group"
	ErrDuplicateGroup            = "duplicate group"
	ErrOpenGroupBackref          = "can't refer to an open group"
	ErrBadEscape                 = "bad escape"
	ErrBadHexEscape              = "bad hex escape"
	ErrBadOctalEscape            = "bad octal escape"
	ErrBadSet                    = "bad set"
	ErrBadCharacterRange         = "bad character range"
	ErrUndefinedCharacterName    = "undefined character name"
	ErrUnknownProperty           = "unknown property"
	ErrUnknownPropertyValue      = "unknown property value"
	ErrUnknownExtension          = "unknown extension"
	ErrBadInlineFlags            = "bad inline flags"
	ErrBadInlineFlagsCantTurnOff = "bad inline flags: can't turn flags off"
	ErrTrailingCharacters        = "trailing characters in pattern"
)
