package rxcompile

import (
	"fmt"

	"github.com/loxia-dev/rxcompile/syntax"
)

// Error is the single error type the compiler reports. Its Msg field is
// part of the public contract (spec §6.1): the exact strings below are
// tested by callers.
type Error struct {
	Pattern string
	Begin   int
	End     int
	Msg     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("regex compile error at %d:%d: %s", e.Begin, e.End, e.Msg)
}

// The error messages from spec §6.1, re-exported from syntax (which
// defines them since it's the package that actually raises them).
const (
	ErrNothingToRepeat           = syntax.ErrNothingToRepeat
	ErrMinGreaterThanMax         = syntax.ErrMinGreaterThanMax
	ErrRepeatTooBig              = syntax.ErrRepeatTooBig
	ErrMissingRparen             = syntax.ErrMissingRparen
	ErrMissingGT                 = syntax.ErrMissingGT
	ErrMissingLT                 = syntax.ErrMissingLT
	ErrMissingClosing            = syntax.ErrMissingClosing
	ErrBadGroupName              = syntax.ErrBadGroupName
	ErrUnknownGroup              = syntax.ErrUnknownGroup
	ErrDuplicateGroup            = syntax.ErrDuplicateGroup
	ErrOpenGroupBackref          = syntax.ErrOpenGroupBackref
	ErrBadEscape                 = syntax.ErrBadEscape
	ErrBadHexEscape              = syntax.ErrBadHexEscape
	ErrBadOctalEscape            = syntax.ErrBadOctalEscape
	ErrBadSet                    = syntax.ErrBadSet
	ErrBadCharacterRange         = syntax.ErrBadCharacterRange
	ErrUndefinedCharacterName    = syntax.ErrUndefinedCharacterName
	ErrUnknownProperty           = syntax.ErrUnknownProperty
	ErrUnknownPropertyValue      = syntax.ErrUnknownPropertyValue
	ErrUnknownExtension          = syntax.ErrUnknownExtension
	ErrBadInlineFlags            = syntax.ErrBadInlineFlags
	ErrBadInlineFlagsCantTurnOff = syntax.ErrBadInlineFlagsCantTurnOff
	ErrTrailingCharacters        = syntax.ErrTrailingCharacters
)
