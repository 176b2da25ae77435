package rxcompile

import "github.com/loxia-dev/rxcompile/syntax"

// Flags is the compiler's flag bitset; see syntax.Flags for the
// authoritative partitioning into global/scoped/policy bits (spec
// §3.1/§4.1).
type Flags = syntax.Flags

const (
	ASCII   = syntax.ASCII
	DEBUG   = syntax.DEBUG
	LOCALE  = syntax.LOCALE
	NEW     = syntax.NEW
	REVERSE = syntax.REVERSE
	UNICODE = syntax.UNICODE

	IGNORECASE = syntax.IGNORECASE
	MULTILINE  = syntax.MULTILINE
	DOTALL     = syntax.DOTALL
	WORD       = syntax.WORD
	VERBOSE    = syntax.VERBOSE

	TEMPLATE           = syntax.TEMPLATE
	FuzzyBestMatch     = syntax.FuzzyBestMatch
	FuzzyEnhancedMatch = syntax.FuzzyEnhancedMatch
)

// GlobalFlags, ScopedFlags and PolicyFlags are the bit masks for each
// flag partition; see syntax for the authoritative definitions.
const (
	GlobalFlags = syntax.GlobalFlags
	ScopedFlags = syntax.ScopedFlags
	PolicyFlags = syntax.PolicyFlags
)

// LookupFlagLetter resolves one character of an inline flag run to its
// bit, reporting ok=false for unrecognised letters.
func LookupFlagLetter(ch byte) (Flags, bool) { return syntax.LookupFlagLetter(ch) }
