package syntax

// Flags is the compiler's flag bitset, partitioned into global flags
// (fixed for the whole pattern, consumed by the VM), scoped flags
// (affect code generation and may toggle mid-pattern) and policy flags
// (orthogonal to both) — spec §3.1/§4.1. It lives here, not in the root
// package, because Context.GlobalFlags/ScopedFlags and the parser that
// sets them live here; the root package re-exports it the same way it
// re-exports Op (see opcode.go).
type Flags uint32

// Global flags: affect VM behaviour, not code generation.
const (
	ASCII Flags = 1 << iota
	DEBUG
	LOCALE
	NEW
	REVERSE
	UNICODE
)

// Scoped flags: affect code generation and may change mid-pattern.
const (
	IGNORECASE Flags = 1 << (iota + 16)
	MULTILINE
	DOTALL
	WORD
	VERBOSE
)

// Policy flags: orthogonal, parsed inline or passed in.
const (
	TEMPLATE Flags = 1 << (iota + 24)
	FuzzyBestMatch
	FuzzyEnhancedMatch
)

// GlobalFlags is the mask of all global flag bits.
const GlobalFlags = ASCII | DEBUG | LOCALE | NEW | REVERSE | UNICODE

// ScopedFlags is the mask of all scoped flag bits.
const ScopedFlags = IGNORECASE | MULTILINE | DOTALL | WORD | VERBOSE

// PolicyFlags is the mask of all policy flag bits.
const PolicyFlags = TEMPLATE | FuzzyBestMatch | FuzzyEnhancedMatch

// Has reports whether all bits in mask are set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Global returns the subset of f that affects VM behaviour.
func (f Flags) Global() Flags { return f & GlobalFlags }

// Scoped returns the subset of f that affects code generation.
func (f Flags) Scoped() Flags { return f & ScopedFlags }

// flagLetters maps the one-letter inline-flag alphabet (spec §6.3) to
// its bit. "V0"/"V1" are handled separately by the parser since they
// are two letters and alias NEW off/on.
var flagLetters = map[byte]Flags{
	'a': ASCII,
	'i': IGNORECASE,
	'L': LOCALE,
	'm': MULTILINE,
	'n': NEW,
	'r': REVERSE,
	's': DOTALL,
	'u': UNICODE,
	'w': WORD,
	'x': VERBOSE,
	'b': FuzzyBestMatch,
	'e': FuzzyEnhancedMatch,
}

// LookupFlagLetter resolves one character of an inline flag run to its
// bit, reporting ok=false for unrecognised letters.
func LookupFlagLetter(ch byte) (Flags, bool) {
	f, ok := flagLetters[ch]
	return f, ok
}
