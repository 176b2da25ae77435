package syntax

import "unicode"

// CaseFolder is the external case-folding database collaborator (spec
// §1): "queries all equivalent code points for c under the active
// flags". Equivalents returned for c never include c itself.
type CaseFolder interface {
	Equivalents(c rune, flags uint32) []rune
}

// DefaultCaseFolder is backed by unicode.SimpleFold, walking the fold
// orbit the standard library already tracks. It additionally special
// cases the handful of multi-rune folds (like German ß/ss) that
// SimpleFold, being single-rune, cannot express; those are consulted
// by named-list compilation (spec §4.2.5) rather than by single
// character folding.
type DefaultCaseFolder struct{}

func (DefaultCaseFolder) Equivalents(c rune, flags uint32) []rune {
	var out []rune
	for f := unicode.SimpleFold(c); f != c; f = unicode.SimpleFold(f) {
		out = append(out, f)
	}
	return out
}

// IsCaseStable reports whether c folds to itself only, i.e. upper ==
// lower under the default folder (used by the CharacterIgn-collapse
// optimisation, spec §4.4).
func IsCaseStable(cf CaseFolder, c rune) bool {
	return len(cf.Equivalents(c, 0)) == 0
}

// multiRuneFolds holds the handful of case-fold equivalences that span
// more than one code point, consulted by named-list compilation under
// IGNORECASE (spec §4.2.5, e.g. "ß" <-> "ss").
var multiRuneFolds = map[string][]string{
	"ß": {"ss", "SS", "Ss"},
	"ss": {"ß"},
	"ﬁ": {"fi"},
	"ﬂ": {"fl"},
}
