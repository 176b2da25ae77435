package rxcompile

import "github.com/loxia-dev/rxcompile/syntax"

// Op identifies one opcode in the emitted instruction stream; see
// syntax.Op for the authoritative catalogue and ordering (spec §6.2).
type Op = syntax.Op

const (
	FAILURE              = syntax.FAILURE
	SUCCESS              = syntax.SUCCESS
	ANY                  = syntax.ANY
	ANY_ALL              = syntax.ANY_ALL
	ANY_ALL_REV          = syntax.ANY_ALL_REV
	ANY_REV              = syntax.ANY_REV
	ANY_U                = syntax.ANY_U
	ANY_U_REV            = syntax.ANY_U_REV
	ATOMIC               = syntax.ATOMIC
	BIG_BITSET           = syntax.BIG_BITSET
	BIG_BITSET_REV       = syntax.BIG_BITSET_REV
	BOUNDARY             = syntax.BOUNDARY
	BRANCH               = syntax.BRANCH
	CHARACTER            = syntax.CHARACTER
	CHARACTER_IGN        = syntax.CHARACTER_IGN
	CHARACTER_IGN_REV    = syntax.CHARACTER_IGN_REV
	CHARACTER_REV        = syntax.CHARACTER_REV
	DEFAULT_BOUNDARY     = syntax.DEFAULT_BOUNDARY
	END                  = syntax.END
	END_GREEDY_REPEAT    = syntax.END_GREEDY_REPEAT
	END_GROUP            = syntax.END_GROUP
	END_LAZY_REPEAT      = syntax.END_LAZY_REPEAT
	END_OF_LINE          = syntax.END_OF_LINE
	END_OF_LINE_U        = syntax.END_OF_LINE_U
	END_OF_STRING        = syntax.END_OF_STRING
	END_OF_STRING_LINE   = syntax.END_OF_STRING_LINE
	END_OF_STRING_LINE_U = syntax.END_OF_STRING_LINE_U
	GRAPHEME_BOUNDARY    = syntax.GRAPHEME_BOUNDARY
	GREEDY_REPEAT        = syntax.GREEDY_REPEAT
	GREEDY_REPEAT_ONE    = syntax.GREEDY_REPEAT_ONE
	GROUP                = syntax.GROUP
	GROUP_EXISTS         = syntax.GROUP_EXISTS
	LAZY_REPEAT          = syntax.LAZY_REPEAT
	LAZY_REPEAT_ONE      = syntax.LAZY_REPEAT_ONE
	LOOKAROUND           = syntax.LOOKAROUND
	NEXT                 = syntax.NEXT
	PROPERTY             = syntax.PROPERTY
	PROPERTY_REV         = syntax.PROPERTY_REV
	REF_GROUP            = syntax.REF_GROUP
	REF_GROUP_IGN        = syntax.REF_GROUP_IGN
	REF_GROUP_IGN_REV    = syntax.REF_GROUP_IGN_REV
	REF_GROUP_REV        = syntax.REF_GROUP_REV
	SEARCH_ANCHOR        = syntax.SEARCH_ANCHOR
	SET_DIFF             = syntax.SET_DIFF
	SET_DIFF_REV         = syntax.SET_DIFF_REV
	SET_INTER            = syntax.SET_INTER
	SET_INTER_REV        = syntax.SET_INTER_REV
	SET_SYM_DIFF         = syntax.SET_SYM_DIFF
	SET_SYM_DIFF_REV     = syntax.SET_SYM_DIFF_REV
	SET_UNION            = syntax.SET_UNION
	SET_UNION_REV        = syntax.SET_UNION_REV
	SMALL_BITSET         = syntax.SMALL_BITSET
	SMALL_BITSET_REV     = syntax.SMALL_BITSET_REV
	START_GROUP          = syntax.START_GROUP
	START_OF_LINE        = syntax.START_OF_LINE
	START_OF_LINE_U      = syntax.START_OF_LINE_U
	START_OF_STRING      = syntax.START_OF_STRING
	STRING               = syntax.STRING
	STRING_IGN           = syntax.STRING_IGN
	STRING_IGN_REV       = syntax.STRING_IGN_REV
	STRING_REV           = syntax.STRING_REV
)

// CodeBits, Unlimited and the bitset packing ratios are re-exported
// from syntax; see there for the authoritative definitions.
const (
	CodeBits        = syntax.CodeBits
	Unlimited       = syntax.Unlimited
	IndexesPerCode  = syntax.IndexesPerCode
	CodesPerSubset  = syntax.CodesPerSubset
)
