package syntax

// Op identifies one opcode in the emitted instruction stream. The
// numeric order below is part of the compiled-program contract (spec
// §6.2): a build that reorders this list is incompatible with any VM
// built against a previous order.
type Op uint8

const (
	FAILURE Op = iota
	SUCCESS
	ANY
	ANY_ALL
	ANY_ALL_REV
	ANY_REV
	ANY_U
	ANY_U_REV
	ATOMIC
	BIG_BITSET
	BIG_BITSET_REV
	BOUNDARY
	BRANCH
	CHARACTER
	CHARACTER_IGN
	CHARACTER_IGN_REV
	CHARACTER_REV
	DEFAULT_BOUNDARY
	END
	END_GREEDY_REPEAT
	END_GROUP
	END_LAZY_REPEAT
	END_OF_LINE
	END_OF_LINE_U
	END_OF_STRING
	END_OF_STRING_LINE
	END_OF_STRING_LINE_U
	GRAPHEME_BOUNDARY
	GREEDY_REPEAT
	GREEDY_REPEAT_ONE
	GROUP
	GROUP_EXISTS
	LAZY_REPEAT
	LAZY_REPEAT_ONE
	LOOKAROUND
	NEXT
	PROPERTY
	PROPERTY_REV
	REF_GROUP
	REF_GROUP_IGN
	REF_GROUP_IGN_REV
	REF_GROUP_REV
	SEARCH_ANCHOR
	SET_DIFF
	SET_DIFF_REV
	SET_INTER
	SET_INTER_REV
	SET_SYM_DIFF
	SET_SYM_DIFF_REV
	SET_UNION
	SET_UNION_REV
	SMALL_BITSET
	SMALL_BITSET_REV
	START_GROUP
	START_OF_LINE
	START_OF_LINE_U
	START_OF_STRING
	STRING
	STRING_IGN
	STRING_IGN_REV
	STRING_REV
)

//go:generate stringer -type=Op -trimprefix=

var opNames = [...]string{
	FAILURE: "FAILURE", SUCCESS: "SUCCESS", ANY: "ANY", ANY_ALL: "ANY_ALL",
	ANY_ALL_REV: "ANY_ALL_REV", ANY_REV: "ANY_REV", ANY_U: "ANY_U",
	ANY_U_REV: "ANY_U_REV", ATOMIC: "ATOMIC", BIG_BITSET: "BIG_BITSET",
	BIG_BITSET_REV: "BIG_BITSET_REV", BOUNDARY: "BOUNDARY", BRANCH: "BRANCH",
	CHARACTER: "CHARACTER", CHARACTER_IGN: "CHARACTER_IGN",
	CHARACTER_IGN_REV: "CHARACTER_IGN_REV", CHARACTER_REV: "CHARACTER_REV",
	DEFAULT_BOUNDARY: "DEFAULT_BOUNDARY", END: "END",
	END_GREEDY_REPEAT: "END_GREEDY_REPEAT", END_GROUP: "END_GROUP",
	END_LAZY_REPEAT: "END_LAZY_REPEAT", END_OF_LINE: "END_OF_LINE",
	END_OF_LINE_U: "END_OF_LINE_U", END_OF_STRING: "END_OF_STRING",
	END_OF_STRING_LINE: "END_OF_STRING_LINE", END_OF_STRING_LINE_U: "END_OF_STRING_LINE_U",
	GRAPHEME_BOUNDARY: "GRAPHEME_BOUNDARY", GREEDY_REPEAT: "GREEDY_REPEAT",
	GREEDY_REPEAT_ONE: "GREEDY_REPEAT_ONE", GROUP: "GROUP",
	GROUP_EXISTS: "GROUP_EXISTS", LAZY_REPEAT: "LAZY_REPEAT",
	LAZY_REPEAT_ONE: "LAZY_REPEAT_ONE", LOOKAROUND: "LOOKAROUND", NEXT: "NEXT",
	PROPERTY: "PROPERTY", PROPERTY_REV: "PROPERTY_REV", REF_GROUP: "REF_GROUP",
	REF_GROUP_IGN: "REF_GROUP_IGN", REF_GROUP_IGN_REV: "REF_GROUP_IGN_REV",
	REF_GROUP_REV: "REF_GROUP_REV", SEARCH_ANCHOR: "SEARCH_ANCHOR",
	SET_DIFF: "SET_DIFF", SET_DIFF_REV: "SET_DIFF_REV", SET_INTER: "SET_INTER",
	SET_INTER_REV: "SET_INTER_REV", SET_SYM_DIFF: "SET_SYM_DIFF",
	SET_SYM_DIFF_REV: "SET_SYM_DIFF_REV", SET_UNION: "SET_UNION",
	SET_UNION_REV: "SET_UNION_REV", SMALL_BITSET: "SMALL_BITSET",
	SMALL_BITSET_REV: "SMALL_BITSET_REV", START_GROUP: "START_GROUP",
	START_OF_LINE: "START_OF_LINE", START_OF_LINE_U: "START_OF_LINE_U",
	START_OF_STRING: "START_OF_STRING", STRING: "STRING",
	STRING_IGN: "STRING_IGN", STRING_IGN_REV: "STRING_IGN_REV",
	STRING_REV: "STRING_REV",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "Op(?)"
}

// CodeBits is the width, in bits, of one emitted code word. It bounds
// UNLIMITED and the bitset packing ratios in §4.7.
const CodeBits = 32

// Unlimited is the sentinel repeat count meaning "unbounded".
const Unlimited = (uint64(1) << CodeBits) - 1

// IndexesPerCode is how many 16-bit bitset-pool indexes are packed into
// one code word when building a BIG_BITSET index table.
const IndexesPerCode = CodeBits / 16

// CodesPerSubset is how many code words hold one 256-bit subset bitmap.
const CodesPerSubset = 256 / CodeBits
