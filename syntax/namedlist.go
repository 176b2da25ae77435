package syntax

import "sort"

// buildNamedListBranch expands a `\L<name>` reference into a Branch of
// String/StringIgn members (grounded on
// original_source/mrab-regex's `_make_sequence`/named-list handling).
// Members are sorted longest-first so the generated alternation tries
// a longer member before a shorter one that happens to be its prefix
// (otherwise the shorter member would always win and the longer one
// could never match, the classic `run|running` ordering bug).
func buildNamedListBranch(pos Position, members []string, scoped Flags) Node {
	sorted := make([]string, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	arms := make([]Node, 0, len(sorted))
	ignoreCase := scoped.Has(IGNORECASE)
	for _, m := range sorted {
		arms = append(arms, memberNode(pos, m, ignoreCase))
		if ignoreCase {
			for _, alt := range multiRuneFolds[m] {
				arms = append(arms, memberNode(pos, alt, ignoreCase))
			}
		}
	}
	if len(arms) == 1 {
		return arms[0]
	}
	return &Branch{P: pos, Arms: arms}
}

func memberNode(pos Position, text string, ignoreCase bool) Node {
	chars := []rune(text)
	if ignoreCase {
		return &StringIgn{P: pos, Chars: chars}
	}
	return &String{P: pos, Chars: chars}
}
