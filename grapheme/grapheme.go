// Package grapheme wraps github.com/rivo/uniseg's extended-grapheme-
// cluster segmentation for the Grapheme AST node (`\X`, spec §4.2.2)
// and the GRAPHEME_BOUNDARY opcode its compiled form emits. The front
// end itself never walks a subject string — that's the matching VM's
// job — but it needs this package's contract so that VM knows exactly
// what "boundary" means at the opcode it emits.
package grapheme

import "github.com/rivo/uniseg"

// Boundaries returns every extended-grapheme-cluster boundary in s as
// a rune offset, always including 0 and the final offset (len of s in
// runes). The VM's GRAPHEME_BOUNDARY opcode tests cursor positions
// against this same notion of boundary; Boundaries is the reference
// definition a VM implementation validates against.
func Boundaries(s string) []int {
	bounds := make([]int, 0, len(s)/2+1)
	bounds = append(bounds, 0)

	pos := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len([]rune(cluster))
		bounds = append(bounds, pos)
		rest = next
		state = newState
	}
	return bounds
}

// IsBoundary reports whether pos, a rune offset into s, falls exactly
// on an extended-grapheme-cluster edge. Both 0 and len([]rune(s)) are
// boundaries.
func IsBoundary(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	runePos := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		if runePos == pos {
			return true
		}
		if runePos > pos {
			return false
		}
		cluster, next, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		runePos += len([]rune(cluster))
		rest = next
		state = newState
	}
	return runePos == pos
}

// ClusterLen returns the rune length of the first extended grapheme
// cluster at the start of s, or 0 if s is empty.
func ClusterLen(s string) int {
	if s == "" {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return len([]rune(cluster))
}
