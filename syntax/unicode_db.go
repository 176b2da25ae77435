package syntax

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// DefaultProperties is a PropertyResolver backed by the standard
// library's unicode tables plus golang.org/x/text's rangetable helper
// for merging binary-property tables. It is the default collaborator
// used when a caller does not supply its own property database (spec
// §1: the database itself is out of scope, but a usable default keeps
// the front end self-contained for tests and the CLI).
type DefaultProperties struct {
	binary map[string]*unicode.RangeTable
}

// NewDefaultProperties builds the default resolver. Binary properties
// are merged up front, when the resolver is built, from
// unicode.Categories via rangetable.Merge, e.g. ALPHA from L* categories.
func NewDefaultProperties() *DefaultProperties {
	d := &DefaultProperties{binary: make(map[string]*unicode.RangeTable)}
	d.binary["ALPHA"] = rangetable.Merge(
		unicode.Categories["L"], unicode.Categories["Nl"],
	)
	d.binary["ALPHANUMERIC"] = rangetable.Merge(
		unicode.Categories["L"], unicode.Categories["Nl"], unicode.Categories["Nd"],
	)
	d.binary["WHITESPACE"] = unicode.White_Space
	d.binary["UPPERCASE"] = unicode.Categories["Lu"]
	d.binary["LOWERCASE"] = unicode.Categories["Ll"]
	d.binary["ANY"] = rangetable.Merge(unicode.Categories["C"], unicode.Categories["L"],
		unicode.Categories["M"], unicode.Categories["N"], unicode.Categories["P"],
		unicode.Categories["S"], unicode.Categories["Z"])
	return d
}

func (d *DefaultProperties) PropertyID(name string) (uint16, bool) {
	switch name {
	case "GC", "GENERALCATEGORY":
		return PropGC, true
	case "SCRIPT", "SC":
		return PropScript, true
	case "BLOCK", "BLK":
		return PropBlock, true
	}
	if _, ok := d.binary[name]; ok {
		return propUserBase + binaryPropHash(name), true
	}
	return 0, false
}

// binaryPropHash assigns a stable small id to a binary property name by
// its rank in a fixed, sorted table, so the packed id is deterministic
// across runs with the same property set (spec §8 Determinism).
func binaryPropHash(name string) uint16 {
	names := []string{"ALPHA", "ALPHANUMERIC", "ANY", "LOWERCASE", "UPPERCASE", "WHITESPACE"}
	for i, n := range names {
		if n == name {
			return uint16(i)
		}
	}
	return 0xFFFF
}

func (d *DefaultProperties) ValueID(propID uint16, value string) (uint16, bool) {
	switch propID {
	case PropGC:
		if id, ok := gcValueIDs[value]; ok {
			return id, true
		}
	case PropScript:
		if id, ok := scriptValueIDs[value]; ok {
			return id, true
		}
	case PropBlock:
		// Blocks are not validated by the standard library; treat any
		// name that exists in unicode.Scripts-like tables as unknown
		// here (blocks are a distinct, larger table the default
		// resolver does not ship). Real deployments plug in their own
		// PropertyResolver for BLOCK support.
		return 0, false
	default:
		if propID >= propUserBase {
			// Binary properties have exactly one value: presence (0)
			// or its complement, handled by the caller's polarity bit.
			if value == "" || value == "Y" || value == "YES" || value == "TRUE" {
				return 0, true
			}
		}
	}
	return 0, false
}

func (d *DefaultProperties) Contains(propID, valueID uint16, c rune) bool {
	switch propID {
	case PropGC:
		if rt, ok := gcValueTables[valueID]; ok {
			return unicode.Is(rt, c)
		}
	case PropScript:
		if rt, ok := scriptValueTables[valueID]; ok {
			return unicode.Is(rt, c)
		}
	default:
		if propID >= propUserBase {
			for name, rt := range d.binary {
				if propUserBase+binaryPropHash(name) == propID {
					return unicode.Is(rt, c)
				}
			}
		}
	}
	return false
}

// gcValueIDs maps canonicalised (uppercased, separator-stripped)
// general-category names to a stable small id.
var gcValueIDs = buildGCValueIDs()
var gcValueTables = buildGCValueTables()

func buildGCValueIDs() map[string]uint16 {
	m := make(map[string]uint16)
	i := uint16(0)
	for name := range unicode.Categories {
		m[strings.ToUpper(name)] = i
		i++
	}
	return m
}

func buildGCValueTables() map[uint16]*unicode.RangeTable {
	m := make(map[uint16]*unicode.RangeTable)
	for name, id := range gcValueIDs {
		for orig, rt := range unicode.Categories {
			if strings.ToUpper(orig) == name {
				m[id] = rt
			}
		}
	}
	return m
}

var scriptValueIDs = buildScriptValueIDs()
var scriptValueTables = buildScriptValueTables()

func buildScriptValueIDs() map[string]uint16 {
	m := make(map[string]uint16)
	i := uint16(0)
	for name := range unicode.Scripts {
		m[strings.ToUpper(name)] = i
		i++
	}
	return m
}

func buildScriptValueTables() map[uint16]*unicode.RangeTable {
	m := make(map[uint16]*unicode.RangeTable)
	for name, id := range scriptValueIDs {
		for orig, rt := range unicode.Scripts {
			if strings.ToUpper(orig) == name {
				m[id] = rt
			}
		}
	}
	return m
}
