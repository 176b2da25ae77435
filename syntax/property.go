package syntax

import "strings"

// PropertyResolver is the external Unicode property database collaborator
// (spec §1, §6.4): "queried by name→(property-id, value-id)". The
// compiler never loads or validates the database itself, only resolves
// names against it.
type PropertyResolver interface {
	// PropertyID resolves a canonical top-level property name (GC,
	// SCRIPT, BLOCK, or a binary property such as ALPHABETIC) to its id.
	PropertyID(name string) (id uint16, ok bool)
	// ValueID resolves a canonical value name under propID to its id.
	ValueID(propID uint16, value string) (id uint16, ok bool)
	// Contains reports whether code point c belongs to (propID, valueID).
	Contains(propID, valueID uint16, c rune) bool
}

// Canonical top-level property ids, fixed across resolver
// implementations so packed ids are stable within one build.
const (
	PropGC uint16 = iota + 1
	PropScript
	PropBlock
	propUserBase // user-registered binary properties start here
)

// PackedProperty is the (prop_id<<16)|value_id encoding from spec §4.3.
type PackedProperty uint32

func PackProperty(propID, valueID uint16) PackedProperty {
	return PackedProperty(uint32(propID)<<16 | uint32(valueID))
}

func (p PackedProperty) PropID() uint16  { return uint16(p >> 16) }
func (p PackedProperty) ValueID() uint16 { return uint16(p) }

// canonicalizePropertyText strips separators and uppercases, per §4.3:
// "strip `_ -  .`, uppercase".
func canonicalizePropertyText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '_', '-', ' ', '.':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// canonicalizeNumericValue normalises a numeric property value into a
// rational form, e.g. "0.5" -> "1/2" (§4.3).
func canonicalizeNumericValue(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || frac == "" {
		return s
	}
	num := whole + frac
	den := uint64(1)
	for range frac {
		den *= 10
	}
	n := parseUintSafe(num)
	if n == 0 {
		return s
	}
	g := gcdUint64(n, den)
	return itoa64(n/g) + "/" + itoa64(den/g)
}

func parseUintSafe(s string) uint64 {
	var n uint64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + uint64(r-'0')
	}
	return n
}

func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func itoa64(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// ResolveProperty implements the §4.3 resolution algorithm: when a
// property name is given, resolve name/value directly; when absent,
// try value-of-GC, value-of-SCRIPT, value-of-BLOCK (in that order),
// then property-name-as-binary-property (inverting polarity), then the
// IS/IN prefix routes to SCRIPT/BLOCK.
func ResolveProperty(db PropertyResolver, name, value string, positive bool) (PackedProperty, bool, error) {
	cValue := canonicalizeNumericValue(canonicalizePropertyText(value))

	if name != "" {
		cName := canonicalizePropertyText(name)
		propID, ok := db.PropertyID(cName)
		if !ok {
			return 0, false, parseErrorf(ErrUnknownProperty)
		}
		valID, ok := db.ValueID(propID, cValue)
		if !ok {
			return 0, false, parseErrorf(ErrUnknownPropertyValue)
		}
		return PackProperty(propID, valID), positive, nil
	}

	// Step 1: try as a value of GC, SCRIPT, BLOCK in that order.
	for _, propID := range []uint16{PropGC, PropScript, PropBlock} {
		if valID, ok := db.ValueID(propID, cValue); ok {
			return PackProperty(propID, valID), positive, nil
		}
	}

	// Step 2: try as a binary property name; matching any value of it
	// inverts polarity (consistent with "match any value of this
	// binary property").
	if propID, ok := db.PropertyID(cValue); ok {
		return PackProperty(propID, 0), !positive, nil
	}

	// Step 3: IS/IN prefix routes to SCRIPT/BLOCK.
	if strings.HasPrefix(cValue, "IS") {
		if valID, ok := db.ValueID(PropScript, cValue[2:]); ok {
			return PackProperty(PropScript, valID), positive, nil
		}
	}
	if strings.HasPrefix(cValue, "IN") {
		if valID, ok := db.ValueID(PropBlock, cValue[2:]); ok {
			return PackProperty(PropBlock, valID), positive, nil
		}
	}

	return 0, false, parseErrorf(ErrUnknownProperty)
}

type simpleError string

func (e simpleError) Error() string { return string(e) }

func parseErrorf(msg string) error { return simpleError(msg) }
