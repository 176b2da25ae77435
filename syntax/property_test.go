package syntax

import "testing"

func TestResolvePropertyExplicitNameValue(t *testing.T) {
	db := NewDefaultProperties()
	packed, positive, err := ResolveProperty(db, "GC", "Nd", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !positive {
		t.Fatal("expected positive=true")
	}
	if !db.Contains(packed.PropID(), packed.ValueID(), '5') {
		t.Fatal("expected GC=Nd to contain '5'")
	}
	if db.Contains(packed.PropID(), packed.ValueID(), 'a') {
		t.Fatal("expected GC=Nd to not contain 'a'")
	}
}

func TestResolvePropertyBinaryName(t *testing.T) {
	db := NewDefaultProperties()
	packed, positive, err := ResolveProperty(db, "", "ALPHA", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !positive {
		t.Fatal("expected positive=true for a direct binary-property match")
	}
	if !db.Contains(packed.PropID(), packed.ValueID(), 'x') {
		t.Fatal("expected ALPHA to contain 'x'")
	}
}

func TestResolvePropertyUnknown(t *testing.T) {
	db := NewDefaultProperties()
	_, _, err := ResolveProperty(db, "", "NOT_A_REAL_PROPERTY", true)
	if err == nil {
		t.Fatal("expected an error for an unresolvable property")
	}
	if err.Error() != ErrUnknownProperty {
		t.Fatalf("expected %q, got %q", ErrUnknownProperty, err.Error())
	}
}

func TestCanonicalizePropertyText(t *testing.T) {
	tests := map[string]string{
		"general_category": "GENERALCATEGORY",
		"is-alpha":          "ISALPHA",
		"L u":               "LU",
	}
	for in, want := range tests {
		if got := canonicalizePropertyText(in); got != want {
			t.Errorf("canonicalizePropertyText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalizeNumericValue(t *testing.T) {
	if got := canonicalizeNumericValue("0.5"); got != "1/2" {
		t.Errorf("canonicalizeNumericValue(\"0.5\") = %q, want \"1/2\"", got)
	}
	if got := canonicalizeNumericValue("3"); got != "3" {
		t.Errorf("canonicalizeNumericValue(\"3\") = %q, want \"3\" (unchanged)", got)
	}
}
