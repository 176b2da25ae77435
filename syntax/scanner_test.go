package syntax

import "testing"

func TestScannerGetPeek(t *testing.T) {
	s := NewScanner("ab✓")
	if ch, ok := s.Peek(); !ok || ch != 'a' {
		t.Fatalf("Peek: got %q, %v", ch, ok)
	}
	if ch, ok := s.Get(); !ok || ch != 'a' {
		t.Fatalf("Get: got %q, %v", ch, ok)
	}
	if ch, ok := s.Get(); !ok || ch != 'b' {
		t.Fatalf("Get: got %q, %v", ch, ok)
	}
	if ch, ok := s.Get(); !ok || ch != '✓' {
		t.Fatalf("Get: got %q, %v", ch, ok)
	}
	if _, ok := s.Get(); ok {
		t.Fatalf("Get past EOF should report ok=false")
	}
}

func TestScannerSaveRestore(t *testing.T) {
	s := NewScanner("abc")
	s.Get()
	save := s.Save()
	s.Get()
	s.Get()
	s.Restore(save)
	if ch, ok := s.Get(); !ok || ch != 'b' {
		t.Fatalf("Restore did not rewind: got %q, %v", ch, ok)
	}
}

func TestScannerMatch(t *testing.T) {
	s := NewScanner("foobar")
	if !s.Match("foo") {
		t.Fatal("Match(\"foo\") should succeed")
	}
	if s.Match("xyz") {
		t.Fatal("Match(\"xyz\") should fail and not consume")
	}
	if !s.Match("bar") {
		t.Fatal("Match(\"bar\") should succeed after failed Match left the cursor unchanged")
	}
	if !s.Eof() {
		t.Fatal("expected EOF after consuming the whole pattern")
	}
}

func TestScannerVerboseSkipping(t *testing.T) {
	s := NewScanner("a  # comment\nb")
	s.SetIgnoreWhitespace(true)
	if ch, ok := s.Get(); !ok || ch != 'a' {
		t.Fatalf("Get: got %q, %v", ch, ok)
	}
	if ch, ok := s.Get(); !ok || ch != 'b' {
		t.Fatalf("expected whitespace/comment skipped, got %q, %v", ch, ok)
	}
}

func TestScannerInsideClassDisablesSkipping(t *testing.T) {
	s := NewScanner("a #b")
	s.SetIgnoreWhitespace(true)
	s.SetInsideClass(true)
	want := []rune("a #b")
	for _, w := range want {
		ch, ok := s.Get()
		if !ok || ch != w {
			t.Fatalf("inside class: got %q, %v, want %q", ch, ok, w)
		}
	}
}

func TestScannerHasPrefix(t *testing.T) {
	s := NewScanner("?P<name>")
	if !s.HasPrefix("?P<") {
		t.Fatal("HasPrefix should match without consuming")
	}
	if ch, ok := s.Peek(); !ok || ch != '?' {
		t.Fatalf("HasPrefix must not consume: got %q, %v", ch, ok)
	}
}
