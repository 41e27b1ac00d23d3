package alphabet

import "testing"

func TestSymbolsAreDistinct(t *testing.T) {
	if Size != 37 {
		t.Fatalf("expected 37 symbols, got %d", Size)
	}
	seen := map[byte]bool{}
	for i := 0; i < len(Symbols); i++ {
		if seen[Symbols[i]] {
			t.Fatalf("duplicate symbol %q", Symbols[i])
		}
		seen[Symbols[i]] = true
	}
}

func TestIndex(t *testing.T) {
	cases := map[byte]int{'a': 0, 'z': 25, '_': 26, '0': 27, '9': 36}
	for c, expected := range cases {
		got, ok := Index(c)
		if !ok || got != expected {
			t.Fatalf("Index(%q) expected %d, got %d (ok=%v)", c, expected, got, ok)
		}
	}
	if _, ok := Index('A'); ok {
		t.Fatalf("expected uppercase to be outside the alphabet")
	}
	if Contains('-') {
		t.Fatalf("expected '-' to be outside the alphabet")
	}
}

func TestBounds(t *testing.T) {
	lo, hi, ok := Bounds(0, 0)
	if !ok || lo != 0 || hi != Size-1 {
		t.Fatalf("expected full range, got %d..%d", lo, hi)
	}

	lo, hi, ok = Bounds('m', '_')
	if !ok || lo != 12 || hi != 26 {
		t.Fatalf("expected 12..26, got %d..%d", lo, hi)
	}

	if _, _, ok := Bounds('#', 0); ok {
		t.Fatalf("expected invalid start letter to fail")
	}
}
