package html

import "testing"

func TestSearchStepKnownEntity(t *testing.T) {
	var st entityMatchState
	var last matchResult
	var cp rune
	for _, b := range []byte("amp;") {
		cp, last = searchStep(b, &st)
	}
	if last != matchOK {
		t.Fatalf("searchStep walk over \"amp;\" ended in %v, want matchOK", last)
	}
	if cp != '&' {
		t.Fatalf("searchStep resolved %q, want '&'", cp)
	}
}

func TestSearchStepLegacyNoSemicolon(t *testing.T) {
	var st entityMatchState
	cp, res := searchStep('l', &st)
	if res != matchNeedsMore {
		t.Fatalf("searchStep('l', ...) = %v, want matchNeedsMore", res)
	}
	cp, res = searchStep('t', &st)
	if res != matchOK {
		t.Fatalf("searchStep('t', ...) = %v, want matchOK", res)
	}
	if cp != '<' {
		t.Fatalf("searchStep resolved %q, want '<'", cp)
	}
}

func TestSearchStepInvalidPrefix(t *testing.T) {
	var st entityMatchState
	searchStep('z', &st) // no entity in the table starts with 'z'
	_, res := searchStep('z', &st)
	if res != matchInvalid {
		t.Fatalf("searchStep on unknown prefix = %v, want matchInvalid", res)
	}
}

func TestSearchStepInvalidExtensionOfPrefix(t *testing.T) {
	// Checks that matching stops cleanly on a byte that extends a valid
	// prefix into an invalid one.
	var st entityMatchState
	_, res := searchStep('a', &st)
	if res != matchNeedsMore {
		t.Fatalf("searchStep('a', ...) = %v, want matchNeedsMore", res)
	}
	_, res = searchStep('x', &st) // "ax" is not a prefix of "amp" or "apos"
	if res != matchInvalid {
		t.Fatalf("searchStep('a','x') = %v, want matchInvalid", res)
	}
}

func TestFixupNumericCodePointWindows1252(t *testing.T) {
	cases := map[int64]rune{
		0x80: 0x20AC, // €
		0x9A: 0x0161, // š
		0x81: 0xFFFD, // unassigned C1 byte maps to the replacement character
	}
	for v, want := range cases {
		if got := fixupNumericCodePoint(v); got != want {
			t.Errorf("fixupNumericCodePoint(0x%X) = %U, want %U", v, got, want)
		}
	}
}

func TestFixupNumericCodePointOutOfRange(t *testing.T) {
	if got := fixupNumericCodePoint(0); got != 0xFFFD {
		t.Errorf("fixupNumericCodePoint(0) = %U, want U+FFFD", got)
	}
	if got := fixupNumericCodePoint(0x110000); got != 0xFFFD {
		t.Errorf("fixupNumericCodePoint(0x110000) = %U, want U+FFFD", got)
	}
}

func TestFixupNumericCodePointPassthrough(t *testing.T) {
	if got := fixupNumericCodePoint(0x41); got != 'A' {
		t.Errorf("fixupNumericCodePoint(0x41) = %U, want 'A'", got)
	}
}

func TestDigitValue(t *testing.T) {
	if d, ok := digitValue('7', 10); !ok || d != 7 {
		t.Errorf("digitValue('7', 10) = %d, %v, want 7, true", d, ok)
	}
	if d, ok := digitValue('f', 16); !ok || d != 15 {
		t.Errorf("digitValue('f', 16) = %d, %v, want 15, true", d, ok)
	}
	if d, ok := digitValue('F', 16); !ok || d != 15 {
		t.Errorf("digitValue('F', 16) = %d, %v, want 15, true", d, ok)
	}
	if _, ok := digitValue('f', 10); ok {
		t.Error("digitValue('f', 10) should not be a valid base-10 digit")
	}
	if _, ok := digitValue('g', 16); ok {
		t.Error("digitValue('g', 16) should not be a valid base-16 digit")
	}
}
