package html

import "testing"

// runTokenizer feeds input to a fresh Tokenizer in one shot and returns
// every token it emits, in order.
func runTokenizer(t *testing.T, input string) []Token {
	t.Helper()
	tok := New()
	var got []Token
	tok.SetTokenSink(func(tk Token) { got = append(got, tk) })
	tok.Feed([]byte(input))
	tok.CloseInput()
	if _, err := tok.Run(); err != nil {
		t.Fatalf("Run(%q) returned error: %v", input, err)
	}
	return got
}

// runTokenizerSplit feeds input one byte at a time, exercising the
// suspend/resume path between every byte.
func runTokenizerSplit(t *testing.T, input string) []Token {
	t.Helper()
	tok := New()
	var got []Token
	tok.SetTokenSink(func(tk Token) { got = append(got, tk) })
	for i := 0; i < len(input); i++ {
		tok.Feed([]byte{input[i]})
		if _, err := tok.Run(); err != nil {
			t.Fatalf("Run mid-stream returned error: %v", err)
		}
	}
	tok.CloseInput()
	if _, err := tok.Run(); err != nil {
		t.Fatalf("Run(final) returned error: %v", err)
	}
	return got
}

func TestSimpleElement(t *testing.T) {
	got := runTokenizer(t, "<p>hi</p>")
	want := []Token{
		{Type: StartTagToken, Tag: Tag{Name: "p"}},
		{Type: CharacterToken, Data: "hi"},
		{Type: EndTagToken, Tag: Tag{Name: "p"}},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestAttributeValueEntity(t *testing.T) {
	got := runTokenizer(t, `<a href="x&amp;y">z</a>`)
	want := []Token{
		{Type: StartTagToken, Tag: Tag{Name: "a", Attr: []Attribute{{Name: "href", Value: "x&y"}}}},
		{Type: CharacterToken, Data: "z"},
		{Type: EndTagToken, Tag: Tag{Name: "a"}},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestDoctypeCorrect(t *testing.T) {
	got := runTokenizer(t, "<!DOCTYPE html>")
	want := []Token{
		{Type: DoctypeToken, Doctype: Doctype{Name: "HTML", Correct: true}},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestDoctypeIncorrect(t *testing.T) {
	got := runTokenizer(t, "<!DOCTYPE weird>")
	want := []Token{
		{Type: DoctypeToken, Doctype: Doctype{Name: "WEIRD", Correct: false}},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestCommentInternalDoubleDash(t *testing.T) {
	got := runTokenizer(t, "<!-- a -- b -->")
	want := []Token{
		{Type: CommentToken, Data: " a -- b "},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestDuplicateAttributeKeepsFirst(t *testing.T) {
	got := runTokenizer(t, "<X a=1 A=2>")
	want := []Token{
		{Type: StartTagToken, Tag: Tag{Name: "x", Attr: []Attribute{{Name: "a", Value: "1"}}}},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestNumericEntities(t *testing.T) {
	got := runTokenizer(t, "&#x41;&#65;")
	want := []Token{
		{Type: CharacterToken, Data: "AA"},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestNumericEntityWindows1252Fixup(t *testing.T) {
	got := runTokenizer(t, "&#128;")
	want := []Token{
		{Type: CharacterToken, Data: "€"},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestUnknownNamedEntityLeftInPlace(t *testing.T) {
	got := runTokenizer(t, "&notanentity;")
	if len(got) != 2 || got[0].Type != CharacterToken || got[1].Type != EOFToken {
		t.Fatalf("unexpected tokens: %#v", got)
	}
	if got[0].Data != "&notanentity;" {
		t.Errorf("expected unresolved reference preserved verbatim, got %q", got[0].Data)
	}
}

func TestScriptContentModelSuppressesTags(t *testing.T) {
	tok := New()
	var got []Token
	tok.SetTokenSink(func(tk Token) {
		got = append(got, tk)
		if tk.Type == StartTagToken && tk.Tag.Name == "script" {
			tok.SetContentModel(CDATA)
		}
		if tk.Type == EndTagToken && tk.Tag.Name == "script" {
			tok.SetContentModel(PCDATA)
		}
	})
	tok.Feed([]byte("<script>var x = 1 < 2;</script>"))
	tok.CloseInput()
	if _, err := tok.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := []Token{
		{Type: StartTagToken, Tag: Tag{Name: "script"}},
		{Type: CharacterToken, Data: "var x = 1 "},
		{Type: CharacterToken, Data: "< 2;"},
		{Type: EndTagToken, Tag: Tag{Name: "script"}},
		{Type: EOFToken},
	}
	assertTokensEqual(t, got, want)
}

func TestResumabilityByteAtATime(t *testing.T) {
	inputs := []string{
		"<p>hi</p>",
		`<a href="x&amp;y">z</a>`,
		"<!DOCTYPE html>",
		"<!-- a -- b -->",
		"<X a=1 A=2>",
		"&#x41;&#65;",
		"<div class='a'><span>text &amp; more</span></div>",
	}
	for _, in := range inputs {
		whole := runTokenizer(t, in)
		split := runTokenizerSplit(t, in)
		whole = coalesceCharacters(whole)
		split = coalesceCharacters(split)
		assertTokensEqual(t, split, whole)
	}
}

// coalesceCharacters merges adjacent CharacterToken runs, so that sequences
// are compared modulo coalescing of adjacent character tokens (spec.md §8).
// DATA flushes the pending run at every '<', including one that turns out
// not to open a tag, so a single stretch of text can arrive as several runs.
func coalesceCharacters(toks []Token) []Token {
	var out []Token
	for _, tk := range toks {
		if tk.Type == CharacterToken && len(out) > 0 && out[len(out)-1].Type == CharacterToken {
			out[len(out)-1].Data += tk.Data
			continue
		}
		out = append(out, tk)
	}
	return out
}

func assertTokensEqual(t *testing.T, got, want []Token) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d %#v, want %d %#v", len(got), got, len(want), want)
	}
	for i := range got {
		if !tokensEqual(got[i], want[i]) {
			t.Errorf("token %d mismatch: got %#v, want %#v", i, got[i], want[i])
		}
	}
}

func tokensEqual(a, b Token) bool {
	if a.Type != b.Type || a.Data != b.Data {
		return false
	}
	if a.Tag.Name != b.Tag.Name || a.Tag.SelfClosing != b.Tag.SelfClosing {
		return false
	}
	if len(a.Tag.Attr) != len(b.Tag.Attr) {
		return false
	}
	for i := range a.Tag.Attr {
		if a.Tag.Attr[i] != b.Tag.Attr[i] {
			return false
		}
	}
	return a.Doctype == b.Doctype
}
