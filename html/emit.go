package html

// emit finalizes a token for delivery (component G). Start/end tags have
// their attribute list deduplicated by case-sensitive name, first
// occurrence winning, before the token reaches the installed sink. Other
// token types are delivered verbatim. If no sink is registered, emit is a
// no-op.
func (t *Tokenizer) emit(tok Token) {
	if tok.Type == StartTagToken || tok.Type == EndTagToken {
		tok.Tag.Attr = t.dedupAttributes(tok.Tag.Attr)
	}
	if t.sink != nil {
		t.sink(tok)
	}
}

// dedupAttributes removes later duplicates of a name in place, shifting
// the tail forward, matching spec.md §4.5's "memory move" description.
// Each dropped duplicate is a duplicate-attribute parse error.
func (t *Tokenizer) dedupAttributes(attrs []Attribute) []Attribute {
	if len(attrs) < 2 {
		return attrs
	}
	seen := make(map[string]bool, len(attrs))
	out := attrs[:0]
	for _, a := range attrs {
		if seen[a.Name] {
			t.reportError(ErrDuplicateAttribute, t.curOffset())
			continue
		}
		seen[a.Name] = true
		out = append(out, a)
	}
	return out
}
