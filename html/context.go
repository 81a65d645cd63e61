package html

// state is the tokenizer's current position in the state machine described
// by spec.md §4.3. Encoded as a flat enum driving a single switch
// dispatcher rather than per-state objects, per spec.md §9's guidance.
type state int

const (
	dataState state = iota
	entityDataState
	tagOpenState
	closeTagOpenState
	closeTagMatchState
	tagNameState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDQState
	attributeValueSQState
	attributeValueUQState
	entityInAttributeValueState
	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentState
	commentDashState
	commentEndState
	matchDoctypeState
	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	bogusDoctypeState
	numberedEntityState
	namedEntityState
)

// entityScratch is the context the entity consumer threads across possibly
// many Run invocations (spec.md §3's match_entity scratch).
type entityScratch struct {
	returnState state
	// started is set once the '&' has been consumed and scratch fields
	// below reflect an in-progress walk; complete is set once the walk
	// has resolved (or failed to resolve) and the caller's return_state
	// should be resumed. A walk can suspend for more input any number of
	// times between started and complete.
	started  bool
	complete bool

	// offset of the '&' that started the reference.
	offset int
	// span is the number of bytes consumed since offset (inclusive of '&').
	span int
	// numeric reference state.
	numeric   bool
	base      int
	value     int64
	sawDigit  bool
	// named reference state.
	match     entityMatchState
	matchedCP rune
	haveMatch bool
	prevLen   int
}

// closeTagScratch is CLOSE_TAG_MATCH's scratch (spec.md §3).
type closeTagScratch struct {
	// matched is how many bytes of lastOpenTagName have been confirmed so
	// far against the input.
	matched int
}

// tokContext is the tokenizer's scratch state for the token currently being
// built (spec.md §3, component C). currentChars/currentComment accumulate
// into byte slices rather than buffer spans, since Token data is owned
// in this rewrite (see SPEC_FULL.md §3).
type tokContext struct {
	currentTag     Tag
	tagIsEndTag    bool
	currentComment []byte
	currentDoctype Doctype
	// doctypeForceIncorrect is set by AFTER_DOCTYPE_NAME when trailing
	// content follows the name, which forces Correct=false regardless of
	// what the name matched (BOGUS_DOCTYPE never re-derives it).
	doctypeForceIncorrect bool

	currentChars []byte

	entity   entityScratch
	closeTag closeTagScratch

	// attrValuePrevState remembers which of ATTRIBUTE_VALUE_DQ/SQ/UQ an
	// '&' was seen in, so ENTITY_IN_ATTRIBUTE_VALUE knows where to resume.
	attrValuePrevState state

	// doctypeMatchCount tracks progress through "DOCTYPE" in
	// MATCH_DOCTYPE (1-indexed, per spec.md §4.3).
	doctypeMatchCount int

	// lastOpenTagName is the most recently emitted start tag's name,
	// consulted by CLOSE_TAG_MATCH in RCDATA/CDATA content models.
	lastOpenTagName string
}

func (c *tokContext) resetTag(isEndTag bool) {
	c.currentTag = Tag{}
	c.tagIsEndTag = isEndTag
}

func (c *tokContext) newAttribute() {
	c.currentTag.Attr = append(c.currentTag.Attr, Attribute{})
}

func (c *tokContext) curAttr() *Attribute {
	return &c.currentTag.Attr[len(c.currentTag.Attr)-1]
}
