// Package html implements the HTML5 tokenization algorithm.
// It follows the WHATWG HTML5 tokenization state machine.
//
// Spec references:
// - HTML5 §12.2.5 Tokenization: https://html.spec.whatwg.org/multipage/parsing.html#tokenization
package html

import "unicode/utf8"

// stepResult is returned by every state handler: stepContinue means the
// dispatcher should call the handler for the (possibly new) current state
// again immediately; stepSuspend means the input stream ran out of data
// and Run should return control to the caller until more is fed in.
type stepResult int

const (
	stepContinue stepResult = iota
	stepSuspend
)

// TokenSink receives each token exactly once, in recognition order.
type TokenSink func(Token)

// MoveHandler is notified whenever the input buffer's backing array is
// reallocated. Installed by the driver; forwarded from the input stream.
type MoveHandler func(newBuf []byte)

// Tokenizer drives the HTML5 tokenization state machine (component D/E).
// It is a pure transducer: no persisted state survives Run returning with
// the stream exhausted other than what the next Feed/Run cycle needs.
type Tokenizer struct {
	in           *inputStream
	ctx          tokContext
	state        state
	contentModel ContentModel

	sink        TokenSink
	errSink     ErrorSink
	moveHandler MoveHandler

	fatalErr   error
	eofEmitted bool
}

// New creates a tokenizer positioned in the DATA state with the PCDATA
// content model, ready to receive bytes via Feed.
func New() *Tokenizer {
	t := &Tokenizer{
		in:           newInputStream(),
		state:        dataState,
		contentModel: PCDATA,
	}
	t.in.registerMoveHandler(func(buf []byte) {
		if t.moveHandler != nil {
			t.moveHandler(buf)
		}
	})
	return t
}

// Feed appends more bytes to the input stream.
func (t *Tokenizer) Feed(b []byte) {
	t.in.feed(b)
}

// CloseInput marks the input stream as complete: once the cursor reaches
// the end of the fed bytes, the tokenizer observes EOF instead of
// suspending forever waiting for more.
func (t *Tokenizer) CloseInput() {
	t.in.close()
}

// Run drives the state machine until a handler suspends for more input or
// the terminal EOF token has been emitted. It returns suspended=true in the
// former case; the caller should Feed more bytes (and/or CloseInput) and
// call Run again. A non-nil error is always a FatalError (spec.md §7.2):
// the tokenizer must not be driven further after one is returned.
func (t *Tokenizer) Run() (suspended bool, err error) {
	if t.eofEmitted {
		return false, nil
	}
	for {
		res := t.step()
		if t.fatalErr != nil {
			err := t.fatalErr
			t.fatalErr = nil
			return false, err
		}
		if res == stepSuspend {
			return true, nil
		}
		if t.eofEmitted {
			return false, nil
		}
	}
}

// step invokes the handler for the current state (component D).
func (t *Tokenizer) step() stepResult {
	switch t.state {
	case dataState:
		return t.stepData()
	case entityDataState:
		return t.stepEntityData()
	case tagOpenState:
		return t.stepTagOpen()
	case closeTagOpenState:
		return t.stepCloseTagOpen()
	case closeTagMatchState:
		return t.stepCloseTagMatch()
	case tagNameState:
		return t.stepTagName()
	case beforeAttributeNameState:
		return t.stepBeforeAttributeName()
	case attributeNameState:
		return t.stepAttributeName()
	case afterAttributeNameState:
		return t.stepAfterAttributeName()
	case beforeAttributeValueState:
		return t.stepBeforeAttributeValue()
	case attributeValueDQState:
		return t.stepAttributeValueQuoted('"')
	case attributeValueSQState:
		return t.stepAttributeValueQuoted('\'')
	case attributeValueUQState:
		return t.stepAttributeValueUQ()
	case entityInAttributeValueState:
		return t.stepEntityInAttributeValue()
	case bogusCommentState:
		return t.stepBogusComment()
	case markupDeclarationOpenState:
		return t.stepMarkupDeclarationOpen()
	case commentStartState:
		return t.stepCommentStart()
	case commentState:
		return t.stepComment()
	case commentDashState:
		return t.stepCommentDash()
	case commentEndState:
		return t.stepCommentEnd()
	case matchDoctypeState:
		return t.stepMatchDoctype()
	case doctypeState:
		return t.stepDoctype()
	case beforeDoctypeNameState:
		return t.stepBeforeDoctypeName()
	case doctypeNameState:
		return t.stepDoctypeName()
	case afterDoctypeNameState:
		return t.stepAfterDoctypeName()
	case bogusDoctypeState:
		return t.stepBogusDoctype()
	default:
		// numberedEntityState and namedEntityState are not dispatched here:
		// consumeEntity drives them directly from ENTITY_DATA/
		// ENTITY_IN_ATTRIBUTE_VALUE based on entityScratch.numeric, not via
		// t.state (see entity.go).
		t.fatal("step", errUnreachableState)
		return stepSuspend
	}
}

// DATA (spec.md §4.3).
func (t *Tokenizer) stepData() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.flushChars()
		t.emit(Token{Type: EOFToken})
		t.eofEmitted = true
		return stepContinue
	}
	if r == '&' && t.contentModel != CDATA && t.contentModel != Plaintext {
		t.state = entityDataState
		return stepContinue
	}
	if r == '<' && t.contentModel != Plaintext {
		t.flushChars()
		t.in.advance()
		t.state = tagOpenState
		return stepContinue
	}
	if r == 0 {
		t.reportError(ErrUnexpectedNullCharacter, t.curOffset())
		r = 0xFFFD
	}
	t.appendChar(r)
	t.in.advance()
	return stepContinue
}

// ENTITY_DATA (spec.md §4.3).
func (t *Tokenizer) stepEntityData() stepResult {
	e := &t.ctx.entity
	if !e.complete {
		return t.consumeEntity(dataState)
	}
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	e.complete = false
	if status == statusEOF {
		t.state = dataState
		return stepContinue
	}
	t.appendChar(r)
	t.in.advance()
	t.state = dataState
	return stepContinue
}

// ENTITY_IN_ATTRIBUTE_VALUE (spec.md §4.3). Per the redesign flag in
// spec.md §9, OOD/EOF here are treated as recoverable: the attribute value
// simply ends rather than aborting the process.
func (t *Tokenizer) stepEntityInAttributeValue() stepResult {
	e := &t.ctx.entity
	if !e.complete {
		return t.consumeEntity(t.ctx.attrValuePrevState)
	}
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	e.complete = false
	if status == statusEOF {
		t.state = t.ctx.attrValuePrevState
		return stepContinue
	}
	t.ctx.curAttr().Value += string(r)
	t.in.advance()
	t.state = t.ctx.attrValuePrevState
	return stepContinue
}

// TAG_OPEN (spec.md §4.3), both the PCDATA and RCDATA/CDATA variants.
func (t *Tokenizer) stepTagOpen() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}

	if t.contentModel == RCDATA || t.contentModel == CDATA {
		if status == statusEOF {
			t.appendLiteral("<")
			t.state = dataState
			return stepContinue
		}
		if r == '/' {
			t.in.advance()
			t.state = closeTagOpenState
			return stepContinue
		}
		t.appendLiteral("<")
		t.state = dataState
		return stepContinue
	}

	if status == statusEOF {
		t.reportError(ErrEOFBeforeTagName, t.curOffset())
		t.appendLiteral("<")
		t.state = dataState
		return stepContinue
	}
	switch {
	case r == '!':
		t.in.advance()
		t.state = markupDeclarationOpenState
	case r == '/':
		t.in.advance()
		t.state = closeTagOpenState
	case isASCIILetter(r):
		t.ctx.resetTag(false)
		if isASCIIUpper(r) {
			t.in.lowercase()
			r = toLowerRune(r)
		}
		t.ctx.currentTag.Name = string(r)
		t.in.advance()
		t.state = tagNameState
	case r == '>':
		t.in.advance()
		t.appendLiteral("<>")
		t.state = dataState
	case r == '?':
		t.reportError(ErrUnexpectedQuestionMarkInsteadOfName, t.curOffset())
		t.ctx.currentComment = nil
		t.state = bogusCommentState
	default:
		t.appendLiteral("<")
		t.state = dataState
	}
	return stepContinue
}

// CLOSE_TAG_OPEN (spec.md §4.3), both variants.
func (t *Tokenizer) stepCloseTagOpen() stepResult {
	if t.contentModel == RCDATA || t.contentModel == CDATA {
		t.ctx.closeTag = closeTagScratch{}
		t.state = closeTagMatchState
		return stepContinue
	}
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	switch {
	case status == statusEOF:
		t.appendLiteral("</")
		t.state = dataState
	case r == '>':
		t.reportError(ErrMissingEndTagName, t.curOffset())
		t.in.advance()
		t.state = dataState
	case isASCIILetter(r):
		t.ctx.resetTag(true)
		if isASCIIUpper(r) {
			t.in.lowercase()
			r = toLowerRune(r)
		}
		t.ctx.currentTag.Name = string(r)
		t.in.advance()
		t.state = tagNameState
	default:
		t.reportError(ErrInvalidFirstCharacterOfTagName, t.curOffset())
		t.ctx.currentComment = nil
		t.appendCommentRune(r)
		t.in.advance()
		t.state = bogusCommentState
	}
	return stepContinue
}

// CLOSE_TAG_MATCH (spec.md §4.3). Only reachable in RCDATA/CDATA.
func (t *Tokenizer) stepCloseTagMatch() stepResult {
	name := t.ctx.lastOpenTagName
	cs := &t.ctx.closeTag
	for cs.matched < len(name) {
		r, status := t.in.peek()
		if status == statusOOD {
			return stepSuspend
		}
		if status == statusEOF || !runeEqualFold(r, rune(name[cs.matched])) {
			t.in.rewind(cs.matched)
			t.appendLiteral("</")
			t.state = dataState
			return stepContinue
		}
		t.in.advance()
		cs.matched++
	}
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF || isCloseTagTerminator(r) {
		t.in.rewind(cs.matched)
		t.contentModel = PCDATA
		t.state = closeTagOpenState
		return stepContinue
	}
	t.in.rewind(cs.matched)
	t.appendLiteral("</")
	t.state = dataState
	return stepContinue
}

// TAG_NAME (spec.md §4.3). The self-closing-tag state is intentionally not
// implemented, matching the source's documented limitation (spec.md §9);
// '/' here simply moves on to attribute scanning without setting
// Tag.SelfClosing.
func (t *Tokenizer) stepTagName() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInTag, t.curOffset())
		t.emitCurrentTag()
		t.state = dataState
		return stepContinue
	}
	switch {
	case isWhitespace(r):
		t.in.advance()
		t.state = beforeAttributeNameState
	case r == '>':
		t.in.advance()
		t.emitCurrentTag()
		t.state = dataState
	case r == '<':
		t.emitCurrentTag()
		t.state = dataState
	case r == '/':
		t.in.advance()
		t.state = beforeAttributeNameState
	case isASCIIUpper(r):
		t.in.lowercase()
		t.ctx.currentTag.Name += string(toLowerRune(r))
		t.in.advance()
	default:
		t.ctx.currentTag.Name += string(r)
		t.in.advance()
	}
	return stepContinue
}

// BEFORE_ATTRIBUTE_NAME (spec.md §4.3).
func (t *Tokenizer) stepBeforeAttributeName() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInTag, t.curOffset())
		t.emitCurrentTag()
		t.state = dataState
		return stepContinue
	}
	switch {
	case isWhitespace(r):
		t.in.advance()
	case r == '>':
		t.in.advance()
		t.emitCurrentTag()
		t.state = dataState
	case r == '<':
		t.emitCurrentTag()
		t.state = dataState
	case r == '/':
		t.in.advance()
	case isASCIIUpper(r):
		t.ctx.newAttribute()
		t.in.lowercase()
		t.ctx.curAttr().Name = string(toLowerRune(r))
		t.in.advance()
		t.state = attributeNameState
	default:
		t.ctx.newAttribute()
		t.ctx.curAttr().Name = string(r)
		t.in.advance()
		t.state = attributeNameState
	}
	return stepContinue
}

// AFTER_ATTRIBUTE_NAME (spec.md §4.3): identical to BEFORE_ATTRIBUTE_NAME
// except '=' also transitions, to BEFORE_ATTRIBUTE_VALUE.
func (t *Tokenizer) stepAfterAttributeName() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInTag, t.curOffset())
		t.emitCurrentTag()
		t.state = dataState
		return stepContinue
	}
	switch {
	case isWhitespace(r):
		t.in.advance()
	case r == '=':
		t.in.advance()
		t.state = beforeAttributeValueState
	case r == '>':
		t.in.advance()
		t.emitCurrentTag()
		t.state = dataState
	case r == '<':
		t.emitCurrentTag()
		t.state = dataState
	case r == '/':
		t.in.advance()
	case isASCIIUpper(r):
		t.ctx.newAttribute()
		t.in.lowercase()
		t.ctx.curAttr().Name = string(toLowerRune(r))
		t.in.advance()
		t.state = attributeNameState
	default:
		t.ctx.newAttribute()
		t.ctx.curAttr().Name = string(r)
		t.in.advance()
		t.state = attributeNameState
	}
	return stepContinue
}

// ATTRIBUTE_NAME (spec.md §4.3).
func (t *Tokenizer) stepAttributeName() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInTag, t.curOffset())
		t.emitCurrentTag()
		t.state = dataState
		return stepContinue
	}
	switch {
	case isWhitespace(r):
		t.in.advance()
		t.state = afterAttributeNameState
	case r == '=':
		t.in.advance()
		t.state = beforeAttributeValueState
	case r == '>':
		t.in.advance()
		t.emitCurrentTag()
		t.state = dataState
	case r == '/':
		t.in.advance()
		t.state = beforeAttributeNameState
	case isASCIIUpper(r):
		t.in.lowercase()
		t.ctx.curAttr().Name += string(toLowerRune(r))
		t.in.advance()
	default:
		t.ctx.curAttr().Name += string(r)
		t.in.advance()
	}
	return stepContinue
}

// BEFORE_ATTRIBUTE_VALUE (spec.md §4.3).
func (t *Tokenizer) stepBeforeAttributeValue() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInTag, t.curOffset())
		t.emitCurrentTag()
		t.state = dataState
		return stepContinue
	}
	switch {
	case isWhitespace(r):
		t.in.advance()
	case r == '"':
		t.in.advance()
		t.state = attributeValueDQState
	case r == '\'':
		t.in.advance()
		t.state = attributeValueSQState
	case r == '&':
		t.state = attributeValueUQState
	case r == '>':
		t.in.advance()
		t.emitCurrentTag()
		t.state = dataState
	case r == '<':
		t.emitCurrentTag()
		t.state = dataState
	default:
		t.ctx.curAttr().Value += string(r)
		t.in.advance()
		t.state = attributeValueUQState
	}
	return stepContinue
}

// ATTRIBUTE_VALUE_DQ/SQ (spec.md §4.3): identical except for the
// terminating quote character.
func (t *Tokenizer) stepAttributeValueQuoted(quote rune) stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInTag, t.curOffset())
		t.emitCurrentTag()
		t.state = dataState
		return stepContinue
	}
	switch {
	case r == quote:
		t.in.advance()
		t.state = beforeAttributeNameState
	case r == '&':
		t.ctx.attrValuePrevState = t.state
		t.state = entityInAttributeValueState
	default:
		t.ctx.curAttr().Value += string(r)
		t.in.advance()
	}
	return stepContinue
}

// ATTRIBUTE_VALUE_UQ (spec.md §4.3).
func (t *Tokenizer) stepAttributeValueUQ() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInTag, t.curOffset())
		t.emitCurrentTag()
		t.state = dataState
		return stepContinue
	}
	switch {
	case isWhitespace(r):
		t.in.advance()
		t.state = beforeAttributeNameState
	case r == '>':
		t.in.advance()
		t.emitCurrentTag()
		t.state = dataState
	case r == '<':
		t.emitCurrentTag()
		t.state = dataState
	case r == '&':
		t.ctx.attrValuePrevState = t.state
		t.state = entityInAttributeValueState
	default:
		t.ctx.curAttr().Value += string(r)
		t.in.advance()
	}
	return stepContinue
}

// BOGUS_COMMENT (spec.md §4.3).
func (t *Tokenizer) stepBogusComment() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.emitComment()
		t.state = dataState
		return stepContinue
	}
	if r == '>' {
		t.in.advance()
		t.emitComment()
		t.state = dataState
		return stepContinue
	}
	t.appendCommentRune(r)
	t.in.advance()
	return stepContinue
}

// MARKUP_DECLARATION_OPEN (spec.md §4.3).
func (t *Tokenizer) stepMarkupDeclarationOpen() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrIncorrectlyOpenedComment, t.curOffset())
		t.ctx.currentComment = nil
		t.state = bogusCommentState
		return stepContinue
	}
	switch {
	case r == '-':
		t.in.advance()
		t.ctx.currentComment = nil
		t.state = commentStartState
	case r == 'D' || r == 'd':
		t.in.uppercase()
		t.in.advance()
		t.ctx.doctypeMatchCount = 1
		t.ctx.currentDoctype = Doctype{}
		t.state = matchDoctypeState
	default:
		t.reportError(ErrIncorrectlyOpenedComment, t.curOffset())
		t.ctx.currentComment = nil
		t.state = bogusCommentState
	}
	return stepContinue
}

// COMMENT_START (spec.md §4.3).
func (t *Tokenizer) stepCommentStart() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.emitComment()
		t.state = dataState
		return stepContinue
	}
	if r == '-' {
		t.in.advance()
		t.state = commentState
		return stepContinue
	}
	t.in.pushBack('-')
	t.state = bogusCommentState
	return stepContinue
}

// COMMENT (spec.md §4.3).
func (t *Tokenizer) stepComment() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInComment, t.curOffset())
		t.emitComment()
		t.state = dataState
		return stepContinue
	}
	if r == '-' {
		t.in.advance()
		t.state = commentDashState
		return stepContinue
	}
	t.appendCommentRune(r)
	t.in.advance()
	return stepContinue
}

// COMMENT_DASH (spec.md §4.3).
func (t *Tokenizer) stepCommentDash() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInComment, t.curOffset())
		t.emitComment()
		t.state = dataState
		return stepContinue
	}
	if r == '-' {
		t.in.advance()
		t.state = commentEndState
		return stepContinue
	}
	t.appendCommentByte('-')
	t.appendCommentRune(r)
	t.in.advance()
	t.state = commentState
	return stepContinue
}

// COMMENT_END (spec.md §4.3).
func (t *Tokenizer) stepCommentEnd() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInComment, t.curOffset())
		t.emitComment()
		t.state = dataState
		return stepContinue
	}
	switch r {
	case '>':
		t.in.advance()
		t.emitComment()
		t.state = dataState
	case '-':
		t.appendCommentByte('-')
		t.in.advance()
	default:
		if r == 0 {
			t.reportError(ErrAbruptClosingOfEmptyComment, t.curOffset())
		}
		t.appendCommentByte('-')
		t.appendCommentByte('-')
		t.appendCommentRune(r)
		t.in.advance()
		t.state = commentState
	}
	return stepContinue
}

// MATCH_DOCTYPE (spec.md §4.3). Matches the literal "DOCTYPE" one byte at a
// time, case-insensitively, uppercasing each matched byte in place. On
// mismatch, rewinds over the bytes matched so far (which remain in the
// buffer, now uppercased) so BOGUS_COMMENT can re-read them as data.
func (t *Tokenizer) stepMatchDoctype() stepResult {
	const literal = "DOCTYPE"
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.in.rewind(t.ctx.doctypeMatchCount)
		t.ctx.currentComment = nil
		t.state = bogusCommentState
		return stepContinue
	}
	want := literal[t.ctx.doctypeMatchCount]
	if r <= 0x7F && asciiLower(byte(r)) == asciiLower(want) {
		t.in.uppercase()
		t.in.advance()
		t.ctx.doctypeMatchCount++
		if t.ctx.doctypeMatchCount == len(literal) {
			t.state = doctypeState
		}
		return stepContinue
	}
	t.reportError(ErrIncorrectlyOpenedComment, t.curOffset())
	t.in.rewind(t.ctx.doctypeMatchCount)
	t.ctx.currentComment = nil
	t.state = bogusCommentState
	return stepContinue
}

// DOCTYPE (spec.md §4.3): skip at most one whitespace byte, then proceed.
func (t *Tokenizer) stepDoctype() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInDoctype, t.curOffset())
		t.emitDoctype()
		t.state = dataState
		return stepContinue
	}
	if isWhitespace(r) {
		t.in.advance()
	} else {
		t.reportError(ErrMissingWhitespaceBeforeDoctypeName, t.curOffset())
	}
	t.state = beforeDoctypeNameState
	return stepContinue
}

// BEFORE_DOCTYPE_NAME (spec.md §4.3).
func (t *Tokenizer) stepBeforeDoctypeName() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInDoctype, t.curOffset())
		t.reportError(ErrMissingDoctypeName, t.curOffset())
		t.emitDoctype()
		t.state = dataState
		return stepContinue
	}
	if r == '>' {
		t.in.advance()
		t.reportError(ErrMissingDoctypeName, t.curOffset())
		t.emitDoctype()
		t.state = dataState
		return stepContinue
	}
	if isASCIILower(r) {
		t.in.uppercase()
		t.ctx.currentDoctype.Name = string(toUpperRune(r))
	} else {
		t.ctx.currentDoctype.Name = string(r)
	}
	t.in.advance()
	t.state = doctypeNameState
	return stepContinue
}

// DOCTYPE_NAME (spec.md §4.3).
func (t *Tokenizer) stepDoctypeName() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInDoctype, t.curOffset())
		t.emitDoctype()
		t.state = dataState
		return stepContinue
	}
	switch {
	case isWhitespace(r):
		t.in.advance()
		t.state = afterDoctypeNameState
	case r == '>':
		t.in.advance()
		t.emitDoctype()
		t.state = dataState
	case isASCIILower(r):
		t.in.uppercase()
		t.ctx.currentDoctype.Name += string(toUpperRune(r))
		t.in.advance()
	default:
		t.ctx.currentDoctype.Name += string(r)
		t.in.advance()
	}
	return stepContinue
}

// AFTER_DOCTYPE_NAME (spec.md §4.3).
func (t *Tokenizer) stepAfterDoctypeName() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.reportError(ErrEOFInDoctype, t.curOffset())
		t.emitDoctype()
		t.state = dataState
		return stepContinue
	}
	switch {
	case isWhitespace(r):
		t.in.advance()
	case r == '>':
		t.in.advance()
		t.emitDoctype()
		t.state = dataState
	default:
		t.ctx.doctypeForceIncorrect = true
		t.state = bogusDoctypeState
	}
	return stepContinue
}

// BOGUS_DOCTYPE (spec.md §4.3).
func (t *Tokenizer) stepBogusDoctype() stepResult {
	r, status := t.in.peek()
	if status == statusOOD {
		return stepSuspend
	}
	if status == statusEOF {
		t.emitDoctype()
		t.state = dataState
		return stepContinue
	}
	if r == '>' {
		t.in.advance()
		t.emitDoctype()
		t.state = dataState
		return stepContinue
	}
	t.in.advance()
	return stepContinue
}

// emitCurrentTag finalizes the in-progress start/end tag (component G).
func (t *Tokenizer) emitCurrentTag() {
	tag := t.ctx.currentTag
	tt := StartTagToken
	if t.ctx.tagIsEndTag {
		tt = EndTagToken
	} else {
		t.ctx.lastOpenTagName = tag.Name
	}
	t.emit(Token{Type: tt, Tag: tag})
	t.ctx.currentTag = Tag{}
}

// emitComment finalizes the in-progress comment body.
func (t *Tokenizer) emitComment() {
	t.emit(Token{Type: CommentToken, Data: string(t.ctx.currentComment)})
	t.ctx.currentComment = nil
}

// emitDoctype finalizes the in-progress DOCTYPE, computing Correct unless
// AFTER_DOCTYPE_NAME already forced it false.
func (t *Tokenizer) emitDoctype() {
	d := t.ctx.currentDoctype
	if t.ctx.doctypeForceIncorrect {
		d.Correct = false
	} else {
		d.Correct = d.Name == "HTML"
	}
	t.emit(Token{Type: DoctypeToken, Doctype: d})
	t.ctx.currentDoctype = Doctype{}
	t.ctx.doctypeForceIncorrect = false
}

func (t *Tokenizer) appendChar(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	t.ctx.currentChars = append(t.ctx.currentChars, buf[:n]...)
}

func (t *Tokenizer) appendLiteral(s string) {
	t.ctx.currentChars = append(t.ctx.currentChars, s...)
}

func (t *Tokenizer) flushChars() {
	if len(t.ctx.currentChars) == 0 {
		return
	}
	t.emit(Token{Type: CharacterToken, Data: string(t.ctx.currentChars)})
	t.ctx.currentChars = t.ctx.currentChars[:0]
}

func (t *Tokenizer) appendCommentRune(r rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	t.ctx.currentComment = append(t.ctx.currentComment, buf[:n]...)
}

func (t *Tokenizer) appendCommentByte(b byte) {
	t.ctx.currentComment = append(t.ctx.currentComment, b)
}

func (t *Tokenizer) curOffset() int {
	off, _ := t.in.curPos()
	return off
}

func (t *Tokenizer) fatal(op string, err error) {
	t.fatalErr = &FatalError{Op: op, Err: err}
}

func (t *Tokenizer) reportError(code string, pos int) {
	if t.errSink != nil {
		t.errSink(code, pos)
	}
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', ' ':
		return true
	}
	return false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func runeEqualFold(a, b rune) bool {
	return toLowerRune(a) == toLowerRune(b)
}

func isCloseTagTerminator(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', ' ', '>', '/', '<':
		return true
	}
	return false
}
