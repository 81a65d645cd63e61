package html

import "fmt"

// Parse error codes, as defined by the WHATWG HTML5 specification's list of
// tokenizer parse errors. Trimmed to the codes this tokenizer's recovery
// paths can actually raise.
//
// Grounded on the error-code package structure found in the retrieval
// pack's JustGoHTML tokenizer (same flat string-constant style); see
// DESIGN.md.
const (
	ErrAbruptClosingOfEmptyComment        = "abrupt-closing-of-empty-comment"
	ErrAbsenceOfDigitsInNumericCharRef     = "absence-of-digits-in-numeric-character-reference"
	ErrCharacterReferenceOutsideUnicode    = "character-reference-outside-unicode-range"
	ErrControlCharacterReference           = "control-character-reference"
	ErrDuplicateAttribute                  = "duplicate-attribute"
	ErrEOFBeforeTagName                    = "eof-before-tag-name"
	ErrEOFInComment                        = "eof-in-comment"
	ErrEOFInDoctype                        = "eof-in-doctype"
	ErrEOFInTag                            = "eof-in-tag"
	ErrIncorrectlyOpenedComment            = "incorrectly-opened-comment"
	ErrInvalidFirstCharacterOfTagName      = "invalid-first-character-of-tag-name"
	ErrMissingDoctypeName                  = "missing-doctype-name"
	ErrMissingEndTagName                   = "missing-end-tag-name"
	ErrMissingSemicolonAfterCharacterRef   = "missing-semicolon-after-character-reference"
	ErrMissingWhitespaceBeforeDoctypeName  = "missing-whitespace-before-doctype-name"
	ErrNullCharacterReference              = "null-character-reference"
	ErrUnexpectedNullCharacter             = "unexpected-null-character"
	ErrUnexpectedQuestionMarkInsteadOfName = "unexpected-question-mark-instead-of-tag-name"
	ErrUnknownNamedCharacterReference      = "unknown-named-character-reference"
)

// ErrorSink receives a parse error code and the byte offset it occurred at.
// Parse errors are never fatal: tokenization always continues per spec.
type ErrorSink func(code string, pos int)

// FatalError is returned from Run when a resource error occurs: a
// replace-range that falls outside the buffer, or the dispatcher reaching a
// state it has no handler for. The tokenizer's own rewinds only step back
// over bytes it has just consumed and their errors are not checked, so a
// rewind past the start of the buffer is not reported as a FatalError.
// Spec.md §7.2 marks resource errors unrecoverable; unlike
// the reference implementation (which aborts the process), this rewrite
// surfaces them as an ordinary Go error so the driver can decide what to do.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("html: fatal error during %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

var (
	errRewindOvershoot    = fmt.Errorf("rewind past start of buffer")
	errReplaceRangeBounds = fmt.Errorf("replace range out of bounds")
	errUnreachableState   = fmt.Errorf("tokenizer reached an unreachable state")
)
