package html

import "github.com/lukehoban/htmltok/log"

// SetTokenSink installs the callback that receives every emitted token.
func (t *Tokenizer) SetTokenSink(sink TokenSink) {
	t.sink = sink
}

// SetErrorSink installs the callback that receives parse errors. Passing
// nil silences parse-error reporting (the FatalError that Run returns is
// unaffected).
func (t *Tokenizer) SetErrorSink(sink ErrorSink) {
	t.errSink = sink
}

// SetMoveHandler installs the callback invoked whenever the input buffer's
// backing array is reallocated.
func (t *Tokenizer) SetMoveHandler(h MoveHandler) {
	t.moveHandler = h
}

// SetContentModel switches between PCDATA, RCDATA, CDATA and Plaintext.
// The driver calls this between tokens, based on element-specific rules
// the tokenizer itself has no knowledge of (spec.md §1).
func (t *Tokenizer) SetContentModel(cm ContentModel) {
	t.contentModel = cm
}

// LogErrorSink is an ErrorSink that reports parse errors to the package's
// structured logger at warning level, for drivers that don't want to wire
// up their own sink.
func LogErrorSink(code string, pos int) {
	log.WithFields(log.WarnLevel, "parse error", map[string]interface{}{
		"code": code,
		"pos":  pos,
	})
}
