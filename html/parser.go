package html

import (
	"github.com/lukehoban/htmltok/dom"
)

// Parser drives a Tokenizer and builds a DOM tree from its token stream.
// It exists as the tokenizer's default consumer and as an integration-test
// harness for the state machine; full HTML5 tree construction (the
// insertion-mode state machine, foster parenting, the adoption agency
// algorithm) is out of scope, per spec.md §1.
type Parser struct {
	tok   *Tokenizer
	doc   *dom.Node
	stack []*dom.Node
}

// contentModelFor reports the content model tree construction would switch
// to upon seeing a start tag for name, driving the tokenizer's
// SetContentModel the way a real tree builder does for raw-text and
// escapable-raw-text elements (HTML5 §13.2.5).
func contentModelFor(name string) (ContentModel, bool) {
	switch name {
	case "script", "style", "xmp", "iframe", "noembed", "noframes":
		return CDATA, true
	case "title", "textarea":
		return RCDATA, true
	case "plaintext":
		return Plaintext, true
	}
	return PCDATA, false
}

// NewParser creates a parser reading from a fresh Tokenizer.
func NewParser() *Parser {
	p := &Parser{
		doc: dom.NewDocument(),
	}
	p.stack = []*dom.Node{p.doc}
	p.tok = New()
	p.tok.SetTokenSink(p.processToken)
	p.tok.SetErrorSink(LogErrorSink)
	return p
}

// Parse tokenizes input in full and returns the resulting DOM tree.
func Parse(input string) (*dom.Node, error) {
	p := NewParser()
	p.tok.Feed([]byte(input))
	p.tok.CloseInput()
	if _, err := p.tok.Run(); err != nil {
		return p.doc, err
	}
	return p.doc, nil
}

func (p *Parser) processToken(tok Token) {
	switch tok.Type {
	case StartTagToken:
		p.handleStartTag(tok)
	case EndTagToken:
		p.handleEndTag(tok)
	case CharacterToken:
		p.handleText(tok)
	case CommentToken:
		// Comments are preserved as text nodes; this rewrite has no
		// separate dom.CommentNode type since nothing downstream
		// distinguishes them (no CSSOM, no serializer).
		current := p.currentNode()
		current.AppendChild(dom.NewText(tok.Data))
	case DoctypeToken:
		// HTML5 tree construction records the doctype on the document for
		// quirks-mode detection; this rewrite has no layout/rendering
		// consumer of quirks mode, so it is noted but not stored.
	case EOFToken:
	}
}

func (p *Parser) handleStartTag(tok Token) {
	elem := dom.NewElement(tok.Tag.Name)
	for _, a := range tok.Tag.Attr {
		elem.SetAttribute(a.Name, a.Value)
	}
	p.currentNode().AppendChild(elem)

	if cm, ok := contentModelFor(tok.Tag.Name); ok {
		p.tok.SetContentModel(cm)
	}
	if !tok.Tag.SelfClosing && !isVoidElement(tok.Tag.Name) {
		p.stack = append(p.stack, elem)
	}
}

func (p *Parser) handleEndTag(tok Token) {
	if cm, ok := contentModelFor(tok.Tag.Name); ok && cm != PCDATA {
		p.tok.SetContentModel(PCDATA)
	}
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].Type == dom.ElementNode && p.stack[i].Data == tok.Tag.Name {
			p.stack = p.stack[:i]
			return
		}
	}
}

func (p *Parser) handleText(tok Token) {
	if len(p.stack) == 1 && isAllWhitespace(tok.Data) {
		return
	}
	current := p.currentNode()
	current.AppendChild(dom.NewText(tok.Data))
}

func (p *Parser) currentNode() *dom.Node {
	if len(p.stack) == 0 {
		return p.doc
	}
	return p.stack[len(p.stack)-1]
}

func isAllWhitespace(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}

// isVoidElement reports whether tagName can never have children (HTML5
// §13.1.2).
func isVoidElement(tagName string) bool {
	switch tagName {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
