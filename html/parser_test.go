package html

import (
	"testing"

	"github.com/lukehoban/htmltok/dom"
)

func mustParse(t *testing.T, input string) *dom.Node {
	t.Helper()
	doc, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", input, err)
	}
	return doc
}

func TestParseSimpleElement(t *testing.T) {
	doc := mustParse(t, "<div>Hello</div>")

	if len(doc.Children) != 1 {
		t.Fatalf("Expected 1 child, got %d", len(doc.Children))
	}

	div := doc.Children[0]
	if div.Type != dom.ElementNode {
		t.Errorf("Expected ElementNode, got %v", div.Type)
	}
	if div.Data != "div" {
		t.Errorf("Expected tag 'div', got %v", div.Data)
	}
	if len(div.Children) != 1 {
		t.Fatalf("Expected 1 child in div, got %d", len(div.Children))
	}

	text := div.Children[0]
	if text.Type != dom.TextNode {
		t.Errorf("Expected TextNode, got %v", text.Type)
	}
	if text.Data != "Hello" {
		t.Errorf("Expected text 'Hello', got %v", text.Data)
	}
}

func TestParseNestedElements(t *testing.T) {
	doc := mustParse(t, "<html><body><div><p>Hello</p></div></body></html>")

	if len(doc.Children) != 1 {
		t.Fatalf("Expected 1 child (html), got %d", len(doc.Children))
	}
	html := doc.Children[0]
	if html.Data != "html" {
		t.Errorf("Expected 'html', got %v", html.Data)
	}
	body := html.Children[0]
	if body.Data != "body" {
		t.Errorf("Expected 'body', got %v", body.Data)
	}
	div := body.Children[0]
	if div.Data != "div" {
		t.Errorf("Expected 'div', got %v", div.Data)
	}
	p := div.Children[0]
	if p.Data != "p" {
		t.Errorf("Expected 'p', got %v", p.Data)
	}
}

func TestParseAttributes(t *testing.T) {
	doc := mustParse(t, `<div id="main" class="container active">`)

	div := doc.Children[0]
	if div.GetAttribute("id") != "main" {
		t.Errorf("Expected id 'main', got %v", div.GetAttribute("id"))
	}
	if div.GetAttribute("class") != "container active" {
		t.Errorf("Expected class 'container active', got %v", div.GetAttribute("class"))
	}
}

func TestParseVoidElement(t *testing.T) {
	doc := mustParse(t, "<div><img src='test.jpg'><p>Text</p></div>")

	div := doc.Children[0]
	if len(div.Children) != 2 {
		t.Fatalf("Expected 2 children (img, p), got %d", len(div.Children))
	}

	img := div.Children[0]
	if img.Data != "img" {
		t.Errorf("Expected 'img', got %v", img.Data)
	}
	if img.GetAttribute("src") != "test.jpg" {
		t.Errorf("Expected src 'test.jpg', got %v", img.GetAttribute("src"))
	}

	p := div.Children[1]
	if p.Data != "p" {
		t.Errorf("Expected 'p', got %v", p.Data)
	}
}

func TestParseMixedContent(t *testing.T) {
	doc := mustParse(t, "<p>Hello <strong>World</strong>!</p>")

	p := doc.Children[0]
	if len(p.Children) != 3 {
		t.Fatalf("Expected 3 children, got %d", len(p.Children))
	}
	if p.Children[0].Type != dom.TextNode || p.Children[0].Data != "Hello " {
		t.Errorf("Expected 'Hello ', got %v", p.Children[0].Data)
	}
	strong := p.Children[1]
	if strong.Data != "strong" {
		t.Errorf("Expected 'strong', got %v", strong.Data)
	}
	if strong.Children[0].Data != "World" {
		t.Errorf("Expected 'World', got %v", strong.Children[0].Data)
	}
	if p.Children[2].Type != dom.TextNode || p.Children[2].Data != "!" {
		t.Errorf("Expected '!', got %v", p.Children[2].Data)
	}
}

func TestParseScriptContentIsRawText(t *testing.T) {
	doc := mustParse(t, "<script>if (1 < 2) { x(); }</script>")

	script := doc.Children[0]
	if script.Data != "script" {
		t.Fatalf("Expected 'script', got %v", script.Data)
	}
	// The tokenizer flushes the character run at '<', so the body arrives
	// as two character tokens and becomes two text nodes.
	if len(script.Children) != 2 || script.Children[0].Type != dom.TextNode || script.Children[1].Type != dom.TextNode {
		t.Fatalf("Expected two text children, got %#v", script.Children)
	}
	if script.Children[0].Data != "if (1 " || script.Children[1].Data != "< 2) { x(); }" {
		t.Errorf("Expected literal script body, got %q and %q", script.Children[0].Data, script.Children[1].Data)
	}
}

func TestParseDoctype(t *testing.T) {
	doc, err := Parse("<!DOCTYPE html><p>hi</p>")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(doc.Children) != 1 || doc.Children[0].Data != "p" {
		t.Fatalf("expected a single 'p' child, got %#v", doc.Children)
	}
}
