package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/lukehoban/htmltok/dom"
)

// capturePrintDOMTree redirects os.Stdout for the duration of a
// printDOMTree call and returns everything it wrote.
func capturePrintDOMTree(t *testing.T, doc *dom.Node) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	printDOMTree(doc, 0)
	w.Close()
	os.Stdout = orig

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return string(out)
}

func TestPrintDOMTreeElementsAndText(t *testing.T) {
	doc := dom.NewDocument()
	div := dom.NewElement("div")
	div.SetAttribute("id", "main")
	div.AppendChild(dom.NewText("hello"))
	doc.AppendChild(div)

	got := capturePrintDOMTree(t, doc)
	if !strings.Contains(got, `<div id="main">`) {
		t.Errorf("expected div with id attribute in output, got %q", got)
	}
	if !strings.Contains(got, `"hello"`) {
		t.Errorf("expected text node in output, got %q", got)
	}
}

func TestPrintDOMTreeTruncatesLongText(t *testing.T) {
	doc := dom.NewDocument()
	doc.AppendChild(dom.NewText(strings.Repeat("x", 100)))

	got := capturePrintDOMTree(t, doc)
	if strings.Contains(got, strings.Repeat("x", 100)) {
		t.Error("expected long text to be truncated")
	}
}
