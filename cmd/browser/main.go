// Command browser tokenizes an HTML source, builds a DOM tree from the
// token stream, and prints it. The source may be a file path, an http(s)
// URL, or a data URL; ResourceLoader picks the right fetch path.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lukehoban/htmltok/dom"
	"github.com/lukehoban/htmltok/html"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: browser <html-file|url|data-url>")
		os.Exit(1)
	}

	filename := os.Args[1]
	loader := dom.NewResourceLoader("")
	content, err := loader.LoadResource(filename)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", filename, err)
		os.Exit(1)
	}

	decoded, err := dom.DecodeToUTF8(content)
	if err != nil {
		fmt.Printf("Warning: charset decode failed, using raw bytes: %v\n", err)
		decoded = content
	}

	fmt.Println("=== Parsing HTML ===")
	doc, err := html.Parse(string(decoded))
	if err != nil {
		fmt.Printf("Error parsing HTML: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("DOM tree parsed successfully.")

	dom.ResolveURLs(doc, filepath.Dir(filename))

	fmt.Println("\n=== DOM Tree ===")
	printDOMTree(doc, 0)

	fmt.Println("\n=== Done ===")
}

// printDOMTree prints a DOM tree with indentation.
func printDOMTree(node *dom.Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch node.Type {
	case dom.DocumentNode:
		fmt.Printf("%s[Document]\n", prefix)
	case dom.ElementNode:
		attrs := ""
		if id := node.GetAttribute("id"); id != "" {
			attrs += fmt.Sprintf(" id=%q", id)
		}
		if class := node.GetAttribute("class"); class != "" {
			attrs += fmt.Sprintf(" class=%q", class)
		}
		fmt.Printf("%s<%s%s>\n", prefix, node.Data, attrs)
	case dom.TextNode:
		text := strings.TrimSpace(node.Data)
		if text != "" {
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			fmt.Printf("%s\"%s\"\n", prefix, text)
		}
	}

	for _, child := range node.Children {
		printDOMTree(child, indent+1)
	}
}
