package reftest

import "github.com/lukehoban/htmltok/html"

// Scenarios returns the literal tokenization scenarios this rewrite
// carries forward, covering simple elements, attribute entities, doctypes,
// a comment with an internal double dash, duplicate attributes and numeric
// references.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:  "simple element",
			Input: "<p>hi</p>",
			Want: []html.Token{
				{Type: html.StartTagToken, Tag: html.Tag{Name: "p"}},
				{Type: html.CharacterToken, Data: "hi"},
				{Type: html.EndTagToken, Tag: html.Tag{Name: "p"}},
				{Type: html.EOFToken},
			},
		},
		{
			Name:  "attribute value entity",
			Input: `<a href="x&amp;y">z</a>`,
			Want: []html.Token{
				{Type: html.StartTagToken, Tag: html.Tag{Name: "a", Attr: []html.Attribute{{Name: "href", Value: "x&y"}}}},
				{Type: html.CharacterToken, Data: "z"},
				{Type: html.EndTagToken, Tag: html.Tag{Name: "a"}},
				{Type: html.EOFToken},
			},
		},
		{
			Name:  "correct doctype",
			Input: "<!DOCTYPE html>",
			Want: []html.Token{
				{Type: html.DoctypeToken, Doctype: html.Doctype{Name: "HTML", Correct: true}},
				{Type: html.EOFToken},
			},
		},
		{
			Name:  "incorrect doctype",
			Input: "<!DOCTYPE weird>",
			Want: []html.Token{
				{Type: html.DoctypeToken, Doctype: html.Doctype{Name: "WEIRD", Correct: false}},
				{Type: html.EOFToken},
			},
		},
		{
			Name:  "unterminated double-dash in comment",
			Input: "<!-- a -- b -->",
			Want: []html.Token{
				{Type: html.CommentToken, Data: " a -- b "},
				{Type: html.EOFToken},
			},
		},
		{
			Name:  "duplicate attribute keeps first",
			Input: "<X a=1 A=2>",
			Want: []html.Token{
				{Type: html.StartTagToken, Tag: html.Tag{Name: "x", Attr: []html.Attribute{{Name: "a", Value: "1"}}}},
				{Type: html.EOFToken},
			},
		},
		{
			Name:  "numeric character references",
			Input: "&#x41;&#65;",
			Want: []html.Token{
				{Type: html.CharacterToken, Data: "AA"},
				{Type: html.EOFToken},
			},
		},
	}
}
