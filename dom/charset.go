// Package dom's charset detection, sitting in front of the tokenizer as
// the byte-decoding collaborator spec.md §1 names out of scope for the
// tokenizer itself.
package dom

import (
	"bytes"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DecodeToUTF8 sniffs an encoding from a charset declaration in the first
// 1024 bytes (see sniffCharset) and transcodes b to UTF-8 if it isn't
// already. A byte order mark is not examined. It is meant to run
// once over a document's bytes before they are fed to the tokenizer;
// streaming callers that can't buffer the whole document should instead
// trust an out-of-band Content-Type header and call DecodeWithName.
func DecodeToUTF8(b []byte) ([]byte, error) {
	name := sniffCharset(b)
	if name == "" || name == "utf-8" {
		return b, nil
	}
	return DecodeWithName(b, name)
}

// DecodeWithName transcodes b from the named encoding (e.g. from a
// Content-Type header's charset parameter) to UTF-8.
func DecodeWithName(b []byte, name string) ([]byte, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return b, err
	}
	var out bytes.Buffer
	w := transform.NewWriter(&out, enc.NewDecoder())
	if _, err := w.Write(b); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// sniffCharset looks for a <meta charset="..."> or <meta http-equiv=
// Content-Type content="...charset=..."> declaration within the first 1024
// bytes, per HTML5's encoding-sniffing algorithm (simplified: this handles
// the two common forms rather than the full prescan state machine).
func sniffCharset(b []byte) string {
	head := b
	if len(head) > 1024 {
		head = head[:1024]
	}
	lower := bytes.ToLower(head)
	if i := bytes.Index(lower, []byte("charset=")); i >= 0 {
		rest := lower[i+len("charset="):]
		rest = bytes.TrimLeft(rest, `"' `)
		end := bytes.IndexAny(rest, `"' >;`)
		if end < 0 {
			end = len(rest)
		}
		return string(rest[:end])
	}
	return ""
}
