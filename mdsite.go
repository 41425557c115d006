// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package mdsite converts a small markdown dialect into HTML for a static
// site generator.
//
// The dialect has paragraphs, headings, fenced code, quotes and flat
// ordered and unordered lists. Inside them, text may be **bold**, _italic_,
// `code`, a [link](url) or an ![image](url). Spans do not nest.
//
//	root, err := mdsite.ParseMarkdown(src)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := mdsite.RenderHTML(root)
//
// A document that fails to parse or render produces no HTML at all.
package mdsite // import "akhil.cc/mdsite"

import (
	"fmt"

	"akhil.cc/mdsite/gen/html"
	"akhil.cc/mdsite/parser"
)

// Errors returned by the parser and the generator, for use with errors.Is.
var (
	// ErrMalformed reports an unclosed inline delimiter or a link or image
	// without a URL.
	ErrMalformed = parser.ErrMalformed
	// ErrMissingTitle reports a document without a heading.
	ErrMissingTitle = parser.ErrMissingTitle
	// ErrInvalidNode reports a document tree that cannot be rendered.
	ErrInvalidNode = html.ErrInvalidNode
	// ErrUnknownKind reports a fragment, block or node kind outside the known set.
	ErrUnknownKind = html.ErrUnknownKind
	// ErrInconsistentBlock reports a block whose text does not match its kind.
	ErrInconsistentBlock = html.ErrInconsistentBlock
)

// ParseMarkdown parses src into a document tree rooted at a <div>.
func ParseMarkdown(src string) (*html.Container, error) {
	return html.Build(parser.Blocks(src))
}

// MustParseMarkdown is like ParseMarkdown but panics if src cannot be parsed.
func MustParseMarkdown(src string) *html.Container {
	root, err := ParseMarkdown(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return root
}

// RenderHTML serializes a document tree.
func RenderHTML(n html.Node) (string, error) {
	return html.Render(n)
}

// ExtractTitle returns the text of the first heading in src.
// It fails with ErrMissingTitle if there is none.
func ExtractTitle(src string) (string, error) {
	return parser.Title(src)
}

// Convert parses src with the given builder and renders the result.
func Convert(src string, b html.Builder) (string, error) {
	root, err := b.Build(parser.Blocks(src))
	if err != nil {
		return "", fmt.Errorf("failed to parse markdown: %w", err)
	}
	out, err := html.Render(root)
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return out, nil
}
