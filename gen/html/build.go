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

package html

import (
	"fmt"
	"strconv"
	"strings"

	"akhil.cc/mdsite/ast"
	"akhil.cc/mdsite/parser"
	sq "github.com/kballard/go-shellquote"
	"github.com/shurcooL/sanitized_anchor_name"
)

// Builder turns classified blocks into a document tree.
// The zero value builds the plain tree; the fields switch on extras.
type Builder struct {
	// HeadingIDs adds an id attribute, derived from the heading text,
	// to every heading.
	HeadingIDs bool
	// CodeLanguage reads the first word of a code fence's info string
	// and adds class="language-<word>" to the code element.
	CodeLanguage bool
}

// Build is shorthand for the zero Builder's Build.
func Build(blocks []ast.Block) (*Container, error) {
	return Builder{}.Build(blocks)
}

// BuildBlock is shorthand for the zero Builder's Block.
func BuildBlock(kind ast.BlockKind, text string) (*Container, error) {
	return Builder{}.Block(kind, text)
}

// Build returns a <div> holding the tree of every block, in order.
// It fails on the first block that cannot be built.
func (b Builder) Build(blocks []ast.Block) (*Container, error) {
	root := NewContainer("div")
	for i, blk := range blocks {
		n, err := b.Block(blk.Kind, blk.Text)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		root.Children = append(root.Children, n)
	}
	return root, nil
}

// Block builds the tree of a single block. The kind is trusted to be the
// classification of text.
func (b Builder) Block(kind ast.BlockKind, text string) (*Container, error) {
	var (
		c   *Container
		err error
	)
	switch kind {
	case ast.Paragraph:
		c, err = b.paragraph(text)
	case ast.Heading:
		c, err = b.heading(text)
	case ast.CodeBlock:
		c, err = b.code(text)
	case ast.Quote:
		c, err = b.quote(text)
	case ast.UnorderedList:
		c, err = b.list("ul", text, bulletItem)
	case ast.OrderedList:
		c, err = b.list("ol", text, numberedItem)
	default:
		return nil, fmt.Errorf("%w: block kind %v", ErrUnknownKind, kind)
	}
	if err != nil {
		return nil, err
	}
	tracer().Debugf("built <%s> with %d children", c.Tag, len(c.Children))
	return c, nil
}

func inline(text string) ([]Node, error) {
	frags, err := parser.Inline(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(frags))
	for _, f := range frags {
		l, err := FromFragment(f)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, l)
	}
	return nodes, nil
}

func (b Builder) paragraph(text string) (*Container, error) {
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	children, err := inline(strings.Join(lines, " "))
	if err != nil {
		return nil, err
	}
	return NewContainer("p", children...), nil
}

func (b Builder) heading(text string) (*Container, error) {
	level := len(text) - len(strings.TrimLeft(text, "#"))
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("%w: heading %q has level %d", ErrInconsistentBlock, text, level)
	}
	children, err := inline(strings.TrimLeft(text[level:], " \t"))
	if err != nil {
		return nil, err
	}
	h := NewContainer("h"+strconv.Itoa(level), children...)
	if b.HeadingIDs {
		if id := sanitized_anchor_name.Create(InnerText(h)); id != "" {
			h.Attrs = append(h.Attrs, Attr{"id", id})
		}
	}
	return h, nil
}

func (b Builder) code(text string) (*Container, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: code block %q has no closing fence", ErrInconsistentBlock, text)
	}
	body := lines[1 : len(lines)-1]
	for i := range body {
		body[i] = strings.TrimLeft(body[i], " \t")
	}
	leaf, err := FromFragment(ast.Fragment{Kind: ast.Code, Text: strings.Join(body, "\n") + "\n"})
	if err != nil {
		return nil, err
	}
	if b.CodeLanguage {
		info := strings.TrimSpace(strings.TrimLeft(lines[0], "`"))
		words, err := sq.Split(info)
		if err != nil {
			return nil, fmt.Errorf("%w: code fence info %q: %v", parser.ErrMalformed, info, err)
		}
		if len(words) > 0 {
			leaf.Attrs = append(leaf.Attrs, Attr{"class", "language-" + words[0]})
		}
	}
	return NewContainer("pre", leaf), nil
}

func (b Builder) quote(text string) (*Container, error) {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		l = strings.TrimPrefix(l, ">")
		lines[i] = strings.TrimPrefix(l, " ")
	}
	children, err := inline(strings.TrimSpace(strings.Join(lines, "\n")))
	if err != nil {
		return nil, err
	}
	return NewContainer("blockquote", children...), nil
}

// list wraps every line's item text, as returned by item, in an <li>.
func (b Builder) list(tag, text string, item func(string) (string, bool)) (*Container, error) {
	lines := strings.Split(text, "\n")
	items := make([]Node, 0, len(lines))
	for _, l := range lines {
		s, ok := item(strings.TrimSpace(l))
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a <%s> item", ErrInconsistentBlock, l, tag)
		}
		children, err := inline(s)
		if err != nil {
			return nil, err
		}
		items = append(items, NewContainer("li", children...))
	}
	return NewContainer(tag, items...), nil
}

func bulletItem(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return line[2:], true
	}
	return "", false
}

func numberedItem(line string) (string, bool) {
	dot := strings.IndexByte(line, '.')
	if dot < 1 {
		return "", false
	}
	for _, r := range line[:dot] {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return strings.TrimLeft(line[dot+1:], " \t"), true
}
