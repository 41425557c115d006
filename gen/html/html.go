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

// Package html builds a document tree from classified blocks and serializes
// it to HTML. Text and attribute values are written verbatim.
//
// Blocks and fragments correspond to the following HTML tags:
// 	Paragraph                   <p></p>
// 	Heading                     <h1></h1>, <h2></h2>, <h3></h3>, <h4></h4>, <h5></h5>, <h6></h6>
// 	Code                        <pre><code></code></pre>
// 	Quote                       <blockquote></blockquote>
// 	UnorderedList               <ul><li></li></ul>
// 	OrderedList                 <ol><li></li></ol>
// 	Plain                       no element
// 	Bold                        <b></b>
// 	Italic                      <i></i>
// 	Code span                   <code></code>
// 	Link                        <a href=""></a>
// 	Image                       <img src="" alt=""></img>
//
// The whole document is wrapped in a single <div>.
package html // import "akhil.cc/mdsite/gen/html"

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrInvalidNode is returned when rendering a tree that was not built
	// correctly: a leaf without tag and value, a leaf with a tag but no value,
	// or a container without tag or children.
	ErrInvalidNode = errors.New("invalid node")
	// ErrUnknownKind is returned for a fragment, block or node kind outside
	// the known set.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrInconsistentBlock is returned when a block's contents do not match
	// the kind it was classified as.
	ErrInconsistentBlock = errors.New("block does not match its kind")
)

// tracer traces with key 'mdsite.html'.
func tracer() tracing.Trace {
	return tracing.Select("mdsite.html")
}

// Node is either a *Leaf or a *Container.
type Node interface {
	node()
}

// Attr is a single attribute. Attributes are written in slice order.
type Attr struct {
	Key string
	Val string
}

// Leaf is a node that renders text, optionally wrapped in one element.
// An empty Tag writes Value verbatim. A nil Value is only valid when there
// is nothing to render, which is an error.
type Leaf struct {
	Tag   string
	Value *string
	Attrs []Attr
}

// Container is a node that wraps its children in an element.
// A nil Children slice is a construction error; an empty one is not.
type Container struct {
	Tag      string
	Attrs    []Attr
	Children []Node
}

func (*Leaf) node()      {}
func (*Container) node() {}

// NewLeaf returns a leaf with the given tag, value and attributes.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Attrs: attrs}
}

// NewText returns an untagged leaf, which renders value as is.
func NewText(value string) *Leaf {
	return NewLeaf("", value)
}

// NewContainer returns a container with the given tag and children.
// The children slice is never nil.
func NewContainer(tag string, children ...Node) *Container {
	if children == nil {
		children = []Node{}
	}
	return &Container{Tag: tag, Children: children}
}

// Walk calls f for n and every node below it, parents before children.
// It stops at the first error returned by f.
func Walk(n Node, f func(Node) error) error {
	if err := f(n); err != nil {
		return err
	}
	if c, ok := n.(*Container); ok && c != nil {
		for _, child := range c.Children {
			if err := Walk(child, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// InnerText concatenates the values of all leaves below n.
func InnerText(n Node) string {
	var b strings.Builder
	Walk(n, func(n Node) error {
		if l, ok := n.(*Leaf); ok && l != nil && l.Value != nil {
			b.WriteString(*l.Value)
		}
		return nil
	})
	return b.String()
}

// Validate checks every node below n for the construction errors that
// would make it impossible to render.
func Validate(n Node) error {
	return Walk(n, func(n Node) error {
		switch t := n.(type) {
		case *Leaf:
			switch {
			case t == nil:
				return fmt.Errorf("%w: nil leaf", ErrInvalidNode)
			case t.Value == nil && t.Tag == "":
				return fmt.Errorf("%w: leaf has neither tag nor value", ErrInvalidNode)
			case t.Value == nil:
				return fmt.Errorf("%w: <%s> leaf has no value", ErrInvalidNode, t.Tag)
			}
		case *Container:
			switch {
			case t == nil:
				return fmt.Errorf("%w: nil container", ErrInvalidNode)
			case t.Tag == "":
				return fmt.Errorf("%w: container has no tag", ErrInvalidNode)
			case t.Children == nil:
				return fmt.Errorf("%w: <%s> container has no children", ErrInvalidNode, t.Tag)
			}
		default:
			return fmt.Errorf("%w: node %T", ErrUnknownKind, n)
		}
		return nil
	})
}

// Render returns the HTML serialization of n. Nothing is returned for an
// invalid tree.
func Render(n Node) (string, error) {
	var b strings.Builder
	if err := Write(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write validates n and writes its HTML serialization to w.
// If n is invalid, nothing is written.
func Write(w io.Writer, n Node) error {
	if err := Validate(n); err != nil {
		return err
	}
	cw := &stickyCountWriter{0, nil, w}
	write(cw, n)
	return cw.err
}

type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

// write expects a validated tree.
func write(w io.Writer, n Node) {
	switch t := n.(type) {
	case *Leaf:
		if t.Tag == "" {
			io.WriteString(w, *t.Value)
			return
		}
		open(w, t.Tag, t.Attrs)
		io.WriteString(w, *t.Value)
		io.WriteString(w, "</"+t.Tag+">")
	case *Container:
		open(w, t.Tag, t.Attrs)
		for _, c := range t.Children {
			write(w, c)
		}
		io.WriteString(w, "</"+t.Tag+">")
	}
}

func open(w io.Writer, tag string, attrs []Attr) {
	io.WriteString(w, "<"+tag)
	for _, a := range attrs {
		fmt.Fprintf(w, ` %s="%s"`, a.Key, a.Val)
	}
	io.WriteString(w, ">")
}

// Generator writes a document tree to its Stdout. A Generator is not reusable.
type Generator struct {
	// Stdout receives the HTML output. If nil, output is discarded.
	Stdout io.Writer
	ctx    context.Context
	root   Node
	done   bool
}

// Gen returns the Generator that writes root as HTML.
func Gen(root Node) *Generator {
	return &Generator{ctx: context.TODO(), root: root}
}

// GenContext is like Gen but includes a context.
//
// The provided context is checked before each child of a root container is
// written, and halts generation once it is done. A halted generator writes
// nothing.
func GenContext(ctx context.Context, root Node) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, root: root}
}

// Run validates the tree and writes it, returning any errors encountered.
// The tree is written to Stdout only once it is complete, so an invalid tree
// or a cancelled context produces no output.
func (g *Generator) Run() error {
	if g.done {
		return fmt.Errorf("generator already run")
	}
	g.done = true
	if g.Stdout == nil {
		g.Stdout = ioutil.Discard
	}
	if err := Validate(g.root); err != nil {
		return err
	}
	var buf bytes.Buffer
	if c, ok := g.root.(*Container); ok {
		open(&buf, c.Tag, c.Attrs)
		for _, child := range c.Children {
			select {
			case <-g.ctx.Done():
				return g.ctx.Err()
			default:
				write(&buf, child)
			}
		}
		io.WriteString(&buf, "</"+c.Tag+">")
	} else {
		write(&buf, g.root)
	}
	cw := &stickyCountWriter{0, nil, g.Stdout}
	buf.WriteTo(cw)
	tracer().Debugf("wrote %d bytes", cw.n)
	return cw.err
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}
