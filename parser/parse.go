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

// Package parser implements the block and inline stages of the markdown
// dialect. Blocks splits a source document into classified blocks and Inline
// splits the text of a block into formatted fragments. Turning either into a
// document tree is the job of a generator.
//
// Blocks are separated by one or more blank lines and classified by the first
// rule that matches, in this order:
//
//      fence     = backtick backtick backtick .
//      code      = fence { unicode_char } newline { line newline } { unicode_char } fence .
//      heading   = octothorpe [ .. 5 octothorpe ] space { space } text .
//      quote     = { gt line newline } gt line .
//      ulist     = { ( hyphen | asterisk ) space text newline } ( hyphen | asterisk ) space text .
//      olist     = "1. " line { newline n ". " line } .   /* n counts up from 2 */
//      paragraph = line { newline line } .
//
// A heading must be the only line of its block.
//
// Inline text adheres to the following grammar:
//
//      text  = { plain | bold | italic | code | image | link } .
//      bold  = asterisk asterisk { unicode_char } asterisk asterisk .
//      italic = underscore { unicode_char } underscore .
//      code  = backtick { unicode_char } backtick .
//      image = bang lbrack { unicode_char } rbrack lparen url rparen .
//      link  = lbrack { unicode_char } rbrack lparen url rparen .
//
// Spans do not nest. A delimiter that is opened but never closed is an error.
package parser // import "akhil.cc/mdsite/parser"

import (
	"errors"
	"strconv"
	"strings"

	"akhil.cc/mdsite/ast"
	"github.com/npillmayer/schuko/tracing"
)

var (
	// ErrMalformed is returned when an inline delimiter is never closed or a
	// link or image has no usable URL.
	ErrMalformed = errors.New("malformed inline markup")
	// ErrMissingTitle is returned by Title for documents without a heading.
	ErrMissingTitle = errors.New("missing title")
)

// tracer traces with key 'mdsite.parser'.
func tracer() tracing.Trace {
	return tracing.Select("mdsite.parser")
}

const fence = "```"

// Blocks splits src into blocks and classifies each of them.
func Blocks(src string) []ast.Block {
	texts := Split(src)
	blocks := make([]ast.Block, len(texts))
	for i, t := range texts {
		blocks[i] = ast.Block{Kind: Classify(t), Text: t}
		tracer().Debugf("block %d is %s", i, blocks[i].Kind)
	}
	return blocks
}

// Split returns the blocks of src in source order. Blocks are separated by
// one or more blank lines; each block is trimmed of surrounding whitespace
// and empty blocks are dropped.
func Split(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	var (
		blocks []string
		run    []string
	)
	flush := func() {
		if b := strings.TrimSpace(strings.Join(run, "\n")); b != "" {
			blocks = append(blocks, b)
		}
		run = run[:0]
	}
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		run = append(run, line)
	}
	flush()
	return blocks
}

// Classify returns the kind of a single trimmed block.
// The checks are ordered; the first one to match wins.
func Classify(block string) ast.BlockKind {
	lines := strings.Split(block, "\n")
	switch {
	case isCode(lines):
		return ast.CodeBlock
	case len(lines) == 1 && HeadingLevel(lines[0]) > 0:
		return ast.Heading
	case every(lines, isQuoteLine):
		return ast.Quote
	case every(lines, isBulletLine):
		return ast.UnorderedList
	case isNumbered(lines):
		return ast.OrderedList
	}
	return ast.Paragraph
}

// HeadingLevel returns the number of leading octothorpes of a heading line,
// or 0 if line is not a heading. A heading has one to six octothorpes,
// at least one space, and some text.
func HeadingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n == len(line) || line[n] != ' ' {
		return 0
	}
	if strings.TrimLeft(line[n:], " ") == "" {
		return 0
	}
	return n
}

// IsFence reports whether line opens a code block.
func IsFence(line string) bool {
	return strings.HasPrefix(line, fence) && !strings.HasPrefix(line, fence+"`")
}

// isCode reports whether a block opens with a fence line and ends with a
// fence, which need not be on a line of its own.
func isCode(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	return IsFence(lines[0]) && strings.HasSuffix(strings.TrimSpace(lines[len(lines)-1]), fence)
}

func isQuoteLine(line string) bool {
	return strings.HasPrefix(line, ">")
}

func isBulletLine(line string) bool {
	if !strings.HasPrefix(line, "- ") && !strings.HasPrefix(line, "* ") {
		return false
	}
	return strings.TrimSpace(line[2:]) != ""
}

func isNumbered(lines []string) bool {
	for i, l := range lines {
		if !strings.HasPrefix(l, strconv.Itoa(i+1)+". ") {
			return false
		}
	}
	return len(lines) > 0
}

func every(lines []string, f func(string) bool) bool {
	for _, l := range lines {
		if !f(l) {
			return false
		}
	}
	return len(lines) > 0
}

// Title returns the text of the first heading in src, of any level,
// without its octothorpes and surrounding whitespace.
func Title(src string) (string, error) {
	for _, b := range Split(src) {
		if Classify(b) == ast.Heading {
			return strings.TrimSpace(strings.TrimLeft(b, "#")), nil
		}
	}
	return "", ErrMissingTitle
}
