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

package parser

import (
	"fmt"
	"strings"

	"akhil.cc/mdsite/ast"
)

// Inline splits text into fragments from left to right. Every character of
// text ends up in exactly one fragment, except for the delimiters of
// recognized spans. Text between spans becomes Plain fragments.
//
// The contents of a span are taken verbatim, so markup inside a code span,
// link or image is not interpreted.
func Inline(text string) ([]ast.Fragment, error) {
	var (
		frags []ast.Fragment
		plain strings.Builder
	)
	emit := func(f ast.Fragment) {
		if plain.Len() > 0 {
			frags = append(frags, ast.Fragment{Kind: ast.Plain, Text: plain.String()})
			plain.Reset()
		}
		frags = append(frags, f)
	}
	for i := 0; i < len(text); {
		switch {
		case text[i] == '`':
			s, next, err := span(text, i, "`")
			if err != nil {
				return nil, err
			}
			emit(ast.Fragment{Kind: ast.Code, Text: s})
			i = next
		case strings.HasPrefix(text[i:], "**"):
			s, next, err := span(text, i, "**")
			if err != nil {
				return nil, err
			}
			emit(ast.Fragment{Kind: ast.Bold, Text: s})
			i = next
		case text[i] == '_':
			s, next, err := span(text, i, "_")
			if err != nil {
				return nil, err
			}
			emit(ast.Fragment{Kind: ast.Italic, Text: s})
			i = next
		case text[i] == '!' && strings.HasPrefix(text[i+1:], "["):
			alt, url, next, ok, err := reference(text, i+1)
			if err != nil {
				return nil, err
			}
			if !ok {
				plain.WriteByte(text[i])
				i++
				continue
			}
			emit(ast.Fragment{Kind: ast.Image, Text: alt, URL: url})
			i = next
		case text[i] == '[':
			label, url, next, ok, err := reference(text, i)
			if err != nil {
				return nil, err
			}
			if !ok {
				plain.WriteByte(text[i])
				i++
				continue
			}
			emit(ast.Fragment{Kind: ast.Link, Text: label, URL: url})
			i = next
		default:
			plain.WriteByte(text[i])
			i++
		}
	}
	if plain.Len() > 0 {
		frags = append(frags, ast.Fragment{Kind: ast.Plain, Text: plain.String()})
	}
	return frags, nil
}

// span returns the text enclosed by the delimiter at i and its closing pair,
// and the offset just past the closing delimiter.
func span(text string, i int, delim string) (string, int, error) {
	beg := i + len(delim)
	end := strings.Index(text[beg:], delim)
	if end < 0 {
		return "", i, fmt.Errorf("%w: unclosed %q at offset %d", ErrMalformed, delim, i)
	}
	end += beg
	return text[beg:end], end + len(delim), nil
}

// reference parses "[label](url)" with the bracket at i.
// ok is false when the bracket does not open a reference at all.
func reference(text string, i int) (label, url string, next int, ok bool, err error) {
	rbrack := strings.IndexByte(text[i+1:], ']')
	if rbrack < 0 {
		return "", "", i, false, nil
	}
	rbrack += i + 1
	if rbrack+1 >= len(text) || text[rbrack+1] != '(' {
		return "", "", i, false, nil
	}
	rparen := strings.IndexByte(text[rbrack+2:], ')')
	if rparen < 0 {
		return "", "", i, false, fmt.Errorf("%w: unclosed URL after %q at offset %d", ErrMalformed, text[i:rbrack+1], i)
	}
	rparen += rbrack + 2
	url = strings.TrimSpace(text[rbrack+2 : rparen])
	if url == "" {
		return "", "", i, false, fmt.Errorf("%w: empty URL after %q at offset %d", ErrMalformed, text[i:rbrack+1], i)
	}
	return text[i+1 : rbrack], url, rparen + 1, true, nil
}
