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

// Tests for parse.go
package parser_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"akhil.cc/mdsite/ast"
	"akhil.cc/mdsite/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sanity-io/litter"
)

var litCfg = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: false,
	Separator:         " ",
}

type splitcase struct {
	in   string
	want []string
}

var splitSmall = []splitcase{
	{"", nil},
	{"\n\n\n", nil},
	{"one", []string{"one"}},
	{"one\ntwo", []string{"one\ntwo"}},
	{"one\n\ntwo", []string{"one", "two"}},
	{"one\n\n\n\ntwo", []string{"one", "two"}},
	{"one\n   \n\t\ntwo", []string{"one", "two"}},
	{"  one  \n\n  two\n  three  ", []string{"one", "two\n  three"}},
	{"one\r\n\r\ntwo\r\nthree", []string{"one", "two\nthree"}},
	{"\n\n# Title\n\nBody text\n\n", []string{"# Title", "Body text"}},
}

func TestSplit(t *testing.T) {
	for i, test := range splitSmall {
		got := parser.Split(test.in)
		if !reflect.DeepEqual(test.want, got) {
			t.Errorf("case %d, in %q,\nwant %s,\ngot %s", i, test.in, litCfg.Sdump(test.want), litCfg.Sdump(got))
		}
	}
}

func TestSplitIdempotent(t *testing.T) {
	for i, test := range splitSmall {
		first, second := parser.Split(test.in), parser.Split(test.in)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("case %d, in %q: %s != %s", i, test.in, litCfg.Sdump(first), litCfg.Sdump(second))
		}
		again := parser.Split(strings.Join(first, "\n\n"))
		if !reflect.DeepEqual(first, again) {
			t.Errorf("case %d, in %q: resplit gives %s", i, test.in, litCfg.Sdump(again))
		}
	}
}

type classcase struct {
	in   string
	want ast.BlockKind
}

var classSmall = []classcase{
	{"# Title", ast.Heading},
	{"###### Six", ast.Heading},
	{"####### too many", ast.Paragraph},
	{"###NoSpace", ast.Paragraph},
	{"#", ast.Paragraph},
	{"# one\n# two", ast.Paragraph},
	{"```\ncode\n```", ast.CodeBlock},
	{"```\n# not a heading\n```", ast.CodeBlock},
	{"```go\nx := 1\n```", ast.CodeBlock},
	{"```\n- a\n- b\n```", ast.CodeBlock},
	{"```\ncode```", ast.CodeBlock},
	{"```go\nx := 1\ny := 2```", ast.CodeBlock},
	{"````\ncode\n````", ast.Paragraph},
	{"```", ast.Paragraph},
	{"> a\n> b", ast.Quote},
	{">\n> b", ast.Quote},
	{">a", ast.Quote},
	{"> a\nb", ast.Paragraph},
	{"- a\n- b", ast.UnorderedList},
	{"* a\n- b", ast.UnorderedList},
	{"-a", ast.Paragraph},
	{"- a\nb", ast.Paragraph},
	{"1. a\n2. b\n3. c", ast.OrderedList},
	{"1. a", ast.OrderedList},
	{"2. a\n3. b", ast.Paragraph},
	{"1. a\n3. b", ast.Paragraph},
	{"1.a\n2.b", ast.Paragraph},
	{"Just some text.", ast.Paragraph},
	{"text\n# heading below", ast.Paragraph},
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.parser")
	defer teardown()
	for i, test := range classSmall {
		if got := parser.Classify(test.in); got != test.want {
			t.Errorf("case %d, in %q,\nwant %s,\ngot %s", i, test.in, test.want, got)
		}
	}
}

func TestBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdsite.parser")
	defer teardown()
	src := "# Title\n\nSome **text**\nover two lines.\n\n```\n# code\n```\n\n> quoted\n\n- a\n- b\n\n1. x\n2. y\n"
	want := []ast.Block{
		{Kind: ast.Heading, Text: "# Title"},
		{Kind: ast.Paragraph, Text: "Some **text**\nover two lines."},
		{Kind: ast.CodeBlock, Text: "```\n# code\n```"},
		{Kind: ast.Quote, Text: "> quoted"},
		{Kind: ast.UnorderedList, Text: "- a\n- b"},
		{Kind: ast.OrderedList, Text: "1. x\n2. y"},
	}
	got := parser.Blocks(src)
	if !reflect.DeepEqual(want, got) {
		t.Errorf("in %q,\nwant %s,\ngot %s", src, litCfg.Sdump(want), litCfg.Sdump(got))
	}
}

var headingSmall = []struct {
	in   string
	want int
}{
	{"# a", 1},
	{"## a", 2},
	{"######   a", 6},
	{"####### a", 0},
	{"#a", 0},
	{"#   ", 0},
	{"a # b", 0},
}

func TestHeadingLevel(t *testing.T) {
	for i, test := range headingSmall {
		if got := parser.HeadingLevel(test.in); got != test.want {
			t.Errorf("case %d, in %q, want %d, got %d", i, test.in, test.want, got)
		}
	}
}

type titlecase struct {
	in   string
	want string
	werr error
}

var titleSmall = []titlecase{
	{"# Hello\n\nBody text", "Hello", nil},
	{"Intro\n\n## Second level   \n\n# First", "Second level", nil},
	{"```\n# not a title\n```\n\n### Real", "Real", nil},
	{"#  Spaced out  ", "Spaced out", nil},
	{"Body text only", "", parser.ErrMissingTitle},
	{"", "", parser.ErrMissingTitle},
	{"#NoSpace\n\n####### seven", "", parser.ErrMissingTitle},
}

func TestTitle(t *testing.T) {
	for i, test := range titleSmall {
		got, err := parser.Title(test.in)
		if got != test.want || !errors.Is(err, test.werr) || (err == nil) != (test.werr == nil) {
			t.Errorf("case %d, in %q,\nwant %q, %v,\ngot %q, %v", i, test.in, test.want, test.werr, got, err)
		}
	}
}
