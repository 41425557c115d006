package parser_test

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"

	"akhil.cc/mdsite/ast"
	"akhil.cc/mdsite/parser"
)

type inlinecase struct {
	in   string
	want []ast.Fragment
	werr error
}

func plain(s string) ast.Fragment { return ast.Fragment{Kind: ast.Plain, Text: s} }

var inlineSmall = []inlinecase{
	{"", nil, nil},
	{"just text", []ast.Fragment{plain("just text")}, nil},
	{"This is **bold** text", []ast.Fragment{
		plain("This is "),
		{Kind: ast.Bold, Text: "bold"},
		plain(" text"),
	}, nil},
	{"_italic_", []ast.Fragment{{Kind: ast.Italic, Text: "italic"}}, nil},
	{"a `code **not bold**` b", []ast.Fragment{
		plain("a "),
		{Kind: ast.Code, Text: "code **not bold**"},
		plain(" b"),
	}, nil},
	{"**a**_b_`c`", []ast.Fragment{
		{Kind: ast.Bold, Text: "a"},
		{Kind: ast.Italic, Text: "b"},
		{Kind: ast.Code, Text: "c"},
	}, nil},
	{"![alt text](http://x/y.png)", []ast.Fragment{
		{Kind: ast.Image, Text: "alt text", URL: "http://x/y.png"},
	}, nil},
	{"see [the docs](https://a.b/c_d) now", []ast.Fragment{
		plain("see "),
		{Kind: ast.Link, Text: "the docs", URL: "https://a.b/c_d"},
		plain(" now"),
	}, nil},
	{"![img](u) and [link](v)", []ast.Fragment{
		{Kind: ast.Image, Text: "img", URL: "u"},
		plain(" and "),
		{Kind: ast.Link, Text: "link", URL: "v"},
	}, nil},
	{"[**x**](u)", []ast.Fragment{{Kind: ast.Link, Text: "**x**", URL: "u"}}, nil},
	{"[not a link] here", []ast.Fragment{plain("[not a link] here")}, nil},
	{"wow! [a](b)", []ast.Fragment{plain("wow! "), {Kind: ast.Link, Text: "a", URL: "b"}}, nil},
	{"a * b * c", []ast.Fragment{plain("a * b * c")}, nil},
	{"ünï **çødé** ✓", []ast.Fragment{plain("ünï "), {Kind: ast.Bold, Text: "çødé"}, plain(" ✓")}, nil},
	{"**open", nil, parser.ErrMalformed},
	{"a ** b", nil, parser.ErrMalformed},
	{"_open", nil, parser.ErrMalformed},
	{"snake_case", nil, parser.ErrMalformed},
	{"`open", nil, parser.ErrMalformed},
	{"[a](b", nil, parser.ErrMalformed},
	{"![a](  )", nil, parser.ErrMalformed},
}

func TestInline(t *testing.T) {
	for i, test := range inlineSmall {
		got, err := parser.Inline(test.in)
		if !errors.Is(err, test.werr) || !reflect.DeepEqual(test.want, got) {
			t.Errorf("case %d, in %q,\nwant %s,\ngot %s,\nwant err %v,\ngot err %v",
				i, test.in, litCfg.Sdump(test.want), litCfg.Sdump(got), test.werr, err)
		}
	}
}

func TestInlineURLOnlyOnReferences(t *testing.T) {
	for i, test := range inlineSmall {
		frags, _ := parser.Inline(test.in)
		for _, f := range frags {
			isRef := f.Kind == ast.Link || f.Kind == ast.Image
			if isRef != (f.URL != "") {
				t.Errorf("case %d, in %q: fragment %s", i, test.in, litCfg.Sdump(f))
			}
		}
	}
}

// Without references, the fragments spell out the input minus its delimiters.
func TestInlineRoundTrip(t *testing.T) {
	ref := regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	strip := strings.NewReplacer("**", "", "_", "", "`", "")
	for i, in := range []string{
		"plain",
		"a **b** c _d_ `e` f",
		"**x**_y_`z`",
		"1 * 2 = 2",
		"tail **bold**",
		"see [the docs](https://example.org/a_b) now",
		"![alt text](/img/a_b.png) and **b**",
		"[a](u)![b](v)",
		"_i_ [label](u) `c` ![alt](v) [not a link]",
	} {
		frags, err := parser.Inline(in)
		if err != nil {
			t.Errorf("case %d, in %q: %v", i, in, err)
			continue
		}
		var b strings.Builder
		for _, f := range frags {
			b.WriteString(f.Text)
		}
		if want := strip.Replace(ref.ReplaceAllString(in, "$1")); b.String() != want {
			t.Errorf("case %d, in %q, want %q, got %q", i, in, want, b.String())
		}
	}
}
