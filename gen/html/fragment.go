package html

import (
	"fmt"

	"akhil.cc/mdsite/ast"
)

var fragmentTags = [...]string{
	ast.Plain:  "",
	ast.Bold:   "b",
	ast.Italic: "i",
	ast.Code:   "code",
	ast.Link:   "a",
	ast.Image:  "img",
}

// FromFragment returns the leaf for a single inline fragment.
func FromFragment(f ast.Fragment) (*Leaf, error) {
	if !f.Kind.Valid() {
		return nil, fmt.Errorf("%w: text kind %v", ErrUnknownKind, f.Kind)
	}
	tag := fragmentTags[f.Kind]
	switch f.Kind {
	case ast.Link:
		return NewLeaf(tag, f.Text, Attr{"href", f.URL}), nil
	case ast.Image:
		return NewLeaf(tag, "", Attr{"src", f.URL}, Attr{"alt", f.Text}), nil
	}
	return NewLeaf(tag, f.Text), nil
}
