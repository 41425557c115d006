// Package ast holds the closed sets of inline and block kinds produced by
// the parser, along with the values that carry them.
package ast

import "strconv"

// TextKind is the formatting kind of an inline Fragment.
type TextKind int

const (
	Plain TextKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var textKindNames = [...]string{
	Plain:  "Plain",
	Bold:   "Bold",
	Italic: "Italic",
	Code:   "Code",
	Link:   "Link",
	Image:  "Image",
}

func (k TextKind) String() string {
	if k < 0 || int(k) >= len(textKindNames) {
		return "TextKind(" + strconv.Itoa(int(k)) + ")"
	}
	return textKindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k TextKind) Valid() bool {
	return k >= Plain && k <= Image
}

// Fragment is one inline unit of text carrying a single formatting kind.
// URL is non-empty exactly when Kind is Link or Image.
type Fragment struct {
	Kind TextKind
	Text string
	URL  string
}

// BlockKind classifies a Block.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

var blockKindNames = [...]string{
	Paragraph:     "Paragraph",
	Heading:       "Heading",
	CodeBlock:     "Code",
	Quote:         "Quote",
	UnorderedList: "UnorderedList",
	OrderedList:   "OrderedList",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return "BlockKind(" + strconv.Itoa(int(k)) + ")"
	}
	return blockKindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k BlockKind) Valid() bool {
	return k >= Paragraph && k <= OrderedList
}

// Block is a trimmed run of non-blank source lines and its classification.
// The Text of a block is never rewritten; builders derive stripped copies.
type Block struct {
	Kind BlockKind
	Text string
}
