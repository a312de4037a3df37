package catline

import (
	"fmt"
	"io"
)

// Category is a line's structural classification. The set is closed: every
// CatLine ends up with exactly one final Category, drawn from this list.
type Category int

// Category constants, in the classifier's tie-break precedence order
// (highest first): Headline > Footer > Code > Table > ListItem >
// ListContinuation > BlockQuote > Comment > URL > ProseIntroduction >
// ProseGeneral > Empty.
const (
	noCategory Category = iota // zero value should never be seen by a caller

	Headline
	Footer
	Code
	Table
	ListItem
	ListContinuation
	BlockQuote
	Comment
	URL
	ProseIntroduction
	ProseGeneral
	Empty
)

// Precedence returns the category's rank in the tie-break order; lower is
// higher priority. Used by the classifier to break probability ties.
func (c Category) Precedence() int {
	switch c {
	case Headline:
		return 0
	case Footer:
		return 1
	case Code:
		return 2
	case Table:
		return 3
	case ListItem:
		return 4
	case ListContinuation:
		return 5
	case BlockQuote:
		return 6
	case Comment:
		return 7
	case URL:
		return 8
	case ProseIntroduction:
		return 9
	case ProseGeneral:
		return 10
	case Empty:
		return 11
	default:
		return 1 << 30
	}
}

// String returns the category's name.
func (c Category) String() string {
	switch c {
	case Headline:
		return "Headline"
	case Footer:
		return "Footer"
	case Code:
		return "Code"
	case Table:
		return "Table"
	case ListItem:
		return "ListItem"
	case ListContinuation:
		return "ListContinuation"
	case BlockQuote:
		return "BlockQuote"
	case Comment:
		return "Comment"
	case URL:
		return "URL"
	case ProseIntroduction:
		return "ProseIntroduction"
	case ProseGeneral:
		return "ProseGeneral"
	case Empty:
		return "Empty"
	default:
		return "InvalidCategory"
	}
}

// Format implements fmt.Formatter, matching the terse/verbose duality used
// throughout this codebase's tagged-variant types: `%v` prints the bare
// name, `%+v` additionally prints the numeric precedence rank.
func (c Category) Format(f fmt.State, verb rune) {
	if f.Flag('+') {
		io.WriteString(f, c.String())
		fmt.Fprintf(f, "(%d)", c.Precedence())
		return
	}
	io.WriteString(f, c.String())
}
