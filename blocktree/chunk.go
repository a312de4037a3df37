// Package blocktree groups a classified catline.CatLine sequence into a
// Document: an ordered tree of Chunks following spec §4.3 — headline, body
// chunks, and a terminal footer block. It never fails: any refined sequence
// produces some Document.
package blocktree

import (
	"fmt"
	"io"

	"github.com/jcorbin/commitfmt/catline"
)

// ChunkType tags the variant held by a Chunk.
type ChunkType int

const (
	noChunk ChunkType = iota
	HeadlineChunk
	ParagraphChunk
	ListChunk
	CodeBlockChunk
	TableChunk
	UrlChunk
	CommentBlockChunk
	BlockQuoteChunk
	FooterChunk
)

// String returns the chunk type's name.
func (t ChunkType) String() string {
	switch t {
	case HeadlineChunk:
		return "Headline"
	case ParagraphChunk:
		return "Paragraph"
	case ListChunk:
		return "List"
	case CodeBlockChunk:
		return "CodeBlock"
	case TableChunk:
		return "Table"
	case UrlChunk:
		return "Url"
	case CommentBlockChunk:
		return "CommentBlock"
	case BlockQuoteChunk:
		return "BlockQuote"
	case FooterChunk:
		return "Footer"
	default:
		return "InvalidChunk"
	}
}

// ListItem is one entry of a List chunk: a marker line, its continuation
// lines, an optional nested List owned by this item, and an optional intro
// line (only ever set on a list's first item, per spec §3 invariant 5).
type ListItem struct {
	Marker       catline.CatLine
	Continuation []catline.CatLine
	Nested       *List
	Intro        *catline.CatLine

	// MarkerCol is the column of the bullet/number/emoji character.
	MarkerCol int
	// TextCol is the column of the first character of text after the
	// marker and its separating whitespace.
	TextCol int
}

// List is a sequence of sibling ListItems sharing one marker column.
type List struct {
	Items []ListItem
}

// Chunk is a tagged-variant tree node, the Tree Builder's unit of output.
// Exactly one of the per-type fields is meaningful, selected by Type.
type Chunk struct {
	Type ChunkType

	Headline catline.CatLine   // HeadlineChunk, UrlChunk (also reused as single-line holder)
	Lines    []catline.CatLine // ParagraphChunk, CodeBlockChunk, TableChunk, CommentBlockChunk, BlockQuoteChunk, FooterChunk
	List     List              // ListChunk
	Fenced   bool              // CodeBlockChunk: true if delimited by a fence pair
}

// Document is the Tree Builder's output: an ordered sequence of Chunks, with
// at most one HeadlineChunk (first, or preceded only by comment blocks) and
// at most one FooterChunk (last).
type Document struct {
	Chunks []Chunk
}

// Format implements fmt.Formatter in the terse/verbose style used
// throughout this codebase: `%v` prints the bare type name, `%+v` adds an
// item count (List), the quoted line text (Headline, Url), or a line count.
func (c Chunk) Format(f fmt.State, verb rune) {
	if !f.Flag('+') {
		io.WriteString(f, c.Type.String())
		return
	}
	switch c.Type {
	case ListChunk:
		fmt.Fprintf(f, "%v items=%v", c.Type, len(c.List.Items))
	case HeadlineChunk, UrlChunk:
		fmt.Fprintf(f, "%v %q", c.Type, c.Headline.Text())
	default:
		fmt.Fprintf(f, "%v lines=%v", c.Type, len(c.Lines))
	}
}
