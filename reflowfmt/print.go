package reflowfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/commitfmt/blocktree"
	"github.com/jcorbin/commitfmt/catline"
	"github.com/jcorbin/commitfmt/internal/ioutil"
)

// Print walks doc and writes it to w per spec §4.4. Exactly one blank line
// separates any two adjacent top-level chunks; the List/CodeBlock/Table
// zero-blank-line exceptions are internal to printList and the verbatim
// chunk printers, which never themselves emit a chunk-separator blank line.
//
// Output is buffered and flushed once at the end (spec §5/§7: no partial
// output on success).
func Print(w io.Writer, doc blocktree.Document, opts Options) error {
	var buf ioutil.WriteBuffer
	buf.To = w

	nl := "\n"
	if opts.CRLF {
		nl = "\r\n"
	}

	for i, chunk := range doc.Chunks {
		if i > 0 {
			fmt.Fprint(&buf, nl)
		}
		printChunk(&buf, chunk, opts, nl)
	}

	return buf.Flush()
}

func printChunk(buf *ioutil.WriteBuffer, chunk blocktree.Chunk, opts Options, nl string) {
	switch chunk.Type {
	case blocktree.HeadlineChunk:
		printVerbatimLine(buf, chunk.Headline, nl)

	case blocktree.ParagraphChunk:
		indentCols := 0
		if len(chunk.Lines) > 0 {
			indentCols = chunk.Lines[0].Indent
		}
		printParagraph(buf, chunk.Lines, indentCols, opts, nl)

	case blocktree.ListChunk:
		printList(buf, chunk.List, opts, nl)

	case blocktree.CodeBlockChunk, blocktree.TableChunk, blocktree.CommentBlockChunk,
		blocktree.BlockQuoteChunk, blocktree.FooterChunk:
		printVerbatim(buf, chunk.Lines, nl)

	case blocktree.UrlChunk:
		printVerbatimLine(buf, chunk.Headline, nl)
	}
}

func printVerbatim(buf *ioutil.WriteBuffer, lines []catline.CatLine, nl string) {
	for _, cl := range lines {
		printVerbatimLine(buf, cl, nl)
	}
}

func printVerbatimLine(buf *ioutil.WriteBuffer, cl catline.CatLine, nl string) {
	buf.WriteString(cl.Text())
	buf.WriteString(nl)
}

// printParagraph emits lines (a contiguous prose run) at the given base
// indent, rewrapping only if some source line exceeds BodyWidth.
func printParagraph(buf *ioutil.WriteBuffer, lines []catline.CatLine, indentCols int, opts Options, nl string) {
	if !needsRewrap(lines, opts.BodyWidth, opts.StripANSI) {
		printVerbatim(buf, lines, nl)
		return
	}
	indent := strings.Repeat(" ", indentCols)
	budget := opts.BodyWidth - indentCols
	if budget < 1 {
		budget = 1
	}
	for _, wrapped := range wrapBlock(wordsOf(lines), budget, opts.StripANSI) {
		buf.WriteString(indent)
		buf.WriteString(wrapped)
		buf.WriteString(nl)
	}
}

// printList renders a List: each item's marker line (with hanging-indent
// wrap), its continuation lines, then its nested list (if any) with zero
// blank lines separating it from the item, per spec §4.4.
func printList(buf *ioutil.WriteBuffer, list blocktree.List, opts Options, nl string) {
	for _, item := range list.Items {
		if item.Intro != nil {
			printParagraph(buf, []catline.CatLine{*item.Intro}, item.MarkerCol, opts, nl)
		}
		printListItem(buf, item, opts, nl)
		if item.Nested != nil {
			printList(buf, *item.Nested, opts, nl)
		}
	}
}

func printListItem(buf *ioutil.WriteBuffer, item blocktree.ListItem, opts Options, nl string) {
	prefix, ok := item.Marker.MarkerPrefix()
	if !ok {
		// Defensive: a ListItem line always has a recognizable marker by
		// construction (the lexer only votes ListItem when one matches).
		prefix = item.Marker.Text()
	}
	textIndent := strings.Repeat(" ", item.TextCol)

	all := append([]catline.CatLine{item.Marker}, item.Continuation...)
	if !needsRewrap(all, opts.BodyWidth, opts.StripANSI) {
		printVerbatimLine(buf, item.Marker, nl)
		for _, cl := range item.Continuation {
			printVerbatimLine(buf, cl, nl)
		}
		return
	}

	prefixWidth := itemPrefixWidth(item, prefix, opts)
	firstBudget := opts.BodyWidth - prefixWidth
	if firstBudget < 1 {
		firstBudget = 1
	}
	restBudget := opts.BodyWidth - item.TextCol
	if restBudget < 1 {
		restBudget = 1
	}

	// The marker's own bullet/ordinal text is written explicitly via prefix
	// above, so only the text after it — not the whole marker line — feeds
	// the word list; otherwise the bullet would be duplicated into the
	// wrapped output.
	texts := make([]string, 0, 1+len(item.Continuation))
	texts = append(texts, strings.TrimPrefix(item.Marker.Text(), prefix))
	for _, cl := range item.Continuation {
		texts = append(texts, cl.Text())
	}
	words := splitWords(strings.Join(texts, " "))
	wrapped := wrapHanging(words, firstBudget, restBudget, opts.StripANSI)
	for i, line := range wrapped {
		if i == 0 {
			// prefix already carries the marker line's own leading indent.
			buf.WriteString(prefix)
		} else {
			buf.WriteString(textIndent)
		}
		buf.WriteString(line)
		buf.WriteString(nl)
	}
}

func itemPrefixWidth(item blocktree.ListItem, prefix string, opts Options) int {
	return item.MarkerCol + widthOf(strings.TrimLeft(prefix, " \t"), opts.StripANSI)
}
