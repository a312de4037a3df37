// Package reflowfmt implements the pretty-printing stage: it walks a
// blocktree.Document and emits a byte stream per spec §4.4 — greedy
// width-bounded wrapping for prose and list items, verbatim passthrough for
// code/tables/URLs/quotes/comments/footers, and exactly one blank line
// between adjacent chunks (with the List/CodeBlock/Table exceptions noted
// on Print).
package reflowfmt

// Options configures the printer.
type Options struct {
	// BodyWidth is the greedy-wrap column budget for Paragraph and
	// ListItem chunks. Spec default: 72.
	BodyWidth int
	// HeadlineWidth is the advisory width for the Headline chunk. The
	// printer does not read it: the headline is always emitted verbatim on
	// one line, whatever its width. Spec default: 50.
	HeadlineWidth int
	// StripANSI strips CSI/SGR escapes before measuring column width,
	// matching the lexer's --no-ansi behavior (spec §4.1).
	StripANSI bool
	// CRLF, if set, terminates every output line with "\r\n" instead of
	// "\n" (spec §4.1: "by default output uses \n").
	CRLF bool
}
