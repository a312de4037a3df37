// Package commitfmt is a stream-oriented reflow filter for Git commit
// messages. It reads an unformatted message from standard input and writes
// a structurally-equivalent message with paragraphs and list items
// rewrapped to a configurable width, preserving list structure and keeping
// headline, code, tables, URLs, quotes, comments, and a trailing footer
// block verbatim.
//
// The pipeline is four stages, run in one pass with no partial output:
// catline.Lex classifies each line, classify.Refine contextually adjusts
// and collapses those classifications, blocktree.Build groups the result
// into a Document, and reflowfmt.Print renders it.
package commitfmt
