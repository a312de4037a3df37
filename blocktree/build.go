package blocktree

import (
	"strings"

	"github.com/jcorbin/commitfmt/catline"
)

// Build partitions a classified CatLine sequence into a Document, following
// spec §4.3: the first Headline line (if any) becomes the Headline chunk,
// the trailing run of Footer lines becomes the terminal Footer chunk, and
// everything between is grouped into body chunks in source order.
func Build(lines []catline.CatLine) Document {
	var doc Document
	i, n := 0, len(lines)

	i = skipEmpty(lines, i)

	if i < n && lines[i].Final == catline.Headline {
		doc.Chunks = append(doc.Chunks, Chunk{Type: HeadlineChunk, Headline: lines[i]})
		i++
		i = skipEmpty(lines, i)
	}

	for i < n {
		if lines[i].Final == catline.Footer {
			doc.Chunks = append(doc.Chunks, buildFooter(lines, i))
			break // Footer is terminal (spec §3 invariant 3): nothing follows it
		}
		var chunks []Chunk
		chunks, i = buildBodyChunk(lines, i)
		doc.Chunks = append(doc.Chunks, chunks...)
		i = skipEmpty(lines, i)
	}

	return doc
}

func skipEmpty(lines []catline.CatLine, i int) int {
	for i < len(lines) && lines[i].Final == catline.Empty {
		i++
	}
	return i
}

// buildFooter collects every remaining Footer-classified line to the end of
// input; classify.fixupFooterRegion guarantees any line still tagged Footer
// at this point belongs to the real terminal footer region.
func buildFooter(lines []catline.CatLine, i int) Chunk {
	var out []catline.CatLine
	for ; i < len(lines); i++ {
		if lines[i].Final == catline.Footer {
			out = append(out, lines[i])
		}
	}
	return Chunk{Type: FooterChunk, Lines: out}
}

// scanRun collects a maximal run of lines classified cat starting at i,
// tolerating gaps of Empty lines that are themselves followed by more cat
// lines (spec §4.3's "allowing interleaved Empty only where required").
// Returns the collected lines and the index immediately following the run.
func scanRun(lines []catline.CatLine, i int, cat catline.Category) (out []catline.CatLine, next int) {
	n := len(lines)
	for i < n {
		if lines[i].Final == cat {
			out = append(out, lines[i])
			i++
			continue
		}
		if lines[i].Final == catline.Empty {
			j := skipEmpty(lines, i)
			if j < n && lines[j].Final == cat {
				i = j
				continue
			}
		}
		break
	}
	return out, i
}

// buildBodyChunk dispatches on the line at i's Final category and returns
// the resulting chunk(s) together with the index following its consumed
// lines. Most categories produce exactly one chunk; the prose/list-intro
// absorption case (spec §4.3) can produce a Paragraph followed by a List.
func buildBodyChunk(lines []catline.CatLine, i int) ([]Chunk, int) {
	switch lines[i].Final {
	case catline.Code:
		fenced := lines[i].IsFenceOpener()
		out, next := scanRun(lines, i, catline.Code)
		return []Chunk{{Type: CodeBlockChunk, Lines: out, Fenced: fenced}}, next

	case catline.Table:
		out, next := scanRun(lines, i, catline.Table)
		return []Chunk{{Type: TableChunk, Lines: out}}, next

	case catline.Comment:
		out, next := scanRun(lines, i, catline.Comment)
		return []Chunk{{Type: CommentBlockChunk, Lines: out}}, next

	case catline.BlockQuote:
		out, next := scanRun(lines, i, catline.BlockQuote)
		return []Chunk{{Type: BlockQuoteChunk, Lines: out}}, next

	case catline.Headline:
		// Reached when the headline is preceded by comment lines.
		return []Chunk{{Type: HeadlineChunk, Headline: lines[i]}}, i + 1

	case catline.URL:
		return []Chunk{{Type: UrlChunk, Headline: lines[i]}}, i + 1

	case catline.ListItem:
		list, next := parseList(lines, i)
		return []Chunk{{Type: ListChunk, List: list}}, next

	case catline.ProseGeneral, catline.ProseIntroduction:
		return buildProse(lines, i)

	default:
		// Defensive fallback: any category not otherwise handled here
		// (e.g. a stray ListContinuation with no enclosing list) is
		// never produced by the lexer/classifier as a run starter, but
		// is still total: treat it as a one-line paragraph.
		return []Chunk{{Type: ParagraphChunk, Lines: []catline.CatLine{lines[i]}}}, i + 1
	}
}

// buildProse groups a contiguous run of ProseGeneral/ProseIntroduction
// lines into a Paragraph, then applies spec §4.3's intro-absorption rule: a
// single trailing intro line (classified ProseIntroduction, or any prose line
// ending in ':', since the lexer's intro vote alone never outweighs its
// prose vote) immediately followed (across blank lines only) by a ListItem
// at equal or greater indent is moved into that list's first item's Intro
// slot instead of staying in the paragraph.
func buildProse(lines []catline.CatLine, i int) ([]Chunk, int) {
	start := i
	n := len(lines)
	for i < n && (lines[i].Final == catline.ProseGeneral || lines[i].Final == catline.ProseIntroduction) {
		i++
	}
	run := lines[start:i]

	last := run[len(run)-1]
	if last.Final == catline.ProseIntroduction || strings.HasSuffix(strings.TrimRight(last.Text(), " \t"), ":") {
		if j := skipEmpty(lines, i); j < n && lines[j].Final == catline.ListItem && lines[j].Indent >= last.Indent {
			list, next := parseList(lines, j)
			if len(list.Items) > 0 {
				intro := last
				list.Items[0].Intro = &intro
			}
			run = run[:len(run)-1]
			listChunk := Chunk{Type: ListChunk, List: list}
			if len(run) == 0 {
				return []Chunk{listChunk}, next
			}
			return []Chunk{{Type: ParagraphChunk, Lines: run}, listChunk}, next
		}
	}

	return []Chunk{{Type: ParagraphChunk, Lines: run}}, i
}
