package reflowfmt

import (
	"strings"

	"github.com/jcorbin/commitfmt/catline"
	"github.com/jcorbin/commitfmt/internal/textwidth"
)

// splitWords splits s on runs of ASCII whitespace (spec §4.4's "any run of
// ASCII whitespace"), discarding empty fields.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			return true
		default:
			return false
		}
	})
}

// wordsOf concatenates the text of lines (joined by a single space, so a
// hard line break inside a wrappable chunk is an ordinary word separator
// rather than a forced line break) and splits the result into words.
func wordsOf(lines []catline.CatLine) []string {
	texts := make([]string, len(lines))
	for i, cl := range lines {
		texts[i] = cl.Text()
	}
	return splitWords(strings.Join(texts, " "))
}

// needsRewrap reports whether any source line exceeds width, per spec
// §4.4/§8's "short-paragraph stability": a chunk whose every source line
// already fits is emitted byte-identical, not rewrapped.
func needsRewrap(lines []catline.CatLine, width int, stripANSI bool) bool {
	for _, cl := range lines {
		if textwidth.Width(cl.Text(), stripANSI) > width {
			return true
		}
	}
	return false
}

// wrapHanging greedily packs words into lines bounded by firstBudget (for
// the first output line) and restBudget (for every line after), the
// "hanging indent" shape a list item's wrapped text needs: the first line
// shares its budget with the marker prefix, continuation lines share theirs
// with the text-column indent. A single word wider than its budget is
// still placed alone on its line and may exceed it (spec §4.4).
func wrapHanging(words []string, firstBudget, restBudget int, stripANSI bool) []string {
	if len(words) == 0 {
		return nil
	}
	var lines []string
	var cur []string
	curWidth := 0
	budget := firstBudget

	flush := func() {
		lines = append(lines, strings.Join(cur, " "))
		cur = cur[:0]
		curWidth = 0
	}

	for _, word := range words {
		ww := textwidth.Width(word, stripANSI)
		if len(cur) == 0 {
			cur = append(cur, word)
			curWidth = ww
			continue
		}
		if curWidth+1+ww > budget {
			flush()
			budget = restBudget
			cur = append(cur, word)
			curWidth = ww
			continue
		}
		cur = append(cur, word)
		curWidth += 1 + ww
	}
	flush()

	return lines
}

// wrapBlock is the non-hanging form used by Paragraph chunks: every output
// line shares the same budget and the same leading indent.
func wrapBlock(words []string, width int, stripANSI bool) []string {
	return wrapHanging(words, width, width, stripANSI)
}

func widthOf(s string, stripANSI bool) int {
	return textwidth.Width(s, stripANSI)
}
