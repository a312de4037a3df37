// Package classify implements the contextual refinement stage of the
// pipeline: a symmetric neighborhood kernel over each line's initial
// probability distribution, followed by an argmax-with-precedence
// collapse to a single Category, and two structural post-passes (footer
// region detection, code-fence propagation).
package classify

import "github.com/jcorbin/commitfmt/catline"

// kernel weights for the four-tap neighborhood refinement (spec §4.2):
// immediate neighbors (±1) get alpha1, distance-2 neighbors (±2) get
// alpha2. The center line is excluded and Empty neighbors contribute
// nothing.
const (
	alpha1 = 0.25
	alpha2 = 0.125
)

// Refine adjusts each line's Probs using its ±2 neighborhood, then
// collapses each line to a Final category, and finally applies the
// footer-region and code-fence post-passes. It never reorders or drops
// lines, and mutates the receiver slice's Probs/Final fields only — it is
// pure with respect to any other field.
func Refine(lines []catline.CatLine) {
	refineNeighborhoods(lines)
	collapseFinal(lines)
	fixupFooterRegion(lines)
	fixupCodeFences(lines)
}

// refineNeighborhoods reads only the lexer's original distributions (never
// the output of a prior refinement), so the pass is order-independent and
// idempotent given fixed inputs, per spec §4.2.
func refineNeighborhoods(lines []catline.CatLine) {
	original := make([]map[catline.Category]float64, len(lines))
	for i := range lines {
		orig := make(map[catline.Category]float64, len(lines[i].Probs))
		for cat, weight := range lines[i].Probs {
			orig[cat] = weight
		}
		original[i] = orig
	}

	offsets := []struct {
		delta int
		alpha float64
	}{
		{-2, alpha2}, {-1, alpha1}, {1, alpha1}, {2, alpha2},
	}

	for i := range lines {
		for _, off := range offsets {
			j := i + off.delta
			if j < 0 || j >= len(lines) {
				continue
			}
			if _, empty := original[j][catline.Empty]; empty {
				continue // Empty neighbors contribute nothing (spec §4.2)
			}
			for cat, weight := range original[j] {
				addProb(&lines[i], cat, off.alpha*weight)
			}
		}
	}
}

func addProb(cl *catline.CatLine, cat catline.Category, weight float64) {
	if weight == 0 {
		return
	}
	if cl.Probs == nil {
		cl.Probs = make(map[catline.Category]float64, 4)
	}
	cl.Probs[cat] += weight
}

// collapseFinal sets Final = argmax(Probs) for every line, breaking ties
// by Category.Precedence. Empty lines are always Empty regardless of any
// refined mass they picked up from neighbors, matching spec §3's
// "all-whitespace lines are fixed to Empty" rule.
func collapseFinal(lines []catline.CatLine) {
	for i := range lines {
		if isSourceEmpty(lines[i]) {
			lines[i].Final = catline.Empty
			continue
		}
		lines[i].Final = lines[i].Argmax()
	}
}

// isSourceEmpty reports whether the lexer itself classified the line as
// Empty (it is the only stage that ever votes Empty), regardless of any
// mass later added to other categories by neighborhood refinement.
func isSourceEmpty(cl catline.CatLine) bool {
	_, ok := cl.Probs[catline.Empty]
	return ok
}

// fixupFooterRegion implements spec §4.2's backward scan: a contiguous
// suffix of Footer/Empty lines (containing at least one Footer) is the
// footer block; any Footer-classified line above that suffix is demoted to
// ProseGeneral, eliminating false-positive footers in the body (e.g. "Note:
// this is just text.").
func fixupFooterRegion(lines []catline.CatLine) {
	n := len(lines)
	i := n
	sawFooter := false
	for i > 0 {
		cat := lines[i-1].Final
		if cat == catline.Footer {
			sawFooter = true
		} else if cat != catline.Empty {
			break
		}
		i--
	}
	if !sawFooter {
		i = n
	}
	for j := 0; j < i; j++ {
		if lines[j].Final == catline.Footer {
			lines[j].Final = catline.ProseGeneral
		}
	}
}

// fixupCodeFences implements spec §4.2's fence propagation: once a fenced
// opener is seen, every subsequent line through the matching closer (or
// end of input, if unbalanced) is forced to Code regardless of its
// refined probabilities.
func fixupCodeFences(lines []catline.CatLine) {
	open := false
	var fenceLen int
	for i := range lines {
		delim, width := fenceWidth(lines[i])
		if !open {
			if delim != 0 && width >= 3 {
				open = true
				fenceLen = width
				lines[i].Final = catline.Code
			}
			continue
		}
		lines[i].Final = catline.Code
		if delim != 0 && width >= fenceLen {
			open = false
		}
	}
}

// fenceWidth reports whether the line (after its recorded indent) opens or
// closes with a run of backticks, and how many.
func fenceWidth(cl catline.CatLine) (delim byte, width int) {
	text := cl.Text()
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) || text[i] != '`' {
		return 0, 0
	}
	delim = '`'
	for i < len(text) && text[i] == '`' {
		width++
		i++
	}
	return delim, width
}
