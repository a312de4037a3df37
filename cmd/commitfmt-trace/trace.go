package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/jcorbin/commitfmt/catline"
	"github.com/jcorbin/commitfmt/internal/ioutil"
)

// writeTrace dumps, for each CatLine, its line number, indent, final
// category, and every category with its probability, highest first — one
// line per input line, prefixed like cmd/scanex's numbered per-token dump.
func writeTrace(w io.Writer, lines []catline.CatLine, verbose bool) {
	out := &ioutil.ErrWriter{Writer: w}
	for _, cl := range lines {
		prefix := fmt.Sprintf("%4d. ", cl.LineNumber)
		pw := ioutil.PrefixWriter(prefix, out)

		if verbose {
			fmt.Fprintf(pw, "indent=%v final=%+v probs=%v %q\n", cl.Indent, cl.Final, sortedProbs(cl), cl.Text())
		} else {
			fmt.Fprintf(pw, "indent=%v final=%v top=%v\n", cl.Indent, cl.Final, sortedProbs(cl))
		}
		pw.Close()
	}
}

type weightedCategory struct {
	cat    catline.Category
	weight float64
}

// sortedProbs returns cl's category/weight pairs sorted by descending
// weight, ties broken by Category.Precedence — the same order the
// classifier's argmax would consider them in.
func sortedProbs(cl catline.CatLine) []weightedCategory {
	out := make([]weightedCategory, 0, len(cl.Probs))
	for cat, weight := range cl.Probs {
		out = append(out, weightedCategory{cat, weight})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].weight != out[j].weight {
			return out[i].weight > out[j].weight
		}
		return out[i].cat.Precedence() < out[j].cat.Precedence()
	})
	return out
}

// String renders as "Category:0.90" for compact trace lines.
func (wc weightedCategory) String() string {
	return fmt.Sprintf("%v:%.2f", wc.cat, wc.weight)
}
