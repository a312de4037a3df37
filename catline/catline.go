package catline

import "github.com/jcorbin/commitfmt/internal/arena"

// CatLine is one input line carrying its verbatim text, indentation, and a
// probability distribution over Category, collapsing to a single Final
// category once classified.
type CatLine struct {
	LineNumber int // 1-based index in the input stream
	Indent     int // leading whitespace column count (tabs normalized)
	CR         bool // true if a trailing \r was stripped from this line

	token arena.Token

	// Probs maps each Category with nonzero support to its accumulated
	// probability mass. Need not sum to 1; read as relative likelihood.
	Probs map[Category]float64

	// Final is set by the classifier; the lexer presets it to Empty on
	// all-whitespace lines and leaves it zero (noCategory) otherwise.
	Final Category
}

// Text returns the line's verbatim text (no trailing newline or \r).
func (cl CatLine) Text() string { return cl.token.Text() }

// Bytes returns the line's verbatim bytes. The caller must not retain the
// returned slice past the lexer's lifetime.
func (cl CatLine) Bytes() []byte { return cl.token.Bytes() }

// vote adds weight to cat's accumulated probability mass, initializing the
// map if necessary.
func (cl *CatLine) vote(cat Category, weight float64) {
	if cl.Probs == nil {
		cl.Probs = make(map[Category]float64, 4)
	}
	cl.Probs[cat] += weight
}

// Argmax returns the category with the greatest probability mass, breaking
// ties by Category.Precedence (lower rank wins).
func (cl CatLine) Argmax() Category {
	best := Empty
	bestWeight := -1.0
	bestRank := best.Precedence()
	for cat, weight := range cl.Probs {
		rank := cat.Precedence()
		if weight > bestWeight || (weight == bestWeight && rank < bestRank) {
			best, bestWeight, bestRank = cat, weight, rank
		}
	}
	return best
}
