package textwidth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/commitfmt/internal/textwidth"
)

func Test_Width_ascii(t *testing.T) {
	assert.Equal(t, 5, textwidth.Width("hello", false))
	assert.Equal(t, 0, textwidth.Width("", false))
}

func Test_Width_wideRunes(t *testing.T) {
	// each CJK ideograph occupies two terminal columns.
	assert.Equal(t, 4, textwidth.Width("日本", false))
}

func Test_Width_graphemeCluster(t *testing.T) {
	// a flag emoji built from two regional-indicator code points is one
	// grapheme cluster and measures as one wide (two-column) character, not
	// as two separate wide code points.
	const flag = "\U0001F1FA\U0001F1F8" // regional indicators U+1F1FA U+1F1F8 ("US")
	assert.Equal(t, 2, textwidth.Width(flag, false))
}

func Test_Width_ansiStripped(t *testing.T) {
	const colored = "\x1b[31mred\x1b[0m"
	assert.Equal(t, 3, textwidth.Width(colored, true))
	assert.Greater(t, textwidth.Width(colored, false), 3, "unstripped escape bytes count toward width")
}
