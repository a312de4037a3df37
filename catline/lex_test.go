package catline_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/commitfmt/catline"
)

func lexString(t *testing.T, s string, opts catline.Options) []catline.CatLine {
	t.Helper()
	lines, err := catline.Lex(strings.NewReader(s), opts)
	require.NoError(t, err, "unexpected lex error")
	return lines
}

func Test_indentMeasurement(t *testing.T) {
	lines := lexString(t, "no indent\n    four spaces\n\tone tab\n  \n", catline.Options{BodyWidth: 72})
	require.Len(t, lines, 4)
	assert.Equal(t, 0, lines[0].Indent)
	assert.Equal(t, 4, lines[1].Indent)
	assert.Equal(t, 4, lines[2].Indent) // one tab to the next stop of 4
	assert.Equal(t, 0, lines[3].Indent, "an all-whitespace line always has indent 0")
	assert.Equal(t, catline.Empty, lines[3].Final)
}

func Test_headlineCandidate(t *testing.T) {
	lines := lexString(t, "# a comment\nfix: the bug\nmore body\n", catline.Options{BodyWidth: 72})
	require.Len(t, lines, 3)
	assert.NotZero(t, lines[0].Probs[catline.Comment])
	assert.Zero(t, lines[0].Probs[catline.Headline], "a comment line is never a headline candidate")
	assert.NotZero(t, lines[1].Probs[catline.Headline], "the first non-comment non-empty line is a headline candidate")
	assert.Zero(t, lines[2].Probs[catline.Headline])
}

func Test_patternVotes(t *testing.T) {
	cases := []struct {
		name string
		line string
		cat  catline.Category
	}{
		{"bullet", "- an item", catline.ListItem},
		{"plus bullet", "+ an item", catline.ListItem},
		{"ordinal", "1. an item", catline.ListItem},
		{"ordinal paren", "2) an item", catline.ListItem},
		{"blockquote", "> quoted", catline.BlockQuote},
		{"comment", "# a comment", catline.Comment},
		{"fence", "```go", catline.Code},
		{"footer", "Signed-off-by: A <a@x>", catline.Footer},
		{"table", "a | b | c", catline.Table},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// seed each case with a headline first so the line under test
			// is never itself a headline candidate.
			lines := lexString(t, "headline\n"+c.line+"\n", catline.Options{BodyWidth: 10})
			require.Len(t, lines, 2)
			assert.NotZero(t, lines[1].Probs[c.cat], "expected nonzero %v vote for %q", c.cat, c.line)
		})
	}
}

func Test_bareURL(t *testing.T) {
	lines := lexString(t, "headline\nhttps://example.com/a/very/long/path/that/is/wide\n",
		catline.Options{BodyWidth: 20})
	require.Len(t, lines, 2)
	assert.NotZero(t, lines[1].Probs[catline.URL], "a bare URL wider than BodyWidth votes URL")

	lines = lexString(t, "headline\nhttps://x.co\n", catline.Options{BodyWidth: 72})
	require.Len(t, lines, 2)
	assert.NotZero(t, lines[1].Probs[catline.ProseGeneral], "a short bare URL votes ProseGeneral instead")
}

func Test_introVote(t *testing.T) {
	lines := lexString(t, "headline\nChanges:\n", catline.Options{BodyWidth: 72})
	require.Len(t, lines, 2)
	assert.NotZero(t, lines[1].Probs[catline.ProseIntroduction])
	assert.NotZero(t, lines[1].Probs[catline.ProseGeneral], "intro weight is additive, not exclusive")
}

func ExampleLex() {
	lines, err := catline.Lex(strings.NewReader("fix: the bug\n\nsome body text\n"), catline.Options{BodyWidth: 72})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, cl := range lines {
		fmt.Printf("%d indent=%d %q\n", cl.LineNumber, cl.Indent, cl.Text())
	}
	// Output:
	// 1 indent=0 "fix: the bug"
	// 2 indent=0 ""
	// 3 indent=0 "some body text"
}
