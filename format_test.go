package commitfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commitfmt "github.com/jcorbin/commitfmt"
)

func format(t *testing.T, s string, opts commitfmt.Options) string {
	t.Helper()
	var out strings.Builder
	require.NoError(t, commitfmt.Format(strings.NewReader(s), &out, opts))
	return out.String()
}

func Test_overWideProseIsWrapped(t *testing.T) {
	const input = "fix: bug\n\nThis paragraph is deliberately long enough that it must wrap across more than one output line under a narrow body width.\n"
	got := format(t, input, commitfmt.Options{BodyWidth: 30})
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 30)
	}
}

func Test_introPlusListMerge(t *testing.T) {
	const input = "fix: bug\n\nChanges:\n- one\n- two\n"
	got := format(t, input, commitfmt.Options{})
	assert.Contains(t, got, "Changes:")
	assert.Contains(t, got, "- one")
	assert.Contains(t, got, "- two")
	// the intro line is merged with the list, so no blank line comes between them.
	assert.NotContains(t, got, "Changes:\n\n-")
}

func Test_nestedListPreserved(t *testing.T) {
	const input = "fix: bug\n\n- outer\n  - inner\n"
	got := format(t, input, commitfmt.Options{})
	assert.Contains(t, got, "- outer")
	assert.Contains(t, got, "  - inner")
}

func Test_codeFencePassthroughEndToEnd(t *testing.T) {
	const input = "fix: bug\n\n```\nverbatim   spacing   must   survive\n```\n"
	got := format(t, input, commitfmt.Options{BodyWidth: 10})
	assert.Contains(t, got, "verbatim   spacing   must   survive")
}

func Test_falsePositiveFooterNotPromoted(t *testing.T) {
	const input = "fix: bug\n\nNote: see the ticket for details.\n\nmore general prose follows here.\n"
	got := format(t, input, commitfmt.Options{})
	assert.Contains(t, got, "Note: see the ticket for details.")
}

func Test_footerBlockPreserved(t *testing.T) {
	const input = "fix: bug\n\nbody.\n\nSigned-off-by: A <a@x>\nCo-authored-by: B <b@y>\n"
	got := format(t, input, commitfmt.Options{})
	assert.Contains(t, got, "Signed-off-by: A <a@x>\nCo-authored-by: B <b@y>\n")
}

func Test_idempotent(t *testing.T) {
	const input = "fix: bug\n\nsome body text that is short enough to need no rewrapping at all.\n\n- one\n- two\n"
	once := format(t, input, commitfmt.Options{})
	twice := format(t, once, commitfmt.Options{})
	assert.Equal(t, once, twice)
}

func Test_shortInputStable(t *testing.T) {
	const input = "fix: bug\n\nshort.\n"
	assert.Equal(t, input, format(t, input, commitfmt.Options{}))
}

func Test_widthBoundHeld(t *testing.T) {
	const input = "fix: bug\n\n" + strings.Repeat("word ", 40) + "\n"
	got := format(t, input, commitfmt.Options{BodyWidth: 40})
	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 40)
	}
}

func Test_headlineAppearsExactlyOnce(t *testing.T) {
	const input = "fix: the headline\n\nbody one.\n\nbody two.\n"
	got := format(t, input, commitfmt.Options{})
	assert.Equal(t, 1, strings.Count(got, "fix: the headline"))
}

func Test_crlfThroughout(t *testing.T) {
	const input = "fix: bug\n\nbody.\n"
	got := format(t, input, commitfmt.Options{CRLF: true})
	assert.NotContains(t, got, "\n\n")
	for _, line := range strings.Split(got, "\r\n") {
		assert.False(t, strings.Contains(line, "\n"), "no bare LF should remain outside the CRLF pairs")
	}
}
