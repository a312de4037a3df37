package blocktree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/commitfmt/blocktree"
	"github.com/jcorbin/commitfmt/catline"
	"github.com/jcorbin/commitfmt/classify"
)

func build(t *testing.T, s string, bodyWidth int) blocktree.Document {
	t.Helper()
	lines, err := catline.Lex(strings.NewReader(s), catline.Options{BodyWidth: bodyWidth})
	require.NoError(t, err)
	classify.Refine(lines)
	return blocktree.Build(lines)
}

func Test_headlineAndFooter(t *testing.T) {
	doc := build(t, "fix: bug\n\nbody text.\n\nSigned-off-by: A <a@x>\n", 72)
	require.NotEmpty(t, doc.Chunks)
	assert.Equal(t, blocktree.HeadlineChunk, doc.Chunks[0].Type)
	assert.Equal(t, "fix: bug", doc.Chunks[0].Headline.Text())
	last := doc.Chunks[len(doc.Chunks)-1]
	assert.Equal(t, blocktree.FooterChunk, last.Type)
	require.Len(t, last.Lines, 1)
	assert.Equal(t, "Signed-off-by: A <a@x>", last.Lines[0].Text())
}

func Test_introAbsorbedIntoList(t *testing.T) {
	doc := build(t, "fix: bug\n\nChanges:\n- one\n- two\n- three\n", 72)
	var list *blocktree.Chunk
	for i := range doc.Chunks {
		if doc.Chunks[i].Type == blocktree.ListChunk {
			list = &doc.Chunks[i]
		}
	}
	require.NotNil(t, list, "expected a List chunk")
	require.NotEmpty(t, list.List.Items)
	require.NotNil(t, list.List.Items[0].Intro, "the intro line should be attached to the first item")
	assert.Equal(t, "Changes:", list.List.Items[0].Intro.Text())

	for _, c := range doc.Chunks {
		assert.NotEqual(t, blocktree.ParagraphChunk, c.Type, "the intro line must not also appear as its own paragraph")
	}
}

func Test_nestedList(t *testing.T) {
	doc := build(t, "fix: bug\n\n- outer\n  - inner\n- outer2\n", 72)
	var list *blocktree.Chunk
	for i := range doc.Chunks {
		if doc.Chunks[i].Type == blocktree.ListChunk {
			list = &doc.Chunks[i]
		}
	}
	require.NotNil(t, list)
	require.Len(t, list.List.Items, 2, "outer and outer2 are siblings")
	require.NotNil(t, list.List.Items[0].Nested, "inner nests under the first outer item")
	require.Len(t, list.List.Items[0].Nested.Items, 1)
	assert.Contains(t, list.List.Items[0].Nested.Items[0].Marker.Text(), "inner")
	assert.Nil(t, list.List.Items[1].Nested)
}

func Test_codeFencePassthrough(t *testing.T) {
	doc := build(t, "fix: bug\n\n```\nsome code that is longer than the usual wrap width by quite a lot\n```\n", 20)
	var code *blocktree.Chunk
	for i := range doc.Chunks {
		if doc.Chunks[i].Type == blocktree.CodeBlockChunk {
			code = &doc.Chunks[i]
		}
	}
	require.NotNil(t, code)
	assert.True(t, code.Fenced)
	require.Len(t, code.Lines, 3)
	assert.Equal(t, "```", code.Lines[0].Text())
	assert.Equal(t, "```", code.Lines[2].Text())
}

func Test_lineInvariant_everyLineInExactlyOneChunkOrDropped(t *testing.T) {
	const input = "fix: bug\n\nparagraph one.\n\n- item\n  continued\n\n```\ncode\n```\n\nSigned-off-by: A <a@x>\n"
	lines, err := catline.Lex(strings.NewReader(input), catline.Options{BodyWidth: 72})
	require.NoError(t, err)
	classify.Refine(lines)
	doc := blocktree.Build(lines)

	seen := map[int]int{}
	var walk func(list blocktree.List)
	walk = func(list blocktree.List) {
		for _, item := range list.Items {
			seen[item.Marker.LineNumber]++
			for _, cl := range item.Continuation {
				seen[cl.LineNumber]++
			}
			if item.Intro != nil {
				seen[item.Intro.LineNumber]++
			}
			if item.Nested != nil {
				walk(*item.Nested)
			}
		}
	}
	for _, c := range doc.Chunks {
		switch c.Type {
		case blocktree.HeadlineChunk, blocktree.UrlChunk:
			seen[c.Headline.LineNumber]++
		case blocktree.ListChunk:
			walk(c.List)
		default:
			for _, cl := range c.Lines {
				seen[cl.LineNumber]++
			}
		}
	}
	for _, cl := range lines {
		if cl.Final == catline.Empty {
			continue // blank separator lines are regenerated, not preserved (spec §8 names only content categories)
		}
		assert.Equal(t, 1, seen[cl.LineNumber], "line %d (%q) should appear in exactly one chunk", cl.LineNumber, cl.Text())
	}
}
