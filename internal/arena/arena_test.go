package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/commitfmt/internal/arena"
)

func Test_TakeSlicesSuccessiveWrites(t *testing.T) {
	var a arena.Bytes

	a.Write([]byte("fix: bug"))
	first := a.Take()

	a.Write([]byte("body text"))
	second := a.Take()

	assert.Equal(t, "fix: bug", first.Text())
	assert.Equal(t, "body text", second.Text())
	assert.Equal(t, 8, first.Len())
	assert.False(t, first.Empty())
}

func Test_TakeWithNoInterveningWriteIsEmpty(t *testing.T) {
	var a arena.Bytes
	a.Write([]byte("x"))
	_ = a.Take()

	tok := a.Take()
	assert.True(t, tok.Empty())
	assert.Equal(t, "", tok.Text())
}

func Test_ResetAllowsReuse(t *testing.T) {
	var a arena.Bytes
	a.Write([]byte("line one"))
	tok := a.Take()
	assert.Equal(t, "line one", tok.Text())

	a.Reset()
	a.Write([]byte("line two"))
	second := a.Take()
	assert.Equal(t, "line two", second.Text())
}

func Test_WriteReturnsLength(t *testing.T) {
	var a arena.Bytes
	n, err := a.Write([]byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}
