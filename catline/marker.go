package catline

import (
	"unicode/utf8"

	"github.com/jcorbin/commitfmt/internal/textwidth"
)

// MarkerTextColumn reports the text column of a ListItem line: the column
// of the first character after its bullet/ordinal/emoji marker and its
// separating whitespace (spec §4.3's "text column"). ok is false if the
// line's text does not begin with a recognized list marker.
func (cl CatLine) MarkerTextColumn() (col int, ok bool) {
	_, rest := leadingIndent(cl.Text())
	b := []byte(rest)
	if delim, w, _ := bulletMarker(b); delim != 0 {
		return cl.Indent + w, true
	}
	if delim, w, _ := ordinalMarker(b); delim != 0 {
		return cl.Indent + w, true
	}
	if isEmojiBullet(b) {
		r, _ := utf8.DecodeRune(b)
		return cl.Indent + textwidth.Width(string(r), false) + 1, true
	}
	return 0, false
}

// MarkerPrefix returns the verbatim original bytes of the line from column
// 0 through the end of its marker and separating whitespace — the exact
// text the printer copies verbatim before a wrapped list item's first word
// (spec §4.4). ok is false if the line is not a recognized list marker.
func (cl CatLine) MarkerPrefix() (prefix string, ok bool) {
	text := cl.Text()
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	b := []byte(text[i:])
	if delim, w, _ := bulletMarker(b); delim != 0 {
		return text[:i+w], true
	}
	if delim, w, _ := ordinalMarker(b); delim != 0 {
		return text[:i+w], true
	}
	if isEmojiBullet(b) {
		_, size := utf8.DecodeRune(b)
		w := size + 1
		if w > len(b) {
			w = len(b)
		}
		return text[:i+w], true
	}
	return "", false
}

// IsFenceOpener reports whether the line's first non-whitespace characters
// are a run of three or more backticks, marking it as a code-fence
// delimiter (spec §4.1).
func (cl CatLine) IsFenceOpener() bool {
	_, rest := leadingIndent(cl.Text())
	delim, width, _ := fenceMarker([]byte(rest))
	return delim != 0 && width >= 3
}
