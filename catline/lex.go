package catline

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jcorbin/commitfmt/internal/arena"
	"github.com/jcorbin/commitfmt/internal/textwidth"
)

// Options configures lexing. BodyWidth is needed up front because the URL
// pattern's weight depends on whether a bare URL is wider than the wrap
// width (spec §4.1).
type Options struct {
	BodyWidth int
	StripANSI bool
}

// Lex reads r to end-of-stream and returns one CatLine per input line, with
// initial (pre-classifier) probability distributions assigned per the
// pattern table in spec §4.1. It never returns a classification error: the
// worst case for any line is a lone ProseGeneral vote.
func Lex(r io.Reader, opts Options) ([]CatLine, error) {
	var (
		lx    lexer
		sc    = bufio.NewScanner(r)
		lineN = 0
	)
	lx.opts = opts
	sc.Buffer(make([]byte, 0, 64*1024), 64<<20)
	sc.Split(scanRawLines)
	for sc.Scan() {
		lineN++
		line := sc.Bytes()
		cr := false
		if n := len(line); n > 0 && line[n-1] == '\r' {
			cr = true
			line = line[:n-1]
		}
		lx.addLine(lineN, cr, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lx.lines, nil
}

// scanRawLines is a bufio.SplitFunc, modeled on the teacher's
// BlockStack.Scan line-consumption loop (scandown/block.go): it tokenizes
// on '\n' without assuming a trailing newline on the final line, and
// (unlike stdlib bufio.ScanLines) leaves a trailing '\r' in the returned
// token so the caller can record it rather than silently discard it.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

type lexer struct {
	opts    Options
	arena   arena.Bytes
	lines   []CatLine
	sawBody bool // whether a Headline candidate has already been marked
}

func (lx *lexer) addLine(lineN int, cr bool, raw []byte) {
	lx.arena.Write(raw)
	cl := CatLine{
		LineNumber: lineN,
		CR:         cr,
		token:      lx.arena.Take(),
	}

	text := cl.Text()
	indent, trimmed := leadingIndent(text)

	if strings.TrimSpace(trimmed) == "" {
		cl.Indent = 0
		cl.Final = Empty
		cl.vote(Empty, 1.0)
		lx.lines = append(lx.lines, cl)
		return
	}
	cl.Indent = indent

	isHeadlineCandidate := !lx.sawBody
	lx.classify(&cl, trimmed)
	if isHeadlineCandidate && cl.Probs[Comment] == 0 {
		cl.vote(Headline, 1.0)
		lx.sawBody = true
	}

	lx.lines = append(lx.lines, cl)
}

// classify assigns the weighted votes from spec §4.1's pattern table.
// trimmed is the line's text with leading indentation removed.
func (lx *lexer) classify(cl *CatLine, trimmed string) {
	b := []byte(trimmed)

	matched := false

	if len(b) > 0 && b[0] == '#' {
		cl.vote(Comment, 1.0)
		matched = true
	}
	if len(b) > 0 && b[0] == '>' {
		cl.vote(BlockQuote, 1.0)
		matched = true
	}
	if delim, width, _ := fenceMarker(b); delim != 0 && width >= 3 {
		cl.vote(Code, 1.0)
		matched = true
	}
	if cl.Indent >= 4 {
		cl.vote(Code, 0.7)
		matched = true
	}
	if delim, _, _ := bulletMarker(b); delim != 0 {
		cl.vote(ListItem, 0.9)
		matched = true
	}
	if delim, _, _ := ordinalMarker(b); delim != 0 {
		cl.vote(ListItem, 0.9)
		matched = true
	}
	if isEmojiBullet(b) {
		cl.vote(ListItem, 0.8)
		matched = true
	}
	if looksLikeTableRow(b) {
		cl.vote(Table, 0.7)
		matched = true
	}
	if isBareURL(trimmed) {
		w := textwidth.Width(trimmed, lx.opts.StripANSI)
		if lx.opts.BodyWidth > 0 && w > lx.opts.BodyWidth {
			cl.vote(URL, 0.9)
		} else {
			cl.vote(ProseGeneral, 0.9)
		}
		matched = true
	}
	if cl.Indent == 0 && looksLikeFooterTag(b) {
		cl.vote(Footer, 0.8)
		matched = true
	}
	if strings.HasSuffix(strings.TrimRight(trimmed, " \t"), ":") {
		cl.vote(ProseIntroduction, 0.3)
	}

	if !matched {
		cl.vote(ProseGeneral, 0.5)
	}
}

// leadingIndent measures indentation per spec §4.1: each space counts 1,
// each tab counts 4-(col mod 4). Returns the measured indent and the line
// text with that leading whitespace removed (the verbatim text is
// untouched elsewhere; this trimmed copy is only used to drive pattern
// matching).
func leadingIndent(s string) (indent int, rest string) {
	col := 0
	i := 0
	for i < len(s) {
		switch s[i] {
		case ' ':
			col++
			i++
		case '\t':
			col += 4 - (col % 4)
			i++
		default:
			return col, s[i:]
		}
	}
	return col, s[i:]
}

// fenceMarker recognizes a code-fence opener/closer: the first non-ws
// characters are >= 3 backticks. Adapted from scandown/block.go's fence().
func fenceMarker(line []byte) (delim byte, width int, tail []byte) {
	if len(line) == 0 || line[0] != '`' {
		return 0, 0, nil
	}
	delim = '`'
	for width < len(line) && line[width] == delim {
		width++
	}
	return delim, width, line[width:]
}

// bulletMarker recognizes a `-`, `*`, or `+` bullet followed by a space.
// Adapted from scandown/block.go's delimiter()/listMarker().
func bulletMarker(line []byte) (delim byte, width int, tail []byte) {
	if len(line) < 2 {
		return 0, 0, nil
	}
	c := line[0]
	if c != '-' && c != '*' && c != '+' {
		return 0, 0, nil
	}
	if line[1] != ' ' && line[1] != '\t' {
		return 0, 0, nil
	}
	return c, 2, line[2:]
}

// ordinalMarker recognizes ASCII digits followed by '.' or ')' then a
// space. Adapted from scandown/block.go's ordinal().
func ordinalMarker(line []byte) (delim byte, width int, tail []byte) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || i > 9 || i >= len(line) {
		return 0, 0, nil
	}
	if line[i] != '.' && line[i] != ')' {
		return 0, 0, nil
	}
	delim = line[i]
	i++
	if i >= len(line) || (line[i] != ' ' && line[i] != '\t') {
		return 0, 0, nil
	}
	return delim, i + 1, line[i+1:]
}

// isEmojiBullet reports whether the line begins with a single emoji
// grapheme cluster followed by a space — a heuristic per spec §4.1's
// "single grapheme classified as Emoji" rule. Recognition is limited to
// the common pictograph/emoticon/symbol/dingbat blocks; it is a heuristic,
// not a full Unicode emoji-property table.
func isEmojiBullet(line []byte) bool {
	r, size := utf8.DecodeRune(line)
	if r == utf8.RuneError || size == 0 {
		return false
	}
	if !isEmojiRune(r) {
		return false
	}
	rest := line[size:]
	return len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t')
}

func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // misc symbols & pictographs, emoticons, transport, supplemental
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r == 0x2B50 || r == 0x2B55: // star, heavy circle
		return true
	default:
		return false
	}
}

// looksLikeTableRow reports whether the line contains at least two
// unescaped '|' characters, per spec §4.1's Markdown pipe-table heuristic.
func looksLikeTableRow(line []byte) bool {
	count := 0
	for i := 0; i < len(line); i++ {
		if line[i] == '\\' {
			i++
			continue
		}
		if line[i] == '|' {
			count++
		}
	}
	return count >= 2
}

var urlSchemes = []string{"http://", "https://", "ftp://", "mailto:"}

// isBareURL reports whether trimmed's entire non-whitespace content is a
// single URL (no other words on the line).
func isBareURL(trimmed string) bool {
	trimmed = strings.TrimSpace(trimmed)
	if strings.ContainsAny(trimmed, " \t") {
		return false
	}
	for _, scheme := range urlSchemes {
		if strings.HasPrefix(trimmed, scheme) {
			return true
		}
	}
	return false
}

// looksLikeFooterTag matches `^[A-Za-z][A-Za-z0-9-]*:[ \t]` at column 0.
func looksLikeFooterTag(line []byte) bool {
	i := 0
	if i >= len(line) || !isAlpha(line[i]) {
		return false
	}
	i++
	for i < len(line) && (isAlphaNum(line[i]) || line[i] == '-') {
		i++
	}
	if i >= len(line) || line[i] != ':' {
		return false
	}
	i++
	return i < len(line) && (line[i] == ' ' || line[i] == '\t')
}

// isAlpha and isAlphaNum match spec §3's footer pattern
// `^[A-Za-z][A-Za-z0-9-]*:[ \t]`, which is explicitly ASCII-only.
func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isAlphaNum(b byte) bool {
	return isAlpha(b) || (b >= '0' && b <= '9')
}
