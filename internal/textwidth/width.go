// Package textwidth measures the on-screen column width of text the way a
// terminal would: grapheme-cluster aware, East-Asian-Width aware, with an
// option to strip ANSI escape sequences before measuring.
package textwidth

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Width returns the measured column width of s. When stripANSI is true, any
// CSI/SGR escape sequences are stripped before measuring; otherwise they
// count toward the width like any other bytes (incorrectly, by design: a
// caller that wants correct measurement of escape-decorated text must pass
// stripANSI true).
func Width(s string, stripANSI bool) int {
	if stripANSI {
		s = ansi.Strip(s)
	}
	return uniseg.StringWidth(s)
}
