// Command commitfmt-trace is a debug collaborator for commitfmt: it runs
// the lexer and classifier over standard input and dumps their
// intermediate state, either as a per-line trace to standard error
// (--debug-trace) or as a classification-overlay SVG (--debug-svg PATH).
// It is never imported by the commitfmt core (spec §1, §4.5).
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jcorbin/commitfmt"
	"github.com/jcorbin/commitfmt/catline"
	"github.com/jcorbin/commitfmt/classify"
)

func main() {
	var (
		width      = flag.Int("width", commitfmt.DefaultBodyWidth, "body wrap width in columns, used by the URL pattern")
		noANSI     = flag.Bool("no-ansi", false, "strip ANSI escapes before width measurement")
		debugTrace = flag.Bool("debug-trace", false, "emit classifier trace to standard error")
		debugSVG   = flag.String("debug-svg", "", "emit classification-overlay SVG to PATH")
		verbose    = flag.Bool("v", false, "also show each line's text and the final category's precedence rank")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("commitfmt-trace: ")

	lines, err := catline.Lex(os.Stdin, catline.Options{
		BodyWidth: *width,
		StripANSI: *noANSI,
	})
	if err != nil {
		log.Fatal(err)
	}
	classify.Refine(lines)

	if *debugSVG == "" {
		*debugTrace = true
	}

	if *debugTrace {
		writeTrace(os.Stderr, lines, *verbose)
	}

	if *debugSVG != "" {
		f, err := os.Create(*debugSVG)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := writeSVG(f, lines); err != nil {
			log.Fatal(err)
		}
	}
}
