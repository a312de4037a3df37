// Command commitfmt reads a Git commit message on standard input and
// writes a reflowed version to standard output. Classification-overlay
// debugging lives in the separate commitfmt-trace binary; this one never
// imports it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jcorbin/commitfmt"
	"github.com/jcorbin/commitfmt/internal/ioutil"
)

var version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("commitfmt: ")

	var (
		width         = flag.Int("width", commitfmt.DefaultBodyWidth, "body wrap width in columns")
		headlineWidth = flag.Int("headline-width", commitfmt.DefaultHeadlineWidth, "advisory headline width in columns")
		noANSI        = flag.Bool("no-ansi", false, "strip ANSI escapes before width measurement")
		showVersion   = flag.Bool("version", false, "print version and exit")
	)
	flag.IntVar(width, "w", commitfmt.DefaultBodyWidth, "shorthand for -width")
	flag.Usage = usage

	flag.Parse()

	if *showVersion {
		fmt.Println("commitfmt", version)
		os.Exit(0)
	}

	if *width < 1 || *headlineWidth < 1 {
		fmt.Fprintln(os.Stderr, "commitfmt: width and headline-width must be positive integers")
		usage()
		os.Exit(2)
	}
	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "commitfmt: unexpected arguments:", flag.Args())
		usage()
		os.Exit(2)
	}

	opts := commitfmt.Options{
		BodyWidth:     *width,
		HeadlineWidth: *headlineWidth,
		StripANSI:     *noANSI,
	}

	out := &ioutil.ErrWriter{Writer: os.Stdout}

	if err := commitfmt.Format(os.Stdin, out, opts); err != nil {
		log.Fatal(err)
	}
	if out.Err != nil {
		log.Fatal(out.Err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: commitfmt [flags] < message > formatted")
	flag.PrintDefaults()
}
