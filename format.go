package commitfmt

import (
	"io"

	"github.com/jcorbin/commitfmt/blocktree"
	"github.com/jcorbin/commitfmt/catline"
	"github.com/jcorbin/commitfmt/classify"
	"github.com/jcorbin/commitfmt/reflowfmt"
)

// Default width settings (spec §6).
const (
	DefaultBodyWidth     = 72
	DefaultHeadlineWidth = 50
)

// Options configures the whole pipeline; it is the configuration record the
// external CLI collaborator builds from command-line flags (spec §6).
type Options struct {
	BodyWidth     int
	HeadlineWidth int
	StripANSI     bool
	CRLF          bool
}

// WithDefaults returns a copy of opts with zero-valued width fields set to
// their spec defaults.
func (opts Options) WithDefaults() Options {
	if opts.BodyWidth <= 0 {
		opts.BodyWidth = DefaultBodyWidth
	}
	if opts.HeadlineWidth <= 0 {
		opts.HeadlineWidth = DefaultHeadlineWidth
	}
	return opts
}

// Format reads r to end-of-stream, classifies and reflows it per opts, and
// writes the result to w. It is a pure function of r's bytes and opts: no
// partial output is written before the whole input has been consumed and
// transformed (spec §5/§7).
func Format(r io.Reader, w io.Writer, opts Options) error {
	opts = opts.WithDefaults()

	lines, err := catline.Lex(r, catline.Options{
		BodyWidth: opts.BodyWidth,
		StripANSI: opts.StripANSI,
	})
	if err != nil {
		return err
	}

	classify.Refine(lines)

	doc := blocktree.Build(lines)

	return reflowfmt.Print(w, doc, reflowfmt.Options{
		BodyWidth:     opts.BodyWidth,
		HeadlineWidth: opts.HeadlineWidth,
		StripANSI:     opts.StripANSI,
		CRLF:          opts.CRLF,
	})
}
