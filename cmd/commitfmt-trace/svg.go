package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/commitfmt/catline"
)

const (
	svgRowHeight  = 14
	svgCharWidth  = 7
	svgIndentUnit = 2
)

// categoryColor assigns each Category a fixed color for the overlay, so a
// reader can scan the SVG and visually group same-category runs.
func categoryColor(cat catline.Category) string {
	switch cat {
	case catline.Headline:
		return "#1f77b4"
	case catline.Footer:
		return "#9467bd"
	case catline.Code:
		return "#2ca02c"
	case catline.Table:
		return "#17becf"
	case catline.ListItem:
		return "#ff7f0e"
	case catline.ListContinuation:
		return "#ffbb78"
	case catline.BlockQuote:
		return "#8c564b"
	case catline.Comment:
		return "#7f7f7f"
	case catline.URL:
		return "#e377c2"
	case catline.ProseIntroduction:
		return "#bcbd22"
	case catline.ProseGeneral:
		return "#aec7e8"
	default: // Empty
		return "#f0f0f0"
	}
}

// writeSVG renders one colored row per input line: color keyed by final
// category, width proportional to indent plus content length (spec §4.5).
// It uses only manual tag writing — no SVG/graphics dependency, see
// DESIGN.md for why this stays on the standard library.
func writeSVG(w io.Writer, lines []catline.CatLine) error {
	height := len(lines)*svgRowHeight + svgRowHeight
	maxWidth := 0
	for _, cl := range lines {
		if w := cl.Indent*svgIndentUnit + len(cl.Text())*svgCharWidth; w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth < 1 {
		maxWidth = 1
	}

	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		maxWidth, height, maxWidth, height); err != nil {
		return err
	}

	for i, cl := range lines {
		y := i * svgRowHeight
		rectWidth := cl.Indent*svgIndentUnit + len(cl.Text())*svgCharWidth
		if rectWidth < 1 {
			rectWidth = 1
		}
		// Final.String() is always one of the fixed Category names, so no
		// XML escaping is needed for the title text.
		if _, err := fmt.Fprintf(w,
			"  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\"><title>%d: %s</title></rect>\n",
			cl.Indent*svgIndentUnit, y, rectWidth, svgRowHeight-1, categoryColor(cl.Final), cl.LineNumber, cl.Final); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</svg>\n")
	return err
}
