// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex rewrites lightweight Markdown (hash headings, bold and italic
// markers, hyphen bullets, horizontal rules) into LaTeX markup.
//
// The rewrite is best-effort and pattern-local: headings are handled line by
// line first, then emphasis, bullets, and rules are substituted over the
// whole document. No document tree is built.
package latex

import (
	"fmt"
	"strings"

	"github.com/pdiddy/md2latex/pkg/types"
)

// Sectioning holds the LaTeX command names (without the leading backslash)
// for heading depths 1 through 4.
type Sectioning [4]string

// Sectioning presets for each supported heading style.
var (
	BookSectioning    = Sectioning{"chapter", "section", "subsection", "subsubsection"}
	ArticleSectioning = Sectioning{"section", "subsection", "subsubsection", "paragraph"}
)

// SectioningFor returns the sectioning commands for style.
func SectioningFor(style types.HeadingStyle) (Sectioning, error) {
	switch style {
	case types.StyleBook, "":
		return BookSectioning, nil
	case types.StyleArticle:
		return ArticleSectioning, nil
	default:
		return Sectioning{}, fmt.Errorf("unsupported heading style %q: use book or article", style)
	}
}

// Report summarizes a conversion.
type Report struct {
	// Lines is the number of lines in the input document.
	Lines int
	// Headings is the number of lines the heading pass rewrote.
	Headings int
}

// Converter runs the heading pass followed by the inline/block pass.
type Converter struct {
	sectioning Sectioning
}

// New returns a Converter for the given heading style.
func New(style types.HeadingStyle) (*Converter, error) {
	s, err := SectioningFor(style)
	if err != nil {
		return nil, err
	}
	return &Converter{sectioning: s}, nil
}

// Default returns a book-style Converter.
func Default() *Converter {
	return &Converter{sectioning: BookSectioning}
}

// Sectioning returns the commands this Converter emits.
func (c *Converter) Sectioning() Sectioning {
	return c.sectioning
}

// Convert rewrites text and returns the LaTeX result.
func (c *Converter) Convert(text string) string {
	out, _ := c.ConvertReport(text)
	return out
}

// ConvertReport is Convert plus a summary of what changed.
func (c *Converter) ConvertReport(text string) (string, Report) {
	out, n := rewriteHeadings(text, c.sectioning)
	report := Report{
		Lines:    strings.Count(text, "\n") + 1,
		Headings: n,
	}
	return ConvertInline(out), report
}
