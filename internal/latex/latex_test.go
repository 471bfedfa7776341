// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/md2latex/pkg/types"
)

func TestSectioningFor(t *testing.T) {
	tests := []struct {
		style   types.HeadingStyle
		want    Sectioning
		wantErr bool
	}{
		{style: types.StyleBook, want: BookSectioning},
		{style: types.StyleArticle, want: ArticleSectioning},
		{style: "", want: BookSectioning},
		{style: "memoir", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			got, err := SectioningFor(tt.style)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_UnknownStyle(t *testing.T) {
	c, err := New("memoir")
	assert.Nil(t, c)
	assert.ErrorContains(t, err, "memoir")
}

func TestConverter_Convert(t *testing.T) {
	in := `# Introduction

This is **important** and *subtle*.

## Goals
- first goal
  - nested goal

---

#### Notes
\section{Already here}
`
	want := `\chapter{Introduction}

This is \textbf{important} and \textit{subtle}.

\section{Goals}
\item first goal
\item nested goal



\subsubsection{Notes}
\section{Already here}
`
	assert.Equal(t, want, Default().Convert(in))
}

func TestConverter_ConvertReport(t *testing.T) {
	c, err := New(types.StyleArticle)
	require.NoError(t, err)

	out, report := c.ConvertReport("# A\n## B\nbody\n")
	assert.Equal(t, "\\section{A}\n\\subsection{B}\nbody\n", out)
	assert.Equal(t, Report{Lines: 4, Headings: 2}, report)
}

func TestConverter_HeadingsBeforeEmphasis(t *testing.T) {
	// Emphasis inside a heading is rewritten after the heading is wrapped.
	assert.Equal(t, `\section{The \textit{real} goal}`, Default().Convert("## The *real* goal"))
}
