// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the in-place Markdown-to-LaTeX rewrite of documents:
// read the whole file, optionally snapshot it, convert, and write it back.
package convert

import (
	"fmt"
	"io"

	"github.com/pdiddy/md2latex/internal/latex"
)

// Store is the whole-file document access the runner needs.
// *document.Store implements it.
type Store interface {
	Read(path string) (string, error)
	Write(path, text string) error
	Backup(path, suffix, text string) (string, error)
}

// Converter turns document text into LaTeX. *latex.Converter implements it.
type Converter interface {
	ConvertReport(text string) (string, latex.Report)
}

// Result holds the outcome of converting one document.
type Result struct {
	// Path is the document that was rewritten.
	Path string
	// BackupPath is the snapshot of the prior contents, empty when no
	// backup was taken.
	BackupPath string
	// Lines is the number of lines read.
	Lines int
	// Headings is the number of heading lines rewritten.
	Headings int
}

// Runner converts documents in place.
type Runner struct {
	Store     Store
	Converter Converter

	// Backup enables the sibling snapshot before each overwrite.
	Backup bool
	// BackupSuffix names the snapshot (see document.BackupPath).
	BackupSuffix string
}

// ConvertFile rewrites the document at path and prints two status lines to
// w. A read failure is returned before anything is written.
func (r *Runner) ConvertFile(path string, w io.Writer) (Result, error) {
	text, err := r.Store.Read(path)
	if err != nil {
		return Result{}, err
	}

	res := Result{Path: path}
	if r.Backup {
		dst, err := r.Store.Backup(path, r.BackupSuffix, text)
		if err != nil {
			return Result{}, err
		}
		res.BackupPath = dst
	}

	out, report := r.Converter.ConvertReport(text)
	res.Lines = report.Lines
	res.Headings = report.Headings

	if err := r.Store.Write(path, out); err != nil {
		return res, err
	}

	fmt.Fprintf(w, "Conversion complete! Check %s for results.\n", path)
	if res.BackupPath != "" {
		fmt.Fprintf(w, "A backup was saved as %s\n", res.BackupPath)
	} else {
		fmt.Fprintln(w, "No backup was written")
	}
	return res, nil
}

// ConvertPaths converts each path in order and stops at the first failure.
// Results for the documents converted before the failure are returned.
func (r *Runner) ConvertPaths(paths []string, w io.Writer) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		res, err := r.ConvertFile(p, w)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
