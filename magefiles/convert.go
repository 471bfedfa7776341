//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and rewrites the document named by
// MD2LATEX_DOCUMENT (default main.tex) in place.
func Convert() error {
	mg.Deps(Build)

	doc := os.Getenv("MD2LATEX_DOCUMENT")
	if doc == "" {
		doc = "main.tex"
	}
	return sh.RunV(filepath.Join(binDir, binName), doc)
}
