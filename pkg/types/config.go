// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HeadingStyle selects which LaTeX sectioning commands the four Markdown
// heading depths map to.
type HeadingStyle string

const (
	// StyleBook maps # to \chapter and #### to \subsubsection.
	StyleBook HeadingStyle = "book"
	// StyleArticle maps # to \section and #### to \paragraph.
	StyleArticle HeadingStyle = "article"
)

// Default values for ConversionConfig.
const (
	DefaultDocument     = "main.tex"
	DefaultBackupSuffix = "_backup"
	DefaultStyle        = StyleBook
)

// ConversionConfig holds settings for an in-place conversion run.
type ConversionConfig struct {
	// Document is the file rewritten when no paths are given (default "main.tex").
	Document string `json:"document" yaml:"document"`

	// Backup controls whether the prior contents are copied to a sibling
	// file before the overwrite (default true).
	Backup bool `json:"backup" yaml:"backup"`

	// BackupSuffix is inserted between the base name and the extension of
	// the backup file (default "_backup", giving main_backup.tex).
	BackupSuffix string `json:"backup_suffix" yaml:"backup_suffix"`

	// Style selects the sectioning commands: book or article.
	Style HeadingStyle `json:"style" yaml:"style"`
}

// DefaultConversionConfig returns the configuration used when no config
// file, environment variable, or flag overrides a value.
func DefaultConversionConfig() ConversionConfig {
	return ConversionConfig{
		Document:     DefaultDocument,
		Backup:       true,
		BackupSuffix: DefaultBackupSuffix,
		Style:        DefaultStyle,
	}
}
