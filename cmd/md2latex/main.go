// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the md2latex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/md2latex/internal/convert"
	"github.com/pdiddy/md2latex/internal/document"
	"github.com/pdiddy/md2latex/internal/latex"
	"github.com/pdiddy/md2latex/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the md2latex CLI.
var rootCmd = &cobra.Command{
	Use:   "md2latex [documents...]",
	Short: "Rewrite Markdown headings and emphasis in a LaTeX document",
	Long: `md2latex rewrites leftover Markdown in a LaTeX source file in place:
# to #### headings become sectioning commands, **bold** and *italic* become
\textbf and \textit, "- " bullets become \item, and --- rules are removed.

With no arguments the configured document (default main.tex) is converted.
The previous contents are saved next to the file (main_backup.tex) unless
--no-backup is given.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conv, err := latex.New(cfg.Style)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.Document}
	}

	r := &convert.Runner{
		Store:        document.NewStore(afero.NewOsFs()),
		Converter:    conv,
		Backup:       cfg.Backup,
		BackupSuffix: cfg.BackupSuffix,
	}
	_, err = r.ConvertPaths(paths, cmd.OutOrStdout())
	return err
}

// loadConfig resolves the conversion settings from flags, environment,
// config file, and defaults, in viper's precedence order.
func loadConfig() (types.ConversionConfig, error) {
	cfg := types.ConversionConfig{
		Document:     viper.GetString("document"),
		Backup:       viper.GetBool("backup") && !viper.GetBool("no_backup"),
		BackupSuffix: viper.GetString("backup_suffix"),
		Style:        types.HeadingStyle(viper.GetString("style")),
	}
	if cfg.Document == "" {
		return cfg, fmt.Errorf("document path must not be empty")
	}
	if cfg.Backup && cfg.BackupSuffix == "" {
		return cfg, fmt.Errorf("backup_suffix must not be empty when backup is enabled")
	}
	if _, err := latex.SectioningFor(cfg.Style); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := types.DefaultConversionConfig()
	viper.SetDefault("document", defaults.Document)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./md2latex.yaml or ~/.config/md2latex/md2latex.yaml)")
	pf.Bool("backup", defaults.Backup, "save the prior contents next to each document before rewriting")
	pf.Bool("no-backup", false, "do not save the prior contents (same as --backup=false)")
	pf.String("backup-suffix", defaults.BackupSuffix, "suffix inserted before the extension of the backup file")
	pf.String("style", string(defaults.Style), "heading style: book (# is \\chapter) or article (# is \\section)")

	_ = viper.BindPFlag("backup", pf.Lookup("backup"))
	_ = viper.BindPFlag("no_backup", pf.Lookup("no-backup"))
	_ = viper.BindPFlag("backup_suffix", pf.Lookup("backup-suffix"))
	_ = viper.BindPFlag("style", pf.Lookup("style"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("md2latex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "md2latex"))
		}
	}

	viper.SetEnvPrefix("MD2LATEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
