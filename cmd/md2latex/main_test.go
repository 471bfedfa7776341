// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/md2latex/pkg/types"
)

// resetFlags puts every persistent flag back to its default so that flag
// values from one Execute do not leak into the next.
func resetFlags(t *testing.T) {
	t.Helper()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() {
		resetFlags(t)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommand_Defaults(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)

	var cfg types.ConversionConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, types.DefaultConversionConfig(), cfg)
}

func TestRootCommand_ConvertsDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tex")
	require.NoError(t, os.WriteFile(path, []byte("## Methods\n- *fast*\n"), 0o644))

	out, err := execute(t, "--style", "article", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\\subsection{Methods}\n\\item \\textit{fast}\n", string(data))

	backup := filepath.Join(dir, "main_backup.tex")
	assert.FileExists(t, backup)
	assert.Contains(t, out, "Conversion complete! Check "+path+" for results.")
	assert.Contains(t, out, "A backup was saved as "+backup)
}

func TestRootCommand_MissingDocument(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "absent.tex"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommand_UnknownStyle(t *testing.T) {
	_, err := execute(t, "config", "--style", "memoir")
	assert.ErrorContains(t, err, "memoir")
}

func TestConfigCommand_NoBackup(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "default", args: []string{"config"}, want: true},
		{name: "no-backup", args: []string{"config", "--no-backup"}, want: false},
		{name: "backup=false", args: []string{"config", "--backup=false"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			var cfg types.ConversionConfig
			require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
			assert.Equal(t, tt.want, cfg.Backup)
		})
	}
}

func TestRootCommand_NoBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tex")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0o644))

	out, err := execute(t, "--no-backup", path)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "main_backup.tex"))
	assert.Contains(t, out, "No backup was written")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\\chapter{Title}\n", string(data))
}

func TestConfigCommand_FlagsDoNotLeak(t *testing.T) {
	_, err := execute(t, "config", "--style", "memoir")
	require.Error(t, err)

	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "style: book")
}

func TestConfigFlagUsage(t *testing.T) {
	usage := rootCmd.PersistentFlags().Lookup("config").Usage
	assert.Contains(t, usage, "~/.config/md2latex/md2latex.yaml")
}
