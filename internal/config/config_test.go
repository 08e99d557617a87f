package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.followtheprocess.codes/snip/internal/config"
	"go.followtheprocess.codes/test"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("", nil)
	test.Ok(t, err)

	test.Equal(t, cfg.OutputDir, "")
	test.Equal(t, cfg.OperationDir, "{operation-name}")
	test.Equal(t, cfg.Format, "adoc")
	test.Equal(t, cfg.Encoding, "UTF-8")
	test.Equal(t, len(cfg.Operations), 0)
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	src := "output-dir: build/snippets\nformat: md\noperations:\n  - create-note\n  - list-notes\n"
	test.Ok(t, os.WriteFile(filepath.Join(dir, config.DefaultFile), []byte(src), 0o644))

	cfg, err := config.Load("", nil)
	test.Ok(t, err)

	test.Equal(t, cfg.OutputDir, "build/snippets")
	test.Equal(t, cfg.Format, "md")
	test.Equal(t, cfg.OperationDir, "{operation-name}") // Default survives
	test.EqualFunc(t, cfg.Operations, []string{"create-note", "list-notes"}, slices.Equal)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	src := "output-dir: from-file\nencoding: ISO-8859-1\noperation-dir: '{operation_name}'\n"
	test.Ok(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := config.Load(path, map[string]any{
		config.KeyOutputDir:  "from-flag",
		config.KeyEncoding:   "",         // Unset flag, file wins
		config.KeyOperations: []string{}, // Likewise
		config.KeyFormat:     "markdown",
	})
	test.Ok(t, err)

	test.Equal(t, cfg.OutputDir, "from-flag")
	test.Equal(t, cfg.Encoding, "ISO-8859-1")
	test.Equal(t, cfg.OperationDir, "{operation_name}")
	test.Equal(t, cfg.Format, "markdown")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	test.Err(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snip.yaml")
	test.Ok(t, os.WriteFile(path, []byte("format: html\n"), 0o644))

	_, err := config.Load(path, nil)
	test.Err(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string        // Name of the test case
		cfg     config.Config // Config under test
		wantErr bool          // Whether we want an error
	}{
		{
			name: "default",
			cfg:  config.Default(),
		},
		{
			name: "empty operation dir",
			cfg: config.Config{
				Format:   "adoc",
				Encoding: "UTF-8",
			},
			wantErr: true,
		},
		{
			name: "bad format",
			cfg: config.Config{
				OperationDir: "{operation-name}",
				Format:       "pdf",
				Encoding:     "UTF-8",
			},
			wantErr: true,
		},
		{
			name: "missing encoding",
			cfg: config.Config{
				OperationDir: "{operation-name}",
				Format:       "md",
			},
			wantErr: true,
		},
		{
			name: "blank operation",
			cfg: config.Config{
				OperationDir: "{operation-name}",
				Format:       "md",
				Encoding:     "UTF-8",
				Operations:   []string{"one", " "},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.WantErr(t, tt.cfg.Validate(), tt.wantErr)
		})
	}
}
