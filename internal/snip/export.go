package snip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.followtheprocess.codes/snip/internal/format"
	"go.followtheprocess.codes/snip/internal/snippet"
)

// ExportOptions are the flags passed to the export subcommand.
type ExportOptions struct {
	// Format is the format of the export e.g. json, curl etc.
	Format string

	// SnippetFormat is the markup used by the curl export, adoc or md.
	SnippetFormat string

	// Operations is the list of operation names to export, empty or nil means
	// export all operations from the file.
	Operations []string

	// Debug controls debug logging.
	Debug bool
}

// Validate reports whether the ExportOptions is valid, returning a non-nil
// error if it's not.
func (e ExportOptions) Validate() error {
	switch f := e.Format; f {
	case "json", "yaml", "toml", "curl":
	default:
		return fmt.Errorf("invalid option for --format %q, allowed values are 'json', 'yaml', 'toml', 'curl'", f)
	}

	if _, err := snippet.ParseFormat(e.SnippetFormat); err != nil {
		return fmt.Errorf("invalid option for --snippet-format: %w", err)
	}

	return nil
}

// Export handles the export subcommand.
func (s Snip) Export(ctx context.Context, file string, options ExportOptions) error {
	if err := options.Validate(); err != nil {
		return err
	}

	logger := s.logger.Prefixed("export")

	logger.Debug("Export configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	start := time.Now()

	operations, err := loadFile(file)
	if err != nil {
		return err
	}

	logger.Debug("Loaded file successfully", slog.String("file", file), slog.Duration("took", time.Since(start)))

	toExport, err := filter(operations, options.Operations)
	if err != nil {
		return fmt.Errorf("%w in %s", err, file)
	}

	logger.Debug("Filtered operations to export", slog.Int("count", len(toExport)))

	snippetFormat, err := snippet.ParseFormat(options.SnippetFormat)
	if err != nil {
		return err
	}

	exporter, err := format.ExporterFor(options.Format, snippetFormat)
	if err != nil {
		return err
	}

	if err := exporter.Export(s.stdout, toExport); err != nil {
		return fmt.Errorf("could not export %s as %s: %w", file, options.Format, err)
	}

	return nil
}
