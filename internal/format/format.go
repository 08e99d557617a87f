// Package format provides mechanisms for reading captured operations from, and
// writing them to, files on disk.
//
// Notably, the package provides the [Importer] and [Exporter] interfaces for doing this
// in a format-agnostic way.
//
// It also provides the built in importers and exporters: the canonical capture
// document as JSON, YAML or TOML, HTTP Archives (HAR) and curl snippets.
package format

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.followtheprocess.codes/snip/internal/operation"
	"go.followtheprocess.codes/snip/internal/snippet"
)

// Exporter is the interface defining a mechanism for exporting captured operations
// into an external format.
type Exporter interface {
	// Export exports the operations into an external format, written to w.
	Export(w io.Writer, operations []operation.Operation) error
}

// Importer is the interface defining a mechanism for importing captured operations
// from external formats.
type Importer interface {
	// Import reads the operations held in r.
	Import(r io.Reader) ([]operation.Operation, error)
}

// Extensions are the file extensions [ImporterFor] knows how to import.
//
//nolint:gochecknoglobals // Read only
var Extensions = []string{".json", ".yaml", ".yml", ".toml", ".har"}

// ImporterFor returns the [Importer] for the file at path, based on its extension.
func ImporterFor(path string) (Importer, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return JSONImporter{}, nil
	case ".yaml", ".yml":
		return YAMLImporter{}, nil
	case ".toml":
		return TOMLImporter{}, nil
	case ".har":
		return HARImporter{}, nil
	default:
		return nil, fmt.Errorf("no importer for %s files (%s)", ext, path)
	}
}

// ExporterFor returns the [Exporter] called name.
//
// The curl exporter renders snippets in snippetFormat, the others ignore it.
func ExporterFor(name string, snippetFormat snippet.Format) (Exporter, error) {
	switch name {
	case "json":
		return JSONExporter{}, nil
	case "yaml":
		return YAMLExporter{}, nil
	case "toml":
		return TOMLExporter{}, nil
	case "curl":
		return CurlExporter{Format: snippetFormat}, nil
	default:
		return nil, fmt.Errorf("invalid export format %q, allowed values are 'json', 'yaml', 'toml', 'curl'", name)
	}
}
