package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/snip/internal/operation"
)

// TOMLExporter is an [Exporter] that writes operations as a TOML capture document.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter] and exports the given operations
// as a complete TOML document.
func (t TOMLExporter) Export(w io.Writer, operations []operation.Operation) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(NewDocument(operations))
}

// TOMLImporter is an [Importer] that reads operations from a TOML capture document.
type TOMLImporter struct{}

// Import implements [Importer] for [TOMLImporter] and imports the operations
// in the TOML document.
func (t TOMLImporter) Import(r io.Reader) ([]operation.Operation, error) {
	var document Document

	meta, err := toml.NewDecoder(r).Decode(&document)
	if err != nil {
		return nil, fmt.Errorf("could not decode TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return nil, fmt.Errorf("could not decode TOML: unknown keys %s", strings.Join(keys, ", "))
	}

	if err := document.Validate(); err != nil {
		return nil, err
	}

	return document.ToOperations(), nil
}
