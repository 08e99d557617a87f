package format

import (
	"encoding/json"
	"fmt"
	"io"

	"go.followtheprocess.codes/snip/internal/operation"
)

// JSONExporter is an [Exporter] that writes operations as a JSON capture document.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given operations
// as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, operations []operation.Operation) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(NewDocument(operations))
}

// JSONImporter is an [Importer] that reads operations from a JSON capture document.
type JSONImporter struct{}

// Import implements [Importer] for [JSONImporter] and imports the operations
// in the JSON document.
func (j JSONImporter) Import(r io.Reader) ([]operation.Operation, error) {
	var document Document

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("could not decode JSON: %w", err)
	}

	if err := document.Validate(); err != nil {
		return nil, err
	}

	return document.ToOperations(), nil
}
