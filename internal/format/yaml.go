package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/snip/internal/operation"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes operations as a YAML capture document.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given operations as
// a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, operations []operation.Operation) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(NewDocument(operations)); err != nil {
		return fmt.Errorf("could not encode YAML: %w", err)
	}

	return encoder.Close()
}

// YAMLImporter is an [Importer] that reads operations from a YAML capture document.
type YAMLImporter struct{}

// Import implements [Importer] for [YAMLImporter] and imports the operations
// in the YAML document.
func (y YAMLImporter) Import(r io.Reader) ([]operation.Operation, error) {
	var document Document

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("could not decode YAML: %w", err)
	}

	if err := document.Validate(); err != nil {
		return nil, err
	}

	return document.ToOperations(), nil
}
