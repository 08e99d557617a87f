package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/snip/internal/curl"
	"go.followtheprocess.codes/snip/internal/operation"
	"go.followtheprocess.codes/snip/internal/snippet"
)

// CurlExporter is an [Exporter] that writes a curl snippet for every operation.
type CurlExporter struct {
	// Format is the markup the snippets are written in, the zero value
	// means [snippet.Asciidoctor].
	Format snippet.Format
}

// Export implements [Exporter] for [CurlExporter], snippets are separated by
// a blank line.
func (c CurlExporter) Export(w io.Writer, operations []operation.Operation) error {
	format := c.Format
	if format == "" {
		format = snippet.Asciidoctor
	}

	s := curl.NewSnippet(nil)

	for i, op := range operations {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if err := s.Render(w, op, format); err != nil {
			return err
		}
	}

	return nil
}
