package curl

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"

	"go.followtheprocess.codes/snip/internal/operation"
	"go.followtheprocess.codes/snip/internal/snippet"
)

// SnippetName is the name of the curl snippet, it determines the name of the
// file it's written to e.g. "curl-request.adoc".
const SnippetName = "curl-request"

var (
	//go:embed templates/curl-request.adoc.tmpl
	adocTempl string

	//go:embed templates/curl-request.md.tmpl
	markdownTempl string
)

// templates are the parsed curl snippet templates, keyed by format.
//
//nolint:gochecknoglobals // Having the templates as a global means they're parsed only once
var templates = map[snippet.Format]*template.Template{
	snippet.Asciidoctor: template.Must(template.New(SnippetName + ".adoc").Parse(adocTempl)),
	snippet.Markdown:    template.Must(template.New(SnippetName + ".md").Parse(markdownTempl)),
}

// Snippet documents the curl command for an operation's request.
type Snippet struct {
	attributes map[string]any
}

// NewSnippet returns a new [Snippet], attributes are made available to the
// template as .Attributes.
func NewSnippet(attributes map[string]any) Snippet {
	return Snippet{attributes: attributes}
}

// Name returns the name of the snippet.
func (s Snippet) Name() string {
	return SnippetName
}

// FileName returns the name of the file the snippet is written to in format.
func (s Snippet) FileName(format snippet.Format) string {
	return format.FileName(SnippetName)
}

// Render writes the curl snippet for op to w in the given format.
func (s Snippet) Render(w io.Writer, op operation.Operation, format snippet.Format) error {
	tmpl, ok := templates[format]
	if !ok {
		return fmt.Errorf("no curl template for format %q", format)
	}

	model, err := NewModel(op, s.attributes)
	if err != nil {
		return err
	}

	if err := tmpl.Execute(w, model); err != nil {
		return fmt.Errorf("could not render curl snippet for %s: %w", op.Name, err)
	}

	return nil
}
