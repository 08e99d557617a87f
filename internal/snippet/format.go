package snippet

import "fmt"

// Format is the markup language a snippet is rendered in.
type Format string

const (
	// Asciidoctor renders snippets as AsciiDoc, written to ".adoc" files.
	Asciidoctor Format = "adoc"

	// Markdown renders snippets as Markdown, written to ".md" files.
	Markdown Format = "md"
)

// ParseFormat returns the [Format] called name.
//
// The long names "asciidoctor" and "markdown" are accepted too, the empty
// string means [Asciidoctor].
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "adoc", "asciidoc", "asciidoctor":
		return Asciidoctor, nil
	case "md", "markdown":
		return Markdown, nil
	default:
		return "", fmt.Errorf("unknown snippet format %q, allowed values are 'adoc', 'md'", name)
	}
}

// FileName returns the name of the file a snippet called name is written to.
func (f Format) FileName(name string) string {
	return name + "." + string(f)
}
