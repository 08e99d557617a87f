// Package curl turns captured HTTP operations into curl command lines.
//
// The command is split in two, the quoted URL and the options, so that the
// snippet template decides the final layout of the command. Options are always
// emitted in the same order:
//
//  1. -i, so the response headers are shown
//  2. -u, if the request carries a Basic credential
//  3. -X, if the method is not GET
//  4. -H for every header that passes the header filters
//  5. -F for every multipart part
//  6. the body, as -d or as -F form fields
//
// Values are single quoted verbatim, the output is documentation and is never
// executed.
package curl

import (
	"fmt"
	"maps"
	"net/http"
	"strings"

	"go.followtheprocess.codes/snip/internal/operation"
)

// Model is the data a curl snippet template is rendered with.
type Model struct {
	// Attributes are any additional values supplied by the caller, available
	// to templates alongside URL and Options.
	Attributes map[string]any

	// URL is the single quoted request URI.
	URL string

	// Options are the curl command line options, see the package docs.
	Options string
}

// NewModel builds the [Model] for op, including attributes.
func NewModel(op operation.Operation, attributes map[string]any) (Model, error) {
	options, err := Options(op.Request)
	if err != nil {
		return Model{}, fmt.Errorf("could not build curl options for %s: %w", op.Name, err)
	}

	return Model{
		URL:        URL(op.Request),
		Options:    options,
		Attributes: maps.Clone(attributes),
	}, nil
}

// URL returns the request URI, single quoted.
func URL(request operation.Request) string {
	return "'" + request.URI + "'"
}

// Options returns the curl options that reproduce request.
//
// The only failure is a Basic Authorization header that is not valid base64, in
// which case the returned error wraps [ErrMalformedCredential].
func Options(request operation.Request) (string, error) {
	command := &strings.Builder{}

	writeIncludeHeadersInOutput(command)

	if err := writeUserIfNecessary(command, request); err != nil {
		return "", err
	}

	writeMethodIfNecessary(command, request)
	writeHeaders(command, request.Headers)
	writeParts(command, request.Parts)
	writeContent(command, request)

	return command.String(), nil
}

func writeIncludeHeadersInOutput(command *strings.Builder) {
	command.WriteString("-i")
}

func writeUserIfNecessary(command *strings.Builder, request operation.Request) error {
	values := request.Headers.Get(authorization)
	if !IsBasicAuth(values) {
		return nil
	}

	credentials, err := DecodeBasicAuth(values)
	if err != nil {
		return err
	}

	fmt.Fprintf(command, " -u '%s'", credentials)

	return nil
}

func writeMethodIfNecessary(command *strings.Builder, request operation.Request) {
	if request.Method != http.MethodGet {
		fmt.Fprintf(command, " -X %s", request.Method)
	}
}

func writeHeaders(command *strings.Builder, headers operation.Headers) {
	for name, values := range headers.All() {
		if !allowHeader(name, values) {
			continue
		}

		for _, value := range values {
			fmt.Fprintf(command, " -H '%s: %s'", name, value)
		}
	}
}

func writeParts(command *strings.Builder, parts []operation.Part) {
	for _, part := range parts {
		fmt.Fprintf(command, " -F '%s=", part.Name)

		if operation.HasText(part.SubmittedFileName) {
			fmt.Fprintf(command, "@%s", part.SubmittedFileName)
		} else {
			command.WriteString(part.ContentAsString())
		}

		if part.ContentType != "" {
			command.WriteString(";type=")
			command.WriteString(part.ContentType)
		}

		command.WriteByte('\'')
	}
}

// writeContent writes the request body, the first of these that applies wins:
//
//   - the body text, as -d
//   - the raw request parameters as -F form fields, if the request is multipart
//   - the parameters not already in the query string as a single -d, for PUT and POST
func writeContent(command *strings.Builder, request operation.Request) {
	content := request.ContentAsString()

	switch {
	case operation.HasText(content):
		fmt.Fprintf(command, " -d '%s'", content)
	case len(request.Parts) != 0:
		for name, values := range request.Parameters.All() {
			for _, value := range values {
				fmt.Fprintf(command, " -F '%s=%s'", name, value)
			}
		}
	case request.IsPutOrPost():
		writeContentUsingParameters(command, request)
	}
}

func writeContentUsingParameters(command *strings.Builder, request operation.Request) {
	query := UniqueParameters(request).Encode()
	if operation.HasText(query) {
		fmt.Fprintf(command, " -d '%s'", query)
	}
}
