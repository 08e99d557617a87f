// Package operation provides the Operation type, the concrete, read-only snapshot
// of a single captured HTTP exchange, along with the ordered multimaps used to
// describe its headers and parameters.
//
// Operations are produced by the importers in package format and consumed by
// the snippet generators such as package curl. Nothing in this package performs
// I/O.
package operation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidName is returned when an operation name cannot be used as a relative path.
var ErrInvalidName = errors.New("invalid operation name")

// Operation is a single captured HTTP request/response exchange.
type Operation struct {
	// Name identifies the operation, it is used to work out where its
	// snippets are written.
	Name string

	// Request is the captured HTTP request.
	Request Request

	// Response is the captured HTTP response, the curl snippet ignores it.
	Response Response
}

// Request is a captured HTTP request.
type Request struct {
	// The HTTP method e.g. "GET"
	Method string

	// The complete request URI, including any query string
	URI string

	// Request headers in the order they were captured
	Headers Headers

	// Request body, empty for multipart requests whose content lives in Parts
	Body Body

	// Multipart parts, in the order they appear in the request
	Parts []Part

	// Request parameters, from the query string and any form encoded body
	Parameters Parameters
}

// ContentAsString returns the request body as text.
func (r Request) ContentAsString() string {
	return r.Body.String()
}

// IsPutOrPost reports whether the request uses the PUT or POST method.
func (r Request) IsPutOrPost() bool {
	return r.Method == http.MethodPut || r.Method == http.MethodPost
}

// Response is a captured HTTP response.
type Response struct {
	Headers Headers // Response headers in the order they were captured
	Body    Body    // The response body
	Status  int     // HTTP status code
}

// Part is a single part of a multipart request.
type Part struct {
	// Name of the part (the form field name)
	Name string

	// SubmittedFileName is the name of the file the part was uploaded from, empty
	// if the part is a plain form field.
	SubmittedFileName string

	// ContentType is the declared content type of the part, may be empty.
	ContentType string

	// Content of the part
	Content Body
}

// ContentAsString returns the content of the part as text.
func (p Part) ContentAsString() string {
	return p.Content.String()
}

// Body is a HTTP message body.
//
// It is equivalent to a []byte but has a custom implementation of
// [encoding.TextMarshaler] allowing a nicer format for serialisation.
type Body []byte //nolint:recvcheck // Receiver must differ to match encoding.TextMarshaler

// MarshalText implements [encoding.TextMarshaler] for [Body].
func (b Body) MarshalText() ([]byte, error) {
	return b, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Body].
func (b *Body) UnmarshalText(text []byte) error {
	*b = append((*b)[:0], text...)
	return nil
}

// String implements [fmt.Stringer] for [Body].
func (b Body) String() string {
	return string(b)
}

// HasText reports whether s contains at least one non whitespace character.
func HasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

// ValidateName reports whether name can be used to place an operation's snippets,
// returning an error wrapping [ErrInvalidName] if not.
//
// Names may use '/' to nest snippets in sub directories e.g. "notes/create", but
// must stay relative: no leading '/', no '\\' and no empty, "." or ".." segments.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case strings.ContainsRune(name, '\\'):
		return fmt.Errorf("%w: %q contains a backslash", ErrInvalidName, name)
	case strings.HasPrefix(name, "/"):
		return fmt.Errorf("%w: %q is an absolute path", ErrInvalidName, name)
	}

	for segment := range strings.SplitSeq(name, "/") {
		switch strings.TrimSpace(segment) {
		case "", ".", "..":
			return fmt.Errorf("%w: %q has an empty, '.' or '..' path segment", ErrInvalidName, name)
		}
	}

	return nil
}
