package format

import (
	"errors"
	"fmt"

	"go.followtheprocess.codes/snip/internal/operation"
)

// Document is the canonical, serialisable form of a capture file.
type Document struct {
	// The captured operations, in order
	Operations []Capture `json:"operations" toml:"operations" yaml:"operations"`
}

// Capture is a single captured operation.
type Capture struct {
	// Name of the operation, used to work out where its snippets go
	Name string `json:"name" toml:"name" yaml:"name"`

	// The captured request
	Request CapturedRequest `json:"request" toml:"request" yaml:"request"`

	// The captured response, optional
	Response CapturedResponse `json:"response,omitzero" toml:"response,omitempty" yaml:"response,omitempty"`
}

// CapturedRequest is the serialisable form of [operation.Request].
type CapturedRequest struct {
	Method     string            `json:"method"               toml:"method"               yaml:"method"`
	URI        string            `json:"uri"                  toml:"uri"                  yaml:"uri"`
	Headers    []operation.Entry `json:"headers,omitempty"    toml:"headers,omitempty"    yaml:"headers,omitempty"`
	Body       operation.Body    `json:"body,omitempty"       toml:"body,omitempty"       yaml:"body,omitempty"`
	Parts      []CapturedPart    `json:"parts,omitempty"      toml:"parts,omitempty"      yaml:"parts,omitempty"`
	Parameters []operation.Entry `json:"parameters,omitempty" toml:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// CapturedPart is the serialisable form of [operation.Part].
type CapturedPart struct {
	Name        string         `json:"name"                  toml:"name"                  yaml:"name"`
	Filename    string         `json:"filename,omitempty"    toml:"filename,omitempty"    yaml:"filename,omitempty"`
	ContentType string         `json:"contentType,omitempty" toml:"contentType,omitempty" yaml:"contentType,omitempty"`
	Content     operation.Body `json:"content,omitempty"     toml:"content,omitempty"     yaml:"content,omitempty"`
}

// CapturedResponse is the serialisable form of [operation.Response].
type CapturedResponse struct {
	Headers []operation.Entry `json:"headers,omitempty" toml:"headers,omitempty" yaml:"headers,omitempty"`
	Body    operation.Body    `json:"body,omitempty"    toml:"body,omitempty"    yaml:"body,omitempty"`
	Status  int               `json:"status,omitempty"  toml:"status,omitempty"  yaml:"status,omitempty"`
}

// Validate reports whether the document describes usable operations, returning
// a non-nil error describing every problem if not.
func (d Document) Validate() error {
	var errs []error

	for i, capture := range d.Operations {
		if capture.Name == "" {
			errs = append(errs, fmt.Errorf("operation #%d has no name", i+1))
		} else if err := operation.ValidateName(capture.Name); err != nil {
			errs = append(errs, fmt.Errorf("operation #%d: %w", i+1, err))
		}

		if capture.Request.Method == "" {
			errs = append(errs, fmt.Errorf("operation #%d (%s) has no request method", i+1, capture.Name))
		}

		if capture.Request.URI == "" {
			errs = append(errs, fmt.Errorf("operation #%d (%s) has no request uri", i+1, capture.Name))
		}
	}

	return errors.Join(errs...)
}

// NewDocument builds the [Document] describing operations.
func NewDocument(operations []operation.Operation) Document {
	captures := make([]Capture, 0, len(operations))

	for _, op := range operations {
		var parts []CapturedPart
		for _, part := range op.Request.Parts {
			parts = append(parts, CapturedPart{
				Name:        part.Name,
				Filename:    part.SubmittedFileName,
				ContentType: part.ContentType,
				Content:     part.Content,
			})
		}

		captures = append(captures, Capture{
			Name: op.Name,
			Request: CapturedRequest{
				Method:     op.Request.Method,
				URI:        op.Request.URI,
				Headers:    op.Request.Headers.Entries(),
				Body:       op.Request.Body,
				Parts:      parts,
				Parameters: op.Request.Parameters.Entries(),
			},
			Response: CapturedResponse{
				Status:  op.Response.Status,
				Headers: op.Response.Headers.Entries(),
				Body:    op.Response.Body,
			},
		})
	}

	return Document{Operations: captures}
}

// ToOperations converts the document into operations.
func (d Document) ToOperations() []operation.Operation {
	operations := make([]operation.Operation, 0, len(d.Operations))

	for _, capture := range d.Operations {
		var parts []operation.Part
		for _, part := range capture.Request.Parts {
			parts = append(parts, operation.Part{
				Name:              part.Name,
				SubmittedFileName: part.Filename,
				ContentType:       part.ContentType,
				Content:           part.Content,
			})
		}

		operations = append(operations, operation.Operation{
			Name: capture.Name,
			Request: operation.Request{
				Method:     capture.Request.Method,
				URI:        capture.Request.URI,
				Headers:    operation.NewHeaders(capture.Request.Headers...),
				Body:       capture.Request.Body,
				Parts:      parts,
				Parameters: operation.NewParameters(capture.Request.Parameters...),
			},
			Response: operation.Response{
				Status:  capture.Response.Status,
				Headers: operation.NewHeaders(capture.Response.Headers...),
				Body:    capture.Response.Body,
			},
		})
	}

	return operations
}
