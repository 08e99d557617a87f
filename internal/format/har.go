package format

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"

	"go.followtheprocess.codes/snip/internal/operation"
)

// HARImporter is an [Importer] that reads operations from an HTTP Archive (HAR),
// as saved by browser developer tools and most HTTP proxies.
//
// Each entry in the archive becomes one operation. Entries with a comment are named
// after it, others are named "<method>-<n>" where n is the entry's 1 based position.
type HARImporter struct{}

// Import implements [Importer] for [HARImporter].
func (h HARImporter) Import(r io.Reader) ([]operation.Operation, error) {
	var archive harFile
	if err := json.NewDecoder(r).Decode(&archive); err != nil {
		return nil, fmt.Errorf("could not decode HAR: %w", err)
	}

	operations := make([]operation.Operation, 0, len(archive.Log.Entries))

	for i, entry := range archive.Log.Entries {
		op, err := entry.operation(i + 1)
		if err != nil {
			return nil, fmt.Errorf("HAR entry #%d: %w", i+1, err)
		}

		operations = append(operations, op)
	}

	return operations, nil
}

// harFile is the top level of a HAR document, only the parts we need are modelled.
type harFile struct {
	Log harLog `json:"log"`
}

type harLog struct {
	Entries []harEntry `json:"entries"`
}

type harEntry struct {
	Comment  string      `json:"comment,omitempty"`
	Request  harRequest  `json:"request"`
	Response harResponse `json:"response"`
}

// harRequest contains the request description and content.
type harRequest struct {
	// Method of the HTTP request, in caps, GET/POST/etc
	Method string `json:"method"`

	// URL of the request (absolute), with fragments removed.
	URL string `json:"url"`

	// Headers sent with the request
	Headers []harNameValue `json:"headers"`

	// Body of the request (e.g. from a POST)
	PostData *harPostData `json:"postData,omitempty"`
}

// harPostData contains information about the body of a request.
type harPostData struct {
	// MIMEType of the body content
	MIMEType string `json:"mimeType"`

	// Content of the post as plain text (exclusive with Params)
	Text string `json:"text,omitempty"`

	// List of (parsed URL-encoded) parameters, exclusive with Text
	Params []harParam `json:"params,omitempty"`
}

// harParam is a POSTed name and value pair, possibly an uploaded file.
type harParam struct {
	Name        string `json:"name"`
	Value       string `json:"value,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

type harResponse struct {
	Headers []harNameValue `json:"headers"`
	Content harContent     `json:"content"`
	Status  int            `json:"status"`
}

type harContent struct {
	Text     string `json:"text,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

type harNameValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// operation converts the entry at position n into an [operation.Operation].
func (e harEntry) operation(n int) (operation.Operation, error) {
	if e.Request.Method == "" || e.Request.URL == "" {
		return operation.Operation{}, errors.New("request must have a method and url")
	}

	name := strings.TrimSpace(e.Comment)
	if name == "" {
		name = fmt.Sprintf("%s-%d", strings.ToLower(e.Request.Method), n)
	}

	if err := operation.ValidateName(name); err != nil {
		return operation.Operation{}, err
	}

	request := operation.Request{
		Method:     strings.ToUpper(e.Request.Method),
		URI:        e.Request.URL,
		Headers:    harHeaders(e.Request.Headers),
		Parameters: operation.ParseQuery(e.Request.URL),
	}

	if data := e.Request.PostData; data != nil {
		addPostData(&request, *data)
	}

	response, err := e.Response.response()
	if err != nil {
		return operation.Operation{}, err
	}

	return operation.Operation{
		Name:     name,
		Request:  request,
		Response: response,
	}, nil
}

// addPostData maps HAR post data onto the request.
//
// Form encoded data becomes parameters and multipart data becomes parts, anything
// else is the request body.
func addPostData(request *operation.Request, data harPostData) {
	mediaType, _, err := mime.ParseMediaType(data.MIMEType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(data.MIMEType))
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded" && len(data.Params) != 0:
		for _, param := range data.Params {
			request.Parameters.Add(unescape(param.Name), unescape(param.Value))
		}
	case mediaType == "application/x-www-form-urlencoded":
		for key, values := range operation.ParseQuery("?" + data.Text).All() {
			request.Parameters.Put(key, values...)
		}
	case strings.HasPrefix(mediaType, "multipart/") && len(data.Params) != 0:
		for _, param := range data.Params {
			request.Parts = append(request.Parts, operation.Part{
				Name:              param.Name,
				SubmittedFileName: param.FileName,
				ContentType:       param.ContentType,
				Content:           operation.Body(param.Value),
			})
		}
	default:
		request.Body = operation.Body(data.Text)
	}
}

func (r harResponse) response() (operation.Response, error) {
	body := operation.Body(r.Content.Text)

	if r.Content.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(r.Content.Text)
		if err != nil {
			return operation.Response{}, fmt.Errorf("could not decode base64 response content: %w", err)
		}

		body = decoded
	}

	return operation.Response{
		Status:  r.Status,
		Headers: harHeaders(r.Headers),
		Body:    body,
	}, nil
}

// harHeaders converts HAR headers, dropping HTTP/2 pseudo headers such as ":authority".
func harHeaders(pairs []harNameValue) operation.Headers {
	var headers operation.Headers
	for _, pair := range pairs {
		if strings.HasPrefix(pair.Name, ":") {
			continue
		}

		headers.Add(pair.Name, pair.Value)
	}

	return headers
}

// unescape percent decodes s, returning it unchanged if it's not validly encoded.
func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return decoded
}
