package format_test

import (
	"bytes"
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.followtheprocess.codes/snapshot"
	"go.followtheprocess.codes/snip/internal/curl"
	"go.followtheprocess.codes/snip/internal/format"
	"go.followtheprocess.codes/snip/internal/operation"
	"go.followtheprocess.codes/snip/internal/snippet"
	"go.followtheprocess.codes/test"
)

var (
	update = flag.Bool("update", false, "Update snapshots")
	clean  = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func TestImporterFor(t *testing.T) {
	tests := []struct {
		path    string // File path
		wantErr bool   // Whether we want an error
	}{
		{path: "capture.json"},
		{path: "capture.yaml"},
		{path: "capture.YML"},
		{path: "capture.toml"},
		{path: "capture.har"},
		{path: "capture.http", wantErr: true},
		{path: "capture", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := format.ImporterFor(tt.path)
			test.WantErr(t, err, tt.wantErr)
		})
	}
}

func TestExporterFor(t *testing.T) {
	for _, name := range []string{"json", "yaml", "toml", "curl"} {
		_, err := format.ExporterFor(name, snippet.Asciidoctor)
		test.Ok(t, err, test.Context("ExporterFor(%q)", name))
	}

	_, err := format.ExporterFor("postman", snippet.Asciidoctor)
	test.Err(t, err)
}

func TestYAMLImport(t *testing.T) {
	operations := importFile(t, filepath.Join("testdata", "widgets.yaml"))

	test.Equal(t, len(operations), 2)

	widget := operations[0]
	test.Equal(t, widget.Name, "create-widget")
	test.Equal(t, widget.Request.Method, http.MethodPut)
	test.Equal(t, widget.Response.Status, http.StatusCreated)
	test.EqualFunc(t, widget.Request.Parameters.Get("type"), []string{"a", "b"}, slices.Equal)

	image := operations[1]
	test.Equal(t, len(image.Request.Parts), 2)
	test.Equal(t, image.Request.Parts[0].SubmittedFileName, "example.png")
	test.Equal(t, image.Request.Parts[1].ContentAsString(), "A nice picture")

	test.EqualFunc(t, curlOptions(t, operations), []string{
		"-i -X PUT -H 'Content-Type: application/x-www-form-urlencoded' -d 'qty=5&type=b'",
		"-i -u 'user:secret' -X POST -F 'image=@example.png;type=image/png' -F 'caption=A nice picture'",
	}, slices.Equal)
}

func TestHARImport(t *testing.T) {
	operations := importFile(t, filepath.Join("testdata", "capture.har"))

	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, op.Name)
	}

	test.EqualFunc(t, names, []string{"list-notes", "post-2", "upload", "create-note"}, slices.Equal)

	test.Equal(t, operations[0].Response.Body.String(), "[]")
	test.True(t, !operations[0].Request.Headers.Contains(":authority"))
	test.EqualFunc(t, operations[1].Request.Parameters.Get("user"), []string{"jane doe"}, slices.Equal)

	test.EqualFunc(t, curlOptions(t, operations), []string{
		"-i -H 'Accept: application/json' -H 'Authorization: Bearer abc'",
		"-i -X POST -H 'Content-Type: application/x-www-form-urlencoded' -d 'user=jane+doe'",
		"-i -X POST -F 'file=@notes.txt;type=text/plain' -F 'label=misc'",
		`-i -X POST -H 'Content-Type: application/json' -d '{"title":"hi"}'`,
	}, slices.Equal)
}

func TestHARImportInvalid(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // HAR document
	}{
		{name: "not json", src: "not json"},
		{name: "missing url", src: `{"log": {"entries": [{"request": {"method": "GET"}}]}}`},
		{
			name: "comment escapes output dir",
			src:  `{"log": {"entries": [{"comment": "../../x", "request": {"method": "GET", "url": "http://x"}}]}}`,
		},
		{
			name: "bad base64 response",
			src:  `{"log": {"entries": [{"request": {"method": "GET", "url": "http://x"}, "response": {"content": {"text": "!!", "encoding": "base64"}}}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := format.HARImporter{}.Import(strings.NewReader(tt.src))
			test.Err(t, err)
		})
	}
}

func TestImportValidation(t *testing.T) {
	tests := []struct {
		name     string          // Name of the test case
		src      string          // Document source
		importer format.Importer // Importer to use
	}{
		{
			name:     "json unknown field",
			importer: format.JSONImporter{},
			src:      `{"operations": [{"name": "a", "request": {"method": "GET", "uri": "/"}, "extra": true}]}`,
		},
		{
			name:     "json missing name",
			importer: format.JSONImporter{},
			src:      `{"operations": [{"request": {"method": "GET", "uri": "/"}}]}`,
		},
		{
			name:     "yaml unknown field",
			importer: format.YAMLImporter{},
			src:      "operations:\n  - name: a\n    nope: true\n",
		},
		{
			name:     "yaml missing method",
			importer: format.YAMLImporter{},
			src:      "operations:\n  - name: a\n    request:\n      uri: /\n",
		},
		{
			name:     "toml unknown key",
			importer: format.TOMLImporter{},
			src:      "[[operations]]\nname = \"a\"\nwhat = 1\n[operations.request]\nmethod = \"GET\"\nuri = \"/\"\n",
		},
		{
			name:     "toml missing uri",
			importer: format.TOMLImporter{},
			src:      "[[operations]]\nname = \"a\"\n[operations.request]\nmethod = \"GET\"\n",
		},
		{
			name:     "yaml name escapes output dir",
			importer: format.YAMLImporter{},
			src:      "operations:\n  - name: ../../x\n    request:\n      method: GET\n      uri: /\n",
		},
		{
			name:     "json absolute name",
			importer: format.JSONImporter{},
			src:      `{"operations": [{"name": "/etc/x", "request": {"method": "GET", "uri": "/"}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.importer.Import(strings.NewReader(tt.src))
			test.Err(t, err)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original := importFile(t, filepath.Join("testdata", "widgets.yaml"))

	tests := []struct {
		exporter format.Exporter // Exporter under test
		importer format.Importer // The matching importer
		name     string          // Name of the test case
	}{
		{name: "json", exporter: format.JSONExporter{}, importer: format.JSONImporter{}},
		{name: "yaml", exporter: format.YAMLExporter{}, importer: format.YAMLImporter{}},
		{name: "toml", exporter: format.TOMLExporter{}, importer: format.TOMLImporter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			test.Ok(t, tt.exporter.Export(buf, original))

			got, err := tt.importer.Import(buf)
			test.Ok(t, err)

			test.EqualFunc(t, curlOptions(t, got), curlOptions(t, original), slices.Equal)
			test.Equal(t, got[0].Response.Status, original[0].Response.Status)
			test.EqualFunc(t, got[0].Response.Headers.Get("Location"), []string{"http://api.test/widgets/1"}, slices.Equal)
		})
	}
}

func TestJSONExport(t *testing.T) {
	operations := []operation.Operation{
		{
			Name: "get-thing",
			Request: operation.Request{
				Method: http.MethodGet,
				URI:    "http://localhost/thing",
				Headers: operation.NewHeaders(
					operation.Entry{Name: "Accept", Values: []string{"text/plain"}},
				),
			},
		},
	}

	buf := &bytes.Buffer{}
	test.Ok(t, format.JSONExporter{}.Export(buf, operations))

	want := `{
  "operations": [
    {
      "name": "get-thing",
      "request": {
        "method": "GET",
        "uri": "http://localhost/thing",
        "headers": [
          {
            "name": "Accept",
            "values": [
              "text/plain"
            ]
          }
        ]
      }
    }
  ]
}
`

	test.Diff(t, buf.String(), want)
}

func TestCurlExporter(t *testing.T) {
	operations := importFile(t, filepath.Join("testdata", "capture.har"))

	tests := []struct {
		name   string         // Name of the test case
		format snippet.Format // Snippet format
	}{
		{name: "asciidoctor", format: snippet.Asciidoctor},
		{name: "markdown", format: snippet.Markdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshot.New(
				t,
				snapshot.Update(*update),
				snapshot.Clean(*clean),
				snapshot.Color(os.Getenv("CI") == ""),
			)

			buf := &bytes.Buffer{}
			test.Ok(t, format.CurlExporter{Format: tt.format}.Export(buf, operations))

			snap.Snap(buf.String())
		})
	}
}

func TestCurlExporterSeparatesSnippets(t *testing.T) {
	operations := []operation.Operation{
		{Name: "one", Request: operation.Request{Method: http.MethodGet, URI: "http://localhost/1"}},
		{Name: "two", Request: operation.Request{Method: http.MethodDelete, URI: "http://localhost/2"}},
	}

	buf := &bytes.Buffer{}
	test.Ok(t, format.CurlExporter{}.Export(buf, operations))

	want := "[source,bash]\n----\n$ curl 'http://localhost/1' -i\n----\n\n" +
		"[source,bash]\n----\n$ curl 'http://localhost/2' -i -X DELETE\n----\n"

	test.Diff(t, buf.String(), want)
}

// importFile imports the operations in the file at path, failing the test on error.
func importFile(tb testing.TB, path string) []operation.Operation {
	tb.Helper()

	importer, err := format.ImporterFor(path)
	test.Ok(tb, err)

	f, err := os.Open(path)
	test.Ok(tb, err)

	defer f.Close()

	operations, err := importer.Import(f)
	test.Ok(tb, err)

	return operations
}

// curlOptions returns the curl options for each operation, failing the test on error.
func curlOptions(tb testing.TB, operations []operation.Operation) []string {
	tb.Helper()

	options := make([]string, 0, len(operations))

	for _, op := range operations {
		got, err := curl.Options(op.Request)
		test.Ok(tb, err)

		options = append(options, got)
	}

	return options
}
