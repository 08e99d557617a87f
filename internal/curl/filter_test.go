package curl

import (
	"testing"

	"go.followtheprocess.codes/test"
)

func TestAllowHeader(t *testing.T) {
	tests := []struct {
		name   string   // Name of the test case
		header string   // Header name
		values []string // Header values
		want   bool     // Whether the header should be allowed
	}{
		{name: "ordinary", header: "Accept", values: []string{"application/json"}, want: true},
		{name: "host", header: "Host", values: []string{"localhost"}, want: false},
		{name: "host lower", header: "host", values: []string{"localhost"}, want: false},
		{name: "content length", header: "Content-Length", values: []string{"12"}, want: false},
		{name: "content length upper", header: "CONTENT-LENGTH", values: []string{"12"}, want: false},
		{name: "content type", header: "Content-Type", values: []string{"text/plain"}, want: true},
		{name: "basic auth", header: "Authorization", values: []string{"Basic dXNlcjpzZWNyZXQ="}, want: false},
		{name: "basic auth lower", header: "authorization", values: []string{"Basic dXNlcjpzZWNyZXQ="}, want: false},
		{name: "bearer auth", header: "Authorization", values: []string{"Bearer token"}, want: true},
		{name: "empty auth", header: "Authorization", values: nil, want: true},
		{name: "basic only in second value", header: "Authorization", values: []string{"Bearer a", "Basic b"}, want: true},
		{name: "basic value on other header", header: "X-Auth", values: []string{"Basic dXNlcjpzZWNyZXQ="}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, allowHeader(tt.header, tt.values), tt.want)
		})
	}
}

func TestNamedFilter(t *testing.T) {
	filter := namedFilter("X-Secret")

	test.True(t, !filter("x-secret", nil))
	test.True(t, !filter("X-SECRET", []string{"a"}))
	test.True(t, filter("X-Secret-Other", nil))
}
