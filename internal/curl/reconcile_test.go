package curl_test

import (
	"net/http"
	"slices"
	"testing"

	"go.followtheprocess.codes/snip/internal/curl"
	"go.followtheprocess.codes/snip/internal/operation"
	"go.followtheprocess.codes/test"
)

func TestUniqueParameters(t *testing.T) {
	tests := []struct {
		name       string               // Name of the test case
		uri        string               // Request URI
		parameters operation.Parameters // Request parameters
		want       []operation.Entry    // Expected unique parameters
	}{
		{
			name:       "no query",
			uri:        "http://localhost/foo",
			parameters: params("a", "1", "b", "2"),
			want: []operation.Entry{
				{Name: "a", Values: []string{"1"}},
				{Name: "b", Values: []string{"2"}},
			},
		},
		{
			name:       "novel and duplicate values",
			uri:        "http://localhost/foo?a=1&b=2",
			parameters: params("a", "1", "a", "3", "c", "4"),
			want: []operation.Entry{
				{Name: "a", Values: []string{"3"}},
				{Name: "c", Values: []string{"4"}},
			},
		},
		{
			name:       "all duplicates drops the key",
			uri:        "http://localhost/foo?a=1&a=2",
			parameters: params("a", "2", "a", "1", "b", "x"),
			want: []operation.Entry{
				{Name: "b", Values: []string{"x"}},
			},
		},
		{
			name:       "key without value in query is still present",
			uri:        "http://localhost/foo?a",
			parameters: params("a", "1"),
			want: []operation.Entry{
				{Name: "a", Values: []string{"1"}},
			},
		},
		{
			name:       "exact comparison",
			uri:        "http://localhost/foo?a=x%20y",
			parameters: params("a", "x y", "a", "x%20y"),
			want: []operation.Entry{
				{Name: "a", Values: []string{"x%20y"}},
			},
		},
		{
			name:       "order is not sorted",
			uri:        "http://localhost/foo?m=1",
			parameters: params("z", "1", "m", "2", "a", "3"),
			want: []operation.Entry{
				{Name: "z", Values: []string{"1"}},
				{Name: "m", Values: []string{"2"}},
				{Name: "a", Values: []string{"3"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := operation.Request{
				Method:     http.MethodPost,
				URI:        tt.uri,
				Parameters: tt.parameters,
			}

			got := curl.UniqueParameters(request).Entries()
			test.EqualFunc(t, got, tt.want, func(a, b []operation.Entry) bool {
				return slices.EqualFunc(a, b, func(x, y operation.Entry) bool {
					return x.Name == y.Name && slices.Equal(x.Values, y.Values)
				})
			})
		})
	}
}

func TestUniqueParametersDoesNotMutateRequest(t *testing.T) {
	request := operation.Request{
		Method:     http.MethodPost,
		URI:        "http://localhost/foo?a=1",
		Parameters: params("a", "1", "a", "2"),
	}

	unique := curl.UniqueParameters(request)
	unique.Add("a", "3")

	test.EqualFunc(t, request.Parameters.Get("a"), []string{"1", "2"}, slices.Equal)
}
