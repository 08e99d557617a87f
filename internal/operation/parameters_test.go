package operation_test

import (
	"slices"
	"testing"

	"go.followtheprocess.codes/snip/internal/operation"
	"go.followtheprocess.codes/test"
)

func TestParametersAdd(t *testing.T) {
	var params operation.Parameters

	params.Add("b", "1")
	params.Add("a", "2")
	params.Add("b", "3")
	params.Put("empty")

	test.Equal(t, params.Len(), 3)
	test.True(t, params.Contains("empty"), test.Context("key added with no values should be present"))
	test.Equal(t, len(params.Get("empty")), 0)
	test.EqualFunc(t, params.Get("b"), []string{"1", "3"}, slices.Equal)

	var keys []string
	for key := range params.All() {
		keys = append(keys, key)
	}

	test.EqualFunc(t, keys, []string{"b", "a", "empty"}, slices.Equal)
}

func TestParametersNoAliasing(t *testing.T) {
	params := operation.NewParameters(operation.Entry{Name: "a", Values: []string{"1"}})

	got := params.Get("a")
	got[0] = "changed"

	test.EqualFunc(t, params.Get("a"), []string{"1"}, slices.Equal)

	clone := params.Clone()
	clone.Add("a", "2")

	test.EqualFunc(t, params.Get("a"), []string{"1"}, slices.Equal)
	test.EqualFunc(t, clone.Get("a"), []string{"1", "2"}, slices.Equal)
}

func TestParametersCopyIsIndependent(t *testing.T) {
	original := operation.NewParameters(operation.Entry{Name: "a", Values: []string{"1"}})

	copied := original
	copied.Add("a", "2")
	copied.Add("b", "3")

	test.Equal(t, original.Len(), 1)
	test.True(t, !original.Contains("b"), test.Context("key added to a copy leaked into the original"))
	test.EqualFunc(t, original.Get("a"), []string{"1"}, slices.Equal)
	test.Equal(t, original.Encode(), "a=1")

	test.Equal(t, copied.Len(), 2)
	test.Equal(t, copied.Encode(), "a=1&a=2&b=3")
}

func TestParametersEncode(t *testing.T) {
	tests := []struct {
		name    string            // Name of the test case
		want    string            // Expected query string
		entries []operation.Entry // Parameters to encode
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name: "insertion order",
			entries: []operation.Entry{
				{Name: "zebra", Values: []string{"1"}},
				{Name: "apple", Values: []string{"2", "3"}},
			},
			want: "zebra=1&apple=2&apple=3",
		},
		{
			name: "no values",
			entries: []operation.Entry{
				{Name: "flag"},
				{Name: "a", Values: []string{"b"}},
			},
			want: "flag=&a=b",
		},
		{
			name: "escaping",
			entries: []operation.Entry{
				{Name: "a b", Values: []string{"c&d", "é"}},
			},
			want: "a+b=c%26d&a+b=%C3%A9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := operation.NewParameters(tt.entries...)
			test.Equal(t, params.Encode(), tt.want)
		})
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name string            // Name of the test case
		uri  string            // URI to parse
		want []operation.Entry // Expected parameters
	}{
		{
			name: "no query",
			uri:  "http://localhost/things",
			want: []operation.Entry{},
		},
		{
			name: "simple",
			uri:  "http://localhost/things?a=1&b=2",
			want: []operation.Entry{
				{Name: "a", Values: []string{"1"}},
				{Name: "b", Values: []string{"2"}},
			},
		},
		{
			name: "repeated key",
			uri:  "http://localhost/things?b=1&a=2&b=3",
			want: []operation.Entry{
				{Name: "b", Values: []string{"1", "3"}},
				{Name: "a", Values: []string{"2"}},
			},
		},
		{
			name: "key without value",
			uri:  "http://localhost/things?flag&a=",
			want: []operation.Entry{
				{Name: "flag", Values: []string{}},
				{Name: "a", Values: []string{""}},
			},
		},
		{
			name: "percent encoded",
			uri:  "http://localhost/things?name=a+b%26c",
			want: []operation.Entry{
				{Name: "name", Values: []string{"a b&c"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := operation.ParseQuery(tt.uri).Entries()
			test.EqualFunc(t, got, tt.want, entriesEqual)
		})
	}
}

func entriesEqual(a, b []operation.Entry) bool {
	return slices.EqualFunc(a, b, func(x, y operation.Entry) bool {
		return x.Name == y.Name && slices.Equal(x.Values, y.Values)
	})
}
