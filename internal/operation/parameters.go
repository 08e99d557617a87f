package operation

import (
	"iter"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Entry is a single name and its ordered values, the serialisable form of
// one key in [Parameters] or [Headers].
type Entry struct {
	Name   string   `json:"name"             toml:"name"             yaml:"name"`
	Values []string `json:"values,omitempty" toml:"values,omitempty" yaml:"values,omitempty"`
}

// Parameters is an ordered multimap of request parameter names to their values.
//
// Keys are kept in the order they were first added and each key appears once,
// multiple values for the same key live under that key. The zero value is an
// empty Parameters ready to use.
//
// Mutation is copy on write, so a copied Parameters can be changed without
// affecting the one it was copied from.
type Parameters struct {
	values map[string][]string
	keys   []string
}

// NewParameters builds [Parameters] from entries, merging entries that share a name.
func NewParameters(entries ...Entry) Parameters {
	var params Parameters
	for _, entry := range entries {
		params.Put(entry.Name, entry.Values...)
	}

	return params
}

// Len returns the number of distinct keys.
func (p Parameters) Len() int {
	return len(p.keys)
}

// Contains reports whether key is present, even if it has no values.
func (p Parameters) Contains(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Get returns a copy of the values stored under key.
func (p Parameters) Get(key string) []string {
	return slices.Clone(p.values[key])
}

// Add appends a single value to key, adding the key if it's not yet present.
func (p *Parameters) Add(key, value string) {
	p.Put(key, value)
}

// Put appends values to key, adding the key if it's not yet present.
//
// Calling Put with no values still records the key.
func (p *Parameters) Put(key string, values ...string) {
	next := maps.Clone(p.values)
	if next == nil {
		next = make(map[string][]string)
	}

	existing, ok := next[key]
	if !ok {
		p.keys = append(slices.Clip(p.keys), key)
		existing = []string{}
	}

	next[key] = append(slices.Clip(existing), values...)
	p.values = next
}

// All returns an iterator over the keys and their values in insertion order.
//
// The yielded slices are copies.
func (p Parameters) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, key := range p.keys {
			if !yield(key, slices.Clone(p.values[key])) {
				return
			}
		}
	}
}

// Clone returns a deep copy of p that shares no state with it.
func (p Parameters) Clone() Parameters {
	return NewParameters(p.Entries()...)
}

// Entries returns the parameters as a list of [Entry], in insertion order, nil
// if there are none.
func (p Parameters) Entries() []Entry {
	if len(p.keys) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(p.keys))
	for key, values := range p.All() {
		entries = append(entries, Entry{Name: key, Values: values})
	}

	return entries
}

// Encode renders the parameters as a URL encoded query string.
//
// Unlike [url.Values.Encode], keys are not sorted, they appear in insertion order.
// A key with no values is rendered as "key=".
func (p Parameters) Encode() string {
	builder := &strings.Builder{}

	write := func(key, value string) {
		if builder.Len() > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(value))
	}

	for _, key := range p.keys {
		values := p.values[key]
		if len(values) == 0 {
			write(key, "")
			continue
		}

		for _, value := range values {
			write(key, value)
		}
	}

	return builder.String()
}

// ParseQuery parses the query component of uri into [Parameters].
//
// Keys keep the order of their first appearance and values are percent decoded,
// with '+' decoded as a space. A key given without '=' is present with no values.
// Pairs that fail to decode are skipped, as is everything if uri cannot be parsed.
func ParseQuery(uri string) Parameters {
	var params Parameters

	parsed, err := url.Parse(uri)
	if err != nil {
		return params
	}

	for pair := range strings.SplitSeq(parsed.RawQuery, "&") {
		if pair == "" {
			continue
		}

		rawKey, rawValue, hasValue := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}

		if !hasValue {
			params.Put(key)
			continue
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		params.Add(key, value)
	}

	return params
}
