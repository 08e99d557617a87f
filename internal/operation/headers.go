package operation

import (
	"iter"
	"slices"
	"strings"
)

// Headers is an ordered, case insensitive multimap of HTTP header names to values.
//
// Unlike [net/http.Header], iteration order is the order in which headers were
// captured, and names keep the spelling they were first added with. The zero
// value is an empty Headers ready to use.
//
// Like [Parameters], mutation is copy on write and copies never share state.
type Headers struct {
	entries []Entry
}

// NewHeaders builds [Headers] from entries, merging entries whose names are
// equal ignoring case.
func NewHeaders(entries ...Entry) Headers {
	var headers Headers
	for _, entry := range entries {
		headers.Put(entry.Name, entry.Values...)
	}

	return headers
}

// Len returns the number of distinct header names.
func (h Headers) Len() int {
	return len(h.entries)
}

// Contains reports whether a header called name is present.
func (h Headers) Contains(name string) bool {
	return h.index(name) != -1
}

// Get returns a copy of the values for the header called name, nil if there
// is no such header.
func (h Headers) Get(name string) []string {
	i := h.index(name)
	if i == -1 {
		return nil
	}

	return slices.Clone(h.entries[i].Values)
}

// Add appends a value to the header called name.
func (h *Headers) Add(name, value string) {
	h.Put(name, value)
}

// Put appends values to the header called name, adding it if not yet present.
func (h *Headers) Put(name string, values ...string) {
	i := h.index(name)
	if i == -1 {
		h.entries = append(slices.Clip(h.entries), Entry{Name: name, Values: slices.Clone(values)})
		return
	}

	entries := slices.Clone(h.entries)
	entries[i].Values = append(slices.Clip(entries[i].Values), values...)
	h.entries = entries
}

// All returns an iterator over header names and their values in capture order.
//
// The yielded slices are copies.
func (h Headers) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, entry := range h.entries {
			if !yield(entry.Name, slices.Clone(entry.Values)) {
				return
			}
		}
	}
}

// Entries returns the headers as a list of [Entry], in capture order, nil if
// there are none.
func (h Headers) Entries() []Entry {
	if len(h.entries) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(h.entries))
	for name, values := range h.All() {
		entries = append(entries, Entry{Name: name, Values: values})
	}

	return entries
}

// index returns the position of the header called name, or -1.
func (h Headers) index(name string) int {
	return slices.IndexFunc(h.entries, func(entry Entry) bool {
		return strings.EqualFold(entry.Name, name)
	})
}
