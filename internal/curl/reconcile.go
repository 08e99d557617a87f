package curl

import (
	"slices"

	"go.followtheprocess.codes/snip/internal/operation"
)

// UniqueParameters returns the request parameters that are not already part of
// the request URI's query string.
//
// A parameter whose key is absent from the query is kept whole. Otherwise only the
// values not already in the query (by exact string comparison) are kept, and the key
// is dropped if none remain. Key and value order follow the request parameters.
func UniqueParameters(request operation.Request) operation.Parameters {
	query := operation.ParseQuery(request.URI)

	var unique operation.Parameters

	for key, values := range request.Parameters.All() {
		if !query.Contains(key) {
			unique.Put(key, values...)
			continue
		}

		existing := query.Get(key)
		for _, value := range values {
			if !slices.Contains(existing, value) {
				unique.Add(key, value)
			}
		}
	}

	return unique
}
