package curl

import "strings"

// HeaderFilter reports whether a header with the given name and values should
// appear in a curl command.
type HeaderFilter func(name string, values []string) bool

// headerFilters are the filters every header must pass to be emitted as a -H option.
//
// Host and Content-Length are worked out by curl itself, and Basic credentials
// are emitted with -u instead.
//
//nolint:gochecknoglobals // Read only, built once
var headerFilters = []HeaderFilter{
	namedFilter("Host"),
	namedFilter("Content-Length"),
	basicAuthFilter,
}

// allowHeader reports whether every filter in headerFilters allows the header.
func allowHeader(name string, values []string) bool {
	for _, filter := range headerFilters {
		if !filter(name, values) {
			return false
		}
	}

	return true
}

// namedFilter returns a [HeaderFilter] denying any header called name, ignoring case.
func namedFilter(name string) HeaderFilter {
	return func(header string, _ []string) bool {
		return !strings.EqualFold(header, name)
	}
}

// basicAuthFilter denies the Authorization header when it carries a Basic credential.
func basicAuthFilter(name string, values []string) bool {
	return !(strings.EqualFold(name, authorization) && IsBasicAuth(values))
}
