package curl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	authorization = "Authorization"
	basicPrefix   = "Basic "
)

// ErrMalformedCredential is returned when a Basic Authorization header is not valid base64.
var ErrMalformedCredential = errors.New("malformed basic credential")

// IsBasicAuth reports whether the values of an Authorization header hold a Basic
// credential, i.e. the first value starts with "Basic ".
func IsBasicAuth(values []string) bool {
	return len(values) != 0 && strings.HasPrefix(values[0], basicPrefix)
}

// DecodeBasicAuth decodes the Basic credential in the first Authorization value and
// returns it as the "user:password" text it was encoded from.
//
// The colon is not interpreted, the text is returned exactly as it was encoded.
// Padding is optional, "dXNlcjpzZWNyZXQ" and "dXNlcjpzZWNyZXQ=" both decode.
func DecodeBasicAuth(values []string) (string, error) {
	if !IsBasicAuth(values) {
		return "", fmt.Errorf("%w: not a Basic Authorization header", ErrMalformedCredential)
	}

	decoded, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(values[0][len(basicPrefix):], "="))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCredential, err)
	}

	return string(decoded), nil
}
