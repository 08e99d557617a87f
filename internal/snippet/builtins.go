package snippet

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Builtin produces the replacement text for a placeholder whose value is not
// known until the snippet is written, such as {uuid} or {date}.
type Builtin func() (string, error)

// Library supplies the builtin placeholders available to an output directory
// template, on top of the per operation ones from [Placeholders].
type Library interface {
	// Get returns the builtin for the placeholder called name, the boolean
	// is false if there isn't one.
	Get(name string) (Builtin, bool)
}

// Builtins is the standard [Library], keyed by placeholder name.
type Builtins map[string]Builtin

// NewLibrary returns the standard builtins:
//
//	{uuid}  a random version 4 UUID, different every time it's used
//	{date}  today's date as YYYY-MM-DD, according to now
func NewLibrary(now func() time.Time) Builtins {
	return Builtins{
		"uuid": randomUUID,
		"date": func() (string, error) {
			return now().Format(time.DateOnly), nil
		},
	}
}

// Get implements [Library] for [Builtins].
func (b Builtins) Get(name string) (Builtin, bool) {
	fn, ok := b[name]
	return fn, ok
}

func randomUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("could not generate uuid: %w", err)
	}

	return id.String(), nil
}
