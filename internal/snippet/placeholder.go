package snippet

import (
	"strconv"
	"strings"
	"unicode"
)

// PlaceholderResolver looks up the replacement for the placeholder called name,
// reporting whether it has one.
type PlaceholderResolver func(name string) (string, bool)

// Replace returns template with every "{name}" placeholder replaced by its value
// from resolve.
//
// Placeholders resolve does not know about, and unterminated braces, are left as they are.
// Replacement values are not themselves scanned for placeholders.
func Replace(template string, resolve PlaceholderResolver) string {
	builder := &strings.Builder{}

	rest := template
	for {
		start := strings.IndexByte(rest, '{')
		if start == -1 {
			builder.WriteString(rest)
			break
		}

		end := strings.IndexByte(rest[start:], '}')
		if end == -1 {
			builder.WriteString(rest)
			break
		}

		end += start
		name := rest[start+1 : end]

		builder.WriteString(rest[:start])

		if value, ok := resolve(name); ok {
			builder.WriteString(value)
		} else {
			builder.WriteString(rest[start : end+1])
		}

		rest = rest[end+1:]
	}

	return builder.String()
}

// OperationContext describes the operation whose snippets are being written, it's
// the source of the standard placeholders.
type OperationContext struct {
	Name   string // Name of the operation e.g. "create-widget"
	Method string // HTTP method of the operation's request
	Step   int    // 1 based position of the operation in the current run
}

// Placeholders returns the standard [PlaceholderResolver] for an operation.
//
// The operation name is available in several cases so directory layouts can
// follow whatever convention the docs use:
//
//	{operation-name}  create-widget
//	{operation_name}  create_widget
//	{operationName}   createWidget
//	{OperationName}   CreateWidget
//
// Along with {method} (lower case), {METHOD}, {step} and anything in library.
// A nil library means no builtins.
func Placeholders(ctx OperationContext, library Library) PlaceholderResolver {
	words := splitWords(ctx.Name)

	values := map[string]string{
		"operation-name": kebab(words),
		"operation_name": snake(words),
		"operationName":  camel(words),
		"OperationName":  pascal(words),
		"method":         strings.ToLower(ctx.Method),
		"METHOD":         strings.ToUpper(ctx.Method),
		"step":           strconv.Itoa(ctx.Step),
	}

	return func(name string) (string, bool) {
		if value, ok := values[name]; ok {
			return value, true
		}

		if library == nil {
			return "", false
		}

		builtin, ok := library.Get(name)
		if !ok {
			return "", false
		}

		value, err := builtin()
		if err != nil {
			return "", false
		}

		return value, true
	}
}

// splitWords splits an identifier into its lower case words, breaking on
// '-', '_', whitespace and lower to upper case transitions.
func splitWords(s string) []string {
	var (
		words   []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			flush()

			current = append(current, r)
		default:
			current = append(current, r)
		}
	}

	flush()

	return words
}

func kebab(words []string) string {
	return strings.Join(words, "-")
}

func snake(words []string) string {
	return strings.Join(words, "_")
}

func camel(words []string) string {
	builder := &strings.Builder{}
	for i, word := range words {
		if i == 0 {
			builder.WriteString(word)
			continue
		}

		builder.WriteString(title(word))
	}

	return builder.String()
}

func pascal(words []string) string {
	builder := &strings.Builder{}
	for _, word := range words {
		builder.WriteString(title(word))
	}

	return builder.String()
}

// title upper cases the first letter of word.
func title(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}

	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
