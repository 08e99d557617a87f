// Package snippet decides where generated snippets are written.
//
// A [Resolver] turns an operation name template such as "{operation-name}" and a
// snippet file name into a writer: a file under the configured output directory,
// or standard output when there is nowhere else to go.
package snippet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the text encoding snippets are written in unless told otherwise.
const DefaultEncoding = "UTF-8"

// ErrCreateDirectory is returned when a snippet's parent directory cannot be created.
var ErrCreateDirectory = errors.New("could not create directory")

// Context is the environment a snippet is written in.
type Context struct {
	// Stdout is where snippets go when they can't be written to a file, nil
	// means [os.Stdout].
	Stdout io.Writer

	// OutputDir is the base directory relative snippet paths are resolved
	// against, empty means there isn't one.
	OutputDir string
}

// Resolver resolves snippet writers.
//
// A Resolver is safe for concurrent use as long as SetEncoding is not called
// at the same time.
type Resolver struct {
	placeholders PlaceholderResolver
	encoding     string
}

// NewResolver returns a new [Resolver] that expands placeholders in operation names
// with placeholders.
func NewResolver(placeholders PlaceholderResolver) *Resolver {
	return &Resolver{
		placeholders: placeholders,
		encoding:     DefaultEncoding,
	}
}

// SetEncoding sets the name of the text encoding snippets are written in e.g. "ISO-8859-1".
//
// The name is not checked here, an unknown encoding causes Resolve to fail.
func (r *Resolver) SetEncoding(name string) {
	r.encoding = name
}

// Encoding returns the name of the text encoding snippets are written in.
func (r *Resolver) Encoding() string {
	return r.encoding
}

// Resolve returns the writer for the snippet file fileName belonging to operationName.
//
// Placeholders in operationName are expanded to give a directory, which is joined
// with fileName. A relative result is placed under ctx.OutputDir, any missing
// directories are created and the returned writer writes to that file, truncating
// it. If the result is relative and ctx has no OutputDir, the returned writer
// writes to ctx.Stdout instead, closing it leaves stdout open.
//
// Failure to create a directory returns an error wrapping [ErrCreateDirectory].
func (r *Resolver) Resolve(operationName, fileName string, ctx Context) (io.WriteCloser, error) {
	enc, err := lookupEncoding(r.encoding)
	if err != nil {
		return nil, err
	}

	dir := Replace(operationName, r.placeholders)

	path, ok := ResolvePath(dir, fileName, ctx)
	if !ok {
		stdout := ctx.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}

		return encode(nopCloser{Writer: stdout}, enc), nil
	}

	if err := createDirectoriesIfNecessary(path); err != nil {
		return nil, err
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not create snippet file: %w", err)
	}

	return encode(file, enc), nil
}

// ResolvePath joins dir and fileName, placing a relative result under ctx.OutputDir.
//
// It returns false if the path is relative and there is no OutputDir, meaning the
// snippet should go to standard output.
func ResolvePath(dir, fileName string, ctx Context) (string, bool) {
	path := filepath.Join(dir, fileName)
	if filepath.IsAbs(path) {
		return path, true
	}

	if ctx.OutputDir == "" {
		return "", false
	}

	return filepath.Join(ctx.OutputDir, path), true
}

// createDirectoriesIfNecessary creates path's parent directory and any of its parents.
func createDirectoriesIfNecessary(path string) error {
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreateDirectory, parent, err)
	}

	return nil
}

// lookupEncoding finds the encoding called name, nil means the text needs no
// transformation (UTF-8).
func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}

	if canonical, err := htmlindex.Name(enc); err == nil && canonical == "utf-8" {
		return nil, nil
	}

	return enc, nil
}

// encode wraps w so text written to it is encoded with enc, characters enc can't
// represent are replaced.
func encode(w io.WriteCloser, enc encoding.Encoding) io.WriteCloser {
	if enc == nil {
		return w
	}

	return &encodingWriter{
		Writer: transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder())),
		dest:   w,
	}
}

// encodingWriter is an [io.WriteCloser] that flushes its encoder before closing
// the destination.
type encodingWriter struct {
	*transform.Writer

	dest io.Closer
}

// Close flushes any buffered text and closes the destination.
func (e *encodingWriter) Close() error {
	return errors.Join(e.Writer.Close(), e.dest.Close())
}

// nopCloser is an [io.WriteCloser] whose Close does nothing, used so callers
// can close stdout writers without closing stdout.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
