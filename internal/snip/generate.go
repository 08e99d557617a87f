package snip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/snip/internal/config"
	"go.followtheprocess.codes/snip/internal/curl"
	"go.followtheprocess.codes/snip/internal/operation"
	"go.followtheprocess.codes/snip/internal/snippet"
	"golang.org/x/sync/errgroup"
)

// GenerateOptions are the options passed to the generate subcommand.
//
// The string and slice options override the config file when set, their zero
// values mean "use the config file, or the default".
type GenerateOptions struct {
	// Path is the capture file, or directory of capture files, to generate from.
	Path string

	// ConfigFile is the path to the config file, empty means snip.yaml if present.
	ConfigFile string

	// OutputDir is the directory snippets are written under.
	OutputDir string

	// OperationDir is the per operation directory template e.g. "{operation-name}".
	OperationDir string

	// Format is the snippet format, adoc or md.
	Format string

	// Encoding is the text encoding of the written snippets.
	Encoding string

	// Operations are the names of the operations to generate, empty means all.
	Operations []string

	// Pick, if true, asks the user to choose operations interactively.
	Pick bool

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the GenerateOptions is valid, returning a non-nil
// error if it's not.
func (g GenerateOptions) Validate() error {
	switch {
	case g.Path == "":
		return errors.New("path cannot be empty")
	case g.Pick && len(g.Operations) != 0:
		return errors.New("--pick and --operation are mutually exclusive")
	default:
		return nil
	}
}

// overrides returns the options that layer over the config file.
func (g GenerateOptions) overrides() map[string]any {
	return map[string]any{
		config.KeyOutputDir:    g.OutputDir,
		config.KeyOperationDir: g.OperationDir,
		config.KeyFormat:       g.Format,
		config.KeyEncoding:     g.Encoding,
		config.KeyOperations:   g.Operations,
	}
}

// Generate implements the generate subcommand.
func (s Snip) Generate(ctx context.Context, options GenerateOptions) error {
	if err := options.Validate(); err != nil {
		return err
	}

	logger := s.logger.Prefixed("generate").With(slog.String("path", options.Path))

	cfg, err := config.Load(options.ConfigFile, options.overrides())
	if err != nil {
		return err
	}

	logger.Debug(
		"Generate configuration",
		slog.String("version", s.version),
		slog.String("config", fmt.Sprintf("%+v", cfg)),
	)

	snippetFormat, err := snippet.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	start := time.Now()

	paths, err := collect(logger, options.Path)
	if err != nil {
		return err
	}

	sources, err := load(logger, paths)
	if err != nil {
		return err
	}

	var all []operation.Operation
	for _, src := range sources {
		all = append(all, src.operations...)
	}

	if err := checkUnique(sources); err != nil {
		return err
	}

	logger.Debug("Loaded operations", slog.Int("count", len(all)), slog.Duration("took", time.Since(start)))

	names := cfg.Operations
	if options.Pick {
		names, err = s.pick(ctx, all)
		if err != nil {
			return err
		}
	}

	toGenerate, err := filter(all, names)
	if err != nil {
		return err
	}

	logger.Debug("Filtered operations to generate", slog.Int("count", len(toGenerate)))

	g := generator{
		renderer:   curl.NewSnippet(nil),
		format:     snippetFormat,
		template:   cfg.OperationDir,
		encoding:   cfg.Encoding,
		library:    snippet.NewLibrary(s.now),
		ctx:        snippet.Context{Stdout: s.stdout, OutputDir: cfg.OutputDir},
		operations: toGenerate,
	}

	fileName := g.renderer.FileName(snippetFormat)

	if _, toFile := snippet.ResolvePath(cfg.OperationDir, fileName, g.ctx); !toFile {
		logger.Debug("No output directory, writing snippets to stdout")
		return g.toStdout(logger)
	}

	if err := g.toFiles(ctx, logger); err != nil {
		return err
	}

	msg.Fsuccess(
		s.stdout,
		"Generated %d %s snippet(s) in %s",
		len(toGenerate),
		fileName,
		hue.Bold.Text(cfg.OutputDir),
	)

	return nil
}

// pick asks the user which operations to generate.
func (s Snip) pick(ctx context.Context, operations []operation.Operation) ([]string, error) {
	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, op.Name)
	}

	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Operations to generate").
				Options(huh.NewOptions(names...)...).
				Value(&selected),
		),
	).WithInput(s.stdin).WithOutput(s.stderr)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("could not pick operations: %w", err)
	}

	if len(selected) == 0 {
		return nil, errors.New("no operations picked")
	}

	return selected, nil
}

// checkUnique returns an error if two operations share a name, snippets are
// written to a directory named after the operation so they would overwrite
// each other.
func checkUnique(sources []source) error {
	seen := make(map[string]string)

	var errs []error

	for _, src := range sources {
		for _, op := range src.operations {
			if first, ok := seen[op.Name]; ok {
				errs = append(errs, fmt.Errorf("duplicate operation name %q in %s (first seen in %s)", op.Name, src.path, first))
				continue
			}

			seen[op.Name] = src.path
		}
	}

	return errors.Join(errs...)
}

// generator writes the curl snippet of each operation through a [snippet.Resolver].
type generator struct {
	library    snippet.Library
	ctx        snippet.Context
	renderer   curl.Snippet
	format     snippet.Format
	template   string
	encoding   string
	operations []operation.Operation
}

// toStdout writes every snippet to stdout, in order.
func (g generator) toStdout(logger *log.Logger) error {
	for i := range g.operations {
		if err := g.write(logger, i); err != nil {
			return err
		}
	}

	return nil
}

// toFiles writes every snippet to its own file, concurrently.
func (g generator) toFiles(ctx context.Context, logger *log.Logger) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i := range g.operations {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return g.write(logger, i)
		})
	}

	return group.Wait()
}

// write resolves the writer for the operation at index i and renders its snippet.
func (g generator) write(logger *log.Logger, i int) (err error) {
	op := g.operations[i]

	resolver := snippet.NewResolver(snippet.Placeholders(snippet.OperationContext{
		Name:   op.Name,
		Method: op.Request.Method,
		Step:   i + 1,
	}, g.library))
	resolver.SetEncoding(g.encoding)

	w, err := resolver.Resolve(g.template, g.renderer.FileName(g.format), g.ctx)
	if err != nil {
		return fmt.Errorf("could not resolve snippet output for %s: %w", op.Name, err)
	}

	defer func() {
		err = errors.Join(err, w.Close())
	}()

	logger.Debug("Writing snippet", slog.String("operation", op.Name), slog.String("snippet", g.renderer.Name()))

	return g.renderer.Render(w, op, g.format)
}
