package snip

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/snip/internal/format"
	"go.followtheprocess.codes/snip/internal/operation"
	"golang.org/x/sync/errgroup"
)

// source is a loaded capture file.
type source struct {
	path       string                // Path to the capture file
	operations []operation.Operation // The operations it contains, in order
}

// collect returns the capture files named by path.
//
// A file is returned as is, a directory is walked recursively for every file
// with a known capture extension, in lexical order.
func collect(logger *log.Logger, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		logger.Debug("Path is a file")
		return []string{path}, nil
	}

	logger.Debug("Path is a directory")

	var paths []string

	err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && slices.Contains(format.Extensions, strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", path, err)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no capture files found in %s", path)
	}

	return paths, nil
}

// load imports every capture file in paths concurrently, the returned sources
// are in the same order as paths.
func load(logger *log.Logger, paths []string) ([]source, error) {
	sources := make([]source, len(paths))

	group := errgroup.Group{}

	for i, path := range paths {
		group.Go(func() error {
			start := time.Now()

			operations, err := loadFile(path)
			if err != nil {
				return err
			}

			logger.Debug(
				"Loaded capture file",
				slog.String("file", path),
				slog.Int("operations", len(operations)),
				slog.Duration("took", time.Since(start)),
			)

			sources[i] = source{path: path, operations: operations}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return sources, nil
}

// loadFile imports the operations in a single capture file.
func loadFile(path string) ([]operation.Operation, error) {
	importer, err := format.ImporterFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	operations, err := importer.Import(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return operations, nil
}

// filter returns the operations whose names are in names, in their original order.
//
// Empty names means every operation. It's an error for nothing to match.
func filter(operations []operation.Operation, names []string) ([]operation.Operation, error) {
	if len(names) == 0 {
		return operations, nil
	}

	var matched []operation.Operation

	for _, op := range operations {
		if slices.Contains(names, op.Name) {
			matched = append(matched, op)
		}
	}

	if len(matched) == 0 {
		return nil, fmt.Errorf("no matching operations for names %v", names)
	}

	return matched, nil
}
