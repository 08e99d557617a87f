package snip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/snip/internal/curl"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand.
//
// A capture file is valid if it can be imported and a curl command can be built
// for every operation in it. Operation names must also be unique across path.
func (s Snip) Check(ctx context.Context, options CheckOptions) error {
	logger := s.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	paths, err := collect(logger, options.Path)
	if err != nil {
		return err
	}

	logger.Debug("Checking capture files given by path", slog.Int("number", len(paths)))

	sources, err := load(logger, paths)
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)

	for _, src := range sources {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return checkSource(src)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := checkUnique(sources); err != nil {
		return err
	}

	for _, src := range sources {
		msg.Fsuccess(s.stdout, "%s is valid", src.path)
	}

	return nil
}

// checkSource builds the curl options for every operation in src.
func checkSource(src source) error {
	var errs []error

	for _, op := range src.operations {
		// We don't actually care about the result, just that it builds
		if _, err := curl.Options(op.Request); err != nil {
			errs = append(errs, fmt.Errorf("%s: operation %s: %w", src.path, op.Name, err))
		}
	}

	return errors.Join(errs...)
}
