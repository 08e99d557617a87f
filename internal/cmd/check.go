package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/snip/internal/snip"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a capture file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for all
capture files and any matching files will be validated.

A capture file is valid if it parses, a curl command can be built for
every operation in it and no operation name is used twice.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options snip.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check capture files for errors"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := snip.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Check(ctx, options)
		}),
	)
}
