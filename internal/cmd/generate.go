package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/snip/internal/snip"
)

const generateLong = `
The path argument may be a capture file or a directory, in which case it is
scanned recursively for capture files (.json, .yaml, .yml, .toml and .har).

A curl-request snippet is written for every operation. With an output directory
the snippet goes to <output-dir>/<operation-dir>/curl-request.<format>, where
operation-dir may use placeholders such as {operation-name}, {operation_name},
{operationName}, {OperationName}, {method}, {step}, {date} and {uuid}.

Without an output directory, snippets are printed to stdout.

Defaults are read from snip.yaml in the current directory (or the file given
with '--config'), command line flags take precedence.
`

// generate returns the snip generate subcommand.
func generate() (*cli.Command, error) {
	var options snip.GenerateOptions

	return cli.New(
		"generate",
		cli.Short("Generate curl snippets from capture files"),
		cli.Long(generateLong),
		cli.Arg(&options.Path, "path", "Capture file or directory", cli.ArgDefault(".")),
		cli.Flag(&options.OutputDir, "output-dir", 'o', "Directory to write snippets under"),
		cli.Flag(&options.OperationDir, "operation-dir", flag.NoShortHand, "Per operation directory template"),
		cli.Flag(&options.Format, "format", 'f', "Snippet format, one of (adoc|md)"),
		cli.Flag(&options.Encoding, "encoding", 'e', "Text encoding of the written snippets"),
		cli.Flag(&options.Operations, "operation", 'r', "Name(s) of operations to generate"),
		cli.Flag(&options.Pick, "pick", 'p', "Choose operations interactively"),
		cli.Flag(&options.ConfigFile, "config", 'c', "Path to the config file (default snip.yaml)"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := snip.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Generate(ctx, options)
		}),
	)
}
