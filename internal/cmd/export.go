package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/snip/internal/snip"
)

// export returns the snip export subcommand.
func export() (*cli.Command, error) {
	var (
		file    string
		options snip.ExportOptions
	)

	return cli.New(
		"export",
		cli.Short("Export a capture file to an alternative format"),
		cli.Arg(&file, "file", "Path to the capture file"),
		cli.Flag(
			&options.Format,
			"format",
			'f',
			"Export format, one of (json|yaml|toml|curl)",
			cli.FlagDefault("json"),
		),
		cli.Flag(
			&options.SnippetFormat,
			"snippet-format",
			flag.NoShortHand,
			"Snippet format of the curl export, one of (adoc|md)",
			cli.FlagDefault("adoc"),
		),
		cli.Flag(&options.Operations, "operation", 'r', "Name(s) of operations to export"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := snip.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Export(ctx, file, options)
		}),
	)
}
