// Package cmd implements snip's CLI.
package cmd

import (
	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the snip CLI.
func Build() (*cli.Command, error) {
	return cli.New(
		"snip",
		cli.Short("Generate curl snippets from captured HTTP operations"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Print the curl snippet for every operation in a capture file", "snip generate ./captures/notes.har"),
		cli.Example(
			"Write Markdown snippets for all captures in a directory",
			"snip generate ./captures --output-dir docs/snippets --format md",
		),
		cli.Example("Choose which operations to document interactively", "snip generate ./captures --pick"),
		cli.Example("Check capture files for problems (recursively)", "snip check ./captures"),
		cli.Example("Convert a HAR file to the YAML capture format", "snip export ./notes.har --format yaml"),
		cli.SubCommands(generate, check, export),
	)
}
