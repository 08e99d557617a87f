// Package snip implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package snip

import (
	"io"
	"time"

	"go.followtheprocess.codes/log"
)

// Snip represents the snip program.
type Snip struct {
	stdin   io.Reader        // Interactive input is read from here
	stdout  io.Writer        // Normal program output is written here
	stderr  io.Writer        // Logs and errors are written here
	logger  *log.Logger      // The logger for the application
	now     func() time.Time // Clock for the {date} placeholder
	version string           // The app version
}

// New returns a new [Snip].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer) Snip {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.Prefix("snip"), log.WithLevel(level))

	return Snip{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		now:     time.Now,
		version: version,
	}
}
