// Package config loads the snip project configuration.
//
// Configuration is layered, later layers win: built in defaults, then the
// project file (snip.yaml in the current directory, or one named explicitly),
// then any overrides given on the command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.followtheprocess.codes/snip/internal/snippet"
)

// DefaultFile is the project file loaded when no other is given.
const DefaultFile = "snip.yaml"

// Keys of the configuration, as used in the project file and in overrides.
const (
	KeyOutputDir    = "output-dir"
	KeyOperationDir = "operation-dir"
	KeyFormat       = "format"
	KeyEncoding     = "encoding"
	KeyOperations   = "operations"
)

// Config is the snip configuration.
type Config struct {
	// OutputDir is the directory snippets are written under, empty means stdout.
	OutputDir string `koanf:"output-dir"`

	// OperationDir is the directory of each operation's snippets relative to
	// OutputDir, it may contain placeholders such as "{operation-name}".
	OperationDir string `koanf:"operation-dir"`

	// Format is the snippet format, see [snippet.ParseFormat].
	Format string `koanf:"format"`

	// Encoding is the name of the text encoding snippets are written in.
	Encoding string `koanf:"encoding"`

	// Operations restricts generation to the named operations, empty means all.
	Operations []string `koanf:"operations"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		OperationDir: "{operation-name}",
		Format:       string(snippet.Asciidoctor),
		Encoding:     snippet.DefaultEncoding,
	}
}

// Load builds the configuration from defaults, the project file at path and overrides.
//
// An empty path loads [DefaultFile] if it exists and skips the file layer if not,
// an explicit path that cannot be read is an error. Overrides are keyed by the Key
// constants, zero values (empty strings and slices) are ignored so an unset flag
// doesn't clobber the file.
func Load(path string, overrides map[string]any) (Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		KeyOperationDir: defaults.OperationDir,
		KeyFormat:       defaults.Format,
		KeyEncoding:     defaults.Encoding,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("could not load default config: %w", err)
	}

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	}

	if set := nonZero(overrides); len(set) != 0 {
		if err := k.Load(confmap.Provider(set, "."), nil); err != nil {
			return Config{}, fmt.Errorf("could not load config overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.OperationDir) == "" {
		errs = append(errs, errors.New("operation-dir must not be empty"))
	}

	if _, err := snippet.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}

	if strings.TrimSpace(c.Encoding) == "" {
		errs = append(errs, errors.New("encoding must not be empty"))
	}

	for i, name := range c.Operations {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("operations[%d] is blank", i))
		}
	}

	return errors.Join(errs...)
}

// nonZero returns the entries of overrides that are actually set.
func nonZero(overrides map[string]any) map[string]any {
	set := make(map[string]any, len(overrides))

	for key, value := range overrides {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
		case []string:
			if len(v) == 0 {
				continue
			}
		}

		set[key] = value
	}

	return set
}
