package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/llgen/ll"
	"golang.org/x/exp/slices"
)

// Supported grammar file formats.
const (
	FormatArrow = "arrow"
	FormatTSV   = "tsv"
)

var formats = []string{FormatArrow, FormatTSV}

// ErrInvalidConfig is returned for configurations which cannot be used to
// read a grammar.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config controls how grammar files are read and how their tokens are
// classified.
type Config struct {
	Name           string `toml:"name"`
	Format         string `toml:"format"`
	Delimiter      string `toml:"delimiter"`
	Epsilon        string `toml:"epsilon"`
	StartMarker    string `toml:"start_marker"`
	AllowUndefined bool   `toml:"allow_undefined"`
}

// DefaultConfig returns the configuration for arrow-formatted files using
// the default epsilon lexeme and start marker.
func DefaultConfig() Config {
	return Config{
		Format:      FormatArrow,
		Delimiter:   "->",
		Epsilon:     ll.DefaultEpsilonLexeme,
		StartMarker: string(ll.DefaultStartMarker),
	}
}

// LoadConfig decodes a TOML file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if tomlErr := toml.Unmarshal(data, &cfg); tomlErr != nil {
		return cfg, fmt.Errorf("config file %q: %w", path, tomlErr)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks a configuration for consistency.
func (cfg Config) Validate() error {
	if !slices.Contains(formats, cfg.Format) {
		return fmt.Errorf("%w: format must be one of %v, is %q", ErrInvalidConfig, formats, cfg.Format)
	}
	if cfg.Format == FormatArrow && cfg.Delimiter == "" {
		return fmt.Errorf("%w: arrow format needs a delimiter", ErrInvalidConfig)
	}
	if utf8.RuneCountInString(cfg.StartMarker) != 1 {
		return fmt.Errorf("%w: start marker must be a single character, is %q", ErrInvalidConfig, cfg.StartMarker)
	}
	if cfg.Epsilon == "" {
		return fmt.Errorf("%w: epsilon lexeme must not be empty", ErrInvalidConfig)
	}
	return nil
}

// Options maps the configuration onto grammar builder options.
func (cfg Config) Options() []ll.Option {
	opts := []ll.Option{ll.AllowUndefined(cfg.AllowUndefined)}
	if cfg.Epsilon != "" {
		opts = append(opts, ll.EpsilonLexeme(cfg.Epsilon))
	}
	if r, _ := utf8.DecodeRuneInString(cfg.StartMarker); r != utf8.RuneError {
		opts = append(opts, ll.StartMarker(r))
	}
	return opts
}
