package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Output formats understood by the bluecst command.
const (
	FormatText   = "text"
	FormatYAML   = "yaml"
	FormatSpew   = "spew"
	FormatTokens = "tokens"
)

// Config holds the settings of the bluecst command.
type Config struct {
	Format string `toml:"format"`
	Trace  bool   `toml:"trace"`
	Color  bool   `toml:"color"`
}

func Default() *Config {
	return &Config{
		Format: FormatText,
		Color:  true,
	}
}

// Load reads a TOML config file. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML, FormatSpew, FormatTokens:
		return nil
	}
	return fmt.Errorf("invalid output format %q (want text, yaml, spew or tokens)", c.Format)
}
