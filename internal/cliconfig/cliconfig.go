// Package cliconfig loads an optional TOML defaults file for cmd/lmc: a
// default solver algorithm, a default output target, and whether color
// output is on by default. Flags passed on the command line always win
// over whatever the file says; the file's absence is never an error.
package cliconfig

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the subset of flag defaults a file can override.
type Config struct {
	Algorithm string `toml:"algorithm"`
	Target    string `toml:"target"`
	Color     *bool  `toml:"color"`
	Verbose   bool   `toml:"verbose"`
}

// Default returns the built-in defaults used when no config file is found.
func Default() Config {
	return Config{Algorithm: "fpi"}
}

// Load reads path and merges it over Default(). A missing file is not an
// error — it returns Default() unchanged. A present-but-malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ColorEnabled reports whether color output should default to on, falling
// back to want (the caller's tty-derived guess) when the file is silent on
// the question.
func (c Config) ColorEnabled(want bool) bool {
	if c.Color == nil {
		return want
	}
	return *c.Color
}
