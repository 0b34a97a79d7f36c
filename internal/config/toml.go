// Package config provides configuration helpers and TOML parsing.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Session SessionConfig `toml:"session"`
	Log     LogConfig     `toml:"log"`
}

// SessionConfig maps typing-session settings.
type SessionConfig struct {
	Duration   *int     `toml:"duration"`
	Text       *string  `toml:"text"`
	TextFile   *string  `toml:"text-file"`
	TextName   *string  `toml:"text-name"`
	RandomText *bool    `toml:"random-text"`
	WordList   *string  `toml:"wordlist"`
	Lang       *string  `toml:"lang"`
	Words      *int     `toml:"words"`
	CapsPct    *float64 `toml:"caps"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, errors.Wrap(err, "failed to stat config")
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, errors.Wrap(err, "failed to decode config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, errors.Newf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
