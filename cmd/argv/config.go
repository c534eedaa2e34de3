package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dzonerzy/go-argv/termio"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// Config is the resolved tool configuration.
type Config struct {
	Format   string
	Color    termio.ColorMode
	LogLevel termio.LogLevel
}

// newViper returns a viper instance reading ARGV_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("ARGV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("format", formatText)
	v.SetDefault("color", "auto")
	v.SetDefault("log-level", "info")
	return v
}

// bindFlags binds the named flags of fs to viper keys of the same name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if err := v.BindPFlag(name, fs.Lookup(name)); err != nil {
			return fmt.Errorf("binding %s flag: %w", name, err)
		}
	}
	return nil
}

// loadConfig reads the config file, if any, and resolves all keys.
// An explicit file must exist; the default .argv.yaml is optional.
func loadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".argv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{Format: strings.ToLower(v.GetString("format"))}
	switch cfg.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q (want text, json or yaml)", cfg.Format)
	}
	var err error
	if cfg.Color, err = termio.ParseColorMode(v.GetString("color")); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = termio.ParseLevel(v.GetString("log-level")); err != nil {
		return nil, err
	}
	return cfg, nil
}
