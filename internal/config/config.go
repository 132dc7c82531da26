// Package config loads the strsplit command configuration.
//
// Precedence (lowest to highest): defaults < config file < env vars < flags
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/adamluzsi/strsplit/pkg/errorkit"
	"github.com/adamluzsi/strsplit/pkg/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const ErrInvalidConfig errorkit.Error = "ErrInvalidConfig"

const EnvPrefix = "STRSPLIT"

type Mode string

const (
	ModeLines  Mode = "lines"
	ModeJSON   Mode = "json"
	ModeSpans  Mode = "spans"
	ModeBefore Mode = "before"
)

var modes = map[Mode]struct{}{
	ModeLines:  {},
	ModeJSON:   {},
	ModeSpans:  {},
	ModeBefore: {},
}

type Config struct {
	// Delimiter is the literal text to split on.
	Delimiter string `mapstructure:"delimiter"`
	// Char is a single character delimiter, it takes precedence over Delimiter.
	Char     string `mapstructure:"char"`
	Mode     Mode   `mapstructure:"mode"`
	LogLevel string `mapstructure:"log_level"`
}

// Rune returns the character delimiter if one is configured.
func (c Config) Rune() (rune, bool) {
	if c.Char == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.Char)
	return r, true
}

func (c Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.LevelWarn
	}
	return level
}

func (c Config) Validate() error {
	if _, ok := modes[c.Mode]; !ok {
		return ErrInvalidConfig.F("unknown mode: %q", c.Mode)
	}
	if c.Char != "" && (utf8.RuneCountInString(c.Char) != 1 || !utf8.ValidString(c.Char)) {
		return ErrInvalidConfig.F("char must be exactly one character: %q", c.Char)
	}
	if c.Mode == ModeBefore && c.Char == "" {
		return ErrInvalidConfig.F("%s mode requires a char delimiter", ModeBefore)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return ErrInvalidConfig.Wrap(err)
	}
	return nil
}

// SetDefaults registers every known key, so env vars can be unmarshalled too.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("delimiter", " ")
	v.SetDefault("char", "")
	v.SetDefault("mode", string(ModeLines))
	v.SetDefault("log_level", string(logging.LevelWarn))
}

// flag name -> config key
var flagKeys = map[string]string{
	"delimiter": "delimiter",
	"char":      "char",
	"mode":      "mode",
	"log-level": "log_level",
}

// New creates the viper instance with env var binding and defaults.
// Flags from the flag set are bound when they are defined.
func New(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	if flags == nil {
		return v, nil
	}
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return v, nil
}

// Load reads the configuration, and the optional config file.
// An empty path means no config file.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v, err := New(flags)
	if err != nil {
		return nil, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
