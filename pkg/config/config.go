// Package config loads claudelist settings from viper: the config file
// ($HOME/.claudelist/config.yaml or ./config.yaml), CLAUDELIST_* environment
// variables, and bound command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jingkaihe/claudelist/pkg/catalog"
)

const (
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "CLAUDELIST"

	// DefaultMaxSuggestions caps the "did you mean" hints shown for a failed lookup.
	DefaultMaxSuggestions = 3
)

// Profile overrides a subset of Config. Unset fields keep the base value.
type Profile struct {
	ClaudeDir         string `mapstructure:"claude_dir"`
	SkillsDir         string `mapstructure:"skills_dir"`
	PrimarySettings   string `mapstructure:"primary_settings"`
	SecondarySettings string `mapstructure:"secondary_settings"`
	MaxSuggestions    int    `mapstructure:"max_suggestions"`
}

// Config is the resolved claudelist configuration.
type Config struct {
	ClaudeDir         string             `mapstructure:"claude_dir"`
	SkillsDir         string             `mapstructure:"skills_dir"`
	PrimarySettings   string             `mapstructure:"primary_settings"`
	SecondarySettings string             `mapstructure:"secondary_settings"`
	MaxSuggestions    int                `mapstructure:"max_suggestions"`
	LogLevel          string             `mapstructure:"log_level"`
	LogFormat         string             `mapstructure:"log_format"`
	Profile           string             `mapstructure:"profile"`
	Profiles          map[string]Profile `mapstructure:"profiles"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	// Empty defaults register the keys so AutomaticEnv overrides reach Unmarshal.
	v.SetDefault("claude_dir", "")
	v.SetDefault("skills_dir", "")
	v.SetDefault("profile", "")
	v.SetDefault("primary_settings", "settings.json")
	v.SetDefault("secondary_settings", "mcp.json")
	v.SetDefault("max_suggestions", DefaultMaxSuggestions)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
}

// InitViper configures v for the claudelist environment prefix and config
// file search path, and reads the config file if one exists.
func InitViper(v *viper.Viper) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.claudelist")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

// Load unmarshals v and applies the active profile, if any. Keys whose flag
// in flags was set on the command line are not overridden by the profile.
// flags may be nil.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to unmarshal configuration")
	}

	if cfg.Profile != "" && cfg.Profile != "default" {
		profile, ok := cfg.Profiles[cfg.Profile]
		if !ok {
			return cfg, errors.Errorf("profile '%s' not found in configuration", cfg.Profile)
		}
		if err := applyProfile(&cfg, profile, changedKeys(flags)); err != nil {
			return cfg, err
		}
	}

	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = DefaultMaxSuggestions
	}

	cfg.ClaudeDir = expandHome(cfg.ClaudeDir)
	cfg.SkillsDir = expandHome(cfg.SkillsDir)

	return cfg, nil
}

// FlagKey maps a command-line flag name onto its config key.
func FlagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// changedKeys returns the config keys of the flags set on the command line.
func changedKeys(flags *pflag.FlagSet) map[string]bool {
	keys := map[string]bool{}
	if flags == nil {
		return keys
	}
	flags.Visit(func(f *pflag.Flag) {
		keys[FlagKey(f.Name)] = true
	})
	return keys
}

func applyProfile(cfg *Config, profile Profile, pinned map[string]bool) error {
	// ZeroFields=false keeps base values the profile leaves unset.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ZeroFields:       false,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create profile decoder")
	}

	overrides := map[string]any{}
	if profile.ClaudeDir != "" {
		overrides["claude_dir"] = profile.ClaudeDir
	}
	if profile.SkillsDir != "" {
		overrides["skills_dir"] = profile.SkillsDir
	}
	if profile.PrimarySettings != "" {
		overrides["primary_settings"] = profile.PrimarySettings
	}
	if profile.SecondarySettings != "" {
		overrides["secondary_settings"] = profile.SecondarySettings
	}
	if profile.MaxSuggestions > 0 {
		overrides["max_suggestions"] = profile.MaxSuggestions
	}

	for key := range pinned {
		delete(overrides, key)
	}

	if err := decoder.Decode(overrides); err != nil {
		return errors.Wrap(err, "failed to apply profile configuration")
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}

// CatalogOptions translates the configuration into catalog options. An unset
// Claude directory falls back to ~/.claude.
func (c Config) CatalogOptions() []catalog.Option {
	var opts []catalog.Option
	if c.ClaudeDir != "" {
		opts = append(opts, catalog.WithClaudeDir(c.ClaudeDir))
	} else {
		opts = append(opts, catalog.WithDefaultDirs())
	}
	if c.SkillsDir != "" {
		opts = append(opts, catalog.WithSkillsDir(c.SkillsDir))
	}
	opts = append(opts, catalog.WithSettingsFiles(c.PrimarySettings, c.SecondarySettings))
	return opts
}
