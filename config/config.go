package config

import (
	"errors"
	"fmt"
	"strings"

	"puzzlesearch/meta"
	"puzzlesearch/puzzles"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel       string
	InputDir       string
	MetricsDir     string
	Goroutines     int
	ExpansionLimit int
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", meta.LOG_LEVEL)
	v.SetDefault("input.dir", meta.INPUT_DIR)
	v.SetDefault("metrics.dir", meta.METRICS_DIR)
	v.SetDefault("search.goroutines", meta.GOROUTINES)
	v.SetDefault("search.expansion_limit", meta.EXPANSION_LIMIT)
}

// NewViper returns a viper instance with defaults, environment variables
// (PUZZLESEARCH_SEARCH_GOROUTINES and so on) and, when cfgFile is set, a
// config file.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(meta.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".puzzlesearch")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load reads the resolved configuration out of v.
func Load(v *viper.Viper) (*Config, error) {
	c := &Config{
		LogLevel:       v.GetString("log.level"),
		InputDir:       v.GetString("input.dir"),
		MetricsDir:     v.GetString("metrics.dir"),
		Goroutines:     v.GetInt("search.goroutines"),
		ExpansionLimit: v.GetInt("search.expansion_limit"),
	}
	if _, err := c.Level(); err != nil {
		return nil, err
	}
	if c.Goroutines < 0 {
		return nil, fmt.Errorf("search.goroutines must not be negative, got %d", c.Goroutines)
	}
	if c.ExpansionLimit < 0 {
		return nil, fmt.Errorf("search.expansion_limit must not be negative, got %d", c.ExpansionLimit)
	}
	return c, nil
}

func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) Settings() puzzles.Settings {
	return puzzles.Settings{
		Goroutines:     c.Goroutines,
		ExpansionLimit: c.ExpansionLimit,
	}
}
