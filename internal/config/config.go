// Package config loads visiblespectrum settings from config.yaml and the
// environment, and initializes the global logger.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Naomi     NaomiConfig     `yaml:"naomi" mapstructure:"naomi"`
	Reference ReferenceConfig `yaml:"reference" mapstructure:"reference"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// NaomiConfig configures the Naomi API client. RatePerSec throttles requests
// per host; zero leaves WaitSecs as the only pause between requests.
type NaomiConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	UserAgent   string  `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	WaitSecs    float64 `yaml:"wait_secs" mapstructure:"wait_secs"`
}

// Timeout returns the per-request HTTP timeout.
func (c NaomiConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// Wait returns the pause between requests.
func (c NaomiConfig) Wait() time.Duration {
	return time.Duration(c.WaitSecs * float64(time.Second))
}

// ReferenceConfig points at the vocabulary file.
type ReferenceConfig struct {
	// Path to a vocabulary YAML file. Empty uses the embedded one.
	Path         string `yaml:"path" mapstructure:"path"`
	RecentPeriod string `yaml:"recent_period" mapstructure:"recent_period"`
}

// ExportConfig configures result export.
type ExportConfig struct {
	Format       string `yaml:"format" mapstructure:"format"`
	Path         string `yaml:"path" mapstructure:"path"`
	FailuresPath string `yaml:"failures_path" mapstructure:"failures_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("VISIBLESPECTRUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("naomi.base_url", "https://naomiviewerserver.azurewebsites.net/api/v1/data")
	v.SetDefault("naomi.user_agent", "visiblespectrum/1.0")
	v.SetDefault("naomi.timeout_secs", 60)
	v.SetDefault("naomi.rate_per_sec", 0)
	v.SetDefault("naomi.wait_secs", 0)
	v.SetDefault("reference.path", "")
	v.SetDefault("reference.recent_period", "")
	v.SetDefault("export.format", "csv")
	v.SetDefault("export.path", "naomi_data.csv")
	v.SetDefault("export.failures_path", "naomi_failures.csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks values a pull cannot run without.
func (c *Config) Validate() error {
	var errs []string
	if c.Naomi.BaseURL == "" {
		errs = append(errs, "naomi.base_url is required")
	}
	if c.Naomi.TimeoutSecs <= 0 {
		errs = append(errs, "naomi.timeout_secs must be > 0")
	}
	if c.Naomi.RatePerSec < 0 {
		errs = append(errs, "naomi.rate_per_sec must be >= 0")
	}
	if c.Naomi.WaitSecs < 0 {
		errs = append(errs, "naomi.wait_secs must be >= 0")
	}
	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
