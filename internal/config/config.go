// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/minedu-grd/encuesta-cli/internal/chart"
	"github.com/minedu-grd/encuesta-cli/internal/survey"
)

// Config holds the full application configuration.
type Config struct {
	Source    SourceConfig         `yaml:"source" mapstructure:"source"`
	Columns   ColumnsConfig        `yaml:"columns" mapstructure:"columns"`
	Canonical []survey.Replacement `yaml:"canonical" mapstructure:"canonical"`
	Scales    []survey.Scale       `yaml:"scales" mapstructure:"scales"`
	Chart     ChartConfig          `yaml:"chart" mapstructure:"chart"`
	Server    ServerConfig         `yaml:"server" mapstructure:"server"`
	Log       LogConfig            `yaml:"log" mapstructure:"log"`
}

// SourceConfig locates and parses the survey export file.
type SourceConfig struct {
	Path      string `yaml:"path" mapstructure:"path"`
	Sheet     string `yaml:"sheet" mapstructure:"sheet"`
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
}

// ColumnsConfig maps logical fields to expected header strings. Exact header
// names are configuration, not structural constants; mismatches are reported
// right after load.
type ColumnsConfig struct {
	Region     string   `yaml:"region" mapstructure:"region"`
	Tier       string   `yaml:"tier" mapstructure:"tier"`
	Normalized string   `yaml:"normalized" mapstructure:"normalized"`
	Exclude    []string `yaml:"exclude" mapstructure:"exclude"`
}

// ChartConfig holds bar-chart layout thresholds.
type ChartConfig struct {
	WrapWidth   int `yaml:"wrap_width" mapstructure:"wrap_width"`
	MaxLabels   int `yaml:"max_labels" mapstructure:"max_labels"`
	MaxLabelLen int `yaml:"max_label_len" mapstructure:"max_label_len"`
}

// Options converts the thresholds into chart render options.
func (c ChartConfig) Options() chart.Options {
	return chart.Options{WrapWidth: c.WrapWidth, MaxLabels: c.MaxLabels, MaxLabelLen: c.MaxLabelLen}
}

// ServerConfig configures the JSON API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
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
	v.SetEnvPrefix("ENCUESTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.path", "encuesta_limpia_instancia_norm.xlsx")
	v.SetDefault("source.delimiter", ",")
	v.SetDefault("columns.region", "Región en la que trabaja")
	v.SetDefault("columns.tier", "Instancia del MINEDU donde trabaja")
	v.SetDefault("columns.normalized", "Instancia (Normalizada)")
	v.SetDefault("chart.wrap_width", 24)
	v.SetDefault("chart.max_labels", 5)
	v.SetDefault("chart.max_label_len", 18)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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

	// The fix-list, scale library, and exclusion set have code-side defaults;
	// a config file entry replaces them wholesale rather than merging.
	if len(cfg.Canonical) == 0 {
		cfg.Canonical = survey.DefaultCanonical()
	}
	if len(cfg.Scales) == 0 {
		cfg.Scales = survey.DefaultScales()
	}
	if len(cfg.Columns.Exclude) == 0 {
		cfg.Columns.Exclude = survey.DefaultExcluded(cfg.Columns.Region, cfg.Columns.Tier, cfg.Columns.Normalized)
	}

	return &cfg, nil
}

// DelimiterRune returns the CSV delimiter as a rune, defaulting to ','.
func (c SourceConfig) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
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
