// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/expenses/internal/nordeaparser"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the application.
const EnvPrefix = "EXPENSES"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level" validate:"required"`
		Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		// Encoding of the export files; Nordea exports are often Latin-1.
		Encoding string `mapstructure:"encoding" yaml:"encoding" validate:"encoding"`
	} `mapstructure:"input" yaml:"input"`

	Report struct {
		TopExpenses     int    `mapstructure:"top_expenses" yaml:"top_expenses" validate:"gte=1,lte=1000"`
		Style           string `mapstructure:"style" yaml:"style" validate:"oneof=auto ansi markup plain"`
		MonthOrder      string `mapstructure:"month_order" yaml:"month_order" validate:"oneof=lexical calendar"`
		Format          string `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml"`
		ContinueOnError bool   `mapstructure:"continue_on_error" yaml:"continue_on_error"`
	} `mapstructure:"report" yaml:"report"`

	Export struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter" validate:"len=1"`
	} `mapstructure:"export" yaml:"export"`
}

// NewViper returns a Viper instance with defaults, config file search paths and
// environment binding set up. configFile, when not empty, replaces the search paths.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.expenses")
		v.AddConfigPath(".expenses")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// InitializeConfig loads the configuration from the default locations.
func InitializeConfig() (*Config, error) {
	return Load(NewViper(""))
}

// Load reads the optional config file of v, then unmarshals and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		// A missing file is only tolerated while searching the default paths.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.encoding", "utf-8")

	v.SetDefault("report.top_expenses", 10)
	v.SetDefault("report.style", "auto")
	v.SetDefault("report.month_order", "lexical")
	v.SetDefault("report.format", "text")
	v.SetDefault("report.continue_on_error", false)

	v.SetDefault("export.delimiter", ",")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("encoding", func(fl validator.FieldLevel) bool {
		return nordeaparser.IsSupportedEncoding(fl.Field().String())
	})
	return v
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	return validate.Struct(config)
}
