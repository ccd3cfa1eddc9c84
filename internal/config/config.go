// Package config loads pawquiz settings from defaults, an optional config
// file, an optional .env file and PAWQUIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/pawquiz/internal/quiz"
)

// EnvPrefix is prepended to every environment variable pawquiz reads.
const EnvPrefix = "PAWQUIZ"

// Config holds application configuration.
type Config struct {
	Env           string `mapstructure:"env"`            // local, production
	QuestionsPath string `mapstructure:"questions_path"` // empty means the built-in bank
	Log           Log    `mapstructure:"log"`
	Reveal        Reveal `mapstructure:"reveal"`
}

// Log configures the file logger. The terminal belongs to the UI, so
// nothing is logged unless File is set.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Reveal configures the results animation.
type Reveal struct {
	ShowComputedScore bool `mapstructure:"show_computed_score"`
}

// QuizConfig returns the controller config for these settings.
func (c *Config) QuizConfig() quiz.Config {
	qc := quiz.DefaultConfig()
	qc.ShowComputedScore = c.Reveal.ShowComputedScore
	return qc
}

// Load reads configuration. configFile may be empty, in which case
// pawquiz.yaml is looked up in the working directory and the user config dir.
func Load(configFile string) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("env", "local")
	v.SetDefault("questions_path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("reveal.show_computed_score", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("pawquiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pawquiz")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
