package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rhyrak/schedule-extractor/internal/formatter"
)

// DotenvFile is read from the working directory before the config file.
const DotenvFile = ".env"

// EnvPrefix is prepended to every environment override, e.g. EXTRACTOR_DELIMITER.
const EnvPrefix = "EXTRACTOR"

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// Configuration holds the program parameters.
type Configuration struct {
	Environment string       `mapstructure:"environment"`
	Delimiter   string       `mapstructure:"delimiter"`
	Indent      string       `mapstructure:"indent"`
	Escape      bool         `mapstructure:"escape"`
	Output      string       `mapstructure:"output"`
	Server      ServerConfig `mapstructure:"server"`
}

// Comma returns the CSV delimiter as a rune.
func (c *Configuration) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Load reads extractor.yaml from the working directory, or the file at path when
// given, then applies .env and EXTRACTOR_* environment overrides. A missing
// config file or .env is not an error; a malformed one is.
func Load(path string) (*Configuration, error) {
	if err := loadDotenv(DotenvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("environment", "production")
	v.SetDefault("delimiter", ",")
	v.SetDefault("indent", formatter.DefaultIndent)
	v.SetDefault("escape", false)
	v.SetDefault("output", "")
	v.SetDefault("server.port", "3001")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("extractor")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	return cfg, nil
}

func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
