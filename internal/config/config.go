package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/jcdickinson/kolbendoc/internal/docs"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type SourceConfig struct {
	RepoRoot      string `mapstructure:"repo_root"`
	PrototypePath string `mapstructure:"prototype_path"`
}

type NavConfig struct {
	Articles []docs.Article `mapstructure:"articles"`
}

type Config struct {
	Input        string       `mapstructure:"input"`
	TemplatesDir string       `mapstructure:"templates_dir"`
	OutputDir    string       `mapstructure:"output_dir"`
	CopyWorkers  int          `mapstructure:"copy_workers"`
	Source       SourceConfig `mapstructure:"source"`
	Nav          NavConfig    `mapstructure:"nav"`
}

// SourceLinks converts the source settings for the page composer.
func (c *Config) SourceLinks() docs.SourceLinks {
	return docs.SourceLinks{RepoRoot: c.Source.RepoRoot, PrototypePath: c.Source.PrototypePath}
}

// configDir returns the per-user configuration directory for kolbendoc.
// Checks XDG_CONFIG_HOME, then ~/.config; empty if neither is known.
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "kolbendoc")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "kolbendoc")
	}
	return ""
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if dir := configDir(); dir != "" {
		viper.AddConfigPath(dir)
	}

	viper.SetDefault("input", "api.json")
	viper.SetDefault("templates_dir", "")
	viper.SetDefault("output_dir", "docs")
	viper.SetDefault("copy_workers", 4)
	viper.SetDefault("source.repo_root", "")
	viper.SetDefault("source.prototype_path", "2.5DHero/2.5DHero/World/ActionScript/V3/Prototypes/{name}Prototype.vb")

	viper.SetEnvPrefix("KOLBENDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// stringToArticleHookFunc accepts "file=Title" shorthand for nav articles.
func stringToArticleHookFunc() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(docs.Article{}) || f.Kind() != reflect.String {
			return data, nil
		}
		file, title, ok := strings.Cut(data.(string), "=")
		if !ok || file == "" {
			return nil, fmt.Errorf("invalid article %q: want file=Title", data)
		}
		return docs.Article{File: file, Title: title}, nil
	}
}

// Decode decodes settings into a Config, filling unset values with defaults.
func Decode(settings map[string]interface{}) (*Config, error) {
	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToArticleHookFunc(),
		Result:     &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(config.Nav.Articles) == 0 {
		config.Nav.Articles = docs.DefaultArticles
	}
	if config.CopyWorkers <= 0 {
		config.CopyWorkers = 4
	}
	if config.OutputDir == "" {
		config.OutputDir = "docs"
	}
	return &config, nil
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}
	return Decode(viper.AllSettings())
}
