package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultPath = "./config/config.yaml"
	DefaultPort = 8080
)

func LoadConfigFromFile(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	dec := yaml.NewDecoder(file)
	err = dec.Decode(&config)
	if err != nil {
		return nil, err
	}
	config.Defaults()
	return &config, nil
}

// LoadConfigOrDefault behaves like LoadConfigFromFile but returns a default
// config when the file does not exist. Used by the lambda and cli binaries,
// which are usually deployed without a config file.
func LoadConfigOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfigFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = &Config{}
		cfg.Defaults()
	} else if err != nil {
		return nil, err
	}
	if lang := os.Getenv("TRANSCRIPT_DEFAULT_LANGUAGE"); lang != "" {
		cfg.DefaultLanguage = lang
	}
	return cfg, nil
}

type Config struct {
	LocalPort       int      `yaml:"local_port"`
	DefaultLanguage string   `yaml:"default_language"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
	ProdMode        bool     `yaml:"prod_mode"`
	MetricsEnabled  bool     `yaml:"metrics_enabled"`
}

func (c *Config) Defaults() {
	if c.LocalPort == 0 {
		c.LocalPort = DefaultPort
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}

func (c *Config) AllowAllOrigins() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
