package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the optional config.yaml file.
type YAMLConfig struct {
	Models ModelsConfig `yaml:"models"`
	Site   SiteConfig   `yaml:"site"`
}

// ModelsConfig lists artifact paths per predictor slot.
type ModelsConfig struct {
	Heart       string `yaml:"heart,omitempty"`
	Cholesterol string `yaml:"cholesterol,omitempty"`
}

// SiteConfig holds page branding overrides.
type SiteConfig struct {
	Title   string `yaml:"title,omitempty"`
	Tagline string `yaml:"tagline,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply copies non-empty YAML values over the environment configuration.
func (y *YAMLConfig) Apply(c *Config) {
	if y == nil {
		return
	}
	if y.Models.Heart != "" {
		c.HeartModelPath = y.Models.Heart
	}
	if y.Models.Cholesterol != "" {
		c.CholesterolModelPath = y.Models.Cholesterol
	}
	if y.Site.Title != "" {
		c.SiteTitle = y.Site.Title
	}
	if y.Site.Tagline != "" {
		c.SiteTagline = y.Site.Tagline
	}
}
