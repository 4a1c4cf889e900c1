// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/codr1/bizpulse/internal/models"
)

const (
	CatalogSourceStatic = "static"
	CatalogSourceFile   = "file"
)

type CatalogConfig struct {
	Source string `yaml:"source"`
	// Path is resolved relative to the config file's directory.
	Path string `yaml:"path,omitempty"`
	// ReloadCron re-reads a file catalogue on a standard 5-field schedule.
	ReloadCron string `yaml:"reload_cron,omitempty"`
}

type ThemeConfig struct {
	Primary  string `yaml:"primary"`
	Surface  string `yaml:"surface"`
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
	Neutral  string `yaml:"neutral"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	TrustProxy        bool    `yaml:"trust_proxy"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
	} `yaml:"app"`

	Catalog   CatalogConfig   `yaml:"catalog"`
	Theme     ThemeConfig     `yaml:"theme"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	Features struct {
		EnableMetrics bool `yaml:"enable_metrics"`
		EnableDebug   bool `yaml:"enable_debug"`
	} `yaml:"features"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if cfg.Catalog.Path != "" && !filepath.IsAbs(cfg.Catalog.Path) {
		cfg.Catalog.Path = filepath.Join(filepath.Dir(configPath), cfg.Catalog.Path)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. A missing catalog source
// means the built-in catalogue.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = CatalogSourceStatic
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.App.Port < 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port %d is out of range", c.App.Port)
	}

	switch c.Catalog.Source {
	case CatalogSourceStatic:
		if c.Catalog.ReloadCron != "" {
			return fmt.Errorf("catalog reload_cron requires the file source")
		}
	case CatalogSourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog path is required for file source")
		}
		if c.Catalog.ReloadCron != "" {
			if _, err := cron.ParseStandard(c.Catalog.ReloadCron); err != nil {
				return fmt.Errorf("catalog reload_cron: %w", err)
			}
		}
	default:
		return fmt.Errorf("unsupported catalog source: %s", c.Catalog.Source)
	}

	for name, value := range map[string]string{
		"primary":  c.Theme.Primary,
		"surface":  c.Theme.Surface,
		"positive": c.Theme.Positive,
		"negative": c.Theme.Negative,
		"neutral":  c.Theme.Neutral,
	} {
		if value != "" && !models.IsHexColor(value) {
			return fmt.Errorf("theme %s must be a hex color like #1a2b3c", name)
		}
	}
	if err := c.Palette().Validate(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate limit requests_per_second must be positive")
		}
		if c.RateLimit.Burst < 1 {
			return fmt.Errorf("rate limit burst must be at least 1")
		}
	}

	return nil
}

// Palette returns the theme colours with blanks filled from the defaults.
func (c *Config) Palette() models.Palette {
	return models.Palette{
		Primary:  c.Theme.Primary,
		Surface:  c.Theme.Surface,
		Positive: c.Theme.Positive,
		Negative: c.Theme.Negative,
		Neutral:  c.Theme.Neutral,
	}.WithDefaults()
}
