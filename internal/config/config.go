package config

import (
	"fmt"
	"strings"

	"shopcat/extractor/internal/domain"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Site       domain.Site      `mapstructure:"site"`
	Crawl      CrawlConfig      `mapstructure:"crawl"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Politeness PolitenessConfig `mapstructure:"politeness"`
	Output     OutputConfig     `mapstructure:"output"`
}

// CrawlConfig holds traversal parameters
type CrawlConfig struct {
	RootURL  string `mapstructure:"root_url"`
	MaxDepth int    `mapstructure:"max_depth"`
}

// HTTPConfig holds transport configuration
type HTTPConfig struct {
	Timeout              int    `mapstructure:"timeout"` // seconds
	UserAgent            string `mapstructure:"user_agent"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// PolitenessConfig bounds the randomized inter-request delay
type PolitenessConfig struct {
	MinDelayMs int `mapstructure:"min_delay_ms"`
	MaxDelayMs int `mapstructure:"max_delay_ms"`
}

// OutputConfig holds report destination configuration
type OutputConfig struct {
	Path string `mapstructure:"path"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config.yaml file not found in current directory")
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the loaded configuration for values the crawler
// cannot work with.
func (c *Config) Validate() error {
	if !c.Site.IsValid() {
		return fmt.Errorf("unknown site %q (expected one of %v)", c.Site, domain.Sites)
	}
	if c.Crawl.RootURL == "" {
		return fmt.Errorf("crawl.root_url must be set")
	}
	if c.Crawl.MaxDepth < 1 || c.Crawl.MaxDepth > 10 {
		return fmt.Errorf("crawl.max_depth must be between 1 and 10, got %d", c.Crawl.MaxDepth)
	}
	if c.Politeness.MinDelayMs < 0 || c.Politeness.MaxDelayMs < c.Politeness.MinDelayMs {
		return fmt.Errorf("politeness delay bounds invalid: min=%dms max=%dms",
			c.Politeness.MinDelayMs, c.Politeness.MaxDelayMs)
	}
	if c.HTTP.MaxRequestsPerSecond < 1 {
		return fmt.Errorf("http.max_requests_per_second must be at least 1")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("site", string(domain.SiteRakuten))

	viper.SetDefault("crawl.max_depth", 3)

	viper.SetDefault("http.timeout", 30)
	viper.SetDefault("http.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36")
	viper.SetDefault("http.max_requests_per_second", 1)

	viper.SetDefault("politeness.min_delay_ms", 1500)
	viper.SetDefault("politeness.max_delay_ms", 4000)

	viper.SetDefault("output.path", "./categories.csv")
}
