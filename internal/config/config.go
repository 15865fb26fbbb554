// Package config provides configuration management for the advisory map toolkit.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default file locations. Both commands read and write these when no
// overrides are given, so a bare invocation of scrape followed by render
// just works.
const (
	DefaultIndexURL = "https://www.ireland.ie/en/dfa/overseas-travel/advice/"
	DefaultCSVPath  = "irish_travel_advisories.csv"
	DefaultHTMLPath = "irish_travel_advisory_map.html"
	DefaultPNGPath  = "irish_travel_advisory_map.png"
	DefaultTitle    = "Irish Department of Foreign Affairs Travel Advisory Levels"
)

// Config represents the application configuration.
type Config struct {
	Scrape ScrapeConfig `yaml:"scrape"`
	Map    MapConfig    `yaml:"map"`
}

// ScrapeConfig holds settings for the scrape stage.
type ScrapeConfig struct {
	IndexURL string   `yaml:"index_url"`
	Timeout  Duration `yaml:"timeout"`
	Delay    Duration `yaml:"delay"`
	Output   string   `yaml:"output"`
}

// MapConfig holds settings for the render stage.
type MapConfig struct {
	Input  string `yaml:"input"`
	HTML   string `yaml:"html"`
	PNG    string `yaml:"png"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Duration wraps time.Duration so YAML values like "10s" parse naturally.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Scrape: ScrapeConfig{
			IndexURL: DefaultIndexURL,
			Timeout:  Duration(10 * time.Second),
			Delay:    Duration(time.Second),
			Output:   DefaultCSVPath,
		},
		Map: MapConfig{
			Input:  DefaultCSVPath,
			HTML:   DefaultHTMLPath,
			PNG:    DefaultPNGPath,
			Width:  1920,
			Height: 1080,
			Title:  DefaultTitle,
		},
	}
}

// Load reads configuration from a YAML file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the config
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadIfPresent reads the config file if it exists, otherwise returns defaults.
func LoadIfPresent(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults fills in any field the file left unset.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Scrape.IndexURL == "" {
		c.Scrape.IndexURL = def.Scrape.IndexURL
	}
	if c.Scrape.Timeout == 0 {
		c.Scrape.Timeout = def.Scrape.Timeout
	}
	if c.Scrape.Delay == 0 {
		c.Scrape.Delay = def.Scrape.Delay
	}
	if c.Scrape.Output == "" {
		c.Scrape.Output = def.Scrape.Output
	}
	if c.Map.Input == "" {
		c.Map.Input = def.Map.Input
	}
	if c.Map.HTML == "" {
		c.Map.HTML = def.Map.HTML
	}
	if c.Map.PNG == "" {
		c.Map.PNG = def.Map.PNG
	}
	if c.Map.Width == 0 {
		c.Map.Width = def.Map.Width
	}
	if c.Map.Height == 0 {
		c.Map.Height = def.Map.Height
	}
	if c.Map.Title == "" {
		c.Map.Title = def.Map.Title
	}
}
