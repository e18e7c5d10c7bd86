package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	BaseURL       string              `yaml:"base_url"`
	Pages         []PageConfig        `yaml:"pages"`
	HTTP          HttpConfig          `yaml:"http"`
	Output        OutputConfig        `yaml:"output"`
	SelectorsFile string              `yaml:"selectors_file"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PageConfig is one section page. The label is assigned to every card
// extracted from the page, it is never parsed from the markup.
type PageConfig struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type HttpConfig struct {
	UserAgent      string `yaml:"user_agent"`
	PageTimeoutMS  int    `yaml:"page_timeout_ms"`
	ImageTimeoutMS int    `yaml:"image_timeout_ms"`
}

type OutputConfig struct {
	CSVPath        string `yaml:"csv_path"`
	ImagesDir      string `yaml:"images_dir"`
	DownloadImages bool   `yaml:"download_images"`
}

type ObservabilityConfig struct {
	LogPath  string `yaml:"log_path"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in configuration so the binary runs with
// no arguments. A config file overrides individual fields.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "https://www.thismighthurttarot.com",
		Pages: []PageConfig{
			{Label: "Major Arcana", Path: "/majorarcana"},
			{Label: "Wands", Path: "/wands"},
			{Label: "Cups", Path: "/cups"},
			{Label: "Swords", Path: "/swords"},
			{Label: "Pentacles", Path: "/pentacles"},
		},
		HTTP: HttpConfig{
			UserAgent:      "Mozilla/5.0 (compatible; TMH-Scraper/1.1; +https://example.org)",
			PageTimeoutMS:  30000,
			ImageTimeoutMS: 60000,
		},
		Output: OutputConfig{
			CSVPath:        "this_might_hurt_tarot.csv",
			ImagesDir:      "images",
			DownloadImages: true,
		},
		Observability: ObservabilityConfig{
			LogPath:  "logs/tmh-tarot.log",
			LogLevel: "info",
		},
	}
}

// Validation
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if len(c.Pages) == 0 {
		return fmt.Errorf("pages must list at least one section")
	}
	for i, p := range c.Pages {
		if p.Label == "" {
			return fmt.Errorf("pages[%d].label is required", i)
		}
		if p.Path == "" {
			return fmt.Errorf("pages[%d].path is required", i)
		}
	}
	if c.HTTP.UserAgent == "" {
		return fmt.Errorf("http.user_agent is required")
	}
	if c.HTTP.PageTimeoutMS <= 0 {
		return fmt.Errorf("http.page_timeout_ms must be > 0")
	}
	if c.HTTP.ImageTimeoutMS <= 0 {
		return fmt.Errorf("http.image_timeout_ms must be > 0")
	}
	if c.Output.CSVPath == "" {
		return fmt.Errorf("output.csv_path is required")
	}
	if c.Output.DownloadImages && c.Output.ImagesDir == "" {
		return fmt.Errorf("output.images_dir is required when output.download_images is true")
	}
	if c.Observability.LogPath == "" {
		return fmt.Errorf("observability.log_path is required")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("observability.log_level is required")
	}
	return nil
}

// PageURL joins a section path onto the base URL.
func (c *Config) PageURL(p PageConfig) string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if !strings.HasPrefix(p.Path, "/") {
		return base + "/" + p.Path
	}
	return base + p.Path
}

// Getters
func (c *Config) GetPageTimeout() time.Duration {
	return time.Duration(c.HTTP.PageTimeoutMS) * time.Millisecond
}

func (c *Config) GetImageTimeout() time.Duration {
	return time.Duration(c.HTTP.ImageTimeoutMS) * time.Millisecond
}
