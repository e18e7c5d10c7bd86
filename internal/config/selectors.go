package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tmh-tarot-scraper/internal/scraper"
)

// LoadSelectors loads card selectors from a YAML file. Used when the site
// markup changes and the built-in defaults stop matching.
func LoadSelectors(filePath string) (*scraper.Selectors, error) {
	if filePath == "" {
		return nil, fmt.Errorf("selectors file path is empty")
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open selectors file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close selectors file: %v\n", closeErr)
		}
	}()

	var selectors scraper.Selectors
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&selectors); err != nil {
		return nil, fmt.Errorf("failed to parse selectors YAML: %w", err)
	}

	if err := validateSelectors(&selectors); err != nil {
		return nil, err
	}

	return &selectors, nil
}

// Selectors resolves the selector set for a run: the configured file when
// set, otherwise the built-in defaults.
func (c *Config) Selectors() (*scraper.Selectors, error) {
	if c.SelectorsFile == "" {
		return scraper.DefaultSelectors(), nil
	}
	return LoadSelectors(c.SelectorsFile)
}

// validateSelectors checks the minimal selector set
func validateSelectors(s *scraper.Selectors) error {
	if s.CardContainer == "" {
		return fmt.Errorf("card_container is required")
	}
	if len(s.TitleSelectors) == 0 {
		return fmt.Errorf("title_selectors is required")
	}
	if len(s.ParagraphSelectors) == 0 {
		return fmt.Errorf("paragraph_selectors is required")
	}
	if len(s.ImageSelectors) == 0 {
		return fmt.Errorf("image_selectors is required")
	}
	return nil
}
