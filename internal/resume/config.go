package resume

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/resumeparse/internal/extract"
	"github.com/dgallion1/resumeparse/internal/layout"
	"github.com/dgallion1/resumeparse/internal/sections"
	"gopkg.in/yaml.v3"
)

// Config bundles the heuristics of every pipeline stage.
type Config struct {
	Layout   layout.Config   `yaml:"layout"`
	Sections sections.Config `yaml:"sections"`
	Extract  extract.Config  `yaml:"extract"`
}

// DefaultConfig returns the defaults of every stage.
func DefaultConfig() Config {
	return Config{
		Layout:   layout.DefaultConfig(),
		Sections: sections.DefaultConfig(),
		Extract:  extract.DefaultConfig(),
	}
}

// LoadConfig overlays YAML heuristics onto DefaultConfig. Keys absent from
// the document keep their defaults; lists such as the section registry are
// replaced wholesale.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode heuristics: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads heuristics from a YAML file. An empty path returns
// the defaults.
func LoadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open heuristics %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects thresholds that would make a stage degenerate.
func (c Config) Validate() error {
	if c.Layout.YTolerance < 0 {
		return fmt.Errorf("layout.y_tolerance must be >= 0, got %v", c.Layout.YTolerance)
	}
	if c.Layout.AvgCharWidth <= 0 {
		return fmt.Errorf("layout.avg_char_width must be > 0, got %v", c.Layout.AvgCharWidth)
	}
	if c.Sections.MaxHeadingLength < 1 {
		return fmt.Errorf("sections.max_heading_length must be >= 1, got %d", c.Sections.MaxHeadingLength)
	}
	for i, canon := range c.Sections.Registry {
		if canon.Key == "" {
			return fmt.Errorf("sections.registry[%d]: key is required", i)
		}
	}
	if c.Extract.GapRatio <= 0 {
		return fmt.Errorf("extract.gap_ratio must be > 0, got %v", c.Extract.GapRatio)
	}
	return nil
}
