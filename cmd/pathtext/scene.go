package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	pathtext "github.com/JumpeiSaito99/svg-pathtext-trial"
)

// Scene is the YAML description of one curve-text rendering: the
// anchors, the texts, and the styling knobs.
type Scene struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Background is a path to the backdrop image, optional.
	Background string `yaml:"background"`

	// Font is a path to a TTF/OTF file used for raster output.
	// Optional; a bundled fallback font is used when empty.
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"fontSize"`

	Text         string            `yaml:"text"`
	Translations map[string]string `yaml:"translations"`

	// Source selects the displayed text: primary, translated or custom.
	Source string `yaml:"source"`
	Custom string `yaml:"custom"`

	// Lang is the preferred language for source: translated ("en",
	// "de-AT", ...).
	Lang string `yaml:"lang"`

	FollowCurve  bool `yaml:"followCurve"`
	Proportional bool `yaml:"proportional"`
	ShowCurve    bool `yaml:"showCurve"`

	Anchors []ScenePoint `yaml:"anchors"`
}

// ScenePoint is one anchor in scene coordinates.
type ScenePoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadScene reads and validates a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}

	if s.Width <= 0 {
		s.Width = 800
	}
	if s.Height <= 0 {
		s.Height = 600
	}
	if s.FontSize <= 0 {
		s.FontSize = 28
	}
	if _, err := pathtext.ParseTextSource(s.Source); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &s, nil
}

// anchors converts the scene anchors into curve input.
func (s *Scene) anchors() []pathtext.Point {
	pts := make([]pathtext.Point, len(s.Anchors))
	for i, a := range s.Anchors {
		pts[i] = pathtext.Pt(a.X, a.Y)
	}
	return pts
}
