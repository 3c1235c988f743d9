// Package config loads the editor configuration from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/peacock/pkg/editor"
	"github.com/dd0wney/peacock/pkg/geom"
	"github.com/dd0wney/peacock/pkg/layout"
	"github.com/dd0wney/peacock/pkg/logging"
	"github.com/dd0wney/peacock/pkg/model"
	"github.com/dd0wney/peacock/pkg/semantics"
	"github.com/dd0wney/peacock/pkg/view"
)

var ErrUnknownFormat = errors.New("unknown config format")

type Config struct {
	Editor    EditorConfig    `yaml:"editor" toml:"editor"`
	Layout    LayoutConfig    `yaml:"layout" toml:"layout"`
	Terminal  TerminalConfig  `yaml:"terminal" toml:"terminal"`
	Semantics SemanticsConfig `yaml:"semantics" toml:"semantics"`
	Log       LogConfig       `yaml:"log" toml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics" toml:"metrics"`
}

type EditorConfig struct {
	// HitRadius is the pickup distance around socket centers.
	HitRadius    float64       `yaml:"hit_radius" toml:"hit_radius" validate:"gt=0,lte=100"`
	TickInterval time.Duration `yaml:"tick_interval" toml:"tick_interval" validate:"gte=0"`
}

type LayoutConfig struct {
	OriginX      float64 `yaml:"origin_x" toml:"origin_x"`
	OriginY      float64 `yaml:"origin_y" toml:"origin_y"`
	NodeWidth    float64 `yaml:"node_width" toml:"node_width" validate:"gt=0"`
	NodeSpacing  float64 `yaml:"node_spacing" toml:"node_spacing" validate:"gte=0"`
	HeaderHeight float64 `yaml:"header_height" toml:"header_height" validate:"gt=0"`
	SlotHeight   float64 `yaml:"slot_height" toml:"slot_height" validate:"gt=0"`
	SocketRadius float64 `yaml:"socket_radius" toml:"socket_radius" validate:"gt=0"`
	Columns      int     `yaml:"columns" toml:"columns" validate:"min=1"`

	// Arrange names the layout applied to loaded graphs and on demand.
	Arrange string `yaml:"arrange" toml:"arrange" validate:"oneof=grid layered circular"`
}

// TerminalConfig is the size of one terminal cell in graph units.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width" validate:"gt=0"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height" validate:"gt=0"`
}

// SemanticsConfig adds conversions to the default list.
type SemanticsConfig struct {
	Conversions []semantics.Pair `yaml:"conversions" toml:"conversions" validate:"dive"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file" toml:"file"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Addr    string `yaml:"addr" toml:"addr" validate:"required_if=Enabled true,omitempty,hostname_port"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := model.DefaultPlacement
	return Config{
		Editor: EditorConfig{
			HitRadius:    editor.DefaultHitRadius,
			TickInterval: 100 * time.Millisecond,
		},
		Layout: LayoutConfig{
			OriginX:      p.Origin.X,
			OriginY:      p.Origin.Y,
			NodeWidth:    p.NodeWidth,
			NodeSpacing:  p.Spacing,
			HeaderHeight: p.HeaderHeight,
			SlotHeight:   p.SlotHeight,
			SocketRadius: view.DefaultDimensions.SocketRadius,
			Columns:      p.Columns,
			Arrange:      "grid",
		},
		Terminal: TerminalConfig{CellWidth: 8, CellHeight: 16},
		Log:      LogConfig{Level: "info"},
		Metrics:  MetricsConfig{Addr: "localhost:9090"},
	}
}

// Load reads the file at path over the defaults and validates the result.
// The format follows the extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	default:
		return Config{}, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Placement is the layout used for parsed graphs.
func (c Config) Placement() model.Placement {
	return model.Placement{
		Origin:       geom.Pt(c.Layout.OriginX, c.Layout.OriginY),
		NodeWidth:    c.Layout.NodeWidth,
		HeaderHeight: c.Layout.HeaderHeight,
		SlotHeight:   c.Layout.SlotHeight,
		Spacing:      c.Layout.NodeSpacing,
		Columns:      c.Layout.Columns,
	}
}

// Arrangement returns the configured layout.
func (c Config) Arrangement() (layout.Layout, error) {
	return layout.ByName(c.Layout.Arrange, c.Placement())
}

func (c Config) Dimensions() view.Dimensions {
	return view.Dimensions{
		HeaderHeight: c.Layout.HeaderHeight,
		SlotHeight:   c.Layout.SlotHeight,
		SocketRadius: c.Layout.SocketRadius,
	}
}

// Compatibility returns the default conversions plus the configured ones.
func (c Config) Compatibility() *semantics.Compatibility {
	return semantics.Default().With(c.Semantics.Conversions...)
}

func (c Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Log.Level)
}

// Factory returns the editor factory for this configuration.
func (c Config) Factory() *editor.Factory {
	return &editor.Factory{
		Dimensions: c.Dimensions(),
		Theme:      view.DefaultTheme(),
		Semantics:  c.Compatibility(),
		HitRadius:  c.Editor.HitRadius,
	}
}
