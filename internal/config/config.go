// Package config loads chart configuration from YAML/JSON/TOML files with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/phanxgames/statsview"
)

// EnvPrefix is the prefix of environment overrides, e.g. STATSVIEW_TOTAL.
const EnvPrefix = "STATSVIEW"

// Config is the complete chart configuration.
type Config struct {
	Total  float64   `mapstructure:"total"  yaml:"total"`
	Values []float64 `mapstructure:"values" yaml:"values"`

	Width   int     `mapstructure:"width"   yaml:"width"`
	Height  int     `mapstructure:"height"  yaml:"height"`
	Density float64 `mapstructure:"density" yaml:"density"` // pixels per DIP

	StrokeWidth    float64  `mapstructure:"stroke_width"     yaml:"stroke_width"` // DIP
	FontSize       float64  `mapstructure:"font_size"        yaml:"font_size"`    // DIP
	Colors         []string `mapstructure:"colors"           yaml:"colors"`       // "#rrggbb"
	NotFilledColor string   `mapstructure:"not_filled_color" yaml:"not_filled_color"`
	LabelColor     string   `mapstructure:"label_color"      yaml:"label_color"`
	Background     string   `mapstructure:"background"       yaml:"background"`
	AnimationType  string   `mapstructure:"animation_type"   yaml:"animation_type"` // 0..2 or name
	FallbackSeed   uint64   `mapstructure:"fallback_seed"    yaml:"fallback_seed"`

	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./statsview.yaml (working directory)
//  2. ~/.statsview/statsview.yaml (home directory)
//
// Environment variables override config file values.
// Format: STATSVIEW_<KEY>, e.g. STATSVIEW_ANIMATION_TYPE
//
// List keys (values, colors) take comma-separated items without spaces
// around the separators, e.g. STATSVIEW_VALUES=100,200,300. Other
// separators fail to decode.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("statsview")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".statsview"))

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path. The format is
// taken from the file extension.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults mirrors the sample chart: four equal quarters of 1000.
func setDefaults(v *viper.Viper) {
	v.SetDefault("total", 1000)
	v.SetDefault("values", []float64{250, 250, 250, 250})

	v.SetDefault("width", 400)
	v.SetDefault("height", 400)
	v.SetDefault("density", statsview.DefaultDensity)

	v.SetDefault("stroke_width", statsview.DefaultStrokeWidth)
	v.SetDefault("font_size", statsview.DefaultFontSize)
	v.SetDefault("colors", []string{"#ff7043", "#66bb6a", "#42a5f5", "#ffca28"})
	v.SetDefault("not_filled_color", "#888888")
	v.SetDefault("label_color", "#000000")
	v.SetDefault("background", "#ffffff")
	v.SetDefault("animation_type", "rotation")
	v.SetDefault("fallback_seed", 1)

	v.SetDefault("debug", false)
}

// Validate checks the configuration for errors that make rendering
// meaningless. A missing color table is fatal.
func (c *Config) Validate() error {
	if len(c.Colors) == 0 {
		return fmt.Errorf("config: %w", statsview.ErrNoColors)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if _, err := c.Style(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("config: background: %w", err)
	}
	return nil
}

// Options converts the configuration into style options.
func (c *Config) Options() (statsview.Options, error) {
	colors := make([]statsview.Color, 0, len(c.Colors))
	for _, s := range c.Colors {
		col, err := statsview.ParseHexColor(s)
		if err != nil {
			return statsview.Options{}, err
		}
		colors = append(colors, col)
	}
	anim, err := statsview.ParseAnimationType(c.AnimationType)
	if err != nil {
		return statsview.Options{}, err
	}
	opts := statsview.Options{
		StrokeWidth:   c.StrokeWidth,
		FontSize:      c.FontSize,
		Colors:        colors,
		AnimationType: anim,
		Density:       c.Density,
		FallbackSeed:  c.FallbackSeed,
	}
	if c.NotFilledColor != "" {
		col, err := statsview.ParseHexColor(c.NotFilledColor)
		if err != nil {
			return statsview.Options{}, err
		}
		opts.NotFilledColor = &col
	}
	if c.LabelColor != "" {
		col, err := statsview.ParseHexColor(c.LabelColor)
		if err != nil {
			return statsview.Options{}, err
		}
		opts.LabelColor = &col
	}
	return opts, nil
}

// Style builds the immutable chart style.
func (c *Config) Style() (*statsview.Style, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return statsview.NewStyle(opts)
}

// Spec returns the chart data.
func (c *Config) Spec() statsview.ChartSpec {
	return statsview.ChartSpec{Total: c.Total, Values: append([]float64(nil), c.Values...)}
}

// BackgroundColor parses Background; empty means transparent.
func (c *Config) BackgroundColor() (statsview.Color, error) {
	if c.Background == "" {
		return statsview.Color{}, nil
	}
	return statsview.ParseHexColor(c.Background)
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
