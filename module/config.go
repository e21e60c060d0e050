package module

import (
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"

	"mappy/draw"
)

// Configuration is implemented by every module's settings type, usually by
// embedding Config.
type Configuration interface {
	Base() *Config
}

// Config holds the settings every module has plus optional capabilities.
// A nil capability means the module does not offer that setting.
type Config struct {
	Enable  bool           `yaml:"enable"`
	Layer   int            `yaml:"layer"`
	Icon    *IconConfig    `yaml:"icon,omitempty"`
	Tooltip *TooltipConfig `yaml:"tooltip,omitempty"`
	Colors  *ColorConfig   `yaml:"colors,omitempty"`
}

type IconConfig struct {
	ShowIcon     bool    `yaml:"show_icon"`
	IconScale    float32 `yaml:"icon_scale"`
	SelectedIcon uint32  `yaml:"selected_icon,omitempty"`
}

type TooltipConfig struct {
	ShowTooltip  bool  `yaml:"show_tooltip"`
	TooltipColor Color `yaml:"tooltip_color"`
}

type ColorConfig struct {
	OutlineColor Color `yaml:"outline_color"`
	FillColor    Color `yaml:"fill_color"`
}

func (c *Config) Base() *Config {
	return c
}

func (c *Config) IconSettings() (IconConfig, bool) {
	if c.Icon == nil {
		return IconConfig{}, false
	}
	return *c.Icon, true
}

func (c *Config) TooltipSettings() (TooltipConfig, bool) {
	if c.Tooltip == nil {
		return TooltipConfig{}, false
	}
	return *c.Tooltip, true
}

func (c *Config) ColorSettings() (ColorConfig, bool) {
	if c.Colors == nil {
		return ColorConfig{}, false
	}
	return *c.Colors, true
}

// Style folds the icon and tooltip capabilities into draw settings.
func (c *Config) Style() draw.Style {
	var s draw.Style
	if icon, ok := c.IconSettings(); ok {
		s.ShowIcon = icon.ShowIcon
		s.IconScale = icon.IconScale
	}
	if tip, ok := c.TooltipSettings(); ok {
		s.ShowTooltip = tip.ShowTooltip
		s.TooltipColor = tip.TooltipColor.NRGBA()
	}
	return s
}

// Color persists as #rrggbbaa.
type Color color.NRGBA

func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor accepts #rrggbb or #rrggbbaa.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var c Color
	switch len(s) {
	case 6:
		c.A = 0xff
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return Color{}, fmt.Errorf("color %q: %w", s, err)
		}
	default:
		return Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	return c, nil
}
