package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"mappy/input"
)

// App is the process configuration. Command-line flags override it in main.
type App struct {
	ProcessName  string  `env:"MAPPY_PROCESS" envDefault:"ffxiv_dx11.exe"`
	SettingsDir  string  `env:"MAPPY_SETTINGS_DIR" envDefault:"settings"`
	MapCatalog   string  `env:"MAPPY_MAP_CATALOG" envDefault:"maps.yaml"`
	IconDir      string  `env:"MAPPY_ICON_DIR" envDefault:"icons"`
	OffsetsFile  string  `env:"MAPPY_OFFSETS"`
	ReplayFile   string  `env:"MAPPY_REPLAY"`
	ToggleKey    string  `env:"MAPPY_TOGGLE_KEY" envDefault:"CTRL+M"`
	WindowWidth  int     `env:"MAPPY_WINDOW_WIDTH" envDefault:"1024"`
	WindowHeight int     `env:"MAPPY_WINDOW_HEIGHT" envDefault:"768"`
	InitialZoom  float64 `env:"MAPPY_ZOOM" envDefault:"0.5"`
}

func LoadApp() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

func (a App) Validate() error {
	if a.WindowWidth <= 0 || a.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", a.WindowWidth, a.WindowHeight)
	}
	if a.InitialZoom < MIN_ZOOM || a.InitialZoom > MAX_ZOOM {
		return fmt.Errorf("zoom %.2f outside [%.1f, %.1f]", a.InitialZoom, MIN_ZOOM, MAX_ZOOM)
	}
	if _, err := input.ParseKeyCombo(a.ToggleKey); err != nil {
		return fmt.Errorf("toggle key: %w", err)
	}
	return nil
}
