package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all tabletop settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Board   BoardConfig   `yaml:"board"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	ShowFPS bool `yaml:"show_fps"`
}

// BoardConfig holds the dice board layout.
type BoardConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Gutter  float64 `yaml:"gutter"`
	Padding float64 `yaml:"padding"`

	// Dice lists the kinds to cycle through ("d4" .. "d20").
	// Empty means all five.
	Dice []string `yaml:"dice"`
}

// CameraConfig holds projection settings.
type CameraConfig struct {
	Mode string `yaml:"mode"` // "orthographic" or "perspective"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   1024,
			Height:  768,
			ShowFPS: false,
		},
		Board: BoardConfig{
			Rows:    3,
			Cols:    5,
			Gutter:  18,
			Padding: 48,
		},
		Camera: CameraConfig{
			Mode: "orthographic",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging and frame stats")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagMode    = flag.String("mode", "", "Camera mode: orthographic or perspective")
	flagShowFPS = flag.Bool("fps", false, "Show the FPS overlay")
)

// Load loads configuration with priority: defaults < file < flags.
// Call flag.Parse before this.
func Load() (*Config, error) {
	cfg := Default()

	configPath := *flagConfig
	if configPath == "" {
		if _, err := os.Stat("tabletop.yaml"); err == nil {
			configPath = "tabletop.yaml"
		}
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)
	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowFPS = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagMode != "" {
		cfg.Camera.Mode = *flagMode
	}
	if *flagShowFPS {
		cfg.Window.ShowFPS = true
	}
}
