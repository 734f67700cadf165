// Package config holds the sandbox runtime preferences, persisted as YAML
// next to the binary. A missing file falls back to defaults so a fresh
// checkout runs without setup; a file that exists but fails to parse is
// reported instead of silently ignored.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the config file location, relative to the process working
// directory.
const Path = "config/sandbox.yaml"

// Config groups the tunables of the simulation and the overlays. Physics step
// policy values of zero mean "use the engine default".
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Overlay OverlayConfig `yaml:"overlay"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type PhysicsConfig struct {
	GravityY float32 `yaml:"gravity_y"`
	// BroadPhase selects the acceleration strategy: grid, adaptive,
	// quadtree or sweep.
	BroadPhase          string  `yaml:"broad_phase"`
	CellSize            float32 `yaml:"cell_size"`
	BruteForceThreshold int     `yaml:"brute_force_threshold"`
	Workers             int     `yaml:"workers"`

	// Step policy. Zero values fall back to the engine defaults.
	StepDT             float32 `yaml:"step_dt"`
	BroadPhaseInterval int     `yaml:"broad_phase_interval"`
	NeighborInterval   int     `yaml:"neighbor_interval"`
	PeriodicInterval   int     `yaml:"periodic_check_interval"`
}

type OverlayConfig struct {
	ShowFPS       bool `yaml:"show_fps"`
	ShowGrid      bool `yaml:"show_grid"`
	ShowVelocity  bool `yaml:"show_velocity"`
	ShowCounters  bool `yaml:"show_counters"`
	ShowInspector bool `yaml:"show_inspector"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1200,
			Height: 800,
			Title:  "sandbox2d",
			FPS:    60,
		},
		Physics: PhysicsConfig{
			GravityY:            981,
			BroadPhase:          "grid",
			CellSize:            100,
			BruteForceThreshold: 200,
			Workers:             1,
		},
		Overlay: OverlayConfig{
			ShowFPS:       true,
			ShowCounters:  true,
			ShowInspector: true,
		},
	}
}

// Load reads the config file. A missing file returns Default() without
// creating anything; a present but unparsable file is an error.
func Load() (Config, error) {
	return LoadFrom(Path)
}

// LoadFrom reads a config from an explicit path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes the config, creating the directory if needed.
func Save(cfg Config) error {
	return SaveTo(Path, cfg)
}

// SaveTo writes a config to an explicit path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
