package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over discovery
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes near=%g far=%g are invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.MinSpeed <= 0 {
		errs = append(errs, fmt.Errorf("camera min_speed %g must be positive", c.Camera.MinSpeed))
	}
	if c.Ortho.Size <= 0 {
		errs = append(errs, fmt.Errorf("ortho size %g must be positive", c.Ortho.Size))
	}
	if err := checkFront("camera.front", c.Camera.Front, c.Camera.Up); err != nil {
		errs = append(errs, err)
	}
	if err := checkFront("ortho.front", c.Ortho.Front, c.Camera.Up); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// checkFront rejects view directions that cannot span a camera basis with up.
func checkFront(name string, front, up [3]float32) error {
	const eps = 1e-6
	if dot3(up, up) < eps {
		return fmt.Errorf("%s: up vector %v has zero length", name, up)
	}
	if dot3(front, front) < eps {
		return fmt.Errorf("%s %v has zero length", name, front)
	}
	cross := [3]float32{
		front[1]*up[2] - front[2]*up[1],
		front[2]*up[0] - front[0]*up[2],
		front[0]*up[1] - front[1]*up[0],
	}
	if dot3(cross, cross) < eps*dot3(front, front)*dot3(up, up) {
		return fmt.Errorf("%s %v is parallel to up %v", name, front, up)
	}
	return nil
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "DeskScene")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "DeskScene")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "deskscene")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "deskscene")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
