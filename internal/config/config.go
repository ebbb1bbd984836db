// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Ortho   OrthoConfig   `yaml:"ortho"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial camera pose and navigation tuning.
type CameraConfig struct {
	Position         [3]float32 `yaml:"position"`
	Front            [3]float32 `yaml:"front"`
	Up               [3]float32 `yaml:"up"`
	Zoom             float32    `yaml:"zoom"`           // Vertical FOV in degrees
	MovementSpeed    float32    `yaml:"movement_speed"` // Camera-internal multiplier
	Speed            float32    `yaml:"speed"`          // Scroll-adjustable scalar
	MinSpeed         float32    `yaml:"min_speed"`
	SpeedStep        float32    `yaml:"speed_step"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
}

// OrthoConfig holds the fixed orthographic projection and pose.
type OrthoConfig struct {
	Size     float32    `yaml:"size"`
	Position [3]float32 `yaml:"position"`
	Front    [3]float32 `yaml:"front"`
}

// SceneConfig holds asset locations.
type SceneConfig struct {
	TextureDir    string `yaml:"texture_dir"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the desk scene defaults.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Desk Scene",
			Width:  1000,
			Height: 800,
			VSync:  true,
		},
		Camera: CameraConfig{
			Position:         [3]float32{0.5, 5.5, 10},
			Front:            [3]float32{0, -0.5, -2},
			Up:               [3]float32{0, 1, 0},
			Zoom:             80,
			MovementSpeed:    10,
			Speed:            2.5,
			MinSpeed:         0.5,
			SpeedStep:        0.5,
			MouseSensitivity: 0.1,
			Near:             0.1,
			Far:              100,
		},
		Ortho: OrthoConfig{
			Size:     20,
			Position: [3]float32{0, 10, 10},
			Front:    [3]float32{0, -1, -1},
		},
		Scene: SceneConfig{
			TextureDir:    "textures",
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Aspect returns the window aspect ratio.
func (c *Config) Aspect() float32 {
	if c.Window.Height == 0 {
		return 1
	}
	return float32(c.Window.Width) / float32(c.Window.Height)
}
