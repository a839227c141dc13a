// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Style   StyleConfig   `yaml:"style"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	ShowFPS    bool `yaml:"show_fps"`
}

// CameraConfig holds the orbit camera's starting pose.
type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	Yaw      float32 `yaml:"yaw"`   // degrees
	Pitch    float32 `yaml:"pitch"` // degrees
	FOV      float32 `yaml:"fov"`   // degrees
}

// StyleConfig holds the dash appearance used by the showcase scene.
type StyleConfig struct {
	SegmentLength float32 `yaml:"segment_length"`
	Spacing       float32 `yaml:"spacing"`
	TimeScale     float32 `yaml:"time_scale"`
	DepthTest     bool    `yaml:"depth_test"`
}

// SceneConfig holds reference geometry settings.
type SceneConfig struct {
	ShowGrid   bool    `yaml:"show_grid"`
	ShowAxes   bool    `yaml:"show_axes"`
	GridExtent float32 `yaml:"grid_extent"`
	GridStep   float32 `yaml:"grid_step"`
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
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowFPS:    true,
		},
		Camera: CameraConfig{
			Distance: 12,
			Yaw:      45,
			Pitch:    30,
			FOV:      60,
		},
		Style: StyleConfig{
			SegmentLength: 0.4,
			Spacing:       0.2,
			TimeScale:     1,
			DepthTest:     true,
		},
		Scene: SceneConfig{
			ShowGrid:   true,
			ShowAxes:   true,
			GridExtent: 10,
			GridStep:   1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
