package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/img2swipes/img2swipes/pkg/geom"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = "config.toml"

// Config is the TOML configuration shared by all commands.
type Config struct {
	ServerURL      string `toml:"server_url"`
	TargetPlatform string `toml:"target_platform"`
	ArtifactsDir   string `toml:"artifacts_dir"`

	Canvas  CanvasConfig  `toml:"canvas"`
	Strokes StrokesConfig `toml:"strokes"`
	Frame   FrameConfig   `toml:"frame"`
	Cache   CacheConfig   `toml:"cache"`
}

// CanvasConfig locates the drawable rectangle in device viewport
// pixels.
type CanvasConfig struct {
	X      int `toml:"x"`
	Y      int `toml:"y"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// StrokesConfig controls stroke generation and replay timing.
type StrokesConfig struct {
	Length              int `toml:"length"`
	DurationMS          int `toml:"duration_ms"`
	LuminosityThreshold int `toml:"luminosity_threshold"`
}

// FrameConfig selects which helper rectangles are traced before the
// image strokes: the full canvas, the scaled image bounds, and the
// tight bounding box of the foreground content.
type FrameConfig struct {
	Canvas  bool `toml:"canvas"`
	Image   bool `toml:"image"`
	Content bool `toml:"content"`
}

// CacheConfig selects the plan cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"` // file, redis or none
	RedisAddr string `toml:"redis_addr"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      "http://127.0.0.1:4723",
		TargetPlatform: "android",
		ArtifactsDir:   "artifacts",
		Canvas:         CanvasConfig{X: 0, Y: 0, Width: 1080, Height: 1920},
		Strokes: StrokesConfig{
			Length:              50,
			DurationMS:          20,
			LuminosityThreshold: 200,
		},
		Cache: CacheConfig{Backend: "file", RedisAddr: "localhost:6379"},
	}
}

// LoadConfig reads path on top of the defaults. An empty path falls
// back to config.toml in the working directory, which may be absent;
// an explicitly given path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	switch c.TargetPlatform {
	case "android", "ios":
	default:
		return fmt.Errorf("target_platform %q must be android or ios", c.TargetPlatform)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas %dx%d is empty", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Strokes.Length <= 0 {
		return fmt.Errorf("stroke length must be positive, got %d", c.Strokes.Length)
	}
	if c.Strokes.DurationMS < 0 {
		return fmt.Errorf("stroke duration must not be negative, got %dms", c.Strokes.DurationMS)
	}
	if c.Strokes.LuminosityThreshold < 0 || c.Strokes.LuminosityThreshold > 255 {
		return fmt.Errorf("luminosity threshold %d outside 0-255", c.Strokes.LuminosityThreshold)
	}
	switch c.Cache.Backend {
	case "file", "redis", "none":
	default:
		return fmt.Errorf("cache backend %q must be file, redis or none", c.Cache.Backend)
	}
	return nil
}

// CanvasRect returns the canvas as an inclusive pixel rectangle in
// viewport coordinates.
func (c *Config) CanvasRect() geom.Rect {
	return geom.Rect{
		Min: geom.Point{X: c.Canvas.X, Y: c.Canvas.Y},
		Max: geom.Point{X: c.Canvas.X + c.Canvas.Width - 1, Y: c.Canvas.Y + c.Canvas.Height - 1},
	}
}
