// Package config provides the TOML configuration file for the daemon
// and CLI tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration.
type Config struct {
	Capture   CaptureConfig   `toml:"capture"`
	Detector  DetectorConfig  `toml:"detector"`
	Motion    MotionConfig    `toml:"motion"`
	Recording RecordingConfig `toml:"recording"`
	Server    ServerConfig    `toml:"server"`
	Hooks     HooksConfig     `toml:"hooks"`
}

// CaptureConfig maps camera and activity gate settings.
type CaptureConfig struct {
	DeviceID int `toml:"device_id"`
	// MotionThreshold is the percentage of changed pixels that opens the
	// activity gate.
	MotionThreshold float64 `toml:"motion_threshold"`
	HoldFrames      int     `toml:"hold_frames"`
	IdleFPS         int     `toml:"idle_fps"`
	ActiveFPS       int     `toml:"active_fps"`
}

// DetectorConfig maps hand detector settings.
type DetectorConfig struct {
	MaxHands      int     `toml:"max_hands"`
	MinConfidence float64 `toml:"min_confidence"`
	MinTracking   float64 `toml:"min_tracking_confidence"`
	ScriptPath    string  `toml:"script_path"`
}

// MotionConfig maps descriptor derivation settings.
type MotionConfig struct {
	// PinchThreshold in pixels separates OK_SIGN from PINCH_READY.
	PinchThreshold float64 `toml:"pinch_threshold"`
}

// RecordingConfig maps session recording settings and the quality
// thresholds used when scoring a finished recording.
type RecordingConfig struct {
	DataDir          string  `toml:"data_dir"`
	StorePath        string  `toml:"store_path"`
	CountdownSeconds int     `toml:"countdown_seconds"`
	DurationSeconds  float64 `toml:"duration_seconds"`
	MinFrames        int     `toml:"min_frames"`
	QualityMinFPS    float64 `toml:"quality_min_fps"`
	QualityMinFrames int     `toml:"quality_min_frames"`
}

// ServerConfig maps the HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// HooksConfig maps the export hook settings.
type HooksConfig struct {
	Dir            string `toml:"dir"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns the configuration used when no file is present.
// Paths are rooted in the user home directory.
func Default() *Config {
	dataDir := "signstream_data"
	hooksDir := "hooks"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".signstream", "data")
		hooksDir = filepath.Join(home, ".signstream", "hooks")
	}

	return &Config{
		Capture: CaptureConfig{
			DeviceID:        0,
			MotionThreshold: 1.0,
			HoldFrames:      10,
			IdleFPS:         5,
			ActiveFPS:       15,
		},
		Detector: DetectorConfig{
			MaxHands:      1,
			MinConfidence: 0.5,
			MinTracking:   0.5,
		},
		Motion: MotionConfig{
			PinchThreshold: 40.0,
		},
		Recording: RecordingConfig{
			DataDir:          dataDir,
			StorePath:        filepath.Join(dataDir, "sessions.db"),
			CountdownSeconds: 3,
			DurationSeconds:  3.0,
			MinFrames:        20,
			QualityMinFPS:    25.0,
			QualityMinFrames: 30,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8765",
		},
		Hooks: HooksConfig{
			Dir:            hooksDir,
			TimeoutSeconds: 10,
		},
	}
}

// Load reads a TOML config from the given path, applied on top of the
// defaults. A missing file is not an error; an unreadable or malformed
// file is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Capture.IdleFPS <= 0 || c.Capture.ActiveFPS <= 0 {
		return fmt.Errorf("config: frame rates must be positive")
	}
	if c.Capture.ActiveFPS < c.Capture.IdleFPS {
		return fmt.Errorf("config: active_fps %d below idle_fps %d", c.Capture.ActiveFPS, c.Capture.IdleFPS)
	}
	if c.Motion.PinchThreshold <= 0 {
		return fmt.Errorf("config: pinch_threshold must be positive")
	}
	if c.Recording.MinFrames < 1 {
		return fmt.Errorf("config: min_frames must be at least 1")
	}
	if c.Detector.MaxHands < 1 {
		return fmt.Errorf("config: max_hands must be at least 1")
	}
	return nil
}
