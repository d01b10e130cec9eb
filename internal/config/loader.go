package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadBloop loads Bloop configuration.
// Search order: customPath -> ~/.bloop/configs/bloop.yaml -> ./configs/bloop.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadBloop(customPath string) (BloopConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BloopConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return BloopConfig{}, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("bloop.yaml"), filepath.Join("configs", "bloop.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("bloop.yaml", defaultBloopYAML)
	if err != nil {
		return DefaultBloopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data on top of the defaults, picking the format from the file extension.
func decode(path string, data []byte) (BloopConfig, error) {
	cfg := DefaultBloopConfig()

	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return BloopConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bloop", "configs", filename)
}

// Validate checks that every size and speed is usable by the simulation.
func (c BloopConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("ship.size", c.Ship.Size)
	positive("ship.speed", c.Ship.Speed)
	positive("ship.sprite_zoom", c.Ship.SpriteZoom)
	positive("projectile.size", c.Projectile.Size)
	positive("projectile.speed_factor", c.Projectile.SpeedFactor)
	positive("obstacles.min_size", c.Obstacles.MinSize)
	positive("obstacles.min_speed", c.Obstacles.MinSpeed)
	positive("explosion.lifetime", c.Explosion.Lifetime)

	if c.Obstacles.MaxSize < c.Obstacles.MinSize {
		errs = append(errs, fmt.Errorf("obstacles.max_size (%v) is below min_size (%v)", c.Obstacles.MaxSize, c.Obstacles.MinSize))
	}
	if c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed {
		errs = append(errs, fmt.Errorf("obstacles.max_speed (%v) is below min_speed (%v)", c.Obstacles.MaxSpeed, c.Obstacles.MinSpeed))
	}
	if c.Obstacles.SpawnRoll <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_roll must be positive, got %d", c.Obstacles.SpawnRoll))
	}
	if c.Obstacles.SpawnThreshold < 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_threshold must not be negative, got %d", c.Obstacles.SpawnThreshold))
	}
	if c.Input.HoldWindowMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_window_ms must not be negative, got %d", c.Input.HoldWindowMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
