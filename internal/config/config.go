// Package config provides YAML-based game configuration loading for the
// arcade platform. TOML files are accepted as well.
package config

// BloopConfig contains all tuning for the Bloop shooter.
type BloopConfig struct {
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile" toml:"projectile"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Explosion  ExplosionConfig  `yaml:"explosion" toml:"explosion"`
	Background BackgroundConfig `yaml:"background" toml:"background"`
	HUD        HUDConfig        `yaml:"hud" toml:"hud"`
	Input      InputConfig      `yaml:"input" toml:"input"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Size       float64 `yaml:"size" toml:"size"`               // Collision box side, pixels
	Speed      float64 `yaml:"speed" toml:"speed"`             // Pixels per second
	FireOffset float64 `yaml:"fire_offset" toml:"fire_offset"` // Projectile spawns this far above the ship
	SpriteZoom float64 `yaml:"sprite_zoom" toml:"sprite_zoom"` // Sprite destination scale
}

// ProjectileConfig defines projectiles fired by the ship.
type ProjectileConfig struct {
	Size        float64 `yaml:"size" toml:"size"`
	SpeedFactor float64 `yaml:"speed_factor" toml:"speed_factor"` // Multiple of ship speed
}

// ObstacleConfig defines falling squares and their spawn roll.
type ObstacleConfig struct {
	SpawnRoll      int     `yaml:"spawn_roll" toml:"spawn_roll"`           // Roll is uniform in [0, spawn_roll)
	SpawnThreshold int     `yaml:"spawn_threshold" toml:"spawn_threshold"` // Spawn when roll >= threshold
	MinSize        float64 `yaml:"min_size" toml:"min_size"`
	MaxSize        float64 `yaml:"max_size" toml:"max_size"`
	MinSpeed       float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed" toml:"max_speed"`
}

// ExplosionConfig defines the particle burst spawned by a hit.
type ExplosionConfig struct {
	Lifetime           float64 `yaml:"lifetime" toml:"lifetime"` // Seconds
	LifetimeRandomness float64 `yaml:"lifetime_randomness" toml:"lifetime_randomness"`
	Explosiveness      float64 `yaml:"explosiveness" toml:"explosiveness"`
	InitialVelocity    float64 `yaml:"initial_velocity" toml:"initial_velocity"` // Pixels per second
	Size               float64 `yaml:"size" toml:"size"`
	SizeRandomness     float64 `yaml:"size_randomness" toml:"size_randomness"`
}

// BackgroundConfig defines the starfield feed.
type BackgroundConfig struct {
	DirectionRate float64 `yaml:"direction_rate" toml:"direction_rate"` // direction_modifier change per second of horizontal input
}

// HUDConfig defines text placement.
type HUDConfig struct {
	Margin     float64 `yaml:"margin" toml:"margin"`
	Baseline   float64 `yaml:"baseline" toml:"baseline"`
	FontSize   float64 `yaml:"font_size" toml:"font_size"`
	BannerSize float64 `yaml:"banner_size" toml:"banner_size"`
}

// InputConfig defines how the terminal key stream becomes held keys.
// HoldWindowMS must cover the terminal's auto-repeat delay, otherwise a held
// arrow stops for a moment after the first press.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms" toml:"hold_window_ms"`
}
