package config

import (
	_ "embed"
)

//go:embed defaults/bloop.yaml
var defaultBloopYAML []byte

// DefaultBloopConfig returns the default Bloop configuration.
func DefaultBloopConfig() BloopConfig {
	return BloopConfig{
		Ship: ShipConfig{
			Size:       32,
			Speed:      200,
			FireOffset: 24,
			SpriteZoom: 2,
		},
		Projectile: ProjectileConfig{
			Size:        32,
			SpeedFactor: 2,
		},
		Obstacles: ObstacleConfig{
			SpawnRoll:      100,
			SpawnThreshold: 95,
			MinSize:        16,
			MaxSize:        64,
			MinSpeed:       50,
			MaxSpeed:       150,
		},
		Explosion: ExplosionConfig{
			Lifetime:           0.6,
			LifetimeRandomness: 0.3,
			Explosiveness:      0.65,
			InitialVelocity:    300,
			Size:               3,
			SizeRandomness:     0.3,
		},
		Background: BackgroundConfig{
			DirectionRate: 0.05,
		},
		HUD: HUDConfig{
			Margin:     10,
			Baseline:   35,
			FontSize:   25,
			BannerSize: 50,
		},
		Input: InputConfig{
			HoldWindowMS: 500,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bloop":
		return defaultBloopYAML
	default:
		return nil
	}
}
