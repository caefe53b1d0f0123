package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// WanderingConfig makes a mob roam around its spawn point.
type WanderingConfig struct {
	Speed      float64       `yaml:"speed"`
	Radius     float64       `yaml:"radius"`
	ChangeTime time.Duration `yaml:"change_time"`
}

// FollowerConfig makes a mob walk toward its target at all times.
type FollowerConfig struct {
	ChasingSpeed float64 `yaml:"chasing_speed"`
}

// RusherConfig makes a mob dash at a target inside its vision.
type RusherConfig struct {
	Vision         float64       `yaml:"vision"`
	ChasingSpeed   float64       `yaml:"chasing_speed"`
	RushCooldown   time.Duration `yaml:"rush_cooldown"`
	AttacksPerRush int           `yaml:"attacks_per_rush"`
}

// LongRangedConfig makes a mob keep its distance from a target.
type LongRangedConfig struct {
	Vision                  float64       `yaml:"vision"`
	ChasingSpeed            float64       `yaml:"chasing_speed"`
	DistanceAttackRange     float64       `yaml:"distance_attack_range"`
	ChangeDirectionCooldown time.Duration `yaml:"change_direction_cooldown"`
}

// MiddleRangedConfig combines rush and long range behavior.
type MiddleRangedConfig struct {
	Vision                  float64       `yaml:"vision"`
	ChasingSpeed            float64       `yaml:"chasing_speed"`
	RushCooldown            time.Duration `yaml:"rush_cooldown"`
	AttacksPerRush          int           `yaml:"attacks_per_rush"`
	DistanceAttackRange     float64       `yaml:"distance_attack_range"`
	ChangeDirectionCooldown time.Duration `yaml:"change_direction_cooldown"`
	RushActivationRange     float64       `yaml:"rush_activation_range"`
}

// AttackConfig gates a mob's attacks. ProjectileSpeed 0 means melee.
type AttackConfig struct {
	Cooldown        time.Duration `yaml:"cooldown"`
	Range           float64       `yaml:"range"`
	ProjectileSpeed float64       `yaml:"projectile_speed"`
}

// MobTypeConfig describes one mob preset.
type MobTypeConfig struct {
	Name      string  `yaml:"name"`
	Sprite    string  `yaml:"sprite"`
	Health    int     `yaml:"health"`
	Damage    int     `yaml:"damage"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Draggable bool    `yaml:"draggable"`

	Wandering    *WanderingConfig    `yaml:"wandering,omitempty"`
	Follower     *FollowerConfig     `yaml:"follower,omitempty"`
	Rusher       *RusherConfig       `yaml:"rusher,omitempty"`
	LongRanged   *LongRangedConfig   `yaml:"long_ranged,omitempty"`
	MiddleRanged *MiddleRangedConfig `yaml:"middle_ranged,omitempty"`
	Attack       *AttackConfig       `yaml:"attack,omitempty"`
}

// Mobs is the mob catalogue keyed by type name.
var Mobs map[string]MobTypeConfig

func init() {
	tile := C.TileSize
	Mobs = map[string]MobTypeConfig{
		"slime": {
			Name: "slime", Sprite: "slime", Health: 6, Damage: 1,
			Width: tile * 0.6, Height: tile * 0.5,
			Wandering: &WanderingConfig{Speed: 1, Radius: tile * 3, ChangeTime: 3 * time.Second},
			Attack:    &AttackConfig{Cooldown: time.Second, Range: tile * 0.8},
		},
		"stalker": {
			Name: "stalker", Sprite: "stalker", Health: 8, Damage: 2,
			Width: tile * 0.6, Height: tile * 0.9,
			Follower: &FollowerConfig{ChasingSpeed: 1.5},
			Attack:   &AttackConfig{Cooldown: 1200 * time.Millisecond, Range: tile * 0.8},
		},
		"boar": {
			Name: "boar", Sprite: "boar", Health: 10, Damage: 3,
			Width: tile * 0.8, Height: tile * 0.6,
			Wandering: &WanderingConfig{Speed: 0.8, Radius: tile * 2, ChangeTime: 4 * time.Second},
			Rusher:    &RusherConfig{Vision: tile * 6, ChasingSpeed: 1.5, RushCooldown: 3 * time.Second},
			Attack:    &AttackConfig{Cooldown: time.Second, Range: tile * 0.8},
		},
		"archer": {
			Name: "archer", Sprite: "archer", Health: 6, Damage: 2,
			Width: tile * 0.6, Height: tile * 0.9,
			Wandering:  &WanderingConfig{Speed: 0.8, Radius: tile * 2, ChangeTime: 3 * time.Second},
			LongRanged: &LongRangedConfig{Vision: tile * 8, ChasingSpeed: 1.2, DistanceAttackRange: tile * 4, ChangeDirectionCooldown: 1500 * time.Millisecond},
			Attack:     &AttackConfig{Cooldown: 1200 * time.Millisecond, Range: tile * 7, ProjectileSpeed: 6},
		},
		"shaman": {
			Name: "shaman", Sprite: "shaman", Health: 12, Damage: 2,
			Width: tile * 0.7, Height: tile * 0.9,
			MiddleRanged: &MiddleRangedConfig{
				Vision: tile * 7, ChasingSpeed: 1.3,
				RushCooldown: 4 * time.Second, AttacksPerRush: 3,
				DistanceAttackRange: tile * 3, ChangeDirectionCooldown: 2 * time.Second,
				RushActivationRange: tile * 4,
			},
			Attack: &AttackConfig{Cooldown: 1500 * time.Millisecond, Range: tile * 6, ProjectileSpeed: 5},
		},
		"crate": {
			Name: "crate", Sprite: "crate", Width: tile * 0.8, Height: tile * 0.8, Draggable: true,
		},
	}
}

type mobFile struct {
	Mobs []MobTypeConfig `yaml:"mobs"`
}

// LoadMobTypes decodes a YAML mob catalogue and merges it into Mobs,
// replacing presets with the same name.
func LoadMobTypes(r io.Reader) error {
	var f mobFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("decode mob catalogue: %w", err)
	}
	for _, m := range f.Mobs {
		if m.Name == "" {
			return fmt.Errorf("mob catalogue: entry without name")
		}
		Mobs[m.Name] = m
	}
	return nil
}

// LoadMobTypesFile is LoadMobTypes on a file path.
func LoadMobTypesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open mob catalogue %s: %w", path, err)
	}
	defer f.Close()
	return LoadMobTypes(f)
}
