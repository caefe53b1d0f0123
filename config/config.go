package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every simulation entity is created on.
const Default ecs.LayerID = 0

// Config holds window and world geometry.
type Config struct {
	AppName  string
	Width    int
	Height   int
	TileSize float64
	TPS      int
}

// Box describes a hitbox size and its offset from the actor center.
type Box struct {
	W, H             float64
	OffsetX, OffsetY float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per tick)
	Acceleration float64
	Deceleration float64
	FullSpeed    float64

	// Dash
	DashAcceleration float64
	DashSpeed        float64
	DashCooldown     time.Duration
	DashDuration     time.Duration

	// Drag mechanic
	DragSpeed float64
	DragGap   float64

	// Interaction / grab ray length in front of the player
	RaycastLength float64

	Health int

	Combat    Box
	Collision Box
}

// CombatConfig contains attack tunables shared by player and mobs.
type CombatConfig struct {
	ChargeInterval time.Duration
	MaxCharges     int

	SwingDuration time.Duration
	SwingDamage   int
	SwingReach    float64
	SwingWidth    float64

	ProjectileSpeed    float64
	ProjectileSize     float64
	ProjectileLifetime time.Duration
	ProjectileDamage   int
}

// EffectsConfig holds durations of the stock timed effects.
type EffectsConfig struct {
	BlinkDuration  time.Duration
	BlinkMinAlpha  float32
	BlinkTickEvery time.Duration
}

// AnimationConfig controls frame stepping.
type AnimationConfig struct {
	FrameDuration time.Duration
	// FrameCounts per state. A state without an entry stays on frame 0.
	FrameCounts map[StateID]int
}

// AIConfig holds mob behavior constants not carried by a profile.
type AIConfig struct {
	DashDuration   time.Duration
	DashMultiplier float64
	// DistanceTolerance is the relative band around the keep distance
	// inside which a long-range mob strafes instead of approaching.
	DistanceTolerance float64
	// FanSpread is the angle in radians between rush projectiles.
	FanSpread  float64
	ProbeAhead float64
	MeleeReach float64
}

// UIConfig holds overlay drawing values.
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarOffset float64
	HealthHigh      color.RGBA
	HealthMid       color.RGBA
	HealthLow       color.RGBA
	ChargeColor     color.RGBA
}

// DebugConfig contains debug toggles.
type DebugConfig struct {
	ShowHitboxes bool
}

var C *Config
var Player PlayerConfig
var Combat CombatConfig
var Effects EffectsConfig
var Animation AnimationConfig
var AI AIConfig
var UI UIConfig
var Debug DebugConfig

func init() {
	C = &Config{
		AppName:  "openworld",
		Width:    960,
		Height:   640,
		TileSize: 64,
		TPS:      60,
	}
	tile := C.TileSize

	Player = PlayerConfig{
		Acceleration:     tile / 64,
		Deceleration:     tile / 64,
		FullSpeed:        tile / 24,
		DashAcceleration: tile / 24,
		DashSpeed:        tile / 6,
		DashCooldown:     1500 * time.Millisecond,
		DashDuration:     200 * time.Millisecond,
		DragSpeed:        tile / 48,
		DragGap:          tile * 0.3,
		RaycastLength:    tile / 1.5,
		Health:           20,
		Combat:           Box{W: tile * 0.75, H: tile},
		Collision:        Box{W: tile * 0.6, H: tile * 0.3, OffsetY: tile * 0.35},
	}

	Combat = CombatConfig{
		ChargeInterval:     2000 * time.Millisecond,
		MaxCharges:         4,
		SwingDuration:      300 * time.Millisecond,
		SwingDamage:        2,
		SwingReach:         tile * 0.75,
		SwingWidth:         tile,
		ProjectileSpeed:    20,
		ProjectileSize:     tile / 4,
		ProjectileLifetime: 2000 * time.Millisecond,
		ProjectileDamage:   2,
	}

	Effects = EffectsConfig{
		BlinkDuration:  200 * time.Millisecond,
		BlinkMinAlpha:  0.2,
		BlinkTickEvery: 0,
	}

	Animation = AnimationConfig{
		FrameDuration: 100 * time.Millisecond,
		FrameCounts: map[StateID]int{
			Walk:   5,
			Attack: 4,
			Drag:   5,
		},
	}

	AI = AIConfig{
		DashDuration:      250 * time.Millisecond,
		DashMultiplier:    3,
		DistanceTolerance: 0.1,
		FanSpread:         0.3,
		ProbeAhead:        tile / 2,
		MeleeReach:        tile * 0.6,
	}

	UI = UIConfig{
		HealthBarWidth:  tile * 0.8,
		HealthBarHeight: 4,
		HealthBarOffset: 8,
		HealthHigh:      color.RGBA{R: 60, G: 200, B: 60, A: 255},
		HealthMid:       color.RGBA{R: 230, G: 200, B: 40, A: 255},
		HealthLow:       color.RGBA{R: 220, G: 50, B: 50, A: 255},
		ChargeColor:     color.RGBA{R: 80, G: 160, B: 255, A: 255},
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
