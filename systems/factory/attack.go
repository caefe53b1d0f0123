package factory

import (
	"math"
	"time"

	"github.com/automoto/openworld/archetypes"
	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/gamemath"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
)

// SwingSpec configures a melee attack.
type SwingSpec struct {
	Damage int
	// Reach is the depth of the swing in front of the wielder, Width its
	// extent across the facing direction.
	Reach    float64
	Width    float64
	Segments int
	Duration time.Duration

	TargetsPlayer bool
	OnHit         components.HitFunc
}

// ProjectileSpec configures a thrown or shot attack.
type ProjectileSpec struct {
	Damage   int
	Speed    float64
	Size     float64
	Lifetime time.Duration

	Piercing      bool
	StopsOnWalls  bool
	TargetsPlayer bool
	OnHit         components.HitFunc
}

// PlayerSwing is the swing the player performs on the primary button.
func PlayerSwing(w *world.World) SwingSpec {
	return SwingSpec{
		Damage:   cfg.Combat.SwingDamage,
		Reach:    cfg.Combat.SwingReach,
		Width:    cfg.Combat.SwingWidth,
		Segments: 1,
		Duration: cfg.Combat.SwingDuration,
		OnHit:    BlinkOnHit(w),
	}
}

// PlayerProjectile is what the player throws on the secondary button.
func PlayerProjectile(w *world.World) ProjectileSpec {
	return ProjectileSpec{
		Damage:       cfg.Combat.ProjectileDamage,
		Speed:        cfg.Combat.ProjectileSpeed,
		Size:         cfg.Combat.ProjectileSize,
		Lifetime:     cfg.Combat.ProjectileLifetime,
		StopsOnWalls: true,
		OnHit:        BlinkOnHit(w),
	}
}

// BlinkOnHit flashes the target and plays the hit sound.
func BlinkOnHit(w *world.World) components.HitFunc {
	return func(_, target *donburi.Entry, now time.Duration) {
		if !target.Valid() {
			return
		}
		w.Stock.Blink.Apply(now, target, cfg.Effects.BlinkDuration)
		w.Sound.PlaySound(cfg.SceneGame, cfg.SoundHit, cfg.Audio.DefaultSFXVol)
	}
}

// CreateSwing places spec.Segments adjacent combat hitboxes in front of
// the wielder, splitting the reach between them. The attack follows the
// wielder until it expires.
func CreateSwing(w *world.World, wielder *donburi.Entry, spec SwingSpec) *donburi.Entry {
	a := components.Actor.Get(wielder)
	swing := archetypes.Swing.Spawn(w.ECS)
	owner := collision.AttackOwner(swing)

	segments := max(spec.Segments, 1)
	depth := spec.Reach / float64(segments)
	dx, dy := a.Direction.Vector()

	var bw, bh, start float64
	if dx != 0 {
		bw, bh = depth, spec.Width
		start = a.CombatBox.W / 2
	} else {
		bw, bh = spec.Width, depth
		start = a.CombatBox.H / 2
	}

	data := components.AttackData{
		Kind:          components.AttackSwing,
		Wielder:       wielder,
		Map:           a.Map,
		Damage:        spec.Damage,
		ExpiresAt:     w.Now + spec.Duration,
		Hit:           make(map[donburi.Entity]bool),
		Piercing:      true,
		TargetsPlayer: spec.TargetsPlayer,
		Active:        true,
		OnHit:         spec.OnHit,
	}
	for i := 0; i < segments; i++ {
		along := start + depth*(float64(i)+0.5)
		ox := a.CombatBox.OffsetX + dx*along
		oy := a.CombatBox.OffsetY + dy*along

		h := collision.New(0, 0, bw, bh, a.Map, owner, false)
		h.CenterAround(a.X+ox, a.Y+oy)
		data.Hitboxes = append(data.Hitboxes, w.Hitboxes.Register(h, collision.ClassCombat))
		data.Offsets = append(data.Offsets, [2]float64{ox, oy})
	}
	components.Attack.SetValue(swing, data)
	return swing
}

// CreateProjectile launches one projectile from (x, y) toward (aimX, aimY).
// When the aim point is the origin it flies in the shooter's facing.
func CreateProjectile(w *world.World, shooter *donburi.Entry, x, y, aimX, aimY float64, spec ProjectileSpec) *donburi.Entry {
	angle := aimAngle(shooter, x, y, aimX, aimY)
	return launch(w, shooter, x, y, angle, spec)
}

// CreateProjectileFan launches count projectiles spread radians apart,
// centered on the aim direction.
func CreateProjectileFan(w *world.World, shooter *donburi.Entry, x, y, aimX, aimY float64, count int, spread float64, spec ProjectileSpec) []*donburi.Entry {
	count = max(count, 1)
	base := aimAngle(shooter, x, y, aimX, aimY)
	out := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		angle := base + (float64(i)-float64(count-1)/2)*spread
		out = append(out, launch(w, shooter, x, y, angle, spec))
	}
	return out
}

func aimAngle(shooter *donburi.Entry, x, y, aimX, aimY float64) float64 {
	dx, dy := aimX-x, aimY-y
	if dx == 0 && dy == 0 {
		dx, dy = components.Actor.Get(shooter).Direction.Vector()
	}
	return math.Atan2(dy, dx)
}

func launch(w *world.World, shooter *donburi.Entry, x, y, angle float64, spec ProjectileSpec) *donburi.Entry {
	a := components.Actor.Get(shooter)
	p := archetypes.Projectile.Spawn(w.ECS)

	h := collision.New(0, 0, spec.Size, spec.Size, a.Map, collision.AttackOwner(p), false)
	h.CenterAround(x, y)
	vx, vy := gamemath.Polar(angle, spec.Speed)

	components.Attack.SetValue(p, components.AttackData{
		Kind:          components.AttackProjectile,
		Wielder:       shooter,
		Map:           a.Map,
		Hitboxes:      []*collision.Hitbox{w.Hitboxes.Register(h, collision.ClassCombat)},
		Damage:        spec.Damage,
		VX:            vx,
		VY:            vy,
		ExpiresAt:     w.Now + spec.Lifetime,
		Hit:           make(map[donburi.Entity]bool),
		Piercing:      spec.Piercing,
		StopsOnWalls:  spec.StopsOnWalls,
		TargetsPlayer: spec.TargetsPlayer,
		Active:        true,
		OnHit:         spec.OnHit,
	})
	return p
}
