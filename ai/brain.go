package ai

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/openworld/config"
	"github.com/automoto/openworld/gamemath"
)

// Mode is the behavior the brain chose for the current tick.
type Mode int

const (
	ModeIdle Mode = iota
	ModeWandering
	ModeFollowing
	ModeHostile
)

func (m Mode) String() string {
	switch m {
	case ModeWandering:
		return "wandering"
	case ModeFollowing:
		return "following"
	case ModeHostile:
		return "hostile"
	default:
		return "idle"
	}
}

// Situation is what a mob knows about the world this tick.
type Situation struct {
	Now            time.Duration
	X, Y           float64
	SpawnX, SpawnY float64

	HasTarget        bool
	TargetX, TargetY float64

	// Blocked reports whether moving by (dx, dy) would hit a wall. Optional.
	Blocked func(dx, dy float64) bool
}

// Intent asks the caller to create an attack aimed at (AimX, AimY).
// ProjectileSpeed 0 means a melee swing. Count > 1 is a fan of projectiles
// spread Spread radians apart.
type Intent struct {
	AimX, AimY      float64
	ProjectileSpeed float64
	Count           int
	Spread          float64
}

// Decision is the output of one Think call.
type Decision struct {
	Mode    Mode
	DX, DY  float64
	Rushing bool
	Attacks []Intent
}

// Brain is the per-mob runtime state driving a Profile.
type Brain struct {
	Profile *Profile
	rng     *rand.Rand

	hasWanderTarget bool
	wanderX         float64
	wanderY         float64
	nextWanderAt    time.Duration

	rushScheduled bool
	nextRushAt    time.Duration
	rushing       bool
	rushEndsAt    time.Duration
	rushDX        float64
	rushDY        float64

	orbit      float64
	nextTurnAt time.Duration

	hasAttacked bool
	lastAttack  time.Duration
}

func NewBrain(profile *Profile, rng *rand.Rand) *Brain {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Brain{Profile: profile, rng: rng, orbit: 1}
}

// Rushing reports whether a dash is in progress.
func (b *Brain) Rushing() bool { return b.rushing }

// LastAttack is the time of the last gated attack.
func (b *Brain) LastAttack() (time.Duration, bool) { return b.lastAttack, b.hasAttacked }

// Think picks a velocity and attack intents. Hostile behavior wins over
// following, which wins over wandering.
func (b *Brain) Think(s Situation) (Decision, error) {
	p := b.Profile
	var d Decision
	dist := math.Inf(1)
	if s.HasTarget {
		dist = math.Hypot(s.TargetX-s.X, s.TargetY-s.Y)
	}

	switch {
	case p.IsHostile() && s.HasTarget && dist <= p.vision:
		d.Mode = ModeHostile
		if err := b.hostile(s, dist, &d); err != nil {
			return Decision{}, err
		}
	case p.IsFollower() && s.HasTarget:
		d.Mode = ModeFollowing
		speed, err := p.ChasingSpeed()
		if err != nil {
			return Decision{}, err
		}
		d.DX, d.DY = gamemath.Toward(s.X, s.Y, s.TargetX, s.TargetY, speed)
	case p.IsWandering():
		d.Mode = ModeWandering
		if err := b.wander(s, &d); err != nil {
			return Decision{}, err
		}
	}

	if d.Mode != ModeHostile && b.rushing {
		b.rushing = false
	}

	if p.CanAttack() && s.HasTarget && !b.rushing && len(d.Attacks) == 0 {
		atk, err := p.Attack()
		if err != nil {
			return Decision{}, err
		}
		if b.attackReady(s.Now, atk.Cooldown) && dist <= atk.Range {
			b.markAttack(s.Now)
			d.Attacks = append(d.Attacks, Intent{
				AimX: s.TargetX, AimY: s.TargetY,
				ProjectileSpeed: atk.ProjectileSpeed,
				Count:           1,
			})
		}
	}
	d.Rushing = b.rushing
	return d, nil
}

func (b *Brain) attackReady(now, cooldown time.Duration) bool {
	return !b.hasAttacked || now-b.lastAttack >= cooldown
}

func (b *Brain) markAttack(now time.Duration) {
	b.hasAttacked = true
	b.lastAttack = now
}

func (b *Brain) wander(s Situation, d *Decision) error {
	w, err := b.Profile.Wandering()
	if err != nil {
		return err
	}

	fromSpawn := math.Hypot(s.X-s.SpawnX, s.Y-s.SpawnY)
	if fromSpawn > w.Radius {
		b.hasWanderTarget = false
		d.DX, d.DY = gamemath.Toward(s.X, s.Y, s.SpawnX, s.SpawnY, w.Speed)
		return nil
	}

	if !b.hasWanderTarget || s.Now >= b.nextWanderAt {
		angle := b.rng.Float64() * 2 * math.Pi
		r := w.Radius * math.Sqrt(b.rng.Float64())
		b.wanderX = s.SpawnX + r*math.Cos(angle)
		b.wanderY = s.SpawnY + r*math.Sin(angle)
		b.nextWanderAt = s.Now + b.uniform(w.ChangeTime)
		b.hasWanderTarget = true
	}

	dx, dy := gamemath.Toward(s.X, s.Y, b.wanderX, b.wanderY, w.Speed)
	if math.Hypot(b.wanderX-s.X, b.wanderY-s.Y) <= w.Speed {
		dx, dy = b.wanderX-s.X, b.wanderY-s.Y
	}

	// Keep the next position on the disk around spawn.
	nx, ny := s.X+dx, s.Y+dy
	if off := math.Hypot(nx-s.SpawnX, ny-s.SpawnY); off > w.Radius && off > 0 {
		scale := w.Radius / off
		nx = s.SpawnX + (nx-s.SpawnX)*scale
		ny = s.SpawnY + (ny-s.SpawnY)*scale
		dx, dy = nx-s.X, ny-s.Y
	}
	d.DX, d.DY = dx, dy
	return nil
}

func (b *Brain) hostile(s Situation, dist float64, d *Decision) error {
	p := b.Profile
	speed, err := p.ChasingSpeed()
	if err != nil {
		return err
	}

	if p.IsRusher() {
		rush, err := p.Rush()
		if err != nil {
			return err
		}
		if !b.rushScheduled {
			b.scheduleRush(s.Now, rush, dist)
		}
		if b.rushing {
			if s.Now < b.rushEndsAt {
				d.DX, d.DY = b.rushDX, b.rushDY
				return nil
			}
			b.rushing = false
			b.scheduleRush(s.Now, rush, dist)
			if rush.AttacksPerRush > 0 {
				atk, err := p.Attack()
				if err != nil {
					return err
				}
				// The fan obeys the same cooldown and range as any attack
				if b.attackReady(s.Now, atk.Cooldown) && dist <= atk.Range {
					b.markAttack(s.Now)
					d.Attacks = append(d.Attacks, Intent{
						AimX: s.TargetX, AimY: s.TargetY,
						ProjectileSpeed: atk.ProjectileSpeed,
						Count:           rush.AttacksPerRush,
						Spread:          config.AI.FanSpread,
					})
				}
			}
		} else if s.Now >= b.nextRushAt {
			b.rushing = true
			b.rushEndsAt = s.Now + config.AI.DashDuration
			b.rushDX, b.rushDY = gamemath.Toward(s.X, s.Y, s.TargetX, s.TargetY, speed*config.AI.DashMultiplier)
			d.DX, d.DY = b.rushDX, b.rushDY
			return nil
		}
	}

	if p.IsLongRange() {
		return b.keepDistance(s, dist, speed, d)
	}
	d.DX, d.DY = gamemath.Toward(s.X, s.Y, s.TargetX, s.TargetY, speed)
	return nil
}

func (b *Brain) scheduleRush(now time.Duration, rush Rush, dist float64) {
	window := rush.Cooldown
	if rush.ActivationRange > 0 && dist <= rush.ActivationRange {
		window /= 2
	}
	b.nextRushAt = now + b.uniform(window)
	b.rushScheduled = true
}

func (b *Brain) keepDistance(s Situation, dist, speed float64, d *Decision) error {
	keep, err := b.Profile.KeepDistance()
	if err != nil {
		return err
	}
	band := keep.Distance * config.AI.DistanceTolerance

	ux, uy := gamemath.Toward(s.X, s.Y, s.TargetX, s.TargetY, 1)
	switch {
	case dist > keep.Distance+band:
		d.DX, d.DY = ux*speed, uy*speed
		return nil
	case dist < keep.Distance-band:
		d.DX, d.DY = -ux*speed, -uy*speed
		return nil
	}

	if s.Now >= b.nextTurnAt {
		dx, dy := -uy*b.orbit*speed, ux*b.orbit*speed
		if (s.Blocked != nil && s.Blocked(dx, dy)) || b.rng.Float64() < 0.25 {
			b.orbit = -b.orbit
		}
		b.nextTurnAt = s.Now + keep.ChangeDirectionCooldown + b.uniform(keep.ChangeDirectionCooldown/2)
	}
	d.DX, d.DY = -uy*b.orbit*speed, ux*b.orbit*speed
	return nil
}

// uniform returns a duration in (0, limit]. It is 0 when limit is not positive.
func (b *Brain) uniform(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	return time.Duration((1 - b.rng.Float64()) * float64(limit))
}

// toward returns the velocity of length speed from (x, y) to (tx, ty).
