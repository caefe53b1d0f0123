package ai

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotConfigured is returned when a behavior parameter is read from a
// profile that never had the matching capability set.
var ErrNotConfigured = errors.New("ai capability not configured")

type Wandering struct {
	Speed      float64
	Radius     float64
	ChangeTime time.Duration
}

type Rush struct {
	Cooldown       time.Duration
	AttacksPerRush int
	// ActivationRange is only set for middle ranged mobs. Inside it the
	// next rush comes twice as fast on average.
	ActivationRange float64
}

type KeepDistance struct {
	Distance                float64
	ChangeDirectionCooldown time.Duration
}

type Attack struct {
	Cooldown        time.Duration
	Range           float64
	ProjectileSpeed float64
}

// Profile is the additive set of capabilities of a mob. It is configured
// once through the Set methods, which chain.
type Profile struct {
	wandering *Wandering
	follower  bool
	hostile   bool

	chasingSpeed float64
	hasChasing   bool
	vision       float64

	rush *Rush
	keep *KeepDistance
	atk  *Attack

	misc map[string]any
}

func NewProfile() *Profile {
	return &Profile{misc: make(map[string]any)}
}

func (p *Profile) SetWandering(speed, radius float64, changeTime time.Duration) *Profile {
	p.wandering = &Wandering{Speed: speed, Radius: radius, ChangeTime: changeTime}
	return p
}

func (p *Profile) SetFollower(chasingSpeed float64) *Profile {
	p.follower = true
	p.setChasing(chasingSpeed)
	return p
}

func (p *Profile) SetRusher(vision, chasingSpeed float64, rushCooldown time.Duration, attacksPerRush int) *Profile {
	p.hostile = true
	p.vision = vision
	p.setChasing(chasingSpeed)
	p.rush = &Rush{Cooldown: rushCooldown, AttacksPerRush: attacksPerRush}
	return p
}

func (p *Profile) SetLongRanged(vision, chasingSpeed, keepDistance float64, changeDirectionCooldown time.Duration) *Profile {
	p.hostile = true
	p.vision = vision
	p.setChasing(chasingSpeed)
	p.keep = &KeepDistance{Distance: keepDistance, ChangeDirectionCooldown: changeDirectionCooldown}
	return p
}

func (p *Profile) SetMiddleRanged(vision, chasingSpeed float64, rushCooldown time.Duration, attacksPerRush int,
	activationRange, keepDistance float64, changeDirectionCooldown time.Duration) *Profile {
	p.SetRusher(vision, chasingSpeed, rushCooldown, attacksPerRush)
	p.SetLongRanged(vision, chasingSpeed, keepDistance, changeDirectionCooldown)
	p.rush.ActivationRange = activationRange
	return p
}

func (p *Profile) SetAttack(cooldown time.Duration, attackRange, projectileSpeed float64) *Profile {
	p.atk = &Attack{Cooldown: cooldown, Range: attackRange, ProjectileSpeed: projectileSpeed}
	return p
}

// SetOthers stores free form values for game specific behaviors.
func (p *Profile) SetOthers(others map[string]any) *Profile {
	for k, v := range others {
		p.misc[k] = v
	}
	return p
}

func (p *Profile) setChasing(speed float64) {
	p.chasingSpeed = speed
	p.hasChasing = true
}

func notConfigured(what string) error {
	return fmt.Errorf("%w: %s", ErrNotConfigured, what)
}

func (p *Profile) IsWandering() bool { return p.wandering != nil }
func (p *Profile) IsFollower() bool  { return p.follower }
func (p *Profile) IsHostile() bool   { return p.hostile }
func (p *Profile) IsRusher() bool    { return p.rush != nil }
func (p *Profile) IsLongRange() bool { return p.keep != nil }
func (p *Profile) IsMiddleRanged() bool {
	return p.rush != nil && p.keep != nil && p.rush.ActivationRange > 0
}
func (p *Profile) CanAttack() bool { return p.atk != nil }

func (p *Profile) Wandering() (Wandering, error) {
	if p.wandering == nil {
		return Wandering{}, notConfigured("wandering")
	}
	return *p.wandering, nil
}

func (p *Profile) ChasingSpeed() (float64, error) {
	if !p.hasChasing {
		return 0, notConfigured("chasing speed")
	}
	return p.chasingSpeed, nil
}

func (p *Profile) Vision() (float64, error) {
	if !p.hostile {
		return 0, notConfigured("vision range")
	}
	return p.vision, nil
}

func (p *Profile) Rush() (Rush, error) {
	if p.rush == nil {
		return Rush{}, notConfigured("rush")
	}
	return *p.rush, nil
}

func (p *Profile) KeepDistance() (KeepDistance, error) {
	if p.keep == nil {
		return KeepDistance{}, notConfigured("distance attack range")
	}
	return *p.keep, nil
}

func (p *Profile) Attack() (Attack, error) {
	if p.atk == nil {
		return Attack{}, notConfigured("attack")
	}
	return *p.atk, nil
}

func (p *Profile) Misc(key string) (any, error) {
	v, ok := p.misc[key]
	if !ok {
		return nil, notConfigured("misc " + key)
	}
	return v, nil
}
