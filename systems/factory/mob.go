package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/openworld/ai"
	"github.com/automoto/openworld/archetypes"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/world"
	"github.com/yohamta/donburi"
)

var ErrUnknownMob = errors.New("unknown mob type")

// SpawnActor creates a non-player actor. Health 0 leaves its life
// untracked; a nil profile leaves it without a brain.
func SpawnActor(w *world.World, spec ActorSpec, health int, profile *ai.Profile) (*donburi.Entry, error) {
	if _, err := w.Map(spec.Map); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", spec.Name, err)
	}

	var extra []donburi.IComponentType
	if health > 0 {
		extra = append(extra, components.Health)
	}
	if profile != nil {
		extra = append(extra, components.AI)
	}
	mob := archetypes.Mob.Spawn(w.ECS, extra...)
	setupActor(w, mob, spec)

	if health > 0 {
		components.Health.SetValue(mob, components.HealthData{Current: health, Max: health})
	}
	if profile != nil {
		components.AI.SetValue(mob, components.AIData{Brain: ai.NewBrain(profile, w.Rng())})
	}
	return mob, nil
}

// SpawnMob creates a mob from the catalogue in config.Mobs.
func SpawnMob(w *world.World, mapID string, x, y float64, mobType string) (*donburi.Entry, error) {
	m, ok := cfg.Mobs[mobType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMob, mobType)
	}
	sprite := m.Sprite
	if sprite == "" {
		sprite = m.Name
	}
	spec := ActorSpec{
		Name:      m.Name,
		Sprite:    sprite,
		Map:       mapID,
		X:         x,
		Y:         y,
		CombatBox: cfg.Box{W: m.Width, H: m.Height},
		CollBox:   cfg.Box{W: m.Width, H: m.Height * 0.4, OffsetY: m.Height * 0.3},
		Damage:    m.Damage,
		Draggable: m.Draggable,
	}
	return SpawnActor(w, spec, m.Health, ProfileFromConfig(m))
}

// ProfileFromConfig builds the AI profile of a mob type. It returns nil
// for mobs with no behavior at all.
func ProfileFromConfig(m cfg.MobTypeConfig) *ai.Profile {
	if m.Wandering == nil && m.Follower == nil && m.Rusher == nil &&
		m.LongRanged == nil && m.MiddleRanged == nil && m.Attack == nil {
		return nil
	}

	p := ai.NewProfile()
	if c := m.Wandering; c != nil {
		p.SetWandering(c.Speed, c.Radius, c.ChangeTime)
	}
	if c := m.Follower; c != nil {
		p.SetFollower(c.ChasingSpeed)
	}
	if c := m.Rusher; c != nil {
		p.SetRusher(c.Vision, c.ChasingSpeed, c.RushCooldown, c.AttacksPerRush)
	}
	if c := m.LongRanged; c != nil {
		p.SetLongRanged(c.Vision, c.ChasingSpeed, c.DistanceAttackRange, c.ChangeDirectionCooldown)
	}
	if c := m.MiddleRanged; c != nil {
		p.SetMiddleRanged(c.Vision, c.ChasingSpeed, c.RushCooldown, c.AttacksPerRush,
			c.RushActivationRange, c.DistanceAttackRange, c.ChangeDirectionCooldown)
	}
	if c := m.Attack; c != nil {
		p.SetAttack(c.Cooldown, c.Range, c.ProjectileSpeed)
	}
	return p
}
