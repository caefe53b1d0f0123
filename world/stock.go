package world

import (
	"time"

	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/config"
	"github.com/automoto/openworld/effects"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Stock holds the effects every world carries.
type Stock struct {
	// Motionless pins an actor in place.
	Motionless *effects.Effect
	// Attacking holds the attack state while a swing is out.
	Attacking *effects.Effect
	// Blink fades the sprite after a hit.
	Blink *effects.Effect
	// Regeneration heals one point per second.
	Regeneration *effects.Effect
}

func (s *Stock) All() []*effects.Effect {
	return []*effects.Effect{s.Motionless, s.Attacking, s.Blink, s.Regeneration}
}

func newStock() *Stock {
	s := &Stock{
		Motionless:   effects.New("motionless", 0),
		Attacking:    effects.New("attacking", 0),
		Blink:        effects.New("blink", config.Effects.BlinkTickEvery),
		Regeneration: effects.New("regeneration", time.Second),
	}

	freeze := func(inst *effects.Instance, _ time.Duration) {
		a := components.Actor.Get(inst.Entry)
		a.VX, a.VY = 0, 0
	}
	s.Motionless.OnStart = freeze
	s.Motionless.OnTick = freeze

	s.Attacking.OnStart = func(inst *effects.Instance, now time.Duration) {
		a := components.Actor.Get(inst.Entry)
		a.State = config.Attack
		a.Frame = 0
		a.LastFrameAt = now
	}
	s.Attacking.OnEnd = func(inst *effects.Instance, _ time.Duration) {
		a := components.Actor.Get(inst.Entry)
		if a.State == config.Attack {
			a.State = config.Idle
			a.Frame = 0
		}
	}

	s.Blink.OnStart = func(inst *effects.Instance, _ time.Duration) {
		a := components.Actor.Get(inst.Entry)
		a.Alpha = config.Effects.BlinkMinAlpha
		inst.Values["tween"] = gween.New(config.Effects.BlinkMinAlpha, 1, float32(inst.Duration.Seconds()), ease.OutQuad)
	}
	s.Blink.OnTick = func(inst *effects.Instance, now time.Duration) {
		tw, ok := inst.Values["tween"].(*gween.Tween)
		if !ok {
			return
		}
		dt := now - inst.LastTick
		if dt <= 0 {
			return
		}
		alpha, _ := tw.Update(float32(dt.Seconds()))
		components.Actor.Get(inst.Entry).Alpha = alpha
	}
	s.Blink.OnEnd = func(inst *effects.Instance, _ time.Duration) {
		components.Actor.Get(inst.Entry).Alpha = 1
	}

	s.Regeneration.OnTick = func(inst *effects.Instance, _ time.Duration) {
		if !inst.Entry.HasComponent(components.Health) {
			return
		}
		h := components.Health.Get(inst.Entry)
		if h.Current < h.Max {
			h.Current++
		}
	}

	return s
}
