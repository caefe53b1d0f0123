package systems

import (
	"math"

	"github.com/automoto/openworld/ai"
	"github.com/automoto/openworld/components"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/systems/factory"
	"github.com/automoto/openworld/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAI lets every mob on the active map choose a velocity and attacks.
func UpdateAI(e *ecs.ECS) {
	w := world.From(e)
	for _, entry := range w.Actors() {
		if !entry.Valid() || !entry.HasComponent(components.AI) {
			continue
		}
		a := components.Actor.Get(entry)
		if !a.Active || a.Map != w.Current {
			continue
		}
		guardedThink(w, entry, a, components.AI.Get(entry))
	}
}

// guardedThink contains a panic to the mob that raised it. The brain is
// faulted so the mob stands still from then on.
func guardedThink(w *world.World, entry *donburi.Entry, a *components.ActorData, brain *components.AIData) {
	defer func() {
		if r := recover(); r != nil {
			w.Logger("ai").WithFields(logrus.Fields{
				"mob":    a.Name,
				"entity": entry.Entity(),
				"panic":  r,
			}).Error("brain panicked")
			brain.Faulted = true
			a.VX, a.VY = 0, 0
		}
	}()
	think(w, entry, a, brain)
}

func think(w *world.World, entry *donburi.Entry, a *components.ActorData, brain *components.AIData) {
	if brain.Faulted {
		a.VX, a.VY = 0, 0
		return
	}
	if a.State == cfg.Attack || w.Stock.Motionless.Has(entry) {
		return
	}

	s := ai.Situation{
		Now:     w.Now,
		X:       a.X,
		Y:       a.Y,
		SpawnX:  a.SpawnX,
		SpawnY:  a.SpawnY,
		Blocked: probe(w, entry, a),
	}
	if p := w.Player; p != nil && p.Valid() {
		pa := components.Actor.Get(p)
		if pa.Active && pa.Map == a.Map {
			s.HasTarget = true
			s.TargetX, s.TargetY = pa.X, pa.Y
		}
	}

	d, err := brain.Brain.Think(s)
	if err != nil {
		w.Logger("ai").WithError(err).WithField("mob", a.Name).Error("brain faulted")
		brain.Faulted = true
		a.VX, a.VY = 0, 0
		return
	}
	brain.Mode = d.Mode
	a.VX, a.VY = d.DX, d.DY

	for _, intent := range d.Attacks {
		launchIntent(w, entry, a, intent)
	}
}

// probe checks a heading one probe length ahead against walls and other
// actors, ignoring the mob itself.
func probe(w *world.World, entry *donburi.Entry, a *components.ActorData) func(dx, dy float64) bool {
	self := ownedBy(entry)
	return func(dx, dy float64) bool {
		n := math.Hypot(dx, dy)
		if n == 0 {
			return false
		}
		k := cfg.AI.ProbeAhead / n
		return w.Hitboxes.Probe(a.Collision, dx*k, dy*k, self)
	}
}

func launchIntent(w *world.World, entry *donburi.Entry, a *components.ActorData, intent ai.Intent) {
	now := w.Now
	if intent.ProjectileSpeed > 0 {
		cx, cy := a.Combat.Center()
		factory.CreateProjectileFan(w, entry, cx, cy, intent.AimX, intent.AimY, intent.Count, intent.Spread, factory.ProjectileSpec{
			Damage:        a.Damage,
			Speed:         intent.ProjectileSpeed,
			Size:          cfg.Combat.ProjectileSize,
			Lifetime:      cfg.Combat.ProjectileLifetime,
			StopsOnWalls:  true,
			TargetsPlayer: true,
			OnHit:         factory.BlinkOnHit(w),
		})
		w.Sound.PlaySound(cfg.SceneGame, cfg.SoundThrow, cfg.Audio.DefaultSFXVol)
		return
	}

	faceToward(a, intent.AimX, intent.AimY)
	w.Stock.Attacking.Apply(now, entry, cfg.Combat.SwingDuration)
	w.Stock.Motionless.Apply(now, entry, cfg.Combat.SwingDuration)
	factory.CreateSwing(w, entry, factory.SwingSpec{
		Damage:        a.Damage,
		Reach:         cfg.AI.MeleeReach,
		Width:         a.CombatBox.W,
		Segments:      1,
		Duration:      cfg.Combat.SwingDuration,
		TargetsPlayer: true,
		OnHit:         factory.BlinkOnHit(w),
	})
}
