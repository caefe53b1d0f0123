package systems

import (
	"github.com/automoto/openworld/collision"
	"github.com/automoto/openworld/components"
	"github.com/automoto/openworld/tags"
	"github.com/automoto/openworld/world"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// applyAttack resolves one attack against one actor. Every attack damages a
// given actor at most once.
func applyAttack(w *world.World, attackEntry, target *donburi.Entry) {
	if attackEntry == nil || !attackEntry.Valid() {
		return
	}
	atk := components.Attack.Get(attackEntry)
	if !atk.Active {
		return
	}
	if atk.Wielder != nil && atk.Wielder.Valid() && atk.Wielder.Entity() == target.Entity() {
		return
	}
	// Player attacks hit everyone else, mob attacks hit only the player
	if atk.TargetsPlayer != w.IsPlayer(target) {
		return
	}
	if atk.Hit[target.Entity()] {
		return
	}
	atk.Hit[target.Entity()] = true

	w.Damage(target, atk.Damage)
	if atk.OnHit != nil {
		atk.OnHit(attackEntry, target, w.Now)
	}
	if err := w.OnAttacked(target); err != nil {
		w.Logger("combat").WithError(err).WithField("target", components.Actor.Get(target).Name).Error("attack reaction failed")
	}

	if atk.Kind == components.AttackProjectile && !atk.Piercing {
		atk.Destroy()
	}
}

// UpdateAttacks expires attacks, keeps swings on their wielder and moves
// projectiles.
func UpdateAttacks(e *ecs.ECS) {
	w := world.From(e)
	tags.Attack.Each(e.World, func(entry *donburi.Entry) {
		atk := components.Attack.Get(entry)
		if !atk.Active {
			return
		}
		if w.Now >= atk.ExpiresAt {
			atk.Destroy()
			return
		}

		switch atk.Kind {
		case components.AttackSwing:
			followWielder(atk)
		case components.AttackProjectile:
			moveProjectile(w, atk)
		}
	})
}

func followWielder(atk *components.AttackData) {
	if atk.Wielder == nil || !atk.Wielder.Valid() {
		atk.Destroy()
		return
	}
	a := components.Actor.Get(atk.Wielder)
	if !a.Active || a.Map != atk.Map {
		atk.Destroy()
		return
	}
	for i, h := range atk.Hitboxes {
		off := atk.Offsets[i]
		h.CenterAround(a.X+off[0], a.Y+off[1])
	}
}

func moveProjectile(w *world.World, atk *components.AttackData) {
	m, err := w.Map(atk.Map)
	if err != nil {
		atk.Destroy()
		return
	}
	for _, h := range atk.Hitboxes {
		h.MoveBy(atk.VX, atk.VY)
		if !h.WithinBounds(m.Width, m.Height) {
			atk.Destroy()
			break
		}
		if atk.StopsOnWalls && hitsWall(w, h) {
			w.Logger("combat").WithFields(logrus.Fields{
				"map": atk.Map,
				"x":   h.X,
				"y":   h.Y,
			}).Trace("projectile stopped by wall")
			atk.Destroy()
			break
		}
	}
}

// hitsWall reports whether h overlaps an ownerless collision hitbox.
func hitsWall(w *world.World, h *collision.Hitbox) bool {
	for _, other := range w.Hitboxes.Query(h, true, false) {
		if other.Owner.Kind() == collision.OwnerNone {
			return true
		}
	}
	return false
}
