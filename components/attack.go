package components

import (
	"time"

	"github.com/automoto/openworld/collision"
	"github.com/yohamta/donburi"
)

type AttackKind int

const (
	AttackSwing AttackKind = iota
	AttackProjectile
)

// HitFunc runs after an attack damaged target.
type HitFunc func(attack, target *donburi.Entry, now time.Duration)

type AttackData struct {
	Kind     AttackKind
	Wielder  *donburi.Entry
	Map      string
	Hitboxes []*collision.Hitbox
	Damage   int

	// Projectile velocity per tick.
	VX, VY float64
	// Swing hitbox centers relative to the wielder position, one per hitbox.
	Offsets [][2]float64

	ExpiresAt time.Duration

	// Hit holds every entity already damaged by this attack.
	Hit           map[donburi.Entity]bool
	Piercing      bool
	StopsOnWalls  bool
	TargetsPlayer bool
	Active        bool

	OnHit HitFunc
}

var Attack = donburi.NewComponentType[AttackData]()

// Destroy deactivates the attack and its hitboxes.
func (a *AttackData) Destroy() {
	a.Active = false
	for _, h := range a.Hitboxes {
		h.Destroy()
	}
}
