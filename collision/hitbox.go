package collision

import (
	"time"

	"github.com/automoto/openworld/tags"
	"github.com/solarlune/resolv"
)

// Class selects which registry list a hitbox lives in.
type Class int

const (
	// ClassNone hitboxes are triggers, only reached by the catch-all pass.
	ClassNone Class = iota
	ClassCollision
	ClassCombat
)

func (c Class) String() string {
	switch c {
	case ClassCollision:
		return "collision"
	case ClassCombat:
		return "combat"
	default:
		return "none"
	}
}

func (c Class) resolvTag() string {
	switch c {
	case ClassCollision:
		return tags.ResolvCollision
	case ClassCombat:
		return tags.ResolvCombat
	default:
		return tags.ResolvTrigger
	}
}

// Command reacts to an overlap. self is the hitbox the command belongs to,
// other is the hitbox that touched it.
type Command func(self, other *Hitbox, now time.Duration)

// Hitbox is an axis aligned rectangle bound to a map. The geometry lives
// in the embedded resolv object so the same box can be placed in a
// per-map resolv.Space for steering probes.
type Hitbox struct {
	*resolv.Object

	ID      int
	Map     string
	Class   Class
	Player  bool
	Active  bool
	Owner   Owner
	Command Command
}

// New creates an active, unregistered hitbox. Inverted corners are swapped.
func New(x1, y1, x2, y2 float64, mapID string, owner Owner, player bool) *Hitbox {
	h := &Hitbox{
		Object: resolv.NewObject(0, 0, 0, 0),
		Map:    mapID,
		Player: player,
		Active: true,
		Owner:  owner,
	}
	if player {
		h.Object.AddTags(tags.ResolvPlayer)
	}
	h.Object.Data = h
	h.Set(x1, y1, x2, y2)
	return h
}

// Set moves the corners. x1<=x2 and y1<=y2 hold afterwards.
func (h *Hitbox) Set(x1, y1, x2, y2 float64) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	h.X, h.Y = x1, y1
	h.W, h.H = x2-x1, y2-y1
	if h.Space != nil {
		h.Object.Update()
	}
}

func (h *Hitbox) X1() float64 { return h.X }
func (h *Hitbox) Y1() float64 { return h.Y }
func (h *Hitbox) X2() float64 { return h.X + h.W }
func (h *Hitbox) Y2() float64 { return h.Y + h.H }

// Center returns the middle point of the box.
func (h *Hitbox) Center() (float64, float64) {
	return h.X + h.W/2, h.Y + h.H/2
}

// CenterAround keeps the size and places the center on (cx, cy).
func (h *Hitbox) CenterAround(cx, cy float64) {
	h.Set(cx-h.W/2, cy-h.H/2, cx+h.W/2, cy+h.H/2)
}

// MoveBy translates the box.
func (h *Hitbox) MoveBy(dx, dy float64) {
	h.Set(h.X+dx, h.Y+dy, h.X2()+dx, h.Y2()+dy)
}

// WithinBounds reports whether the box lies inside a width x height map.
func (h *Hitbox) WithinBounds(width, height float64) bool {
	return h.X >= 0 && h.Y >= 0 && h.X2() <= width && h.Y2() <= height
}

// Overlaps applies the registry overlap rule to h and other.
func (h *Hitbox) Overlaps(other *Hitbox) bool {
	return Overlaps(h, other)
}

// Destroy marks the hitbox inactive. The registry drops it on the next Sweep.
func (h *Hitbox) Destroy() {
	h.Active = false
}

// Overlaps reports whether a and b are distinct active hitboxes on the same
// map whose rectangles intersect. Touching edges count.
func Overlaps(a, b *Hitbox) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if !a.Active || !b.Active {
		return false
	}
	if a.Map == "" || a.Map != b.Map {
		return false
	}
	return !(a.X1() > b.X2() || b.X1() > a.X2() || a.Y1() > b.Y2() || b.Y1() > a.Y2())
}
