package collision

import (
	"github.com/automoto/openworld/tags"
	"github.com/solarlune/resolv"
)

// Registry holds every live hitbox in registration order. Overlap queries
// are a linear scan over the class lists; the per-map resolv spaces are only
// used for steering probes.
type Registry struct {
	nextID    int
	all       []*Hitbox
	collision []*Hitbox
	combat    []*Hitbox
	spaces    map[string]*resolv.Space
}

func NewRegistry() *Registry {
	return &Registry{spaces: make(map[string]*resolv.Space)}
}

// AttachSpace binds a resolv space to a map. Hitboxes registered on that map
// afterwards are added to it.
func (r *Registry) AttachSpace(mapID string, space *resolv.Space) {
	r.spaces[mapID] = space
}

func (r *Registry) Space(mapID string) *resolv.Space {
	return r.spaces[mapID]
}

// Register adds h to the global list and to the list of its class.
func (r *Registry) Register(h *Hitbox, class Class) *Hitbox {
	r.nextID++
	h.ID = r.nextID
	h.Class = class
	h.Object.AddTags(class.resolvTag())

	r.all = append(r.all, h)
	switch class {
	case ClassCollision:
		r.collision = append(r.collision, h)
	case ClassCombat:
		r.combat = append(r.combat, h)
	}

	if space := r.spaces[h.Map]; space != nil {
		space.Add(h.Object)
	}
	return h
}

// Relocate moves h to another map, switching resolv spaces when it is
// registered.
func (r *Registry) Relocate(h *Hitbox, mapID string) {
	if h == nil {
		return
	}
	if h.Space != nil {
		h.Space.Remove(h.Object)
	}
	h.Map = mapID
	if space := r.spaces[mapID]; space != nil && h.ID != 0 && h.Active {
		space.Add(h.Object)
	}
}

// Overlaps is the registry overlap rule, see the package function.
func (r *Registry) Overlaps(a, b *Hitbox) bool {
	return Overlaps(a, b)
}

// Query returns the hitboxes overlapping h. Combat hitboxes come first, then
// collision hitboxes, each in registration order. With neither class
// requested it returns overlapping hitboxes of class none.
func (r *Registry) Query(h *Hitbox, wantCollision, wantCombat bool) []*Hitbox {
	var out []*Hitbox
	if h == nil || !h.Active || h.Map == "" {
		return out
	}

	if !wantCollision && !wantCombat {
		for _, other := range r.all {
			if other.Class == ClassNone && Overlaps(h, other) {
				out = append(out, other)
			}
		}
		return out
	}

	if wantCombat {
		for _, other := range r.combat {
			if Overlaps(h, other) {
				out = append(out, other)
			}
		}
	}
	if wantCollision {
		for _, other := range r.collision {
			if Overlaps(h, other) {
				out = append(out, other)
			}
		}
	}
	return out
}

// Probe reports whether moving h by (dx, dy) would touch an active
// collision hitbox that skip does not exclude. It uses the map's resolv
// space and returns false when the map has none.
func (r *Registry) Probe(h *Hitbox, dx, dy float64, skip func(*Hitbox) bool) bool {
	if h == nil || h.Space == nil {
		return false
	}
	check := h.Object.Check(dx, dy, tags.ResolvCollision)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		other, ok := obj.Data.(*Hitbox)
		if !ok || other == h || !other.Active {
			continue
		}
		if skip != nil && skip(other) {
			continue
		}
		return true
	}
	return false
}

// Sweep drops inactive hitboxes from every list and space. It must not run
// while a caller iterates a Query result.
func (r *Registry) Sweep() int {
	removed := 0
	kept := r.all[:0]
	for _, h := range r.all {
		if h.Active {
			kept = append(kept, h)
			continue
		}
		removed++
		if h.Space != nil {
			h.Space.Remove(h.Object)
		}
	}
	for i := len(kept); i < len(r.all); i++ {
		r.all[i] = nil
	}
	r.all = kept
	r.collision = compact(r.collision)
	r.combat = compact(r.combat)
	return removed
}

func compact(list []*Hitbox) []*Hitbox {
	kept := list[:0]
	for _, h := range list {
		if h.Active {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}

// Len is the number of registered hitboxes, active or not.
func (r *Registry) Len() int { return len(r.all) }

// All returns the registration ordered list. Callers must not modify it.
func (r *Registry) All() []*Hitbox { return r.all }
