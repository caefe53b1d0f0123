package effects

import (
	"time"

	"github.com/yohamta/donburi"
)

// Instance is one application of an effect to one entity.
type Instance struct {
	Entry    *donburi.Entry
	Origin   time.Duration
	Duration time.Duration
	LastTick time.Duration
	// Values is scratch space for the effect callbacks.
	Values map[string]any
}

// End is the time at which the instance expires.
func (i *Instance) End() time.Duration { return i.Origin + i.Duration }

// Elapsed is the time since the instance started.
func (i *Instance) Elapsed(now time.Duration) time.Duration { return now - i.Origin }

// Hook is called with the instance and the current time.
type Hook func(inst *Instance, now time.Duration)

// Effect is a named timed behavior. An entity holds at most one instance of
// a given effect; applying it again only pushes the end time further out.
type Effect struct {
	Name         string
	TickInterval time.Duration
	OnStart      Hook
	OnTick       Hook
	OnEnd        Hook

	instances []*Instance
}

func New(name string, tickInterval time.Duration) *Effect {
	return &Effect{Name: name, TickInterval: tickInterval}
}

// Apply starts the effect on entry, or extends the running instance so it
// ends at the later of its current end and now+duration.
func (e *Effect) Apply(now time.Duration, entry *donburi.Entry, duration time.Duration) *Instance {
	if inst := e.Instance(entry); inst != nil {
		if end := now + duration; end > inst.End() {
			inst.Duration = end - inst.Origin
		}
		return inst
	}

	inst := &Instance{
		Entry:    entry,
		Origin:   now,
		Duration: duration,
		LastTick: now - e.TickInterval,
		Values:   make(map[string]any),
	}
	e.instances = append(e.instances, inst)
	if e.OnStart != nil {
		e.OnStart(inst, now)
	}
	return inst
}

// Update ticks every instance whose interval elapsed and ends the expired
// ones. Instances of removed entities are dropped without callbacks.
func (e *Effect) Update(now time.Duration) {
	kept := e.instances[:0]
	for _, inst := range e.instances {
		if !inst.Entry.Valid() {
			continue
		}
		if now-inst.LastTick > e.TickInterval {
			if e.OnTick != nil {
				e.OnTick(inst, now)
			}
			inst.LastTick = now
		}
		if now-inst.Origin >= inst.Duration {
			if e.OnEnd != nil {
				e.OnEnd(inst, now)
			}
			continue
		}
		kept = append(kept, inst)
	}
	for i := len(kept); i < len(e.instances); i++ {
		e.instances[i] = nil
	}
	e.instances = kept
}

// Has reports whether entry currently carries the effect.
func (e *Effect) Has(entry *donburi.Entry) bool {
	return e.Instance(entry) != nil
}

// Instance returns the running instance on entry, or nil.
func (e *Effect) Instance(entry *donburi.Entry) *Instance {
	if entry == nil {
		return nil
	}
	for _, inst := range e.instances {
		if inst.Entry.Entity() == entry.Entity() {
			return inst
		}
	}
	return nil
}

// Len is the number of running instances.
func (e *Effect) Len() int { return len(e.instances) }

// Set runs a group of effects in registration order.
type Set struct {
	effects []*Effect
}

func (s *Set) Add(effects ...*Effect) {
	s.effects = append(s.effects, effects...)
}

func (s *Set) Update(now time.Duration) {
	for _, e := range s.effects {
		e.Update(now)
	}
}

// Effects returns the registered effects in order.
func (s *Set) Effects() []*Effect { return s.effects }
