package world

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEvent is published when the player triggers an interactable.
type InteractionEvent struct {
	Source *donburi.Entry
	UI     string
	At     time.Duration
}

// DeathEvent is published when an actor's life drops to zero.
type DeathEvent struct {
	Actor *donburi.Entry
	Name  string
	At    time.Duration
}

var (
	Interactions = events.NewEventType[InteractionEvent]()
	Deaths       = events.NewEventType[DeathEvent]()
)
