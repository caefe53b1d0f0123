package components

import (
	"github.com/automoto/openworld/collision"
	"github.com/yohamta/donburi"
)

// InteractableData opens a UI when the player interacts with its hitbox.
type InteractableData struct {
	UI     string
	Hitbox *collision.Hitbox
	// Follow, when set, keeps the hitbox centered on that actor.
	Follow           *donburi.Entry
	OffsetX, OffsetY float64
}

var Interactable = donburi.NewComponentType[InteractableData]()
