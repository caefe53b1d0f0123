package components

import (
	"github.com/automoto/openworld/collision"
	"github.com/yohamta/donburi"
)

// ObjectData backs static world entities such as walls and triggers.
type ObjectData struct {
	*collision.Hitbox
}

var Object = donburi.NewComponentType[ObjectData]()
