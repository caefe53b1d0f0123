package components

import (
	"github.com/automoto/openworld/ai"
	"github.com/yohamta/donburi"
)

type AIData struct {
	Brain *ai.Brain
	Mode  ai.Mode
	// Faulted brains stop thinking after a configuration error.
	Faulted bool
}

var AI = donburi.NewComponentType[AIData]()
