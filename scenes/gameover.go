package scenes

import (
	"image/color"

	cfg "github.com/automoto/openworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// GameOverScene is shown after the player died. Interact starts over.
type GameOverScene struct {
	sceneChanger SceneChanger
	opts         Options
	input        keyboardInput
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, opts Options) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, opts: opts}
}

func (gs *GameOverScene) Update() {
	if gs.input.IsKeyPressed(cfg.ActionInteract) {
		gs.sceneChanger.ChangeScene(NewArenaScene(gs.sceneChanger, gs.opts))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ebitenutil.DebugPrintAt(screen, "GAME OVER - press E to try again", cfg.C.Width/2-100, cfg.C.Height/2)
}
