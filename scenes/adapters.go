package scenes

import (
	"hash/fnv"
	"image"
	"image/color"
	"io/fs"
	"sync"

	"github.com/automoto/openworld/assets"
	cfg "github.com/automoto/openworld/config"
	"github.com/automoto/openworld/logger"
	"github.com/automoto/openworld/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

// screenRenderer draws onto the screen handed to the current Draw call.
type screenRenderer struct {
	screen  *ebiten.Image
	sprites *assets.SpriteLoader
	log     *logrus.Entry
}

func newRenderer(fsys fs.FS) *screenRenderer {
	return &screenRenderer{
		sprites: assets.NewSpriteLoader(fsys),
		log:     logger.Component("render"),
	}
}

func (r *screenRenderer) DrawEntity(rect world.Rect, sprite string, dir cfg.Direction, frame int, alpha float32) {
	sheet, err := r.sprites.Sheet(sprite)
	if err != nil {
		r.log.WithError(err).Debug("sprite missing, drawing placeholder")
	}
	if sheet == nil {
		c := placeholderColor(sprite)
		vector.FillRect(r.screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), scaleAlpha(c, alpha), false)
		return
	}

	// Square frames, one row per direction
	size := sheet.Bounds().Dy() / 4
	if size == 0 {
		return
	}
	cols := max(sheet.Bounds().Dx()/size, 1)
	col := frame % cols
	row := int(dir)
	sub := sheet.SubImage(image.Rect(col*size, row*size, (col+1)*size, (row+1)*size)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.W/float64(size), rect.H/float64(size))
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.ScaleAlpha(alpha)
	r.screen.DrawImage(sub, op)
}

func (r *screenRenderer) DrawRect(rect world.Rect, c color.Color, filled bool) {
	x, y, w, h := float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H)
	if filled {
		vector.FillRect(r.screen, x, y, w, h, c, false)
		return
	}
	vector.FillRect(r.screen, x, y, w, 1, c, false)
	vector.FillRect(r.screen, x, y+h-1, w, 1, c, false)
	vector.FillRect(r.screen, x, y, 1, h, c, false)
	vector.FillRect(r.screen, x+w-1, y, 1, h, c, false)
}

func (r *screenRenderer) DrawText(x, y float64, text string) {
	ebitenutil.DebugPrintAt(r.screen, text, int(x), int(y))
}

// placeholderColor gives every sprite id a stable color.
func placeholderColor(sprite string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sprite))
	sum := h.Sum32()
	return color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 255}
}

// scaleAlpha fades a color; RGBA is alpha premultiplied.
func scaleAlpha(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// keyboardInput reads ebiten input through the bindings in config.Input.
type keyboardInput struct{}

func (keyboardInput) IsKeyDown(a cfg.ActionID) bool {
	for _, k := range cfg.Input.Bindings[a].Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (keyboardInput) IsKeyPressed(a cfg.ActionID) bool {
	for _, k := range cfg.Input.Bindings[a].Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (keyboardInput) IsMousePressed(b cfg.MouseButton) bool {
	button, ok := cfg.Input.MouseButtons[b]
	return ok && inpututil.IsMouseButtonJustPressed(button)
}

func (keyboardInput) MousePosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// Global audio state, ebiten allows one context per process
var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

// speaker plays sounds from an asset file system. Files that fail to load
// are reported once and then stay silent.
type speaker struct {
	loader   *assets.AudioLoader
	music    *audio.Player
	musicKey string
	musicVol float64
	sfxVol   float64
	failed   map[string]bool
	log      *logrus.Entry
}

func newSpeaker(fsys fs.FS, musicVol, sfxVol float64) *speaker {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return &speaker{
		loader:   assets.NewAudioLoader(audioContext, fsys),
		musicVol: musicVol,
		sfxVol:   sfxVol,
		failed:   make(map[string]bool),
		log:      logger.Component("audio"),
	}
}

// preload decodes every sound effect so the first play does not stall.
func (s *speaker) preload() {
	for _, path := range cfg.Sound.SFXPaths {
		if err := s.loader.PreloadSFX(path); err != nil {
			s.fail(path, err)
		}
	}
}

func (s *speaker) fail(path string, err error) {
	if s.failed[path] {
		return
	}
	s.failed[path] = true
	s.log.WithError(err).WithField("path", path).Warn("sound unavailable, continuing without it")
}

func (s *speaker) PlaySound(_ string, id cfg.SoundID, volume float64) {
	if s.sfxVol <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok || s.failed[path] {
		return
	}
	player, err := s.loader.LoadSFX(path)
	if err != nil {
		s.fail(path, err)
		return
	}
	v := s.sfxVol * volume
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		v *= mult
	}
	player.SetVolume(v)
	player.Play()
}

func (s *speaker) PlayMusic(scene string) {
	path, ok := cfg.Sound.Music[scene]
	if !ok || s.musicKey == path || s.failed[path] {
		return
	}
	if s.music != nil {
		_ = s.music.Close()
		s.music = nil
	}
	player, err := s.loader.LoadMusic(path)
	if err != nil {
		s.fail(path, err)
		return
	}
	player.SetVolume(s.musicVol)
	player.Play()
	s.music = player
	s.musicKey = path
}
