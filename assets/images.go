package assets

import (
	"bytes"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteLoader loads sprite sheets named by sprite id from fsys. A sheet
// is images/<sprite>.png, one row per direction and one column per frame.
type SpriteLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
	miss  map[string]bool
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
		miss:  make(map[string]bool),
	}
}

// Sheet returns the sheet of a sprite. A missing sheet is reported once and
// then returns nil without touching the file system again.
func (l *SpriteLoader) Sheet(sprite string) (*ebiten.Image, error) {
	if img, ok := l.cache[sprite]; ok {
		return img, nil
	}
	if l.miss[sprite] {
		return nil, nil
	}

	p := path.Join("images", sprite+".png")
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		l.miss[sprite] = true
		return nil, fmt.Errorf("failed to read sprite %s: %w", p, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		l.miss[sprite] = true
		return nil, fmt.Errorf("failed to decode sprite %s: %w", p, err)
	}
	l.cache[sprite] = img
	return img, nil
}
