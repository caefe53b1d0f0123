package scenes

import "io/fs"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options are the resources shared by every scene.
type Options struct {
	// Maps holds the TMX files under MapsDir.
	Maps    fs.FS
	MapsDir string
	// StartMap is the map the player starts on, the first one by id when
	// empty.
	StartMap string
	// Assets holds images/ and audio/.
	Assets fs.FS
	Seed   int64

	MusicVolume float64
	SFXVolume   float64
}
