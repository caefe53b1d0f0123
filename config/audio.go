package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundSlash
	SoundThrow
	SoundHit
	SoundDeath
	SoundDash
	SoundInteract
)

// Scene names group sounds the way the asset tree does.
const (
	SceneGame = "game"
	SceneMenu = "menu"
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Music             map[string]string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		Music: map[string]string{
			SceneGame: "audio/music/overworld.wav",
		},
		SFXPaths: map[SoundID]string{
			SoundSlash:    "audio/sfx/slash.wav",
			SoundThrow:    "audio/sfx/throw.wav",
			SoundHit:      "audio/sfx/hit.wav",
			SoundDeath:    "audio/sfx/death.wav",
			SoundDash:     "audio/sfx/dash.wav",
			SoundInteract: "audio/sfx/interact.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:  0.8,
			SoundDash: 0.5,
		},
	}
}
