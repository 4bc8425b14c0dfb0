package config

// CueID represents a logical audio/visual cue emitted by the simulation
type CueID int

const (
	CueNone CueID = iota
	// Cat sounds
	CueCatch
	CueDeflect
	CueJump
	CueJumpStop
	CueCrash
	CueSplash
	CueMeow
	CueBump
	// Shark sounds
	CueMusicStop
	CueSharkGone
	CueSharkAppear
	CueSharkPoise
	CueLaser
	CueCatShot
	CueSharkLeave
	CueSharkFade
	// Crowd sounds
	CueCheer
	CueBoo
	CueCrowdAngry
	CueCount // Must be last - used for array sizing
)

var cueNames = [CueCount]string{
	CueNone:        "none",
	CueCatch:       "catch",
	CueDeflect:     "deflect",
	CueJump:        "jump",
	CueJumpStop:    "jump-stop",
	CueCrash:       "crash",
	CueSplash:      "splash",
	CueMeow:        "meow",
	CueBump:        "bump",
	CueMusicStop:   "music-stop",
	CueSharkGone:   "antagonist-gone",
	CueSharkAppear: "antagonist-appear",
	CueSharkPoise:  "antagonist-poise",
	CueLaser:       "laser",
	CueCatShot:     "hit",
	CueSharkLeave:  "antagonist-leave",
	CueSharkFade:   "antagonist-fade",
	CueCheer:       "cheer",
	CueBoo:         "boo",
	CueCrowdAngry:  "crowd-angry",
}

func (c CueID) String() string {
	if c < 0 || c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}

// SoundAction says what the host should do with a sound when a cue fires
type SoundAction int

const (
	SoundPlay SoundAction = iota
	SoundStop
	SoundFadeOut
)

// SoundEffect is one sound operation triggered by a cue
type SoundEffect struct {
	Paths  []string // one is picked at random when several are listed
	Action SoundAction
	FadeMs int
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	AssetDir        string
	DefaultMusicVol float64
	DefaultSFXVol   float64
	Music           string
	UnicycleLoop    string
}

// SoundConfig maps cues to the sound operations the host performs
type SoundConfig struct {
	Cues map[CueID][]SoundEffect
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		AssetDir:        "data",
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
		Music:           "sounds/cat1.ogg",
		UnicycleLoop:    "sounds/unicycle.ogg",
	}

	meows := []string{"sounds/cat_meow01.ogg", "sounds/cat_meow02.ogg", "sounds/cat_meow03.ogg"}
	boings := []string{"sounds/boing1.ogg", "sounds/boing2.ogg", "sounds/boing3.ogg"}

	Sound = SoundConfig{
		Cues: map[CueID][]SoundEffect{
			CueCatch:    {{Paths: []string{"sounds/eatfish.ogg"}}},
			CueDeflect:  {{Paths: boings}},
			CueJump:     {{Paths: []string{"sounds/cat_jump.ogg"}}},
			CueJumpStop: {{Paths: []string{"sounds/cat_jump.ogg"}, Action: SoundFadeOut, FadeMs: 50}},
			CueCrash:    {{Paths: []string{"sounds/cat_crash.ogg"}}},
			CueSplash:   {{Paths: []string{"sounds/splash.ogg"}}},
			CueMeow:     {{Paths: meows}},
			CueBump:     {{Paths: boings}},
			CueSharkGone: {
				{Paths: []string{"sounds/shark_gone.ogg"}, Action: SoundStop},
			},
			CueSharkAppear: {{Paths: []string{"sounds/shark_appear.ogg"}}},
			CueSharkPoise:  {{Paths: []string{"sounds/shark_attacks.ogg"}}},
			CueLaser:       {{Paths: []string{"sounds/shark_lazer.ogg"}}},
			CueCatShot:     {{Paths: []string{"sounds/cat_shot.ogg"}}},
			CueSharkLeave: {
				{Paths: []string{"sounds/shark_appear.ogg"}, Action: SoundFadeOut, FadeMs: 3500},
				{Paths: []string{"sounds/shark_attacks.ogg"}, Action: SoundStop},
				{Paths: []string{"sounds/shark_gone.ogg"}},
			},
			CueSharkFade: {
				{Paths: []string{"sounds/shark_appear.ogg"}, Action: SoundFadeOut, FadeMs: 1000},
			},
			CueCheer: {{Paths: []string{"sounds/applause.ogg"}}},
			CueBoo:   {{Paths: []string{"sounds/boo.ogg"}}},
		},
	}
}
