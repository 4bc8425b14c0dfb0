// Package sound plays the simulation's cues through ebiten's audio context.
package sound

import (
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/stuntcat/assets"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared by every Player
var (
	audioContext *audio.Context
	audioInit    sync.Once
)

func audioCtx() *audio.Context {
	audioInit.Do(func() {
		audioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
	return audioContext
}

type fade struct {
	player   *audio.Player
	from     float64
	duration float64 // ms
	elapsed  float64
}

// Player turns cues into sounds. Missing files are logged once and skipped.
type Player struct {
	loader   *assets.AudioLoader
	rand     *rand.Rand
	sfxVol   float64
	musicVol float64

	music    *audio.Player
	unicycle *audio.Player
	playing  map[string]*audio.Player // latest player per path, for stop and fade
	fades    []fade
	last     map[cfg.CueID]string
	missing  map[string]bool
}

func NewPlayer(seed int64) *Player {
	return &Player{
		loader:   assets.NewAudioLoader(audioCtx()),
		rand:     rand.New(rand.NewSource(seed)),
		sfxVol:   cfg.Audio.DefaultSFXVol,
		musicVol: cfg.Audio.DefaultMusicVol,
		playing:  map[string]*audio.Player{},
		last:     map[cfg.CueID]string{},
		missing:  map[string]bool{},
	}
}

// Preload decodes every cue sound to avoid lag on first play.
func (p *Player) Preload() {
	for _, effects := range cfg.Sound.Cues {
		for _, effect := range effects {
			for _, path := range effect.Paths {
				if err := p.loader.PreloadSFX(path); err != nil {
					p.warn(path, err)
				}
			}
		}
	}
}

// Start begins the music and the unicycle loop.
func (p *Player) Start() {
	if music, err := p.loader.LoadLoop(cfg.Audio.Music); err != nil {
		p.warn(cfg.Audio.Music, err)
	} else {
		p.music = music
		music.SetVolume(p.musicVol)
		music.Play()
	}
	if loop, err := p.loader.LoadLoop(cfg.Audio.UnicycleLoop); err != nil {
		p.warn(cfg.Audio.UnicycleLoop, err)
	} else {
		p.unicycle = loop
		loop.SetVolume(0)
		loop.Play()
	}
}

// Play performs every sound operation bound to the cues.
func (p *Player) Play(cues []cfg.CueID) {
	for _, cue := range cues {
		if cue == cfg.CueMusicStop {
			p.stopMusic()
			continue
		}
		for _, effect := range cfg.Sound.Cues[cue] {
			p.apply(cue, effect)
		}
	}
}

// Update advances fades by ms and sets the unicycle loop volume.
func (p *Player) Update(ms, loudness float64) {
	if p.unicycle != nil {
		p.unicycle.SetVolume(loudness * p.sfxVol)
	}

	kept := p.fades[:0]
	for _, f := range p.fades {
		f.elapsed += ms
		if f.elapsed >= f.duration {
			f.player.Pause()
			continue
		}
		f.player.SetVolume(f.from * (1 - f.elapsed/f.duration))
		kept = append(kept, f)
	}
	p.fades = kept
}

func (p *Player) apply(cue cfg.CueID, effect cfg.SoundEffect) {
	switch effect.Action {
	case cfg.SoundStop:
		for _, path := range effect.Paths {
			if player, ok := p.playing[path]; ok {
				player.Pause()
			}
		}
	case cfg.SoundFadeOut:
		for _, path := range effect.Paths {
			if player, ok := p.playing[path]; ok && player.IsPlaying() {
				p.fades = append(p.fades, fade{player: player, from: player.Volume(), duration: float64(effect.FadeMs)})
			}
		}
	default:
		path := p.pick(cue, effect.Paths)
		if path == "" || p.missing[path] || p.sfxVol <= 0 {
			return
		}
		player, err := p.loader.LoadSFX(path)
		if err != nil {
			p.warn(path, err)
			return
		}
		player.SetVolume(p.sfxVol)
		player.Play()
		p.playing[path] = player
	}
}

// pick chooses one of paths at random, never the same one twice in a row.
func (p *Player) pick(cue cfg.CueID, paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	candidates := paths
	if len(paths) > 1 {
		candidates = make([]string, 0, len(paths))
		for _, path := range paths {
			if path != p.last[cue] {
				candidates = append(candidates, path)
			}
		}
	}
	path := candidates[p.rand.Intn(len(candidates))]
	p.last[cue] = path
	return path
}

func (p *Player) stopMusic() {
	if p.music != nil {
		p.music.Pause()
	}
}

func (p *Player) warn(path string, err error) {
	if p.missing[path] {
		return
	}
	p.missing[path] = true
	log.Printf("Warning: sound %s unavailable: %v", path, err)
}
