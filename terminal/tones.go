package terminal

import (
	"log"
	"math"
	"time"

	cfg "github.com/automoto/stuntcat/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// tone is a short synthesized beep standing in for a sound file.
type tone struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var tones = map[cfg.CueID]tone{
	cfg.CueCatch:       {freq: 880, duration: 60 * time.Millisecond, volume: 0.5},
	cfg.CueDeflect:     {freq: 220, duration: 80 * time.Millisecond, volume: 0.5},
	cfg.CueJump:        {freq: 660, duration: 40 * time.Millisecond, volume: 0.3},
	cfg.CueCrash:       {freq: 110, duration: 200 * time.Millisecond, volume: 0.6},
	cfg.CueSplash:      {freq: 150, duration: 250 * time.Millisecond, volume: 0.6},
	cfg.CueMeow:        {freq: 740, duration: 120 * time.Millisecond, volume: 0.3},
	cfg.CueBump:        {freq: 330, duration: 60 * time.Millisecond, volume: 0.4},
	cfg.CueSharkAppear: {freq: 98, duration: 400 * time.Millisecond, volume: 0.5},
	cfg.CueSharkPoise:  {freq: 131, duration: 300 * time.Millisecond, volume: 0.5},
	cfg.CueLaser:       {freq: 1320, duration: 150 * time.Millisecond, volume: 0.4},
	cfg.CueCatShot:     {freq: 90, duration: 300 * time.Millisecond, volume: 0.7},
	cfg.CueCheer:       {freq: 1047, duration: 200 * time.Millisecond, volume: 0.4},
	cfg.CueBoo:         {freq: 73, duration: 400 * time.Millisecond, volume: 0.5},
}

// Tones plays cues as sine beeps through the beep speaker.
type Tones struct {
	rate    beep.SampleRate
	enabled bool
}

// NewTones opens the speaker. Without an audio device the game stays silent.
func NewTones() *Tones {
	t := &Tones{rate: beep.SampleRate(cfg.Audio.SampleRate)}
	if err := speaker.Init(t.rate, t.rate.N(time.Second/10)); err != nil {
		log.Printf("Warning: audio unavailable: %v", err)
		return t
	}
	t.enabled = true
	return t
}

func (t *Tones) Play(cues []cfg.CueID) {
	if !t.enabled {
		return
	}
	for _, cue := range cues {
		tn, ok := tones[cue]
		if !ok {
			continue
		}
		sine, err := generators.SineTone(t.rate, tn.freq)
		if err != nil {
			continue
		}
		vol := tn.volume * cfg.Audio.DefaultSFXVol
		if vol <= 0 {
			continue
		}
		speaker.Play(&effects.Volume{
			Streamer: beep.Take(t.rate.N(tn.duration), sine),
			Base:     2,
			Volume:   math.Log2(vol),
		})
	}
}

func (t *Tones) Close() {
	if t.enabled {
		speaker.Close()
	}
}
