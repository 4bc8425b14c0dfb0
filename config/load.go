package config

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// Tuning is the subset of configuration that can be overridden from a TOML file.
// Missing keys keep their defaults.
type Tuning struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Cat struct {
		SpeedMax     float64 `toml:"speed_max"`
		FallSpeedMax float64 `toml:"fall_speed_max"`
		RollSpeed    float64 `toml:"roll_speed"`
		JumpImpulse  float64 `toml:"jump_impulse"`
		WireOffset   float64 `toml:"wire_offset"`
	} `toml:"cat"`

	Shark struct {
		Dormant     float64 `toml:"dormant_ms"`
		Approaching float64 `toml:"approaching_ms"`
		Poised      float64 `toml:"poised_ms"`
		Aiming      float64 `toml:"aiming_ms"`
		Firing      float64 `toml:"firing_ms"`
		Retreating  float64 `toml:"retreating_ms"`
	} `toml:"shark"`

	Difficulty struct {
		SharkScore int `toml:"shark_score"`
	} `toml:"difficulty"`

	Crowd struct {
		MadDuration float64 `toml:"mad_ms"`
	} `toml:"crowd"`

	Audio struct {
		AssetDir string  `toml:"asset_dir"`
		MusicVol float64 `toml:"music_volume"`
		SFXVol   float64 `toml:"sfx_volume"`
	} `toml:"audio"`

	Debug struct {
		Enabled bool  `toml:"enabled"`
		Seed    int64 `toml:"seed"`
	} `toml:"debug"`
}

// LoadFile decodes a TOML tuning file and applies it over the current values.
func LoadFile(path string) error {
	var t Tuning
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}
	Apply(&t)
	return Validate()
}

// Apply copies every non-zero value of t into the live configuration.
func Apply(t *Tuning) {
	setInt(&C.Width, t.Width)
	setInt(&C.Height, t.Height)

	setFloat(&Cat.SpeedMax, t.Cat.SpeedMax)
	setFloat(&Cat.FallSpeedMax, t.Cat.FallSpeedMax)
	setFloat(&Cat.RollSpeed, t.Cat.RollSpeed)
	setFloat(&Cat.JumpImpulse, t.Cat.JumpImpulse)
	setFloat(&Cat.WireOffset, t.Cat.WireOffset)

	setFloat(&Shark.Dwell[SharkDormant], t.Shark.Dormant)
	setFloat(&Shark.Dwell[SharkApproaching], t.Shark.Approaching)
	setFloat(&Shark.Dwell[SharkPoised], t.Shark.Poised)
	setFloat(&Shark.Dwell[SharkAiming], t.Shark.Aiming)
	setFloat(&Shark.Dwell[SharkFiring], t.Shark.Firing)
	setFloat(&Shark.Dwell[SharkRetreating], t.Shark.Retreating)

	setInt(&Difficulty.SharkScore, t.Difficulty.SharkScore)
	setFloat(&Crowd.MadDuration, t.Crowd.MadDuration)

	if t.Audio.AssetDir != "" {
		Audio.AssetDir = t.Audio.AssetDir
	}
	setFloat(&Audio.DefaultMusicVol, t.Audio.MusicVol)
	setFloat(&Audio.DefaultSFXVol, t.Audio.SFXVol)

	if t.Debug.Enabled {
		Debug.Enabled = true
	}
	if t.Debug.Seed != 0 {
		Debug.Seed = t.Debug.Seed
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 && !math.IsNaN(v) {
		*dst = v
	}
}
