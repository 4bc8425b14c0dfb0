package config

import "image/color"

// RenderConfig holds the colours and sizes the hosts draw with
type RenderConfig struct {
	BackgroundColor color.RGBA
	WireColor       color.RGBA
	PoolColor       color.RGBA
	CatColor        color.RGBA
	WheelColor      color.RGBA
	FishColor       color.RGBA
	NotFishColor    color.RGBA
	SharkColor      color.RGBA
	LaserColor      color.RGBA
	TextColor       color.RGBA
	DebugColor      color.RGBA

	WheelRadius      float32
	HeadRadius       float32
	ProjectileRadius float32
	SharkWidth       float32
	SharkHeight      float32
	ScoreX           int
	ScoreY           int
}

var Render RenderConfig

func init() {
	Render = RenderConfig{
		BackgroundColor: color.RGBA{40, 44, 80, 255},
		WireColor:       color.RGBA{200, 200, 200, 255},
		PoolColor:       color.RGBA{30, 110, 200, 255},
		CatColor:        color.RGBA{240, 160, 60, 255},
		WheelColor:      color.RGBA{60, 60, 60, 255},
		FishColor:       color.RGBA{120, 220, 255, 255},
		NotFishColor:    color.RGBA{180, 80, 80, 255},
		SharkColor:      color.RGBA{140, 150, 170, 255},
		LaserColor:      color.RGBA{255, 40, 40, 255},
		TextColor:       color.RGBA{255, 255, 255, 255},
		DebugColor:      color.RGBA{0, 255, 255, 255},

		WheelRadius:      20,
		HeadRadius:       18,
		ProjectileRadius: 10,
		SharkWidth:       260,
		SharkHeight:      120,
		ScoreX:           20,
		ScoreY:           44,
	}
}

// TerminalConfig controls the text-mode host
type TerminalConfig struct {
	FrameMs int // ms between frames
	// Terminals only report presses, so a key counts as held until no
	// repeat has arrived for HoldMs.
	HoldMs int
	// Longest step fed to the simulation after a stall such as a suspend.
	MaxTickMs int
}

var Terminal = TerminalConfig{
	FrameMs:   16,
	HoldMs:    400,
	MaxTickMs: 68,
}
