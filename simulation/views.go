package simulation

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
)

// Event is the shark state entered during a tick, or NoEvent.
type Event = cfg.SharkStateID

const NoEvent = cfg.SharkStateNone

// PlayerView is a snapshot of the cat.
type PlayerView struct {
	X, Y       float64
	VX, VY     float64
	Angle      float64
	AngularVel float64
	HeadX      float64
	HeadY      float64
	Score      int
	Grounded   bool
	Jumping    bool
	Frame      int // pedalling frame, 1-based
}

// ProjectileView is a snapshot of a fish or not-fish.
type ProjectileView struct {
	ID     uint64
	Kind   components.ProjectileKind
	X, Y   float64
	VX, VY float64
}

// AntagonistView is a snapshot of the shark.
type AntagonistView struct {
	State          cfg.SharkStateID
	LastTransition float64
	Applaud        bool
	Lasered        bool
	Visible        bool
	X              float64
	Sink           float64 // px below the resting position
}

// DifficultyView is the difficulty derived from the current score.
type DifficultyView struct {
	NotFish      int
	SharkEnabled bool
}

// Rect is an axis aligned rectangle in stage pixels.
type Rect struct {
	X, Y, W, H float64
}
