package components

import (
	cfg "github.com/automoto/stuntcat/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SharkData is the laser shark's attack cycle.
type SharkData struct {
	State          cfg.SharkStateID
	LastTransition float64 // session time (ms) of the last state change
	Applaud        bool    // cheer when it leaves without hitting the cat
	Lasered        bool    // the cat was hit this cycle

	// Pending is the state entered since the event was last collected,
	// SharkStateNone when nothing happened.
	Pending     cfg.SharkStateID
	Transitions uint64 // counts every state change

	// Presentation
	X    float64     // horizontal position, far offscreen while dormant
	Sink float64     // px below the resting position
	Move *gween.Tween // rise or sink in progress, nil when still
}

var Shark = donburi.NewComponentType[SharkData]()

// LaserData is the beam rectangle while the shark is firing.
type LaserData struct {
	X, Y, W, H float64
}

var Laser = donburi.NewComponentType[LaserData]()
