package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Score    int
	Start    math.Vec2 // session start position, restored on death
	Head     math.Vec2 // derived every frame from position and angle
	Grounded bool      // riding on the wire this frame
}

var Player = donburi.NewComponentType[PlayerData]()

// JumpData tracks an in-progress jump.
type JumpData struct {
	Jumping bool
	Time    float64 // ms since take-off
}

var Jump = donburi.NewComponentType[JumpData]()

// PedalData is the unicycle pedalling frame, cycling back and forth.
type PedalData struct {
	Frame   int // 1-based
	Time    float64
	Forward bool
}

var Pedal = donburi.NewComponentType[PedalData]()
