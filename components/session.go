package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SessionData is the singleton clock and bookkeeping for one play session.
type SessionData struct {
	TotalTime float64 // ms since the session (or the last death) started
	Delta     float64 // ms covered by the current tick
	DtScaled  float64 // Delta in reference frames

	Rand   *rand.Rand
	NextID uint64

	SharkActive bool
	Died        bool // a death reset happened during the current tick
}

var Session = donburi.NewComponentType[SessionData]()

// DifficultyData is derived from the score every frame.
type DifficultyData struct {
	NotFish      int
	SharkEnabled bool
}

var Difficulty = donburi.NewComponentType[DifficultyData]()

// CrowdData tracks the angry crowd throwing not-fish.
type CrowdData struct {
	Mad       bool
	MadTime   float64 // ms since the crowd got angry
	ThrowTime float64 // ms since the last throw
	NextThrow float64 // ms until the next throw
}

var Crowd = donburi.NewComponentType[CrowdData]()

// MeowData counts down to the next idle meow.
type MeowData struct {
	Next float64 // ms
}

var Meow = donburi.NewComponentType[MeowData]()
