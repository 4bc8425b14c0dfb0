package config

import "fmt"

// SharkStateID is one step of the laser shark's attack cycle.
type SharkStateID int

const (
	SharkDormant SharkStateID = iota
	SharkApproaching
	SharkPoised
	SharkAiming
	SharkFiring
	SharkRetreating
	SharkStateCount // Must be last - used for array sizing
)

// SharkStateNone marks "no transition" in one-shot event fields.
const SharkStateNone SharkStateID = -1

var sharkStateNames = [SharkStateCount]string{
	SharkDormant:     "offscreen",
	SharkApproaching: "about_to_appear",
	SharkPoised:      "poise",
	SharkAiming:      "aiming",
	SharkFiring:      "fire laser",
	SharkRetreating:  "leaving",
}

// Valid reports whether s is one of the cycle states.
func (s SharkStateID) Valid() bool {
	return s >= SharkDormant && s < SharkStateCount
}

// Next returns the state that follows s in the cycle.
func (s SharkStateID) Next() SharkStateID {
	s.mustBeValid()
	return (s + 1) % SharkStateCount
}

// String returns the display name used by debug overlays and logs.
func (s SharkStateID) String() string {
	if s == SharkStateNone {
		return "none"
	}
	s.mustBeValid()
	return sharkStateNames[s]
}

// DwellTime returns how long the shark stays in s before advancing.
func (s SharkStateID) DwellTime() float64 {
	s.mustBeValid()
	return Shark.Dwell[s]
}

func (s SharkStateID) mustBeValid() {
	if !s.Valid() {
		panic(fmt.Sprintf("unknown shark state %d", int(s)))
	}
}
