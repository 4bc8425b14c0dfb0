package components

import "github.com/yohamta/donburi"

// JumpEdge is a jump button going down or up.
type JumpEdge int

const (
	JumpPress JumpEdge = iota
	JumpRelease
)

// IntentData is what the player asked for since the last tick.
// Move flags are levels; tilts and jump edges are consumed by the next tick.
type IntentData struct {
	MoveLeft  bool
	MoveRight bool

	TiltLeft  int // pending tilt impulses
	TiltRight int

	Jumps   []JumpEdge // in arrival order
	JumpKey string     // source of the latest jump press, only it may stop the jump
}

var Intent = donburi.NewComponentType[IntentData]()
