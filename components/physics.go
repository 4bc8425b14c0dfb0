package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MotionData is the position and velocity of anything that flies or rolls.
type MotionData struct {
	Position math.Vec2
	Velocity math.Vec2
}

var Motion = donburi.NewComponentType[MotionData]()

// BalanceData is the lean of the unicycle. Angle is in radians, 0 is upright,
// positive leans right.
type BalanceData struct {
	Angle      float64
	AngularVel float64
}

var Balance = donburi.NewComponentType[BalanceData]()
