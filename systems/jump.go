package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/yohamta/donburi"
)

// UpdateJump keeps pushing the cat up while a jump lasts. The push fades
// linearly to zero over MaxJumpingTime.
func UpdateJump(w donburi.World) {
	ms := components.Session.Get(sessionEntry(w)).Delta
	cat := catEntry(w)
	jump := components.Jump.Get(cat)
	if !jump.Jumping {
		return
	}

	maxTime := cfg.Cat.MaxJumpingTime
	components.Motion.Get(cat).Velocity.Y -= ms * ((maxTime - jump.Time) / maxTime) * cfg.Cat.JumpSpeed
	jump.Time += ms
	if jump.Time >= maxTime {
		jump.Jumping = false
	}
}
