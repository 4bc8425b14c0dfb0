package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateIntents applies the edge intents queued since the last tick.
// Move flags are levels and are read by UpdateCat.
func UpdateIntents(w donburi.World) {
	session := sessionEntry(w)
	intent := components.Intent.Get(session)
	r := components.Session.Get(session).Rand
	balance := components.Balance.Get(catEntry(w))

	for ; intent.TiltLeft > 0; intent.TiltLeft-- {
		balance.AngularVel -= gamemath.Uniform(r, cfg.Cat.TiltMin, cfg.Cat.TiltMax)
	}
	for ; intent.TiltRight > 0; intent.TiltRight-- {
		balance.AngularVel += gamemath.Uniform(r, cfg.Cat.TiltMin, cfg.Cat.TiltMax)
	}

	for _, edge := range intent.Jumps {
		if edge == components.JumpPress {
			startJump(w)
		} else {
			stopJump(w)
		}
	}
	intent.Jumps = intent.Jumps[:0]
}

func startJump(w donburi.World) {
	cat := catEntry(w)
	player := components.Player.Get(cat)
	jump := components.Jump.Get(cat)
	if !player.Grounded || jump.Jumping {
		return
	}
	jump.Jumping = true
	jump.Time = 0
	components.Motion.Get(cat).Velocity.Y -= cfg.Cat.JumpImpulse
	EmitCue(w, cfg.CueJump)
}

func stopJump(w donburi.World) {
	components.Jump.Get(catEntry(w)).Jumping = false
	EmitCue(w, cfg.CueJumpStop)
}
