package systems

import (
	"math"

	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCat integrates the cat: lean, roll, gravity, steering and the wire.
func UpdateCat(w donburi.World) {
	session := sessionEntry(w)
	dt := components.Session.Get(session).DtScaled
	intent := components.Intent.Get(session)

	cat := catEntry(w)
	motion := components.Motion.Get(cat)
	balance := components.Balance.Get(cat)
	player := components.Player.Get(cat)

	balance.AngularVel = gamemath.Damp(balance.AngularVel, cfg.Cat.AngularDamping, dt)

	// roll towards the lean
	motion.Velocity.X += math.Sin(balance.Angle) * dt * cfg.Cat.RollSpeed
	motion.Velocity.Y = math.Min(motion.Velocity.Y+cfg.Cat.Gravity*dt, cfg.Cat.FallSpeedMax)

	if intent.MoveRight {
		motion.Velocity.X = math.Min(motion.Velocity.X+cfg.Cat.Acceleration*dt, cfg.Cat.SpeedMax)
		balance.Angle -= cfg.Cat.LeanPerMove * dt
	}
	if intent.MoveLeft {
		motion.Velocity.X = math.Max(motion.Velocity.X-cfg.Cat.Acceleration*dt, -cfg.Cat.SpeedMax)
		balance.Angle += cfg.Cat.LeanPerMove * dt
	}
	motion.Velocity.X = gamemath.ClampSpeed(motion.Velocity.X, cfg.Cat.SpeedMax)

	// tip over
	balance.AngularVel += cfg.Cat.TipForce * gamemath.LeanSign(balance.Angle) * dt
	balance.Angle += balance.AngularVel * dt

	if math.Abs(balance.Angle) > math.Pi/2 && motion.Position.Y > float64(cfg.C.Height)-cfg.Cat.FallZone {
		EmitCue(w, cfg.CueCrash)
		ResetOnDeath(w)
		return
	}

	motion.Position.X += motion.Velocity.X * dt
	motion.Position.Y += motion.Velocity.Y * dt

	wire := cfg.WireHeight()
	if motion.Position.Y > wire && motion.Position.X > cfg.Cat.WireStartRatio*float64(cfg.C.Width) {
		player.Grounded = true
		motion.Position.Y = wire
		motion.Velocity.Y = 0
	} else {
		player.Grounded = false
	}
}

// UpdateBounds handles the pit, the right wall and the bump back onto the wire.
func UpdateBounds(w donburi.World) {
	dt := components.Session.Get(sessionEntry(w)).DtScaled
	width := float64(cfg.C.Width)
	wire := cfg.WireHeight()

	cat := catEntry(w)
	motion := components.Motion.Get(cat)
	balance := components.Balance.Get(cat)

	if motion.Position.Y > float64(cfg.C.Height) {
		EmitCue(w, cfg.CueSplash)
		meow(w)
		ResetOnDeath(w)
		return
	}

	if motion.Position.X > width {
		motion.Position.X = width
		if balance.Angle > 0 {
			balance.Angle *= cfg.Cat.EdgeLeanDamping
		}
	}

	updateHead(cat)

	if motion.Position.X > cfg.Cat.BumpZoneRatio*width && motion.Position.Y > wire-cfg.Cat.BumpZoneHeight {
		meow(w)
		EmitCue(w, cfg.CueBump)
		balance.AngularVel -= cfg.Cat.BumpSpin * dt
		motion.Velocity.X = cfg.Cat.BumpSpeedX
		motion.Velocity.Y = cfg.Cat.BumpSpeedY
	}
	// The zone left of the wire start is deliberately inert.
}

// updateHead recomputes the head from position and lean and moves the sensor.
func updateHead(cat *donburi.Entry) {
	motion := components.Motion.Get(cat)
	balance := components.Balance.Get(cat)
	player := components.Player.Get(cat)

	player.Head.X, player.Head.Y = gamemath.HeadPosition(
		motion.Position.X, motion.Position.Y, balance.Angle, cfg.Cat.HeadDistance)
	components.Object.Get(cat).MoveCenter(player.Head.X, player.Head.Y)
}
