package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/yohamta/donburi"
)

// ResetOnDeath puts the cat back at the start, restarts the session clock and
// sends the shark away. Projectiles in flight and the jump state are kept.
func ResetOnDeath(w donburi.World) {
	cat := catEntry(w)
	player := components.Player.Get(cat)
	motion := components.Motion.Get(cat)
	balance := components.Balance.Get(cat)

	motion.Position = player.Start
	motion.Velocity.X, motion.Velocity.Y = 0, 0
	balance.Angle, balance.AngularVel = 0, 0
	player.Score = 0
	updateHead(cat)

	session := components.Session.Get(sessionEntry(w))
	session.TotalTime = 0
	session.SharkActive = false
	session.Died = true

	clearLaser(w)
	forceSharkAway(w)
	EmitCue(w, cfg.CueSharkFade)
}
