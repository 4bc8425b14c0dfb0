package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// AnnoyCrowd starts a wave of thrown not-fish.
func AnnoyCrowd(w donburi.World) {
	crowd := components.Crowd.Get(sessionEntry(w))
	crowd.Mad = true
	crowd.MadTime = 0
	EmitCue(w, cfg.CueCrowdAngry)
}

// UpdateCrowd throws a not-fish every ThrowInterval ms while the crowd is mad.
func UpdateCrowd(w donburi.World) {
	session := sessionEntry(w)
	crowd := components.Crowd.Get(session)
	if !crowd.Mad {
		return
	}
	s := components.Session.Get(session)

	crowd.MadTime += s.Delta
	crowd.ThrowTime += s.Delta
	if crowd.ThrowTime >= crowd.NextThrow {
		crowd.NextThrow = float64(gamemath.RandInt(s.Rand, cfg.Crowd.ThrowIntervalMin, cfg.Crowd.ThrowIntervalMax))
		crowd.ThrowTime = 0
		SpawnNotFish(w)
	}
	if crowd.MadTime >= cfg.Crowd.MadDuration {
		crowd.Mad = false
	}
}
