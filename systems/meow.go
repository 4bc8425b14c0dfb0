package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateMeow meows when the countdown has run out.
func UpdateMeow(w donburi.World) {
	session := sessionEntry(w)
	m := components.Meow.Get(session)
	if m.Next <= 0 {
		meow(w)
	}
	m.Next -= components.Session.Get(session).Delta
}

// meow emits a meow and restarts the idle countdown.
func meow(w donburi.World) {
	session := sessionEntry(w)
	r := components.Session.Get(session).Rand
	EmitCue(w, cfg.CueMeow)
	components.Meow.Get(session).Next = gamemath.Uniform(r, cfg.Meow.IntervalMin, cfg.Meow.IntervalMax)
}
