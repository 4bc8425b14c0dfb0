package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/yohamta/donburi"
)

// UpdatePedal steps the pedalling frame 1..PedalFrames and back again.
func UpdatePedal(w donburi.World) {
	ms := components.Session.Get(sessionEntry(w)).Delta
	pedal := components.Pedal.Get(catEntry(w))

	pedal.Time += ms
	if pedal.Time < cfg.Cat.PedalFrameMs {
		return
	}
	pedal.Time = 0
	if pedal.Forward {
		pedal.Frame++
	} else {
		pedal.Frame--
	}
	if pedal.Frame == cfg.Cat.PedalFrames || pedal.Frame == 1 {
		pedal.Forward = !pedal.Forward
	}
}
