package factory

import (
	"github.com/automoto/stuntcat/archetypes"
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/yohamta/donburi"
)

// CreateShark spawns the shark dormant and hidden.
func CreateShark(w donburi.World) *donburi.Entry {
	shark := archetypes.Shark.Spawn(w)
	components.Shark.SetValue(shark, components.SharkData{
		State:   cfg.SharkDormant,
		Pending: cfg.SharkStateNone,
		X:       cfg.Shark.HiddenX,
		Sink:    cfg.Shark.SinkDistance,
	})
	return shark
}

// CreateLaser spawns the beam across the stage at cat height.
func CreateLaser(w donburi.World) *donburi.Entry {
	laser := archetypes.Laser.Spawn(w)
	components.Laser.SetValue(laser, components.LaserData{
		X: cfg.Shark.LaserX,
		Y: float64(cfg.C.Height) - cfg.Shark.LaserOffset,
		W: float64(cfg.C.Width),
		H: cfg.Shark.LaserHeight,
	})
	return laser
}
