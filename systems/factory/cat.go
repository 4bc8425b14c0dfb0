package factory

import (
	"github.com/automoto/stuntcat/archetypes"
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/shared/gamemath"
	"github.com/automoto/stuntcat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCat spawns the cat on the wire in the middle of the stage. Its
// collision object is a square sensor around the head.
func CreateCat(w donburi.World, space *resolv.Space) *donburi.Entry {
	cat := archetypes.Cat.Spawn(w)

	start := math.Vec2{X: float64(cfg.C.Width) / 2, Y: cfg.WireHeight()}
	hx, hy := gamemath.HeadPosition(start.X, start.Y, 0, cfg.Cat.HeadDistance)

	components.Player.SetValue(cat, components.PlayerData{
		Start:    start,
		Head:     math.Vec2{X: hx, Y: hy},
		Grounded: true,
	})
	components.Motion.SetValue(cat, components.MotionData{Position: start})
	components.Balance.SetValue(cat, components.BalanceData{})
	components.Jump.SetValue(cat, components.JumpData{})
	components.Pedal.SetValue(cat, components.PedalData{Frame: 1, Forward: true})

	// resolv registers an object's far edge at X+W-1, so pad the square by
	// a pixel on each side to keep every in-range fish in a sensed cell.
	size := 2*cfg.Projectile.CatchRadius + 2
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvHead)
	obj.Data = cat
	sensor := components.ObjectData{Object: obj}
	sensor.MoveCenter(hx, hy)
	components.Object.SetValue(cat, sensor)
	space.Add(obj)

	return cat
}
