package factory

import (
	"github.com/automoto/stuntcat/archetypes"
	"github.com/automoto/stuntcat/components"
	"github.com/automoto/stuntcat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a fish or a not-fish at (x, y) with the given velocity.
func CreateProjectile(w donburi.World, space *resolv.Space, id uint64, kind components.ProjectileKind, x, y, vx, vy float64) *donburi.Entry {
	arch, tag := archetypes.Fish, tags.ResolvFish
	if kind == components.Hostile {
		arch, tag = archetypes.NotFish, tags.ResolvNotFish
	}
	e := arch.Spawn(w)

	components.Projectile.SetValue(e, components.ProjectileData{ID: id, Kind: kind})
	components.Motion.SetValue(e, components.MotionData{
		Position: math.Vec2{X: x, Y: y},
		Velocity: math.Vec2{X: vx, Y: vy},
	})

	// A point probe; the head sensor carries the catch radius.
	obj := resolv.NewObject(0, 0, 1, 1, tag)
	obj.Data = e
	probe := components.ObjectData{Object: obj}
	probe.MoveCenter(x, y)
	components.Object.SetValue(e, probe)
	space.Add(obj)

	return e
}

// DestroyProjectile removes a projectile and its collision probe.
func DestroyProjectile(w donburi.World, space *resolv.Space, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if obj := components.Object.Get(e); obj.Object != nil {
		space.Remove(obj.Object)
	}
	w.Remove(e.Entity())
}
