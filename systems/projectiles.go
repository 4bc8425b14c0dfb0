package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/shared/gamemath"
	"github.com/automoto/stuntcat/systems/factory"
	"github.com/automoto/stuntcat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	fishQuery    = donburi.NewQuery(filter.Contains(tags.Fish))
	notFishQuery = donburi.NewQuery(filter.Contains(tags.NotFish))
)

// SpawnProjectile adds a projectile and returns its id.
func SpawnProjectile(w donburi.World, kind components.ProjectileKind, x, y, vx, vy float64) uint64 {
	session := components.Session.Get(sessionEntry(w))
	id := session.NextID
	session.NextID++
	factory.CreateProjectile(w, spaceOf(w), id, kind, x, y, vx, vy)
	return id
}

// SpawnFish throws a fish from a random side of the stage.
func SpawnFish(w donburi.World) uint64 {
	return throwFromSide(w, components.Catchable)
}

// SpawnNotFish throws a not-fish from a random side of the stage.
func SpawnNotFish(w donburi.World) uint64 {
	return throwFromSide(w, components.Hostile)
}

func throwFromSide(w donburi.World, kind components.ProjectileKind) uint64 {
	r := components.Session.Get(sessionEntry(w)).Rand
	x, dir := 0.0, 1.0
	if r.Intn(2) == 1 {
		x, dir = float64(cfg.C.Width), -1
	}
	vx := float64(gamemath.RandInt(r, cfg.Projectile.SpeedXMin, cfg.Projectile.SpeedXMax)) * dir
	vy := -float64(gamemath.RandInt(r, cfg.Projectile.SpeedYMin, cfg.Projectile.SpeedYMax))
	return SpawnProjectile(w, kind, x, float64(cfg.C.Height)/2, vx, vy)
}

// UpdateProjectiles moves every projectile under gravity and drops the ones
// that fell off the bottom of the stage.
func UpdateProjectiles(w donburi.World) {
	dt := components.Session.Get(sessionEntry(w)).DtScaled
	height := float64(cfg.C.Height)
	space := spaceOf(w)

	toRemove := []*donburi.Entry{}
	components.Projectile.Each(w, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		motion.Position.X += motion.Velocity.X * dt
		motion.Velocity.Y += cfg.Projectile.Gravity * dt
		motion.Position.Y += motion.Velocity.Y * dt

		if motion.Position.Y > height {
			toRemove = append(toRemove, e)
			return
		}
		components.Object.Get(e).MoveCenter(motion.Position.X, motion.Position.Y)
	})

	for _, e := range toRemove {
		factory.DestroyProjectile(w, space, e)
	}
}

// CollideProjectiles lets the cat eat fish and bounces not-fish off its head.
func CollideProjectiles(w donburi.World) {
	session := components.Session.Get(sessionEntry(w))
	cat := catEntry(w)
	player := components.Player.Get(cat)
	balance := components.Balance.Get(cat)
	space := spaceOf(w)
	head := player.Head

	sensor := components.Object.Get(cat)
	check := sensor.Check(0, 0, tags.ResolvFish, tags.ResolvNotFish)
	if check == nil {
		return
	}

	seen := map[*resolv.Object]bool{}
	for _, obj := range check.ObjectsByTags(tags.ResolvFish) {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || seen[obj] || !e.Valid() {
			continue
		}
		seen[obj] = true
		p := components.Motion.Get(e).Position
		if gamemath.Distance(p.X, p.Y, head.X, head.Y) < cfg.Projectile.CatchRadius {
			player.Score++
			factory.DestroyProjectile(w, space, e)
			EmitCue(w, cfg.CueCatch)
		}
	}

	for _, obj := range check.ObjectsByTags(tags.ResolvNotFish) {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || seen[obj] || !e.Valid() {
			continue
		}
		seen[obj] = true
		p := components.Motion.Get(e).Position
		if gamemath.Distance(p.X, p.Y, head.X, head.Y) < cfg.Projectile.DeflectRadius {
			side := gamemath.DeflectSide(head.X, head.Y, p.X, p.Y)
			balance.AngularVel += side * gamemath.Uniform(session.Rand, cfg.Projectile.DeflectMin, cfg.Projectile.DeflectMax)
			factory.DestroyProjectile(w, space, e)
			EmitCue(w, cfg.CueDeflect)
		}
	}
}

// SpawnProjectiles keeps a fish in the air and tops up the not-fish to the
// current difficulty. No fish are thrown while the crowd is mad.
func SpawnProjectiles(w donburi.World) {
	session := sessionEntry(w)
	mad := components.Crowd.Get(session).Mad
	want := components.Difficulty.Get(session).NotFish

	if !mad && fishQuery.Count(w) < 1 {
		SpawnFish(w)
	}
	for n := notFishQuery.Count(w); n < want; n++ {
		SpawnNotFish(w)
	}
}
