// Package simulation steps the stunt cat game one frame at a time. It owns
// the donburi world and exposes read-only snapshots and intent setters, so
// hosts never touch entities directly.
package simulation

import (
	"fmt"
	"sort"

	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/systems"
	"github.com/automoto/stuntcat/systems/factory"
	"github.com/automoto/stuntcat/tags"
	"github.com/yohamta/donburi"
)

// Simulation is one stunt cat session.
type Simulation struct {
	world   donburi.World
	session *donburi.Entry
	cat     *donburi.Entry
	shark   *donburi.Entry
	steps   []systems.System
}

// New builds a session: the cat on the wire, a dormant shark and the
// opening fish thrown from the left.
func New(seed int64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	w := donburi.NewWorld()
	space := factory.CreateSpace(w, cfg.C.Width, cfg.C.Height)
	s := &Simulation{
		world:   w,
		session: factory.CreateSession(w, seed),
		cat:     factory.CreateCat(w, components.Space.Get(space)),
		shark:   factory.CreateShark(w),
	}

	s.steps = []systems.System{
		systems.UpdateIntents,
		systems.UpdateDifficulty,
		systems.UpdateClock,
		systems.UpdatePedal,
		systems.UpdateCat,
		systems.WithAliveCheck(systems.UpdateBounds),
		systems.UpdateShark,
		systems.UpdateJump,
		systems.UpdateMeow,
		systems.UpdateCrowd,
		systems.UpdateProjectiles,
		systems.CollideProjectiles,
		systems.SpawnProjectiles,
	}

	systems.SpawnProjectile(w, components.Catchable,
		0, float64(cfg.C.Height)/2, cfg.Projectile.OpeningSpeedX, cfg.Projectile.OpeningSpeedY)

	return s, nil
}

// MustNew is New for callers with a known good configuration.
func MustNew(seed int64) *Simulation {
	s, err := New(seed)
	if err != nil {
		panic(err)
	}
	return s
}

// Tick advances the game by ms milliseconds and returns the shark state
// entered during the tick, NoEvent if there was none. When several
// transitions happen in one tick the last one wins.
func (s *Simulation) Tick(ms float64) Event {
	if ms < 0 {
		ms = 0
	}
	shark := components.Shark.Get(s.shark)
	before := shark.Transitions

	systems.BeginTick(s.world, ms)
	for _, step := range s.steps {
		step(s.world)
	}

	if shark.Transitions == before {
		return NoEvent
	}
	return shark.Pending
}

// TakeEvent returns the latest shark state entered since the last call and
// clears it.
func (s *Simulation) TakeEvent() Event {
	shark := components.Shark.Get(s.shark)
	ev := shark.Pending
	shark.Pending = NoEvent
	return ev
}

// DrainCues returns the cues emitted since the last call, oldest first.
func (s *Simulation) DrainCues() []cfg.CueID {
	return systems.DrainCues(s.world)
}

// ResetOnDeath resets the cat and the shark as if the cat had just died.
func (s *Simulation) ResetOnDeath() {
	systems.ResetOnDeath(s.world)
}

// SpawnCatchable throws a fish with an explicit position and velocity.
func (s *Simulation) SpawnCatchable(x, y, vx, vy float64) uint64 {
	return systems.SpawnProjectile(s.world, components.Catchable, x, y, vx, vy)
}

// SpawnHostile throws a not-fish with an explicit position and velocity.
func (s *Simulation) SpawnHostile(x, y, vx, vy float64) uint64 {
	return systems.SpawnProjectile(s.world, components.Hostile, x, y, vx, vy)
}

// Remove drops a projectile by id. It reports whether one was found.
func (s *Simulation) Remove(id uint64) bool {
	var found *donburi.Entry
	components.Projectile.Each(s.world, func(e *donburi.Entry) {
		if components.Projectile.Get(e).ID == id {
			found = e
		}
	})
	if found == nil {
		return false
	}
	space := components.Space.Get(components.Space.MustFirst(s.world))
	factory.DestroyProjectile(s.world, space, found)
	return true
}

// Player returns a snapshot of the cat.
func (s *Simulation) Player() PlayerView {
	motion := components.Motion.Get(s.cat)
	balance := components.Balance.Get(s.cat)
	player := components.Player.Get(s.cat)
	return PlayerView{
		X:          motion.Position.X,
		Y:          motion.Position.Y,
		VX:         motion.Velocity.X,
		VY:         motion.Velocity.Y,
		Angle:      balance.Angle,
		AngularVel: balance.AngularVel,
		HeadX:      player.Head.X,
		HeadY:      player.Head.Y,
		Score:      player.Score,
		Grounded:   player.Grounded,
		Jumping:    components.Jump.Get(s.cat).Jumping,
		Frame:      components.Pedal.Get(s.cat).Frame,
	}
}

// Catchables returns the fish in flight ordered by id.
func (s *Simulation) Catchables() []ProjectileView {
	return s.projectiles(tags.Fish)
}

// Hostiles returns the not-fish in flight ordered by id.
func (s *Simulation) Hostiles() []ProjectileView {
	return s.projectiles(tags.NotFish)
}

func (s *Simulation) projectiles(tag donburi.IComponentType) []ProjectileView {
	views := []ProjectileView{}
	components.Projectile.Each(s.world, func(e *donburi.Entry) {
		if !e.HasComponent(tag) {
			return
		}
		p := components.Projectile.Get(e)
		m := components.Motion.Get(e)
		views = append(views, ProjectileView{
			ID:   p.ID,
			Kind: p.Kind,
			X:    m.Position.X,
			Y:    m.Position.Y,
			VX:   m.Velocity.X,
			VY:   m.Velocity.Y,
		})
	})
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

// Antagonist returns a snapshot of the shark.
func (s *Simulation) Antagonist() AntagonistView {
	shark := components.Shark.Get(s.shark)
	return AntagonistView{
		State:          shark.State,
		LastTransition: shark.LastTransition,
		Applaud:        shark.Applaud,
		Lasered:        shark.Lasered,
		Visible:        shark.X > cfg.Shark.HiddenX,
		X:              shark.X,
		Sink:           shark.Sink,
	}
}

// Beam returns the laser rectangle while the shark is firing.
func (s *Simulation) Beam() (Rect, bool) {
	e, ok := tags.Laser.First(s.world)
	if !ok {
		return Rect{}, false
	}
	l := components.Laser.Get(e)
	return Rect{X: l.X, Y: l.Y, W: l.W, H: l.H}, true
}

// Difficulty is derived from the current score, so it changes on the tick
// the score does. The shark itself only wakes at the start of the next tick.
func (s *Simulation) Difficulty() DifficultyView {
	score := components.Player.Get(s.cat).Score
	return DifficultyView{
		NotFish:      systems.NotFishFor(score),
		SharkEnabled: systems.SharkEnabledFor(score),
	}
}

// SharkActive reports whether the shark cycle is running.
func (s *Simulation) SharkActive() bool {
	return components.Session.Get(s.session).SharkActive
}

// CrowdAngry reports whether a not-fish wave is under way.
func (s *Simulation) CrowdAngry() bool {
	return components.Crowd.Get(s.session).Mad
}

// SessionTime is the ms since the session started or the cat last died.
func (s *Simulation) SessionTime() float64 {
	return components.Session.Get(s.session).TotalTime
}

// UnicycleLoudness is how loud the unicycle should sound, 0 to 1.
func (s *Simulation) UnicycleLoudness() float64 {
	vx := components.Motion.Get(s.cat).Velocity.X
	if vx < 0 {
		vx = -vx
	}
	return vx / cfg.Cat.SpeedMax
}

// CollisionBoxes returns every collision object in stage coordinates, for
// debug overlays.
func (s *Simulation) CollisionBoxes() []Rect {
	space := components.Space.Get(components.Space.MustFirst(s.world))
	margin := float64(cfg.Collision.Margin)
	boxes := []Rect{}
	for _, obj := range space.Objects() {
		boxes = append(boxes, Rect{X: obj.X - margin, Y: obj.Y - margin, W: obj.W, H: obj.H})
	}
	return boxes
}
