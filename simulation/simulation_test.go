package simulation

import (
	"math"
	"testing"

	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/systems"
)

const frame = 17.0 // one reference frame, dt == 1

func newSim(t *testing.T) *Simulation {
	t.Helper()
	cfg.Defaults()
	t.Cleanup(cfg.Defaults)
	return MustNew(1)
}

// clearSky removes every projectile so a test only sees its own.
func clearSky(s *Simulation) {
	for _, p := range append(s.Catchables(), s.Hostiles()...) {
		s.Remove(p.ID)
	}
}

// place puts the cat somewhere with the given velocity and lean.
func place(s *Simulation, x, y, vx, vy, angle, angVel float64) {
	m := components.Motion.Get(s.cat)
	m.Position.X, m.Position.Y = x, y
	m.Velocity.X, m.Velocity.Y = vx, vy
	b := components.Balance.Get(s.cat)
	b.Angle, b.AngularVel = angle, angVel
}

// steady keeps the cat upright and still at (x, y).
func steady(s *Simulation, x, y float64) {
	place(s, x, y, 0, 0, 0, 0)
}

func hasCue(cues []cfg.CueID, cue cfg.CueID) bool {
	for _, c := range cues {
		if c == cue {
			return true
		}
	}
	return false
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewSession(t *testing.T) {
	s := newSim(t)
	p := s.Player()
	if p.X != 480 || p.Y != 440 || p.Score != 0 {
		t.Errorf("cat starts at (%v, %v) score %d", p.X, p.Y, p.Score)
	}
	if !near(p.HeadX, 480) || !near(p.HeadY, 340) {
		t.Errorf("head = (%v, %v), want (480, 340)", p.HeadX, p.HeadY)
	}

	fish := s.Catchables()
	if len(fish) != 1 {
		t.Fatalf("opening fish count = %d", len(fish))
	}
	f := fish[0]
	if f.X != 0 || f.Y != 270 || f.VX != 10 || f.VY != -5 {
		t.Errorf("opening fish = %+v", f)
	}
	if len(s.Hostiles()) != 0 {
		t.Error("no not-fish expected at score 0")
	}
	if a := s.Antagonist(); a.State != cfg.SharkDormant || a.Visible {
		t.Errorf("shark = %+v", a)
	}
	if _, ok := s.Beam(); ok {
		t.Error("no beam expected")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg.Defaults()
	defer cfg.Defaults()
	cfg.Cat.SpeedMax = 0
	if _, err := New(1); err == nil {
		t.Error("expected an error for a zero speed cap")
	}
}

func TestWireSnap(t *testing.T) {
	s := newSim(t)
	s.Tick(frame)
	p := s.Player()
	if p.Y != cfg.WireHeight() || p.VY != 0 || !p.Grounded {
		t.Errorf("after one tick: y=%v vy=%v grounded=%v", p.Y, p.VY, p.Grounded)
	}
}

func TestSpeedCaps(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
		right  bool
		wantVX float64
		wantVY float64
	}{
		{"fall cap", 100, 0, 0, 15.5, false, 0, 16},
		{"right cap", 600, 200, 7.9, 0, true, 8, 1},
		{"left cap", 600, 200, -12, 0, false, -8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSim(t)
			clearSky(s)
			place(s, tt.x, tt.y, tt.vx, tt.vy, 0, 0)
			s.SetMoveRight(tt.right)
			s.Tick(frame)
			p := s.Player()
			if !near(p.VX, tt.wantVX) || !near(p.VY, tt.wantVY) {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", p.VX, p.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestCatchFish(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.DrainCues()
	p := s.Player()
	id := s.SpawnCatchable(p.HeadX, p.HeadY, 0, 0)
	other := s.SpawnCatchable(100, 100, 0, 0)

	s.Tick(frame)

	if got := s.Player().Score; got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
	for _, f := range s.Catchables() {
		if f.ID == id {
			t.Error("caught fish still in the air")
		}
	}
	found := false
	for _, f := range s.Catchables() {
		found = found || f.ID == other
	}
	if !found {
		t.Error("the far fish should not be caught")
	}
	if !hasCue(s.DrainCues(), cfg.CueCatch) {
		t.Error("expected a catch cue")
	}
}

func TestDeflectNotFish(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.DrainCues()
	p := s.Player()
	s.SpawnHostile(p.HeadX+10, p.HeadY, 0, 0)

	s.Tick(frame)

	if n := len(s.Hostiles()); n != 0 {
		t.Errorf("not-fish left = %d, want 0", n)
	}
	after := s.Player()
	if after.Score != 0 {
		t.Errorf("score = %d, want 0", after.Score)
	}
	// upright cat: the lean push is -TipForce before the impact
	delta := after.AngularVel + cfg.Cat.TipForce
	if delta < cfg.Projectile.DeflectMin-1e-9 || delta > cfg.Projectile.DeflectMax+1e-9 {
		t.Errorf("impact changed angular velocity by %v", delta)
	}
	if !hasCue(s.DrainCues(), cfg.CueDeflect) {
		t.Error("expected a deflect cue")
	}
}

func TestHostileCulledBelowStage(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	// thrown off the right edge, away from the cat
	id := s.SpawnHostile(float64(cfg.C.Width), float64(cfg.C.Height)/2, 5, -8)

	for i := 0; i < 104; i++ {
		steady(s, 480, 440)
		s.Tick(frame)
	}
	hostiles := s.Hostiles()
	if len(hostiles) != 1 || hostiles[0].ID != id {
		t.Fatalf("not-fish should still fly, got %+v", hostiles)
	}
	if !near(hostiles[0].Y, 530) {
		t.Errorf("y after 104 frames = %v, want 530", hostiles[0].Y)
	}

	s.Tick(frame)
	if n := len(s.Hostiles()); n != 0 {
		t.Errorf("not-fish below the stage not culled (%d left)", n)
	}
}

func TestFallOver(t *testing.T) {
	s := newSim(t)
	s.DrainCues()
	components.Player.Get(s.cat).Score = 7
	place(s, 600, 440, 3, 0, 1.6, 0)

	s.Tick(frame)

	p := s.Player()
	if p.X != 480 || p.Y != 440 || p.Score != 0 || p.Angle != 0 || p.AngularVel != 0 {
		t.Errorf("cat not reset: %+v", p)
	}
	cues := s.DrainCues()
	if !hasCue(cues, cfg.CueCrash) || !hasCue(cues, cfg.CueSharkFade) {
		t.Errorf("cues = %v", cues)
	}
	if s.SessionTime() != 0 {
		t.Errorf("session time = %v after death", s.SessionTime())
	}
}

func TestPit(t *testing.T) {
	s := newSim(t)
	s.DrainCues()
	place(s, 100, 535, 0, 10, 0, 0)

	s.Tick(frame)

	p := s.Player()
	if p.X != 480 || p.Y != 440 {
		t.Errorf("cat not back at the start: (%v, %v)", p.X, p.Y)
	}
	cues := s.DrainCues()
	if !hasCue(cues, cfg.CueSplash) || !hasCue(cues, cfg.CueMeow) {
		t.Errorf("cues = %v", cues)
	}
}

func TestRightEdge(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.DrainCues()
	place(s, 955, 300, 8, 0, 0.1, 0)

	s.Tick(frame)

	p := s.Player()
	if p.X != float64(cfg.C.Width) {
		t.Errorf("x = %v, want clamped to %d", p.X, cfg.C.Width)
	}
	if p.Angle >= 0.1 {
		t.Errorf("lean into the wall not damped: %v", p.Angle)
	}
	if hasCue(s.DrainCues(), cfg.CueBump) {
		t.Error("no bump above the bump zone")
	}
}

func TestRightEdgeBump(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.DrainCues()
	place(s, 950, 440, 0, 0, 0, 0)

	s.Tick(frame)

	p := s.Player()
	if p.VX != cfg.Cat.BumpSpeedX || p.VY != cfg.Cat.BumpSpeedY {
		t.Errorf("velocity = (%v, %v), want bump", p.VX, p.VY)
	}
	cues := s.DrainCues()
	if !hasCue(cues, cfg.CueBump) || !hasCue(cues, cfg.CueMeow) {
		t.Errorf("cues = %v", cues)
	}
}

func TestLeftEdgeIsInert(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.DrainCues()
	place(s, 100, 430, 0, 0, 0, 0)

	s.Tick(frame)

	p := s.Player()
	if p.VY != cfg.Cat.Gravity || math.Abs(p.VX) > 1e-3 {
		t.Errorf("velocity = (%v, %v), want plain gravity", p.VX, p.VY)
	}
	if hasCue(s.DrainCues(), cfg.CueBump) {
		t.Error("left zone should not bump")
	}
}

func TestJump(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.Tick(frame) // settle on the wire
	s.DrainCues()

	s.StartJump("up")
	s.Tick(frame)
	p := s.Player()
	if !p.Jumping {
		t.Fatal("jump did not start")
	}
	// impulse, one frame of gravity, one frame of full jump force
	want := -cfg.Cat.JumpImpulse + cfg.Cat.Gravity - frame*cfg.Cat.JumpSpeed
	if !near(p.VY, want) {
		t.Errorf("vy = %v, want %v", p.VY, want)
	}
	if !hasCue(s.DrainCues(), cfg.CueJump) {
		t.Error("expected a jump cue")
	}

	// airborne: a second press does nothing
	s.StartJump("space")
	s.Tick(frame)
	if hasCue(s.DrainCues(), cfg.CueJump) {
		t.Error("jumped in mid air")
	}

	// only the latest press source may end the jump
	s.StopJump("up")
	s.Tick(frame)
	if !s.Player().Jumping {
		t.Error("release of a stale source ended the jump")
	}
	s.StopJump("space")
	s.Tick(frame)
	if s.Player().Jumping {
		t.Error("jump not stopped")
	}
	if !hasCue(s.DrainCues(), cfg.CueJumpStop) {
		t.Error("expected a jump-stop cue")
	}
}

func TestJumpEndsOnItsOwn(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.Tick(frame)
	s.StartJump("JOY0")
	for i := 0; i < 35; i++ {
		s.Tick(frame)
	}
	if !s.Player().Jumping {
		t.Fatal("jump ended before the max jumping time")
	}
	s.Tick(frame)
	if s.Player().Jumping {
		t.Error("jump outlived the max jumping time")
	}
}

func TestTilt(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.TiltRight()
	s.Tick(frame)
	// the impulse is damped on the same frame
	got := s.Player().AngularVel + cfg.Cat.TipForce
	lo, hi := cfg.Cat.TiltMin*cfg.Cat.AngularDamping, cfg.Cat.TiltMax*cfg.Cat.AngularDamping
	if got < lo-1e-9 || got > hi+1e-9 {
		t.Errorf("tilt right gave %v, want in [%v, %v]", got, lo, hi)
	}

	s = newSim(t)
	clearSky(s)
	s.TiltLeft()
	s.Tick(frame)
	got = s.Player().AngularVel + cfg.Cat.TipForce
	if got > -lo+1e-9 || got < -hi-1e-9 {
		t.Errorf("tilt left gave %v, want in [%v, %v]", got, -hi, -lo)
	}
}

func TestUnicycleLoudness(t *testing.T) {
	s := newSim(t)
	place(s, 600, 440, -4, 0, 0, 0)
	if got := s.UnicycleLoudness(); got != 0.5 {
		t.Errorf("loudness = %v, want 0.5", got)
	}
}

func TestDifficultyFollowsScore(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	components.Player.Get(s.cat).Score = 16
	s.Tick(frame)

	d := s.Difficulty()
	if d.NotFish != 2 || !d.SharkEnabled {
		t.Errorf("difficulty at 16 = %+v", d)
	}
	if n := len(s.Hostiles()); n != 2 {
		t.Errorf("not-fish in the air = %d, want 2", n)
	}
	if !s.SharkActive() {
		t.Error("shark should be active from score 10")
	}
}

func TestSharkEnabledOnTheCatchThatReachesTen(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	components.Player.Get(s.cat).Score = cfg.Difficulty.SharkScore - 1
	s.Tick(frame)
	if s.Difficulty().SharkEnabled {
		t.Fatal("shark enabled below the threshold")
	}

	p := s.Player()
	s.SpawnCatchable(p.HeadX, p.HeadY, 0, 0)
	s.Tick(frame)

	if got := s.Player().Score; got != cfg.Difficulty.SharkScore {
		t.Fatalf("score = %d, want %d", got, cfg.Difficulty.SharkScore)
	}
	if d := s.Difficulty(); !d.SharkEnabled || d.NotFish != systems.NotFishFor(cfg.Difficulty.SharkScore) {
		t.Errorf("difficulty after the catch = %+v", d)
	}
	if s.SharkActive() {
		t.Error("shark should wake at the start of the next tick")
	}

	s.Tick(frame)
	if !s.SharkActive() {
		t.Error("shark still asleep a tick after the catch")
	}
}

func TestResetKeepsProjectiles(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	s.SpawnCatchable(100, 100, 1, 0)
	s.SpawnHostile(200, 100, 1, 0)

	s.ResetOnDeath()

	if len(s.Catchables()) != 1 || len(s.Hostiles()) != 1 {
		t.Error("projectiles should survive a death")
	}
}

func TestResetRoundTrip(t *testing.T) {
	s := newSim(t)
	start := s.Player()
	place(s, 700, 200, 5, -3, 0.4, 0.02)
	components.Player.Get(s.cat).Score = 12

	s.ResetOnDeath()

	p := s.Player()
	if p.X != start.X || p.Y != start.Y || p.VX != 0 || p.VY != 0 ||
		p.Angle != 0 || p.AngularVel != 0 || p.Score != 0 {
		t.Errorf("reset state = %+v, want %+v", p, start)
	}
	if !near(p.HeadX, start.HeadX) || !near(p.HeadY, start.HeadY) {
		t.Errorf("head not recomputed: (%v, %v)", p.HeadX, p.HeadY)
	}
	if s.SharkActive() {
		t.Error("shark still active after a death")
	}
}
