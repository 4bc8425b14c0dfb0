package simulation

import (
	"testing"

	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
)

// huntingSim returns a session where the shark hunts and no not-fish fly.
func huntingSim(t *testing.T) *Simulation {
	t.Helper()
	s := newSim(t)
	cfg.Difficulty.Steps = nil
	clearSky(s)
	components.Player.Get(s.cat).Score = cfg.Difficulty.SharkScore
	return s
}

// tickUntil ticks with the cat held at (x, y) until the shark enters state.
// It returns every event seen on the way.
func tickUntil(t *testing.T, s *Simulation, state cfg.SharkStateID, x, y float64) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < 2000; i++ {
		steady(s, x, y)
		ev := s.Tick(frame)
		if ev == NoEvent {
			continue
		}
		events = append(events, ev)
		if ev == state {
			return events
		}
	}
	t.Fatalf("shark never reached %v, saw %v", state, events)
	return nil
}

func TestSharkCycleOrder(t *testing.T) {
	s := huntingSim(t)
	events := tickUntil(t, s, cfg.SharkAiming, 480, 440)
	want := []Event{cfg.SharkApproaching, cfg.SharkPoised, cfg.SharkAiming}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}

	a := s.Antagonist()
	if !a.Visible || !a.Applaud {
		t.Errorf("aiming shark = %+v", a)
	}
	if a.LastTransition != s.SessionTime() {
		t.Errorf("last transition %v, session time %v", a.LastTransition, s.SessionTime())
	}
}

func TestSharkDwell(t *testing.T) {
	s := huntingSim(t)
	// 5000 ms of dormancy: the transition fires on the first tick past it
	ticks := 0
	for {
		steady(s, 480, 440)
		ticks++
		if s.Tick(frame) == cfg.SharkApproaching {
			break
		}
		if ticks > 1000 {
			t.Fatal("shark never approached")
		}
	}
	if got := s.SessionTime(); got != 295*frame {
		t.Errorf("approached at %v ms, want %v", got, 295*frame)
	}
}

func TestSharkRisesWhilePoised(t *testing.T) {
	s := huntingSim(t)
	tickUntil(t, s, cfg.SharkPoised, 480, 440)
	if sink := s.Antagonist().Sink; sink != cfg.Shark.SinkDistance {
		t.Fatalf("poised shark starts %v px down", sink)
	}
	steady(s, 480, 440)
	s.Tick(frame)
	sink := s.Antagonist().Sink
	if sink >= cfg.Shark.SinkDistance || sink <= 0 {
		t.Errorf("shark should be rising, sink = %v", sink)
	}
}

func TestSharkHitsCatOnWire(t *testing.T) {
	s := huntingSim(t)
	tickUntil(t, s, cfg.SharkFiring, 480, 440)
	cues := s.DrainCues()
	if !hasCue(cues, cfg.CueLaser) || !hasCue(cues, cfg.CueCatShot) {
		t.Errorf("firing cues = %v", cues)
	}
	beam, ok := s.Beam()
	if !ok {
		t.Fatal("no beam while firing")
	}
	want := Rect{X: 150, Y: 540 - 155, W: 960, H: 10}
	if beam != want {
		t.Errorf("beam = %+v, want %+v", beam, want)
	}
	if !s.Antagonist().Lasered {
		t.Error("hit flag not set")
	}

	events := tickUntil(t, s, cfg.SharkDormant, 480, 440)
	if len(events) != 1 {
		t.Errorf("events after firing = %v, want only dormant", events)
	}
	cues = s.DrainCues()
	for _, c := range []cfg.CueID{cfg.CueSharkLeave, cfg.CueBoo, cfg.CueCrowdAngry, cfg.CueSharkFade} {
		if !hasCue(cues, c) {
			t.Errorf("missing cue %v in %v", c, cues)
		}
	}
	if hasCue(cues, cfg.CueCheer) {
		t.Error("cheered a hit")
	}
	if s.Player().Score != 0 || s.SharkActive() || !s.CrowdAngry() {
		t.Errorf("after the hit: score %d active %v angry %v", s.Player().Score, s.SharkActive(), s.CrowdAngry())
	}
	if _, ok := s.Beam(); ok {
		t.Error("beam should be gone")
	}
	if a := s.Antagonist(); a.Lasered || a.Visible {
		t.Errorf("shark after the hit = %+v", a)
	}
}

func TestSharkMissesAirborneCat(t *testing.T) {
	s := huntingSim(t)
	tickUntil(t, s, cfg.SharkAiming, 480, 440)
	tickUntil(t, s, cfg.SharkFiring, 480, 200)
	if s.Antagonist().Lasered {
		t.Fatal("cat in the air was hit")
	}
	s.DrainCues()

	tickUntil(t, s, cfg.SharkRetreating, 480, 200)
	cues := s.DrainCues()
	if !hasCue(cues, cfg.CueCheer) || hasCue(cues, cfg.CueBoo) {
		t.Errorf("leaving cues = %v", cues)
	}
	if _, ok := s.Beam(); ok {
		t.Error("beam should be gone")
	}

	tickUntil(t, s, cfg.SharkDormant, 480, 440)
	if s.Antagonist().Visible {
		t.Error("dormant shark should be hidden")
	}
	if !s.SharkActive() {
		t.Error("shark should keep hunting after a miss")
	}
}

func TestForcedReset(t *testing.T) {
	tests := []struct {
		name      string
		from      cfg.SharkStateID
		lasered   bool
		want      cfg.SharkStateID
		wantEvent Event
		wantBoo   bool
	}{
		{"dormant stays dormant", cfg.SharkDormant, false, cfg.SharkDormant, NoEvent, false},
		{"approaching hides", cfg.SharkApproaching, false, cfg.SharkDormant, cfg.SharkDormant, false},
		{"poised hides", cfg.SharkPoised, false, cfg.SharkDormant, cfg.SharkDormant, false},
		{"aiming leaves", cfg.SharkAiming, false, cfg.SharkRetreating, cfg.SharkRetreating, false},
		{"firing leaves", cfg.SharkFiring, false, cfg.SharkRetreating, cfg.SharkRetreating, false},
		{"firing after a hit boos", cfg.SharkFiring, true, cfg.SharkDormant, cfg.SharkDormant, true},
		{"leaving hides", cfg.SharkRetreating, false, cfg.SharkDormant, cfg.SharkDormant, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSim(t)
			shark := components.Shark.Get(s.shark)
			shark.State = tt.from
			shark.Applaud = true
			shark.Lasered = tt.lasered
			shark.LastTransition = 1234
			s.TakeEvent()
			s.DrainCues()

			s.ResetOnDeath()

			a := s.Antagonist()
			if a.State != tt.want {
				t.Errorf("state = %v, want %v", a.State, tt.want)
			}
			if a.LastTransition != 0 {
				t.Errorf("last transition = %v, want 0", a.LastTransition)
			}
			if got := s.TakeEvent(); got != tt.wantEvent {
				t.Errorf("event = %v, want %v", got, tt.wantEvent)
			}
			if s.TakeEvent() != NoEvent {
				t.Error("event should be consumed")
			}
			cues := s.DrainCues()
			if hasCue(cues, cfg.CueCheer) {
				t.Error("forced departure must not cheer")
			}
			if !hasCue(cues, cfg.CueSharkFade) {
				t.Error("expected the fade cue")
			}
			if got := hasCue(cues, cfg.CueBoo); got != tt.wantBoo {
				t.Errorf("boo = %v, want %v", got, tt.wantBoo)
			}
			if s.CrowdAngry() != tt.wantBoo {
				t.Errorf("crowd angry = %v, want %v", s.CrowdAngry(), tt.wantBoo)
			}
			if a.Lasered {
				t.Error("hit flag should be spent by the departure")
			}
			if (tt.from == cfg.SharkAiming || tt.from == cfg.SharkFiring) && a.Applaud {
				t.Error("forced departure kept the applause")
			}
		})
	}
}

func TestHitSurvivesDeathWhileFiring(t *testing.T) {
	s := huntingSim(t)
	tickUntil(t, s, cfg.SharkFiring, 480, cfg.WireHeight())
	if !s.Antagonist().Lasered {
		t.Fatal("cat on the wire should be hit")
	}
	s.DrainCues()

	// Drop into the pit before the shark leaves on its own.
	place(s, 100, float64(cfg.C.Height)+10, 0, 0, 0, 0)
	s.Tick(frame)

	cues := s.DrainCues()
	for _, want := range []cfg.CueID{cfg.CueSplash, cfg.CueSharkLeave, cfg.CueBoo, cfg.CueCrowdAngry} {
		if !hasCue(cues, want) {
			t.Errorf("missing %v in %v", want, cues)
		}
	}
	if !s.CrowdAngry() {
		t.Error("crowd should be angry after the hit")
	}
	if a := s.Antagonist(); a.Lasered || a.State != cfg.SharkDormant {
		t.Errorf("shark after death = %+v", a)
	}
}

func TestSharkIdleWhileDisabled(t *testing.T) {
	s := newSim(t)
	clearSky(s)
	for i := 0; i < 400; i++ {
		steady(s, 480, 440)
		if ev := s.Tick(frame); ev != NoEvent {
			t.Fatalf("disabled shark moved to %v", ev)
		}
	}
}

func TestRetreatFinishesAfterDeath(t *testing.T) {
	s := huntingSim(t)
	tickUntil(t, s, cfg.SharkAiming, 480, 440)
	s.ResetOnDeath()
	if s.SharkActive() {
		t.Fatal("death should switch the shark off")
	}
	events := tickUntil(t, s, cfg.SharkDormant, 480, 440)
	if len(events) != 1 {
		t.Errorf("events = %v, want a single dormant", events)
	}
}
