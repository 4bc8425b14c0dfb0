package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/systems/factory"
	"github.com/automoto/stuntcat/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateShark runs the shark's attack cycle. It only ticks while the shark
// is enabled, or while it is leaving so it can finish its exit.
func UpdateShark(w donburi.World) {
	session := components.Session.Get(sessionEntry(w))
	entry := sharkEntry(w)
	shark := components.Shark.Get(entry)
	if !session.SharkActive && shark.State != cfg.SharkRetreating {
		return
	}

	if shark.Move != nil {
		sink, done := shark.Move.Update(float32(session.Delta))
		shark.Sink = float64(sink)
		if done {
			shark.Move = nil
		}
	}

	if session.TotalTime > shark.LastTransition+shark.State.DwellTime() {
		shark.LastTransition = session.TotalTime
		enterSharkState(w, shark.State.Next())
	}
}

// enterSharkState switches state and runs the entry effects of the new state.
func enterSharkState(w donburi.World, state cfg.SharkStateID) {
	shark := components.Shark.Get(sharkEntry(w))
	shark.State = state
	shark.Pending = state
	shark.Transitions++

	switch state {
	case cfg.SharkDormant:
		shark.X = cfg.Shark.HiddenX
		shark.Sink = cfg.Shark.SinkDistance
		shark.Move = nil
		EmitCue(w, cfg.CueSharkGone)
	case cfg.SharkApproaching:
		shark.Applaud = true
		EmitCue(w, cfg.CueMusicStop)
		EmitCue(w, cfg.CueSharkAppear)
	case cfg.SharkPoised:
		EmitCue(w, cfg.CueSharkPoise)
		shark.X = cfg.Shark.VisibleX
		shark.Sink = cfg.Shark.SinkDistance
		shark.Move = gween.New(float32(cfg.Shark.SinkDistance), 0, float32(cfg.SharkPoised.DwellTime()), ease.Linear)
	case cfg.SharkAiming:
	case cfg.SharkFiring:
		fireLaser(w)
	case cfg.SharkRetreating:
		leave(w)
	}
}

func fireLaser(w donburi.World) {
	clearLaser(w)
	factory.CreateLaser(w)
	EmitCue(w, cfg.CueLaser)

	shark := components.Shark.Get(sharkEntry(w))
	y := components.Motion.Get(catEntry(w)).Position.Y
	shark.Lasered = y > cfg.WireHeight()-cfg.Shark.HitMargin
	if shark.Lasered {
		EmitCue(w, cfg.CueCatShot)
	}
}

func leave(w donburi.World) {
	shark := components.Shark.Get(sharkEntry(w))
	EmitCue(w, cfg.CueSharkLeave)
	shark.Move = gween.New(float32(shark.Sink), float32(cfg.Shark.SinkDistance), float32(cfg.SharkRetreating.DwellTime()), ease.Linear)

	if shark.Lasered {
		EmitCue(w, cfg.CueBoo)
		shark.Lasered = false
		ResetOnDeath(w)
		AnnoyCrowd(w)
	} else if shark.Applaud {
		EmitCue(w, cfg.CueCheer)
	}
	clearLaser(w)
}

func clearLaser(w donburi.World) {
	if e, ok := tags.Laser.First(w); ok {
		w.Remove(e.Entity())
	}
}

// forceSharkAway sends the shark off after a death. A shark that is about to
// shoot leaves without applause, anything else goes straight back to dormant.
// A hit from this cycle still counts, so the crowd boos on the way out.
func forceSharkAway(w donburi.World) {
	shark := components.Shark.Get(sharkEntry(w))
	prev := shark.State
	shark.LastTransition = 0

	switch prev {
	case cfg.SharkAiming, cfg.SharkFiring:
		shark.Applaud = false
		enterSharkState(w, cfg.SharkRetreating)
	default:
		if prev == cfg.SharkDormant {
			return
		}
		enterSharkState(w, cfg.SharkDormant)
	}
}
