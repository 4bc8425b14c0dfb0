package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func sessionEntry(w donburi.World) *donburi.Entry {
	return tags.Session.MustFirst(w)
}

func catEntry(w donburi.World) *donburi.Entry {
	return tags.Cat.MustFirst(w)
}

func sharkEntry(w donburi.World) *donburi.Entry {
	return tags.Shark.MustFirst(w)
}

func spaceOf(w donburi.World) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(w))
}

// EmitCue queues a cue for the presentation layer.
func EmitCue(w donburi.World, cue cfg.CueID) {
	cues := components.Cues.Get(sessionEntry(w))
	cues.Pending = append(cues.Pending, cue)
}

// DrainCues returns the queued cues in emission order and empties the queue.
func DrainCues(w donburi.World) []cfg.CueID {
	cues := components.Cues.Get(sessionEntry(w))
	out := cues.Pending
	cues.Pending = nil
	return out
}

// BeginTick records the length of the tick and clears the per-tick flags.
func BeginTick(w donburi.World, ms float64) {
	session := components.Session.Get(sessionEntry(w))
	session.Delta = ms
	session.DtScaled = ms / cfg.Timing.FrameMs
	session.Died = false
}

// UpdateClock moves the session clock forward by the tick length.
func UpdateClock(w donburi.World) {
	session := components.Session.Get(sessionEntry(w))
	session.TotalTime += session.Delta
}

// System is one step of a tick.
type System func(w donburi.World)

// WithAliveCheck skips the system for the rest of a tick in which the cat died.
func WithAliveCheck(system System) System {
	return func(w donburi.World) {
		if components.Session.Get(sessionEntry(w)).Died {
			return
		}
		system(w)
	}
}
