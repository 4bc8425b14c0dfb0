package simulation

import (
	"github.com/automoto/stuntcat/components"
	"github.com/automoto/stuntcat/input"
)

// The setters below queue intents for the next Tick. They satisfy
// input.IntentSink.

func (s *Simulation) intent() *components.IntentData {
	return components.Intent.Get(s.session)
}

func (s *Simulation) SetMoveLeft(on bool) {
	s.intent().MoveLeft = on
}

func (s *Simulation) SetMoveRight(on bool) {
	s.intent().MoveRight = on
}

func (s *Simulation) TiltLeft() {
	s.intent().TiltLeft++
}

func (s *Simulation) TiltRight() {
	s.intent().TiltRight++
}

// StartJump asks for a jump from the given source. The jump only happens if
// the cat is on the wire when the next tick starts.
func (s *Simulation) StartJump(source string) {
	intent := s.intent()
	intent.JumpKey = source
	intent.Jumps = append(intent.Jumps, components.JumpPress)
}

// StopJump ends the jump early, but only when source pressed it.
func (s *Simulation) StopJump(source string) {
	intent := s.intent()
	if source != intent.JumpKey {
		return
	}
	intent.Jumps = append(intent.Jumps, components.JumpRelease)
}

var _ input.IntentSink = (*Simulation)(nil)
