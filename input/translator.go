// Package input turns raw key, button and axis events into game intents.
package input

import (
	"strconv"

	cfg "github.com/automoto/stuntcat/config"
)

// EventKind is the type of a raw device event.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	ButtonDown
	ButtonUp
	AxisMotion
)

// Event is a raw device event as delivered by a host.
type Event struct {
	Kind   EventKind
	Key    cfg.KeyID
	Button int
	Axis   int
	Value  float64
}

// IntentSink receives translated intents. *simulation.Simulation implements it.
type IntentSink interface {
	SetMoveLeft(on bool)
	SetMoveRight(on bool)
	TiltLeft()
	TiltRight()
	StartJump(source string)
	StopJump(source string)
}

// Translator maps events to intents using cfg.Input. It remembers the last
// value of each tilt axis so a trigger only tilts once per pull.
type Translator struct {
	sink          IntentSink
	lastTiltLeft  float64
	lastTiltRight float64
}

func NewTranslator(sink IntentSink) *Translator {
	return &Translator{sink: sink}
}

// ButtonSource is the jump source id of a joystick button.
func ButtonSource(button int) string {
	return "JOY" + strconv.Itoa(button)
}

// KeySource is the jump source id of a key.
func KeySource(key cfg.KeyID) string {
	return key.String()
}

func (t *Translator) Handle(ev Event) {
	switch ev.Kind {
	case KeyDown:
		t.keyDown(ev.Key)
	case KeyUp:
		t.keyUp(ev.Key)
	case ButtonDown:
		t.buttonDown(ev.Button)
	case ButtonUp:
		t.sink.StopJump(ButtonSource(ev.Button))
	case AxisMotion:
		t.axis(ev.Axis, ev.Value)
	}
}

func (t *Translator) keyDown(key cfg.KeyID) {
	switch {
	case keyBound(cfg.ActionMoveRight, key):
		t.sink.SetMoveRight(true)
	case keyBound(cfg.ActionMoveLeft, key):
		t.sink.SetMoveLeft(true)
	case keyBound(cfg.ActionTiltLeft, key):
		t.sink.TiltLeft()
	case keyBound(cfg.ActionTiltRight, key):
		t.sink.TiltRight()
	case keyBound(cfg.ActionJump, key):
		t.sink.StartJump(KeySource(key))
	}
}

func (t *Translator) keyUp(key cfg.KeyID) {
	switch {
	case keyBound(cfg.ActionJump, key):
		t.sink.StopJump(KeySource(key))
	case keyBound(cfg.ActionMoveRight, key):
		t.sink.SetMoveRight(false)
	case keyBound(cfg.ActionMoveLeft, key):
		t.sink.SetMoveLeft(false)
	}
}

func (t *Translator) buttonDown(button int) {
	if buttonBound(cfg.ActionJump, button) {
		t.sink.StartJump(ButtonSource(button))
	}
	if buttonBound(cfg.ActionTiltLeft, button) {
		t.sink.TiltLeft()
	}
	if buttonBound(cfg.ActionTiltRight, button) {
		t.sink.TiltRight()
	}
}

func (t *Translator) axis(axis int, value float64) {
	sense := cfg.Input.AxisSense
	if axis == cfg.Input.MoveAxis {
		switch {
		case value >= sense:
			t.sink.SetMoveRight(true)
			t.sink.SetMoveLeft(false)
		case value <= -sense:
			t.sink.SetMoveRight(false)
			t.sink.SetMoveLeft(true)
		default:
			t.sink.SetMoveRight(false)
			t.sink.SetMoveLeft(false)
		}
	}
	if axis == cfg.Input.TiltRightAxis {
		if t.lastTiltRight < sense && sense < value {
			t.sink.TiltRight()
		}
		t.lastTiltRight = value
	}
	if axis == cfg.Input.TiltLeftAxis {
		if t.lastTiltLeft < sense && sense < value {
			t.sink.TiltLeft()
		}
		t.lastTiltLeft = value
	}
}

func keyBound(action cfg.ActionID, key cfg.KeyID) bool {
	for _, k := range cfg.Input.Bindings[action].Keys {
		if k == key {
			return true
		}
	}
	return false
}

func buttonBound(action cfg.ActionID, button int) bool {
	for _, b := range cfg.Input.Bindings[action].Buttons {
		if b == button {
			return true
		}
	}
	return false
}
