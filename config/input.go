package config

// KeyID is a device-independent keyboard key. Hosts map their own key codes onto it.
type KeyID int

const (
	KeyNone KeyID = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyA
	KeyD
	KeyW
	KeyS
	KeyEscape
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionTiltLeft
	ActionTiltRight
	ActionJump
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and raw joystick buttons bound to an action
type InputBinding struct {
	Keys    []KeyID
	Buttons []int
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Raw joystick axes
	MoveAxis      int
	TiltLeftAxis  int
	TiltRightAxis int
	// Axis values beyond this count as pressed (0.0 to 1.0)
	AxisSense float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		MoveAxis:      0,
		TiltLeftAxis:  2,
		TiltRightAxis: 5,
		AxisSense:     0.5,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []KeyID{KeyLeft},
			},
			ActionMoveRight: {
				Keys: []KeyID{KeyRight},
			},
			ActionTiltLeft: {
				Keys: []KeyID{KeyA},
				// Left shoulder
				Buttons: []int{4},
			},
			ActionTiltRight: {
				Keys: []KeyID{KeyD},
				// Right shoulder
				Buttons: []int{5},
			},
			ActionJump: {
				Keys: []KeyID{KeyUp, KeySpace},
				// A / B face buttons
				Buttons: []int{0, 1},
			},
		},
	}
}

var keyNames = map[KeyID]string{
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeySpace:  "space",
	KeyA:      "a",
	KeyD:      "d",
	KeyW:      "w",
	KeyS:      "s",
	KeyEscape: "escape",
}

func (k KeyID) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}
