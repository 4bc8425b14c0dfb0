package scenes

import (
	"errors"

	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/input"
	"github.com/automoto/stuntcat/simulation"
	"github.com/automoto/stuntcat/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrQuit is returned by Update when the player asks to leave.
var ErrQuit = errors.New("quit")

var keyMap = map[ebiten.Key]cfg.KeyID{
	ebiten.KeyArrowLeft:  cfg.KeyLeft,
	ebiten.KeyArrowRight: cfg.KeyRight,
	ebiten.KeyArrowUp:    cfg.KeyUp,
	ebiten.KeyArrowDown:  cfg.KeyDown,
	ebiten.KeySpace:      cfg.KeySpace,
	ebiten.KeyA:          cfg.KeyA,
	ebiten.KeyD:          cfg.KeyD,
	ebiten.KeyW:          cfg.KeyW,
	ebiten.KeyS:          cfg.KeyS,
	ebiten.KeyEscape:     cfg.KeyEscape,
}

// StageScene runs one play session: it polls devices, steps the simulation
// and plays its cues.
type StageScene struct {
	sim        *simulation.Simulation
	translator *input.Translator
	sound      *sound.Player

	gamepadIDs []ebiten.GamepadID
	axes       map[int]float64
}

func NewStageScene(seed int64) (*StageScene, error) {
	sim, err := simulation.New(seed)
	if err != nil {
		return nil, err
	}
	s := &StageScene{
		sim:        sim,
		translator: input.NewTranslator(sim),
		sound:      sound.NewPlayer(seed),
		axes:       map[int]float64{},
	}
	s.sound.Preload()
	s.sound.Start()
	return s, nil
}

func (s *StageScene) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	s.pollKeys()
	s.pollGamepad()

	ms := 1000 / float64(ebiten.TPS())
	s.sim.Tick(ms)
	s.sim.TakeEvent()

	s.sound.Play(s.sim.DrainCues())
	s.sound.Update(ms, s.sim.UnicycleLoudness())
	return nil
}

func (s *StageScene) pollKeys() {
	for key, id := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			s.translator.Handle(input.Event{Kind: input.KeyDown, Key: id})
		}
		if inpututil.IsKeyJustReleased(key) {
			s.translator.Handle(input.Event{Kind: input.KeyUp, Key: id})
		}
	}
}

// pollGamepad reads the first connected gamepad with its raw layout.
func (s *StageScene) pollGamepad() {
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	if len(s.gamepadIDs) == 0 {
		return
	}
	id := s.gamepadIDs[0]

	for b := 0; b < ebiten.GamepadButtonCount(id); b++ {
		button := ebiten.GamepadButton(b)
		if inpututil.IsGamepadButtonJustPressed(id, button) {
			s.translator.Handle(input.Event{Kind: input.ButtonDown, Button: b})
		}
		if inpututil.IsGamepadButtonJustReleased(id, button) {
			s.translator.Handle(input.Event{Kind: input.ButtonUp, Button: b})
		}
	}

	for a := 0; a < ebiten.GamepadAxisCount(id); a++ {
		v := ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(a))
		if last, ok := s.axes[a]; ok && last == v {
			continue
		}
		s.axes[a] = v
		s.translator.Handle(input.Event{Kind: input.AxisMotion, Axis: a, Value: v})
	}
}
