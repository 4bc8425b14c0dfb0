package scenes

import (
	"fmt"
	"math"

	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (s *StageScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundColor)
	width := float32(cfg.C.Width)
	height := float32(cfg.C.Height)
	wire := float32(cfg.WireHeight())

	// pool below the start of the wire
	poolRight := float32(cfg.Cat.WireStartRatio) * width
	vector.DrawFilledRect(screen, 0, height-40, poolRight, 40, cfg.Render.PoolColor, false)
	vector.StrokeLine(screen, poolRight, wire, width, wire, 3, cfg.Render.WireColor, false)

	s.drawShark(screen)
	s.drawCat(screen)

	for _, p := range s.sim.Catchables() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), cfg.Render.ProjectileRadius, cfg.Render.FishColor, true)
	}
	for _, p := range s.sim.Hostiles() {
		r := cfg.Render.ProjectileRadius
		vector.DrawFilledRect(screen, float32(p.X)-r, float32(p.Y)-r, 2*r, 2*r, cfg.Render.NotFishColor, false)
	}

	if beam, ok := s.sim.Beam(); ok {
		vector.DrawFilledRect(screen, float32(beam.X), float32(beam.Y), float32(beam.W), float32(beam.H), cfg.Render.LaserColor, false)
	}

	score := fmt.Sprintf("%d", s.sim.Player().Score)
	text.Draw(screen, score, fonts.Score.Get(), cfg.Render.ScoreX, cfg.Render.ScoreY, cfg.Render.TextColor)

	if cfg.Debug.Enabled {
		s.drawDebug(screen)
	}
}

func (s *StageScene) drawCat(screen *ebiten.Image) {
	p := s.sim.Player()
	x, y := float32(p.X), float32(p.Y)
	hx, hy := float32(p.HeadX), float32(p.HeadY)

	vector.DrawFilledCircle(screen, x, y-cfg.Render.WheelRadius, cfg.Render.WheelRadius, cfg.Render.WheelColor, true)
	// pedal crank turns with the animation frame
	crank := float64(p.Frame) * math.Pi / 2
	cx := x + float32(math.Cos(crank))*cfg.Render.WheelRadius/2
	cy := y - cfg.Render.WheelRadius + float32(math.Sin(crank))*cfg.Render.WheelRadius/2
	vector.StrokeLine(screen, x, y-cfg.Render.WheelRadius, cx, cy, 3, cfg.Render.CatColor, true)
	vector.StrokeLine(screen, x, y-cfg.Render.WheelRadius, hx, hy, 8, cfg.Render.CatColor, true)
	vector.DrawFilledCircle(screen, hx, hy, cfg.Render.HeadRadius, cfg.Render.CatColor, true)
}

func (s *StageScene) drawShark(screen *ebiten.Image) {
	a := s.sim.Antagonist()
	if !a.Visible {
		return
	}
	top := float32(cfg.C.Height) - cfg.Render.SharkHeight + float32(a.Sink)
	vector.DrawFilledRect(screen, float32(a.X), top, cfg.Render.SharkWidth, cfg.Render.SharkHeight, cfg.Render.SharkColor, false)
}

func (s *StageScene) drawDebug(screen *ebiten.Image) {
	c := cfg.Render.DebugColor
	for _, box := range s.sim.CollisionBoxes() {
		vector.StrokeRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), 1, c, false)
	}
	a := s.sim.Antagonist()
	info := fmt.Sprintf("t=%.0f shark=%s notfish=%d angry=%v",
		s.sim.SessionTime(), a.State, s.sim.Difficulty().NotFish, s.sim.CrowdAngry())
	text.Draw(screen, info, fonts.Small.Get(), cfg.Render.ScoreX, cfg.Render.ScoreY+20, c)
}
