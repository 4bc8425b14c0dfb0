package config

import (
	"fmt"
	"math"
)

// Config holds the stage dimensions shared by every system.
type Config struct {
	Width  int
	Height int
}

// CatConfig contains all player-related configuration values
type CatConfig struct {
	// Movement
	SpeedMax     float64 // horizontal speed cap
	FallSpeedMax float64 // downward speed cap
	RollSpeed    float64 // horizontal push per unit of sin(angle)
	Acceleration float64 // horizontal push while a move key is held
	LeanPerMove  float64 // angle change while a move key is held
	Gravity      float64

	// Balance
	AngularDamping float64 // angular velocity multiplier per scaled frame
	TipForce       float64 // angular push towards the current lean
	TiltMin        float64 // random tilt impulse range, radians/frame
	TiltMax        float64

	// Jumping
	JumpImpulse    float64 // instantaneous upward speed on take-off
	JumpSpeed      float64 // extra upward force per ms, decays to zero
	MaxJumpingTime float64 // ms

	// Geometry
	WireOffset     float64 // wire height measured up from the bottom of the stage
	HeadDistance   float64 // distance from wheel to head
	WireStartRatio float64 // wire begins at this fraction of the stage width
	FallZone       float64 // falls over only when lower than Height-FallZone

	// Right edge bump
	BumpZoneRatio   float64
	BumpZoneHeight  float64
	BumpSpeedX      float64
	BumpSpeedY      float64
	BumpSpin        float64
	EdgeLeanDamping float64

	// Pedalling animation
	PedalFrames  int
	PedalFrameMs float64
}

// ProjectileConfig contains configuration for fish and not-fish
type ProjectileConfig struct {
	Gravity       float64
	SpeedXMin     int
	SpeedXMax     int
	SpeedYMin     int
	SpeedYMax     int
	CatchRadius   float64 // fish within this distance of the head are eaten
	DeflectRadius float64 // not-fish within this distance of the head bounce off
	DeflectMin    float64 // angular impulse range on impact
	DeflectMax    float64

	// First fish of a session
	OpeningSpeedX float64
	OpeningSpeedY float64
}

// SharkConfig contains the laser shark timings and geometry
type SharkConfig struct {
	Dwell        [SharkStateCount]float64 // ms spent in each state
	HitMargin    float64                  // cat counts as hit when lower than WireHeight-HitMargin
	HiddenX      float64
	VisibleX     float64
	SinkDistance float64 // px below resting position while hidden
	LaserX       float64
	LaserOffset  float64 // laser y measured up from the bottom of the stage
	LaserHeight  float64
}

// DifficultyStep maps a score threshold to the number of concurrent not-fish.
// A step applies when the score is strictly greater than After.
type DifficultyStep struct {
	After   int
	NotFish int
}

// DifficultyConfig contains score based escalation
type DifficultyConfig struct {
	Steps            []DifficultyStep
	OpenEndedScore   int // from this score on, count = (score-OpenEndedBase)/OpenEndedDivisor
	OpenEndedBase    int
	OpenEndedDivisor int
	SharkScore       int // shark is enabled from this score on
}

// CrowdConfig contains the angry crowd wave after the cat gets lasered
type CrowdConfig struct {
	MadDuration      float64 // ms
	ThrowIntervalMin int     // ms
	ThrowIntervalMax int     // ms
}

// MeowConfig controls idle meowing
type MeowConfig struct {
	IntervalMin float64 // ms
	IntervalMax float64 // ms
}

// CollisionConfig controls the resolv broadphase space
type CollisionConfig struct {
	CellSize int
	Margin   int // padding around the stage so objects above the screen still collide
}

// TimingConfig controls time scaling
type TimingConfig struct {
	FrameMs float64 // ms per reference frame; dt = timeDelta/FrameMs
}

// DebugConfig holds debug toggles (defaults, can be overridden by CLI flags)
type DebugConfig struct {
	Enabled bool
	Seed    int64
}

var (
	C          *Config
	Cat        CatConfig
	Projectile ProjectileConfig
	Shark      SharkConfig
	Difficulty DifficultyConfig
	Crowd      CrowdConfig
	Meow       MeowConfig
	Collision  CollisionConfig
	Timing     TimingConfig
	Debug      DebugConfig
)

// WireHeight returns the y coordinate of the wire.
func WireHeight() float64 {
	return float64(C.Height) - Cat.WireOffset
}

// Validate checks the constants the simulation divides by or clamps against.
func Validate() error {
	if C == nil || C.Width <= 0 || C.Height <= 0 {
		return fmt.Errorf("stage size must be positive")
	}
	if Cat.SpeedMax <= 0 || Cat.FallSpeedMax <= 0 {
		return fmt.Errorf("cat speed caps must be positive (got %v, %v)", Cat.SpeedMax, Cat.FallSpeedMax)
	}
	if Cat.MaxJumpingTime <= 0 {
		return fmt.Errorf("max jumping time must be positive")
	}
	if Timing.FrameMs <= 0 {
		return fmt.Errorf("frame duration must be positive")
	}
	if Difficulty.OpenEndedDivisor <= 0 {
		return fmt.Errorf("difficulty divisor must be positive")
	}
	if Projectile.SpeedXMin > Projectile.SpeedXMax || Projectile.SpeedYMin > Projectile.SpeedYMax {
		return fmt.Errorf("projectile speed ranges are inverted")
	}
	if Crowd.ThrowIntervalMin > Crowd.ThrowIntervalMax {
		return fmt.Errorf("crowd throw interval is inverted")
	}
	if Cat.PedalFrames < 2 || Cat.PedalFrameMs <= 0 {
		return fmt.Errorf("pedal animation needs at least two frames")
	}
	if Collision.CellSize <= 0 {
		return fmt.Errorf("collision cell size must be positive")
	}
	return nil
}

func init() {
	Defaults()
}

// Defaults restores every tuning value to the shipped defaults.
func Defaults() {
	C = &Config{
		Width:  1920 / 2,
		Height: 1080 / 2,
	}

	// Cat Config
	Cat = CatConfig{
		SpeedMax:     8,
		FallSpeedMax: 16,
		RollSpeed:    0.01,
		Acceleration: 0.3,
		LeanPerMove:  0.003,
		Gravity:      1,

		AngularDamping: 0.9,
		TipForce:       0.0002,
		TiltMin:        0.01 * math.Pi,
		TiltMax:        0.03 * math.Pi,

		JumpImpulse:    12.5,
		JumpSpeed:      0.07,
		MaxJumpingTime: 600,

		WireOffset:     100,
		HeadDistance:   100,
		WireStartRatio: 0.25,
		FallZone:       160,

		BumpZoneRatio:   0.98,
		BumpZoneHeight:  30,
		BumpSpeedX:      -5,
		BumpSpeedY:      -20,
		BumpSpin:        0.01,
		EdgeLeanDamping: 0.7,

		PedalFrames:  4,
		PedalFrameMs: 750,
	}

	// Projectile Config
	Projectile = ProjectileConfig{
		Gravity:       0.2,
		SpeedXMin:     3,
		SpeedXMax:     7,
		SpeedYMin:     5,
		SpeedYMax:     12,
		CatchRadius:   100,
		DeflectRadius: 50,
		DeflectMin:    0.08,
		DeflectMax:    0.15,
		OpeningSpeedX: 10,
		OpeningSpeedY: -5,
	}

	// Shark Config
	Shark = SharkConfig{
		Dwell: [SharkStateCount]float64{
			SharkDormant:     5000,
			SharkApproaching: 1000,
			SharkPoised:      1000,
			SharkAiming:      500,
			SharkFiring:      200,
			SharkRetreating:  1000,
		},
		HitMargin:    3,
		HiddenX:      -1000,
		VisibleX:     -30,
		SinkDistance: 200, // 0.2 px/ms over the 1000 ms rise
		LaserX:       150,
		LaserOffset:  155,
		LaserHeight:  10,
	}

	// Difficulty Config
	// The dip back to one not-fish after 19 is how the game has always played.
	Difficulty = DifficultyConfig{
		Steps: []DifficultyStep{
			{After: 3, NotFish: 1},
			{After: 9, NotFish: 1},
			{After: 15, NotFish: 2},
			{After: 19, NotFish: 1},
			{After: 25, NotFish: 2},
			{After: 35, NotFish: 3},
		},
		OpenEndedScore:   50,
		OpenEndedBase:    20,
		OpenEndedDivisor: 10,
		SharkScore:       10,
	}

	Crowd = CrowdConfig{
		MadDuration:      3000,
		ThrowIntervalMin: 100,
		ThrowIntervalMax: 400,
	}

	Meow = MeowConfig{
		IntervalMin: 5000,
		IntervalMax: 10000,
	}

	Collision = CollisionConfig{
		CellSize: 32,
		Margin:   1024,
	}

	Timing = TimingConfig{
		FrameMs: 17,
	}

	Debug = DebugConfig{
		Enabled: false,
	}
}
