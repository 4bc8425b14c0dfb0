package factory

import (
	"math/rand"

	"github.com/automoto/stuntcat/archetypes"
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/automoto/stuntcat/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateSession spawns the singleton holding the clock, rng and pending intents.
func CreateSession(w donburi.World, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	r := rand.New(rand.NewSource(seed))
	components.Session.SetValue(session, components.SessionData{
		Rand:   r,
		NextID: 1,
	})
	components.Meow.SetValue(session, components.MeowData{
		Next: gamemath.Uniform(r, cfg.Meow.IntervalMin, cfg.Meow.IntervalMax),
	})
	return session
}
