package archetypes

import (
	"github.com/automoto/stuntcat/components"
	"github.com/automoto/stuntcat/tags"
	"github.com/yohamta/donburi"
)

var (
	Cat = newArchetype(
		tags.Cat,
		components.Player,
		components.Motion,
		components.Balance,
		components.Jump,
		components.Pedal,
		components.Object,
	)
	Fish = newArchetype(
		tags.Fish,
		components.Projectile,
		components.Motion,
		components.Object,
	)
	NotFish = newArchetype(
		tags.NotFish,
		components.Projectile,
		components.Motion,
		components.Object,
	)
	Shark = newArchetype(
		tags.Shark,
		components.Shark,
	)
	Laser = newArchetype(
		tags.Laser,
		components.Laser,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Difficulty,
		components.Crowd,
		components.Meow,
		components.Intent,
		components.Cues,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
