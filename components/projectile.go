package components

import "github.com/yohamta/donburi"

// ProjectileKind separates things to catch from things to dodge.
type ProjectileKind int

const (
	Catchable ProjectileKind = iota
	Hostile
)

func (k ProjectileKind) String() string {
	if k == Hostile {
		return "hostile"
	}
	return "catchable"
}

type ProjectileData struct {
	ID   uint64 // stable for the projectile's lifetime, never reused in a session
	Kind ProjectileKind
}

var Projectile = donburi.NewComponentType[ProjectileData]()
