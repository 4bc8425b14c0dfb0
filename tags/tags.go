package tags

import "github.com/yohamta/donburi"

var (
	Cat     = donburi.NewTag().SetName("Cat")
	Fish    = donburi.NewTag().SetName("Fish")
	NotFish = donburi.NewTag().SetName("NotFish")
	Shark   = donburi.NewTag().SetName("Shark")
	Laser   = donburi.NewTag().SetName("Laser")
	Session = donburi.NewTag().SetName("Session")
)

// Resolv tags for collision
const (
	ResolvHead    = "head"
	ResolvFish    = "fish"
	ResolvNotFish = "notfish"
)
