package components

import (
	cfg "github.com/automoto/stuntcat/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object used for broadphase collision.
// The collision space is padded by cfg.Collision.Margin on every side, so
// world coordinates are shifted before they reach resolv.
type ObjectData struct {
	*resolv.Object
}

// MoveCenter places the object so that its centre sits at the world position x, y.
func (o *ObjectData) MoveCenter(x, y float64) {
	margin := float64(cfg.Collision.Margin)
	o.X = x + margin - o.W/2
	o.Y = y + margin - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
