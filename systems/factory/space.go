package factory

import (
	"github.com/automoto/stuntcat/archetypes"
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the collision space covering the stage plus a margin on
// every side, so objects thrown above the screen still collide.
func CreateSpace(w donburi.World, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	margin := cfg.Collision.Margin
	cell := cfg.Collision.CellSize
	spaceData := resolv.NewSpace(width+2*margin, height+2*margin, cell, cell)
	components.Space.Set(space, spaceData)
	return space
}
