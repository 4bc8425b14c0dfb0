package components

import (
	cfg "github.com/automoto/stuntcat/config"
	"github.com/yohamta/donburi"
)

// CueData queues cues for the presentation layer (singleton component)
type CueData struct {
	Pending []cfg.CueID
}

var Cues = donburi.NewComponentType[CueData]()
