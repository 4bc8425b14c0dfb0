package systems

import (
	"github.com/automoto/stuntcat/components"
	cfg "github.com/automoto/stuntcat/config"
	"github.com/yohamta/donburi"
)

// NotFishFor returns how many not-fish should be in the air at a score.
func NotFishFor(score int) int {
	if score >= cfg.Difficulty.OpenEndedScore {
		return (score - cfg.Difficulty.OpenEndedBase) / cfg.Difficulty.OpenEndedDivisor
	}
	n := 0
	for _, step := range cfg.Difficulty.Steps {
		if score > step.After {
			n = step.NotFish
		}
	}
	return n
}

// SharkEnabledFor reports whether the shark hunts at a score.
func SharkEnabledFor(score int) bool {
	return score >= cfg.Difficulty.SharkScore
}

// UpdateDifficulty recomputes the difficulty from the score. Reaching the
// shark score switches the shark on; only a death switches it off again.
func UpdateDifficulty(w donburi.World) {
	entry := sessionEntry(w)
	score := components.Player.Get(catEntry(w)).Score

	difficulty := components.Difficulty.Get(entry)
	difficulty.NotFish = NotFishFor(score)
	difficulty.SharkEnabled = SharkEnabledFor(score)

	if difficulty.SharkEnabled {
		components.Session.Get(entry).SharkActive = true
	}
}
