package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/level"
)

type LevelData struct {
	Layout        *level.Layout
	World         int
	Level         int
	TimeRemaining int // frames left on the level clock
	Cleared       bool
}

var Level = donburi.NewComponentType[LevelData]()
