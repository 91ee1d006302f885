package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/level"
)

// BlockData tracks a strikeable block. Struck is one-way; a struck block
// stays inert until the level is rebuilt.
type BlockData struct {
	Kind     level.BlockKind
	Contains level.Reward
	Struck   bool
}

var Block = donburi.NewComponentType[BlockData]()
