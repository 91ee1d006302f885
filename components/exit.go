package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/level"
)

type ExitData struct {
	Kind level.ExitKind
}

var Exit = donburi.NewComponentType[ExitData]()
