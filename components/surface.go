package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/level"
)

// SurfaceData carries a platform's surface behavior: an optional friction
// override (ice) and a horizontal drift speed (moving clouds).
type SurfaceData struct {
	Kind      level.SurfaceKind
	Friction  float64 // 0 = character default applies
	MoveSpeed float64
	MinX      float64 // drift bounds
	MaxX      float64
}

var Surface = donburi.NewComponentType[SurfaceData]()
