package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/level"
)

type EnemyData struct {
	Kind      level.EnemyKind
	SpeedX    float64
	SpeedY    float64
	PatrolMin float64
	PatrolMax float64
	Scale     float64
	BaseY     float64 // rest height for hoppers and piranha plants
	PipeIndex int     // piranha plants only, -1 otherwise
	Timer     int     // kind-specific cycle timer
	Emerged   bool    // piranha plant above the pipe lip
}

var Enemy = donburi.NewComponentType[EnemyData]()
