package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/level"
)

// ThwompPhase is the crusher's cycle position.
type ThwompPhase int

const (
	ThwompWaiting ThwompPhase = iota
	ThwompFalling
	ThwompResting
	ThwompRising
)

type HazardData struct {
	Kind             level.HazardKind
	BaseX, BaseY     float64 // spawn position, the rest point for cyclers
	CenterX, CenterY float64
	Radius           float64
	Angle            float64
	Speed            float64
	Phase            ThwompPhase
	Timer            int
	FireRate         int
	FallSpeed        float64
	TriggerDistance  float64
	Height           float64
	Area             level.Rect
	SinkSpeed        float64
	Length           int
	Active           bool // lasers and flame jets toggle, others stay on
}

var Hazard = donburi.NewComponentType[HazardData]()
