package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX         float64
	SpeedY         float64
	Gravity        float64
	GroundFriction float64 // friction of the surface currently stood on
	OnGround       *resolv.Object
	InWater        bool
	InQuicksand    bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
