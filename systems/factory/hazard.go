package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/archetypes"
	"github.com/lunarbyte/hopper/components"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/tags"
)

// hazardSize returns the collision box for a hazard kind. Area hazards use
// their generated rectangle; point hazards get a fixed box.
func hazardSize(h level.Hazard) (x, y, w, hgt float64) {
	switch h.Kind {
	case level.HazardQuicksand:
		return h.Area.X, h.Area.Y, h.Area.W, h.Area.H
	case level.HazardThwomp:
		return h.X - 24, h.Y, 48, 48
	case level.HazardAngrySun:
		return h.X, h.Y, 40, 40
	case level.HazardCannon:
		return h.X, h.Y, 30, 20
	default:
		return h.X, h.Y, 30, 30
	}
}

func CreateHazard(ecs *ecs.ECS, h level.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	x, y, w, hgt := hazardSize(h)
	obj := resolv.NewObject(x, y, w, hgt)
	obj.AddTags(tags.ResolvHazard)
	obj.Data = hazard
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	components.Hazard.SetValue(hazard, components.HazardData{
		Kind:            h.Kind,
		BaseX:           x,
		BaseY:           y,
		CenterX:         h.CenterX,
		CenterY:         h.CenterY,
		Radius:          h.Radius,
		Speed:           h.Speed,
		Timer:           h.Timer,
		FireRate:        h.FireRate,
		FallSpeed:       h.FallSpeed,
		TriggerDistance: h.TriggerDistance,
		Height:          h.Height,
		Area:            h.Area,
		SinkSpeed:       h.SinkSpeed,
		Length:          h.Length,
		Active:          true,
	})

	return hazard
}
