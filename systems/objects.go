package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
)

const tickDelta = 1.0 / 60.0

// UpdateObjects drives platform motion (tween bobbing, cloud drift) and
// refreshes every collision object's cell registration after the frame's
// position changes.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}

		if e.HasComponent(components.Tween) {
			tween := components.Tween.Get(e)
			if tween.Seq != nil {
				y, _, seqDone := tween.Seq.Update(tickDelta)
				obj.Y = float64(y)
				if seqDone {
					tween.Seq.Reset()
				}
			}
		}

		if e.HasComponent(components.Surface) {
			surface := components.Surface.Get(e)
			if surface.MoveSpeed != 0 {
				obj.X += surface.MoveSpeed
				if obj.X < surface.MinX || obj.X > surface.MaxX {
					surface.MoveSpeed = -surface.MoveSpeed
				}
			}
		}

		obj.Update()
	})
}
