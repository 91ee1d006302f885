package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/archetypes"
	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/tags"
)

func CreateEnemy(ecs *ecs.ECS, e level.Enemy) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	scale := e.Scale
	if scale == 0 {
		scale = 1
	}
	w := cfg.Enemy.Width * scale
	h := cfg.Enemy.Height * scale

	obj := resolv.NewObject(e.X, e.Y, w, h)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:      e.Kind,
		SpeedX:    e.VX,
		SpeedY:    e.VY,
		PatrolMin: e.PatrolMin,
		PatrolMax: e.PatrolMax,
		Scale:     scale,
		BaseY:     e.Y,
		PipeIndex: e.PipeIndex,
		Timer:     e.EmergeTimer,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity: cfg.Enemy.Gravity,
	})

	return enemy
}
