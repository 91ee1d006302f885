package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/archetypes"
	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/tags"
)

func CreateFireball(ecs *ecs.ECS, x, y, facing float64) *donburi.Entry {
	fireball := archetypes.Fireball.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Fireball.Size, cfg.Fireball.Size)
	obj.AddTags(tags.ResolvFireball)
	obj.Data = fireball
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(fireball, components.ObjectData{Object: obj})

	components.Fireball.SetValue(fireball, components.FireballData{
		SpeedX: facing * cfg.Fireball.Speed,
		SpeedY: cfg.Fireball.Bounce,
		TTL:    cfg.Fireball.TTL,
	})

	return fireball
}
