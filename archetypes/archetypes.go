package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/tags"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Surface,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Surface,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.State,
		components.Lives,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
	)
	Block = newArchetype(
		tags.Block,
		components.Block,
		components.Object,
	)
	Pipe = newArchetype(
		tags.Pipe,
		components.Pipe,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Fireball = newArchetype(
		tags.Fireball,
		components.Fireball,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Exit,
		components.Object,
	)
	BossRoomWall = newArchetype(
		tags.BossRoomWall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Score = newArchetype(
		components.Score,
	)
	Photon = newArchetype(
		components.Photon,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
