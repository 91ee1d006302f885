package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/archetypes"
	"github.com/lunarbyte/hopper/components"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.SetValue(space, components.SpaceData{Space: spaceData})
	return space
}

// GetSpace returns the singleton collision space. It panics if no space has
// been created; every scene builds one before spawning anything.
func GetSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: no collision space in world")
	}
	return components.Space.Get(entry).Space
}
