package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/archetypes"
	"github.com/lunarbyte/hopper/components"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/tags"
)

// floatAmplitude is how far a floating platform bobs from its base height.
const floatAmplitude = 16

// BuildLevel turns a generated layout into live entities and collision
// objects. The layout itself stays attached to the Level component for the
// renderer; everything interactive becomes an entity here.
func BuildLevel(ecs *ecs.ECS, layout *level.Layout) {
	for i := range layout.Platforms {
		createPlatform(ecs, &layout.Platforms[i])
	}
	for i := range layout.Blocks {
		createBlock(ecs, &layout.Blocks[i])
	}
	for i, p := range layout.Pipes {
		createPipe(ecs, p, i)
	}
	for _, e := range layout.Enemies {
		CreateEnemy(ecs, e)
	}
	for _, h := range layout.Hazards {
		CreateHazard(ecs, h)
	}
	if layout.BossRoom != nil {
		createBossRoomWalls(ecs, layout.BossRoom)
	}
	createExit(ecs, layout.Exit)
}

func createPlatform(ecs *ecs.ECS, p *level.Platform) *donburi.Entry {
	if !p.Collidable {
		return nil
	}

	arch := archetypes.Platform
	resolvTag := tags.ResolvSolid
	if p.Floating || p.Kind == level.SurfaceCloud || p.Kind == level.SurfaceDonutLift {
		resolvTag = tags.ResolvPlatform // one-way, jump-through
	}
	if p.Floating {
		arch = archetypes.FloatingPlatform
	}

	platform := arch.Spawn(ecs)
	obj := resolv.NewObject(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
	obj.AddTags(resolvTag)
	obj.Data = platform
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	components.Surface.SetValue(platform, components.SurfaceData{
		Kind:      p.Kind,
		Friction:  p.Friction,
		MoveSpeed: p.MoveSpeed,
		MinX:      p.Rect.X - 100,
		MaxX:      p.Rect.X + 100,
	})

	if p.Floating {
		// Bob between the base height and a fixed offset above it, forever.
		tw := gween.NewSequence(
			gween.New(float32(p.Rect.Y), float32(p.Rect.Y-floatAmplitude), 2, ease.Linear),
			gween.New(float32(p.Rect.Y-floatAmplitude), float32(p.Rect.Y), 2, ease.Linear),
		)
		components.Tween.SetValue(platform, components.TweenData{
			Seq:   tw,
			BaseY: p.Rect.Y,
		})
	}
	return platform
}

func createBlock(ecs *ecs.ECS, b *level.Block) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)
	obj := resolv.NewObject(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H)
	// Hidden blocks only exist for upward strikes; everything else passes
	// through until they are revealed.
	if b.Kind == level.BlockHidden {
		obj.AddTags(tags.ResolvBlock)
	} else {
		obj.AddTags(tags.ResolvBlock, tags.ResolvSolid)
	}
	obj.Data = block
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(block, components.ObjectData{Object: obj})
	components.Block.SetValue(block, components.BlockData{
		Kind:     b.Kind,
		Contains: b.Contains,
	})
	return block
}

func createPipe(ecs *ecs.ECS, p level.Pipe, index int) *donburi.Entry {
	pipe := archetypes.Pipe.Spawn(ecs)
	obj := resolv.NewObject(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
	obj.AddTags(tags.ResolvPipe)
	obj.Data = pipe
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(pipe, components.ObjectData{Object: obj})
	components.Pipe.SetValue(pipe, components.PipeData{
		Enterable:   p.Enterable,
		Destination: p.Destination,
		Connected:   p.Connected,
		Index:       index,
	})
	return pipe
}

func createExit(ecs *ecs.ECS, e level.Exit) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)
	obj := resolv.NewObject(e.X, e.Y, 40, 200)
	obj.AddTags(tags.ResolvExit)
	obj.Data = exit
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(exit, components.ObjectData{Object: obj})
	components.Exit.SetValue(exit, components.ExitData{Kind: e.Kind})
	return exit
}

// createBossRoomWalls closes off the boss room with thin solid walls so the
// fight cannot be skipped by walking through.
func createBossRoomWalls(ecs *ecs.ECS, room *level.BossRoom) {
	walls := []level.Rect{
		{X: room.Rect.X - 10, Y: room.Rect.Y, W: 10, H: room.Rect.H},
		{X: room.Rect.Right(), Y: room.Rect.Y, W: 10, H: room.Rect.H},
	}
	for _, w := range walls {
		wall := archetypes.BossRoomWall.Spawn(ecs)
		obj := resolv.NewObject(w.X, w.Y, w.W, w.H)
		obj.AddTags(tags.ResolvSolid)
		obj.Data = wall
		GetSpace(ecs).Add(obj)
		components.Object.SetValue(wall, components.ObjectData{Object: obj})
	}
}

// ClearLevel removes every level-owned entity and its collision object.
// The player, camera, score and photon singletons survive.
func ClearLevel(ecs *ecs.ECS) {
	space := GetSpace(ecs)
	for _, tag := range []*donburi.ComponentType[donburi.Tag]{
		tags.Platform, tags.FloatingPlatform, tags.Block, tags.Enemy,
		tags.Hazard, tags.Pipe, tags.Fireball, tags.Exit, tags.BossRoomWall,
	} {
		var doomed []*donburi.Entry
		tag.Each(ecs.World, func(e *donburi.Entry) {
			doomed = append(doomed, e)
		})
		for _, e := range doomed {
			if e.HasComponent(components.Object) {
				if obj := components.Object.Get(e); obj.Object != nil {
					space.Remove(obj.Object)
				}
			}
			ecs.World.Remove(e.Entity())
		}
	}
}
