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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.SmallHeight)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	GetSpace(ecs).Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Tier:       cfg.PowerSmall,
		Facing:     1,
		PipeTarget: -1,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState: cfg.StateIdle,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Player.Gravity,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives: cfg.Player.StartingLives,
	})

	return player
}

// RespawnPlayer moves an existing player back to the spawn point with reset
// motion state. Tier, lives and score survive the respawn.
func RespawnPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	obj := components.Object.Get(e)

	obj.X = cfg.Player.SpawnX
	obj.Y = cfg.Player.SpawnY
	obj.Update()

	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil
	physics.InWater = false
	physics.InQuicksand = false

	player.InvulnFrames = 0
	player.StarFrames = 0
	player.ShootTimer = 0
	player.PMeter = 0
	player.Ducking = false
	player.JumpHeld = false
	player.PipeTimer = 0
	player.PipeTarget = -1

	state.CurrentState = cfg.StateIdle
	state.PreviousState = cfg.StateIdle
	state.StateTimer = 0
}
