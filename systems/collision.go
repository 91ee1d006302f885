package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/events"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/tags"
)

// pitMargin is how far below the screen the character may fall before the
// fall counts as a death.
const pitMargin = 100

// blockBounceSpeed is the small downward velocity imparted when the head
// strikes a block.
const blockBounceSpeed = 1.0

// UpdateCollisions moves the character by its current speeds and resolves
// every contact class in fixed order: terrain, blocks, enemies, then the
// overlap triggers (pipes, hazard areas, exit, water, pits). Later classes
// re-read state set by earlier ones, so the order is load-bearing.
func UpdateCollisions(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Layout == nil {
		return
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	state := components.State.Get(playerEntry)
	if state.CurrentState == cfg.StateDead || player.PipeTimer > 0 {
		return
	}

	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	resolveHorizontal(physics, obj.Object)
	resolveVertical(ecs, playerEntry, physics, obj.Object)
	obj.Update()

	resolveEnemyContacts(ecs, playerEntry, player, physics, obj.Object)
	resolvePipeEntry(ecs, playerEntry, player, physics, obj.Object)
	resolveExit(ecs, levelData, obj.Object)
	updateFluidState(physics, levelData.Layout, obj.Object)
	resolveQuicksand(physics, obj.Object)

	if levelData.Layout.LavaLine > 0 && obj.Bottom() > levelData.Layout.LavaLine {
		KillPlayer(ecs, playerEntry)
		return
	}
	if obj.Y > float64(cfg.Screen.Height)+pitMargin {
		KillPlayer(ecs, playerEntry)
	}
}

// resolveHorizontal moves on the X axis, snapping against anything solid.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid, tags.ResolvPipe)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.Objects; len(solids) > 0 {
		// Side collision: snap flush to the obstacle edge and stop.
		blocking := false
		for _, solid := range solids {
			if object.Bottom() > solid.Y && object.Y < solid.Y+solid.H {
				blocking = true
				dx = check.ContactWithObject(solid).X()
				break
			}
		}
		if blocking {
			physics.SpeedX = 0
		}
	}
	object.X += dx
}

// resolveVertical moves on the Y axis. Falling lands on solids and one-way
// platforms; rising strikes blocks and bumps solid undersides.
func resolveVertical(ecs *ecs.ECS, playerEntry *donburi.Entry, physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	physics.GroundFriction = 0
	// The terminal-velocity clamp binds falling only; jump impulses may
	// exceed it upward.
	dy := math.Min(physics.SpeedY, cfg.Player.MaxFall)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance,
		tags.ResolvSolid, tags.ResolvBlock, tags.ResolvPipe, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		dy = resolveUpward(ecs, playerEntry, physics, object, check)
	} else {
		dy = resolveDownward(physics, object, check, dy)
	}
	object.Y += dy
}

func resolveUpward(ecs *ecs.ECS, playerEntry *donburi.Entry, physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision) float64 {
	// Blocks take priority over plain solids so a strike registers even
	// when a neighboring solid shares the cell.
	if blocks := check.ObjectsByTags(tags.ResolvBlock); len(blocks) > 0 {
		dy := check.ContactWithObject(blocks[0]).Y()
		strikeBlock(ecs, playerEntry, blocks[0])
		// Bounce-back: the head strike converts rise into a slight drop.
		physics.SpeedY = blockBounceSpeed
		return dy
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPipe); len(solids) > 0 {
		physics.SpeedY = 0
		return check.ContactWithObject(solids[0]).Y()
	}
	return physics.SpeedY
}

func resolveDownward(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	// One-way platforms only catch when the feet were above the surface.
	if platforms := check.ObjectsByTags(tags.ResolvPlatform); len(platforms) > 0 {
		platform := platforms[0]
		if object.Bottom() < platform.Y+4 {
			land(physics, platform)
			return check.ContactWithObject(platform).Y()
		}
	}

	// Blocks count as ground only through their solid tag; an unrevealed
	// hidden block is block-tagged alone and lets the character fall through.
	if solids := check.ObjectsByTags(tags.ResolvSolid, tags.ResolvPipe); len(solids) > 0 {
		land(physics, solids[0])
		return check.ContactWithObject(solids[0]).Y()
	}
	return dy
}

// land sets ground contact and picks up the surface's friction override.
func land(physics *components.PhysicsData, surface *resolv.Object) {
	physics.OnGround = surface
	physics.SpeedY = 0
	if entry, ok := surface.Data.(*donburi.Entry); ok && entry.Valid() && entry.HasComponent(components.Surface) {
		physics.GroundFriction = components.Surface.Get(entry).Friction
	}
}

// strikeBlock marks a block struck and applies its reward. Struck blocks are
// inert; bricks shatter outright above the Small tier.
func strikeBlock(ecs *ecs.ECS, playerEntry *donburi.Entry, blockObj *resolv.Object) {
	entry, ok := blockObj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return
	}
	block := components.Block.Get(entry)
	if block.Struck {
		return
	}
	block.Struck = true

	// A revealed hidden block becomes regular solid terrain.
	if block.Kind == level.BlockHidden {
		blockObj.AddTags(tags.ResolvSolid)
	}

	x := blockObj.X + blockObj.W/2
	y := blockObj.Y
	player := components.Player.Get(playerEntry)

	broken := false
	switch block.Kind {
	case level.BlockBrick:
		events.PointsAwarded.Publish(ecs.World, events.PointsAwardedData{
			Amount: cfg.Score.BrickPoints, X: x, Y: y,
		})
		if player.Tier > cfg.PowerSmall {
			broken = true
			blockObj.Space.Remove(blockObj)
			ecs.World.Remove(entry.Entity())
		}
	default:
		ApplyReward(ecs, playerEntry, block.Contains, x, y)
	}

	events.BlockStruck.Publish(ecs.World, events.BlockStruckData{X: x, Y: y, Broken: broken})
}

// resolveEnemyContacts classifies every overlapping enemy into exactly one
// of: star kill, stomp, or contact damage.
func resolveEnemyContacts(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, object *resolv.Object) {
	check := object.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}

	for _, enemyObj := range check.ObjectsByTags(tags.ResolvEnemy) {
		entry, ok := enemyObj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		enemy := components.Enemy.Get(entry)
		if enemy.Kind == level.PiranhaPlant && !enemy.Emerged {
			continue
		}

		switch {
		case player.Starred():
			defeatEnemy(ecs, entry, enemyObj, false)
		case physics.SpeedY > 0 && object.Bottom() < enemyObj.Y+enemyObj.H/2:
			defeatEnemy(ecs, entry, enemyObj, true)
			physics.SpeedY = -cfg.Enemy.StompBounce
		default:
			DamagePlayer(ecs, playerEntry)
		}
	}
}

// defeatEnemy removes an enemy immediately and permanently for the level
// instance.
func defeatEnemy(ecs *ecs.ECS, entry *donburi.Entry, enemyObj *resolv.Object, stomped bool) {
	x := enemyObj.X + enemyObj.W/2
	y := enemyObj.Y + enemyObj.H/2
	enemyObj.Space.Remove(enemyObj)
	ecs.World.Remove(entry.Entity())

	events.EnemyDefeated.Publish(ecs.World, events.EnemyDefeatedData{X: x, Y: y, Stomped: stomped})
	events.PointsAwarded.Publish(ecs.World, events.PointsAwardedData{
		Amount: cfg.Score.StompPoints, X: x, Y: y,
	})
}

// resolvePipeEntry commits a pipe warp when the character ducks while
// standing on an enterable pipe's lip.
func resolvePipeEntry(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, object *resolv.Object) {
	if !player.Ducking || physics.OnGround == nil || !physics.OnGround.HasTags(tags.ResolvPipe) {
		return
	}
	entry, ok := physics.OnGround.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Pipe) {
		return
	}
	pipe := components.Pipe.Get(entry)
	if !pipe.Enterable && pipe.Connected < 0 {
		return
	}

	player.PipeTimer = 60
	player.PipeTarget = pipe.Connected
	components.State.Get(playerEntry).CurrentState = cfg.StatePipeWarping
	events.PipeEntered.Publish(ecs.World, events.PipeEnteredData{Destination: pipe.Destination})
}

func resolveExit(ecs *ecs.ECS, levelData *components.LevelData, object *resolv.Object) {
	if levelData.Cleared {
		return
	}
	if check := object.Check(0, 0, tags.ResolvExit); check == nil {
		return
	}
	levelData.Cleared = true
	events.LevelCompleted.Publish(ecs.World, events.LevelCompletedData{
		World: levelData.World,
		Level: levelData.Level,
	})
}

func updateFluidState(physics *components.PhysicsData, layout *level.Layout, object *resolv.Object) {
	inWater := layout.WaterLine > 0 && object.Y+object.H/2 > layout.WaterLine
	if inWater && !physics.InWater {
		// Entering water kills most momentum.
		physics.SpeedY = math.Min(physics.SpeedY, 2)
	}
	physics.InWater = inWater
	if inWater {
		object.X += layout.Current
	}
}

func resolveQuicksand(physics *components.PhysicsData, object *resolv.Object) {
	physics.InQuicksand = false
	hazards := object.Check(0, 0, tags.ResolvHazard)
	if hazards == nil {
		return
	}
	for _, hazardObj := range hazards.ObjectsByTags(tags.ResolvHazard) {
		entry, ok := hazardObj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if components.Hazard.Get(entry).Kind == level.HazardQuicksand {
			physics.InQuicksand = true
			object.Y += components.Hazard.Get(entry).SinkSpeed
			return
		}
	}
}
