package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/events"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/systems/factory"
)

// UpdatePlayer integrates input and physics constants into the character's
// velocity and state. Movement itself happens in UpdateCollisions, which
// consumes the speeds set here. With no level loaded this is a no-op.
func UpdatePlayer(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok || components.Level.Get(levelEntry).Layout == nil {
		return
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	input := getOrCreateInput(ecs)

	tickTimers(player)

	if state.CurrentState == cfg.StateDead {
		return
	}
	if player.PipeTimer > 0 {
		updatePipeWarp(ecs, playerEntry)
		return
	}

	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed
	jump := GetAction(input, cfg.ActionJump)
	running := GetAction(input, cfg.ActionRun).Pressed
	duck := GetAction(input, cfg.ActionDuck).Pressed

	updateDuck(playerEntry, player, physics, duck)
	updateHorizontal(player, physics, left, right, running)
	updateVertical(ecs, playerEntry, player, physics, jump)
	updatePMeter(player, physics)
	updateFire(ecs, playerEntry, player, physics, input)
	updateState(player, physics, state, running)
	if physics.InQuicksand {
		// Quicksand swallows momentum and pulls down; mashing jump is the
		// way out, handled by the swim-stroke branch in updateVertical.
		physics.SpeedX *= 0.3
		if physics.SpeedY > 1 {
			physics.SpeedY = 1
		}
	}

	// The level's left edge is a hard bound.
	if obj.X < 0 {
		obj.X = 0
		if physics.SpeedX < 0 {
			physics.SpeedX = 0
		}
	}
}

func tickTimers(player *components.PlayerData) {
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if player.StarFrames > 0 {
		player.StarFrames--
	}
	if player.ShootTimer > 0 {
		player.ShootTimer--
	}
}

func updateHorizontal(player *components.PlayerData, physics *components.PhysicsData, left, right, running bool) {
	target := 0.0
	switch {
	case left && !right:
		target = -cfg.Player.WalkSpeed
		player.Facing = -1
	case right && !left:
		target = cfg.Player.WalkSpeed
		player.Facing = 1
	}
	if running && target != 0 {
		target = math.Copysign(cfg.Player.RunSpeed, target)
	}
	if player.Ducking && physics.OnGround != nil {
		target = 0
	}

	if target != 0 {
		// Approach the target by a fixed step, never overshooting it.
		step := cfg.Player.Acceleration
		if physics.SpeedX < target {
			physics.SpeedX = math.Min(physics.SpeedX+step, target)
		} else if physics.SpeedX > target {
			physics.SpeedX = math.Max(physics.SpeedX-step, target)
		}
	} else {
		friction := cfg.Player.AirFriction
		if physics.OnGround != nil {
			friction = cfg.Player.Friction
			if physics.GroundFriction > 0 {
				friction = physics.GroundFriction
			}
		}
		physics.SpeedX *= 1 - friction
		if math.Abs(physics.SpeedX) < cfg.Player.SpeedEpsilon {
			physics.SpeedX = 0
		}
	}

	if physics.SpeedX > cfg.Player.MaxSpeed {
		physics.SpeedX = cfg.Player.MaxSpeed
	} else if physics.SpeedX < -cfg.Player.MaxSpeed {
		physics.SpeedX = -cfg.Player.MaxSpeed
	}
}

func updateVertical(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, jump components.ActionState) {
	if physics.InWater || physics.InQuicksand {
		// Swim stroke: every press is an impulse, no ground edge required.
		if jump.JustPressed {
			physics.SpeedY = -5
		}
		physics.SpeedY += cfg.Player.Gravity * 0.3
		if physics.SpeedY > 3 {
			physics.SpeedY = 3
		}
		return
	}

	// Jump fires only on a ground-contact press edge; held jump never
	// re-triggers.
	if jump.JustPressed && physics.OnGround != nil {
		impulse := cfg.Player.JumpPower
		running := math.Abs(physics.SpeedX) > cfg.Player.WalkSpeed
		if running {
			impulse = cfg.Player.RunJumpPower
		}
		if player.PMeter >= cfg.Player.PMeterMax {
			impulse += cfg.Player.PMeterJumpBonus
		}
		physics.SpeedY = -impulse
		player.JumpHeld = true
		physics.OnGround = nil

		obj := components.Object.Get(e)
		events.Jumped.Publish(ecs.World, events.JumpedData{
			X:       obj.X + obj.W/2,
			Y:       obj.Y + obj.H,
			Running: running,
		})
	}
	if !jump.Pressed {
		player.JumpHeld = false
	}

	// Variable jump height: reduced gravity only while rising with the jump
	// button still held from the takeoff.
	gravity := cfg.Player.Gravity
	if player.JumpHeld && jump.Pressed && physics.SpeedY < 0 {
		gravity = cfg.Player.JumpHoldGravity
	}
	physics.SpeedY += gravity
	if physics.SpeedY > cfg.Player.MaxFall {
		physics.SpeedY = cfg.Player.MaxFall
	}
}

func updateDuck(e *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, duck bool) {
	ducking := duck && physics.OnGround != nil
	if ducking == player.Ducking {
		return
	}
	player.Ducking = ducking
	resizePlayer(e, player)
}

// resizePlayer adjusts the collision box to the tier/duck height, keeping
// the feet anchored.
func resizePlayer(e *donburi.Entry, player *components.PlayerData) {
	obj := components.Object.Get(e)
	h := cfg.Player.SmallHeight
	if player.Tier > cfg.PowerSmall {
		h = cfg.Player.SuperHeight
	}
	if player.Ducking {
		h = cfg.Player.DuckHeight
	}
	obj.Y += obj.H - h
	obj.H = h
	obj.Update()
}

// updatePMeter charges the running power meter at ground speed and drains
// it otherwise. A full meter adds a bonus to the next jump impulse.
func updatePMeter(player *components.PlayerData, physics *components.PhysicsData) {
	if physics.OnGround != nil && math.Abs(physics.SpeedX) >= cfg.Player.PMeterThreshold {
		player.PMeter += 2
	} else if player.PMeter > 0 {
		player.PMeter--
	}
	if player.PMeter > cfg.Player.PMeterMax {
		player.PMeter = cfg.Player.PMeterMax
	}
}

func updateFire(ecs *ecs.ECS, e *donburi.Entry, player *components.PlayerData, physics *components.PhysicsData, input *components.InputData) {
	if !player.Tier.CanShoot() || player.ShootTimer > 0 {
		return
	}
	if !GetAction(input, cfg.ActionFire).Pressed || player.Ducking {
		return
	}

	obj := components.Object.Get(e)
	x := obj.X + obj.W/2 + player.Facing*obj.W/2
	y := obj.Y + obj.H/3
	factory.CreateFireball(ecs, x, y, player.Facing)
	player.ShootTimer = cfg.Player.ShootCooldown

	events.FireballFired.Publish(ecs.World, events.FireballFiredData{
		X: x, Y: y, Facing: player.Facing,
	})
}

func updateState(player *components.PlayerData, physics *components.PhysicsData, state *components.StateData, running bool) {
	state.PreviousState = state.CurrentState
	switch {
	case physics.InWater:
		state.CurrentState = cfg.StateSwimming
	case player.Ducking:
		state.CurrentState = cfg.StateDucking
	case physics.OnGround == nil && physics.SpeedY < 0:
		state.CurrentState = cfg.StateJumping
	case physics.OnGround == nil:
		state.CurrentState = cfg.StateFalling
	case physics.SpeedX == 0:
		state.CurrentState = cfg.StateIdle
	case running && math.Abs(physics.SpeedX) > cfg.Player.WalkSpeed:
		state.CurrentState = cfg.StateRunning
	default:
		state.CurrentState = cfg.StateWalking
	}
	if state.CurrentState == state.PreviousState {
		state.StateTimer++
	} else {
		state.StateTimer = 0
	}
}

// updatePipeWarp plays out a committed pipe entry: the character sinks into
// the pipe, then teleports to the destination and pops out.
func updatePipeWarp(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)

	player.PipeTimer--
	physics.SpeedX = 0
	physics.SpeedY = 0

	if player.PipeTimer > 30 {
		obj.Y += 1 // sinking in
	} else if player.PipeTimer == 30 && player.PipeTarget >= 0 {
		warpToPipe(ecs, e, player.PipeTarget)
	} else if player.PipeTimer < 30 {
		obj.Y -= 1 // emerging
	}
	obj.Update()

	if player.PipeTimer == 0 {
		player.PipeTarget = -1
		components.State.Get(e).CurrentState = cfg.StateIdle
	}
}

func warpToPipe(ecs *ecs.ECS, e *donburi.Entry, target int) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	layout := components.Level.Get(levelEntry).Layout
	if layout == nil || target < 0 || target >= len(layout.Pipes) {
		return
	}
	dst := layout.Pipes[target].Rect
	obj := components.Object.Get(e)
	obj.X = dst.X + (dst.W-obj.W)/2
	obj.Y = dst.Y - obj.H + 30
	obj.Update()
}

// DamagePlayer applies contact damage. Above Small the tier demotes
// straight to Small with an invincibility window; at Small a life is lost.
// Invincibility of either kind makes this a no-op.
func DamagePlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.Invulnerable() {
		return
	}
	obj := components.Object.Get(e)

	if player.Tier > cfg.PowerSmall {
		old := player.Tier
		player.Tier = cfg.PowerSmall
		player.InvulnFrames = cfg.Player.DamageInvulnFrames
		resizePlayer(e, player)
		events.PowerChanged.Publish(ecs.World, events.PowerChangedData{Old: old, New: player.Tier})
		events.CharacterDamaged.Publish(ecs.World, events.CharacterDamagedData{
			X: obj.X + obj.W/2, Y: obj.Y + obj.H/2,
		})
		return
	}
	KillPlayer(ecs, e)
}

// KillPlayer handles any fatal outcome: pit, timeout, or damage at Small.
func KillPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	state := components.State.Get(e)
	if state.CurrentState == cfg.StateDead {
		return
	}
	state.CurrentState = cfg.StateDead

	lives := components.Lives.Get(e)
	lives.Lives--

	obj := components.Object.Get(e)
	events.CharacterDamaged.Publish(ecs.World, events.CharacterDamagedData{
		X: obj.X + obj.W/2, Y: obj.Y + obj.H/2, Fatal: true,
	})
	events.LifeLost.Publish(ecs.World, events.LifeLostData{Remaining: lives.Lives})

	if lives.Lives <= 0 {
		score := 0
		if scoreEntry, ok := components.Score.First(ecs.World); ok {
			score = components.Score.Get(scoreEntry).Score
		}
		events.GameOver.Publish(ecs.World, events.GameOverData{FinalScore: score})
		return
	}
	events.LevelResetRequested.Publish(ecs.World, events.LevelResetRequestedData{})
}

// ApplyReward applies a block or pickup reward to the character. Spare
// power-ups at or above the granted tier convert to points instead.
func ApplyReward(ecs *ecs.ECS, e *donburi.Entry, reward level.Reward, x, y float64) {
	player := components.Player.Get(e)

	promote := func(to cfg.PowerTier) {
		if player.Tier >= to {
			events.PointsAwarded.Publish(ecs.World, events.PointsAwardedData{
				Amount: cfg.Score.SparePowerPoints, X: x, Y: y,
			})
			return
		}
		old := player.Tier
		player.Tier = to
		resizePlayer(e, player)
		events.PowerChanged.Publish(ecs.World, events.PowerChangedData{Old: old, New: to})
	}

	switch reward {
	case level.RewardCoin:
		events.CoinCollected.Publish(ecs.World, events.CoinCollectedData{X: x, Y: y})
		events.PointsAwarded.Publish(ecs.World, events.PointsAwardedData{
			Amount: cfg.Score.CoinPoints, X: x, Y: y,
		})
	case level.RewardMushroom:
		promote(cfg.PowerSuper)
	case level.RewardFlower:
		promote(cfg.PowerFire)
	case level.RewardLeaf:
		promote(cfg.PowerTanooki)
	case level.RewardStar:
		player.StarFrames = cfg.Player.StarInvulnFrames
	}
}
