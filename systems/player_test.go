package systems

import (
	"math"
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/events"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/systems/factory"
)

// newGameplayTest builds a minimal playable world: space, level with an
// empty layout, score singleton and the character at the default spawn.
func newGameplayTest(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 2048, 1024, 16, 16)
	factory.CreateScore(e)
	levelEntry := factory.CreateLevelEntry(e)
	levelData := components.Level.Get(levelEntry)
	levelData.Layout = &level.Layout{Width: 2048}
	levelData.TimeRemaining = 300 * cfg.Screen.TPS
	player := factory.CreatePlayer(e, cfg.Player.SpawnX, cfg.Player.SpawnY)
	return e, player
}

func pressAction(e *ecs.ECS, id cfg.ActionID, held bool) {
	input := getOrCreateInput(e)
	input.Previous[id] = held
	input.Current[id] = true
}

func releaseAllActions(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
}

func TestJumpFiresOnlyOnGroundPressEdge(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	ground := resolv.NewObject(0, 500, 200, 20)

	// Airborne press: no impulse, gravity applies.
	pressAction(e, cfg.ActionJump, false)
	UpdatePlayer(e)
	if physics.SpeedY < 0 {
		t.Fatalf("airborne jump press produced an impulse: SpeedY = %v", physics.SpeedY)
	}

	// Grounded press edge: impulse fires.
	physics.SpeedY = 0
	physics.OnGround = ground
	pressAction(e, cfg.ActionJump, false)
	UpdatePlayer(e)
	if physics.SpeedY >= 0 {
		t.Fatalf("grounded jump press edge gave no impulse: SpeedY = %v", physics.SpeedY)
	}

	// Held jump back on the ground: no re-trigger.
	physics.SpeedY = 0
	physics.OnGround = ground
	pressAction(e, cfg.ActionJump, true)
	UpdatePlayer(e)
	if physics.SpeedY < 0 {
		t.Fatalf("held jump re-triggered: SpeedY = %v", physics.SpeedY)
	}
}

func TestVariableJumpGravity(t *testing.T) {
	e, player := newGameplayTest(t)
	playerData := components.Player.Get(player)
	physics := components.Physics.Get(player)

	playerData.JumpHeld = true
	physics.SpeedY = -5
	pressAction(e, cfg.ActionJump, true)
	UpdatePlayer(e)
	if got, want := physics.SpeedY, -5+cfg.Player.JumpHoldGravity; math.Abs(got-want) > 1e-9 {
		t.Fatalf("held rising gravity = %v, want %v", got+5, cfg.Player.JumpHoldGravity)
	}

	// Releasing the button restores full gravity even while rising.
	physics.SpeedY = -5
	releaseAllActions(e)
	UpdatePlayer(e)
	if got, want := physics.SpeedY, -5+cfg.Player.Gravity; math.Abs(got-want) > 1e-9 {
		t.Fatalf("released rising gravity = %v, want %v", got+5, cfg.Player.Gravity)
	}
	if playerData.JumpHeld {
		t.Fatal("JumpHeld not cleared on release")
	}
}

func TestGroundFrictionSnapsToZero(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	physics.OnGround = resolv.NewObject(0, 500, 200, 20)

	physics.SpeedX = 0.17
	UpdatePlayer(e)
	if physics.SpeedX != 0 {
		t.Fatalf("near-zero speed did not snap: %v", physics.SpeedX)
	}

	physics.OnGround = resolv.NewObject(0, 500, 200, 20)
	physics.SpeedY = 0
	physics.SpeedX = 4
	UpdatePlayer(e)
	want := 4 * (1 - cfg.Player.Friction)
	if math.Abs(physics.SpeedX-want) > 1e-9 {
		t.Fatalf("friction decay = %v, want %v", physics.SpeedX, want)
	}
}

func TestMaxSpeedClamp(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	physics.SpeedX = cfg.Player.MaxSpeed + 5

	pressAction(e, cfg.ActionMoveRight, true)
	pressAction(e, cfg.ActionRun, true)
	UpdatePlayer(e)
	if physics.SpeedX > cfg.Player.MaxSpeed {
		t.Fatalf("SpeedX %v exceeds cap %v", physics.SpeedX, cfg.Player.MaxSpeed)
	}
}

func TestDamageDemotesToSmallWithInvulnerability(t *testing.T) {
	e, player := newGameplayTest(t)
	playerData := components.Player.Get(player)
	lives := components.Lives.Get(player)

	ApplyReward(e, player, level.RewardMushroom, 0, 0)
	if playerData.Tier != cfg.PowerSuper {
		t.Fatalf("mushroom tier = %v, want %v", playerData.Tier, cfg.PowerSuper)
	}

	DamagePlayer(e, player)
	if playerData.Tier != cfg.PowerSmall {
		t.Fatalf("post-damage tier = %v, want %v", playerData.Tier, cfg.PowerSmall)
	}
	if playerData.InvulnFrames != cfg.Player.DamageInvulnFrames {
		t.Fatalf("InvulnFrames = %d, want %d", playerData.InvulnFrames, cfg.Player.DamageInvulnFrames)
	}

	// A second hit inside the window is absorbed.
	livesBefore := lives.Lives
	DamagePlayer(e, player)
	if lives.Lives != livesBefore {
		t.Fatal("invulnerable hit cost a life")
	}
}

func TestDamageAtSmallCostsLife(t *testing.T) {
	e, player := newGameplayTest(t)
	state := components.State.Get(player)
	lives := components.Lives.Get(player)

	var resets int
	events.LevelResetRequested.Subscribe(e.World, func(w donburi.World, ev events.LevelResetRequestedData) {
		resets++
	})

	DamagePlayer(e, player)
	ProcessEvents(e)

	if state.CurrentState != cfg.StateDead {
		t.Fatalf("state = %v, want %v", state.CurrentState, cfg.StateDead)
	}
	if got, want := lives.Lives, cfg.Player.StartingLives-1; got != want {
		t.Fatalf("lives = %d, want %d", got, want)
	}
	if resets != 1 {
		t.Fatalf("LevelResetRequested fired %d times, want 1", resets)
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	e, player := newGameplayTest(t)
	components.Lives.Get(player).Lives = 1

	var finalScore = -1
	events.GameOver.Subscribe(e.World, func(w donburi.World, ev events.GameOverData) {
		finalScore = ev.FinalScore
	})

	KillPlayer(e, player)
	ProcessEvents(e)
	if finalScore != 0 {
		t.Fatalf("GameOver final score = %d, want 0", finalScore)
	}
}

func TestApplyRewardSparePowerConvertsToPoints(t *testing.T) {
	e, player := newGameplayTest(t)
	playerData := components.Player.Get(player)
	playerData.Tier = cfg.PowerFire

	var awarded int
	events.PointsAwarded.Subscribe(e.World, func(w donburi.World, ev events.PointsAwardedData) {
		awarded += ev.Amount
	})

	ApplyReward(e, player, level.RewardMushroom, 0, 0)
	ProcessEvents(e)

	if playerData.Tier != cfg.PowerFire {
		t.Fatalf("spare mushroom changed tier to %v", playerData.Tier)
	}
	if awarded != cfg.Score.SparePowerPoints {
		t.Fatalf("awarded %d points, want %d", awarded, cfg.Score.SparePowerPoints)
	}
}

func TestApplyRewardStar(t *testing.T) {
	e, player := newGameplayTest(t)
	playerData := components.Player.Get(player)

	ApplyReward(e, player, level.RewardStar, 0, 0)
	if playerData.StarFrames != cfg.Player.StarInvulnFrames {
		t.Fatalf("StarFrames = %d, want %d", playerData.StarFrames, cfg.Player.StarInvulnFrames)
	}
	if !playerData.Starred() || !playerData.Invulnerable() {
		t.Fatal("starred character should be invulnerable")
	}
}

func TestPMeterChargesAndDrains(t *testing.T) {
	e, player := newGameplayTest(t)
	playerData := components.Player.Get(player)
	physics := components.Physics.Get(player)

	physics.OnGround = resolv.NewObject(0, 500, 200, 20)
	physics.SpeedX = cfg.Player.RunSpeed
	pressAction(e, cfg.ActionMoveRight, true)
	pressAction(e, cfg.ActionRun, true)
	UpdatePlayer(e)
	if playerData.PMeter != 2 {
		t.Fatalf("PMeter after one fast ground tick = %d, want 2", playerData.PMeter)
	}

	physics.OnGround = nil
	physics.SpeedX = 0
	releaseAllActions(e)
	UpdatePlayer(e)
	if playerData.PMeter != 1 {
		t.Fatalf("PMeter after one airborne tick = %d, want 1", playerData.PMeter)
	}
}

func TestUpdatePlayerWithoutLevelIsNoop(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 2048, 1024, 16, 16)
	player := factory.CreatePlayer(e, 100, 400)
	physics := components.Physics.Get(player)
	physics.SpeedY = 3

	UpdatePlayer(e)
	if physics.SpeedY != 3 {
		t.Fatalf("SpeedY changed without a level: %v", physics.SpeedY)
	}
}
