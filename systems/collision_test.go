package systems

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/events"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/systems/factory"
	"github.com/lunarbyte/hopper/tags"
)

func placePlayer(player *donburi.Entry, x, y float64) *components.ObjectData {
	obj := components.Object.Get(player)
	obj.X = x
	obj.Y = y
	obj.Update()
	return obj
}

func addSolid(e *ecs.ECS, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvSolid)
	factory.GetSpace(e).Add(obj)
	return obj
}

func addBlock(e *ecs.ECS, x, y float64, kind level.BlockKind, contains level.Reward) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(tags.Block, components.Block, components.Object))
	obj := resolv.NewObject(x, y, 16, 16)
	if kind == level.BlockHidden {
		obj.AddTags(tags.ResolvBlock)
	} else {
		obj.AddTags(tags.ResolvBlock, tags.ResolvSolid)
	}
	obj.Data = entry
	factory.GetSpace(e).Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Block.SetValue(entry, components.BlockData{Kind: kind, Contains: contains})
	return entry
}

func addEnemy(e *ecs.ECS, x, y float64, kind level.EnemyKind) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(tags.Enemy, components.Enemy, components.Object))
	obj := resolv.NewObject(x, y, 30, 30)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = entry
	factory.GetSpace(e).Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Enemy.SetValue(entry, components.EnemyData{Kind: kind, Scale: 1})
	return entry
}

func TestRestOnSolidIsStable(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	addSolid(e, 0, 430, 200, 20)
	obj := placePlayer(player, 100, 430-cfg.Player.SmallHeight)

	for i := 0; i < 3; i++ {
		UpdateCollisions(e)
		if physics.OnGround == nil {
			t.Fatalf("tick %d: character not grounded", i)
		}
		if got := obj.Bottom(); got != 430 {
			t.Fatalf("tick %d: feet at %v, want 430", i, got)
		}
		if physics.SpeedY != 0 {
			t.Fatalf("tick %d: SpeedY = %v, want 0", i, physics.SpeedY)
		}
	}
}

func TestFallingLandsFlush(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	addSolid(e, 0, 415, 200, 20)
	obj := placePlayer(player, 100, 415-cfg.Player.SmallHeight-5)
	physics.SpeedY = cfg.Player.MaxFall

	UpdateCollisions(e)

	if physics.OnGround == nil {
		t.Fatal("character did not land")
	}
	if got := obj.Bottom(); got != 415 {
		t.Fatalf("feet at %v, want 415", got)
	}
	if physics.SpeedY != 0 {
		t.Fatalf("SpeedY = %v after landing, want 0", physics.SpeedY)
	}
}

func TestQuestionBlockStrike(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	blockEntry := addBlock(e, 100, 350, level.BlockQuestion, level.RewardCoin)
	placePlayer(player, 100, 367)
	physics.SpeedY = -5

	var coins int
	events.CoinCollected.Subscribe(e.World, func(w donburi.World, ev events.CoinCollectedData) {
		coins++
	})
	var struck int
	events.BlockStruck.Subscribe(e.World, func(w donburi.World, ev events.BlockStruckData) {
		struck++
		if ev.Broken {
			t.Error("question block reported broken")
		}
	})

	UpdateCollisions(e)
	ProcessEvents(e)

	block := components.Block.Get(blockEntry)
	if !block.Struck {
		t.Fatal("block not marked struck")
	}
	if physics.SpeedY != blockBounceSpeed {
		t.Fatalf("SpeedY after strike = %v, want %v", physics.SpeedY, blockBounceSpeed)
	}
	if coins != 1 || struck != 1 {
		t.Fatalf("coins = %d, struck = %d, want 1 and 1", coins, struck)
	}

	// A struck block is inert on the next hit.
	placePlayer(player, 100, 367)
	physics.SpeedY = -5
	UpdateCollisions(e)
	ProcessEvents(e)
	if coins != 1 {
		t.Fatalf("struck block paid out again: coins = %d", coins)
	}
}

func TestHiddenBlockPassThrough(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	addBlock(e, 100, 430, level.BlockHidden, level.RewardCoin)

	// Falling straight onto an unstruck hidden block: no landing.
	obj := placePlayer(player, 100, 430-cfg.Player.SmallHeight-2)
	physics.SpeedY = 8
	UpdateCollisions(e)
	if physics.OnGround != nil {
		t.Fatalf("character landed on an unstruck hidden block at Y=%v", obj.Y)
	}
	if got, want := obj.Bottom(), 428.0+8; got != want {
		t.Fatalf("feet at %v, want free fall to %v", got, want)
	}

	// Walking sideways through it: no wall stop.
	placePlayer(player, 80, 432)
	physics.SpeedY = 0
	physics.SpeedX = 3
	UpdateCollisions(e)
	if physics.SpeedX != 3 {
		t.Fatalf("hidden block stopped horizontal motion: SpeedX = %v", physics.SpeedX)
	}
}

func TestHiddenBlockStrikeRevealsSolid(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	blockEntry := addBlock(e, 100, 350, level.BlockHidden, level.RewardCoin)
	placePlayer(player, 100, 367)
	physics.SpeedY = -5

	UpdateCollisions(e)

	block := components.Block.Get(blockEntry)
	if !block.Struck {
		t.Fatal("hidden block not struck from below")
	}
	blockObj := components.Object.Get(blockEntry)
	if !blockObj.HasTags(tags.ResolvSolid) {
		t.Fatal("revealed hidden block is not solid")
	}
}

func TestUpwardImpulseNotClamped(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	obj := placePlayer(player, 100, 400)

	impulse := cfg.Player.RunJumpPower + cfg.Player.PMeterJumpBonus
	physics.SpeedY = -impulse
	UpdateCollisions(e)

	if got, want := obj.Y, 400-impulse; got != want {
		t.Fatalf("rose %v px, want the full impulse %v", 400-obj.Y, impulse)
	}
}

func TestFallClampStillBinds(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	obj := placePlayer(player, 100, 100)

	physics.SpeedY = cfg.Player.MaxFall + 10
	UpdateCollisions(e)

	if got, want := obj.Y, 100+cfg.Player.MaxFall; got != want {
		t.Fatalf("fell to %v, want terminal-velocity fall to %v", got, want)
	}
}

func TestStompDefeatsEnemy(t *testing.T) {
	e, player := newGameplayTest(t)
	physics := components.Physics.Get(player)
	addEnemy(e, 100, 500, level.Goomba)
	placePlayer(player, 103, 500-cfg.Player.SmallHeight-4)
	physics.SpeedY = 5

	var stomps int
	events.EnemyDefeated.Subscribe(e.World, func(w donburi.World, ev events.EnemyDefeatedData) {
		if ev.Stomped {
			stomps++
		}
	})

	UpdateCollisions(e)
	ProcessEvents(e)

	if stomps != 1 {
		t.Fatalf("stomps = %d, want 1", stomps)
	}
	if physics.SpeedY != -cfg.Enemy.StompBounce {
		t.Fatalf("SpeedY = %v, want %v", physics.SpeedY, -cfg.Enemy.StompBounce)
	}
	remaining := 0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) { remaining++ })
	if remaining != 0 {
		t.Fatalf("%d enemies remain after stomp", remaining)
	}
}

func TestSideContactDamages(t *testing.T) {
	e, player := newGameplayTest(t)
	lives := components.Lives.Get(player)
	addEnemy(e, 110, 480, level.Goomba)
	placePlayer(player, 100, 490)

	UpdateCollisions(e)

	if got, want := lives.Lives, cfg.Player.StartingLives-1; got != want {
		t.Fatalf("lives = %d, want %d", got, want)
	}
}

func TestStarredContactDefeatsEnemy(t *testing.T) {
	e, player := newGameplayTest(t)
	components.Player.Get(player).StarFrames = 100
	lives := components.Lives.Get(player)
	addEnemy(e, 110, 480, level.Goomba)
	placePlayer(player, 100, 490)

	UpdateCollisions(e)

	if lives.Lives != cfg.Player.StartingLives {
		t.Fatal("starred contact cost a life")
	}
	remaining := 0
	components.Enemy.Each(e.World, func(entry *donburi.Entry) { remaining++ })
	if remaining != 0 {
		t.Fatal("starred contact left the enemy alive")
	}
}

func TestExitCompletesLevelOnce(t *testing.T) {
	e, player := newGameplayTest(t)
	exitObj := resolv.NewObject(90, 300, 40, 200)
	exitObj.AddTags(tags.ResolvExit)
	factory.GetSpace(e).Add(exitObj)
	placePlayer(player, 100, 400)

	var completions int
	events.LevelCompleted.Subscribe(e.World, func(w donburi.World, ev events.LevelCompletedData) {
		completions++
	})

	UpdateCollisions(e)
	UpdateCollisions(e)
	ProcessEvents(e)

	levelEntry, _ := components.Level.First(e.World)
	if !components.Level.Get(levelEntry).Cleared {
		t.Fatal("level not marked cleared")
	}
	if completions != 1 {
		t.Fatalf("LevelCompleted fired %d times, want 1", completions)
	}
}

func TestDuckOnPipeCommitsWarp(t *testing.T) {
	e, player := newGameplayTest(t)
	playerData := components.Player.Get(player)
	physics := components.Physics.Get(player)

	pipeEntry := e.World.Entry(e.World.Create(tags.Pipe, components.Pipe, components.Object))
	pipeObj := resolv.NewObject(88, 430, 48, 60)
	pipeObj.AddTags(tags.ResolvPipe)
	pipeObj.Data = pipeEntry
	factory.GetSpace(e).Add(pipeObj)
	components.Object.SetValue(pipeEntry, components.ObjectData{Object: pipeObj})
	components.Pipe.SetValue(pipeEntry, components.PipeData{Enterable: true, Destination: "bonus", Connected: -1})

	placePlayer(player, 100, 430-cfg.Player.SmallHeight)
	playerData.Ducking = true

	var entered int
	events.PipeEntered.Subscribe(e.World, func(w donburi.World, ev events.PipeEnteredData) {
		entered++
	})

	UpdateCollisions(e)
	ProcessEvents(e)

	if physics.OnGround == nil || !physics.OnGround.HasTags(tags.ResolvPipe) {
		t.Fatal("character not standing on the pipe")
	}
	if playerData.PipeTimer != 60 {
		t.Fatalf("PipeTimer = %d, want 60", playerData.PipeTimer)
	}
	if got := components.State.Get(player).CurrentState; got != cfg.StatePipeWarping {
		t.Fatalf("state = %v during warp, want %v", got, cfg.StatePipeWarping)
	}
	if entered != 1 {
		t.Fatalf("PipeEntered fired %d times, want 1", entered)
	}
}

func TestPitFallKills(t *testing.T) {
	e, player := newGameplayTest(t)
	state := components.State.Get(player)
	placePlayer(player, 100, float64(cfg.Screen.Height)+pitMargin+10)

	UpdateCollisions(e)

	if state.CurrentState != cfg.StateDead {
		t.Fatalf("state = %v after pit fall, want %v", state.CurrentState, cfg.StateDead)
	}
}
