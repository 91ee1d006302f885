package systems

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/events"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/systems/factory"
)

// respawnDelayFrames is the pause between a death and the level rebuild.
const respawnDelayFrames = 90

var (
	levelGen     *level.Generator
	resetTimer   int
	advanceQueue bool
)

// SetupLevels creates the generator and wires the level lifecycle to the
// event bus. Call once per session, before the first UpdateLevel tick.
func SetupLevels(ecs *ecs.ECS, logger *log.Logger) {
	levelGen = level.NewGenerator(cfg.Generator, logger)
	resetTimer = 0
	advanceQueue = false

	events.LevelResetRequested.Subscribe(ecs.World, func(w donburi.World, _ events.LevelResetRequestedData) {
		if resetTimer == 0 {
			resetTimer = respawnDelayFrames
		}
	})
	events.LevelCompleted.Subscribe(ecs.World, func(w donburi.World, _ events.LevelCompletedData) {
		advanceQueue = true
	})
}

// UpdateLevel owns the level lifecycle: first-tick build, rebuild after a
// death, advance after a clear, and the level clock.
func UpdateLevel(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok || levelGen == nil {
		return
	}
	levelData := components.Level.Get(levelEntry)

	if levelData.Layout == nil {
		buildLevel(ecs, levelData)
		return
	}

	if advanceQueue {
		advanceQueue = false
		advanceLevel(levelData)
		rebuildLevel(ecs, levelData)
		return
	}

	if resetTimer > 0 {
		resetTimer--
		if resetTimer == 0 {
			rebuildLevel(ecs, levelData)
		}
		return
	}

	tickClock(ecs, levelData)
}

func tickClock(ecs *ecs.ECS, levelData *components.LevelData) {
	if levelData.Cleared || levelData.TimeRemaining <= 0 {
		return
	}
	levelData.TimeRemaining--
	if levelData.TimeRemaining > 0 {
		return
	}
	// Time out kills regardless of tier or invincibility.
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		KillPlayer(ecs, playerEntry)
	}
}

func advanceLevel(levelData *components.LevelData) {
	levelData.Level++
	if levelData.Level > cfg.LevelCount(levelData.World) {
		levelData.Level = 1
		levelData.World++
		if levelData.World > len(cfg.Worlds()) {
			levelData.World = 1
		}
	}
}

func buildLevel(ecs *ecs.ECS, levelData *components.LevelData) {
	tag := cfg.LevelArchetype(levelData.World, levelData.Level)
	layout := levelGen.GenerateTag(levelData.World, levelData.Level, tag)

	// The world table may override the archetype's default exit trigger
	// (card houses on standard levels, for instance).
	if kind, ok := level.ParseExitKind(cfg.LevelExit(levelData.World, levelData.Level)); ok {
		layout.Exit.Kind = kind
	}

	// Fortress-style boss labels come from the world table.
	if layout.BossRoom != nil && layout.BossRoom.Boss == "" {
		layout.BossRoom.Boss = cfg.World(levelData.World).Boss
	}

	levelData.Layout = layout
	levelData.Cleared = false

	seconds := cfg.World(levelData.World).TimeLimit
	if seconds <= 0 {
		seconds = cfg.Score.TimeLimit
	}
	levelData.TimeRemaining = seconds * cfg.Screen.TPS

	factory.BuildLevel(ecs, layout)

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		factory.RespawnPlayer(playerEntry)
	}
	if photonEntry, ok := components.Photon.First(ecs.World); ok {
		components.Photon.Get(photonEntry).Clear()
	}
}

// rebuildLevel regenerates the whole level from scratch. Struck blocks and
// defeated enemies come back; score, lives and power tier carry over.
func rebuildLevel(ecs *ecs.ECS, levelData *components.LevelData) {
	factory.ClearLevel(ecs)
	levelData.Layout = nil
	buildLevel(ecs, levelData)
}
