// Package events defines the gameplay event bus. Systems publish during the
// update phase; subscribers run when the events system flushes the queue at
// the end of the tick. Events carry values only, never references into the
// publisher's state.
package events

import (
	"github.com/yohamta/donburi/features/events"

	"github.com/lunarbyte/hopper/config"
)

// CoinCollectedData is published for every coin pickup, from blocks or
// enemies alike.
type CoinCollectedData struct {
	X, Y float64
}

// PointsAwardedData is published with the raw point amount; the score system
// owns the running total.
type PointsAwardedData struct {
	Amount int
	X, Y   float64
}

// PowerChangedData is published on every tier change, up or down.
type PowerChangedData struct {
	Old config.PowerTier
	New config.PowerTier
}

// CharacterDamagedData is published when contact damage lands outside an
// invincibility window.
type CharacterDamagedData struct {
	X, Y  float64
	Fatal bool
}

// LifeLostData is published when damage at the Small tier or a pit/timeout
// kills the character.
type LifeLostData struct {
	Remaining int
}

// EnemyDefeatedData is published however an enemy dies.
type EnemyDefeatedData struct {
	X, Y    float64
	Stomped bool
}

// BlockStruckData is published when the character's head strikes a live
// block from below.
type BlockStruckData struct {
	X, Y   float64
	Broken bool
}

// PipeEnteredData is published when a duck on an enterable pipe commits.
type PipeEnteredData struct {
	Destination string
}

// LevelResetRequestedData asks the level system to rebuild the current
// level. Published on death with lives remaining.
type LevelResetRequestedData struct{}

// LevelCompletedData is published when the character reaches the exit.
type LevelCompletedData struct {
	World int
	Level int
}

// GameOverData is published when the last life is lost.
type GameOverData struct {
	FinalScore int
}

// JumpedData is published on the jump's rising edge, for effects.
type JumpedData struct {
	X, Y    float64
	Running bool
}

// FireballFiredData is published when a shot actually spawns.
type FireballFiredData struct {
	X, Y   float64
	Facing float64
}

var (
	CoinCollected       = events.NewEventType[CoinCollectedData]()
	PointsAwarded       = events.NewEventType[PointsAwardedData]()
	PowerChanged        = events.NewEventType[PowerChangedData]()
	CharacterDamaged    = events.NewEventType[CharacterDamagedData]()
	LifeLost            = events.NewEventType[LifeLostData]()
	EnemyDefeated       = events.NewEventType[EnemyDefeatedData]()
	BlockStruck         = events.NewEventType[BlockStruckData]()
	PipeEntered         = events.NewEventType[PipeEnteredData]()
	LevelResetRequested = events.NewEventType[LevelResetRequestedData]()
	LevelCompleted      = events.NewEventType[LevelCompletedData]()
	GameOver            = events.NewEventType[GameOverData]()
	Jumped              = events.NewEventType[JumpedData]()
	FireballFired       = events.NewEventType[FireballFiredData]()
)
