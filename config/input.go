package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID identifies a logical input action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionRun
	ActionDuck
	ActionFire
	ActionPause
	ActionCount
)

// ActionBinding maps an action to its keyboard keys. All keys bound to an
// action are ORed together by the input system.
type ActionBinding struct {
	Keys []ebiten.Key
}

// InputConfig contains the key bindings for all actions
type InputConfig struct {
	Bindings map[ActionID]ActionBinding
}

// Default bindings follow the original layout: Z jumps (Up/W as aliases),
// X runs and doubles as fire (Shift/Ctrl as aliases).
var Input = InputConfig{
	Bindings: map[ActionID]ActionBinding{
		ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
		ActionJump:      {Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyArrowUp, ebiten.KeyW}},
		ActionRun:       {Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyShiftLeft, ebiten.KeyControlLeft}},
		ActionDuck:      {Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
		ActionFire:      {Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyShiftLeft, ebiten.KeyControlLeft}},
		ActionPause:     {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
	},
}
