package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/config"
)

type PlayerData struct {
	Tier         config.PowerTier
	Facing       float64 // -1 left, +1 right
	InvulnFrames int     // post-damage invincibility timer
	StarFrames   int     // star invincibility timer
	ShootTimer   int     // frames until the next fireball is allowed
	PMeter       int     // running power meter, 0..PMeterMax
	Ducking      bool
	JumpHeld     bool // jump action held since the last takeoff
	PipeTimer    int  // frames left in a pipe warp
	PipeTarget   int  // destination pipe index during a warp, -1 otherwise
}

var Player = donburi.NewComponentType[PlayerData]()

// Invulnerable reports whether contact damage is currently ignored.
func (p *PlayerData) Invulnerable() bool {
	return p.InvulnFrames > 0 || p.StarFrames > 0
}

// Starred reports star invincibility, which also defeats enemies on touch.
func (p *PlayerData) Starred() bool {
	return p.StarFrames > 0
}
