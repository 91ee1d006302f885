package components

import "github.com/yohamta/donburi"

// PauseData stores the pause flag. A paused tick skips the whole update
// phase; rendering keeps drawing the last known state.
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
