package components

import (
	"github.com/yohamta/donburi"

	"github.com/lunarbyte/hopper/config"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// AnimFrame derives the presentation frame from the state cycle: a 3-frame
// walk cycle advancing every 8 ticks, a single fixed airborne frame.
func (s *StateData) AnimFrame() int {
	if s.CurrentState.Airborne() {
		return 4
	}
	switch s.CurrentState {
	case config.StateWalking, config.StateRunning:
		return (s.StateTimer / 8) % 3
	default:
		return 0
	}
}

var State = donburi.NewComponentType[StateData]()
