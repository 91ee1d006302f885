package config

// StateID identifies the character's movement state for a tick.
type StateID int

const (
	StateIdle StateID = iota
	StateWalking
	StateRunning
	StateJumping
	StateFalling
	StateDucking
	StateSwimming
	StatePipeWarping
	StateDead
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateFalling:
		return "falling"
	case StateDucking:
		return "ducking"
	case StateSwimming:
		return "swimming"
	case StatePipeWarping:
		return "pipe-warping"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Airborne reports whether the state skips ground friction.
func (s StateID) Airborne() bool {
	return s == StateJumping || s == StateFalling
}
