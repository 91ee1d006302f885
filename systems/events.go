package systems

import (
	devents "github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/ecs"
)

// ProcessEvents flushes the event bus. Runs last in the update order so
// every subscriber sees the full tick's worth of events at once.
func ProcessEvents(ecs *ecs.ECS) {
	devents.ProcessAllEvents(ecs.World)
}
