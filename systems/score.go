package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	"github.com/lunarbyte/hopper/events"
)

// coinsPerLife is the coin count that converts into an extra life.
const coinsPerLife = 100

// SetupScore subscribes the score singleton to the gameplay events. The
// score system owns the counters; gameplay code only ever publishes.
func SetupScore(ecs *ecs.ECS) {
	events.PointsAwarded.Subscribe(ecs.World, func(w donburi.World, ev events.PointsAwardedData) {
		if entry, ok := components.Score.First(w); ok {
			score := components.Score.Get(entry)
			score.Score += ev.Amount
			updateHighScore(w, score.Score)
		}
	})

	events.CoinCollected.Subscribe(ecs.World, func(w donburi.World, _ events.CoinCollectedData) {
		entry, ok := components.Score.First(w)
		if !ok {
			return
		}
		score := components.Score.Get(entry)
		score.Coins++
		if score.Coins%coinsPerLife == 0 {
			if playerEntry, ok := components.Player.First(w); ok {
				components.Lives.Get(playerEntry).Lives++
			}
		}
	})
}

func updateHighScore(w donburi.World, score int) {
	entry, ok := components.Settings.First(w)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	if score > settings.HighScore {
		settings.HighScore = score
	}
}
