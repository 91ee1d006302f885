package systems

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/level"
)

// UpdateEnemies advances every enemy by its kind-specific behavior. All
// kinds share the patrol-bounds contract: position stays inside
// [PatrolMin, PatrolMax] and the velocity flips at the edges.
func UpdateEnemies(ecs *ecs.ECS) {
	playerX := 0.0
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		playerObj := components.Object.Get(playerEntry)
		playerX = playerObj.X + playerObj.W/2
	}

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e)

		switch {
		case enemy.Kind == level.PiranhaPlant:
			updatePiranha(enemy, obj)
		case enemy.Kind == level.RockyWrench:
			updateRockyWrench(enemy, obj)
		case enemy.Kind == level.Lakitu:
			// Lakitu hovers at a fixed height and drifts toward the
			// character with a lerp.
			obj.X += (playerX - obj.X) * cfg.Enemy.DriftRate
		case enemy.Kind.Flies() || enemy.Kind.Swims():
			updateFreeMover(enemy, obj)
		case enemy.Kind == level.HammerBro || enemy.Kind == level.IceBro:
			updateHopper(enemy, obj)
		default:
			updatePatroller(enemy, obj)
		}

		obj.Update()
	})
}

func updatePatroller(enemy *components.EnemyData, obj *components.ObjectData) {
	obj.X += enemy.SpeedX
	if obj.X < enemy.PatrolMin || obj.X+obj.W > enemy.PatrolMax {
		enemy.SpeedX = -enemy.SpeedX
		obj.X += enemy.SpeedX
	}
}

// updateHopper is a patroller with a per-tick chance to hop; gravity pulls
// it back to its base height.
func updateHopper(enemy *components.EnemyData, obj *components.ObjectData) {
	updatePatroller(enemy, obj)

	if enemy.SpeedY == 0 && obj.Y >= enemy.BaseY && rand.Float64() < cfg.Enemy.HopChance {
		enemy.SpeedY = -cfg.Enemy.HopSpeed
	}
	if enemy.SpeedY != 0 || obj.Y < enemy.BaseY {
		obj.Y += enemy.SpeedY
		enemy.SpeedY += cfg.Enemy.Gravity
		if obj.Y >= enemy.BaseY {
			obj.Y = enemy.BaseY
			enemy.SpeedY = 0
		}
	}
}

// updateFreeMover handles swimming and flying kinds: both axes patrol
// freely, bouncing off the patrol range and the vertical band.
func updateFreeMover(enemy *components.EnemyData, obj *components.ObjectData) {
	obj.X += enemy.SpeedX
	obj.Y += enemy.SpeedY
	if obj.X < enemy.PatrolMin || obj.X+obj.W > enemy.PatrolMax {
		enemy.SpeedX = -enemy.SpeedX
	}
	if obj.Y < cfg.Enemy.SwimBandTop || obj.Y > cfg.Enemy.SwimBandBot {
		enemy.SpeedY = -enemy.SpeedY
	}
}

// updatePiranha cycles the plant in and out of its pipe on a fixed period.
func updatePiranha(enemy *components.EnemyData, obj *components.ObjectData) {
	enemy.Timer++
	period := cfg.Enemy.EmergePeriod
	phase := enemy.Timer % period
	half := period / 2

	rise := math.Min(float64(phase), float64(period-phase)) // triangle wave
	extent := math.Min(rise*2, obj.H)
	obj.Y = enemy.BaseY - extent
	enemy.Emerged = phase > half/4 && phase < period-half/4 && extent > obj.H/2
}

func updateRockyWrench(enemy *components.EnemyData, obj *components.ObjectData) {
	enemy.Timer++
	period := cfg.Enemy.EmergePeriod
	if enemy.Timer%period < period/2 {
		obj.Y = enemy.BaseY
		enemy.Emerged = true
	} else {
		obj.Y = enemy.BaseY + obj.H // tucked under the deck
		enemy.Emerged = false
	}
}
