package systems

import (
	"image/color"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/events"
	"github.com/lunarbyte/hopper/photon"
)

var (
	coinColor    = color.RGBA{255, 215, 0, 255}
	blockColor   = color.RGBA{200, 150, 100, 255}
	jumpColor    = color.RGBA{230, 230, 230, 255}
	damageColor  = color.RGBA{255, 60, 60, 255}
	defeatColor  = color.RGBA{255, 160, 40, 255}
	powerColor   = color.RGBA{80, 255, 120, 255}
	fireColor    = color.RGBA{255, 120, 20, 255}
	goalColor    = color.RGBA{120, 200, 255, 255}
	particleTick int
)

func photonSystem(w donburi.World) *photon.System {
	entry, ok := components.Photon.First(w)
	if !ok {
		return nil
	}
	return components.Photon.Get(entry).System
}

func particlesEnabled(w donburi.World) bool {
	entry, ok := components.Settings.First(w)
	if !ok {
		return true
	}
	return components.Settings.Get(entry).ParticlesEnabled
}

func burst(w donburi.World, x, y float64, count int, col color.RGBA, spread float64) {
	if !particlesEnabled(w) {
		return
	}
	if s := photonSystem(w); s != nil {
		s.Emit(dmath.Vec2{X: x, Y: y}, count, col, spread)
	}
}

// SetupEffects wires gameplay events to particle bursts. Every burst is
// cosmetic; dropping them (population cap, disabled setting) changes
// nothing downstream.
func SetupEffects(ecs *ecs.ECS) {
	particleTick = 0

	events.CoinCollected.Subscribe(ecs.World, func(w donburi.World, ev events.CoinCollectedData) {
		burst(w, ev.X, ev.Y, 15, coinColor, 3)
	})
	events.BlockStruck.Subscribe(ecs.World, func(w donburi.World, ev events.BlockStruckData) {
		count := 10
		if ev.Broken {
			count = 30
		}
		burst(w, ev.X, ev.Y, count, blockColor, 4)
	})
	events.Jumped.Subscribe(ecs.World, func(w donburi.World, ev events.JumpedData) {
		count := 5
		if ev.Running {
			count = 12
		}
		burst(w, ev.X, ev.Y, count, jumpColor, 2)
	})
	events.CharacterDamaged.Subscribe(ecs.World, func(w donburi.World, ev events.CharacterDamagedData) {
		count := 20
		if ev.Fatal {
			count = 50
		}
		burst(w, ev.X, ev.Y, count, damageColor, 5)
	})
	events.EnemyDefeated.Subscribe(ecs.World, func(w donburi.World, ev events.EnemyDefeatedData) {
		burst(w, ev.X, ev.Y, 20, defeatColor, 4)
	})
	events.PowerChanged.Subscribe(ecs.World, func(w donburi.World, ev events.PowerChangedData) {
		if playerEntry, ok := components.Player.First(w); ok {
			obj := components.Object.Get(playerEntry)
			burst(w, obj.X+obj.W/2, obj.Y+obj.H/2, 25, powerColor, 4)
		}
	})
	events.FireballFired.Subscribe(ecs.World, func(w donburi.World, ev events.FireballFiredData) {
		burst(w, ev.X, ev.Y, 6, fireColor, 2)
	})
	events.LevelCompleted.Subscribe(ecs.World, func(w donburi.World, _ events.LevelCompletedData) {
		if playerEntry, ok := components.Player.First(w); ok {
			obj := components.Object.Get(playerEntry)
			burst(w, obj.X+obj.W/2, obj.Y, 100, goalColor, 6)
		}
	})
}

// UpdateParticles advances the particle population, trickles ambient
// emission from the photon zone the character is in, and runs the periodic
// adaptation pass.
func UpdateParticles(ecs *ecs.ECS) {
	system := photonSystem(ecs.World)
	if system == nil {
		return
	}

	emitAmbient(ecs, system)
	system.Update()

	particleTick++
	if particleTick%cfg.Particle.AdaptInterval == 0 {
		system.Adapt()
	}
}

// emitAmbient emits the current zone's themed trickle around the camera
// view. Density scales the per-tick emission probability.
func emitAmbient(ecs *ecs.ECS, system *photon.System) {
	if !particlesEnabled(ecs.World) {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	layout := components.Level.Get(levelEntry).Layout
	if layout == nil {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camX := components.Camera.Get(cameraEntry).Position.X

	for _, zone := range layout.PhotonZones {
		if camX < zone.Rect.X || camX >= zone.Rect.Right() {
			continue
		}
		chance := float64(zone.Density) / 10000 * zone.Intensity
		if rand.Float64() < chance {
			x := camX - float64(cfg.Screen.Width)/2 + rand.Float64()*float64(cfg.Screen.Width)
			y := rand.Float64() * float64(cfg.Screen.Height)
			system.Emit(dmath.Vec2{X: x, Y: y}, 1+rand.Intn(3), zone.Color, 1)
		}
		return
	}
}
