package scenes

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/events"
	"github.com/lunarbyte/hopper/systems"
	"github.com/lunarbyte/hopper/systems/factory"
)

// Collision space bounds. Wider than the longest generated level so every
// archetype fits without resizing.
const (
	spaceWidth  = 8192
	spaceHeight = 1024
	spaceCell   = 16
)

// WorldScene runs the playable game: level generation, simulation and
// rendering for the current world.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	logger       *log.Logger
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, logger *log.Logger) *WorldScene {
	return &WorldScene{sceneChanger: sc, logger: logger}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)

	// Simulation order matters: the character sets speeds, collisions
	// integrate and resolve them, objects refresh last.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLevel))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFireballs))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateParticles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	e.AddSystem(systems.ProcessEvents)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = e

	factory.CreateSpace(e, spaceWidth, spaceHeight, spaceCell, spaceCell)
	factory.CreateCamera(e)
	factory.CreateScore(e)
	factory.CreatePhoton(e)
	factory.CreateSettings(e)
	factory.CreateLevelEntry(e)
	factory.CreatePlayer(e, cfg.Player.SpawnX, cfg.Player.SpawnY)

	systems.SetupLevels(e, ws.logger)
	systems.SetupScore(e)
	systems.SetupEffects(e)
	systems.LoadSettings(e)

	events.GameOver.Subscribe(e.World, func(w donburi.World, ev events.GameOverData) {
		systems.SaveSettings(e)

		highScore := ev.FinalScore
		if entry, ok := components.Settings.First(w); ok {
			if hs := components.Settings.Get(entry).HighScore; hs > highScore {
				highScore = hs
			}
		}
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, ws.logger, ev.FinalScore, highScore))
	})

	ws.logger.Info("world scene ready")
}
