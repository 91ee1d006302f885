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
	"github.com/lunarbyte/hopper/systems"
)

// SceneChanger allows scenes to trigger transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// GameOverScene shows the final tally and waits for a restart press.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	logger       *log.Logger
	finalScore   int
	highScore    int
	once         sync.Once
}

func NewGameOverScene(sc SceneChanger, logger *log.Logger, finalScore, highScore int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, logger: logger, finalScore: finalScore, highScore: highScore}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	entry := gs.ecs.World.Entry(gs.ecs.World.Create(components.GameOver))
	components.GameOver.SetValue(entry, components.GameOverData{
		FinalScore: gs.finalScore,
		HighScore:  gs.highScore,
	})

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger, gs.logger)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
