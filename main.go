package main

import (
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/scenes"
	"github.com/lunarbyte/hopper/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(logger *log.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, logger)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, cfg.Screen.Width, cfg.Screen.Height)
	return cfg.Screen.Width, cfg.Screen.Height
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hopper",
	})

	if err := systems.InitPersistence(logger); err != nil {
		logger.Warn("settings will not persist", "err", err)
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Hopper")
	ebiten.SetTPS(cfg.Screen.TPS)

	if err := ebiten.RunGame(NewGame(logger)); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
