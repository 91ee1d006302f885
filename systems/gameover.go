package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
)

// SceneChanger allows systems to trigger scene transitions.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability.
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionJump).JustPressed || GetAction(input, cfg.ActionPause).JustPressed {
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// DrawGameOver renders the game over screen.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{10, 10, 20, 255}, false)

	lines := []string{"GAME OVER"}
	if entry, ok := components.GameOver.First(e.World); ok {
		data := components.GameOver.Get(entry)
		lines = append(lines,
			fmt.Sprintf("SCORE %07d", data.FinalScore),
			fmt.Sprintf("BEST  %07d", data.HighScore),
		)
	}
	lines = append(lines, "PRESS JUMP TO RETRY")

	for i, line := range lines {
		textWidth := len(line) * 7
		x := int((width - float64(textWidth)) / 2)
		y := int(height/2) + (i-len(lines)/2)*24
		text.Draw(screen, line, basicfont.Face7x13, x, y, hudTextColor)
	}
}
