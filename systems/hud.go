package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
)

const (
	hudMargin     = 12
	hudLineHeight = 16
	pMeterWidth   = 100
	pMeterHeight  = 8
)

var (
	hudTextColor   = color.RGBA{255, 255, 255, 255}
	pMeterBack     = color.RGBA{40, 40, 40, 200}
	pMeterFill     = color.RGBA{255, 220, 60, 255}
	pMeterFullFill = color.RGBA{255, 80, 40, 255}
)

// DrawHUD renders score, coins, world position, clock, lives and the run
// meter along the top edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if ok && !components.Settings.Get(settingsEntry).ShowHUD {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry)

	scoreEntry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(scoreEntry)

	seconds := lvl.TimeRemaining / cfg.Screen.TPS
	line1 := fmt.Sprintf("SCORE %07d   COINS %02d", score.Score, score.Coins)
	line2 := fmt.Sprintf("WORLD %d-%d   TIME %03d", lvl.World, lvl.Level, seconds)

	//nolint:staticcheck // text.Draw with a fixed face is all the HUD needs.
	text.Draw(screen, line1, basicfont.Face7x13, hudMargin, hudMargin+hudLineHeight, hudTextColor)
	//nolint:staticcheck
	text.Draw(screen, line2, basicfont.Face7x13, hudMargin, hudMargin+2*hudLineHeight, hudTextColor)

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	lives := components.Lives.Get(playerEntry)

	line3 := fmt.Sprintf("LIVES %d   %s", lives.Lives, player.Tier)
	//nolint:staticcheck
	text.Draw(screen, line3, basicfont.Face7x13, hudMargin, hudMargin+3*hudLineHeight, hudTextColor)

	drawPMeter(screen, player)
}

func drawPMeter(screen *ebiten.Image, player *components.PlayerData) {
	x := float32(cfg.Screen.Width - hudMargin - pMeterWidth)
	y := float32(hudMargin)
	vector.DrawFilledRect(screen, x, y, pMeterWidth, pMeterHeight, pMeterBack, false)

	frac := float32(player.PMeter) / float32(cfg.Player.PMeterMax)
	fill := pMeterFill
	if player.PMeter >= cfg.Player.PMeterMax {
		fill = pMeterFullFill
	}
	vector.DrawFilledRect(screen, x, y, pMeterWidth*frac, pMeterHeight, fill, false)
}
