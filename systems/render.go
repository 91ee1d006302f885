package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/level"
)

var surfaceColors = map[level.SurfaceKind]color.RGBA{
	level.SurfaceGround:          {110, 70, 40, 255},
	level.SurfaceFloating:        {160, 110, 60, 255},
	level.SurfaceIce:             {190, 220, 255, 255},
	level.SurfaceMetal:           {130, 130, 140, 255},
	level.SurfaceFortressFloor:   {90, 90, 100, 255},
	level.SurfaceFortressCeiling: {90, 90, 100, 255},
	level.SurfaceCastleBlock:     {70, 70, 80, 255},
	level.SurfaceAirshipDeck:     {120, 90, 60, 255},
	level.SurfaceCloud:           {245, 245, 250, 255},
	level.SurfaceDonutLift:       {230, 200, 150, 255},
	level.SurfaceHull:            {80, 85, 95, 255},
}

var (
	skyColor      = color.RGBA{110, 160, 240, 255}
	waterColor    = color.RGBA{40, 80, 200, 120}
	lavaColor     = color.RGBA{230, 70, 10, 200}
	blockColors   = map[level.BlockKind]color.RGBA{level.BlockBrick: {180, 100, 50, 255}, level.BlockQuestion: {240, 200, 40, 255}}
	struckColor   = color.RGBA{120, 100, 80, 255}
	pipeColor     = color.RGBA{40, 180, 60, 255}
	enemyColor    = color.RGBA{150, 60, 30, 255}
	hazardColor   = color.RGBA{200, 200, 210, 255}
	fireballColor = color.RGBA{255, 130, 30, 255}
	exitColor     = color.RGBA{250, 250, 250, 255}
)

// cameraOffset returns the world-to-screen translation for this frame.
func cameraOffset(w donburi.World) (float64, float64) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(entry)
	return camera.Position.X - float64(cfg.Screen.Width)/2, camera.Position.Y - float64(cfg.Screen.Height)/2
}

func drawRect(screen *ebiten.Image, ox, oy, x, y, w, h float64, col color.Color) {
	sx := x - ox
	sy := y - oy
	if sx+w < 0 || sx > float64(cfg.Screen.Width) || sy+h < 0 || sy > float64(cfg.Screen.Height) {
		return
	}
	vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(w), float32(h), col, false)
}

// DrawWorld renders the whole playfield back-to-front as flat rects: sky,
// fluids, terrain, entities, character, particles.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(skyColor)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	layout := components.Level.Get(levelEntry).Layout
	if layout == nil {
		return
	}

	ox, oy := cameraOffset(ecs.World)

	if layout.WaterLine > 0 {
		drawRect(screen, ox, oy, ox, layout.WaterLine, float64(cfg.Screen.Width), float64(cfg.Screen.Height), waterColor)
	}

	components.Surface.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		col, found := surfaceColors[components.Surface.Get(e).Kind]
		if !found {
			col = surfaceColors[level.SurfaceGround]
		}
		drawRect(screen, ox, oy, obj.X, obj.Y, obj.W, obj.H, col)
	})

	components.Block.Each(ecs.World, func(e *donburi.Entry) {
		block := components.Block.Get(e)
		obj := components.Object.Get(e)
		if block.Kind == level.BlockHidden && !block.Struck {
			return
		}
		col := blockColors[block.Kind]
		if block.Struck {
			col = struckColor
		}
		drawRect(screen, ox, oy, obj.X, obj.Y, obj.W, obj.H, col)
	})

	components.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawRect(screen, ox, oy, obj.X, obj.Y, obj.W, obj.H, pipeColor)
	})

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawRect(screen, ox, oy, obj.X, obj.Y, obj.W, obj.H, enemyColor)
	})

	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		if hazard.Kind == level.HazardQuicksand || !hazard.Active {
			return
		}
		obj := components.Object.Get(e)
		drawRect(screen, ox, oy, obj.X, obj.Y, obj.W, obj.H, hazardColor)
	})

	components.Fireball.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawRect(screen, ox, oy, obj.X, obj.Y, obj.W, obj.H, fireballColor)
	})

	components.Exit.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawRect(screen, ox, oy, obj.X, obj.Y, obj.W, obj.H, exitColor)
	})

	if layout.LavaLine > 0 {
		drawRect(screen, ox, oy, ox, layout.LavaLine, float64(cfg.Screen.Width), float64(cfg.Screen.Height), lavaColor)
	}

	drawPlayer(ecs, screen, ox, oy)
	drawParticles(ecs, screen, ox, oy)
}

func drawPlayer(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	// Post-damage invincibility flickers; star invincibility cycles hue.
	if player.InvulnFrames > 0 && (player.InvulnFrames/4)%2 == 0 {
		return
	}
	col := cfg.TierColor(player.Tier)
	if player.Starred() {
		phase := uint8((player.StarFrames * 16) % 255)
		col = color.RGBA{phase, 255 - phase, 255, 255}
	}

	// Walk-cycle bob stands in for sprite frames.
	bob := 0.0
	if components.State.Get(playerEntry).AnimFrame() == 1 {
		bob = 1
	}
	drawRect(screen, ox, oy, obj.X, obj.Y-bob, obj.W, obj.H+bob, col)
}

func drawParticles(ecs *ecs.ECS, screen *ebiten.Image, ox, oy float64) {
	system := photonSystem(ecs.World)
	if system == nil {
		return
	}
	for i := range system.Particles() {
		p := &system.Particles()[i]
		alpha := uint8(p.Life)
		col := color.RGBA{p.Color.R, p.Color.G, p.Color.B, alpha}
		drawRect(screen, ox, oy, p.Pos.X-1, p.Pos.Y-1, 2, 2, col)
	}
}
