package level

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lunarbyte/hopper/config"
)

// Generator produces level layouts. Structure is deterministic per archetype;
// content comes from the generator's random source, so two runs only match
// when the config carries an explicit seed.
type Generator struct {
	cfg config.GeneratorConfig
	rng *rand.Rand
	log *log.Logger
}

// NewGenerator returns a generator. A zero seed in the config is replaced
// with a time-based one; a nil logger falls back to the default logger.
func NewGenerator(cfg config.GeneratorConfig, logger *log.Logger) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		log: logger,
	}
}

// GenerateTag resolves an archetype tag from the world table and generates.
// Unknown tags fall back to the standard generator; the fallback is logged so
// bad world data is visible rather than silently absorbed.
func (g *Generator) GenerateTag(world, lvl int, tag string) *Layout {
	arch, ok := ParseArchetype(tag)
	if !ok {
		g.log.Warn("unknown level archetype, falling back to standard",
			"tag", tag, "world", world, "level", lvl)
		arch = Standard
	}
	return g.Generate(world, lvl, arch)
}

// Generate builds a complete layout for one level. Every variant terminates
// by appending a single exit marker at the fixed far-right position.
func (g *Generator) Generate(world, lvl int, arch Archetype) *Layout {
	var layout *Layout
	switch arch {
	case Standard:
		layout = g.generateStandard()
	case Water:
		layout = g.generateWater()
	case Fortress:
		layout = g.generateFortress()
	case Castle:
		layout = g.generateCastle()
	case Airship:
		layout = g.generateAirship()
	case Giant:
		layout = g.generateGiant()
	case Ice:
		layout = g.generateIce()
	case Pipes:
		layout = g.generatePipes()
	case Desert:
		layout = g.generateDesert()
	case Sky:
		layout = g.generateSky()
	case Vehicle:
		layout = g.generateVehicle()
	case FinalBoss:
		layout = g.generateFinalBoss()
	default:
		g.log.Warn("unknown level archetype, falling back to standard",
			"archetype", int(arch), "world", world, "level", lvl)
		layout = g.generateStandard()
		arch = Standard
	}

	layout.Archetype = arch
	layout.Exit = Exit{X: g.cfg.ExitX, Y: g.cfg.ExitY, Kind: exitKind(arch)}
	layout.PhotonZones = g.photonZones(arch, layout.Width)
	return layout
}

func exitKind(arch Archetype) ExitKind {
	switch arch {
	case Fortress, Castle, FinalBoss:
		return ExitBoss
	case Pipes:
		return ExitPipe
	default:
		return ExitFlag
	}
}

// generateStandard is the shared baseline: the horizontal extent is tiled in
// fixed-width segments and each segment independently rolls for terrain,
// a floating platform, a block cluster, an enemy and a pipe. Placements are
// never collision-checked against each other.
func (g *Generator) generateStandard() *Layout {
	r := g.rng
	layout := &Layout{Width: g.cfg.LevelWidth}
	groundY := g.cfg.GroundY
	seg := g.cfg.SegmentWidth

	for x := 0.0; x < layout.Width; x += seg {
		// Random gaps in the ground.
		if r.Float64() > 0.8 {
			continue
		}

		layout.Platforms = append(layout.Platforms, Platform{
			Rect:       Rect{X: x, Y: groundY, W: seg, H: 100},
			Kind:       SurfaceGround,
			Collidable: true,
		})

		if r.Float64() > 0.6 {
			platY := 300 + r.Float64()*150
			layout.Platforms = append(layout.Platforms, Platform{
				Rect:       Rect{X: x + 50, Y: platY, W: 100, H: 20},
				Kind:       SurfaceFloating,
				Collidable: true,
				Floating:   true,
			})
		}

		if r.Float64() > 0.7 {
			blockY := 300 + r.Float64()*100
			count := 1 + r.Intn(4)
			for i := 0; i < count; i++ {
				kind := g.pickBlockKind()
				layout.Blocks = append(layout.Blocks, Block{
					Rect:     Rect{X: x + float64(i)*40, Y: blockY, W: 32, H: 32},
					Kind:     kind,
					Contains: g.pickReward(kind),
				})
			}
		}

		if r.Float64() > 0.5 {
			kind := pick(r, Goomba, KoopaGreen, KoopaRed, HammerBro)
			layout.Enemies = append(layout.Enemies, Enemy{
				Kind:      kind,
				X:         x + 20 + r.Float64()*160,
				Y:         groundY - 30,
				VX:        -1,
				PatrolMin: x,
				PatrolMax: x + seg,
				Scale:     1,
				PipeIndex: -1,
			})
		}

		if r.Float64() > 0.8 {
			pipeH := 60 + r.Float64()*90
			layout.Pipes = append(layout.Pipes, Pipe{
				Rect:        Rect{X: x + 100, Y: groundY - pipeH, W: 64, H: pipeH},
				Enterable:   r.Float64() > 0.5,
				Destination: pick(r, "bonus", "secret"),
				Connected:   -1,
			})
		}
	}

	return layout
}

func (g *Generator) pickBlockKind() BlockKind {
	switch v := g.rng.Float64(); {
	case v < 0.5:
		return BlockQuestion
	case v < 0.85:
		return BlockBrick
	default:
		return BlockHidden
	}
}

// pickReward draws a block's contents from a weighted set. Bricks always
// carry a coin; question and hidden blocks roll the full table.
func (g *Generator) pickReward(kind BlockKind) Reward {
	if kind == BlockBrick {
		return RewardCoin
	}
	switch v := g.rng.Float64(); {
	case v < 0.50:
		return RewardCoin
	case v < 0.70:
		return RewardMushroom
	case v < 0.85:
		return RewardFlower
	case v < 0.95:
		return RewardLeaf
	default:
		return RewardStar
	}
}

func (g *Generator) generateWater() *Layout {
	r := g.rng
	layout := g.generateStandard()
	layout.WaterLine = g.cfg.WaterLine
	layout.Current = -0.5 + r.Float64()

	for i := 0; i < 20; i++ {
		layout.Enemies = append(layout.Enemies, Enemy{
			Kind:      pick(r, CheepCheep, Blooper, BigBertha),
			X:         100 + r.Float64()*(layout.Width-200),
			Y:         320 + r.Float64()*180,
			VX:        -2 + r.Float64()*4,
			VY:        -1 + r.Float64()*2,
			PatrolMin: 0,
			PatrolMax: layout.Width,
			Scale:     1,
			PipeIndex: -1,
		})
	}
	return layout
}

// generateFortress replaces the baseline with enclosed floor+ceiling
// segments, crusher and rotating hazards, and a boss room at the far end.
func (g *Generator) generateFortress() *Layout {
	r := g.rng
	layout := &Layout{Width: 3000}

	for x := 0.0; x < 3000; x += 300 {
		layout.Platforms = append(layout.Platforms,
			Platform{
				Rect:       Rect{X: x, Y: 550, W: 300, H: 50},
				Kind:       SurfaceFortressFloor,
				Collidable: true,
			},
			Platform{
				Rect:       Rect{X: x, Y: 0, W: 300, H: 50},
				Kind:       SurfaceFortressCeiling,
				Collidable: true,
			},
		)

		if r.Float64() > 0.6 {
			layout.Hazards = append(layout.Hazards, Hazard{
				Kind:            HazardThwomp,
				X:               x + 150,
				Y:               100,
				TriggerDistance: 100,
				FallSpeed:       10,
			})
		}

		if r.Float64() > 0.5 {
			layout.Hazards = append(layout.Hazards, Hazard{
				Kind:    HazardRotoDisc,
				CenterX: x + 150,
				CenterY: 300,
				Radius:  100,
				Speed:   0.05,
			})
		}

		if r.Float64() > 0.4 {
			layout.Enemies = append(layout.Enemies, Enemy{
				Kind:      DryBones,
				X:         x + 100,
				Y:         500,
				VX:        -0.5,
				PatrolMin: x,
				PatrolMax: x + 300,
				Scale:     1,
				PipeIndex: -1,
			})
		}
	}

	layout.BossRoom = &BossRoom{
		Rect: Rect{X: 2700, Y: 200, W: 300, H: 350},
		Boss: g.cfg.BossRoomBoss,
	}
	return layout
}

func (g *Generator) generateCastle() *Layout {
	r := g.rng
	layout := g.generateFortress()
	layout.LavaLine = g.cfg.LavaLine

	for x := 0.0; x < layout.Width; x += 200 {
		if r.Float64() > 0.6 {
			layout.Hazards = append(layout.Hazards, Hazard{
				Kind:   HazardLavaBubble,
				X:      x,
				Y:      layout.LavaLine,
				Timer:  r.Intn(config.Hazard.LavaBubblePeriod),
				Height: 100 + r.Float64()*200,
			})
		}
	}
	// The castle boss label comes from the world table, not the generator.
	layout.BossRoom.Boss = ""
	return layout
}

func (g *Generator) generateAirship() *Layout {
	r := g.rng
	layout := &Layout{Width: 5000, ScrollSpeed: 2}

	for x := 0.0; x < 5000; x += 500 {
		layout.Platforms = append(layout.Platforms, Platform{
			Rect:       Rect{X: x, Y: 400, W: 400, H: 30},
			Kind:       SurfaceAirshipDeck,
			Collidable: true,
		})

		if r.Float64() > 0.5 {
			layout.Platforms = append(layout.Platforms, Platform{
				Rect:       Rect{X: x + 200, Y: 300, W: 100, H: 20},
				Kind:       SurfaceMetal,
				Collidable: true,
			})
		}

		for cx := x; cx < x+400; cx += 100 {
			if r.Float64() > 0.6 {
				layout.Hazards = append(layout.Hazards, Hazard{
					Kind:     HazardCannon,
					X:        cx,
					Y:        380,
					FireRate: 60 + r.Intn(120),
					Timer:    r.Intn(120),
				})
			}
		}

		if r.Float64() > 0.5 {
			layout.Enemies = append(layout.Enemies, Enemy{
				Kind:        RockyWrench,
				X:           x + 50 + r.Float64()*300,
				Y:           400 - config.Enemy.Height,
				PatrolMin:   x,
				PatrolMax:   x + 400,
				Scale:       1,
				PipeIndex:   -1,
				EmergeTimer: r.Intn(120),
			})
		}
	}
	return layout
}

// generateGiant scales every baseline rectangle and position by a fixed
// factor anchored to a baseline height reference: y' = (y-anchor)*s + anchor.
func (g *Generator) generateGiant() *Layout {
	layout := g.generateStandard()
	s := g.cfg.GiantScale
	anchor := g.cfg.GiantAnchorY

	for i := range layout.Platforms {
		layout.Platforms[i].Rect = scaleRect(layout.Platforms[i].Rect, s, anchor)
	}
	for i := range layout.Blocks {
		layout.Blocks[i].Rect = scaleRect(layout.Blocks[i].Rect, s, anchor)
	}
	for i := range layout.Pipes {
		layout.Pipes[i].Rect = scaleRect(layout.Pipes[i].Rect, s, anchor)
	}
	for i := range layout.Enemies {
		e := &layout.Enemies[i]
		e.Scale = s
		e.X *= s
		e.Y = (e.Y-anchor)*s + anchor
		e.PatrolMin *= s
		e.PatrolMax *= s
	}
	layout.Width *= s
	return layout
}

func scaleRect(r Rect, s, anchor float64) Rect {
	return Rect{
		X: r.X * s,
		Y: (r.Y-anchor)*s + anchor,
		W: r.W * s,
		H: r.H * s,
	}
}

// generateIce overrides every platform's friction to a near-zero value and
// swaps in the ice enemy set plus proximity-triggered icicles.
func (g *Generator) generateIce() *Layout {
	r := g.rng
	layout := g.generateStandard()

	for i := range layout.Platforms {
		layout.Platforms[i].Friction = g.cfg.IceFriction
		layout.Platforms[i].Kind = SurfaceIce
	}

	layout.Enemies = layout.Enemies[:0]
	for i := 0; i < 15; i++ {
		layout.Enemies = append(layout.Enemies, Enemy{
			Kind:      pick(r, Flurry, Cooligan, IceBro),
			X:         200 + r.Float64()*(layout.Width-400),
			Y:         200 + r.Float64()*200,
			VX:        -1 + r.Float64()*2,
			PatrolMin: 0,
			PatrolMax: layout.Width,
			Scale:     1,
			PipeIndex: -1,
		})
	}

	for x := 0.0; x < layout.Width; x += 150 {
		if r.Float64() > 0.6 {
			layout.Hazards = append(layout.Hazards, Hazard{
				Kind:            HazardIcicle,
				X:               x,
				Y:               50,
				TriggerDistance: 50,
			})
		}
	}
	return layout
}

// generatePipes builds a pipe maze with random inter-pipe connections,
// piranha plants guarding some of them, and metal walkways in between.
func (g *Generator) generatePipes() *Layout {
	r := g.rng
	layout := &Layout{Width: g.cfg.LevelWidth}

	for x := 0.0; x < layout.Width; x += 250 {
		for y := 100.0; y < 500; y += 150 {
			if r.Float64() <= 0.3 {
				continue
			}
			pipeH := 60 + r.Float64()*140
			pipe := Pipe{
				Rect:      Rect{X: x, Y: y, W: 60, H: pipeH},
				Connected: -1,
			}
			idx := len(layout.Pipes)
			if idx > 0 && r.Float64() > 0.5 {
				pipe.Connected = r.Intn(idx)
			}
			layout.Pipes = append(layout.Pipes, pipe)

			if r.Float64() > 0.5 {
				layout.Enemies = append(layout.Enemies, Enemy{
					Kind:        PiranhaPlant,
					X:           x + 30,
					Y:           y,
					PipeIndex:   idx,
					Scale:       1,
					EmergeTimer: r.Intn(config.Enemy.EmergePeriod),
				})
			}
		}
	}

	for x := 0.0; x < layout.Width; x += 200 {
		if r.Float64() > 0.4 {
			layout.Platforms = append(layout.Platforms, Platform{
				Rect:       Rect{X: x, Y: 300 + r.Float64()*200, W: 150, H: 20},
				Kind:       SurfaceMetal,
				Collidable: true,
			})
		}
	}
	return layout
}

func (g *Generator) generateDesert() *Layout {
	r := g.rng
	layout := g.generateStandard()

	for x := 500.0; x < 3500; x += 300 {
		if r.Float64() > 0.6 {
			layout.Hazards = append(layout.Hazards, Hazard{
				Kind:      HazardQuicksand,
				Area:      Rect{X: x, Y: g.cfg.GroundY, W: 200, H: 100},
				SinkSpeed: 0.5,
			})
		}
	}

	layout.Hazards = append(layout.Hazards, Hazard{
		Kind:     HazardAngrySun,
		X:        400,
		Y:        100,
		FireRate: 300,
	})

	for i := range layout.Enemies {
		layout.Enemies[i].Kind = pick(r, Pokey, Lakitu, Spiny, FireSnake)
	}
	return layout
}

func (g *Generator) generateSky() *Layout {
	r := g.rng
	layout := &Layout{Width: 5000}

	for x := 0.0; x < 5000; x += 200 {
		speed := 0.0
		if r.Float64() > 0.7 {
			speed = -1 + r.Float64()*2
		}
		layout.Platforms = append(layout.Platforms, Platform{
			Rect:       Rect{X: x, Y: 100 + r.Float64()*350, W: 100 + r.Float64()*150, H: 30},
			Kind:       SurfaceCloud,
			Collidable: true,
			MoveSpeed:  speed,
		})
	}

	for i := 0; i < 30; i++ {
		layout.Enemies = append(layout.Enemies, Enemy{
			Kind:      pick(r, Paragoomba, Paratroopa, Lakitu, Parabeetle),
			X:         100 + r.Float64()*4800,
			Y:         50 + r.Float64()*350,
			VX:        -2 + r.Float64()*4,
			VY:        -1 + r.Float64()*2,
			PatrolMin: 0,
			PatrolMax: 5000,
			Scale:     1,
			PipeIndex: -1,
		})
	}

	for x := 500.0; x < 4500; x += 400 {
		if r.Float64() > 0.5 {
			layout.Platforms = append(layout.Platforms, Platform{
				Rect:       Rect{X: x, Y: 200 + r.Float64()*200, W: 80, H: 20},
				Kind:       SurfaceDonutLift,
				Collidable: true,
			})
		}
	}
	return layout
}

func (g *Generator) generateVehicle() *Layout {
	r := g.rng
	layout := &Layout{Width: 6000, ScrollSpeed: 3}

	for x := 0.0; x < 6000; x += 600 {
		layout.Platforms = append(layout.Platforms, Platform{
			Rect:       Rect{X: x, Y: 450, W: 500, H: 100},
			Kind:       SurfaceHull,
			Collidable: true,
		})

		for cx := x; cx < x+500; cx += 100 {
			if r.Float64() > 0.4 {
				layout.Hazards = append(layout.Hazards, Hazard{
					Kind:     HazardCannon,
					X:        cx,
					Y:        430,
					FireRate: 60 + r.Intn(60),
					Timer:    r.Intn(120),
				})
			}
		}

		if r.Float64() > 0.6 {
			layout.Hazards = append(layout.Hazards, Hazard{
				Kind: HazardFlameJet,
				X:    x + 250,
				Y:    430,
			})
		}
	}
	return layout
}

// generateFinalBoss builds the gauntlet plus an arena with a destructible
// brick floor.
func (g *Generator) generateFinalBoss() *Layout {
	r := g.rng
	layout := &Layout{Width: 3800}

	for x := 0.0; x < 3000; x += 200 {
		layout.Platforms = append(layout.Platforms, Platform{
			Rect:       Rect{X: x, Y: 500, W: 150, H: 50},
			Kind:       SurfaceCastleBlock,
			Collidable: true,
		})

		kind := pick(r, HazardFirebar, HazardThwomp, HazardLaser, HazardSpikeCeiling)
		hz := Hazard{Kind: kind, X: x + 75, Y: 100 + r.Float64()*300}
		switch kind {
		case HazardFirebar:
			hz.CenterX = hz.X
			hz.CenterY = hz.Y
			hz.Length = 3 + r.Intn(4)
			hz.Speed = 0.02 + r.Float64()*0.03
		case HazardThwomp:
			hz.TriggerDistance = 100
			hz.FallSpeed = 12
		case HazardLaser:
			hz.Timer = 60
		case HazardSpikeCeiling:
			hz.FallSpeed = 2
		}
		layout.Hazards = append(layout.Hazards, hz)
	}

	layout.BossRoom = &BossRoom{
		Rect: Rect{X: 3000, Y: 200, W: 800, H: 400},
	}
	for x := 3000.0; x < 3800; x += 40 {
		layout.Blocks = append(layout.Blocks, Block{
			Rect:     Rect{X: x, Y: 500, W: 40, H: 100},
			Kind:     BlockBrick,
			Contains: RewardCoin,
		})
	}
	return layout
}

// photonZones hints ambient particle emission per archetype theme.
func (g *Generator) photonZones(arch Archetype, width float64) []PhotonZone {
	density, col, effect := 500, color.RGBA{100, 255, 100, 255}, "nature"
	switch arch {
	case Water:
		density, col, effect = 1000, color.RGBA{100, 150, 255, 255}, "caustics"
	case Fortress:
		density, col, effect = 300, color.RGBA{255, 100, 100, 255}, "embers"
	case Castle:
		density, col, effect = 800, color.RGBA{255, 150, 50, 255}, "lava-glow"
	case Airship, Vehicle:
		density, col, effect = 600, color.RGBA{200, 200, 255, 255}, "wind"
	case Ice:
		density, col, effect = 700, color.RGBA{200, 230, 255, 255}, "snow"
	case Pipes:
		density, col, effect = 400, color.RGBA{50, 255, 50, 255}, "steam"
	case Desert:
		density, col, effect = 900, color.RGBA{255, 220, 150, 255}, "sand"
	case Sky:
		density, col, effect = 1200, color.RGBA{255, 255, 255, 255}, "wisps"
	case FinalBoss:
		density, col, effect = 1500, color.RGBA{255, 50, 50, 255}, "chaos"
	}

	zoneLen := g.cfg.PhotonZoneLen
	count := int(math.Ceil(width / zoneLen))
	zones := make([]PhotonZone, 0, count)
	for i := 0; i < count; i++ {
		zones = append(zones, PhotonZone{
			Rect:      Rect{X: float64(i) * zoneLen, Y: 0, W: zoneLen, H: 600},
			Density:   density,
			Color:     col,
			Effect:    effect,
			Intensity: 0.5 + g.rng.Float64()*0.5,
		})
	}
	return zones
}

func pick[T any](r *rand.Rand, choices ...T) T {
	return choices[r.Intn(len(choices))]
}
