package factory

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	"github.com/lunarbyte/hopper/level"
	"github.com/lunarbyte/hopper/tags"
)

func testLayout() *level.Layout {
	return &level.Layout{
		Width: 2048,
		Platforms: []level.Platform{
			{Rect: level.Rect{X: 0, Y: 500, W: 400, H: 100}, Kind: level.SurfaceGround, Collidable: true},
			{Rect: level.Rect{X: 500, Y: 380, W: 100, H: 20}, Kind: level.SurfaceFloating, Collidable: true, Floating: true},
		},
		Blocks: []level.Block{
			{Rect: level.Rect{X: 100, Y: 350, W: 16, H: 16}, Kind: level.BlockQuestion, Contains: level.RewardCoin},
			{Rect: level.Rect{X: 120, Y: 350, W: 16, H: 16}, Kind: level.BlockHidden, Contains: level.RewardStar},
		},
		Enemies: []level.Enemy{
			{Kind: level.Goomba, X: 300, Y: 470, PatrolMin: 200, PatrolMax: 400, Scale: 1},
		},
		Pipes: []level.Pipe{
			{Rect: level.Rect{X: 700, Y: 440, W: 48, H: 60}, Enterable: true, Destination: "bonus", Connected: -1},
		},
		Hazards: []level.Hazard{
			{Kind: level.HazardThwomp, X: 900, Y: 200, TriggerDistance: 100, FallSpeed: 6},
		},
		BossRoom: &level.BossRoom{Rect: level.Rect{X: 1700, Y: 200, W: 300, H: 350}, Boss: "boom-boom"},
		Exit:     level.Exit{X: 1900, Y: 400, Kind: level.ExitBoss},
	}
}

func countTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(e *donburi.Entry) { n++ })
	return n
}

func TestBuildLevelSpawnsEveryPlacement(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 2048, 1024, 16, 16)

	BuildLevel(e, testLayout())

	checks := []struct {
		name string
		tag  *donburi.ComponentType[donburi.Tag]
		want int
	}{
		{"platforms", tags.Platform, 1},
		{"floating platforms", tags.FloatingPlatform, 1},
		{"blocks", tags.Block, 2},
		{"enemies", tags.Enemy, 1},
		{"pipes", tags.Pipe, 1},
		{"hazards", tags.Hazard, 1},
		{"exits", tags.Exit, 1},
		{"boss room walls", tags.BossRoomWall, 2},
	}
	for _, c := range checks {
		if got := countTagged(e.World, c.tag); got != c.want {
			t.Errorf("%s spawned = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestClearLevelKeepsSingletons(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 2048, 1024, 16, 16)
	CreateCamera(e)
	CreateScore(e)
	CreatePlayer(e, 100, 400)

	BuildLevel(e, testLayout())
	ClearLevel(e)

	for _, tag := range []*donburi.ComponentType[donburi.Tag]{
		tags.Platform, tags.FloatingPlatform, tags.Block, tags.Enemy,
		tags.Hazard, tags.Pipe, tags.Fireball, tags.Exit, tags.BossRoomWall,
	} {
		if got := countTagged(e.World, tag); got != 0 {
			t.Errorf("%d level entities survived ClearLevel", got)
		}
	}

	if _, ok := components.Player.First(e.World); !ok {
		t.Error("player removed by ClearLevel")
	}
	if _, ok := components.Camera.First(e.World); !ok {
		t.Error("camera removed by ClearLevel")
	}
	if _, ok := components.Score.First(e.World); !ok {
		t.Error("score removed by ClearLevel")
	}
}
