package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/archetypes"
	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/photon"
)

// CreateCamera spawns the camera singleton.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{})
	return camera
}

// CreateScore spawns the score singleton.
func CreateScore(ecs *ecs.ECS) *donburi.Entry {
	score := archetypes.Score.Spawn(ecs)
	components.Score.SetValue(score, components.ScoreData{})
	return score
}

// CreatePhoton spawns the particle-system singleton. It is created once per
// session; level resets keep the same system so the evolution state spans
// the whole run.
func CreatePhoton(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Photon.Spawn(ecs)
	components.Photon.SetValue(entry, components.PhotonData{
		System: photon.NewSystem(cfg.Particle, float64(cfg.Screen.Width)),
	})
	return entry
}

// CreateSettings spawns the settings singleton with defaults; the settings
// system overwrites it from disk right after.
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, components.SettingsData{
		ParticlesEnabled: true,
		ShowHUD:          true,
	})
	return entry
}

// CreateLevelEntry spawns the level singleton holding the layout slot. The
// level system fills it on the first tick.
func CreateLevelEntry(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		World: 1,
		Level: 1,
	})
	return entry
}
