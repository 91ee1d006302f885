package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/tags"
)

const (
	cameraFollowSmoothing  = 0.1
	cameraLookAheadX       = 60.0
	cameraLookAheadSmooth  = 0.05
	cameraSpeedThreshold   = 0.5
	autoscrollLeadDistance = 200.0
)

// UpdateCamera follows the character with smoothed look-ahead, clamped to
// the level bounds. Autoscroll levels instead push the camera at the
// layout's fixed scroll speed.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Layout == nil {
		return
	}

	screenWidth := float64(cfg.Screen.Width)
	screenHeight := float64(cfg.Screen.Height)
	levelWidth := levelData.Layout.Width

	if levelData.Layout.ScrollSpeed > 0 {
		// Autoscroll: the camera leads on its own; the character must keep
		// up or get pushed off the left edge by the collision clamp.
		camera.Position.X += levelData.Layout.ScrollSpeed
		camera.Position.X = math.Min(camera.Position.X, levelWidth-screenWidth/2)
		camera.Position.Y = screenHeight / 2
		return
	}

	if math.Abs(physics.SpeedX) > cameraSpeedThreshold {
		targetLookAhead := player.Facing * cameraLookAheadX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * cameraLookAheadSmooth
	}

	targetX := playerObject.X + camera.LookAheadX
	// Levels are one screen tall, so the camera only tracks horizontally.
	targetY := screenHeight / 2

	minCameraX := screenWidth / 2
	maxCameraX := math.Max(minCameraX, levelWidth-screenWidth/2)
	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))

	camera.Position.X += (targetX - camera.Position.X) * cameraFollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cameraFollowSmoothing
}
