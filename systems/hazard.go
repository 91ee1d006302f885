package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/level"
)

// UpdateHazards advances hazard cycles and applies contact damage. Hazards
// never die; they run for the whole level lifetime.
func UpdateHazards(ecs *ecs.ECS) {
	playerEntry, hasPlayer := components.Player.First(ecs.World)
	var playerObj *components.ObjectData
	if hasPlayer {
		playerObj = components.Object.Get(playerEntry)
	}

	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		hazard := components.Hazard.Get(e)
		obj := components.Object.Get(e)

		switch hazard.Kind {
		case level.HazardThwomp:
			updateThwomp(hazard, obj, playerObj)
		case level.HazardRotoDisc, level.HazardFirebar:
			// Both trace a circle around a fixed center; the firebar's
			// damage length is handled by the overlap box.
			hazard.Angle += hazard.Speed
			obj.X = hazard.CenterX + math.Cos(hazard.Angle)*hazard.Radius
			obj.Y = hazard.CenterY + math.Sin(hazard.Angle)*hazard.Radius
		case level.HazardIcicle:
			updateIcicle(hazard, obj, playerObj)
		case level.HazardLavaBubble:
			updateLavaBubble(hazard, obj)
		case level.HazardLaser, level.HazardFlameJet:
			// Toggle on a fixed duty cycle.
			hazard.Timer++
			hazard.Active = (hazard.Timer/60)%2 == 0
		case level.HazardSpikeCeiling:
			obj.Y = hazard.BaseY + math.Sin(float64(hazard.Timer)*0.02)*50
			hazard.Timer++
		case level.HazardAngrySun:
			updateAngrySun(hazard, obj, playerObj)
		case level.HazardCannon:
			// The muzzle is dangerous for a short burst every fire cycle.
			hazard.Timer++
			if hazard.FireRate > 0 {
				burstFrames := cfg.Hazard.CannonBurstSize * 5
				hazard.Active = hazard.Timer%hazard.FireRate < burstFrames
			}
		}

		obj.Update()

		// Quicksand sinks rather than damages; everything else hurts on
		// contact while active.
		if hazard.Kind == level.HazardQuicksand || !hazard.Active {
			return
		}
		if hasPlayer && overlaps(obj, playerObj) {
			DamagePlayer(ecs, playerEntry)
		}
	})
}

func overlaps(a, b *components.ObjectData) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// updateThwomp runs the classic crusher cycle: wait, slam when the
// character crosses underneath, rest, rise back.
func updateThwomp(hazard *components.HazardData, obj *components.ObjectData, player *components.ObjectData) {
	switch hazard.Phase {
	case components.ThwompWaiting:
		if player != nil && math.Abs((player.X+player.W/2)-(obj.X+obj.W/2)) < hazard.TriggerDistance {
			hazard.Phase = components.ThwompFalling
		}
	case components.ThwompFalling:
		obj.Y += hazard.FallSpeed
		if obj.Y >= cfg.Generator.GroundY-obj.H {
			obj.Y = cfg.Generator.GroundY - obj.H
			hazard.Phase = components.ThwompResting
			hazard.Timer = cfg.Hazard.ThwompRestFrames
		}
	case components.ThwompResting:
		hazard.Timer--
		if hazard.Timer <= 0 {
			hazard.Phase = components.ThwompRising
		}
	case components.ThwompRising:
		obj.Y -= cfg.Hazard.ThwompRiseSpeed
		if obj.Y <= hazard.BaseY {
			obj.Y = hazard.BaseY
			hazard.Phase = components.ThwompWaiting
		}
	}
}

// updateIcicle hangs until the character walks under it, then drops and
// respawns at its anchor after leaving the screen.
func updateIcicle(hazard *components.HazardData, obj *components.ObjectData, player *components.ObjectData) {
	falling := hazard.Phase == components.ThwompFalling
	if !falling {
		if player != nil && math.Abs((player.X+player.W/2)-(obj.X+obj.W/2)) < hazard.TriggerDistance {
			hazard.Phase = components.ThwompFalling
			hazard.FallSpeed = 0
		}
		return
	}
	hazard.FallSpeed += cfg.Hazard.IcicleGravity
	obj.Y += hazard.FallSpeed
	if obj.Y > float64(cfg.Screen.Height)+50 {
		obj.Y = hazard.BaseY
		hazard.Phase = components.ThwompWaiting
	}
}

// updateLavaBubble arcs out of the lava on a fixed period.
func updateLavaBubble(hazard *components.HazardData, obj *components.ObjectData) {
	hazard.Timer++
	period := cfg.Hazard.LavaBubblePeriod * 2
	phase := float64(hazard.Timer%period) / float64(period)
	// Parabolic arc: 0 at the lava line, peak at mid-cycle.
	arc := 4 * phase * (1 - phase)
	obj.Y = hazard.BaseY - arc*hazard.Height
	hazard.Active = arc > 0.05
}

// updateAngrySun circles overhead and periodically swoops at the character.
func updateAngrySun(hazard *components.HazardData, obj *components.ObjectData, player *components.ObjectData) {
	hazard.Timer++
	if player == nil {
		return
	}
	cycle := hazard.Timer % hazard.FireRate
	if cycle < hazard.FireRate/3 {
		// Swoop: dive toward the character.
		dx := (player.X - obj.X)
		dy := (player.Y - obj.Y)
		dist := math.Hypot(dx, dy)
		if dist > 1 {
			obj.X += dx / dist * cfg.Hazard.SunSwoopSpeed
			obj.Y += dy / dist * cfg.Hazard.SunSwoopSpeed
		}
	} else {
		// Climb back to the anchor height.
		obj.Y += (hazard.BaseY - obj.Y) * 0.05
		obj.X += (player.X + 150 - obj.X) * 0.02
	}
}
