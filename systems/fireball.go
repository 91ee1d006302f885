package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/lunarbyte/hopper/components"
	cfg "github.com/lunarbyte/hopper/config"
	"github.com/lunarbyte/hopper/events"
	"github.com/lunarbyte/hopper/systems/factory"
	"github.com/lunarbyte/hopper/tags"
)

// UpdateFireballs moves fireballs, skips them off the ground, and defeats
// the first enemy each one touches. A fireball dies on a wall hit, on an
// enemy hit, or when its TTL runs out.
func UpdateFireballs(ecs *ecs.ECS) {
	var dead []*donburi.Entry

	components.Fireball.Each(ecs.World, func(e *donburi.Entry) {
		fireball := components.Fireball.Get(e)
		obj := components.Object.Get(e)

		fireball.TTL--
		if fireball.TTL <= 0 {
			dead = append(dead, e)
			return
		}

		fireball.SpeedY += cfg.Fireball.Gravity

		if check := obj.Check(fireball.SpeedX, 0, tags.ResolvSolid, tags.ResolvPipe); check != nil {
			dead = append(dead, e)
			return
		}
		obj.X += fireball.SpeedX

		if check := obj.Check(0, fireball.SpeedY, tags.ResolvSolid, tags.ResolvPlatform, tags.ResolvPipe); check != nil && fireball.SpeedY > 0 {
			// Skip off the ground.
			obj.Y += check.ContactWithObject(check.Objects[0]).Y()
			fireball.SpeedY = -cfg.Fireball.Bounce
		} else {
			obj.Y += fireball.SpeedY
		}
		obj.Update()

		if check := obj.Check(0, 0, tags.ResolvEnemy); check != nil {
			for _, enemyObj := range check.ObjectsByTags(tags.ResolvEnemy) {
				entry, ok := enemyObj.Data.(*donburi.Entry)
				if !ok || !entry.Valid() {
					continue
				}
				x := enemyObj.X + enemyObj.W/2
				y := enemyObj.Y + enemyObj.H/2
				enemyObj.Space.Remove(enemyObj)
				ecs.World.Remove(entry.Entity())
				events.EnemyDefeated.Publish(ecs.World, events.EnemyDefeatedData{X: x, Y: y})
				events.PointsAwarded.Publish(ecs.World, events.PointsAwardedData{
					Amount: cfg.Fireball.Points, X: x, Y: y,
				})
				dead = append(dead, e)
				break
			}
		}
	})

	space := factory.GetSpace(ecs)
	for _, e := range dead {
		if !e.Valid() {
			continue
		}
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
		ecs.World.Remove(e.Entity())
	}
}
