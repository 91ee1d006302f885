package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Block            = donburi.NewTag().SetName("Block")
	Enemy            = donburi.NewTag().SetName("Enemy")
	Hazard           = donburi.NewTag().SetName("Hazard")
	Pipe             = donburi.NewTag().SetName("Pipe")
	Fireball         = donburi.NewTag().SetName("Fireball")
	Exit             = donburi.NewTag().SetName("Exit")
	BossRoomWall     = donburi.NewTag().SetName("BossRoomWall")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvBlock    = "block"
	ResolvPlayer   = "player"
	ResolvEnemy    = "enemy"
	ResolvHazard   = "hazard"
	ResolvPipe     = "pipe"
	ResolvFireball = "fireball"
	ResolvExit     = "exit"
)
