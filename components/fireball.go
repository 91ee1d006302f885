package components

import "github.com/yohamta/donburi"

type FireballData struct {
	SpeedX float64
	SpeedY float64
	TTL    int
}

var Fireball = donburi.NewComponentType[FireballData]()
