package components

import "github.com/yohamta/donburi"

type ScoreData struct {
	Score int
	Coins int
}

var Score = donburi.NewComponentType[ScoreData]()
