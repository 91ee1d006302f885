package components

import "github.com/yohamta/donburi"

type GameOverData struct {
	FinalScore int
	HighScore  int
}

var GameOver = donburi.NewComponentType[GameOverData]()
