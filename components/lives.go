package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives int
}

var Lives = donburi.NewComponentType[LivesData]()
