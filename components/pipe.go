package components

import "github.com/yohamta/donburi"

type PipeData struct {
	Enterable   bool
	Destination string
	Connected   int // index of the connected pipe in a maze, -1 if none
	Index       int // this pipe's index in the layout
}

var Pipe = donburi.NewComponentType[PipeData]()
