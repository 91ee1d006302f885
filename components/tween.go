package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives floating-platform bobbing. The sequence yields a vertical
// offset from BaseY each tick and loops forever.
type TweenData struct {
	Seq   *gween.Sequence
	BaseY float64
}

var Tween = donburi.NewComponentType[TweenData]()
