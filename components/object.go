package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// CenterY returns the vertical center of the object's rectangle.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}
