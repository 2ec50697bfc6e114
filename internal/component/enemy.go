package component

import "image/color"

// Enemy представляет обычного врага, падающего сверху.
type Enemy struct {
	Rect
	Speed   float64
	Health  int
	Type    string
	Color   color.RGBA
	Removed bool
}

// Dead сообщает, что здоровье врага исчерпано.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}
