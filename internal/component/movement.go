// component/movement.go
package component

// Rect: ограничивающий прямоугольник сущности
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CenterX возвращает X центра прямоугольника
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY возвращает Y центра прямоугольника
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}
