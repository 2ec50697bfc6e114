// internal/component/visual.go
package component

import "image/color"

// Particle: чисто визуальная искра, на игру не влияет.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   color.RGBA
	Life    int // Оставшиеся кадры
	MaxLife int
	Removed bool
}

// Alpha: прозрачность частицы по оставшейся жизни.
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
