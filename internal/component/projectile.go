// internal/component/projectile.go
package component

import "image/color"

// Trajectory задаёт закрытый набор законов движения пули: Straight или Patterned.
type Trajectory interface {
	// Step возвращает смещение пули за один кадр.
	Step() (dx, dy float64)
	trajectory()
}

// Straight: движение вдоль оси Y. Dir = -1 вверх, +1 вниз.
type Straight struct {
	Speed float64
	Dir   float64
}

func (s Straight) Step() (float64, float64) { return 0, s.Dir * s.Speed }
func (Straight) trajectory()                {}

// Patterned: произвольный вектор скорости (веерная атака босса).
type Patterned struct {
	VX, VY float64
}

func (p Patterned) Step() (float64, float64) { return p.VX, p.VY }
func (Patterned) trajectory()                {}

// Bullet представляет летящую пулю игрока или босса.
type Bullet struct {
	Rect
	Trajectory    Trajectory
	Damage        int
	IsEnemyBullet bool // Пули босса бьют только игрока
	Color         color.RGBA
	Removed       bool
}
