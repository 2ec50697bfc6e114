package component

import "image/color"

// PowerUpKind: тип бонуса
type PowerUpKind string

const (
	PowerUpHealth PowerUpKind = "health" // Снимает одно столкновение
	PowerUpWeapon PowerUpKind = "weapon" // Только очки, без улучшения оружия
)

// PowerUp: бонус, выпадающий из врагов.
type PowerUp struct {
	Rect
	Speed   float64
	Kind    PowerUpKind
	Color   color.RGBA
	Removed bool
}
