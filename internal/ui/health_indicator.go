// internal/ui/health_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCellSize    = 16.0
	HealthCellSpacing = 6.0
	healthBorderWidth = 1
)

var (
	healthFullColor  = color.RGBA{0, 255, 255, 230}
	healthLowColor   = color.RGBA{255, 40, 90, 230}
	healthEmptyColor = color.RGBA{20, 20, 40, 200}
	healthBorder     = color.RGBA{255, 255, 255, 200}
)

// HealthIndicator отображает оставшиеся попадания игрока рядом ячеек.
type HealthIndicator struct {
	X, Y float32
}

// NewHealthIndicator создает новый индикатор здоровья.
func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// CellColor возвращает цвет j-й ячейки. Последняя живая ячейка красная.
func CellColor(j, health int) color.RGBA {
	switch {
	case j >= health:
		return healthEmptyColor
	case health == 1:
		return healthLowColor
	default:
		return healthFullColor
	}
}

// Draw рисует maxHealth ячеек, из которых health заполнены.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	for j := 0; j < maxHealth; j++ {
		x := i.X + float32(j)*(HealthCellSize+HealthCellSpacing)
		vector.DrawFilledRect(screen, x, i.Y, HealthCellSize, HealthCellSize, CellColor(j, health), true)
		vector.StrokeRect(screen, x, i.Y, HealthCellSize, HealthCellSize, healthBorderWidth, healthBorder, true)
	}
}

// Width возвращает общую ширину индикатора.
func (i *HealthIndicator) Width(maxHealth int) float32 {
	if maxHealth <= 0 {
		return 0
	}
	return float32(maxHealth)*HealthCellSize + float32(maxHealth-1)*HealthCellSpacing
}
