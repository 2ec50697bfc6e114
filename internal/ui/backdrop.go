// internal/ui/backdrop.go
package ui

import (
	"math"

	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/utils"
	"go-cyber-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	buildingWidthShare = 0.06 // Доля ширины экрана на одно здание
	buildingStepShare  = 0.07
	rainColumnLength   = 120.0
	rainColumnWidth    = 2.0
	glowPeriod         = 2.0 // Секунды на цикл подсветки окон
)

type building struct {
	x, width, height float64
	glowOffset       float64
}

type rainColumn struct {
	x        float64
	delay    float64
	duration float64
}

// Backdrop рисует декорации заднего плана: силуэт города и "цифровой дождь".
// Все случайные параметры берутся из переданного генератора один раз при создании.
type Backdrop struct {
	width, height float64
	buildings     []building
	rain          []rainColumn
	elapsed       float64
}

// NewBackdrop раскладывает здания и колонки дождя.
func NewBackdrop(rng utils.Random, width, height float64) *Backdrop {
	b := &Backdrop{width: width, height: height}
	for i := 0; i < config.BuildingCount; i++ {
		b.buildings = append(b.buildings, building{
			x:          float64(i) * buildingStepShare * width,
			width:      buildingWidthShare * width,
			height:     (rng.Float64()*0.4 + 0.2) * height,
			glowOffset: rng.Float64() * glowPeriod,
		})
	}
	for i := 0; i < config.RainColumnCount; i++ {
		b.rain = append(b.rain, rainColumn{
			x:        rng.Float64() * width,
			delay:    rng.Float64() * 3,
			duration: rng.Float64()*2 + 2,
		})
	}
	return b
}

// Update продвигает анимацию на deltaTime секунд.
func (b *Backdrop) Update(deltaTime float64) {
	b.elapsed += deltaTime
}

// RainY возвращает верх i-й колонки дождя в текущий момент.
func (b *Backdrop) RainY(i int) float64 {
	c := b.rain[i]
	progress := math.Mod(b.elapsed+c.delay, c.duration) / c.duration
	return progress*(b.height+rainColumnLength) - rainColumnLength
}

// Draw рисует задний план. Вызывается до сущностей.
func (b *Backdrop) Draw(screen *ebiten.Image) {
	for i := range b.rain {
		vector.DrawFilledRect(screen, float32(b.rain[i].x), float32(b.RainY(i)),
			rainColumnWidth, rainColumnLength, config.RainColor, false)
	}

	for _, bl := range b.buildings {
		y := b.height - bl.height
		vector.DrawFilledRect(screen, float32(bl.x), float32(y), float32(bl.width), float32(bl.height), config.BuildingColor, false)

		glow := 0.5 + 0.5*math.Sin(2*math.Pi*(b.elapsed+bl.glowOffset)/glowPeriod)
		edge := render.Fade(config.EnemyColor, 0.15+0.25*glow)
		vector.StrokeLine(screen, float32(bl.x), float32(y), float32(bl.x+bl.width), float32(y), config.StrokeWidth, edge, false)
	}
}

// Buildings возвращает число зданий.
func (b *Backdrop) Buildings() int { return len(b.buildings) }

// BuildingHeight возвращает высоту i-го здания.
func (b *Backdrop) BuildingHeight(i int) float64 { return b.buildings[i].height }
