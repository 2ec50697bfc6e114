// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD: счёт, уровень и здоровье в левом верхнем углу.
type HUD struct {
	face   font.Face
	health *HealthIndicator
}

func NewHUD(face font.Face) *HUD {
	healthY := float32(config.HUDMargin + config.HUDLineHeight*2 + 4)
	return &HUD{
		face:   face,
		health: NewHealthIndicator(config.HUDMargin+130, healthY),
	}
}

// Lines возвращает строки HUD в порядке вывода.
func Lines(prog component.Progression, healthLeft int) []string {
	return []string{
		fmt.Sprintf("SCORE: %d", prog.Score),
		fmt.Sprintf("LEVEL: %d", prog.Level),
		fmt.Sprintf("HEALTH: %d", healthLeft),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, prog component.Progression, healthLeft int) {
	ascent := h.face.Metrics().Ascent.Ceil()
	for i, line := range Lines(prog, healthLeft) {
		y := config.HUDMargin + i*config.HUDLineHeight + ascent
		text.Draw(screen, line, h.face, config.HUDMargin, y, config.TextLightColor)
	}
	h.health.Draw(screen, healthLeft, config.MaxPlayerCollisions)
}
