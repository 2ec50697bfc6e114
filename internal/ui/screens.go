// internal/ui/screens.go
package ui

import (
	"fmt"

	"go-cyber-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	Title     = "CYBERPUNK SHOOTER"
	StartHint = "CLICK OR PRESS SPACE TO START"
)

// Screens рисует заставку и итоговую панель поверх игрового поля.
type Screens struct {
	titleFace font.Face
	hintFace  font.Face
	width     int
	height    int
}

func NewScreens(titleFace, hintFace font.Face, width, height int) *Screens {
	return &Screens{titleFace: titleFace, hintFace: hintFace, width: width, height: height}
}

// DrawStart: затемнение, название и подсказка запуска.
func (s *Screens) DrawStart(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), config.OverlayColor, false)
	cx, cy := s.width/2, s.height/2
	drawCentered(screen, Title, s.titleFace, cx, cy-50, config.TextLightColor)
	drawCentered(screen, StartHint, s.hintFace, cx, cy+50, config.TextLightColor)
}

// DrawPaused: надпись паузы по центру.
func (s *Screens) DrawPaused(screen *ebiten.Image) {
	drawCentered(screen, "PAUSED", s.titleFace, s.width/2, s.height/2, config.TextLightColor)
}

// SummaryLines: текст итоговой панели.
func SummaryLines(score, level int, restartable bool) []string {
	lines := []string{
		fmt.Sprintf("FINAL SCORE: %d", score),
		fmt.Sprintf("LEVEL: %d", level),
	}
	if restartable {
		lines = append(lines, "PRESS SPACE TO PLAY AGAIN")
	}
	return lines
}

// DrawGameOver: панель с итогом сессии. restartable добавляет подсказку перезапуска.
func (s *Screens) DrawGameOver(screen *ebiten.Image, score, level int, restartable bool) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), config.OverlayColor, false)

	px := float32(s.width-config.PanelWidth) / 2
	py := float32(s.height-config.PanelHeight) / 2
	vector.DrawFilledRect(screen, px, py, config.PanelWidth, config.PanelHeight, config.PanelColor, false)
	vector.StrokeRect(screen, px, py, config.PanelWidth, config.PanelHeight, config.StrokeWidth, config.PanelStrokeColor, false)

	cx := s.width / 2
	y := int(py) + 60
	drawCentered(screen, "GAME OVER", s.titleFace, cx, y, config.PanelStrokeColor)
	for _, line := range SummaryLines(score, level, restartable) {
		y += config.HUDLineHeight + 12
		drawCentered(screen, line, s.hintFace, cx, y, config.TextLightColor)
	}
}
