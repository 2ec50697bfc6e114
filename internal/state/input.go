// internal/state/input.go
package state

import (
	"image"

	"go-cyber-shooter/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cursorTracker превращает положение курсора в цель для игрока.
// Цель выдаётся только когда курсор сдвинулся внутри окна, иначе курсор
// не мешает управлению с клавиатуры.
type cursorTracker struct {
	last   image.Point
	seen   bool
	bounds image.Rectangle
}

func newCursorTracker(width, height int) *cursorTracker {
	return &cursorTracker{bounds: image.Rect(0, 0, width, height)}
}

// Next принимает новую позицию курсора и возвращает цель или nil.
func (c *cursorTracker) Next(x, y int) *app.Point {
	pos := image.Pt(x, y)
	moved := c.seen && pos != c.last
	c.last, c.seen = pos, true
	if !moved || !pos.In(c.bounds) {
		return nil
	}
	return &app.Point{X: float64(x), Y: float64(y)}
}

// readInput снимает ввод текущего тика.
func readInput(cursor *cursorTracker) app.Input {
	x, y := ebiten.CursorPosition()
	return app.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pointer: cursor.Next(x, y),
	}
}

// startPressed: пробел или клик запускают игру.
func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
