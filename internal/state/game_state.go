// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState ведёт идущую сессию: ввод, кадр симуляции, переход к итогам.
type GameState struct {
	sm     *StateMachine
	scene  *Scene
	cursor *cursorTracker
}

func NewGameState(sm *StateMachine, scene *Scene) *GameState {
	return &GameState{
		sm:     sm,
		scene:  scene,
		cursor: newCursorTracker(scene.width, scene.height),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.scene.Tick(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.scene.Game.Update(readInput(g.cursor))

	if g.scene.Game.Ended() {
		g.sm.SetState(NewGameOverState(g.sm, g.scene))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.scene.DrawWorld(screen)
}

func (g *GameState) Exit() {}
