// internal/state/menu_state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// MenuState: заставка до первого запуска.
type MenuState struct {
	sm    *StateMachine
	scene *Scene
}

func NewMenuState(sm *StateMachine, scene *Scene) *MenuState {
	return &MenuState{sm: sm, scene: scene}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.scene.Tick(deltaTime)
	if startPressed() {
		m.scene.Game.Start()
		m.sm.SetState(NewGameState(m.sm, m.scene))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.scene.DrawWorld(screen)
	m.scene.screens.DrawStart(screen)
}

func (m *MenuState) Exit() {}
