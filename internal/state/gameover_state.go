// internal/state/gameover_state.go
package state

import (
	"go-cyber-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// closeTimer отсчитывает задержку закрытия окна после конца игры.
// Если закрытие не состоялось, через alertDelay показываются итоги.
type closeTimer struct {
	elapsed    float64
	closeDelay float64
	alertDelay float64
}

func newCloseTimer() *closeTimer {
	return &closeTimer{closeDelay: config.GameOverCloseDelay, alertDelay: config.GameOverAlertDelay}
}

// Advance добавляет deltaTime и сообщает, пора ли закрывать окно и показывать итоги.
func (t *closeTimer) Advance(deltaTime float64) (closeDue, summaryDue bool) {
	t.elapsed += deltaTime
	return t.elapsed >= t.closeDelay, t.elapsed >= t.closeDelay+t.alertDelay
}

// GameOverState: экран после конца сессии.
type GameOverState struct {
	sm          *StateMachine
	scene       *Scene
	timer       *closeTimer
	score       int
	level       int
	summaryOpen bool
}

func NewGameOverState(sm *StateMachine, scene *Scene) *GameOverState {
	prog := scene.Game.Progression
	return &GameOverState{
		sm:    sm,
		scene: scene,
		timer: newCloseTimer(),
		score: prog.Score,
		level: prog.Level,
	}
}

func (s *GameOverState) Enter() {
	s.scene.Log.Info().
		Int("score", s.score).
		Int("level", s.level).
		Float64("close_in", s.timer.closeDelay).
		Msg("game over screen")
}

func (s *GameOverState) Update(deltaTime float64) {
	s.scene.Tick(deltaTime)

	if s.summaryOpen {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.scene.Game.Start()
			s.sm.SetState(NewGameState(s.sm, s.scene))
		}
		return
	}

	closeDue, summaryDue := s.timer.Advance(deltaTime)
	if closeDue && !s.scene.Settings.KeepOpen {
		s.sm.Quit()
		return
	}
	if summaryDue {
		s.summaryOpen = true
		s.scene.Log.Info().Int("score", s.score).Int("level", s.level).Msg("final summary")
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.scene.DrawWorld(screen)
	s.scene.screens.DrawGameOver(screen, s.score, s.level, s.summaryOpen)
}

func (s *GameOverState) Exit() {}
