// internal/system/player_system.go
package system

import (
	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/event"
)

// ProgressionSystem отвечает за счёт, уровень и сложность, а также за условие конца игры.
type ProgressionSystem struct {
	prog       *component.Progression
	onGameOver func()
}

// NewProgressionSystem подписывает систему на события и возвращает её.
// onGameOver вызывается каждый раз, когда счётчик столкновений доходит до предела;
// однократность обеспечивает вызывающая сторона.
func NewProgressionSystem(prog *component.Progression, dispatcher *event.Dispatcher, onGameOver func()) *ProgressionSystem {
	s := &ProgressionSystem{prog: prog, onGameOver: onGameOver}
	dispatcher.Subscribe(s, event.EnemyDestroyed, event.BossDestroyed, event.PlayerHit, event.PowerUpCollected)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		s.prog.Score += config.EnemyKillScore
	case event.BossDestroyed:
		s.prog.Score += config.BossKillScorePerLvl * s.prog.Level
		s.prog.Level++
		s.prog.GameSpeed += config.GameSpeedPerBossKill
	case event.PlayerHit:
		data, ok := e.Data.(event.PlayerHitData)
		if !ok {
			return
		}
		s.prog.CollisionCount += data.Amount
		if s.prog.CollisionCount >= config.MaxPlayerCollisions {
			s.onGameOver()
		}
	case event.PowerUpCollected:
		data, ok := e.Data.(event.PowerUpCollectedData)
		if !ok {
			return
		}
		switch data.Kind {
		case component.PowerUpHealth:
			s.prog.CollisionCount = max(0, s.prog.CollisionCount-1)
		case component.PowerUpWeapon:
			s.prog.Score += config.WeaponPowerUpScore
		}
	}
}
