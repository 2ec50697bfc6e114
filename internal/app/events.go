package app

import "go-cyber-shooter/internal/event"

// sessionLogger пишет в лог заметные игровые события сессии.
type sessionLogger struct {
	game *Game
}

func (l *sessionLogger) OnEvent(e event.Event) {
	log := l.game.log
	switch e.Type {
	case event.BossSpawned:
		log.Debug().Int("level", l.game.Progression.Level).Msg("boss spawned")
	case event.BossEnraged:
		if data, ok := e.Data.(event.BossEnragedData); ok {
			log.Info().Int("health", data.Health).Int("attack_interval", data.AttackInterval).Msg("boss entered phase 2")
		}
	case event.BossDestroyed:
		// Прогресс уже обновлён: подписчик прогресса зарегистрирован раньше
		log.Info().
			Int("level", l.game.Progression.Level).
			Int("score", l.game.Progression.Score).
			Float64("game_speed", l.game.Progression.GameSpeed).
			Msg("boss destroyed, level up")
	case event.PlayerHit:
		if data, ok := e.Data.(event.PlayerHitData); ok {
			log.Debug().
				Str("source", string(data.Source)).
				Int("collisions", l.game.Progression.CollisionCount).
				Msg("player hit")
		}
	}
}
