package system

import (
	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/entity"
	"go-cyber-shooter/internal/event"
	"go-cyber-shooter/internal/utils"
	"image/color"
)

// CollisionSystem разрешает столкновения между пулами в фиксированном порядке.
// Счёт и прогресс меняются не здесь, а подписчиками на события.
type CollisionSystem struct {
	world           *entity.World
	effects         *VisualEffectSystem
	spawner         *SpawnSystem
	bosses          *BossSystem
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, effects *VisualEffectSystem, spawner *SpawnSystem,
	bosses *BossSystem, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		effects:         effects,
		spawner:         spawner,
		bosses:          bosses,
		eventDispatcher: eventDispatcher,
	}
}

// Resolve выполняет все проверки кадра. sessionEnded опрашивается после каждого
// попадания в игрока: после конца игры оставшиеся проверки пропускаются.
func (s *CollisionSystem) Resolve(p *component.Player, sessionEnded func() bool) {
	s.bulletsVsEnemies()
	s.bulletsVsBosses()

	if s.enemiesVsPlayer(p) && sessionEnded() {
		return
	}
	if s.bossesVsPlayer(p) && sessionEnded() {
		return
	}
	if s.enemyBulletsVsPlayer(p) && sessionEnded() {
		return
	}
	s.powerUpsVsPlayer(p)
}

// bulletsVsEnemies: пуля тратится на первом попадании, даже если задевает нескольких.
func (s *CollisionSystem) bulletsVsEnemies() {
	for i := range s.world.Bullets {
		bullet := &s.world.Bullets[i]
		if bullet.Removed || bullet.IsEnemyBullet {
			continue
		}
		for j := range s.world.Enemies {
			enemy := &s.world.Enemies[j]
			if enemy.Removed || !utils.Overlaps(bullet.Rect, enemy.Rect) {
				continue
			}
			enemy.Health -= bullet.Damage
			bullet.Removed = true
			if enemy.Dead() {
				s.destroyEnemy(enemy)
			}
			break
		}
	}
}

func (s *CollisionSystem) destroyEnemy(enemy *component.Enemy) {
	enemy.Removed = true
	cx, cy := enemy.CenterX(), enemy.CenterY()
	s.effects.Burst(cx, cy, enemy.Color, config.EnemyDeathParticles)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{X: cx, Y: cy},
	})
	s.spawner.RollPowerUp(cx, cy)
}

func (s *CollisionSystem) bulletsVsBosses() {
	for i := range s.world.Bullets {
		bullet := &s.world.Bullets[i]
		if bullet.Removed || bullet.IsEnemyBullet {
			continue
		}
		for j := range s.world.Bosses {
			boss := &s.world.Bosses[j]
			if boss.Removed || !utils.Overlaps(bullet.Rect, boss.Rect) {
				continue
			}
			boss.Health -= bullet.Damage
			bullet.Removed = true
			if boss.Dead() {
				s.destroyBoss(boss)
			} else {
				s.bosses.CheckPhase(boss)
			}
			break
		}
	}
}

func (s *CollisionSystem) destroyBoss(boss *component.Boss) {
	boss.Removed = true
	cx, cy := boss.CenterX(), boss.CenterY()
	s.effects.Burst(cx, cy, boss.Color, config.BossDeathParticles)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BossDestroyed,
		Data: event.BossDestroyedData{X: cx, Y: cy},
	})
}

// Враг переживает таран: удаляется только пуля, но не корабль.
func (s *CollisionSystem) enemiesVsPlayer(p *component.Player) bool {
	hit := false
	for i := range s.world.Enemies {
		enemy := &s.world.Enemies[i]
		if enemy.Removed || p.IsFlashing || !utils.Overlaps(enemy.Rect, p.Rect) {
			continue
		}
		s.hitPlayer(p, event.HitByEnemy, config.EnemyContactPenalty, config.PlayerHitParticles)
		hit = true
	}
	return hit
}

func (s *CollisionSystem) bossesVsPlayer(p *component.Player) bool {
	hit := false
	for i := range s.world.Bosses {
		boss := &s.world.Bosses[i]
		if boss.Removed || p.IsFlashing || !utils.Overlaps(boss.Rect, p.Rect) {
			continue
		}
		s.hitPlayer(p, event.HitByBoss, config.BossContactPenalty, config.BossHitParticles)
		hit = true
	}
	return hit
}

func (s *CollisionSystem) enemyBulletsVsPlayer(p *component.Player) bool {
	hit := false
	for i := range s.world.Bullets {
		bullet := &s.world.Bullets[i]
		if bullet.Removed || !bullet.IsEnemyBullet || p.IsFlashing || !utils.Overlaps(bullet.Rect, p.Rect) {
			continue
		}
		bullet.Removed = true
		s.hitPlayer(p, event.HitByBullet, config.BulletHitPenalty, config.PlayerHitParticles)
		hit = true
	}
	return hit
}

func (s *CollisionSystem) hitPlayer(p *component.Player, source event.HitSource, amount, particles int) {
	p.StartFlash()
	s.effects.Burst(p.CenterX(), p.CenterY(), config.PlayerColor, particles)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{Source: source, Amount: amount},
	})
}

// Бонусы подбираются даже во время неуязвимости.
func (s *CollisionSystem) powerUpsVsPlayer(p *component.Player) {
	for i := range s.world.PowerUps {
		powerUp := &s.world.PowerUps[i]
		if powerUp.Removed || !utils.Overlaps(powerUp.Rect, p.Rect) {
			continue
		}
		powerUp.Removed = true
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PowerUpCollected,
			Data: event.PowerUpCollectedData{Kind: powerUp.Kind},
		})
		s.burstAt(powerUp.Rect, powerUp.Color, config.PowerUpParticles)
	}
}

func (s *CollisionSystem) burstAt(r component.Rect, clr color.RGBA, count int) {
	s.effects.Burst(r.CenterX(), r.CenterY(), clr, count)
}
