package system

import (
	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/entity"
	"go-cyber-shooter/internal/event"
)

// BossSystem двигает боссов и ведёт их атаку: таймер, выстрел по фазе, смена фазы.
type BossSystem struct {
	world           *entity.World
	field           component.Playfield
	eventDispatcher *event.Dispatcher
}

func NewBossSystem(world *entity.World, field component.Playfield, eventDispatcher *event.Dispatcher) *BossSystem {
	return &BossSystem{world: world, field: field, eventDispatcher: eventDispatcher}
}

func (s *BossSystem) Update() {
	// fire дописывает только пули, указатель на босса остаётся валидным
	for i := range s.world.Bosses {
		boss := &s.world.Bosses[i]
		if boss.Removed {
			continue
		}
		boss.Y += boss.Speed

		boss.AttackTimer++
		if boss.AttackTimer >= boss.AttackInterval {
			boss.AttackTimer = 0
			s.fire(boss)
		}

		if boss.Y > s.field.Height {
			boss.Removed = true
		}
	}
}

func (s *BossSystem) fire(boss *component.Boss) {
	x := boss.X + boss.Width/2
	y := boss.Y + boss.Height

	switch boss.BulletPattern {
	case component.PatternStraight:
		s.world.Bullets = append(s.world.Bullets, bossBullet(x, y, config.BossBulletDamage,
			component.Straight{Speed: config.BossBulletSpeed, Dir: 1}))
	case component.PatternFan:
		for i := 0; i < config.BossFanBullets; i++ {
			vx := float64(i-1) * config.BossFanSpread
			s.world.Bullets = append(s.world.Bullets, bossBullet(x, y, config.BossFanBulletDamage,
				component.Patterned{VX: vx, VY: config.BossFanBulletSpeed}))
		}
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossAttacked})
}

func bossBullet(x, y float64, damage int, tr component.Trajectory) component.Bullet {
	return component.Bullet{
		Rect: component.Rect{
			X:      x,
			Y:      y,
			Width:  config.BossBulletWidth,
			Height: config.BossBulletHeight,
		},
		Trajectory:    tr,
		Damage:        damage,
		IsEnemyBullet: true,
		Color:         config.BossBulletColor,
	}
}

// CheckPhase переводит раненого босса во вторую фазу. Срабатывает один раз за жизнь босса.
func (s *BossSystem) CheckPhase(boss *component.Boss) bool {
	if !boss.ShouldEnrage() {
		return false
	}
	boss.Enrage(config.BossEnragedAttackInterval)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BossEnraged,
		Data: event.BossEnragedData{Health: boss.Health, AttackInterval: boss.AttackInterval},
	})
	return true
}
