// internal/system/movement.go
package system

import (
	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/entity"
	"go-cyber-shooter/internal/event"
	"go-cyber-shooter/internal/utils"
)

// MovementSystem применяет ввод к игроку и интегрирует движение пуль, врагов и бонусов.
type MovementSystem struct {
	world           *entity.World
	field           component.Playfield
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(world *entity.World, field component.Playfield, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{world: world, field: field, eventDispatcher: eventDispatcher}
}

// MovePlayer: указатель, выстрел, клавиши, ограничение полем, таймер неуязвимости.
func (s *MovementSystem) MovePlayer(p *component.Player, in component.Input) {
	if in.Pointer != nil {
		p.X = in.Pointer.X - p.Width/2
		p.Y = in.Pointer.Y - p.Height/2
	}
	if in.Fire {
		s.Shoot(p)
	}

	if in.Left {
		p.X -= p.Speed
	}
	if in.Right {
		p.X += p.Speed
	}
	if in.Up {
		p.Y -= p.Speed
	}
	if in.Down {
		p.Y += p.Speed
	}

	p.X = utils.Clamp(p.X, 0, s.field.Width-p.Width)
	p.Y = utils.Clamp(p.Y, 0, s.field.Height-p.Height)

	p.TickFlash()
}

// Shoot выпускает одну пулю игрока вверх из верхней середины корабля.
func (s *MovementSystem) Shoot(p *component.Player) {
	s.world.Bullets = append(s.world.Bullets, component.Bullet{
		Rect: component.Rect{
			X:      p.X + p.Width/2,
			Y:      p.Y,
			Width:  config.PlayerBulletWidth,
			Height: config.PlayerBulletHeight,
		},
		Trajectory: component.Straight{Speed: config.PlayerBulletSpeed, Dir: -1},
		Damage:     config.PlayerBulletDamage,
		Color:      config.PlayerBulletClr,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.BulletFired})
}

// UpdateBullets двигает пули и помечает вылетевшие за поле.
func (s *MovementSystem) UpdateBullets() {
	for i := range s.world.Bullets {
		b := &s.world.Bullets[i]
		if b.Removed {
			continue
		}
		dx, dy := b.Trajectory.Step()
		b.X += dx
		b.Y += dy
		if s.bulletOutOfField(b) {
			b.Removed = true
		}
	}
}

func (s *MovementSystem) bulletOutOfField(b *component.Bullet) bool {
	if !b.IsEnemyBullet {
		return b.Y < 0
	}
	return b.Y > s.field.Height || b.X+b.Width < 0 || b.X > s.field.Width
}

// UpdateEnemies двигает врагов вниз и помечает ушедших за нижний край.
func (s *MovementSystem) UpdateEnemies() {
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if e.Removed {
			continue
		}
		e.Y += e.Speed
		if e.Y > s.field.Height {
			e.Removed = true
		}
	}
}

// UpdatePowerUps двигает бонусы вниз и помечает ушедшие за нижний край.
func (s *MovementSystem) UpdatePowerUps() {
	for i := range s.world.PowerUps {
		p := &s.world.PowerUps[i]
		if p.Removed {
			continue
		}
		p.Y += p.Speed
		if p.Y > s.field.Height {
			p.Removed = true
		}
	}
}
