// internal/system/wave.go
package system

import (
	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/defs"
	"go-cyber-shooter/internal/entity"
	"go-cyber-shooter/internal/event"
	"go-cyber-shooter/internal/utils"
	"image/color"
)

// SpawnSystem: вероятностное появление врагов, боссов и бонусов.
type SpawnSystem struct {
	world           *entity.World
	field           component.Playfield
	rng             utils.Random
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(world *entity.World, field component.Playfield, rng utils.Random, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		field:           field,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Update бросает кубики на врага и босса. Вызывается в конце кадра.
func (s *SpawnSystem) Update(prog component.Progression) {
	if utils.Chance(s.rng, config.EnemySpawnChance*prog.GameSpeed) {
		s.SpawnEnemy(prog)
	}
	if !s.world.HasLiveBoss() && utils.Chance(s.rng, config.BossSpawnChance*float64(prog.Level)) {
		s.SpawnBoss(prog.Level)
	}
}

// SpawnEnemy создаёт врага над верхним краем в случайной колонке.
func (s *SpawnSystem) SpawnEnemy(prog component.Progression) {
	x := s.rng.Float64() * (s.field.Width - config.EnemySize)
	speed := config.EnemyBaseSpeed + s.rng.Float64()*config.EnemySpeedJitter*prog.GameSpeed

	s.world.Enemies = append(s.world.Enemies, component.Enemy{
		Rect: component.Rect{
			X:      x,
			Y:      config.EnemySpawnY,
			Width:  config.EnemySize,
			Height: config.EnemySize,
		},
		Speed:  speed,
		Health: config.EnemyBaseHealth + prog.Level*config.EnemyHealthPerLevel,
		Type:   config.EnemyType,
		Color:  config.EnemyColor,
	})
}

// SpawnBoss создаёт босса по центру над верхним краем.
func (s *SpawnSystem) SpawnBoss(level int) {
	health := config.BossBaseHealth + level*config.BossHealthPerLevel
	s.world.Bosses = append(s.world.Bosses, component.Boss{
		Rect: component.Rect{
			X:      s.field.Width/2 - config.BossSize/2,
			Y:      config.BossSpawnY,
			Width:  config.BossSize,
			Height: config.BossSize,
		},
		Speed:          config.BossBaseSpeed + float64(level)*config.BossSpeedPerLevel,
		Health:         health,
		MaxHealth:      health,
		Phase:          1,
		AttackInterval: config.BossAttackInterval,
		BulletPattern:  component.PatternStraight,
		Color:          config.BossColor,
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned})
}

// RollPowerUp с шансом PowerUpDropChance оставляет бонус в точке гибели врага.
func (s *SpawnSystem) RollPowerUp(x, y float64) bool {
	if !utils.Chance(s.rng, config.PowerUpDropChance) {
		return false
	}
	kind := utils.ChooseWeighted(s.rng, defs.PowerUpLoot)
	s.world.PowerUps = append(s.world.PowerUps, component.PowerUp{
		Rect: component.Rect{
			X:      x,
			Y:      y,
			Width:  config.PowerUpSize,
			Height: config.PowerUpSize,
		},
		Speed: config.PowerUpSpeed,
		Kind:  kind,
		Color: powerUpColor(kind),
	})
	return true
}

func powerUpColor(kind component.PowerUpKind) color.RGBA {
	if kind == component.PowerUpHealth {
		return config.HealthPowerColor
	}
	return config.WeaponPowerColor
}
