// internal/event/types.go
package event

import "go-cyber-shooter/internal/component"

const (
	GameStarted      EventType = "GameStarted"      // Сессия (пере)запущена
	BulletFired      EventType = "BulletFired"      // Игрок выстрелил
	BossAttacked     EventType = "BossAttacked"     // Босс выпустил пули
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг уничтожен пулей
	BossDestroyed    EventType = "BossDestroyed"    // Босс уничтожен
	BossSpawned      EventType = "BossSpawned"      // Появился босс
	BossEnraged      EventType = "BossEnraged"      // Босс перешёл во вторую фазу
	PlayerHit        EventType = "PlayerHit"        // Игрок получил столкновение
	PowerUpCollected EventType = "PowerUpCollected" // Игрок подобрал бонус
	GameOver         EventType = "GameOver"         // Столкновений слишком много
)

// EnemyDestroyedData: где погиб враг
type EnemyDestroyedData struct {
	X, Y float64
}

// BossDestroyedData: где погиб босс
type BossDestroyedData struct {
	X, Y float64
}

// BossEnragedData: параметры босса после смены фазы
type BossEnragedData struct {
	Health         int
	AttackInterval int
}

// HitSource: что задело игрока
type HitSource string

const (
	HitByEnemy  HitSource = "enemy"
	HitByBoss   HitSource = "boss"
	HitByBullet HitSource = "bullet"
)

// PlayerHitData: сколько столкновений добавить
type PlayerHitData struct {
	Source HitSource
	Amount int
}

// PowerUpCollectedData: какой бонус подобран
type PowerUpCollectedData struct {
	Kind component.PowerUpKind
}

// GameOverData: итог сессии
type GameOverData struct {
	Score int
	Level int
}
