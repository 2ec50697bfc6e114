// internal/component/player.go
package component

// Player: корабль игрока. Живёт всю сессию, сбрасывается при рестарте.
type Player struct {
	Rect
	Speed         float64
	IsFlashing    bool // Неуязвим после попадания
	FlashTimer    int  // Оставшиеся кадры неуязвимости
	FlashDuration int
}

// StartFlash включает неуязвимость на FlashDuration кадров.
func (p *Player) StartFlash() {
	p.IsFlashing = true
	p.FlashTimer = p.FlashDuration
}

// TickFlash уменьшает таймер неуязвимости на один кадр.
func (p *Player) TickFlash() {
	if !p.IsFlashing {
		return
	}
	p.FlashTimer--
	if p.FlashTimer <= 0 {
		p.FlashTimer = 0
		p.IsFlashing = false
	}
}

// Visible сообщает, рисуется ли игрок в этом кадре (мигание при неуязвимости).
func (p *Player) Visible(blinkPeriod int) bool {
	return !p.IsFlashing || (p.FlashTimer/blinkPeriod)%2 == 0
}

// Progression хранит счёт и прогресс сессии.
type Progression struct {
	Score          int
	Level          int
	GameSpeed      float64 // Множитель сложности
	CollisionCount int     // Сколько раз игрока задели
}

// NewProgression возвращает прогресс новой сессии.
func NewProgression() Progression {
	return Progression{Level: 1, GameSpeed: 1}
}

// HealthLeft: оставшиеся "жизни" для HUD, никогда не меньше нуля.
func (p Progression) HealthLeft(maxCollisions int) int {
	left := maxCollisions - p.CollisionCount
	if left < 0 {
		return 0
	}
	return left
}
