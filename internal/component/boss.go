package component

import "image/color"

// BulletPattern: режим стрельбы босса
type BulletPattern int

const (
	PatternStraight BulletPattern = iota // Одна пуля вниз
	PatternFan                           // Веер из трёх пуль
)

// Boss: босс с двумя фазами атаки. Одновременно жив не более одного.
type Boss struct {
	Rect
	Speed          float64
	Health         int
	MaxHealth      int
	Phase          int // 1 или 2
	AttackTimer    int
	AttackInterval int
	BulletPattern  BulletPattern
	Color          color.RGBA
	Removed        bool
}

// Dead сообщает, что здоровье босса исчерпано.
func (b *Boss) Dead() bool {
	return b.Health <= 0
}

// ShouldEnrage проверяет переход во вторую фазу: половина здоровья, всё ещё фаза 1.
func (b *Boss) ShouldEnrage() bool {
	return b.Phase == 1 && b.Health <= b.MaxHealth/2
}

// Enrage переводит босса во вторую фазу. Переход необратим.
func (b *Boss) Enrage(interval int) {
	b.Phase = 2
	b.AttackInterval = interval
	b.BulletPattern = PatternFan
}

// HealthRatio: доля оставшегося здоровья для полосы над боссом.
func (b *Boss) HealthRatio() float64 {
	if b.MaxHealth <= 0 || b.Health <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.MaxHealth)
}
