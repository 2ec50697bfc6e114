// internal/entity/world.go
package entity

import "go-cyber-shooter/internal/component"

// World: пулы сущностей одной сессии.
// Удаление двухфазное: системы помечают Removed, Compact вычищает пулы раз в кадр.
type World struct {
	Bullets   []component.Bullet
	Enemies   []component.Enemy
	Bosses    []component.Boss
	Particles []component.Particle
	PowerUps  []component.PowerUp
}

func NewWorld() *World {
	return &World{}
}

// Reset очищает все пулы, сохраняя выделенную память.
func (w *World) Reset() {
	w.Bullets = w.Bullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Bosses = w.Bosses[:0]
	w.Particles = w.Particles[:0]
	w.PowerUps = w.PowerUps[:0]
}

// Compact удаляет помеченные сущности с сохранением порядка остальных.
func (w *World) Compact() {
	w.Bullets = compact(w.Bullets, func(b *component.Bullet) bool { return b.Removed })
	w.Enemies = compact(w.Enemies, func(e *component.Enemy) bool { return e.Removed })
	w.Bosses = compact(w.Bosses, func(b *component.Boss) bool { return b.Removed })
	w.Particles = compact(w.Particles, func(p *component.Particle) bool { return p.Removed })
	w.PowerUps = compact(w.PowerUps, func(p *component.PowerUp) bool { return p.Removed })
}

// HasLiveBoss сообщает, есть ли непомеченный босс.
func (w *World) HasLiveBoss() bool {
	for i := range w.Bosses {
		if !w.Bosses[i].Removed {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию пулов для рендера.
func (w *World) Clone() World {
	return World{
		Bullets:   append([]component.Bullet(nil), w.Bullets...),
		Enemies:   append([]component.Enemy(nil), w.Enemies...),
		Bosses:    append([]component.Boss(nil), w.Bosses...),
		Particles: append([]component.Particle(nil), w.Particles...),
		PowerUps:  append([]component.PowerUp(nil), w.PowerUps...),
	}
}

func compact[T any](items []T, removed func(*T) bool) []T {
	kept := items[:0]
	for i := range items {
		if !removed(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	// Обнуляем хвост, чтобы не держать ссылки на траектории удалённых пуль
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
