// internal/utils/math.go
package utils

import "go-cyber-shooter/internal/component"

// Clamp ограничивает значение отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlaps: проверка пересечения двух AABB. Касание краями не считается.
func Overlaps(a, b component.Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// RandRange возвращает случайное число в [lo, hi).
func RandRange(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance возвращает true с вероятностью p.
func Chance(r Random, p float64) bool {
	return r.Float64() < p
}
