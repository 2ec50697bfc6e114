// internal/system/visual_effect.go
package system

import (
	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/entity"
	"go-cyber-shooter/internal/utils"
	"image/color"
)

// VisualEffectSystem управляет частицами: создаёт вспышки и гасит их со временем.
type VisualEffectSystem struct {
	world *entity.World
	rng   utils.Random
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng utils.Random) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

// Burst создаёт count частиц в точке (x, y) цвета сущности, вызвавшей эффект.
func (s *VisualEffectSystem) Burst(x, y float64, clr color.RGBA, count int) {
	for i := 0; i < count; i++ {
		s.world.Particles = append(s.world.Particles, component.Particle{
			X:       x,
			Y:       y,
			VX:      utils.RandRange(s.rng, -config.ParticleMaxSpeed, config.ParticleMaxSpeed),
			VY:      utils.RandRange(s.rng, -config.ParticleMaxSpeed, config.ParticleMaxSpeed),
			Size:    config.ParticleMinSize + s.rng.Float64()*config.ParticleSizeJitter,
			Color:   clr,
			Life:    config.ParticleLife,
			MaxLife: config.ParticleLife,
		})
	}
}

// Update двигает частицы и помечает погасшие.
func (s *VisualEffectSystem) Update() {
	for i := range s.world.Particles {
		p := &s.world.Particles[i]
		if p.Removed {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			p.Removed = true
		}
	}
}
