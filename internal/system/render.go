// internal/system/render.go
package system

import (
	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/entity"
	"go-cyber-shooter/pkg/render"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует снимок мира. Состояния не меняет.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, world *entity.World, player *component.Player) {
	if player.Visible(config.PlayerBlinkPeriod) {
		fillRect(screen, player.Rect, config.PlayerColor)
		strokeRect(screen, player.Rect, config.StrokeWidth, config.PlayerColor)
	}

	for i := range world.Bullets {
		b := &world.Bullets[i]
		glow := b.Rect
		glow.X -= 2
		glow.Y -= 2
		glow.Width += 4
		glow.Height += 4
		fillRect(screen, glow, render.Fade(b.Color, 0.3))
		fillRect(screen, b.Rect, b.Color)
	}

	for i := range world.Enemies {
		e := &world.Enemies[i]
		fillRect(screen, e.Rect, render.DarkenColor(e.Color))
		strokeRect(screen, e.Rect, config.StrokeWidth, e.Color)
	}

	for i := range world.Bosses {
		s.drawBoss(screen, &world.Bosses[i])
	}

	for i := range world.Particles {
		p := &world.Particles[i]
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Size), float32(p.Size),
			render.Fade(p.Color, p.Alpha()), false)
	}

	for i := range world.PowerUps {
		p := &world.PowerUps[i]
		halo := p.Rect
		halo.X -= 4
		halo.Y -= 4
		halo.Width += 8
		halo.Height += 8
		fillRect(screen, halo, render.Fade(p.Color, 0.25))
		fillRect(screen, p.Rect, p.Color)
	}
}

func (s *RenderSystem) drawBoss(screen *ebiten.Image, boss *component.Boss) {
	fillRect(screen, boss.Rect, render.DarkenColor(boss.Color))
	strokeRect(screen, boss.Rect, config.BossStrokeWidth, boss.Color)

	// Полоса здоровья над боссом
	barY := float32(boss.Y - config.BossBarOffsetY)
	vector.DrawFilledRect(screen, float32(boss.X), barY, float32(boss.Width), config.BossBarHeight, config.BossBarBackColor, false)
	fill := float32(boss.Width * boss.HealthRatio())
	if fill > 0 {
		vector.DrawFilledRect(screen, float32(boss.X), barY, fill, config.BossBarHeight, config.BossBarFillColor, false)
	}
}

func fillRect(screen *ebiten.Image, r component.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

func strokeRect(screen *ebiten.Image, r component.Rect, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, clr, false)
}
