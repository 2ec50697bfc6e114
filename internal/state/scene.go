// internal/state/scene.go
package state

import (
	"fmt"
	"image/color"

	"go-cyber-shooter/internal/app"
	"go-cyber-shooter/internal/assets"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/system"
	"go-cyber-shooter/internal/ui"
	"go-cyber-shooter/internal/utils"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Scene собирает общее для всех состояний: игра, настройки, логгер и средства отрисовки.
type Scene struct {
	Game     *app.Game
	Settings config.Settings
	Log      zerolog.Logger

	renderer *system.RenderSystem
	hud      *ui.HUD
	screens  *ui.Screens
	backdrop *ui.Backdrop

	width, height int
	canvas        *ebiten.Image // Сущности со шлейфом
	fadeImg       *ebiten.Image
	drawn         frameKey // Последний кадр симуляции, попавший на canvas
}

type frameKey struct {
	session uuid.UUID
	frame   int
	valid   bool
}

// NewScene готовит шрифты и декорации. backdropRng задаёт раскладку заднего плана.
func NewScene(game *app.Game, settings config.Settings, log zerolog.Logger,
	fonts *assets.FontManager, backdropRng utils.Random) (*Scene, error) {
	hudFace, err := fonts.Face(config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	titleFace, err := fonts.Face(config.TitleFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load title font: %w", err)
	}
	hintFace, err := fonts.Face(config.HintFontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load hint font: %w", err)
	}

	field := game.Field()
	w, h := int(field.Width), int(field.Height)
	return &Scene{
		Game:     game,
		Settings: settings,
		Log:      log,
		renderer: system.NewRenderSystem(),
		hud:      ui.NewHUD(hudFace),
		screens:  ui.NewScreens(titleFace, hintFace, w, h),
		backdrop: ui.NewBackdrop(backdropRng, field.Width, field.Height),
		width:    w,
		height:   h,
	}, nil
}

// Tick продвигает анимации, не зависящие от симуляции.
func (s *Scene) Tick(deltaTime float64) {
	s.backdrop.Update(deltaTime)
}

// DrawWorld рисует задний план, сущности со шлейфом и HUD.
func (s *Scene) DrawWorld(screen *ebiten.Image) {
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(s.width, s.height)
		s.fadeImg = ebiten.NewImage(1, 1)
		s.fadeImg.Fill(color.White)
	}

	snap := s.Game.Snapshot()
	key := frameKey{session: snap.SessionID, frame: snap.Frame, valid: true}
	// Пока симуляция стоит (пауза, итоги), шлейф не гаснет
	if key != s.drawn {
		if key.session != s.drawn.session {
			s.canvas.Clear()
		}
		// Гасим прошлые кадры на долю TrailColor.A вместо полной очистки
		op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationOut}
		op.GeoM.Scale(float64(s.width), float64(s.height))
		op.ColorScale.ScaleAlpha(float32(config.TrailColor.A) / 255)
		s.canvas.DrawImage(s.fadeImg, op)

		s.renderer.Draw(s.canvas, &snap.World, &snap.Player)
		s.drawn = key
	}

	screen.Fill(config.BackgroundColor)
	s.backdrop.Draw(screen)
	screen.DrawImage(s.canvas, nil)
	s.hud.Draw(screen, snap.Progression, snap.HealthLeft)
}
