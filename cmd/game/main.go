// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"go-cyber-shooter/internal/app"
	"go-cyber-shooter/internal/assets"
	"go-cyber-shooter/internal/audio"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/logging"
	"go-cyber-shooter/internal/state"
	"go-cyber-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.ShouldQuit() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load settings")
	}
	log := logging.New(settings)

	rng := utils.NewPRNGService(settings.Seed)
	log.Info().Int64("seed", rng.Seed()).Msg("starting")

	game := app.NewGame(rng, app.WithLogger(log))

	sounds := audio.NewSoundManager(audio.DefaultConfig(settings.Volume), log)
	if err := sounds.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, playing silent")
	}
	defer sounds.Cleanup()
	sounds.SetMuted(settings.Mute)
	sounds.Subscribe(game.EventDispatcher)

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}
	defer fonts.Cleanup()

	// Декорации получают свой генератор, чтобы не сдвигать броски симуляции
	scene, err := state.NewScene(game, settings, log, fonts, utils.NewPRNGService(rng.Seed()+1))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build scene")
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, scene))

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetTPS(config.TicksPerSec)
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Cyberpunk Shooter")
	if err := ebiten.RunGame(appGame); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game loop failed")
		sounds.Cleanup()
		os.Exit(1)
	}

	log.Info().
		Int("score", game.Progression.Score).
		Int("level", game.Progression.Level).
		Str("phase", game.Phase().String()).
		Msg("exit")
}
