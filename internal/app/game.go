// internal/app/game.go
package app

import (
	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/entity"
	"go-cyber-shooter/internal/event"
	"go-cyber-shooter/internal/system"
	"go-cyber-shooter/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Input: ввод за кадр. Определён в component, чтобы системы не зависели от app.
type Input = component.Input

// Point: позиция указателя.
type Point = component.Point

// Snapshot: копия состояния для отрисовки и HUD.
type Snapshot struct {
	SessionID   uuid.UUID
	Phase       component.SessionPhase
	Frame       int
	Player      component.Player
	Progression component.Progression
	HealthLeft  int
	World       entity.World
}

// Game хранит контекст симуляции одной сессии: пулы, игрок, прогресс и системы.
// Несколько Game могут существовать одновременно, общего состояния у них нет.
type Game struct {
	World           *entity.World
	Player          component.Player
	Progression     component.Progression
	EventDispatcher *event.Dispatcher
	Rng             utils.Random

	MovementSystem     *system.MovementSystem
	SpawnSystem        *system.SpawnSystem
	BossSystem         *system.BossSystem
	CollisionSystem    *system.CollisionSystem
	VisualEffectSystem *system.VisualEffectSystem
	ProgressionSystem  *system.ProgressionSystem

	field     component.Playfield
	phase     component.SessionPhase
	sessionID uuid.UUID
	frame     int
	overDue   bool // GameOver ещё не разослан
	log       zerolog.Logger
	baseLog   zerolog.Logger
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithLogger задаёт логгер; по умолчанию логи отключены.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) { g.baseLog = log }
}

// WithPlayfield задаёт размер поля; по умолчанию размер экрана.
func WithPlayfield(width, height float64) Option {
	return func(g *Game) { g.field = component.Playfield{Width: width, Height: height} }
}

// NewGame создаёт игру в состоянии NotStarted.
func NewGame(rng utils.Random, opts ...Option) *Game {
	g := &Game{
		World:           entity.NewWorld(),
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		Progression:     component.NewProgression(),
		field:           component.Playfield{Width: config.ScreenWidth, Height: config.ScreenHeight},
		phase:           component.NotStarted,
		baseLog:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.baseLog

	g.VisualEffectSystem = system.NewVisualEffectSystem(g.World, rng)
	g.MovementSystem = system.NewMovementSystem(g.World, g.field, g.EventDispatcher)
	g.SpawnSystem = system.NewSpawnSystem(g.World, g.field, rng, g.EventDispatcher)
	g.BossSystem = system.NewBossSystem(g.World, g.field, g.EventDispatcher)
	g.CollisionSystem = system.NewCollisionSystem(g.World, g.VisualEffectSystem, g.SpawnSystem, g.BossSystem, g.EventDispatcher)
	g.ProgressionSystem = system.NewProgressionSystem(&g.Progression, g.EventDispatcher, g.gameOver)

	g.EventDispatcher.Subscribe(&sessionLogger{game: g},
		event.BossSpawned, event.BossEnraged, event.BossDestroyed, event.PlayerHit)

	g.resetPlayer()
	return g
}

// Start запускает новую сессию из NotStarted или Ended. Во время игры ничего не делает.
func (g *Game) Start() {
	if g.phase == component.Running {
		return
	}
	g.World.Reset()
	g.Progression = component.NewProgression()
	g.resetPlayer()
	g.frame = 0
	g.overDue = false
	g.sessionID = uuid.New()
	g.log = g.baseLog.With().Str("session", g.sessionID.String()).Logger()
	g.phase = component.Running

	g.log.Info().Msg("session started")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
}

// Halt останавливает идущую сессию снаружи, без события GameOver.
func (g *Game) Halt() {
	if g.phase != component.Running {
		return
	}
	g.phase = component.Ended
	g.log.Info().Int("score", g.Progression.Score).Int("level", g.Progression.Level).Msg("session halted")
}

// Update: один кадр симуляции. Порядок шагов фиксирован.
func (g *Game) Update(in Input) {
	if in.Start {
		g.Start()
	}
	if g.phase != component.Running {
		return
	}
	g.frame++

	g.MovementSystem.MovePlayer(&g.Player, in)
	g.MovementSystem.UpdateBullets()
	g.MovementSystem.UpdateEnemies()
	g.BossSystem.Update()
	g.VisualEffectSystem.Update()
	g.MovementSystem.UpdatePowerUps()

	g.CollisionSystem.Resolve(&g.Player, g.Ended)

	if g.phase == component.Running {
		g.SpawnSystem.Update(g.Progression)
	}

	g.World.Compact()

	if g.overDue {
		g.overDue = false
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.GameOverData{Score: g.Progression.Score, Level: g.Progression.Level},
		})
	}
}

// gameOver вызывается системой прогресса посреди кадра. Фаза меняется сразу,
// а событие GameOver уходит в конце кадра, после всех событий столкновений.
func (g *Game) gameOver() {
	if g.phase != component.Running {
		return
	}
	g.phase = component.Ended
	g.overDue = true
	g.log.Info().
		Int("score", g.Progression.Score).
		Int("level", g.Progression.Level).
		Int("frames", g.frame).
		Msg("game over")
}

func (g *Game) resetPlayer() {
	g.Player = component.Player{
		Rect: component.Rect{
			X:      g.field.Width / 2,
			Y:      g.field.Height - config.PlayerSpawnOffsetY,
			Width:  config.PlayerSize,
			Height: config.PlayerSize,
		},
		Speed:         config.PlayerSpeed,
		FlashDuration: config.PlayerFlashDuration,
	}
}

// Phase возвращает текущую фазу сессии.
func (g *Game) Phase() component.SessionPhase { return g.phase }

// Running сообщает, идёт ли сессия.
func (g *Game) Running() bool { return g.phase == component.Running }

// Ended сообщает, завершена ли сессия.
func (g *Game) Ended() bool { return g.phase == component.Ended }

// SessionID: идентификатор текущей сессии (нулевой до первого старта).
func (g *Game) SessionID() uuid.UUID { return g.sessionID }

// Field возвращает размер игрового поля.
func (g *Game) Field() component.Playfield { return g.field }

// Snapshot возвращает копию состояния, безопасную для чтения после кадра.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID:   g.sessionID,
		Phase:       g.phase,
		Frame:       g.frame,
		Player:      g.Player,
		Progression: g.Progression,
		HealthLeft:  g.Progression.HealthLeft(config.MaxPlayerCollisions),
		World:       g.World.Clone(),
	}
}
