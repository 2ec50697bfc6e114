package audio

import (
	"fmt"
	"sync"

	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// eventSounds: какой звук играет на какое событие симуляции.
var eventSounds = map[event.EventType]SoundType{
	event.BulletFired:      SoundShoot,
	event.EnemyDestroyed:   SoundExplosion,
	event.BossDestroyed:    SoundBossDown,
	event.PlayerHit:        SoundHit,
	event.PowerUpCollected: SoundPowerUp,
	event.BossEnraged:      SoundEnrage,
	event.GameOver:         SoundGameOver,
}

// SoundFor возвращает звук для события, если он есть.
func SoundFor(t event.EventType) (SoundType, bool) {
	s, ok := eventSounds[t]
	return s, ok
}

// SoundManager синтезирует эффекты и отдаёт их в общий микшер динамика.
// Пока Initialize не вызван успешно, все методы проигрывания ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	log         zerolog.Logger
}

// NewSoundManager создаёт менеджер звука
func NewSoundManager(cfg *Config, log zerolog.Logger) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   log.With().Str("component", "audio").Logger(),
	}
}

// Initialize открывает устройство вывода. Ошибка не фатальна: игра идёт без звука.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(config.AudioBufferSize)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug().Int("sample_rate", sm.cfg.SampleRate).Float64("volume", sm.cfg.MasterVolume).Msg("audio initialized")
	return nil
}

// Cleanup останавливает все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// SetMuted включает и выключает звук без закрытия устройства.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted сообщает, выключен ли звук.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play проигрывает эффект поверх уже звучащих.
func (sm *SoundManager) Play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		sm.log.Warn().Stringer("sound", s).Msg("unknown sound effect")
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// OnEvent озвучивает событие симуляции.
func (sm *SoundManager) OnEvent(e event.Event) {
	if s, ok := SoundFor(e.Type); ok {
		sm.Play(s)
	}
}

// Subscribe подписывает менеджер на все озвучиваемые события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	types := make([]event.EventType, 0, len(eventSounds))
	for t := range eventSounds {
		types = append(types, t)
	}
	d.Subscribe(sm, types...)
}
