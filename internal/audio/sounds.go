package audio

import (
	"go-cyber-shooter/internal/config"

	"github.com/gopxl/beep"
)

// SoundType: звуковой эффект игры
type SoundType int

const (
	SoundShoot SoundType = iota
	SoundExplosion
	SoundBossDown
	SoundHit
	SoundPowerUp
	SoundEnrage
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundExplosion:
		return "explosion"
	case SoundBossDown:
		return "boss_down"
	case SoundHit:
		return "hit"
	case SoundPowerUp:
		return "power_up"
	case SoundEnrage:
		return "enrage"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Config задаёт параметры синтеза: частота дискретизации и громкости.
type Config struct {
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultConfig возвращает конфигурацию с заданной общей громкостью.
func DefaultConfig(master float64) *Config {
	return &Config{
		SampleRate:   config.AudioSampleRate,
		MasterVolume: master,
		EffectVolumes: map[SoundType]float64{
			SoundShoot:     0.25, // Стреляют часто, держим тише остальных
			SoundExplosion: 0.6,
			SoundBossDown:  0.9,
			SoundHit:       0.7,
			SoundPowerUp:   0.6,
			SoundEnrage:    0.7,
			SoundGameOver:  0.8,
		},
	}
}

func (c *Config) volume(s SoundType) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}

// CreateShootSound: короткий писк с падением частоты.
func CreateShootSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(1200, 600, config.ShootDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, config.ShootDuration, config.SoundAttack, config.ShootRelease, rate)
	return newVolume(shaped, cfg.volume(SoundShoot))
}

// CreateExplosionSound: шумовой взрыв с низким гулом.
func CreateExplosionSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, config.ExplodeDuration, WaveNoise, rate)
	rumble := NewSweep(120, 40, config.ExplodeDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4))
	shaped := NewEnvelope(mixed, config.ExplodeDuration, config.SoundAttack, config.ExplodeRelease, rate)
	return newVolume(shaped, cfg.volume(SoundExplosion))
}

// CreateBossDownSound: длинный раскат при гибели босса.
func CreateBossDownSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, config.BossDownDuration, WaveNoise, rate)
	drop := NewSweep(300, 30, config.BossDownDuration, WaveSaw, rate)
	mixed := beep.Mix(newVolume(noise, 0.5), newVolume(drop, 0.5))
	shaped := NewEnvelope(mixed, config.BossDownDuration, config.SoundAttack, config.BossDownRelease, rate)
	return newVolume(shaped, cfg.volume(SoundBossDown))
}

// CreateHitSound: резкий жужжащий удар по игроку.
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(100, config.HitDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, config.HitDuration, config.SoundAttack, config.HitRelease, rate)
	return newVolume(shaped, cfg.volume(SoundHit))
}

// CreatePowerUpSound: две восходящие ноты.
func CreatePowerUpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	n1 := NewEnvelope(NewOscillator(659.25, config.PowerUpNote, WaveSquare, rate),
		config.PowerUpNote, config.SoundAttack, config.PowerUpRelease, rate)
	n2 := NewEnvelope(NewOscillator(987.77, config.PowerUpNote, WaveSquare, rate),
		config.PowerUpNote, config.SoundAttack, config.PowerUpRelease, rate)
	return newVolume(beep.Seq(n1, n2), cfg.volume(SoundPowerUp))
}

// CreateEnrageSound: восходящая сирена при второй фазе босса.
func CreateEnrageSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewSweep(200, 800, config.EnrageDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, config.EnrageDuration, config.SoundAttack, config.EnrageRelease, rate)
	return newVolume(shaped, cfg.volume(SoundEnrage))
}

// CreateGameOverSound: три нисходящие ноты.
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := []float64{392.00, 311.13, 261.63}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		seq = append(seq, NewEnvelope(NewOscillator(f, config.GameOverNote, WaveSine, rate),
			config.GameOverNote, config.SoundAttack, config.GameOverRelease, rate))
	}
	return newVolume(beep.Seq(seq...), cfg.volume(SoundGameOver))
}

// GetSoundEffect возвращает поток для эффекта или nil для неизвестного типа.
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundShoot:
		return CreateShootSound(cfg)
	case SoundExplosion:
		return CreateExplosionSound(cfg)
	case SoundBossDown:
		return CreateBossDownSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundPowerUp:
		return CreatePowerUpSound(cfg)
	case SoundEnrage:
		return CreateEnrageSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
