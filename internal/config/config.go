// internal/config/config.go
package config

import (
	"go-cyber-shooter/pkg/render"
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TicksPerSec  = 60

	PlayerSize          = 30.0
	PlayerSpeed         = 5.0
	PlayerSpawnOffsetY  = 100.0 // Отступ от нижнего края при старте
	PlayerFlashDuration = 60    // Кадры неуязвимости после попадания
	PlayerBlinkPeriod   = 5     // Кадры на одно "мигание" при неуязвимости

	PlayerBulletWidth  = 4.0
	PlayerBulletHeight = 10.0
	PlayerBulletSpeed  = 10.0
	PlayerBulletDamage = 10

	EnemySize            = 30.0
	EnemySpawnY          = -30.0
	EnemyBaseSpeed       = 2.0
	EnemySpeedJitter     = 2.0 // Умножается на gameSpeed
	EnemyBaseHealth      = 20
	EnemyHealthPerLevel  = 5
	EnemySpawnChance     = 0.02 // За кадр, умножается на gameSpeed
	EnemyType            = "normal"
	EnemyKillScore       = 10
	PowerUpDropChance    = 0.1
	EnemyDeathParticles  = 8
	PlayerHitParticles   = 5
	BossHitParticles     = 8
	PowerUpParticles     = 5
	BossDeathParticles   = 15
	ParticleLife         = 30
	ParticleMaxSpeed     = 4.0
	ParticleMinSize      = 2.0
	ParticleSizeJitter   = 4.0
	EnemyContactPenalty  = 1
	BossContactPenalty   = 2
	BulletHitPenalty     = 1
	MaxPlayerCollisions  = 3
	WeaponPowerUpScore   = 50
	BossKillScorePerLvl  = 100
	GameSpeedPerBossKill = 0.2

	BossSize                  = 100.0
	BossSpawnY                = -100.0
	BossBaseSpeed             = 1.0
	BossSpeedPerLevel         = 0.2
	BossBaseHealth            = 200
	BossHealthPerLevel        = 50
	BossSpawnChance           = 0.005 // За кадр, умножается на уровень
	BossAttackInterval        = 60
	BossEnragedAttackInterval = 40

	BossBulletWidth     = 6.0
	BossBulletHeight    = 12.0
	BossBulletSpeed     = 5.0
	BossBulletDamage    = 20
	BossFanBulletSpeed  = 4.0
	BossFanBulletDamage = 15
	BossFanSpread       = 2.0 // Горизонтальная скорость крайних пуль веера
	BossFanBullets      = 3

	PowerUpSize  = 20.0
	PowerUpSpeed = 2.0

	GameOverCloseDelay = 3.0 // Секунды до попытки закрыть окно
	GameOverAlertDelay = 0.1 // Секунды до показа итогов, если окно не закрылось

	BossBarHeight  = 8.0
	BossBarOffsetY = 15.0

	HUDMargin       = 20
	HUDLineHeight   = 28
	HUDFontSize     = 20
	TitleFontSize   = 48
	HintFontSize    = 24
	PanelWidth      = 420
	PanelHeight     = 220
	BuildingCount   = 15
	RainColumnCount = 50
)

// Звук
const (
	AudioSampleRate  = 44100
	AudioBufferSize  = 100 * time.Millisecond
	SoundAttack      = 5 * time.Millisecond
	ShootDuration    = 60 * time.Millisecond
	ShootRelease     = 40 * time.Millisecond
	ExplodeDuration  = 250 * time.Millisecond
	ExplodeRelease   = 200 * time.Millisecond
	BossDownDuration = 700 * time.Millisecond
	BossDownRelease  = 500 * time.Millisecond
	HitDuration      = 150 * time.Millisecond
	HitRelease       = 100 * time.Millisecond
	PowerUpNote      = 80 * time.Millisecond
	PowerUpRelease   = 50 * time.Millisecond
	EnrageDuration   = 400 * time.Millisecond
	EnrageRelease    = 150 * time.Millisecond
	GameOverNote     = 220 * time.Millisecond
	GameOverRelease  = 150 * time.Millisecond
)

var (
	BackgroundColor  = color.RGBA{5, 5, 20, 255}
	TrailColor       = color.RGBA{0, 0, 0, 26} // rgba(0,0,0,0.1): оставляет шлейф
	OverlayColor     = color.RGBA{0, 0, 0, 178}
	PlayerColor      = render.MustParseHex("#0ff")
	PlayerBulletClr  = render.MustParseHex("#0ff")
	EnemyColor       = render.MustParseHex("#f0f")
	BossColor        = render.MustParseHex("#ff0")
	BossBulletColor  = render.MustParseHex("#ff0")
	HealthPowerColor = render.MustParseHex("#0f0")
	WeaponPowerColor = render.MustParseHex("#ff0")
	BossBarBackColor = render.MustParseHex("#f00")
	BossBarFillColor = render.MustParseHex("#0f0")
	TextLightColor   = render.MustParseHex("#0ff")
	PanelColor       = color.RGBA{10, 0, 30, 230}
	PanelStrokeColor = render.MustParseHex("#f0f")
	BuildingColor    = color.RGBA{20, 10, 45, 255}
	RainColor        = color.RGBA{0, 255, 70, 60}
	StrokeWidth      = float32(2.0)
	BossStrokeWidth  = float32(3.0)
)
