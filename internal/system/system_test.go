package system

import (
	"math"
	"testing"

	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/entity"
	"go-cyber-shooter/internal/event"
	"go-cyber-shooter/internal/utils/randtest"
)

var testField = component.Playfield{Width: config.ScreenWidth, Height: config.ScreenHeight}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSpawnEnemyFormula(t *testing.T) {
	world := entity.NewWorld()
	s := NewSpawnSystem(world, testField, randtest.New(0.5, 0.5), event.NewDispatcher())

	s.SpawnEnemy(component.Progression{Level: 2, GameSpeed: 1.2})

	if len(world.Enemies) != 1 {
		t.Fatalf("Expected 1 enemy, got %d", len(world.Enemies))
	}
	e := world.Enemies[0]
	if !almostEqual(e.X, 0.5*(config.ScreenWidth-config.EnemySize)) || e.Y != config.EnemySpawnY {
		t.Errorf("Expected enemy at (585, -30), got (%v, %v)", e.X, e.Y)
	}
	if !almostEqual(e.Speed, 3.2) {
		t.Errorf("Expected speed 3.2, got %v", e.Speed)
	}
	if e.Health != 30 {
		t.Errorf("Expected health 30, got %d", e.Health)
	}
	if e.Type != config.EnemyType {
		t.Errorf("Expected type %q, got %q", config.EnemyType, e.Type)
	}
}

func TestSpawnBossFormula(t *testing.T) {
	world := entity.NewWorld()
	d := event.NewDispatcher()
	spawned := 0
	d.Subscribe(event.ListenerFunc(func(event.Event) { spawned++ }), event.BossSpawned)
	s := NewSpawnSystem(world, testField, randtest.Never(), d)

	s.SpawnBoss(2)

	b := world.Bosses[0]
	if b.Health != 300 || b.MaxHealth != 300 {
		t.Errorf("Expected health 300/300, got %d/%d", b.Health, b.MaxHealth)
	}
	if !almostEqual(b.Speed, 1.4) {
		t.Errorf("Expected speed 1.4, got %v", b.Speed)
	}
	if b.X != 550 || b.Y != config.BossSpawnY {
		t.Errorf("Expected boss at (550, -100), got (%v, %v)", b.X, b.Y)
	}
	if b.Phase != 1 || b.AttackInterval != config.BossAttackInterval || b.BulletPattern != component.PatternStraight {
		t.Errorf("Expected phase 1 straight shooter, got %+v", b)
	}
	if spawned != 1 {
		t.Errorf("Expected one BossSpawned event, got %d", spawned)
	}
}

func TestSpawnUpdateRolls(t *testing.T) {
	world := entity.NewWorld()
	// шанс врага, x, скорость, шанс босса
	rng := randtest.New(0.01, 0.5, 0.5, 0.004)
	s := NewSpawnSystem(world, testField, rng, event.NewDispatcher())

	s.Update(component.NewProgression())

	if len(world.Enemies) != 1 || len(world.Bosses) != 1 {
		t.Fatalf("Expected an enemy and a boss, got %d and %d", len(world.Enemies), len(world.Bosses))
	}

	calls := rng.Calls()
	rng.Values = []float64{0.99}
	s.Update(component.NewProgression())
	if len(world.Bosses) != 1 {
		t.Errorf("Expected no second boss, got %d", len(world.Bosses))
	}
	if rng.Calls() != calls+1 {
		t.Errorf("Expected only the enemy roll while a boss is alive, got %d rolls", rng.Calls()-calls)
	}
}

func TestSpawnChanceScalesWithProgress(t *testing.T) {
	world := entity.NewWorld()
	// 0.03 не проходит при gameSpeed 1, но проходит при 2; 0.008 проходит для босса уровня 2
	s := NewSpawnSystem(world, testField, randtest.New(0.03, 0.03), event.NewDispatcher())
	s.Update(component.NewProgression())
	if len(world.Enemies) != 0 {
		t.Fatalf("Expected no enemy at base speed, got %d", len(world.Enemies))
	}

	s = NewSpawnSystem(world, testField, randtest.New(0.03, 0, 0, 0.008), event.NewDispatcher())
	s.Update(component.Progression{Level: 2, GameSpeed: 2})
	if len(world.Enemies) != 1 || len(world.Bosses) != 1 {
		t.Errorf("Expected enemy and boss at higher difficulty, got %d and %d", len(world.Enemies), len(world.Bosses))
	}
}

func TestRollPowerUp(t *testing.T) {
	world := entity.NewWorld()
	s := NewSpawnSystem(world, testField, randtest.New(0.05, 0.9), event.NewDispatcher())

	if !s.RollPowerUp(40, 50) {
		t.Fatal("Expected power-up to drop")
	}
	pu := world.PowerUps[0]
	if pu.Kind != component.PowerUpWeapon || pu.Color != config.WeaponPowerColor {
		t.Errorf("Expected weapon power-up, got %v", pu.Kind)
	}
	if pu.X != 40 || pu.Y != 50 || pu.Speed != config.PowerUpSpeed {
		t.Errorf("Expected power-up at (40, 50) with speed %v, got %+v", config.PowerUpSpeed, pu)
	}

	if s.RollPowerUp(40, 50) {
		t.Error("Expected no drop on a failed roll")
	}
}

func TestBossStraightShot(t *testing.T) {
	world := entity.NewWorld()
	d := event.NewDispatcher()
	attacks := 0
	d.Subscribe(event.ListenerFunc(func(event.Event) { attacks++ }), event.BossAttacked)
	s := NewBossSystem(world, testField, d)

	world.Bosses = append(world.Bosses, component.Boss{
		Rect:           component.Rect{X: 100, Y: 100, Width: config.BossSize, Height: config.BossSize},
		Health:         200,
		MaxHealth:      200,
		Phase:          1,
		AttackTimer:    config.BossAttackInterval - 1,
		AttackInterval: config.BossAttackInterval,
	})

	s.Update()

	if len(world.Bullets) != 1 {
		t.Fatalf("Expected 1 boss bullet, got %d", len(world.Bullets))
	}
	b := world.Bullets[0]
	if b.X != 150 || b.Y != 200 {
		t.Errorf("Expected bullet at bottom center (150, 200), got (%v, %v)", b.X, b.Y)
	}
	if !b.IsEnemyBullet || b.Damage != config.BossBulletDamage {
		t.Errorf("Expected enemy bullet with damage %d, got %+v", config.BossBulletDamage, b)
	}
	if dx, dy := b.Trajectory.Step(); dx != 0 || dy != config.BossBulletSpeed {
		t.Errorf("Expected downward step (0, %v), got (%v, %v)", config.BossBulletSpeed, dx, dy)
	}
	if world.Bosses[0].AttackTimer != 0 {
		t.Errorf("Expected attack timer reset, got %d", world.Bosses[0].AttackTimer)
	}
	if attacks != 1 {
		t.Errorf("Expected one BossAttacked event, got %d", attacks)
	}
}

func TestBossFanShot(t *testing.T) {
	world := entity.NewWorld()
	s := NewBossSystem(world, testField, event.NewDispatcher())
	world.Bosses = append(world.Bosses, component.Boss{
		Rect:           component.Rect{X: 100, Y: 100, Width: config.BossSize, Height: config.BossSize},
		Health:         100,
		MaxHealth:      200,
		Phase:          2,
		AttackTimer:    config.BossEnragedAttackInterval - 1,
		AttackInterval: config.BossEnragedAttackInterval,
		BulletPattern:  component.PatternFan,
	})

	s.Update()

	if len(world.Bullets) != config.BossFanBullets {
		t.Fatalf("Expected %d bullets, got %d", config.BossFanBullets, len(world.Bullets))
	}
	wantVX := []float64{-2, 0, 2}
	for i, b := range world.Bullets {
		dx, dy := b.Trajectory.Step()
		if dx != wantVX[i] || dy != config.BossFanBulletSpeed {
			t.Errorf("bullet %d: expected step (%v, %v), got (%v, %v)", i, wantVX[i], config.BossFanBulletSpeed, dx, dy)
		}
		if b.Damage != config.BossFanBulletDamage {
			t.Errorf("bullet %d: expected damage %d, got %d", i, config.BossFanBulletDamage, b.Damage)
		}
	}
}

func TestCheckPhaseOnce(t *testing.T) {
	world := entity.NewWorld()
	d := event.NewDispatcher()
	var got []event.BossEnragedData
	d.Subscribe(event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(event.BossEnragedData))
	}), event.BossEnraged)
	s := NewBossSystem(world, testField, d)

	boss := &component.Boss{Health: 130, MaxHealth: 250, Phase: 1, AttackInterval: config.BossAttackInterval}
	if s.CheckPhase(boss) {
		t.Fatal("Expected no phase change above half health")
	}
	boss.Health = 125
	if !s.CheckPhase(boss) {
		t.Fatal("Expected phase change at half health")
	}
	boss.Health = 50
	if s.CheckPhase(boss) {
		t.Error("Expected phase change to happen only once")
	}
	if len(got) != 1 || got[0].Health != 125 || got[0].AttackInterval != config.BossEnragedAttackInterval {
		t.Errorf("Expected one BossEnraged{125, 40}, got %+v", got)
	}
}

func TestBossLeavesField(t *testing.T) {
	world := entity.NewWorld()
	s := NewBossSystem(world, component.Playfield{Width: 200, Height: 200}, event.NewDispatcher())
	world.Bosses = append(world.Bosses, component.Boss{
		Rect:           component.Rect{X: 50, Y: 199, Width: config.BossSize, Height: config.BossSize},
		Speed:          2,
		AttackInterval: config.BossAttackInterval,
	})

	s.Update()

	if !world.Bosses[0].Removed {
		t.Error("Expected boss below the field to be removed")
	}
}

func TestBulletsOutOfField(t *testing.T) {
	world := entity.NewWorld()
	s := NewMovementSystem(world, component.Playfield{Width: 100, Height: 100}, event.NewDispatcher())

	world.Bullets = []component.Bullet{
		{Rect: component.Rect{X: 10, Y: 5, Width: 4, Height: 10}, Trajectory: component.Straight{Speed: 10, Dir: -1}},
		{Rect: component.Rect{X: 10, Y: 50, Width: 4, Height: 10}, Trajectory: component.Straight{Speed: 10, Dir: -1}},
		{Rect: component.Rect{X: 10, Y: 98, Width: 6, Height: 12}, Trajectory: component.Straight{Speed: 5, Dir: 1}, IsEnemyBullet: true},
		{Rect: component.Rect{X: -5, Y: 50, Width: 6, Height: 12}, Trajectory: component.Patterned{VX: -2, VY: 4}, IsEnemyBullet: true},
		{Rect: component.Rect{X: 99, Y: 50, Width: 6, Height: 12}, Trajectory: component.Patterned{VX: 2, VY: 4}, IsEnemyBullet: true},
		{Rect: component.Rect{X: 50, Y: 50, Width: 6, Height: 12}, Trajectory: component.Patterned{VX: 2, VY: 4}, IsEnemyBullet: true},
	}

	s.UpdateBullets()

	want := []bool{true, false, true, true, true, false}
	for i, b := range world.Bullets {
		if b.Removed != want[i] {
			t.Errorf("bullet %d: expected removed=%v at (%v, %v)", i, want[i], b.X, b.Y)
		}
	}

	world.Compact()
	if len(world.Bullets) != 2 {
		t.Errorf("Expected 2 bullets after compaction, got %d", len(world.Bullets))
	}
}

func TestEnemiesAndPowerUpsFall(t *testing.T) {
	world := entity.NewWorld()
	s := NewMovementSystem(world, component.Playfield{Width: 100, Height: 100}, event.NewDispatcher())
	world.Enemies = []component.Enemy{
		{Rect: component.Rect{Y: 10}, Speed: 3},
		{Rect: component.Rect{Y: 99}, Speed: 3},
	}
	world.PowerUps = []component.PowerUp{
		{Rect: component.Rect{Y: 99}, Speed: 2},
	}

	s.UpdateEnemies()
	s.UpdatePowerUps()

	if world.Enemies[0].Y != 13 || world.Enemies[0].Removed {
		t.Errorf("Expected enemy at y=13, got %+v", world.Enemies[0])
	}
	if !world.Enemies[1].Removed {
		t.Error("Expected enemy below the field to be removed")
	}
	if !world.PowerUps[0].Removed {
		t.Error("Expected power-up below the field to be removed")
	}
}

func TestMovePlayerClampsAndTicks(t *testing.T) {
	world := entity.NewWorld()
	s := NewMovementSystem(world, component.Playfield{Width: 100, Height: 100}, event.NewDispatcher())
	p := &component.Player{
		Rect:          component.Rect{X: 2, Y: 70, Width: 30, Height: 30},
		Speed:         5,
		FlashDuration: 3,
	}
	p.StartFlash()

	s.MovePlayer(p, component.Input{Left: true, Down: true})

	if p.X != 0 || p.Y != 70 {
		t.Errorf("Expected clamped position (0, 70), got (%v, %v)", p.X, p.Y)
	}
	if p.FlashTimer != 2 {
		t.Errorf("Expected flash timer 2, got %d", p.FlashTimer)
	}

	s.MovePlayer(p, component.Input{Pointer: &component.Point{X: 500, Y: -500}})
	if p.X != 70 || p.Y != 0 {
		t.Errorf("Expected pointer target clamped to (70, 0), got (%v, %v)", p.X, p.Y)
	}
}

func TestMovePlayerFiresBeforeMoving(t *testing.T) {
	world := entity.NewWorld()
	d := event.NewDispatcher()
	fired := 0
	d.Subscribe(event.ListenerFunc(func(event.Event) { fired++ }), event.BulletFired)
	s := NewMovementSystem(world, testField, d)
	p := &component.Player{Rect: component.Rect{X: 100, Y: 100, Width: 30, Height: 30}, Speed: 5}

	s.MovePlayer(p, component.Input{Fire: true, Right: true})

	if len(world.Bullets) != 1 || fired != 1 {
		t.Fatalf("Expected one bullet and one event, got %d and %d", len(world.Bullets), fired)
	}
	if world.Bullets[0].X != 115 || world.Bullets[0].Y != 100 {
		t.Errorf("Expected bullet at pre-move position (115, 100), got (%v, %v)", world.Bullets[0].X, world.Bullets[0].Y)
	}
	if p.X != 105 {
		t.Errorf("Expected player moved to x=105, got %v", p.X)
	}
}

func TestParticlesFade(t *testing.T) {
	world := entity.NewWorld()
	s := NewVisualEffectSystem(world, randtest.New(0.5, 0.75, 0.5))

	s.Burst(10, 20, config.EnemyColor, 3)

	if len(world.Particles) != 3 {
		t.Fatalf("Expected 3 particles, got %d", len(world.Particles))
	}
	p := world.Particles[0]
	if p.VX != 0 || p.VY != 2 || p.Size != 4 {
		t.Errorf("Expected velocity (0, 2) and size 4, got (%v, %v) size %v", p.VX, p.VY, p.Size)
	}
	if p.Life != config.ParticleLife || p.Color != config.EnemyColor {
		t.Errorf("Expected life %d with the source color, got %+v", config.ParticleLife, p)
	}

	for i := 0; i < config.ParticleLife-1; i++ {
		s.Update()
	}
	if world.Particles[0].Removed {
		t.Fatal("Expected particle alive before its last frame")
	}
	s.Update()
	for i, p := range world.Particles {
		if !p.Removed {
			t.Errorf("particle %d: expected removal after %d frames", i, config.ParticleLife)
		}
	}
}

func TestProgressionRules(t *testing.T) {
	prog := component.NewProgression()
	d := event.NewDispatcher()
	overs := 0
	NewProgressionSystem(&prog, d, func() { overs++ })

	d.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyDestroyedData{}})
	d.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpCollectedData{Kind: component.PowerUpWeapon}})
	d.Dispatch(event.Event{Type: event.BossDestroyed, Data: event.BossDestroyedData{}})
	d.Dispatch(event.Event{Type: event.BossDestroyed, Data: event.BossDestroyedData{}})

	if prog.Score != 10+50+100+200 {
		t.Errorf("Expected score 360, got %d", prog.Score)
	}
	if prog.Level != 3 || !almostEqual(prog.GameSpeed, 1.4) {
		t.Errorf("Expected level 3 speed 1.4, got %d %v", prog.Level, prog.GameSpeed)
	}

	d.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Source: event.HitByBoss, Amount: 2}})
	d.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpCollectedData{Kind: component.PowerUpHealth}})
	if prog.CollisionCount != 1 || overs != 0 {
		t.Errorf("Expected 1 collision and no game over, got %d and %d", prog.CollisionCount, overs)
	}

	d.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Source: event.HitByBoss, Amount: 2}})
	if overs != 1 {
		t.Errorf("Expected game over callback at the limit, got %d", overs)
	}

	d.Dispatch(event.Event{Type: event.PlayerHit, Data: "broken"})
	if prog.CollisionCount != 3 {
		t.Errorf("Expected malformed payload to be ignored, got %d collisions", prog.CollisionCount)
	}
}
