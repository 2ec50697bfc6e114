package entity

import (
	"go-cyber-shooter/internal/component"
	"testing"
)

func TestCompactKeepsOrderAndDropsMarked(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Enemies = append(w.Enemies, component.Enemy{Health: i})
	}
	w.Enemies[1].Removed = true
	w.Enemies[3].Removed = true

	w.Compact()

	if len(w.Enemies) != 3 {
		t.Fatalf("Expected 3 enemies, got %d", len(w.Enemies))
	}
	for i, want := range []int{0, 2, 4} {
		if w.Enemies[i].Health != want {
			t.Errorf("Expected enemy %d to have health %d, got %d", i, want, w.Enemies[i].Health)
		}
	}
}

func TestResetEmptiesAllPools(t *testing.T) {
	w := NewWorld()
	w.Bullets = append(w.Bullets, component.Bullet{})
	w.Enemies = append(w.Enemies, component.Enemy{})
	w.Bosses = append(w.Bosses, component.Boss{})
	w.Particles = append(w.Particles, component.Particle{})
	w.PowerUps = append(w.PowerUps, component.PowerUp{})

	w.Reset()

	if len(w.Bullets)+len(w.Enemies)+len(w.Bosses)+len(w.Particles)+len(w.PowerUps) != 0 {
		t.Errorf("Expected all pools empty, got %+v", w)
	}
}

func TestHasLiveBossIgnoresMarked(t *testing.T) {
	w := NewWorld()
	if w.HasLiveBoss() {
		t.Fatal("Expected no boss in an empty world")
	}
	w.Bosses = append(w.Bosses, component.Boss{Removed: true})
	if w.HasLiveBoss() {
		t.Error("Expected a marked boss not to count")
	}
	w.Bosses[0].Removed = false
	if !w.HasLiveBoss() {
		t.Error("Expected a live boss")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := NewWorld()
	w.Enemies = append(w.Enemies, component.Enemy{Health: 10})

	snap := w.Clone()
	w.Enemies[0].Health = 0

	if snap.Enemies[0].Health != 10 {
		t.Errorf("Expected snapshot to keep health 10, got %d", snap.Enemies[0].Health)
	}
}
