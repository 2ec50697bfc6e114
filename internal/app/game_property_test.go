package app

import (
	"testing"

	"go-cyber-shooter/internal/component"
	"go-cyber-shooter/internal/config"
	"go-cyber-shooter/internal/event"
	"go-cyber-shooter/internal/utils"

	"pgregory.net/rapid"
)

// Маленькое поле, чтобы столкновения случались часто.
const (
	propFieldW = 240.0
	propFieldH = 240.0
)

func inputGen() *rapid.Generator[Input] {
	return rapid.Custom(func(t *rapid.T) Input {
		in := Input{
			Left:  rapid.Bool().Draw(t, "left"),
			Right: rapid.Bool().Draw(t, "right"),
			Up:    rapid.Bool().Draw(t, "up"),
			Down:  rapid.Bool().Draw(t, "down"),
			Fire:  rapid.Bool().Draw(t, "fire"),
		}
		if rapid.IntRange(0, 9).Draw(t, "pointer") == 0 {
			in.Pointer = &Point{
				X: rapid.Float64Range(-200, propFieldW+200).Draw(t, "px"),
				Y: rapid.Float64Range(-200, propFieldH+200).Draw(t, "py"),
			}
		}
		return in
	})
}

func propGame(t *rapid.T) *Game {
	seed := rapid.Int64Range(1, 1<<40).Draw(t, "seed")
	g := NewGame(utils.NewPRNGService(seed), WithPlayfield(propFieldW, propFieldH))
	g.Start()
	return g
}

func TestPlayerStaysInsideField(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := propGame(t)
		inputs := rapid.SliceOfN(inputGen(), 1, 300).Draw(t, "inputs")

		for i, in := range inputs {
			g.Update(in)
			p := g.Player
			if p.X < 0 || p.Y < 0 || p.X+p.Width > propFieldW || p.Y+p.Height > propFieldH {
				t.Fatalf("frame %d: player out of field at (%v, %v)", i, p.X, p.Y)
			}
		}
	})
}

func TestCollisionCountOnlyDropsOnHealthPickup(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := propGame(t)
		healthPickups := 0
		g.EventDispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
			if data, ok := e.Data.(event.PowerUpCollectedData); ok && data.Kind == component.PowerUpHealth {
				healthPickups++
			}
		}), event.PowerUpCollected)

		inputs := rapid.SliceOfN(inputGen(), 1, 300).Draw(t, "inputs")
		for i, in := range inputs {
			before := g.Progression.CollisionCount
			healthPickups = 0
			g.Update(in)
			after := g.Progression.CollisionCount

			if after < 0 {
				t.Fatalf("frame %d: negative collision count %d", i, after)
			}
			if after < before-healthPickups {
				t.Fatalf("frame %d: collisions dropped from %d to %d with %d health pickups", i, before, after, healthPickups)
			}
		}
	})
}

func TestGameOverMatchesCollisionLimit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := propGame(t)
		gameOvers := 0
		g.EventDispatcher.Subscribe(event.ListenerFunc(func(event.Event) {
			gameOvers++
		}), event.GameOver)

		inputs := rapid.SliceOfN(inputGen(), 1, 400).Draw(t, "inputs")
		for i, in := range inputs {
			g.Update(in)
			limitReached := g.Progression.CollisionCount >= config.MaxPlayerCollisions
			if g.Ended() != limitReached {
				t.Fatalf("frame %d: ended=%v but collisions=%d", i, g.Ended(), g.Progression.CollisionCount)
			}
			if gameOvers > 1 {
				t.Fatalf("frame %d: GameOver dispatched %d times", i, gameOvers)
			}
			if g.Ended() && gameOvers != 1 {
				t.Fatalf("frame %d: session ended without GameOver", i)
			}
		}
	})
}

func TestAtMostOneBossAlive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := propGame(t)
		inputs := rapid.SliceOfN(inputGen(), 1, 400).Draw(t, "inputs")

		for i, in := range inputs {
			g.Update(in)
			if len(g.World.Bosses) > 1 {
				t.Fatalf("frame %d: %d bosses alive", i, len(g.World.Bosses))
			}
			for _, b := range g.World.Bullets {
				if b.Removed {
					t.Fatalf("frame %d: removed bullet survived compaction", i)
				}
			}
		}
	})
}
