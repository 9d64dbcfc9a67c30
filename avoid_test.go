package flock

import (
	"math/rand"
	"testing"
)

// newTestSimulation builds an initialized simulation with a fixed seed so
// tests can overwrite entity state deterministically afterwards.
func newTestSimulation(t *testing.T, regular, hazards int) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.RegularCount = regular
	cfg.HazardCount = hazards
	sim, err := Factory.NewSimulation(cfg)
	if err != nil {
		t.Fatalf("Failed to create simulation: %v", err)
	}
	if err := sim.Initialize(rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Failed to initialize simulation: %v", err)
	}
	return sim
}

func TestProximityReaction(t *testing.T) {
	sim := newTestSimulation(t, 1, 1)
	store := sim.Store()

	*store.Position(0) = Position{X: 1, Y: 0}
	*store.Movement(0) = Movement{VelX: 0.1, VelY: 0.1}
	*store.Sprite(0) = Sprite{ColorR: 255, ColorG: 255, ColorB: 255, Index: 2}

	*store.Position(1) = Position{X: 0, Y: 0}
	*store.Movement(1) = Movement{}
	*store.Sprite(1) = Sprite{ColorR: 200, ColorG: 100, ColorB: 50, Index: HazardSpriteIndex}

	positions := make([]Position, 2)
	sprites := make([]Sprite, 2)
	if _, err := sim.Update(positions, sprites, 0, 1.0/60); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	mov := store.Movement(0)
	if mov.VelX >= 0 || mov.VelY >= 0 {
		t.Errorf("Velocity = %+v, want both components flipped negative", *mov)
	}
	if sprites[0].ColorR != 200 || sprites[0].ColorG != 100 || sprites[0].ColorB != 50 {
		t.Errorf("Sprite color = (%d,%d,%d), want (200,100,50)",
			sprites[0].ColorR, sprites[0].ColorG, sprites[0].ColorB)
	}
	if sprites[0].Index != 2 {
		t.Errorf("Sprite variant index = %d, want 2 (reactions must not touch it)", sprites[0].Index)
	}
}

func TestNoFalseReaction(t *testing.T) {
	sim := newTestSimulation(t, 1, 1)
	store := sim.Store()

	// Well outside the avoidance distance and away from every bound
	*store.Position(0) = Position{X: 40, Y: 20}
	*store.Movement(0) = Movement{VelX: 0.1, VelY: -0.1}
	*store.Sprite(0) = Sprite{ColorR: 255, ColorG: 255, ColorB: 255, Index: 3}

	*store.Position(1) = Position{X: 0, Y: 0}
	*store.Movement(1) = Movement{}
	*store.Sprite(1) = Sprite{ColorR: 200, ColorG: 100, ColorB: 50, Index: HazardSpriteIndex}

	positions := make([]Position, 2)
	sprites := make([]Sprite, 2)
	if _, err := sim.Update(positions, sprites, 0, 1.0/60); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if got := *store.Movement(0); got != (Movement{VelX: 0.1, VelY: -0.1}) {
		t.Errorf("Velocity = %+v, want unchanged (0.1,-0.1)", got)
	}
	if sprites[0] != (Sprite{ColorR: 255, ColorG: 255, ColorB: 255, Index: 3}) {
		t.Errorf("Sprite = %+v, want untouched white sprite", sprites[0])
	}
}

func TestRepeatedReactionInBucketOrder(t *testing.T) {
	// Two hazards in the same cell: both trigger, in bucket (id) order. The
	// velocity flips twice, back to its original sign, and the sprite ends up
	// with the second hazard's color.
	sim := newTestSimulation(t, 1, 2)
	store := sim.Store()

	*store.Position(0) = Position{X: 0.4, Y: 0}
	*store.Movement(0) = Movement{VelX: 0.1, VelY: 0.1}
	*store.Sprite(0) = Sprite{ColorR: 255, ColorG: 255, ColorB: 255, Index: 0}

	*store.Position(1) = Position{X: 0, Y: 0}
	*store.Movement(1) = Movement{}
	*store.Sprite(1) = Sprite{ColorR: 10, ColorG: 20, ColorB: 30, Index: HazardSpriteIndex}

	*store.Position(2) = Position{X: 0.8, Y: 0}
	*store.Movement(2) = Movement{}
	*store.Sprite(2) = Sprite{ColorR: 130, ColorG: 140, ColorB: 150, Index: HazardSpriteIndex}

	positions := make([]Position, 3)
	sprites := make([]Sprite, 3)
	if _, err := sim.Update(positions, sprites, 0, 0.001); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	mov := store.Movement(0)
	if mov.VelX <= 0 || mov.VelY <= 0 {
		t.Errorf("Velocity = %+v, want double flip back to positive components", *mov)
	}
	if sprites[0].ColorR != 130 || sprites[0].ColorG != 140 || sprites[0].ColorB != 150 {
		t.Errorf("Sprite color = (%d,%d,%d), want the second hazard's (130,140,150)",
			sprites[0].ColorR, sprites[0].ColorG, sprites[0].ColorB)
	}
}

func TestHazardsDoNotReact(t *testing.T) {
	sim := newTestSimulation(t, 1, 2)
	store := sim.Store()

	// Two hazards on top of each other; the regular entity far away
	*store.Position(0) = Position{X: 40, Y: 20}
	*store.Movement(0) = Movement{}
	*store.Position(1) = Position{X: 0, Y: 0}
	*store.Movement(1) = Movement{VelX: 0.05, VelY: 0}
	*store.Sprite(1) = Sprite{ColorR: 10, ColorG: 20, ColorB: 30, Index: HazardSpriteIndex}
	*store.Position(2) = Position{X: 0.1, Y: 0}
	*store.Movement(2) = Movement{VelX: -0.05, VelY: 0}
	*store.Sprite(2) = Sprite{ColorR: 130, ColorG: 140, ColorB: 150, Index: HazardSpriteIndex}

	positions := make([]Position, 3)
	sprites := make([]Sprite, 3)
	if _, err := sim.Update(positions, sprites, 0, 1.0/60); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// Hazards keep their velocities and colors; only regular entities react
	if got := *store.Movement(1); got != (Movement{VelX: 0.05, VelY: 0}) {
		t.Errorf("Hazard 1 velocity = %+v, want unchanged", got)
	}
	if got := *store.Movement(2); got != (Movement{VelX: -0.05, VelY: 0}) {
		t.Errorf("Hazard 2 velocity = %+v, want unchanged", got)
	}
	if sprites[1].ColorR != 10 || sprites[2].ColorR != 130 {
		t.Errorf("Hazard colors changed: %+v, %+v", sprites[1], sprites[2])
	}
}
