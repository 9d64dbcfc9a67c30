package flock_test

import (
	"fmt"
	"math/rand"

	"github.com/TheBitDrifter/flock"
)

// Example shows a full simulation lifecycle: construct, initialize, step,
// read back, destroy.
func Example_basic() {
	cfg := flock.DefaultConfig()
	cfg.RegularCount = 1000
	cfg.HazardCount = 10

	sim, _ := flock.Factory.NewSimulation(cfg)
	if err := sim.Initialize(rand.New(rand.NewSource(1))); err != nil {
		fmt.Println("initialize failed:", err)
		return
	}
	defer sim.Destroy()

	positions := make([]flock.Position, cfg.RegularCount+cfg.HazardCount)
	sprites := make([]flock.Sprite, cfg.RegularCount+cfg.HazardCount)

	total := 0
	for frame := 0; frame < 10; frame++ {
		n, err := sim.Update(positions, sprites, float64(frame)/60, 1.0/60)
		if err != nil {
			fmt.Println("update failed:", err)
			return
		}
		total = n
	}

	fmt.Println("Entities per frame:", total)
	// Output: Entities per frame: 1010
}

// Example_hazards shows how the id space is partitioned: regular entities
// first, hazards last, recognizable by their variant index.
func Example_hazards() {
	cfg := flock.DefaultConfig()
	cfg.RegularCount = 3
	cfg.HazardCount = 2

	sim, _ := flock.Factory.NewSimulation(cfg)
	sim.Initialize(rand.New(rand.NewSource(1)))
	defer sim.Destroy()

	positions := make([]flock.Position, 5)
	sprites := make([]flock.Sprite, 5)
	sim.Update(positions, sprites, 0, 1.0/60)

	hazards := 0
	for _, sprite := range sprites {
		if sprite.Index == flock.HazardSpriteIndex {
			hazards++
		}
	}
	fmt.Println("Hazards:", hazards)
	// Output: Hazards: 2
}
