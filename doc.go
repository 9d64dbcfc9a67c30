/*
Package flock simulates a large population of moving point entities avoiding a
small population of hazards, one frame at a time.

Flock stores entity data in struct-of-arrays tables (via TheBitDrifter/table)
so the per-frame motion and avoidance passes walk contiguous memory. Proximity
queries between the large entity set and the small hazard set go through a
uniform 64x64 spatial grid that is rebuilt from the hazard positions every
frame, which keeps the per-frame cost at O(entities) instead of
O(entities * hazards).

Core Concepts:

  - EntityID: a dense, zero-based handle; ids [0, RegularCount) are regular
    entities, the rest are hazards.
  - Store: struct-of-arrays storage for the Position, Sprite, and Movement
    components, indexed by EntityID.
  - System: one pass of the per-frame step. MotionSystem integrates and
    reflects off the world bounds; AvoidanceSystem rebuilds the grid and
    reacts regular entities away from nearby hazards.
  - Simulation: the caller-owned context that wires the above together behind
    an Initialize/Update/Destroy lifecycle.

Basic Usage:

	// Create a simulation
	cfg := flock.DefaultConfig()
	cfg.RegularCount = 100_000
	sim, _ := flock.Factory.NewSimulation(cfg)
	sim.Initialize(rand.New(rand.NewSource(1)))
	defer sim.Destroy()

	// Step it once per frame, reading results into caller-owned buffers
	positions := make([]flock.Position, cfg.RegularCount+cfg.HazardCount)
	sprites := make([]flock.Sprite, cfg.RegularCount+cfg.HazardCount)
	for frame := 0; frame < 60; frame++ {
		n, err := sim.Update(positions, sprites, float64(frame)/60, 1.0/60)
		if err != nil {
			// undersized buffers or a grid bucket overflow
		}
		_ = n // always RegularCount+HazardCount
	}

A Simulation is single-threaded: Update runs the full motion-then-avoidance
pass to completion and nothing else may touch the simulation state while it
runs. Stepping is deterministic; randomness is confined to Initialize.
*/
package flock
