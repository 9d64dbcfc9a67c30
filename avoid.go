package flock

import "fmt"

// reactionOvershoot scales the post-reaction nudge past the normal per-frame
// displacement, pushing a reacting entity out of the collision zone before the
// next frame re-tests it.
const reactionOvershoot = 1.1

var _ System = &AvoidanceSystem{}

// AvoidanceSystem reacts regular entities away from nearby hazards. Each
// update rebuilds the hazard grid, then tests every regular entity against the
// hazards bucketed in its own cell only: a hazard's footprint already covers
// every cell from which it could be within the avoidance distance, so no
// neighbor fan-out is needed on the query side.
type AvoidanceSystem struct {
	grid          *Grid
	regularCount  int
	hazardCount   int
	avoidDistance float32
}

func newAvoidanceSystem(grid *Grid, regularCount, hazardCount int, avoidDistance float32) *AvoidanceSystem {
	return &AvoidanceSystem{
		grid:          grid,
		regularCount:  regularCount,
		hazardCount:   hazardCount,
		avoidDistance: avoidDistance,
	}
}

// Update rebuilds the grid from the current hazard positions and applies the
// proximity reaction: on a strict-distance hit the regular entity's velocity
// is negated on both axes, its position nudged along the new velocity by
// dt*reactionOvershoot, and the hazard's colors copied onto its sprite (the
// variant index is untouched). Hazards sharing a bucket are processed in
// bucket order against the entity's current position, so one entity can react
// several times within a single call.
func (a *AvoidanceSystem) Update(store *Store, _ float64, dt float32) error {
	err := a.grid.Rebuild(store, EntityID(a.regularCount), a.hazardCount, a.avoidDistance)
	if err != nil {
		return fmt.Errorf("failed to rebuild hazard grid: %w", err)
	}

	distSq := a.avoidDistance * a.avoidDistance
	for id := EntityID(0); id < EntityID(a.regularCount); id++ {
		pos := store.Position(id)
		cx := a.grid.cellX(pos.X)
		cy := a.grid.cellY(pos.Y)
		if !a.grid.Occupied(cx, cy) {
			continue
		}
		for hazard := range a.grid.Cell(cx, cy) {
			hazardPos := store.Position(hazard)
			dx := pos.X - hazardPos.X
			dy := pos.Y - hazardPos.Y
			if dx*dx+dy*dy >= distSq {
				continue
			}

			mov := store.Movement(id)
			mov.VelX = -mov.VelX
			mov.VelY = -mov.VelY
			pos.X += mov.VelX * dt * reactionOvershoot
			pos.Y += mov.VelY * dt * reactionOvershoot

			sprite := store.Sprite(id)
			hazardSprite := store.Sprite(hazard)
			sprite.ColorR = hazardSprite.ColorR
			sprite.ColorG = hazardSprite.ColorG
			sprite.ColorB = hazardSprite.ColorB
		}
	}
	return nil
}
