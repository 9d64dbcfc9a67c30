package flock

var _ System = MotionSystem{}

// MotionSystem integrates every entity's position by its velocity and reflects
// entities off the world bounds.
type MotionSystem struct {
	bounds Bounds
}

func newMotionSystem(bounds Bounds) MotionSystem {
	return MotionSystem{bounds: bounds}
}

// Update advances all entities by dt. The four face checks are independent and
// unconditional: an entity that overshoots in both axes reflects on both in
// the same call. An entity whose step crosses the whole domain is only clamped
// once per axis, a cheap approximation that holds while per-frame displacement
// stays small relative to the domain.
func (m MotionSystem) Update(store *Store, _ float64, dt float32) error {
	count := EntityID(store.Len())
	for id := EntityID(0); id < count; id++ {
		pos := store.Position(id)
		mov := store.Movement(id)
		pos.X += mov.VelX * dt
		pos.Y += mov.VelY * dt

		if pos.X < m.bounds.XMin {
			mov.VelX = -mov.VelX
			pos.X = m.bounds.XMin
		}
		if pos.X > m.bounds.XMax {
			mov.VelX = -mov.VelX
			pos.X = m.bounds.XMax
		}
		if pos.Y < m.bounds.YMin {
			mov.VelY = -mov.VelY
			pos.Y = m.bounds.YMin
		}
		if pos.Y > m.bounds.YMax {
			mov.VelY = -mov.VelY
			pos.Y = m.bounds.YMax
		}
	}
	return nil
}
