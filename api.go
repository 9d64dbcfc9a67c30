package flock

// EntityID is a dense, zero-based entity handle. Ids are assigned sequentially
// at population-creation time and are never reused or freed individually.
type EntityID int

// System is a single pass of the per-frame simulation step. Update runs the
// pass to completion over the shared store. The time parameter is the running
// simulation time; dt is the frame delta in the same units.
type System interface {
	Update(store *Store, time float64, dt float32) error
}

// Bounds is the fixed rectangular domain entities reflect off of.
type Bounds struct {
	XMin, XMax float32
	YMin, YMax float32
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float32 {
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float32 {
	return b.YMax - b.YMin
}
