package flock

import (
	"github.com/TheBitDrifter/table"
)

// Component represents a data attribute that can be attached to entities
type Component interface {
	table.ElementType
}

// Position is an entity's world position. It doubles as the position record
// handed to callers through Simulation.Update.
type Position struct {
	X, Y float32
}

// Sprite holds an entity's three color channels and its visual-variant index.
// It doubles as the sprite record handed to callers through Simulation.Update.
// Index is fixed at creation; the avoidance reaction only rewrites the colors.
type Sprite struct {
	ColorR, ColorG, ColorB uint8
	Index                  uint8
}

// Movement is an entity's velocity. Mutated by MotionSystem on boundary
// contact and by AvoidanceSystem on a proximity reaction.
type Movement struct {
	VelX, VelY float32
}

// AccessibleComponent extends a base Component with table-based accessibility
type AccessibleComponent[T any] struct {
	Component
	table.Accessor[T] // concrete.
}

// FactoryNewComponent creates a typed component with its table accessor
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	iden := table.FactoryNewElementType[T]()
	return AccessibleComponent[T]{
		Component: iden,
		Accessor:  table.FactoryNewAccessor[T](iden),
	}
}

// GetFromStore retrieves the component value for the given entity
func (c AccessibleComponent[T]) GetFromStore(store *Store, id EntityID) *T {
	return c.Get(int(id), store.tbl)
}
