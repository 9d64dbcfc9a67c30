package flock

import (
	"fmt"

	"github.com/TheBitDrifter/table"
)

// Store is struct-of-arrays storage for the three entity components, indexed
// by EntityID. All component columns always hold exactly the same number of
// rows, and an in-range id always resolves to valid data for every component.
//
// A Store is a single table: every entity carries the same component set, and
// the regular/hazard split is a contiguous id-range convention, not a
// per-entity tag.
type Store struct {
	schema table.Schema
	tbl    table.Table

	position AccessibleComponent[Position]
	sprite   AccessibleComponent[Sprite]
	movement AccessibleComponent[Movement]
}

func newStore(schema table.Schema) (*Store, error) {
	position := FactoryNewComponent[Position]()
	sprite := FactoryNewComponent[Sprite]()
	movement := FactoryNewComponent[Movement]()

	for _, component := range []Component{position, sprite, movement} {
		schema.Register(component)
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(schema).
		WithEntryIndex(table.Factory.NewEntryIndex()).
		WithElementTypes(position, sprite, movement).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build component table: %w", err)
	}
	return &Store{
		schema:   schema,
		tbl:      tbl,
		position: position,
		sprite:   sprite,
		movement: movement,
	}, nil
}

// NewEntities appends n rows and returns their ids. Ids are the new row
// indexes in order, so the first call after construction returns [0, n).
func (s *Store) NewEntities(n int) ([]EntityID, error) {
	entries, err := s.tbl.NewEntries(n)
	if err != nil {
		return nil, fmt.Errorf("failed to create entities: %w", err)
	}
	ids := make([]EntityID, len(entries))
	for i, entry := range entries {
		ids[i] = EntityID(entry.Index())
	}
	return ids, nil
}

// Len returns the current entity count.
func (s *Store) Len() int {
	return s.tbl.Length()
}

// Position returns the position of the given entity.
func (s *Store) Position(id EntityID) *Position {
	return s.position.Get(int(id), s.tbl)
}

// Sprite returns the sprite attributes of the given entity.
func (s *Store) Sprite(id EntityID) *Sprite {
	return s.sprite.Get(int(id), s.tbl)
}

// Movement returns the velocity of the given entity.
func (s *Store) Movement(id EntityID) *Movement {
	return s.movement.Get(int(id), s.tbl)
}
