package flock

import "github.com/TheBitDrifter/table"

type factory struct{}

var Factory factory

func (f factory) NewSimulation(cfg Config) (*Simulation, error) {
	return newSimulation(cfg)
}

func (f factory) NewStore(schema table.Schema) (*Store, error) {
	return newStore(schema)
}

func (f factory) NewGrid(bounds Bounds, bucketCapacity int) *Grid {
	return newGrid(bounds, bucketCapacity)
}
