package flock

import "fmt"

type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Reason)
}

type CellOverflowError struct {
	CellX, CellY int
	Capacity     int
}

func (e CellOverflowError) Error() string {
	return fmt.Sprintf("grid cell (%d,%d) exceeded bucket capacity %d", e.CellX, e.CellY, e.Capacity)
}

type OutputBufferError struct {
	Need      int
	Positions int
	Sprites   int
}

func (e OutputBufferError) Error() string {
	return fmt.Sprintf("output buffers too small: need %d, got %d positions and %d sprites", e.Need, e.Positions, e.Sprites)
}

type UninitializedError struct{}

func (e UninitializedError) Error() string {
	return "simulation has not been initialized"
}
