package flock

// Simulation constants. Avoidance distance and the reaction overshoot are
// tuned against the default bounds; both are overridable through Config only
// where a field exists for them.
const (
	// DefaultAvoidDistance is the radius within which a regular entity reacts
	// to a hazard, in world units.
	DefaultAvoidDistance float32 = 1.3

	// DefaultRegularCount and DefaultHazardCount size the two contiguous id
	// ranges of the population.
	DefaultRegularCount = 1 << 20
	DefaultHazardCount  = 20

	// hazardSpawnScale shrinks the bounds about their center for hazard
	// placement, so hazards start near the middle of the domain.
	hazardSpawnScale = 0.2

	// HazardSpriteIndex is the visual-variant sentinel assigned to hazards,
	// so renderers can tell the two kinds apart without velocity or id-range
	// knowledge. Regular entities draw their variant from
	// [0, HazardSpriteIndex).
	HazardSpriteIndex = 5
)

// DefaultBounds is the world rectangle used by DefaultConfig.
var DefaultBounds = Bounds{XMin: -80, XMax: 80, YMin: -50, YMax: 50}

// Config holds the fixed parameters of one simulation. It is owned by the
// caller and passed to the constructor; nothing in the package is global.
type Config struct {
	// Bounds is the world rectangle. Immutable after construction.
	Bounds Bounds

	// RegularCount and HazardCount fix the population. Entity ids
	// [0, RegularCount) are regular, [RegularCount, RegularCount+HazardCount)
	// are hazards. Neither changes after Initialize.
	RegularCount int
	HazardCount  int

	// AvoidDistance is the proximity-reaction radius.
	AvoidDistance float32

	// BucketCapacity caps each grid cell's hazard bucket. Zero means
	// HazardCount, which is always sufficient: a hazard is inserted at most
	// once per cell per rebuild.
	BucketCapacity int
}

// DefaultConfig returns a config matching the original demo population: about
// a million regular entities and a handful of hazards.
func DefaultConfig() Config {
	return Config{
		Bounds:        DefaultBounds,
		RegularCount:  DefaultRegularCount,
		HazardCount:   DefaultHazardCount,
		AvoidDistance: DefaultAvoidDistance,
	}
}

// Validate reports the first invalid field as a ConfigError.
func (c Config) Validate() error {
	if c.RegularCount < 1 {
		return ConfigError{Field: "RegularCount", Reason: "must be at least 1"}
	}
	if c.HazardCount < 1 {
		return ConfigError{Field: "HazardCount", Reason: "must be at least 1"}
	}
	if c.Bounds.Width() <= 0 || c.Bounds.Height() <= 0 {
		return ConfigError{Field: "Bounds", Reason: "must span a positive area"}
	}
	if c.AvoidDistance <= 0 {
		return ConfigError{Field: "AvoidDistance", Reason: "must be positive"}
	}
	if c.BucketCapacity < 0 {
		return ConfigError{Field: "BucketCapacity", Reason: "must not be negative"}
	}
	return nil
}
