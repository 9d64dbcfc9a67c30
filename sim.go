package flock

import (
	"math"
	"math/rand"
	"time"

	"github.com/TheBitDrifter/table"
)

// Startup speed ranges, in world units per second. Hazards drift slower than
// the population avoiding them.
const (
	regularSpeedMin float32 = 0.3
	regularSpeedMax float32 = 0.6
	hazardSpeedMin  float32 = 0.1
	hazardSpeedMax  float32 = 0.2
)

// Simulation is one caller-owned simulation context. It holds the component
// store and spatial grid privately and steps them with a motion pass followed
// by an avoidance pass, once per Update call.
//
// A Simulation is not safe for concurrent use: Update runs to completion on
// the calling goroutine and nothing else may touch the simulation between
// calls.
type Simulation struct {
	cfg         Config
	store       *Store
	grid        *Grid
	systems     []System
	initialized bool
}

func newSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BucketCapacity == 0 {
		cfg.BucketCapacity = cfg.HazardCount
	}

	store, err := newStore(table.Factory.NewSchema())
	if err != nil {
		return nil, err
	}
	grid := newGrid(cfg.Bounds, cfg.BucketCapacity)

	return &Simulation{
		cfg:   cfg,
		store: store,
		grid:  grid,
		systems: []System{
			newMotionSystem(cfg.Bounds),
			newAvoidanceSystem(grid, cfg.RegularCount, cfg.HazardCount, cfg.AvoidDistance),
		},
	}, nil
}

// Initialize creates and populates the fixed population: ids
// [0, RegularCount) are regular entities, the rest hazards. Regular entities
// spawn anywhere in bounds with a white sprite, a random variant index and a
// velocity from a random angle; hazards spawn in the central sub-region with a
// random bright color, the hazard variant sentinel and a slower velocity.
//
// All randomness lives here. A nil rng falls back to a time-seeded source;
// pass a seeded rng for reproducible populations.
func (s *Simulation) Initialize(rng *rand.Rand) error {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	ids, err := s.store.NewEntities(s.cfg.RegularCount + s.cfg.HazardCount)
	if err != nil {
		return err
	}
	bounds := s.cfg.Bounds

	for _, id := range ids[:s.cfg.RegularCount] {
		pos := s.store.Position(id)
		pos.X = randomRange(rng, bounds.XMin, bounds.XMax)
		pos.Y = randomRange(rng, bounds.YMin, bounds.YMax)

		sprite := s.store.Sprite(id)
		sprite.ColorR, sprite.ColorG, sprite.ColorB = 255, 255, 255
		sprite.Index = uint8(rng.Intn(HazardSpriteIndex))

		setRandomVelocity(rng, s.store.Movement(id), regularSpeedMin, regularSpeedMax)
	}

	centerX := (bounds.XMin + bounds.XMax) / 2
	centerY := (bounds.YMin + bounds.YMax) / 2
	spawnW := bounds.Width() * hazardSpawnScale / 2
	spawnH := bounds.Height() * hazardSpawnScale / 2
	for _, id := range ids[s.cfg.RegularCount:] {
		pos := s.store.Position(id)
		pos.X = centerX + randomRange(rng, -spawnW, spawnW)
		pos.Y = centerY + randomRange(rng, -spawnH, spawnH)

		sprite := s.store.Sprite(id)
		sprite.ColorR = brightChannel(rng)
		sprite.ColorG = brightChannel(rng)
		sprite.ColorB = brightChannel(rng)
		sprite.Index = HazardSpriteIndex

		setRandomVelocity(rng, s.store.Movement(id), hazardSpeedMin, hazardSpeedMax)
	}

	s.initialized = true
	return nil
}

// Update runs one motion pass then one avoidance pass, copies the full
// position and sprite columns in id order into the caller's buffers, and
// returns the total entity count written. Both buffers must hold at least
// RegularCount+HazardCount elements.
func (s *Simulation) Update(outPositions []Position, outSprites []Sprite, t float64, dt float32) (int, error) {
	if !s.initialized {
		return 0, UninitializedError{}
	}
	count := s.store.Len()
	if len(outPositions) < count || len(outSprites) < count {
		return 0, OutputBufferError{Need: count, Positions: len(outPositions), Sprites: len(outSprites)}
	}

	for _, system := range s.systems {
		if err := system.Update(s.store, t, dt); err != nil {
			return 0, err
		}
	}

	for id := EntityID(0); id < EntityID(count); id++ {
		outPositions[id] = *s.store.Position(id)
		outSprites[id] = *s.store.Sprite(id)
	}
	return count, nil
}

// Destroy releases the simulation's storage. The simulation cannot be stepped
// afterwards; calling Destroy twice is safe.
func (s *Simulation) Destroy() {
	s.store = nil
	s.grid = nil
	s.systems = nil
	s.initialized = false
}

// Store exposes the underlying component store, for drivers and tests that
// need to read or seed entity data directly between steps.
func (s *Simulation) Store() *Store {
	return s.store
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config {
	return s.cfg
}

func randomRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

func setRandomVelocity(rng *rand.Rand, mov *Movement, speedMin, speedMax float32) {
	angle := rng.Float64() * 2 * math.Pi
	speed := randomRange(rng, speedMin, speedMax)
	mov.VelX = float32(math.Cos(angle)) * speed
	mov.VelY = float32(math.Sin(angle)) * speed
}

// brightChannel samples one color channel from the upper half of the range.
func brightChannel(rng *rand.Rand) uint8 {
	return uint8(128 + rng.Intn(128))
}
