package atmosphere

import (
	gomath "math"
	"math/rand/v2"
)

// Rain buffer sizing.
const (
	RainCapacity  = 100_000
	RainMaxActive = 10_000

	rainSpawnBase  = 10.0
	rainSpawnRange = 50.0
	rainBaseFall   = 0.5
	rainFallGain   = 1.5
)

// RainState is the per-frame rain output. Positions aliases the active
// prefix of the buffer and is only valid until the next Update.
type RainState struct {
	Visible     bool      `yaml:"visible"`
	Opacity     float64   `yaml:"opacity"`
	ActiveCount int       `yaml:"active_count"`
	Positions   []float32 `yaml:"-"`
}

// RainBuffer is a fixed-capacity particle buffer of x,y,z triples. It is
// allocated once and mutated in place; only the active prefix is updated.
type RainBuffer struct {
	positions []float32
	rng       *rand.Rand
}

// NewRainBuffer allocates capacity drops spread over
// [-sceneSize, sceneSize] horizontally and [10,60) vertically.
func NewRainBuffer(capacity int, sceneSize float64, seed uint64) *RainBuffer {
	if capacity <= 0 {
		capacity = RainCapacity
	}
	b := &RainBuffer{
		positions: make([]float32, capacity*3),
		rng:       rand.New(rand.NewPCG(seed, 0)),
	}
	for i := 0; i < capacity; i++ {
		b.positions[i*3] = float32((b.rng.Float64() - 0.5) * sceneSize * 2)
		b.positions[i*3+1] = b.spawnHeight()
		b.positions[i*3+2] = float32((b.rng.Float64() - 0.5) * sceneSize * 2)
	}
	return b
}

// Capacity returns the number of particle slots.
func (b *RainBuffer) Capacity() int {
	return len(b.positions) / 3
}

// Positions exposes the whole backing buffer.
func (b *RainBuffer) Positions() []float32 {
	return b.positions
}

// ActiveCount returns how many leading slots an intensity animates.
func (b *RainBuffer) ActiveCount(intensity float64) int {
	n := int(gomath.Floor(intensity * RainMaxActive))
	if n < 0 {
		return 0
	}
	if c := b.Capacity(); n > c {
		return c
	}
	return n
}

func (b *RainBuffer) spawnHeight() float32 {
	return float32(b.rng.Float64()*rainSpawnRange + rainSpawnBase)
}

// Update advances the active drops by one frame and recycles those that
// fell below the ground back to the spawn band, keeping x and z.
func (b *RainBuffer) Update(intensity float64) RainState {
	active := b.ActiveCount(intensity)
	fall := float32(rainBaseFall + intensity*rainFallGain)

	for i := 1; i < active*3; i += 3 {
		b.positions[i] -= fall
		if b.positions[i] < 0 {
			b.positions[i] = b.spawnHeight()
		}
	}

	return RainState{
		Visible:     intensity > 0,
		Opacity:     gomath.Min(0.2+intensity*0.8, 1),
		ActiveCount: active,
		Positions:   b.positions[:active*3],
	}
}
