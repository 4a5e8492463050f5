package atmosphere

import (
	gomath "math"

	"github.com/aquilax/go-perlin"

	"github.com/Faultbox/skyoptics/pkg/math"
)

// FBMOctaves is the number of noise octaves summed by FBM.
const FBMOctaves = 5

// NoiseSource samples a scalar 2D noise field in roughly [0,1).
type NoiseSource interface {
	Noise(x, y float64) float64
}

// Hash is the lattice hash used by the cloud shader:
// fract(sin(dot(p, (127.1, 311.7))) * 43758.5453123).
func Hash(x, y float64) float64 {
	return math.Fract(gomath.Sin(math.Dot2(x, y, 127.1, 311.7)) * 43758.5453123)
}

// ValueNoise is hash-based value noise with smoothstep-weighted bilinear
// interpolation. It matches the GPU implementation up to float
// precision.
type ValueNoise struct{}

// Noise implements NoiseSource.
func (ValueNoise) Noise(x, y float64) float64 {
	ix, iy := gomath.Floor(x), gomath.Floor(y)
	fx, fy := x-ix, y-iy

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	a := Hash(ix, iy)
	b := Hash(ix+1, iy)
	c := Hash(ix, iy+1)
	d := Hash(ix+1, iy+1)

	return math.Mix(math.Mix(a, b, ux), math.Mix(c, d, ux), uy)
}

// PerlinNoise adapts go-perlin gradient noise to the [0,1) range of
// ValueNoise so FBM thresholds keep their meaning.
type PerlinNoise struct {
	p *perlin.Perlin
}

// NewPerlinNoise creates a seeded Perlin source.
func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{p: perlin.NewPerlin(2, 2, 3, seed)}
}

// Noise implements NoiseSource.
func (n *PerlinNoise) Noise(x, y float64) float64 {
	// Noise2D is roughly symmetric around zero with |v| < 1.
	return math.Clamp(n.p.Noise2D(x, y)*0.5+0.5, 0, 0.999999)
}

// FBM sums FBMOctaves octaves of src, starting at amplitude 0.5 and halving
// it while the frequency doubles. With a [0,1) source the result is in [0,1).
func FBM(src NoiseSource, x, y float64) float64 {
	total := 0.0
	amplitude := 0.5
	for i := 0; i < FBMOctaves; i++ {
		total += src.Noise(x, y) * amplitude
		x *= 2
		y *= 2
		amplitude *= 0.5
	}
	return total
}
