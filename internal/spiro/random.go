package spiro

import "math/rand"

const (
	minOuter    = 50
	minInner    = 10
	minPenRatio = 0.1
	maxPenRatio = 0.9
)

// Generator produces random curve parameters that fit a viewport.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded with seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns valid Params for a width x height viewport. The fixed
// radius never exceeds half the smaller side and the rolling radius stays
// below nine tenths of it.
func (g *Generator) Generate(width, height int) Params {
	R := g.intIn(minOuter, min(width, height)/2)
	r := g.intIn(minInner, 9*R/10)
	l := minPenRatio + g.rng.Float64()*(maxPenRatio-minPenRatio)
	xc := g.intIn(-width/2, width/2)
	yc := g.intIn(-height/2, height/2)
	return Params{
		Xc:    float64(xc),
		Yc:    float64(yc),
		Outer: R,
		Inner: r,
		L:     l,
		Color: Color{R: g.rng.Float64(), G: g.rng.Float64(), B: g.rng.Float64()},
	}
}

// intIn returns an integer in [lo, hi]. An empty range yields lo.
func (g *Generator) intIn(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
