package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Run("ThreeFourFive", func(t *testing.T) {
		assert.Equal(t, float32(5), RefDistance32(NewRefPoint32(0, 0), NewRefPoint32(3, 4)))
		assert.Equal(t, float64(5), RefDistance64(NewRefPoint64(0, 0), NewRefPoint64(3, 4)))
		assert.Equal(t, float32(5), Distance32(MakePoint32(0, 0), MakePoint32(3, 4)))
		assert.Equal(t, float64(5), Distance64(MakePoint64(0, 0), MakePoint64(3, 4)))
		assert.Equal(t, float32(25), SquaredDistance32(MakePoint32(0, 0), MakePoint32(3, 4)))
		assert.Equal(t, float64(25), SquaredDistance64(MakePoint64(0, 0), MakePoint64(3, 4)))
	})

	t.Run("SamePoint", func(t *testing.T) {
		assert.Equal(t, float32(0), RefDistance32(NewRefPoint32(-7.5, 12), NewRefPoint32(-7.5, 12)))
		assert.Equal(t, float64(0), RefDistance64(NewRefPoint64(-7.5, 12), NewRefPoint64(-7.5, 12)))
		assert.Equal(t, float32(0), Distance32(MakePoint32(-7.5, 12), MakePoint32(-7.5, 12)))
		assert.Equal(t, float64(0), Distance64(MakePoint64(-7.5, 12), MakePoint64(-7.5, 12)))
	})

	t.Run("NaNPropagates", func(t *testing.T) {
		nan := math.NaN()
		assert.True(t, math.IsNaN(Distance64(MakePoint64(nan, 0), MakePoint64(1, 1))))
		assert.True(t, math.IsInf(SquaredDistance64(MakePoint64(math.MaxFloat64, 0), MakePoint64(-math.MaxFloat64, 0)), 1))
	})
}

func TestDistanceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	coord := func() float64 { return rng.Float64()*20000 - 10000 }

	for i := 0; i < 1000; i++ {
		x1, y1, x2, y2 := coord(), coord(), coord(), coord()

		p64, q64 := MakePoint64(x1, y1), MakePoint64(x2, y2)
		rp64, rq64 := NewRefPoint64(x1, y1), NewRefPoint64(x2, y2)
		p32, q32 := MakePoint32(float32(x1), float32(y1)), MakePoint32(float32(x2), float32(y2))
		rp32, rq32 := NewRefPoint32(float32(x1), float32(y1)), NewRefPoint32(float32(x2), float32(y2))

		// symmetry
		require.Equal(t, Distance64(p64, q64), Distance64(q64, p64))
		require.Equal(t, Distance32(p32, q32), Distance32(q32, p32))
		require.Equal(t, RefDistance64(rp64, rq64), RefDistance64(rq64, rp64))
		require.Equal(t, RefDistance32(rp32, rq32), RefDistance32(rq32, rp32))

		// representation does not change the value
		require.Equal(t, math.Float64bits(Distance64(p64, q64)), math.Float64bits(RefDistance64(rp64, rq64)))
		require.Equal(t, math.Float32bits(Distance32(p32, q32)), math.Float32bits(RefDistance32(rp32, rq32)))

		// squared distance is the square of the distance
		d64 := Distance64(p64, q64)
		require.InEpsilon(t, d64*d64, SquaredDistance64(p64, q64), 1e-12)
		d32 := Distance32(p32, q32)
		require.InEpsilon(t, float64(d32*d32), float64(SquaredDistance32(p32, q32)), 1e-5)
	}
}

func TestDistanceMatchesOracles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := MakePoint64(rng.Float64()*200-100, rng.Float64()*200-100)
		b := MakePoint64(rng.Float64()*200-100, rng.Float64()*200-100)

		viaR2 := r2.Point{X: a.X, Y: a.Y}.Sub(r2.Point{X: b.X, Y: b.Y}).Norm()
		viaOrb := planar.Distance(orb.Point{a.X, a.Y}, orb.Point{b.X, b.Y})

		assert.InDelta(t, viaR2, Distance64(a, b), 1e-9)
		assert.InDelta(t, viaOrb, Distance64(a, b), 1e-9)
		assert.InDelta(t, planar.DistanceSquared(orb.Point{a.X, a.Y}, orb.Point{b.X, b.Y}), SquaredDistance64(a, b), 1e-9)
		assert.InDelta(t, viaOrb, float64(Distance32(MakePoint32(float32(a.X), float32(a.Y)), MakePoint32(float32(b.X), float32(b.Y)))), 1e-3)
	}
}

func TestMakePoint64From32(t *testing.T) {
	p := MakePoint64From32(1.5, -0.1)
	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, float64(float32(-0.1)), p.Y)
}

var refSink *RefPoint32

func TestAllocations(t *testing.T) {
	t.Run("RefPointEscapes", func(t *testing.T) {
		allocs := testing.AllocsPerRun(100, func() {
			refSink = NewRefPoint32(1, 2)
		})
		assert.Equal(t, float64(1), allocs)
	})

	t.Run("ValuePointStaysOnStack", func(t *testing.T) {
		var d float32
		allocs := testing.AllocsPerRun(100, func() {
			d = Distance32(MakePoint32(1, 2), MakePoint32(4, 6))
		})
		assert.Equal(t, float64(0), allocs)
		assert.Equal(t, float32(5), d)
	})
}
