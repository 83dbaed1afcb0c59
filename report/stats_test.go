package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evgeny0103/AlgoritmLesson3/bench"
)

func measurement(name string, baseline bool, ns ...float64) bench.Measurement {
	return bench.Measurement{
		Case:        bench.Case{Name: name, Description: name + " case", Baseline: baseline},
		NsPerOp:     ns,
		AllocsPerOp: 2,
		BytesPerOp:  16,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("Statistics", func(t *testing.T) {
		got := Summarize([]bench.Measurement{measurement("A", true, 3, 1, 2)})
		require.Len(t, got, 1)
		s := got[0]

		assert.Equal(t, "A", s.Name)
		assert.Equal(t, "A case", s.Description)
		assert.InDelta(t, 2.0, s.Mean, 1e-12)
		assert.InDelta(t, 1.0, s.StdDev, 1e-12)
		assert.InDelta(t, 1/math.Sqrt(3), s.StdErr, 1e-12)
		assert.Equal(t, 3.0, s.Max)
		assert.Equal(t, 2.0, s.Median)
		assert.Equal(t, 1.0, s.Ratio)
		assert.Equal(t, 3, s.Samples)
		assert.Equal(t, int64(2), s.AllocsPerOp)
	})

	t.Run("EvenMedian", func(t *testing.T) {
		got := Summarize([]bench.Measurement{measurement("A", true, 4, 1, 2, 3)})
		assert.Equal(t, 2.5, got[0].Median)
	})

	t.Run("SingleSample", func(t *testing.T) {
		got := Summarize([]bench.Measurement{measurement("A", true, 7)})
		assert.Equal(t, 7.0, got[0].Mean)
		assert.Zero(t, got[0].StdDev)
		assert.Zero(t, got[0].StdErr)
	})

	t.Run("RatioAgainstBaseline", func(t *testing.T) {
		got := Summarize([]bench.Measurement{
			measurement("Fast", false, 1, 1, 1),
			measurement("Base", true, 4, 4, 4),
		})
		assert.Equal(t, 0.25, got[0].Ratio)
		assert.Equal(t, 1.0, got[1].Ratio)
	})

	t.Run("NoBaselineUsesFirst", func(t *testing.T) {
		got := Summarize([]bench.Measurement{
			measurement("First", false, 2, 2),
			measurement("Second", false, 6, 6),
		})
		assert.Equal(t, 3.0, got[1].Ratio)
	})

	t.Run("ZeroBaseline", func(t *testing.T) {
		got := Summarize([]bench.Measurement{
			measurement("Empty", true),
			measurement("Other", false, 5),
		})
		assert.Zero(t, got[0].Samples)
		assert.Zero(t, got[1].Ratio)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Summarize(nil))
	})
}
