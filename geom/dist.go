package geom

import (
	"math"

	"github.com/chewxy/math32"
)

// RefDistance32 returns the Euclidean distance between two heap points.
func RefDistance32(a, b *RefPoint32) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// RefDistance64 returns the Euclidean distance between two heap points.
func RefDistance64(a, b *RefPoint64) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance32 returns the Euclidean distance between two value points.
func Distance32(a, b Point32) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math32.Sqrt(dx*dx + dy*dy)
}

// Distance64 returns the Euclidean distance between two value points.
func Distance64(a, b Point64) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// SquaredDistance32 skips the square root.
func SquaredDistance32(a, b Point32) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// SquaredDistance64 skips the square root.
func SquaredDistance64(a, b Point64) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
