package geom

// RefPoint32 is a 2D point meant to be handled through a pointer.
// NewRefPoint32 always places it on the heap.
type RefPoint32 struct {
	X, Y float32
}

// RefPoint64 is the float64 counterpart of RefPoint32.
type RefPoint64 struct {
	X, Y float64
}

// Point32 is a 2D point passed and returned by value.
type Point32 struct {
	X, Y float32
}

// Point64 is the float64 counterpart of Point32.
type Point64 struct {
	X, Y float64
}

// NewRefPoint32 allocates a point on the heap.
// Returning &local from a non-inlined function forces the escape.
//
//go:noinline
func NewRefPoint32(x, y float32) *RefPoint32 {
	return &RefPoint32{X: x, Y: y}
}

// NewRefPoint64 allocates a point on the heap.
//
//go:noinline
func NewRefPoint64(x, y float64) *RefPoint64 {
	return &RefPoint64{X: x, Y: y}
}

func MakePoint32(x, y float32) Point32 {
	return Point32{X: x, Y: y}
}

func MakePoint64(x, y float64) Point64 {
	return Point64{X: x, Y: y}
}

// MakePoint64From32 widens a float32 coordinate pair into a Point64.
func MakePoint64From32(x, y float32) Point64 {
	return Point64{X: float64(x), Y: float64(y)}
}
