// Package coords holds a fixed pool of pseudo-random coordinates and hands
// them out two at a time, so that benchmark loops pay neither for allocation
// nor for random number generation.
package coords

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"
)

const (
	DefaultSize = 100_000
	DefaultMin  = -10_000
	DefaultMax  = 10_000

	// LongScale widens the int64 sequence to a larger magnitude range.
	LongScale = 1_000_000

	// MinSize is the smallest store the advance rule can serve.
	MinSize = 4
)

var (
	ErrStoreTooSmall = errors.New("coords: store too small")
	ErrInvalidBounds = errors.New("coords: invalid bounds")
	ErrInvalidCursor = errors.New("coords: cursor out of range")
)

// Store is a pool of coordinates in four numeric representations sharing a
// single cursor. It is not safe for concurrent use.
type Store struct {
	ints    []int32
	longs   []int64
	floats  []float32
	doubles []float64

	min, max int
	cursor   int

	source    rand.Source
	cursorSet bool
	logger    *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithSeed makes the generated values reproducible.
func WithSeed(seed int64) Option {
	return func(s *Store) { s.source = rand.NewSource(seed) }
}

// WithSource sets the random source used to fill the store.
func WithSource(src rand.Source) Option {
	return func(s *Store) { s.source = src }
}

// WithCursor sets the starting cursor instead of drawing it.
func WithCursor(cursor int) Option {
	return func(s *Store) {
		s.cursor = cursor
		s.cursorSet = true
	}
}

// WithLogger lets callers plug in their preferred logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New fills a store of size values drawn uniformly from [min, max].
func New(size, min, max int, opts ...Option) (*Store, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: size %d, need at least %d", ErrStoreTooSmall, size, MinSize)
	}
	if min > max {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, min, max)
	}
	if min < math.MinInt32 || max > math.MaxInt32 {
		return nil, fmt.Errorf("%w: [%d, %d] does not fit int32", ErrInvalidBounds, min, max)
	}

	s := &Store{
		ints:    make([]int32, size),
		longs:   make([]int64, size),
		floats:  make([]float32, size),
		doubles: make([]float64, size),
		min:     min,
		max:     max,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = rand.NewSource(time.Now().UnixNano())
	}
	if s.cursorSet && (s.cursor < 0 || s.cursor >= size) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidCursor, s.cursor, size)
	}

	rnd := rand.New(s.source)
	span := max - min
	for i := 0; i < size; i++ {
		s.ints[i] = int32(min + rnd.Intn(span+1))
		s.longs[i] = int64(min+rnd.Intn(span+1)) * LongScale
		s.floats[i] = clamp32(float32(float64(min)+rnd.Float64()*float64(span)), float32(min), float32(max))
		s.doubles[i] = float64(min) + rnd.Float64()*float64(span)
	}
	if !s.cursorSet {
		s.cursor = rnd.Intn(size)
	}

	if s.logger != nil {
		s.logger.Printf("coords: filled %d values in [%d, %d], cursor=%d", size, min, max, s.cursor)
	}
	return s, nil
}

// NewDefault builds a store with DefaultSize values in [DefaultMin, DefaultMax].
func NewDefault(opts ...Option) (*Store, error) {
	return New(DefaultSize, DefaultMin, DefaultMax, opts...)
}

// narrowing to float32 may round past a bound that is not representable
func clamp32(v, lo, hi float32) float32 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

func (s *Store) Len() int    { return len(s.doubles) }
func (s *Store) Cursor() int { return s.cursor }
func (s *Store) Min() int    { return s.min }
func (s *Store) Max() int    { return s.max }

// The views below share memory with the store and must not be modified.

func (s *Store) Ints() []int32      { return s.ints }
func (s *Store) Longs() []int64     { return s.longs }
func (s *Store) Floats() []float32  { return s.floats }
func (s *Store) Doubles() []float64 { return s.doubles }
