// Package bench exposes the point distance benchmarks as parameterless entry
// points over a shared coordinate store, and runs them under timing.
package bench

import (
	"github.com/Evgeny0103/AlgoritmLesson3/coords"
	"github.com/Evgeny0103/AlgoritmLesson3/geom"
)

// Suite owns the coordinate store every entry point reads from.
// Results are written to sinks so the compiler cannot drop the work.
type Suite struct {
	store *coords.Store

	sink32 float32
	sink64 float64
}

// NewSuite prepares a suite backed by the default coordinate store.
func NewSuite(opts ...coords.Option) (*Suite, error) {
	store, err := coords.NewDefault(opts...)
	if err != nil {
		return nil, err
	}
	return NewSuiteWithStore(store), nil
}

func NewSuiteWithStore(store *coords.Store) *Suite {
	return &Suite{store: store}
}

func (s *Suite) Store() *coords.Store { return s.store }

// Last32 and Last64 report the most recent result of the float32 and
// float64 entry points.
func (s *Suite) Last32() float32 { return s.sink32 }
func (s *Suite) Last64() float64 { return s.sink64 }

func (s *Suite) RefFloat32() {
	p := geom.NewRefPoint32(s.store.NextFloatPair())
	q := geom.NewRefPoint32(s.store.NextFloatPair())
	s.sink32 = geom.RefDistance32(p, q)
}

func (s *Suite) RefFloat64() {
	p := geom.NewRefPoint64(s.store.NextDoublePair())
	q := geom.NewRefPoint64(s.store.NextDoublePair())
	s.sink64 = geom.RefDistance64(p, q)
}

func (s *Suite) ValueFloat32() {
	p := geom.MakePoint32(s.store.NextFloatPair())
	q := geom.MakePoint32(s.store.NextFloatPair())
	s.sink32 = geom.Distance32(p, q)
}

func (s *Suite) ValueFloat64() {
	p := geom.MakePoint64(s.store.NextDoublePair())
	q := geom.MakePoint64(s.store.NextDoublePair())
	s.sink64 = geom.Distance64(p, q)
}

func (s *Suite) SquaredValueFloat32() {
	p := geom.MakePoint32(s.store.NextFloatPair())
	q := geom.MakePoint32(s.store.NextFloatPair())
	s.sink32 = geom.SquaredDistance32(p, q)
}

func (s *Suite) SquaredValueFloat64() {
	p := geom.MakePoint64(s.store.NextDoublePair())
	q := geom.MakePoint64(s.store.NextDoublePair())
	s.sink64 = geom.SquaredDistance64(p, q)
}

// ValueFloat64FromFloat32 measures float64 points built from float32 pairs.
func (s *Suite) ValueFloat64FromFloat32() {
	p := geom.MakePoint64From32(s.store.NextFloatPair())
	q := geom.MakePoint64From32(s.store.NextFloatPair())
	s.sink64 = geom.Distance64(p, q)
}
