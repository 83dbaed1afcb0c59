package coords

// advance moves the shared cursor to the next pair. Once the cursor is past
// Len()-4 it restarts at 0, so the pair (cursor, cursor+1) is always in range.
func (s *Store) advance() int {
	if s.cursor > len(s.doubles)-4 {
		s.cursor = 0
	} else {
		s.cursor += 2
	}
	return s.cursor
}

// NextFloatPair advances the cursor and returns the float32 pair under it.
func (s *Store) NextFloatPair() (float32, float32) {
	i := s.advance()
	return s.floats[i], s.floats[i+1]
}

// NextDoublePair advances the cursor and returns the float64 pair under it.
// The cursor is the one NextFloatPair uses.
func (s *Store) NextDoublePair() (float64, float64) {
	i := s.advance()
	return s.doubles[i], s.doubles[i+1]
}

func (s *Store) NextIntPair() (int32, int32) {
	i := s.advance()
	return s.ints[i], s.ints[i+1]
}

func (s *Store) NextLongPair() (int64, int64) {
	i := s.advance()
	return s.longs[i], s.longs[i+1]
}
