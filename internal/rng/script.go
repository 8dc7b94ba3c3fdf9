package rng

// Script is a Source that replays a fixed sequence of floats. Once the
// sequence is exhausted it keeps returning the last value. Shuffle is a
// no-op so scripted tests see catalog order.
type Script struct {
	Values []float64
	pos    int
}

func (s *Script) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos]
	if s.pos < len(s.Values)-1 {
		s.pos++
	}
	return v
}

func (s *Script) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn with non-positive n")
	}
	return int(s.Float64() * float64(n))
}

func (s *Script) Shuffle(n int, swap func(i, j int)) {}
