package rng

// Stub is a scripted Source for tests. Each call pops the next queued
// value; when a queue runs dry the stub repeats its last value (or a
// neutral default if none was ever queued).
type Stub struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

func (s *Stub) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.5
	}
	if s.fi >= len(s.Floats) {
		return s.Floats[len(s.Floats)-1]
	}
	v := s.Floats[s.fi]
	s.fi++
	return v
}

func (s *Stub) Intn(n int) int {
	v := 0
	if len(s.Ints) > 0 {
		if s.ii >= len(s.Ints) {
			v = s.Ints[len(s.Ints)-1]
		} else {
			v = s.Ints[s.ii]
			s.ii++
		}
	}
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
