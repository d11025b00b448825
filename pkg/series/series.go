// Package series defines the numeric sequence model shared by all transforms.
package series

// Of wraps a float64 as a present observation.
func Of(f float64) Value {
	return Value{Float64: f, Valid: true}
}

// Missing returns the missing observation marker.
func Missing() Value {
	return Value{}
}

// FromFloats builds a Series in which every element is present.
func FromFloats(values []float64) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = Of(v)
	}
	return s
}

func (s Series) Len() int {
	return len(s)
}

// HasMissing reports whether any observation is missing.
func (s Series) HasMissing() bool {
	for _, v := range s {
		if !v.Valid {
			return true
		}
	}
	return false
}

// NonMissing gathers the present observations, in order, into a fresh
// float64 slice. The result is safe to mutate.
func (s Series) NonMissing() []float64 {
	out := make([]float64, 0, len(s))
	for _, v := range s {
		if v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}

// Clone returns an independent copy of the series.
func (s Series) Clone() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// AllMissing returns a series of length n in which every observation is
// missing. Used when an aggregate statistic is undefined and the
// undefinedness has to propagate to every position.
func AllMissing(n int) Series {
	return make(Series, n)
}
