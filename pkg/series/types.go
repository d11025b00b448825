package series

// Value is a single observation in a Series. A missing observation is
// represented by Valid == false rather than by a numeric sentinel, so
// every float64 (including 0 and NaN) remains a legitimate data value.
type Value struct {
	Float64 float64
	Valid   bool
}

// Series is an ordered, indexed collection of observations.
type Series []Value
