// Package transform contains the element-wise series transformations:
// linear unit conversion and standard-score normalization.
package transform

import (
	"gonum.org/v1/gonum/floats"

	"github.com/datakit-labs/seriesops/pkg/series"
)

// Convert multiplies every present observation by factor and returns a
// new series of the same length. Missing observations pass through
// unchanged. A factor of zero is valid and yields zeros for every
// present observation.
func Convert(s series.Series, factor float64) series.Series {
	result := s.Clone()

	scaled := s.NonMissing()
	floats.Scale(factor, scaled)

	idx := 0
	for i, v := range result {
		if v.Valid {
			result[i].Float64 = scaled[idx]
			idx++
		}
	}

	return result
}
