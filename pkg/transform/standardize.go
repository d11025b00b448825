package transform

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/datakit-labs/seriesops/pkg/series"
)

// Standardize rescales each present observation to its standard score,
// (x - mean) / stddev, using the arithmetic mean and the sample (n-1)
// standard deviation computed over this call's input.
//
// With the default policy, a single missing observation leaves both
// statistics undefined and every output position missing. With
// WithExcludeMissing(true), missing observations are dropped from the
// statistic computation only; they stay missing in the output and the
// output keeps the input's length.
//
// The statistics are also undefined when fewer than two observations
// are retained. A retained set with zero spread produces non-finite
// standard scores, which are returned as present values.
func Standardize(s series.Series, opts ...StandardizeOption) series.Series {
	params := DefaultStandardizeParams()
	for _, opt := range opts {
		opt(&params)
	}

	retained := s.NonMissing()
	if !params.ExcludeMissing && len(retained) != len(s) {
		return series.AllMissing(len(s))
	}
	if len(retained) < 2 {
		return series.AllMissing(len(s))
	}

	mean := stat.Mean(retained, nil)
	stddev := stat.StdDev(retained, nil)

	scores := make([]float64, len(retained))
	copy(scores, retained)
	floats.AddConst(-mean, scores)
	floats.Scale(1/stddev, scores)

	result := make(series.Series, len(s))
	idx := 0
	for i, v := range s {
		if v.Valid {
			result[i] = series.Of(scores[idx])
			idx++
		}
	}

	return result
}
