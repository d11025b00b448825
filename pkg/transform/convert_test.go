package transform

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakit-labs/seriesops/pkg/series"
)

const tolerance = 1e-9

func TestConvertCentimetersToInches(t *testing.T) {
	s := series.FromFloats([]float64{100, 150, 200})

	got := Convert(s, 0.3937)

	require.Equal(t, 3, got.Len())
	expected := []float64{39.37, 59.055, 78.74}
	for i, want := range expected {
		require.True(t, got[i].Valid, "element %d should be present", i)
		assert.InDelta(t, want, got[i].Float64, tolerance)
	}
}

func TestConvertMissingPassthrough(t *testing.T) {
	s := series.Series{series.Of(2), series.Missing(), series.Of(4)}

	got := Convert(s, 10)

	require.Equal(t, s.Len(), got.Len())
	assert.Equal(t, series.Of(20), got[0])
	assert.Equal(t, series.Missing(), got[1])
	assert.Equal(t, series.Of(40), got[2])
}

func TestConvertZeroFactor(t *testing.T) {
	s := series.Series{series.Of(3), series.Missing(), series.Of(-7)}

	got := Convert(s, 0)

	assert.Equal(t, series.Of(0), got[0])
	assert.Equal(t, series.Missing(), got[1])
	assert.Equal(t, series.Of(0), got[2])
}

func TestConvertNegativeFactor(t *testing.T) {
	got := Convert(series.FromFloats([]float64{1, -2}), -2)

	assert.InDelta(t, -2, got[0].Float64, tolerance)
	assert.InDelta(t, 4, got[1].Float64, tolerance)
}

func TestConvertRoundTrip(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = rand.Float64()*200 - 100
	}
	s := series.FromFloats(values)
	factor := 0.3937

	got := Convert(Convert(s, factor), 1/factor)

	require.Equal(t, s.Len(), got.Len())
	for i := range s {
		assert.InDelta(t, s[i].Float64, got[i].Float64, tolerance)
	}
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	s := series.FromFloats([]float64{1, 2, 3})

	_ = Convert(s, 5)

	assert.Equal(t, series.FromFloats([]float64{1, 2, 3}), s)
}

func TestConvertEmpty(t *testing.T) {
	got := Convert(series.Series{}, 2)
	assert.Equal(t, 0, got.Len())
}
