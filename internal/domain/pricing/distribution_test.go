package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram_DensityIntegratesToOne(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	bins := Histogram(values, DefaultHistogramBins)
	require.Len(t, bins, DefaultHistogramBins)

	var count int
	var area float64
	for _, b := range bins {
		count += b.Count
		area += b.Density * (b.Upper - b.Lower)
	}
	assert.Equal(t, len(values), count)
	assert.InDelta(t, 1.0, area, 1e-9)
	assert.Equal(t, 1, bins[len(bins)-1].Count)
}

func TestHistogram_ConstantValues(t *testing.T) {
	bins := Histogram([]float64{2, 2, 2}, 10)
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
	assert.Nil(t, Histogram(nil, 10))
}

func TestScottBandwidth(t *testing.T) {
	// variância amostral de 1..4 é 5/3
	bw, err := ScottBandwidth([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.97839, bw, 1e-4)

	_, err = ScottBandwidth([]float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)
	_, err = ScottBandwidth([]float64{3, 3})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestKDE_WideGridIntegratesToOne(t *testing.T) {
	values := []float64{1, 2, 2.5, 4}
	xs := make([]float64, 2001)
	for i := range xs {
		xs[i] = -10 + float64(i)*0.01
	}

	points := KDE(values, xs, 0.8)
	var area float64
	for _, p := range points {
		area += p.Y * 0.01
	}
	assert.InDelta(t, 1.0, area, 1e-3)
}

func TestBuildDistribution(t *testing.T) {
	dist, err := BuildDistribution([]float64{8, 1, 2, 3, 4, 5, 6, 7}, DefaultHistogramBins, DefaultDensityPoints)
	require.NoError(t, err)

	assert.Equal(t, 8, dist.Count)
	assert.Len(t, dist.Density, DefaultDensityPoints)
	assert.Greater(t, dist.Bandwidth, 0.0)
	assert.Equal(t, 1.0, dist.Density[0].X)
	assert.InDelta(t, 8.0, dist.Density[len(dist.Density)-1].X, 1e-12)

	require.Len(t, dist.Markers, 5)
	assert.Equal(t, "Min", dist.Markers[0].Name)
	assert.InDelta(t, 4.5, dist.Markers[2].Value, 1e-12)
	assert.Equal(t, 8.0, dist.Markers[4].Value)
}

func TestBuildDistribution_InsufficientData(t *testing.T) {
	dist, err := BuildDistribution([]float64{2, 2}, DefaultHistogramBins, DefaultDensityPoints)
	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Len(t, dist.Bins, 1)
	assert.Empty(t, dist.Density)

	_, err = BuildDistribution(nil, DefaultHistogramBins, DefaultDensityPoints)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
