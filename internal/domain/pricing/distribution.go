package pricing

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/diillson/produce-finops-dashboard-go/internal/domain/entity"
)

const (
	DefaultHistogramBins = 40
	DefaultDensityPoints = 100
)

// Histogram splits values into equal-width bins between min and max.
// Density is count / (n * width), so density * width sums to 1.
func Histogram(values []float64, bins int) []entity.HistogramBin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := floats.Min(values), floats.Max(values)
	if hi == lo {
		return []entity.HistogramBin{{Lower: lo, Upper: hi, Count: len(values), Density: 1}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]entity.HistogramBin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1 // o máximo entra no último bin
		}
		out[idx].Count++
	}

	n := float64(len(values))
	for i := range out {
		out[i].Density = float64(out[i].Count) / (n * width)
	}
	return out
}

// ScottBandwidth is sigma * n^(-1/5), sigma being the sample standard deviation.
func ScottBandwidth(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrInsufficientData
	}
	sigma := math.Sqrt(stat.Variance(values, nil))
	if sigma == 0 || math.IsNaN(sigma) {
		return 0, ErrInsufficientData
	}
	return sigma * math.Pow(float64(len(values)), -0.2), nil
}

// KDE evaluates a Gaussian kernel density estimate at each x.
func KDE(values, xs []float64, bandwidth float64) []entity.DensityPoint {
	n := float64(len(values))
	norm := 1 / (n * bandwidth * math.Sqrt(2*math.Pi))

	out := make([]entity.DensityPoint, len(xs))
	for i, x := range xs {
		var sum float64
		for _, v := range values {
			z := (x - v) / bandwidth
			sum += math.Exp(-0.5 * z * z)
		}
		out[i] = entity.DensityPoint{X: x, Y: sum * norm}
	}
	return out
}

// BuildDistribution assembles histogram, KDE curve and marker lines for a cost column.
// When the KDE cannot be estimated the histogram is still returned together with
// ErrInsufficientData.
func BuildDistribution(costs []float64, bins, points int) (entity.Distribution, error) {
	dist := entity.Distribution{Count: len(costs)}
	if len(costs) == 0 {
		return dist, ErrInsufficientData
	}

	sorted := sortedCopy(costs)
	th := Quartiles(sorted)
	dist.Bins = Histogram(sorted, bins)
	dist.Markers = []entity.Marker{
		{Name: "Min", Value: sorted[0]},
		{Name: "Q1", Value: th.Q1},
		{Name: "Median", Value: th.Q2},
		{Name: "Q3", Value: th.Q3},
		{Name: "Max", Value: sorted[len(sorted)-1]},
	}

	bw, err := ScottBandwidth(sorted)
	if err != nil {
		return dist, err
	}
	if points < 2 {
		points = DefaultDensityPoints
	}

	xs := make([]float64, points)
	floats.Span(xs, sorted[0], sorted[len(sorted)-1])
	dist.Bandwidth = bw
	dist.Density = KDE(sorted, xs, bw)
	return dist, nil
}
