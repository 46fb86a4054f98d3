package stats

import (
	"math"
	"sort"

	"github.com/vitalslab/vitals-cli/internal/models"
)

const (
	// MinAbsCorrelation is the discovery threshold on |r|
	MinAbsCorrelation = 0.3

	// MaxPValue is the discovery threshold on the two-tailed p-value
	MaxPValue = 0.10

	// MaxDetectedCorrelations caps the number of reported pairs
	MaxDetectedCorrelations = 16
)

// ComputePairCorrelation evaluates the correlation between two metrics
// over the days where BOTH are defined (pairwise-complete observations).
// Returns nil when too few matched days exist or either side is constant.
func ComputePairCorrelation(samples []models.DailyMetricSample, metricX, metricY string) *models.PairCorrelationResult {
	var xs, ys []float64
	for _, sample := range samples {
		x, okX := sample.Values[metricX]
		y, okY := sample.Values[metricY]
		if !okX || !okY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	r := PearsonCorrelation(xs, ys)
	if r == nil {
		return nil
	}

	n := len(xs)
	result := &models.PairCorrelationResult{
		MetricX:     metricX,
		MetricY:     metricY,
		SampleSize:  n,
		Correlation: *r,
		PValue:      PValueFromCorrelation(*r, n),
		AverageX:    mean(xs),
		AverageY:    mean(ys),
	}
	result.CILower, result.CIUpper = CorrelationCI(*r, n, DefaultZCritical)
	return result
}

// DetectCorrelations evaluates every unordered pair of tracked metrics
// and returns the pairs passing both discovery thresholds, strongest
// first, capped at MaxDetectedCorrelations.
//
// No multiple-comparison correction is applied across the 45 pairs; the
// thresholds are a plain filter, so weak discoveries should be read as
// hints rather than findings.
func DetectCorrelations(samples []models.DailyMetricSample) []models.PairCorrelationResult {
	metrics := trackedMetrics

	var detected []models.PairCorrelationResult
	for i := 0; i < len(metrics); i++ {
		for j := i + 1; j < len(metrics); j++ {
			result := ComputePairCorrelation(samples, metrics[i], metrics[j])
			if result == nil || result.PValue == nil {
				continue
			}
			if math.Abs(result.Correlation) < MinAbsCorrelation {
				continue
			}
			if *result.PValue >= MaxPValue {
				continue
			}
			detected = append(detected, *result)
		}
	}

	sort.SliceStable(detected, func(a, b int) bool {
		return math.Abs(detected[a].Correlation) > math.Abs(detected[b].Correlation)
	})

	if len(detected) > MaxDetectedCorrelations {
		detected = detected[:MaxDetectedCorrelations]
	}
	return detected
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
