package stats

import "math"

const (
	// MinDaysForCorrelation is the minimum number of matched days
	// required before a correlation is reported at all.
	MinDaysForCorrelation = 7

	// MinSampleForInference is the minimum sample size for p-values and
	// confidence intervals; the Fisher transform needs n-3 > 0.
	MinSampleForInference = 4

	// DefaultZCritical is the two-tailed critical value for a 95% CI
	DefaultZCritical = 1.96

	// rClampLimit keeps the Fisher transform finite at |r| = 1
	rClampLimit = 0.999999
)

// PearsonCorrelation computes the Pearson coefficient for two equal-length
// series. Returns nil when fewer than MinDaysForCorrelation points are
// available, the lengths differ, or either series has zero variance.
func PearsonCorrelation(x, y []float64) *float64 {
	n := len(x)
	if n != len(y) || n < MinDaysForCorrelation {
		return nil
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sumXY, sumXX, sumYY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sumXY += dx * dy
		sumXX += dx * dx
		sumYY += dy * dy
	}

	if sumXX == 0 || sumYY == 0 {
		return nil
	}

	r := sumXY / math.Sqrt(sumXX*sumYY)
	return &r
}

// PValueFromCorrelation computes a two-tailed p-value for a Pearson
// coefficient via the Fisher z-transform. Returns nil when n <= 3.
func PValueFromCorrelation(r float64, n int) *float64 {
	if n < MinSampleForInference {
		return nil
	}

	z := fisherZ(clampR(r))
	stat := z * math.Sqrt(float64(n-3))

	p := 2 * (1 - normalCDF(math.Abs(stat)))
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return &p
}

// CorrelationCI computes the confidence interval bounds for a Pearson
// coefficient at the given critical value. Returns nil bounds when n <= 3.
func CorrelationCI(r float64, n int, zCritical float64) (lower, upper *float64) {
	if n < MinSampleForInference {
		return nil, nil
	}

	z := fisherZ(clampR(r))
	se := 1 / math.Sqrt(float64(n-3))

	lo := math.Tanh(z - zCritical*se)
	hi := math.Tanh(z + zCritical*se)
	return &lo, &hi
}

func clampR(r float64) float64 {
	if r > rClampLimit {
		return rClampLimit
	}
	if r < -rClampLimit {
		return -rClampLimit
	}
	return r
}

// fisherZ is the variance-stabilizing transform 0.5*ln((1+r)/(1-r))
func fisherZ(r float64) float64 {
	return 0.5 * math.Log((1+r)/(1-r))
}

// normalCDF approximates the standard normal CDF using the
// Abramowitz-Stegun 7.1.26 error-function polynomial (max error ~1.5e-7).
func normalCDF(z float64) float64 {
	return 0.5 * (1 + erfApprox(z/math.Sqrt2))
}

func erfApprox(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}

	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	t := 1 / (1 + p*x)
	y := 1 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}
