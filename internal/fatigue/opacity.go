package fatigue

import "math"

// GradeOpacity maps a 0-100 score to a rendering opacity. Zero grade is
// fully transparent; any positive grade lands in [0.2, 0.98] on a
// sub-linear curve so low scores remain visible.
func GradeOpacity(grade float64) float64 {
	if math.IsNaN(grade) || grade <= 0 {
		return 0
	}
	normalized := grade / 100
	if normalized > 1 {
		normalized = 1
	}

	opacity := 0.2 + math.Pow(normalized, 0.68)*0.78
	if opacity < 0.2 {
		opacity = 0.2
	}
	if opacity > 0.98 {
		opacity = 0.98
	}
	return opacity
}
