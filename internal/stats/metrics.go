package stats

// Tracked metric keys. Every daily journal entry records a subset of
// these; studyTime is merged in from the external study-hours source.
const (
	MetricSleep        = "sleep"
	MetricCaffeine     = "caffeine"
	MetricMood         = "mood"
	MetricProductivity = "productivity"
	MetricStudyTime    = "studyTime"
	MetricMotivation   = "motivation"
	MetricAlcohol      = "alcohol"
	MetricFatigue      = "fatigue"
	MetricHeadache     = "headache"
	MetricCoughing     = "coughing"
)

// trackedMetrics is the fixed evaluation order for pair discovery
var trackedMetrics = []string{
	MetricSleep,
	MetricCaffeine,
	MetricMood,
	MetricProductivity,
	MetricStudyTime,
	MetricMotivation,
	MetricAlcohol,
	MetricFatigue,
	MetricHeadache,
	MetricCoughing,
}

// metricLabels maps metric keys to display labels
var metricLabels = map[string]string{
	MetricSleep:        "Sleep rating",
	MetricCaffeine:     "Caffeine (mg)",
	MetricMood:         "Mood",
	MetricProductivity: "Productivity",
	MetricStudyTime:    "Study time (h)",
	MetricMotivation:   "Motivation",
	MetricAlcohol:      "Alcohol (units)",
	MetricFatigue:      "Fatigue",
	MetricHeadache:     "Headache",
	MetricCoughing:     "Coughing",
}

// TrackedMetrics returns the fixed set of tracked metric keys
func TrackedMetrics() []string {
	keys := make([]string, len(trackedMetrics))
	copy(keys, trackedMetrics)
	return keys
}

// MetricLabel returns the display label for a metric key, falling back
// to the key itself for unknown metrics.
func MetricLabel(key string) string {
	if label, ok := metricLabels[key]; ok {
		return label
	}
	return key
}

// IsTrackedMetric reports whether key is one of the tracked metrics
func IsTrackedMetric(key string) bool {
	_, ok := metricLabels[key]
	return ok
}
