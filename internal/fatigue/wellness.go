package fatigue

import (
	"math"
	"time"

	"github.com/vitalslab/vitals-cli/internal/models"
)

const (
	// WellnessHalfLifeHours is the decay constant for non-workout life
	// factors; roughly two days to shed half an exposure.
	WellnessHalfLifeHours = 48.0

	// WellnessLookbackDays bounds how far back daily entries are read
	WellnessLookbackDays = 5
)

// wellnessFactor describes how one daily metric loads the organ regions.
// Reference is the dose that counts as a full exposure; recorded values
// are scaled against it and capped at twice the reference.
type wellnessFactor struct {
	metric    string
	reference float64
	organs    map[OrganRegion]float64
	note      string
}

var wellnessFactors = []wellnessFactor{
	{
		metric:    "alcohol",
		reference: 3,
		organs:    map[OrganRegion]float64{Liver: 0.9, Brain: 0.6, Kidneys: 0.5, Stomach: 0.4},
		note:      "Recent alcohol is still working through your liver. Hydrate and give it a quiet day.",
	},
	{
		metric:    "caffeine",
		reference: 200,
		organs:    map[OrganRegion]float64{Heart: 0.6, Brain: 0.5, Kidneys: 0.3},
		note:      "Caffeine intake has been high lately. Watch your sleep window.",
	},
	{
		metric:    "fatigue",
		reference: 4,
		organs:    map[OrganRegion]float64{Brain: 0.5, Heart: 0.3},
		note:      "You have been logging fatigue. Consider an earlier night.",
	},
	{
		metric:    "headache",
		reference: 3,
		organs:    map[OrganRegion]float64{Brain: 0.8},
		note:      "Repeated headaches logged. Check hydration and screen time.",
	},
	{
		metric:    "coughing",
		reference: 3,
		organs:    map[OrganRegion]float64{Lungs: 0.9},
		note:      "Coughing entries suggest your lungs are irritated. Ease off intense cardio.",
	},
}

// sleepFactor is handled separately: it is a rating where LOW values are
// the exposure, so the deficit below a restful night is what counts.
var sleepFactor = wellnessFactor{
	metric:    "sleep",
	reference: 2, // two full rating points below restful is a full exposure
	organs:    map[OrganRegion]float64{Brain: 0.7, Heart: 0.4, Skin: 0.3},
	note:      "Sleep ratings have been low. Recovery lags until that debt is paid.",
}

const restfulSleepRating = 4

// WellnessOrganImpact derives a 0-100 organ exposure map from recent
// daily entries, plus free-text advisory notes for the dominant factors.
// Entries older than the lookback window are ignored; within it each
// day's contribution decays with a 48-hour half-life.
func WellnessOrganImpact(entries []models.DailyEntry, now time.Time) (map[OrganRegion]float64, []string) {
	if now.IsZero() {
		now = time.Now()
	}
	decay := ExponentialDecay(WellnessHalfLifeHours)
	cutoff := now.AddDate(0, 0, -WellnessLookbackDays)

	raw := make(map[OrganRegion]float64, len(organRegions))
	for _, region := range organRegions {
		raw[region] = 0
	}
	noteTriggered := make(map[string]bool)

	for _, entry := range entries {
		day, err := time.Parse("2006-01-02", entry.Date)
		if err != nil || day.Before(cutoff) || day.After(now) {
			continue
		}
		w := decay(now.Sub(day).Hours())

		for _, factor := range wellnessFactors {
			value, ok := entry.Metrics[factor.metric]
			if !ok {
				continue
			}
			exposure := doseRatio(value, factor.reference)
			if exposure <= 0 {
				continue
			}
			for region, weight := range factor.organs {
				raw[region] += exposure * weight * w
			}
			if exposure >= 1 {
				noteTriggered[factor.note] = true
			}
		}

		if rating, ok := entry.Metrics[sleepFactor.metric]; ok {
			deficit := restfulSleepRating - rating
			exposure := doseRatio(deficit, sleepFactor.reference)
			if exposure > 0 {
				for region, weight := range sleepFactor.organs {
					raw[region] += exposure * weight * w
				}
				if exposure >= 1 {
					noteTriggered[sleepFactor.note] = true
				}
			}
		}
	}

	notes := make([]string, 0, len(noteTriggered))
	for _, factor := range wellnessFactors {
		if noteTriggered[factor.note] {
			notes = append(notes, factor.note)
		}
	}
	if noteTriggered[sleepFactor.note] {
		notes = append(notes, sleepFactor.note)
	}

	return normalizeOrgans(raw), notes
}

// doseRatio scales a recorded value against a reference dose, clamped to
// [0, 2]. Non-finite values count as zero exposure.
func doseRatio(value, reference float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 || reference <= 0 {
		return 0
	}
	ratio := value / reference
	if ratio > 2 {
		ratio = 2
	}
	return ratio
}
