package stats

import (
	"math"
	"sort"

	"github.com/vitalslab/vitals-cli/internal/models"
)

// BuildDailySamples aggregates raw journal entries into one sample per
// calendar date. Each metric value is the arithmetic mean of the same-day
// entries that recorded it; a metric nobody recorded that day stays
// undefined. Study hours are merged under the studyTime key. Entries with
// malformed dates or non-finite values are dropped.
func BuildDailySamples(entries []models.DailyEntry, studyHours map[string]float64) []models.DailyMetricSample {
	type accumulator struct {
		sum   map[string]float64
		count map[string]int
	}

	byDate := make(map[string]*accumulator)
	for _, entry := range entries {
		if !models.ValidDate(entry.Date) {
			continue
		}
		acc, ok := byDate[entry.Date]
		if !ok {
			acc = &accumulator{
				sum:   make(map[string]float64),
				count: make(map[string]int),
			}
			byDate[entry.Date] = acc
		}
		for key, value := range entry.Metrics {
			if !IsTrackedMetric(key) || math.IsNaN(value) || math.IsInf(value, 0) {
				continue
			}
			acc.sum[key] += value
			acc.count[key]++
		}
	}

	for date, hours := range studyHours {
		if !models.ValidDate(date) || math.IsNaN(hours) || math.IsInf(hours, 0) {
			continue
		}
		acc, ok := byDate[date]
		if !ok {
			acc = &accumulator{
				sum:   make(map[string]float64),
				count: make(map[string]int),
			}
			byDate[date] = acc
		}
		// Study time is already a per-day total, not an averaged rating
		acc.sum[MetricStudyTime] = hours
		acc.count[MetricStudyTime] = 1
	}

	samples := make([]models.DailyMetricSample, 0, len(byDate))
	for date, acc := range byDate {
		values := make(map[string]float64, len(acc.sum))
		for key, sum := range acc.sum {
			values[key] = sum / float64(acc.count[key])
		}
		samples = append(samples, models.DailyMetricSample{
			Date:   date,
			Values: values,
		})
	}

	// Fixed-width ISO dates sort chronologically
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Date < samples[j].Date
	})
	return samples
}
