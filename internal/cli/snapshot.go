package cli

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitalslab/vitals-cli/internal/fatigue"
	"github.com/vitalslab/vitals-cli/internal/journal"
	"github.com/vitalslab/vitals-cli/internal/models"
	"github.com/vitalslab/vitals-cli/internal/stats"
)

// buildSnapshot runs the full statistics pipeline over a loaded journal:
// recency-weighted muscle fatigue, propagation to skeletal and organ
// regions, the wellness organ overlay, and cross-metric correlation
// discovery.
func buildSnapshot(registry *journal.Registry, sequence int64, cfg fatigue.Config, includeWellness bool) models.Snapshot {
	snapshot := models.NewSnapshot(uuid.NewString(), sequence)

	muscles := fatigue.ComputeMuscleFatigue(registry.FatiguePayload(), cfg)
	skeletal := fatigue.SkeletalImpact(muscles)
	organs := fatigue.OrganImpact(muscles)

	if includeWellness {
		now := cfg.Now
		if now.IsZero() {
			now = time.Now()
		}
		wellness, notes := fatigue.WellnessOrganImpact(registry.Entries(), now)
		organs = fatigue.MergeOrganImpact(organs, wellness)
		snapshot.Notes = notes
	}

	snapshot.Muscles = muscleScores(muscles)
	snapshot.Skeletal = skeletalScores(skeletal)
	snapshot.Organs = organScores(organs)
	snapshot.Correlations = stats.DetectCorrelations(registry.DailySamples())
	return snapshot
}

func muscleScores(scores map[fatigue.MuscleGroup]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for group, score := range scores {
		out[string(group)] = score
	}
	return out
}

func skeletalScores(scores map[fatigue.SkeletalRegion]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for region, score := range scores {
		out[string(region)] = score
	}
	return out
}

func organScores(scores map[fatigue.OrganRegion]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for region, score := range scores {
		out[string(region)] = score
	}
	return out
}
