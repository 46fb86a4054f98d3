package fatigue

// Hand-authored propagation weights from muscle groups to skeletal and
// organ regions. Weights are in [0, 1] and encode how much mechanical or
// systemic exposure a loaded muscle group puts on each region.

var muscleSkeletalWeights = map[MuscleGroup]map[SkeletalRegion]float64{
	Chest: {
		Ribcage:        0.9,
		ShoulderGirdle: 0.6,
		ThoracicSpine:  0.3,
		ArmBones:       0.3,
	},
	UpperBack: {
		ThoracicSpine:  0.9,
		ShoulderGirdle: 0.7,
		CervicalSpine:  0.4,
		Ribcage:        0.3,
	},
	LowerBack: {
		LumbarSpine:   0.95,
		Pelvis:        0.5,
		ThoracicSpine: 0.3,
	},
	Shoulders: {
		ShoulderGirdle: 0.95,
		CervicalSpine:  0.4,
		ArmBones:       0.4,
	},
	Biceps: {
		ArmBones:       0.8,
		ShoulderGirdle: 0.3,
	},
	Triceps: {
		ArmBones:       0.8,
		ShoulderGirdle: 0.35,
	},
	Core: {
		LumbarSpine:   0.6,
		Ribcage:       0.4,
		Pelvis:        0.4,
		ThoracicSpine: 0.2,
	},
	Glutes: {
		Pelvis:      0.9,
		LumbarSpine: 0.4,
		LegBones:    0.3,
	},
	Quads: {
		LegBones: 0.9,
		Pelvis:   0.4,
	},
	Hamstrings: {
		LegBones: 0.8,
		Pelvis:   0.5,
	},
	Calves: {
		LegBones: 0.85,
	},
}

var muscleOrganWeights = map[MuscleGroup]map[OrganRegion]float64{
	Chest: {
		Heart: 0.5,
		Lungs: 0.5,
	},
	UpperBack: {
		Lungs: 0.4,
		Heart: 0.3,
	},
	LowerBack: {
		Kidneys: 0.4,
		Heart:   0.2,
	},
	Shoulders: {
		Heart: 0.3,
		Lungs: 0.2,
	},
	Biceps: {
		Heart: 0.2,
	},
	Triceps: {
		Heart: 0.2,
	},
	Core: {
		Stomach:    0.5,
		Intestines: 0.5,
		Pancreas:   0.2,
		Heart:      0.2,
	},
	Glutes: {
		Heart:   0.4,
		Kidneys: 0.2,
	},
	Quads: {
		Heart: 0.7,
		Lungs: 0.6,
	},
	Hamstrings: {
		Heart: 0.6,
		Lungs: 0.5,
	},
	Calves: {
		Heart: 0.4,
		Lungs: 0.3,
	},
}

// SkeletalImpact propagates normalized muscle grades onto skeletal
// regions and max-normalizes the result to 0-100.
func SkeletalImpact(muscles map[MuscleGroup]float64) map[SkeletalRegion]float64 {
	raw := make(map[SkeletalRegion]float64, len(skeletalRegions))
	for _, region := range skeletalRegions {
		raw[region] = 0
	}
	for group, grade := range muscles {
		if grade <= 0 {
			continue
		}
		for region, weight := range muscleSkeletalWeights[group] {
			raw[region] += grade * weight
		}
	}
	return normalizeSkeletal(raw)
}

// OrganImpact propagates normalized muscle grades onto organ regions and
// max-normalizes the result to 0-100.
func OrganImpact(muscles map[MuscleGroup]float64) map[OrganRegion]float64 {
	raw := make(map[OrganRegion]float64, len(organRegions))
	for _, region := range organRegions {
		raw[region] = 0
	}
	for group, grade := range muscles {
		if grade <= 0 {
			continue
		}
		for region, weight := range muscleOrganWeights[group] {
			raw[region] += grade * weight
		}
	}
	return normalizeOrgans(raw)
}

// MergeOrganImpact combines two independently normalized organ maps by
// taking the elementwise max. Summing would double-count two signals
// that describe the same organ from different angles.
func MergeOrganImpact(a, b map[OrganRegion]float64) map[OrganRegion]float64 {
	merged := make(map[OrganRegion]float64, len(organRegions))
	for region, v := range a {
		merged[region] = v
	}
	for region, v := range b {
		if v > merged[region] {
			merged[region] = v
		}
	}
	return merged
}

func normalizeSkeletal(raw map[SkeletalRegion]float64) map[SkeletalRegion]float64 {
	var max float64
	for _, v := range raw {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return raw
	}
	for k, v := range raw {
		raw[k] = v / max * 100
	}
	return raw
}

func normalizeOrgans(raw map[OrganRegion]float64) map[OrganRegion]float64 {
	var max float64
	for _, v := range raw {
		if v > max {
			max = v
		}
	}
	if max <= 0 {
		return raw
	}
	for k, v := range raw {
		raw[k] = v / max * 100
	}
	return raw
}
