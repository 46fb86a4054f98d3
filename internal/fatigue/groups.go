package fatigue

// MuscleGroup identifies one of the common trained muscle groups
type MuscleGroup string

const (
	Chest      MuscleGroup = "chest"
	UpperBack  MuscleGroup = "upper_back"
	LowerBack  MuscleGroup = "lower_back"
	Shoulders  MuscleGroup = "shoulders"
	Biceps     MuscleGroup = "biceps"
	Triceps    MuscleGroup = "triceps"
	Core       MuscleGroup = "core"
	Glutes     MuscleGroup = "glutes"
	Quads      MuscleGroup = "quads"
	Hamstrings MuscleGroup = "hamstrings"
	Calves     MuscleGroup = "calves"
)

// SkeletalRegion identifies a skeletal impact region
type SkeletalRegion string

const (
	CervicalSpine  SkeletalRegion = "cervical_spine"
	ThoracicSpine  SkeletalRegion = "thoracic_spine"
	LumbarSpine    SkeletalRegion = "lumbar_spine"
	Ribcage        SkeletalRegion = "ribcage"
	ShoulderGirdle SkeletalRegion = "shoulder_girdle"
	ArmBones       SkeletalRegion = "arm_bones"
	Pelvis         SkeletalRegion = "pelvis"
	LegBones       SkeletalRegion = "leg_bones"
)

// OrganRegion identifies an organ impact region
type OrganRegion string

const (
	Heart      OrganRegion = "heart"
	Lungs      OrganRegion = "lungs"
	Liver      OrganRegion = "liver"
	Kidneys    OrganRegion = "kidneys"
	Stomach    OrganRegion = "stomach"
	Intestines OrganRegion = "intestines"
	Brain      OrganRegion = "brain"
	Pancreas   OrganRegion = "pancreas"
	Skin       OrganRegion = "skin"
)

var muscleGroups = []MuscleGroup{
	Chest, UpperBack, LowerBack, Shoulders, Biceps, Triceps,
	Core, Glutes, Quads, Hamstrings, Calves,
}

var skeletalRegions = []SkeletalRegion{
	CervicalSpine, ThoracicSpine, LumbarSpine, Ribcage,
	ShoulderGirdle, ArmBones, Pelvis, LegBones,
}

var organRegions = []OrganRegion{
	Heart, Lungs, Liver, Kidneys, Stomach,
	Intestines, Brain, Pancreas, Skin,
}

// MuscleGroups returns the fixed set of muscle groups
func MuscleGroups() []MuscleGroup {
	groups := make([]MuscleGroup, len(muscleGroups))
	copy(groups, muscleGroups)
	return groups
}

// SkeletalRegions returns the fixed set of skeletal regions
func SkeletalRegions() []SkeletalRegion {
	regions := make([]SkeletalRegion, len(skeletalRegions))
	copy(regions, skeletalRegions)
	return regions
}

// OrganRegions returns the fixed set of organ regions
func OrganRegions() []OrganRegion {
	regions := make([]OrganRegion, len(organRegions))
	copy(regions, organRegions)
	return regions
}

// ParseMuscleGroup maps a free-form muscle tag to a known group.
// Unknown tags return false and are ignored by the model.
func ParseMuscleGroup(tag string) (MuscleGroup, bool) {
	group := MuscleGroup(tag)
	for _, known := range muscleGroups {
		if group == known {
			return group, true
		}
	}
	return "", false
}
