package combat

// experiencePerLevel scales the level thresholds: reaching level L takes
// experiencePerLevel*L*(L-1) total experience (100, 300, 600, ...).
const experiencePerLevel = 50

// ExperienceForLevel returns the total experience needed to reach level.
func ExperienceForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return experiencePerLevel * level * (level - 1)
}

// LevelForExperience returns the level reached with exp total experience.
// It never decreases as exp grows.
func LevelForExperience(exp int) int {
	level := 1
	for exp >= ExperienceForLevel(level+1) {
		level++
	}
	return level
}
