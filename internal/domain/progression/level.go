package progression

import "fmt"

// Level computes the level for an experience total: one level per configured
// experience block, starting at level 1 for zero experience.
func (e *Engine) Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/e.experiencePerLevel + 1
}

// LevelProgress reports fractional completion toward the next level,
// always in [0, 1).
func (e *Engine) LevelProgress(xp int) float64 {
	if xp < 0 {
		xp = 0
	}
	return float64(xp%e.experiencePerLevel) / float64(e.experiencePerLevel)
}

// FormatExperience renders the level line shown under the character,
// e.g. "Level 3 (50/100 XP)".
func (e *Engine) FormatExperience(xp int) string {
	if xp < 0 {
		xp = 0
	}
	return fmt.Sprintf("Level %d (%d/%d XP)", e.Level(xp), xp%e.experiencePerLevel, e.experiencePerLevel)
}
