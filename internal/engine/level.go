package engine

import "math"

// levelExponent is the curve constant: level = xp^(1/2.7).
const levelExponent = 2.7

// LevelForXP returns the level for a total XP amount: floor(xp^(1/2.7)).
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 0
	}
	return int(math.Floor(math.Pow(float64(xp), 1/levelExponent)))
}

// XPRequiredForLevel returns the XP threshold for a level: ceil(level^2.7).
// Note this is deliberately not the inverse of LevelForXP: the two formulas
// round in different directions and progress bars depend on both as-is.
func XPRequiredForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return int(math.Ceil(math.Pow(float64(level), levelExponent)))
}

// ProgressPercent returns how far xp is through the given level, as a
// percentage clamped to [0, 100].
func ProgressPercent(xp, level int) int {
	lo := XPRequiredForLevel(level)
	hi := XPRequiredForLevel(level + 1)
	if hi <= lo {
		return 0
	}
	pct := int(math.Round(float64(xp-lo) / float64(hi-lo) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
