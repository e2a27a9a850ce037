package game

import "math"

// DefaultGrowthFactor is the multiplier applied to the XP threshold on each
// level-up.
const DefaultGrowthFactor = 1.5

// Progress is the outcome of applying a quest reward to the profile's
// progression fields.
type Progress struct {
	XP            int
	XPToNextLevel int
	Level         int
	LeveledUp     bool
}

// ApplyReward adds a quest reward to the current XP and advances at most one
// level. When the threshold is crossed, the remainder carries into the new
// level using the pre-growth threshold, so a reward larger than the threshold
// still grants a single level. Rewards spanning multiple thresholds do not
// cascade.
func ApplyReward(xp, xpToNextLevel, level, reward int, growth float64) Progress {
	if xpToNextLevel <= 0 {
		xpToNextLevel = 1
	}
	if reward < 0 {
		reward = 0
	}
	if growth < 1 {
		growth = DefaultGrowthFactor
	}

	newXP := xp + reward
	if newXP < xpToNextLevel {
		return Progress{XP: newXP, XPToNextLevel: xpToNextLevel, Level: level}
	}

	return Progress{
		XP:            newXP - xpToNextLevel,
		XPToNextLevel: int(math.Floor(float64(xpToNextLevel) * growth)),
		Level:         level + 1,
		LeveledUp:     true,
	}
}
