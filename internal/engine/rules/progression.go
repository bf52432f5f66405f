package rules

import (
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

// LevelForXP returns the highest level whose threshold xp reaches
func (e *Engine) LevelForXP(xp int) int {
	level := echosheet.MinLevel
	for i, threshold := range e.rs.XPThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// NextLevelXP is the experience needed for level+1. ok is false at max level.
func (e *Engine) NextLevelXP(level int) (int, bool) {
	if level < echosheet.MinLevel {
		level = echosheet.MinLevel
	}
	if level >= echosheet.MaxLevel || level >= len(e.rs.XPThresholds) {
		return 0, false
	}
	return e.rs.XPThresholds[level], true
}

// CanLevelUp checks level bounds and the experience threshold for the next level
func (e *Engine) CanLevelUp(level, xp int) error {
	if level < echosheet.MinLevel || level > echosheet.MaxLevel {
		return errors.OutOfRangef("level %d is outside %d-%d", level, echosheet.MinLevel, echosheet.MaxLevel)
	}
	needed, ok := e.NextLevelXP(level)
	if !ok {
		return errors.FailedPreconditionf("already at maximum level %d", echosheet.MaxLevel)
	}
	if xp < needed {
		return errors.FailedPreconditionf("need %d experience for level %d, have %d", needed, level+1, xp)
	}
	return nil
}

// ProficiencyBonus is +2 at level 1 rising by one every four levels
func ProficiencyBonus(level int) int {
	if level < echosheet.MinLevel {
		level = echosheet.MinLevel
	}
	return (level-1)/4 + 2
}
