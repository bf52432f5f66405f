package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

func TestLevelForXP(t *testing.T) {
	engine := rules.New(nil)
	testCases := map[int]int{0: 1, 299: 1, 300: 2, 899: 2, 900: 3, 6500: 5, 354999: 19, 355000: 20, 999999: 20}
	for xp, level := range testCases {
		assert.Equal(t, level, engine.LevelForXP(xp), "xp %d", xp)
	}
}

func TestCanLevelUp(t *testing.T) {
	engine := rules.New(nil)

	assert.NoError(t, engine.CanLevelUp(1, 300))
	assert.True(t, errors.IsFailedPrecondition(engine.CanLevelUp(1, 299)))
	assert.True(t, errors.IsFailedPrecondition(engine.CanLevelUp(20, 1_000_000)))
	assert.True(t, errors.IsOutOfRange(engine.CanLevelUp(0, 0)))

	next, ok := engine.NextLevelXP(4)
	assert.True(t, ok)
	assert.Equal(t, 6500, next)

	_, ok = engine.NextLevelXP(20)
	assert.False(t, ok)
}

func TestProficiencyBonus(t *testing.T) {
	testCases := map[int]int{0: 2, 1: 2, 4: 2, 5: 3, 8: 3, 9: 4, 13: 5, 17: 6, 20: 6}
	for level, bonus := range testCases {
		assert.Equal(t, bonus, rules.ProficiencyBonus(level), "level %d", level)
	}
}
