package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

type AttributesTestSuite struct {
	suite.Suite
	engine *rules.Engine
}

func TestAttributesSuite(t *testing.T) {
	suite.Run(t, new(AttributesTestSuite))
}

func (s *AttributesTestSuite) SetupTest() {
	s.engine = rules.New(nil)
}

func allAt(score int) echosheet.AttributeSet {
	attrs := echosheet.AttributeSet{}
	for _, a := range echosheet.AllAbilities {
		attrs[a] = score
	}
	return attrs
}

func (s *AttributesTestSuite) TestPointCost() {
	expected := map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}
	for score, cost := range expected {
		got, err := rules.PointCost(score)
		s.Require().NoError(err)
		s.Assert().Equal(cost, got, "score %d", score)
	}

	_, err := rules.PointCost(7)
	s.Assert().True(errors.IsOutOfRange(err))
	_, err = rules.PointCost(16)
	s.Assert().True(errors.IsOutOfRange(err))
}

func (s *AttributesTestSuite) TestModifier() {
	testCases := map[int]int{3: -4, 7: -2, 8: -1, 9: -1, 10: 0, 11: 0, 12: 1, 15: 2, 16: 3, 20: 5}
	for score, mod := range testCases {
		s.Assert().Equal(mod, rules.Modifier(score), "score %d", score)
	}
}

func (s *AttributesTestSuite) TestHumanAllTensScenario() {
	attrs := allAt(10)
	s.Assert().Equal(15, rules.RemainingPoints(attrs))

	var err error
	for i := 0; i < 5; i++ {
		attrs, err = rules.ChangeAttribute(attrs, echosheet.AbilityStrength, 1)
		s.Require().NoError(err)
	}
	s.Assert().Equal(15, attrs[echosheet.AbilityStrength])
	s.Assert().Equal(8, rules.RemainingPoints(attrs))
	s.Assert().Equal(16, s.engine.TotalScore(attrs, "Human", echosheet.AbilityStrength))

	// push DEX to 14 (cost 7 from 10: 1+1+1+2 = 5), leaving 3
	for i := 0; i < 4; i++ {
		attrs, err = rules.ChangeAttribute(attrs, echosheet.AbilityDexterity, 1)
		s.Require().NoError(err)
	}
	s.Assert().Equal(3, rules.RemainingPoints(attrs))

	// CON 10 -> 13 costs 3, then 13 -> 14 costs 2 with nothing left
	for i := 0; i < 3; i++ {
		attrs, err = rules.ChangeAttribute(attrs, echosheet.AbilityConstitution, 1)
		s.Require().NoError(err)
	}
	s.Assert().Equal(0, rules.RemainingPoints(attrs))

	before := attrs.Clone()
	_, err = rules.ChangeAttribute(attrs, echosheet.AbilityWisdom, 1)
	s.Assert().True(errors.IsResourceExhausted(err))
	s.Assert().Equal(before, attrs)
}

func (s *AttributesTestSuite) TestChangeAttributeBounds() {
	s.Run("below minimum", func() {
		attrs := echosheet.NewAttributeSet()
		out, err := rules.ChangeAttribute(attrs, echosheet.AbilityCharisma, -1)
		s.Require().Error(err)
		s.Assert().True(errors.IsOutOfRange(err))
		s.Assert().Contains(errors.GetMessage(err), "minimum base score is 8")
		s.Assert().Equal(8, out[echosheet.AbilityCharisma])
	})

	s.Run("above maximum", func() {
		attrs := echosheet.NewAttributeSet()
		attrs[echosheet.AbilityIntelligence] = 15
		_, err := rules.ChangeAttribute(attrs, echosheet.AbilityIntelligence, 1)
		s.Require().Error(err)
		s.Assert().Contains(errors.GetMessage(err), "maximum base score is 15")
	})

	s.Run("unknown ability", func() {
		_, err := rules.ChangeAttribute(echosheet.NewAttributeSet(), echosheet.Ability("LCK"), 1)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("input is not modified", func() {
		attrs := echosheet.NewAttributeSet()
		out, err := rules.ChangeAttribute(attrs, echosheet.AbilityWisdom, 1)
		s.Require().NoError(err)
		s.Assert().Equal(9, out[echosheet.AbilityWisdom])
		s.Assert().Equal(8, attrs[echosheet.AbilityWisdom])
	})

	s.Run("sparse set is filled", func() {
		out, err := rules.ChangeAttribute(echosheet.AttributeSet{}, echosheet.AbilityWisdom, 1)
		s.Require().NoError(err)
		s.Assert().Len(out, 6)
	})
}

func (s *AttributesTestSuite) TestValidateAttributes() {
	// 15,15,15 = 27
	exact := echosheet.NewAttributeSet()
	exact[echosheet.AbilityStrength] = 15
	exact[echosheet.AbilityDexterity] = 15
	exact[echosheet.AbilityConstitution] = 15
	s.Assert().NoError(rules.ValidateAttributes(exact))

	under := exact.Clone()
	under[echosheet.AbilityConstitution] = 14 // 25
	under[echosheet.AbilityWisdom] = 9        // 26
	s.Assert().Error(rules.ValidateAttributes(under))

	over := exact.Clone()
	over[echosheet.AbilityWisdom] = 9 // 28
	s.Assert().Error(rules.ValidateAttributes(over))

	outOfRange := exact.Clone()
	outOfRange[echosheet.AbilityWisdom] = 16
	s.Assert().True(errors.IsInvalidArgument(rules.ValidateAttributes(outOfRange)))
}

func (s *AttributesTestSuite) TestRacialBonus() {
	s.Assert().Equal(2, s.engine.RacialBonus("Half-Orc", echosheet.AbilityStrength))
	s.Assert().Equal(1, s.engine.RacialBonus("Half-Orc", echosheet.AbilityConstitution))
	s.Assert().Equal(0, s.engine.RacialBonus("Half-Orc", echosheet.AbilityWisdom))
	s.Assert().Equal(0, s.engine.RacialBonus("Warforged", echosheet.AbilityStrength))
}

func (s *AttributesTestSuite) TestRenderAttributes() {
	attrs := allAt(10)
	attrs[echosheet.AbilityStrength] = 15
	attrs[echosheet.AbilityDexterity] = 14

	view := s.engine.RenderAttributes(attrs, "Dragonborn")
	s.Require().Len(view.Rows, 6)
	s.Assert().Equal(3, view.Remaining)
	s.Assert().False(view.Valid)

	str := view.Rows[0]
	s.Assert().Equal(echosheet.AbilityStrength, str.Ability)
	s.Assert().Equal(17, str.Total)
	s.Assert().Equal(3, str.Modifier)
	s.Assert().Equal(9, str.Cost)
	s.Assert().False(str.CanIncrease)
	s.Assert().True(str.CanDecrease)

	dex := view.Rows[1]
	s.Assert().True(dex.CanIncrease, "14 -> 15 costs 2 of the 3 remaining")

	cha := view.Rows[5]
	s.Assert().Equal(1, cha.Racial)
	s.Assert().True(cha.CanIncrease)
}

func (s *AttributesTestSuite) TestRenderDisablesUnaffordableIncrease() {
	attrs := allAt(8)
	attrs[echosheet.AbilityStrength] = 15
	attrs[echosheet.AbilityDexterity] = 15
	attrs[echosheet.AbilityConstitution] = 14
	attrs[echosheet.AbilityIntelligence] = 9 // 9+9+7+1 = 26, one left

	view := s.engine.RenderAttributes(attrs, "")
	s.Assert().Equal(1, view.Remaining)
	s.Assert().False(view.Rows[2].CanIncrease, "14 -> 15 costs 2")
	s.Assert().True(view.Rows[4].CanIncrease, "8 -> 9 costs 1")
	s.Assert().False(view.Rows[4].CanDecrease)
}

func TestProperty_ChangeAttributeKeepsInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		attrs := echosheet.NewAttributeSet()
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			ability := rapid.SampledFrom(echosheet.AllAbilities).Draw(rt, "ability")
			delta := rapid.SampledFrom([]int{-1, 1}).Draw(rt, "delta")
			next, err := rules.ChangeAttribute(attrs, ability, delta)
			if err != nil {
				if next[ability] != attrs[ability] {
					rt.Fatalf("failed change mutated %s", ability)
				}
				continue
			}
			attrs = next
			for _, a := range echosheet.AllAbilities {
				if v := attrs[a]; v < echosheet.MinBaseScore || v > echosheet.MaxBaseScore {
					rt.Fatalf("%s out of range: %d", a, v)
				}
			}
			if rules.RemainingPoints(attrs) < 0 {
				rt.Fatalf("budget overspent: %v", attrs)
			}
		}
	})
}
