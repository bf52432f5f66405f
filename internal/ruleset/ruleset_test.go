package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/echosheet/internal/ruleset"
)

type RulesetTestSuite struct {
	suite.Suite
	rs *ruleset.Ruleset
}

func TestRulesetSuite(t *testing.T) {
	suite.Run(t, new(RulesetTestSuite))
}

func (s *RulesetTestSuite) SetupTest() {
	s.rs = ruleset.Default()
}

func (s *RulesetTestSuite) TestDefaultLoads() {
	s.Require().NotNil(s.rs)
	s.Assert().Len(s.rs.Skills, 18)
	s.Assert().Len(s.rs.RaceNames(), 9)
	s.Assert().Len(s.rs.ClassNames(), 12)
	s.Assert().Len(s.rs.BackgroundNames(), 12)
	s.Assert().Len(s.rs.XPThresholds, 20)
	s.Assert().Len(s.rs.PackNames(), 7)
}

func (s *RulesetTestSuite) TestSkillChoices() {
	expected := map[string]int{
		"Fighter": 2, "Wizard": 2, "Cleric": 2, "Rogue": 4,
		"Ranger": 3, "Paladin": 2, "Bard": 3, "Sorcerer": 2,
		"Warlock": 2, "Monk": 2, "Druid": 2, "Barbarian": 2,
	}
	for name, choices := range expected {
		s.Run(name, func() {
			class, ok := s.rs.Class(name)
			s.Require().True(ok)
			s.Assert().Equal(choices, class.SkillChoices)
		})
	}
}

func (s *RulesetTestSuite) TestBardKnowsEverySkill() {
	bard, ok := s.rs.Class("Bard")
	s.Require().True(ok)
	s.Assert().Len(bard.Skills, len(s.rs.Skills))
}

func (s *RulesetTestSuite) TestRacialBonuses() {
	halfElf, ok := s.rs.Race("Half-Elf")
	s.Require().True(ok)
	s.Assert().Equal(map[string]int{"CHA": 2, "STR": 1, "DEX": 1}, halfElf.Bonuses)

	human, ok := s.rs.Race("Human")
	s.Require().True(ok)
	s.Assert().Len(human.Bonuses, 6)
}

func (s *RulesetTestSuite) TestBackgrounds() {
	sage, ok := s.rs.Background("Sage")
	s.Require().True(ok)
	s.Assert().Equal([]string{"Arcana", "History"}, sage.Skills)

	charlatan, ok := s.rs.Background("Charlatan")
	s.Require().True(ok)
	s.Assert().Empty(charlatan.Skills)

	_, ok = s.rs.Background("Pirate")
	s.Assert().False(ok)
}

func (s *RulesetTestSuite) TestPacks() {
	pack, ok := s.rs.Pack("Explorer's Pack")
	s.Require().True(ok)
	s.Assert().Equal(10, pack.Currency["gp"])
	s.Assert().Len(pack.Items, 8)

	burglar, ok := s.rs.Pack("Burglar's Pack")
	s.Require().True(ok)
	s.Assert().Equal("Bag of 1,000 ball bearings", burglar.Items[1].Name)
}

func (s *RulesetTestSuite) TestSkillAbility() {
	s.Assert().Equal("DEX", s.rs.SkillAbility("Sleight of Hand"))
	s.Assert().Equal("", s.rs.SkillAbility("Juggling"))
}

func (s *RulesetTestSuite) TestParseRejectsBrokenTables() {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown class skill",
			doc: `
skills: [{name: Arcana, ability: INT}]
classes: [{name: Wizard, skill_choices: 1, skills: [Juggling]}]
xp_thresholds: [0]
`,
		},
		{
			name: "too many choices",
			doc: `
skills: [{name: Arcana, ability: INT}]
classes: [{name: Wizard, skill_choices: 2, skills: [Arcana]}]
xp_thresholds: [0]
`,
		},
		{
			name: "thresholds not increasing",
			doc: `
xp_thresholds: [0, 300, 300]
`,
		},
		{
			name: "missing thresholds",
			doc:  `skills: []`,
		},
		{
			name: "not yaml",
			doc:  "skills: [",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := ruleset.Parse([]byte(tc.doc))
			s.Assert().Error(err)
		})
	}
}
