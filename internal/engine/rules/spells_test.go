package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

type SpellsTestSuite struct {
	suite.Suite
	book *echosheet.Spellbook
}

func TestSpellsSuite(t *testing.T) {
	suite.Run(t, new(SpellsTestSuite))
}

func named(names ...string) []echosheet.Spell {
	out := make([]echosheet.Spell, len(names))
	for i, n := range names {
		out[i] = echosheet.Spell{Name: n, School: "Evocation"}
	}
	return out
}

func (s *SpellsTestSuite) SetupTest() {
	s.book = &echosheet.Spellbook{
		Class:    "Cleric",
		Rules:    echosheet.SpellRules{CantripsKnown: 3, SpellsKnown: 4, SpellcastingAbility: "Wisdom"},
		Cantrips: named("Guidance", "Light", "Sacred Flame", "Spare the Dying", "Thaumaturgy"),
		Spells:   named("Bless", "Cure Wounds", "Guiding Bolt", "Healing Word", "Sanctuary", "Shield of Faith"),
	}
}

func (s *SpellsTestSuite) toggleAll(sel echosheet.SpellSelection, kind echosheet.SpellKind, names ...string) echosheet.SpellSelection {
	for _, n := range names {
		var err error
		sel, err = rules.ToggleSpell(sel, s.book, kind, n)
		s.Require().NoError(err, n)
	}
	return sel
}

func (s *SpellsTestSuite) TestClericScenario() {
	sel := s.toggleAll(echosheet.SpellSelection{}, echosheet.SpellKindCantrip, "Guidance", "Light", "Sacred Flame")

	fourth, err := rules.ToggleSpell(sel, s.book, echosheet.SpellKindCantrip, "Thaumaturgy")
	s.Require().Error(err)
	s.Assert().True(errors.IsResourceExhausted(err))
	s.Assert().Equal("Cannot select more cantrips. Limit is 3.", errors.GetMessage(err))
	s.Assert().Equal(sel, fourth)

	sel = s.toggleAll(sel, echosheet.SpellKindSpell, "Bless", "Cure Wounds", "Guiding Bolt", "Healing Word")
	s.Assert().NoError(rules.ValidateSpells(sel, s.book))

	_, err = rules.ToggleSpell(sel, s.book, echosheet.SpellKindSpell, "Sanctuary")
	s.Assert().Equal("Cannot select more spells. Limit is 4.", errors.GetMessage(err))
}

func (s *SpellsTestSuite) TestToggleDeselects() {
	sel := s.toggleAll(echosheet.SpellSelection{}, echosheet.SpellKindSpell, "Bless")
	out, err := rules.ToggleSpell(sel, s.book, echosheet.SpellKindSpell, "Bless")
	s.Require().NoError(err)
	s.Assert().Empty(out.Spells)
	s.Assert().Equal([]string{"Bless"}, sel.Spells)
}

func (s *SpellsTestSuite) TestToggleErrors() {
	_, err := rules.ToggleSpell(echosheet.SpellSelection{}, nil, echosheet.SpellKindSpell, "Bless")
	s.Assert().True(errors.IsFailedPrecondition(err))

	_, err = rules.ToggleSpell(echosheet.SpellSelection{}, s.book, echosheet.SpellKindSpell, "Fireball")
	s.Assert().True(errors.IsNotFound(err))

	_, err = rules.ToggleSpell(echosheet.SpellSelection{}, s.book, echosheet.SpellKindSpell, "Light")
	s.Assert().True(errors.IsNotFound(err), "cantrip names are not spells")

	_, err = rules.ToggleSpell(echosheet.SpellSelection{}, s.book, echosheet.SpellKind("ritual"), "Bless")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *SpellsTestSuite) TestValidateSpells() {
	s.Assert().NoError(rules.ValidateSpells(echosheet.SpellSelection{}, nil))
	s.Assert().NoError(rules.ValidateSpells(echosheet.SpellSelection{}, s.book), "under the cap passes")

	fighter := &echosheet.Spellbook{Class: "Fighter"}
	s.Assert().NoError(rules.ValidateSpells(echosheet.SpellSelection{Spells: []string{"Bless"}}, fighter))

	over := echosheet.SpellSelection{Cantrips: []string{"a", "b", "c", "d"}}
	err := rules.ValidateSpells(over, s.book)
	s.Require().Error(err)
	s.Assert().Contains(errors.FieldErrors(err), "cantrips")
}

func (s *SpellsTestSuite) TestSpellInfo() {
	spell, err := rules.SpellInfo(s.book, "Guiding Bolt")
	s.Require().NoError(err)
	s.Assert().Equal("Evocation", spell.School)

	_, err = rules.SpellInfo(s.book, "Wish")
	s.Assert().True(errors.IsNotFound(err))
}

func (s *SpellsTestSuite) TestResetSpells() {
	sel, unmatched := rules.ResetSpells(s.book, []string{
		"sacred flame", "Light", "Guidance", "Thaumaturgy", // fourth cantrip dropped
		"Cure", "Bless", "Wish",
	})
	s.Assert().Equal([]string{"Sacred Flame", "Light", "Guidance"}, sel.Cantrips)
	s.Assert().Equal([]string{"Cure Wounds", "Bless"}, sel.Spells)
	s.Assert().Equal([]string{"Wish"}, unmatched)

	empty, _ := rules.ResetSpells(nil, []string{"Bless"})
	s.Assert().Empty(empty.Spells)
}

func (s *SpellsTestSuite) TestRenderSpells() {
	sel := s.toggleAll(echosheet.SpellSelection{}, echosheet.SpellKindCantrip, "Guidance", "Light", "Sacred Flame")
	view := rules.RenderSpells(sel, s.book)

	s.Assert().False(view.Hidden)
	s.Assert().Equal(0, view.CantripsRemaining)
	s.Assert().Equal(4, view.SpellsRemaining)
	s.Assert().True(view.Cantrips[0].Selected)
	s.Assert().True(view.Cantrips[3].Disabled)
	s.Assert().False(view.Spells[0].Disabled)

	s.Assert().True(rules.RenderSpells(sel, &echosheet.Spellbook{Class: "Monk"}).Hidden)
}
