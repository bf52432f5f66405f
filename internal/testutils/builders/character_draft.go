// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

// CharacterDraftBuilder provides a fluent interface for building test CharacterDraft instances
type CharacterDraftBuilder struct {
	draft *echosheet.CharacterDraft
}

// NewCharacterDraftBuilder creates a new builder with minimal defaults
func NewCharacterDraftBuilder() *CharacterDraftBuilder {
	now := time.Now().Unix()
	return &CharacterDraftBuilder{
		draft: &echosheet.CharacterDraft{
			ID:         "draft-test-123",
			SessionID:  "session-test-123",
			Level:      echosheet.MinLevel,
			Attributes: echosheet.NewAttributeSet(),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}

// WithID sets the draft ID
func (b *CharacterDraftBuilder) WithID(id string) *CharacterDraftBuilder {
	b.draft.ID = id
	return b
}

// WithSessionID sets the session ID
func (b *CharacterDraftBuilder) WithSessionID(sessionID string) *CharacterDraftBuilder {
	b.draft.SessionID = sessionID
	return b
}

// WithName sets the character name and marks the name step
func (b *CharacterDraftBuilder) WithName(name string) *CharacterDraftBuilder {
	b.draft.Name = name
	b.draft.Progress.SetStep(echosheet.ProgressStepName, name != "")
	return b
}

// WithRace sets the race and marks the race step
func (b *CharacterDraftBuilder) WithRace(race string) *CharacterDraftBuilder {
	b.draft.Race = race
	b.draft.Progress.SetStep(echosheet.ProgressStepRace, race != "")
	return b
}

// WithClass sets the class and marks the class step
func (b *CharacterDraftBuilder) WithClass(class string) *CharacterDraftBuilder {
	b.draft.Class = class
	b.draft.Progress.SetStep(echosheet.ProgressStepClass, class != "")
	return b
}

// WithBackground sets the background and its locked skills
func (b *CharacterDraftBuilder) WithBackground(background string, skills ...string) *CharacterDraftBuilder {
	b.draft.Background = background
	b.draft.Skills.Background = skills
	b.draft.Progress.SetStep(echosheet.ProgressStepBackground, background != "")
	return b
}

// WithLevel sets the level
func (b *CharacterDraftBuilder) WithLevel(level int) *CharacterDraftBuilder {
	b.draft.Level = level
	return b
}

// WithAttributes sets base scores in STR, DEX, CON, INT, WIS, CHA order
func (b *CharacterDraftBuilder) WithAttributes(str, dex, con, intel, wis, cha int) *CharacterDraftBuilder {
	b.draft.Attributes = echosheet.AttributeSet{
		echosheet.AbilityStrength:     str,
		echosheet.AbilityDexterity:    dex,
		echosheet.AbilityConstitution: con,
		echosheet.AbilityIntelligence: intel,
		echosheet.AbilityWisdom:       wis,
		echosheet.AbilityCharisma:     cha,
	}
	return b
}

// WithClassSkills sets the class skill picks
func (b *CharacterDraftBuilder) WithClassSkills(skills ...string) *CharacterDraftBuilder {
	b.draft.Skills.Class = skills
	return b
}

// WithSpellbook attaches a loaded spellbook
func (b *CharacterDraftBuilder) WithSpellbook(book *echosheet.Spellbook) *CharacterDraftBuilder {
	b.draft.Spellbook = book
	return b
}

// WithSpells sets the selected cantrips and spells
func (b *CharacterDraftBuilder) WithSpells(cantrips, spells []string) *CharacterDraftBuilder {
	b.draft.Spells = echosheet.SpellSelection{Cantrips: cantrips, Spells: spells}
	return b
}

// WithSuggestion stages an autofill suggestion
func (b *CharacterDraftBuilder) WithSuggestion(s *echosheet.AutofillSuggestion) *CharacterDraftBuilder {
	b.draft.Suggestion = s
	return b
}

// WithExpiresAt sets the expiry time
func (b *CharacterDraftBuilder) WithExpiresAt(t time.Time) *CharacterDraftBuilder {
	b.draft.ExpiresAt = t.Unix()
	return b
}

// WithCreatedAt sets the creation time
func (b *CharacterDraftBuilder) WithCreatedAt(t time.Time) *CharacterDraftBuilder {
	b.draft.CreatedAt = t.Unix()
	b.draft.UpdatedAt = t.Unix()
	return b
}

// AsFighter fills a complete, valid Dwarf Fighter
func (b *CharacterDraftBuilder) AsFighter() *CharacterDraftBuilder {
	return b.
		WithName("Bruna Ironfoot").
		WithRace("Dwarf").
		WithClass("Fighter").
		WithBackground("Soldier", "Athletics", "Intimidation").
		WithAttributes(15, 14, 14, 8, 10, 10).
		WithClassSkills("Acrobatics", "Perception")
}

// AsWizard fills a complete, valid Elf Wizard with a loaded spellbook
func (b *CharacterDraftBuilder) AsWizard() *CharacterDraftBuilder {
	return b.
		WithName("Ilsa Vey").
		WithRace("Elf").
		WithClass("Wizard").
		WithBackground("Sage", "Arcana", "History").
		WithAttributes(8, 14, 14, 15, 12, 8).
		WithClassSkills("Insight", "Investigation").
		WithSpellbook(WizardSpellbook()).
		WithSpells([]string{"Fire Bolt", "Light", "Mage Hand"}, []string{"Magic Missile", "Shield"})
}

// Build returns the constructed CharacterDraft
func (b *CharacterDraftBuilder) Build() *echosheet.CharacterDraft {
	return b.draft
}

// WizardSpellbook is a small level 1 wizard spellbook: 3 cantrips, 6 spells known
func WizardSpellbook() *echosheet.Spellbook {
	return &echosheet.Spellbook{
		Class: "Wizard",
		Rules: echosheet.SpellRules{CantripsKnown: 3, SpellsKnown: 6, SpellcastingAbility: "INT"},
		Cantrips: []echosheet.Spell{
			{Name: "Fire Bolt", School: "Evocation", CastingTime: "1 action", Range: "120 feet", Duration: "Instantaneous"},
			{Name: "Light", School: "Evocation", CastingTime: "1 action", Range: "Touch", Duration: "1 hour"},
			{Name: "Mage Hand", School: "Conjuration", CastingTime: "1 action", Range: "30 feet", Duration: "1 minute"},
			{Name: "Ray of Frost", School: "Evocation", CastingTime: "1 action", Range: "60 feet", Duration: "Instantaneous"},
		},
		Spells: []echosheet.Spell{
			{Name: "Magic Missile", Level: 1, School: "Evocation"},
			{Name: "Shield", Level: 1, School: "Abjuration"},
			{Name: "Mage Armor", Level: 1, School: "Abjuration"},
			{Name: "Sleep", Level: 1, School: "Enchantment"},
			{Name: "Detect Magic", Level: 1, School: "Divination"},
			{Name: "Burning Hands", Level: 1, School: "Evocation"},
			{Name: "Thunderwave", Level: 1, School: "Evocation"},
		},
	}
}

// NonCasterSpellbook is what the backend returns for martial classes
func NonCasterSpellbook(class string) *echosheet.Spellbook {
	return &echosheet.Spellbook{Class: class}
}
