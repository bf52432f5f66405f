package rules

import (
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

// ValidateIdentity checks the fields required before autofill or submit
func (e *Engine) ValidateIdentity(d *echosheet.CharacterDraft, vb *errors.ValidationBuilder) {
	errors.ValidateRequired("name", d.Name, vb)
	errors.ValidateMaxLength("name", d.Name, echosheet.MaxNameLength, vb)
	errors.ValidateRequired("race", d.Race, vb)
	errors.ValidateRequired("char_class", d.Class, vb)
	errors.ValidateRequired("background", d.Background, vb)
	errors.ValidateRange("level", d.Level, echosheet.MinLevel, echosheet.MaxLevel, vb)

	if d.Race != "" {
		errors.ValidateEnum("race", d.Race, e.rs.RaceNames(), vb)
	}
	if d.Class != "" {
		errors.ValidateEnum("char_class", d.Class, e.rs.ClassNames(), vb)
	}
	if d.Background != "" {
		errors.ValidateEnum("background", d.Background, e.rs.BackgroundNames(), vb)
	}
}

// ValidateDraft runs every gate a draft must pass before it is submitted and
// reports all failures at once.
func (e *Engine) ValidateDraft(d *echosheet.CharacterDraft) error {
	vb := errors.NewValidationBuilder()
	e.ValidateIdentity(d, vb)

	if err := ValidateAttributes(d.Attributes); err != nil {
		vb.Field("attributes", errors.GetMessage(err))
	}
	if err := e.ValidateSkills(d.Skills, d.Class); err != nil {
		vb.Field("skills", errors.GetMessage(err))
	}
	if d.Spellbook == nil && d.Class != "" {
		if c, ok := e.rs.Class(d.Class); ok && c.SpellcastingAbility != "" {
			vb.Field("spells", "spells have not been loaded for this class")
		}
	}
	if err := ValidateSpells(d.Spells, d.Spellbook); err != nil {
		for field, msgs := range errors.FieldErrors(err) {
			for _, msg := range msgs {
				vb.Field(field, msg)
			}
		}
	}
	return vb.Build()
}

// Progress derives the completed steps of a draft
func (e *Engine) Progress(d *echosheet.CharacterDraft) echosheet.CreationProgress {
	var p echosheet.CreationProgress
	p.SetStep(echosheet.ProgressStepName, d.Name != "")
	p.SetStep(echosheet.ProgressStepRace, d.Race != "")
	p.SetStep(echosheet.ProgressStepClass, d.Class != "")
	p.SetStep(echosheet.ProgressStepBackground, d.Background != "")
	p.SetStep(echosheet.ProgressStepAttributes, ValidateAttributes(d.Attributes) == nil)
	p.SetStep(echosheet.ProgressStepSkills, d.Class != "" && e.ValidateSkills(d.Skills, d.Class) == nil)
	p.SetStep(echosheet.ProgressStepSpells, d.Spellbook != nil && ValidateSpells(d.Spells, d.Spellbook) == nil)
	return p
}
