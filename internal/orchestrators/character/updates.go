package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
	"github.com/KirkDiggler/echosheet/internal/services/character"
)

const suggestionClearedMessage = "Character details changed, suggestions cleared. Run autofill again for new suggestions."

// UpdateName sets the draft name. A staged suggestion survives a rename.
func (o *Orchestrator) UpdateName(ctx context.Context, input *character.UpdateNameInput) (*character.UpdateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, echosheet.MaxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		d.Name = input.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.UpdateDraftOutput{Draft: draft}, nil
}

// UpdateRace sets the race
func (o *Orchestrator) UpdateRace(ctx context.Context, input *character.UpdateRaceInput) (*character.UpdateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("race", input.Race, vb)
	o.validateChoices(input.Race, "", "", vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.updateBasis(ctx, input.DraftID, func(d *echosheet.CharacterDraft) {
		d.Race = input.Race
	})
}

// UpdateClass sets the class and clears class skill picks, spell choices and
// any spellbook loaded for another class
func (o *Orchestrator) UpdateClass(ctx context.Context, input *character.UpdateClassInput) (*character.UpdateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("char_class", input.Class, vb)
	o.validateChoices("", input.Class, "", vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.updateBasis(ctx, input.DraftID, func(d *echosheet.CharacterDraft) {
		if d.Class == input.Class {
			return
		}
		d.Class = input.Class
		d.Skills = o.engine.NewSkillSelection(d.Background)
		d.Spells = echosheet.SpellSelection{Cantrips: []string{}, Spells: []string{}}
		if d.Spellbook != nil && d.Spellbook.Class != input.Class {
			d.Spellbook = nil
		}
	})
}

// UpdateLevel sets the level
func (o *Orchestrator) UpdateLevel(ctx context.Context, input *character.UpdateLevelInput) (*character.UpdateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < echosheet.MinLevel || input.Level > echosheet.MaxLevel {
		return nil, errors.OutOfRangef("level must be between %d and %d", echosheet.MinLevel, echosheet.MaxLevel)
	}

	return o.updateBasis(ctx, input.DraftID, func(d *echosheet.CharacterDraft) {
		d.Level = input.Level
	})
}

// UpdateBackground sets the background, relocks its skills and resets class picks
func (o *Orchestrator) UpdateBackground(ctx context.Context, input *character.UpdateBackgroundInput) (*character.UpdateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("background", input.Background, vb)
	o.validateChoices("", "", input.Background, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return o.updateBasis(ctx, input.DraftID, func(d *echosheet.CharacterDraft) {
		if d.Background == input.Background {
			return
		}
		d.Background = input.Background
		d.Skills = o.engine.NewSkillSelection(input.Background)
	})
}

// updateBasis applies an identity edit. When the edit changes the basis a
// staged suggestion is dropped and any autofill in flight is orphaned. Once
// both class and background are known the class spellbook is loaded.
func (o *Orchestrator) updateBasis(ctx context.Context, draftID string, fn func(d *echosheet.CharacterDraft)) (*character.UpdateDraftOutput, error) {
	cleared := false
	draft, err := o.mutate(ctx, draftID, func(d *echosheet.CharacterDraft) error {
		before := d.Basis()
		fn(d)
		if d.Basis() == before {
			return nil
		}
		d.PendingAutofill = ""
		if d.Suggestion != nil {
			d.Suggestion = nil
			cleared = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &character.UpdateDraftOutput{Draft: draft, SuggestionCleared: cleared}
	if cleared {
		slog.Info("suggestion invalidated", "draft_id", draftID)
		o.notify(ctx, notify.LevelInfo, suggestionClearedMessage)
	}

	if warning := o.ensureSpellbook(ctx, draftID); warning != "" {
		output.Warnings = append(output.Warnings, warning)
	}
	if refreshed, err := o.load(ctx, draftID); err == nil {
		output.Draft = refreshed
	}
	return output, nil
}

// Allocation methods

// ChangeAttribute moves one base score by delta within the point-buy budget
func (o *Orchestrator) ChangeAttribute(ctx context.Context, input *character.ChangeAttributeInput) (*character.ChangeAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		next, err := rules.ChangeAttribute(d.Attributes, input.Ability, input.Delta)
		if err != nil {
			return err
		}
		d.Attributes = next
		return nil
	})
	if err != nil {
		if errors.IsOutOfRange(err) || errors.IsResourceExhausted(err) {
			o.notify(ctx, notify.LevelWarning, errors.GetMessage(err))
		}
		return nil, err
	}

	return &character.ChangeAttributeOutput{
		Draft: draft,
		View:  o.engine.RenderAttributes(draft.Attributes, draft.Race),
	}, nil
}

// ToggleSkill picks or unpicks a class skill. Locked background skills are
// left as they are.
func (o *Orchestrator) ToggleSkill(ctx context.Context, input *character.ToggleSkillInput) (*character.ToggleSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Skill == "" {
		return nil, errors.InvalidArgument("skill is required")
	}

	draft, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		if d.Class == "" {
			return errors.FailedPrecondition("choose a class before picking skills")
		}
		next, err := o.engine.ToggleSkill(d.Skills, d.Class, d.Background, input.Skill)
		if err != nil {
			return err
		}
		d.Skills = next
		return nil
	})
	if err != nil {
		if errors.IsResourceExhausted(err) {
			o.notify(ctx, notify.LevelWarning, errors.GetMessage(err))
		}
		return nil, err
	}

	return &character.ToggleSkillOutput{
		Draft: draft,
		View:  o.engine.RenderSkills(draft.Skills, draft.Class, draft.Background),
	}, nil
}
