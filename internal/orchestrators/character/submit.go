package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
	draftrepo "github.com/KirkDiggler/echosheet/internal/repositories/character_draft"
	"github.com/KirkDiggler/echosheet/internal/services/character"
)

// ValidateDraft reports every rule the draft currently breaks
func (o *Orchestrator) ValidateDraft(ctx context.Context, input *character.ValidateDraftInput) (*character.ValidateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := o.load(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	return o.validate(draft), nil
}

func (o *Orchestrator) validate(draft *echosheet.CharacterDraft) *character.ValidateDraftOutput {
	err := o.engine.ValidateDraft(draft)
	return &character.ValidateDraftOutput{
		IsValid: err == nil,
		Errors:  errors.FieldErrors(err),
	}
}

// Submit creates the character on the backend. The draft must pass
// validation. A second Submit for a draft already being submitted fails with
// Aborted.
func (o *Orchestrator) Submit(ctx context.Context, input *character.SubmitInput) (*character.SubmitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	if !o.beginSubmit(input.DraftID) {
		return nil, errors.Aborted("character creation is already in progress")
	}
	defer o.endSubmit(input.DraftID)

	draft, err := o.load(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if err := o.engine.ValidateDraft(draft); err != nil {
		o.notify(ctx, notify.LevelError, "Please fix the highlighted problems before creating your character.")
		return nil, err
	}

	resp, err := o.backend.CreateCharacter(ctx, createRequest(draft))
	if err != nil {
		o.notify(ctx, notify.LevelError, "Error creating character: "+errors.GetMessage(err))
		return nil, err
	}
	slog.Info("character created", "draft_id", draft.ID, "character_id", resp.CharacterID)

	if !input.KeepDraft {
		unlock := o.locks.lock(draft.ID)
		_, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: draft.ID})
		unlock()
		if err != nil && !errors.IsNotFound(err) {
			slog.Warn("failed to delete submitted draft", "draft_id", draft.ID, "error", err)
		}
	}

	o.notify(ctx, notify.LevelSuccess, "Character created!")
	return &character.SubmitOutput{
		CharacterID: resp.CharacterID,
		Redirect:    echosheet.CharacterPath(resp.CharacterID),
	}, nil
}

func (o *Orchestrator) beginSubmit(draftID string) bool {
	o.submitMu.Lock()
	defer o.submitMu.Unlock()
	if o.submitting[draftID] {
		return false
	}
	o.submitting[draftID] = true
	return true
}

func (o *Orchestrator) endSubmit(draftID string) {
	o.submitMu.Lock()
	defer o.submitMu.Unlock()
	delete(o.submitting, draftID)
}

// createRequest sends base scores; the backend adds racial bonuses itself
func createRequest(d *echosheet.CharacterDraft) *backend.CreateCharacterRequest {
	attrs := make(map[string]int, len(echosheet.AllAbilities))
	for _, a := range echosheet.AllAbilities {
		attrs[string(a)] = d.Attributes.Base(a)
	}
	spells := echosheet.SpellSelection{
		Cantrips: append([]string{}, d.Spells.Cantrips...),
		Spells:   append([]string{}, d.Spells.Spells...),
	}
	return &backend.CreateCharacterRequest{
		Name:       d.Name,
		Race:       d.Race,
		Class:      d.Class,
		Level:      d.Level,
		Background: d.Background,
		Attributes: attrs,
		Skills:     d.Skills.All(),
		Spells:     spells,
	}
}

// View renders every panel of a draft
func (o *Orchestrator) View(ctx context.Context, input *character.ViewInput) (*character.ViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := o.load(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	return &character.ViewOutput{
		Draft:      draft,
		Attributes: o.engine.RenderAttributes(draft.Attributes, draft.Race),
		Skills:     o.engine.RenderSkills(draft.Skills, draft.Class, draft.Background),
		Spells:     rules.RenderSpells(draft.Spells, draft.Spellbook),
		Validation: o.validate(draft),
	}, nil
}
