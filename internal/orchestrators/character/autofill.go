package character

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
	"github.com/KirkDiggler/echosheet/internal/services/character"
)

var playstyleCaser = cases.Title(language.English)

// PlaystyleLabel turns a playstyle key such as "glass_cannon" into "Glass Cannon"
func PlaystyleLabel(name string) string {
	name = strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(name))
	return playstyleCaser.String(strings.Join(strings.Fields(name), " "))
}

// Autofill asks the backend for a suggested build and stages it on the draft.
//
// Each call records a fresh request token. The response is staged only if the
// token is still current and the race, class, level and background are
// unchanged; otherwise it is discarded with Aborted.
func (o *Orchestrator) Autofill(ctx context.Context, input *character.AutofillInput) (*character.AutofillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	token := o.requestIDs.Generate()
	var (
		req   *backend.AutofillRequest
		basis echosheet.DraftBasis
	)
	_, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		vb := errors.NewValidationBuilder()
		o.engine.ValidateIdentity(d, vb)
		if err := vb.Build(); err != nil {
			return err
		}
		d.PendingAutofill = token
		basis = d.Basis()
		req = &backend.AutofillRequest{
			Name:       d.Name,
			Race:       d.Race,
			Class:      d.Class,
			Level:      d.Level,
			Background: d.Background,
			Playstyle:  input.Playstyle,
		}
		return nil
	})
	if err != nil {
		if errors.IsInvalidArgument(err) {
			o.notify(ctx, notify.LevelError, "Please fill in name, race, class and background before autofilling.")
		}
		return nil, err
	}

	slog.Info("requesting autofill", "draft_id", input.DraftID, "playstyle", input.Playstyle)
	resp, err := o.backend.Autofill(ctx, req)
	if err != nil {
		o.clearPending(ctx, input.DraftID, token)
		o.notify(ctx, notify.LevelError, "Error generating suggestions: "+errors.GetMessage(err))
		return nil, err
	}

	draft, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		if d.PendingAutofill != token {
			return errors.Aborted("a newer autofill request replaced this one")
		}
		d.PendingAutofill = ""
		if d.Basis() != basis {
			return errors.Aborted("character details changed while suggestions were generated")
		}
		d.Suggestion = o.buildSuggestion(token, basis, input.Playstyle, resp)
		return nil
	})
	if err != nil {
		if errors.IsAborted(err) {
			slog.Info("discarded stale autofill response", "draft_id", input.DraftID, "reason", errors.GetMessage(err))
			o.clearPending(ctx, input.DraftID, token)
		}
		return nil, err
	}

	o.notify(ctx, notify.LevelSuccess, "Suggestions generated. Review them and apply when ready.")
	return &character.AutofillOutput{Draft: draft, Suggestion: draft.Suggestion}, nil
}

// RegenerateWithPlaystyle replaces the staged suggestion with one built for a playstyle
func (o *Orchestrator) RegenerateWithPlaystyle(ctx context.Context, input *character.AutofillInput) (*character.AutofillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Playstyle == "" {
		return nil, errors.InvalidArgument("playstyle is required")
	}
	return o.Autofill(ctx, input)
}

// clearPending forgets token if it is still the pending one
func (o *Orchestrator) clearPending(ctx context.Context, draftID, token string) {
	_, err := o.mutate(ctx, draftID, func(d *echosheet.CharacterDraft) error {
		if d.PendingAutofill != token {
			return errors.Aborted("token already replaced")
		}
		d.PendingAutofill = ""
		return nil
	})
	if err != nil && !errors.IsAborted(err) {
		slog.Warn("failed to clear pending autofill", "draft_id", draftID, "error", err)
	}
}

func (o *Orchestrator) buildSuggestion(token string, basis echosheet.DraftBasis, playstyle string, resp *backend.AutofillResponse) *echosheet.AutofillSuggestion {
	s := &echosheet.AutofillSuggestion{
		RequestID:           token,
		Basis:               basis,
		Playstyle:           resp.CurrentPlaystyle,
		AvailablePlaystyles: append([]string(nil), resp.AvailablePlaystyles...),
		Attributes:          make([]echosheet.PreviewAttribute, 0, len(echosheet.AllAbilities)),
		Skills:              append([]string{}, resp.Skills...),
		Spells:              append([]string{}, resp.Spells...),
		Valid:               true,
		GeneratedAt:         o.clock.Now().Unix(),
	}
	if s.Playstyle == "" {
		s.Playstyle = playstyle
	}

	for _, a := range echosheet.AllAbilities {
		base, ok := lookupAbility(resp.Attributes, a)
		if !ok {
			base = echosheet.MinBaseScore
		}
		racial := o.engine.RacialBonus(basis.Race, a)
		s.Attributes = append(s.Attributes, echosheet.PreviewAttribute{
			Ability:  a,
			Base:     base,
			Racial:   racial,
			Modifier: rules.Modifier(base + racial),
		})
	}
	return s
}

// lookupAbility accepts the abbreviation or long name in any case
func lookupAbility(attrs map[string]int, a echosheet.Ability) (int, bool) {
	if v, ok := attrs[string(a)]; ok {
		return v, true
	}
	for key, v := range attrs {
		if parsed, ok := echosheet.ParseAbility(key); ok && parsed == a {
			return v, true
		}
	}
	return 0, false
}

// ApplySuggestion copies the staged preview into the draft: attribute bases
// are overwritten, skills and spells are rebuilt from the suggested names.
// Names that match nothing are logged and returned.
func (o *Orchestrator) ApplySuggestion(ctx context.Context, input *character.ApplySuggestionInput) (*character.ApplySuggestionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	current, err := o.load(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if current.Suggestion == nil || !current.Suggestion.Valid {
		return nil, errors.FailedPrecondition("no suggestions to apply, run autofill first")
	}
	if len(current.Suggestion.Spells) > 0 {
		if warning := o.ensureSpellbook(ctx, input.DraftID); warning != "" {
			o.notify(ctx, notify.LevelWarning, warning)
		}
	}

	var unmatched []string
	draft, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		s := d.Suggestion
		if s == nil || !s.Valid {
			return errors.FailedPrecondition("no suggestions to apply, run autofill first")
		}
		if s.Basis != d.Basis() {
			return errors.FailedPrecondition("suggestions are out of date, run autofill again")
		}

		attrs := echosheet.NewAttributeSet()
		for _, row := range s.Attributes {
			attrs[row.Ability] = max(echosheet.MinBaseScore, min(echosheet.MaxBaseScore, row.Base))
		}
		d.Attributes = attrs

		skills, missedSkills := o.engine.ResetSkills(d.Class, d.Background, s.Skills)
		d.Skills = skills
		unmatched = append(unmatched, missedSkills...)

		spells, missedSpells := rules.ResetSpells(d.Spellbook, s.Spells)
		d.Spells = spells
		unmatched = append(unmatched, missedSpells...)
		if d.Spellbook == nil {
			unmatched = append(unmatched, s.Spells...)
		}

		d.Suggestion = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, name := range unmatched {
		slog.Warn("suggested name matched nothing", "draft_id", input.DraftID, "name", name)
	}
	message := "Suggestions applied."
	if len(unmatched) > 0 {
		message = fmt.Sprintf("Suggestions applied. %d could not be matched: %s", len(unmatched), strings.Join(unmatched, ", "))
	}
	o.notify(ctx, notify.LevelSuccess, message)

	return &character.ApplySuggestionOutput{Draft: draft, Unmatched: unmatched}, nil
}

// DismissSuggestion hides the staged preview and orphans any autofill in flight
func (o *Orchestrator) DismissSuggestion(ctx context.Context, input *character.DismissSuggestionInput) (*character.DismissSuggestionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		d.Suggestion = nil
		d.PendingAutofill = ""
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &character.DismissSuggestionOutput{Draft: draft}, nil
}
