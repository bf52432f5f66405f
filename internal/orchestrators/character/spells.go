package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/echosheet/internal/clients/compendium"
	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
	"github.com/KirkDiggler/echosheet/internal/services/character"
)

// LoadSpellbook fetches the class spell list and attaches it to the draft.
// Concurrent fetches for one class share a single request. A result that
// arrives after the class changed is discarded with Aborted.
func (o *Orchestrator) LoadSpellbook(ctx context.Context, input *character.LoadSpellbookInput) (*character.LoadSpellbookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.load(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	if draft.Class == "" {
		return nil, errors.FailedPrecondition("choose a class before loading spells")
	}
	if !input.Force && draft.Spellbook != nil && draft.Spellbook.Class == draft.Class {
		return &character.LoadSpellbookOutput{Draft: draft, Spellbook: draft.Spellbook}, nil
	}

	class := draft.Class
	book, err := o.fetchSpellbook(ctx, class)
	if err != nil {
		o.notify(ctx, notify.LevelError, "Failed to load spells: "+errors.GetMessage(err))
		return nil, err
	}

	updated, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		if d.Class != class {
			return errors.Aborted("class changed while spells were loading")
		}
		d.Spellbook = book
		d.Spells = keepKnownSpells(d.Spells, book)
		return nil
	})
	if err != nil {
		if errors.IsAborted(err) {
			slog.Info("discarded stale spellbook", "draft_id", input.DraftID, "class", class)
		}
		return nil, err
	}
	return &character.LoadSpellbookOutput{Draft: updated, Spellbook: updated.Spellbook}, nil
}

// fetchSpellbook coalesces concurrent fetches per class. Each caller gets its
// own copy of the result.
func (o *Orchestrator) fetchSpellbook(ctx context.Context, class string) (*echosheet.Spellbook, error) {
	v, err, shared := o.spellbooks.Do(class, func() (interface{}, error) {
		return o.backend.GetSpellbook(ctx, class)
	})
	if err != nil {
		return nil, err
	}
	book, ok := v.(*echosheet.Spellbook)
	if !ok || book == nil {
		return nil, errors.Internal("empty spellbook response")
	}
	if shared {
		slog.Debug("shared spellbook fetch", "class", class)
	}

	cp := *book
	cp.Cantrips = append([]echosheet.Spell(nil), book.Cantrips...)
	cp.Spells = append([]echosheet.Spell(nil), book.Spells...)
	if cp.Class == "" {
		cp.Class = class
	}
	return &cp, nil
}

// ensureSpellbook loads the spellbook once class and background are both
// chosen. It returns a warning instead of failing the caller.
func (o *Orchestrator) ensureSpellbook(ctx context.Context, draftID string) string {
	draft, err := o.load(ctx, draftID)
	if err != nil {
		return ""
	}
	if draft.Class == "" || draft.Background == "" {
		return ""
	}
	if draft.Spellbook != nil && draft.Spellbook.Class == draft.Class {
		return ""
	}

	if _, err := o.LoadSpellbook(ctx, &character.LoadSpellbookInput{DraftID: draftID}); err != nil {
		if errors.IsAborted(err) {
			return ""
		}
		slog.Warn("failed to load spellbook", "draft_id", draftID, "class", draft.Class, "error", err)
		return fmt.Sprintf("spells for %s could not be loaded: %s", draft.Class, errors.GetMessage(err))
	}
	return ""
}

// keepKnownSpells drops selections the spellbook does not offer or cannot fit
func keepKnownSpells(sel echosheet.SpellSelection, book *echosheet.Spellbook) echosheet.SpellSelection {
	out := echosheet.SpellSelection{Cantrips: []string{}, Spells: []string{}}
	for _, kind := range []echosheet.SpellKind{echosheet.SpellKindCantrip, echosheet.SpellKindSpell} {
		offered := rules.SpellNames(book, kind)
		limit := book.Rules.Limit(kind)
		var kept []string
		for _, name := range sel.Of(kind) {
			if len(kept) >= limit {
				break
			}
			for _, candidate := range offered {
				if candidate == name {
					kept = append(kept, name)
					break
				}
			}
		}
		if kept == nil {
			kept = []string{}
		}
		if kind == echosheet.SpellKindCantrip {
			out.Cantrips = kept
		} else {
			out.Spells = kept
		}
	}
	return out
}

// ToggleSpell picks or unpicks a cantrip or spell within the class caps
func (o *Orchestrator) ToggleSpell(ctx context.Context, input *character.ToggleSpellInput) (*character.ToggleSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("spell name is required")
	}

	draft, err := o.mutate(ctx, input.DraftID, func(d *echosheet.CharacterDraft) error {
		next, err := rules.ToggleSpell(d.Spells, d.Spellbook, input.Kind, input.Name)
		if err != nil {
			return err
		}
		d.Spells = next
		return nil
	})
	if err != nil {
		if errors.IsResourceExhausted(err) {
			o.notify(ctx, notify.LevelWarning, errors.GetMessage(err))
		}
		return nil, err
	}

	return &character.ToggleSpellOutput{
		Draft: draft,
		View:  rules.RenderSpells(draft.Spells, draft.Spellbook),
	}, nil
}

// GetSpellInfo returns spell details from the loaded spellbook, falling back
// to the backend, and fills any blanks from the compendium
func (o *Orchestrator) GetSpellInfo(ctx context.Context, input *character.GetSpellInfoInput) (*character.GetSpellInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("spell name is required")
	}

	draft, err := o.load(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	spell, err := rules.SpellInfo(draft.Spellbook, input.Name)
	if err != nil {
		if !errors.IsNotFound(err) && !errors.IsFailedPrecondition(err) {
			return nil, err
		}
		spell, err = o.backend.GetSpell(ctx, input.Name)
		if err != nil {
			return nil, err
		}
	}

	enriched := compendium.Enrich(ctx, o.compendium, *spell)
	return &character.GetSpellInfoOutput{Spell: &enriched}, nil
}
