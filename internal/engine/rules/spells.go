package rules

import (
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

// SpellNames lists the option names of one kind
func SpellNames(book *echosheet.Spellbook, kind echosheet.SpellKind) []string {
	if book == nil {
		return nil
	}
	options := book.Options(kind)
	names := make([]string, len(options))
	for i, s := range options {
		names[i] = s.Name
	}
	return names
}

// ToggleSpell flips the selection of one spell.
//
// Selecting past the class cap fails with ResourceExhausted and leaves the
// selection unchanged. Deselecting always succeeds.
func ToggleSpell(sel echosheet.SpellSelection, book *echosheet.Spellbook, kind echosheet.SpellKind, name string) (echosheet.SpellSelection, error) {
	if book == nil {
		return sel, errors.FailedPrecondition("spells have not been loaded for this class")
	}
	if kind != echosheet.SpellKindCantrip && kind != echosheet.SpellKindSpell {
		return sel, errors.InvalidArgumentf("unknown spell kind %q", kind)
	}
	if !contains(SpellNames(book, kind), name) {
		return sel, errors.NotFoundf("%s %q is not available to %s", kind, name, book.Class)
	}

	current := sel.Of(kind)
	var next []string
	if contains(current, name) {
		next = remove(current, name)
	} else {
		limit := book.Rules.Limit(kind)
		if len(current) >= limit {
			return sel, errors.ResourceExhaustedf("Cannot select more %ss. Limit is %d.", kind, limit)
		}
		next = append(append(make([]string, 0, len(current)+1), current...), name)
	}

	out := echosheet.SpellSelection{
		Cantrips: append([]string(nil), sel.Cantrips...),
		Spells:   append([]string(nil), sel.Spells...),
	}
	if kind == echosheet.SpellKindCantrip {
		out.Cantrips = next
	} else {
		out.Spells = next
	}
	return out, nil
}

// ValidateSpells passes for non-casters and when both counts are within their caps
func ValidateSpells(sel echosheet.SpellSelection, book *echosheet.Spellbook) error {
	if book == nil || !book.Rules.IsCaster() {
		return nil
	}
	vb := errors.NewValidationBuilder()
	if n, limit := len(sel.Cantrips), book.Rules.CantripsKnown; n > limit {
		vb.Fieldf("cantrips", "too many cantrips selected: %d, maximum is %d", n, limit)
	}
	if n, limit := len(sel.Spells), book.Rules.SpellsKnown; n > limit {
		vb.Fieldf("spells", "too many spells selected: %d, maximum is %d", n, limit)
	}
	return vb.Build()
}

// SpellInfo returns the metadata for a spell of either kind
func SpellInfo(book *echosheet.Spellbook, name string) (*echosheet.Spell, error) {
	if book == nil {
		return nil, errors.FailedPrecondition("spells have not been loaded for this class")
	}
	for _, kind := range []echosheet.SpellKind{echosheet.SpellKindCantrip, echosheet.SpellKindSpell} {
		for _, s := range book.Options(kind) {
			if s.Name == name {
				spell := s
				return &spell, nil
			}
		}
	}
	return nil, errors.NotFoundf("spell %q not found", name)
}

// ResetSpells rebuilds a selection from suggested names. Each name is
// resolved against cantrips first, then spells, and is dropped once its kind
// is full. Names that match nothing are returned.
func ResetSpells(book *echosheet.Spellbook, suggested []string) (echosheet.SpellSelection, []string) {
	sel := echosheet.SpellSelection{Cantrips: []string{}, Spells: []string{}}
	if book == nil || !book.Rules.IsCaster() {
		return sel, nil
	}

	cantrips := SpellNames(book, echosheet.SpellKindCantrip)
	spells := SpellNames(book, echosheet.SpellKindSpell)

	var unmatched []string
	for _, name := range suggested {
		if match, ok := ResolveName(cantrips, name); ok {
			if !contains(sel.Cantrips, match) && len(sel.Cantrips) < book.Rules.CantripsKnown {
				sel.Cantrips = append(sel.Cantrips, match)
			}
			continue
		}
		if match, ok := ResolveName(spells, name); ok {
			if !contains(sel.Spells, match) && len(sel.Spells) < book.Rules.SpellsKnown {
				sel.Spells = append(sel.Spells, match)
			}
			continue
		}
		unmatched = append(unmatched, name)
	}
	return sel, unmatched
}

// SpellItem is the rendered state of one spell
type SpellItem struct {
	Spell    echosheet.Spell
	Kind     echosheet.SpellKind
	Selected bool
	Disabled bool
}

// SpellView is the rendered spell panel. Hidden is set for non-casters.
type SpellView struct {
	Hidden            bool
	Ability           string
	Cantrips          []SpellItem
	Spells            []SpellItem
	CantripsRemaining int
	SpellsRemaining   int
	Valid             bool
}

// RenderSpells computes the display state of the spell panel
func RenderSpells(sel echosheet.SpellSelection, book *echosheet.Spellbook) SpellView {
	if book == nil || !book.Rules.IsCaster() {
		return SpellView{Hidden: true, Valid: true}
	}
	view := SpellView{
		Ability:           book.Rules.SpellcastingAbility,
		CantripsRemaining: book.Rules.CantripsKnown - len(sel.Cantrips),
		SpellsRemaining:   book.Rules.SpellsKnown - len(sel.Spells),
		Valid:             ValidateSpells(sel, book) == nil,
	}
	view.Cantrips = renderSpellItems(book.Cantrips, echosheet.SpellKindCantrip, sel.Cantrips, view.CantripsRemaining)
	view.Spells = renderSpellItems(book.Spells, echosheet.SpellKindSpell, sel.Spells, view.SpellsRemaining)
	return view
}

func renderSpellItems(options []echosheet.Spell, kind echosheet.SpellKind, selected []string, remaining int) []SpellItem {
	items := make([]SpellItem, 0, len(options))
	for _, s := range options {
		item := SpellItem{Spell: s, Kind: kind, Selected: contains(selected, s.Name)}
		item.Disabled = !item.Selected && remaining <= 0
		items = append(items, item)
	}
	return items
}
