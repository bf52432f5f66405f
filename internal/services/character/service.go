// Package character defines the interface for character build operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/echosheet/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

// Service defines the interface for building a character draft.
// Every method is safe for concurrent use; mutations of one draft are serialised.
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	ListDrafts(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Identity updates. Anything but the name invalidates a staged suggestion.
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateDraftOutput, error)
	UpdateRace(ctx context.Context, input *UpdateRaceInput) (*UpdateDraftOutput, error)
	UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateDraftOutput, error)
	UpdateLevel(ctx context.Context, input *UpdateLevelInput) (*UpdateDraftOutput, error)
	UpdateBackground(ctx context.Context, input *UpdateBackgroundInput) (*UpdateDraftOutput, error)

	// Allocation
	ChangeAttribute(ctx context.Context, input *ChangeAttributeInput) (*ChangeAttributeOutput, error)
	ToggleSkill(ctx context.Context, input *ToggleSkillInput) (*ToggleSkillOutput, error)
	LoadSpellbook(ctx context.Context, input *LoadSpellbookInput) (*LoadSpellbookOutput, error)
	ToggleSpell(ctx context.Context, input *ToggleSpellInput) (*ToggleSpellOutput, error)
	GetSpellInfo(ctx context.Context, input *GetSpellInfoInput) (*GetSpellInfoOutput, error)

	// Autofill preview
	Autofill(ctx context.Context, input *AutofillInput) (*AutofillOutput, error)
	RegenerateWithPlaystyle(ctx context.Context, input *AutofillInput) (*AutofillOutput, error)
	ApplySuggestion(ctx context.Context, input *ApplySuggestionInput) (*ApplySuggestionOutput, error)
	DismissSuggestion(ctx context.Context, input *DismissSuggestionInput) (*DismissSuggestionOutput, error)

	// Validation and submission
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)
	Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error)

	// View renders every panel of a draft
	View(ctx context.Context, input *ViewInput) (*ViewOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	SessionID  string
	Name       string
	Race       string
	Class      string
	Level      int // Optional, defaults to 1
	Background string
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *echosheet.CharacterDraft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *echosheet.CharacterDraft
}

// ListDraftsInput defines the request for listing the drafts of a session
type ListDraftsInput struct {
	SessionID string
}

// ListDraftsOutput defines the response for listing drafts
type ListDraftsOutput struct {
	Drafts []*echosheet.CharacterDraft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct {
	Message string
}

// Identity update types

// UpdateNameInput defines the request for updating a draft's name
type UpdateNameInput struct {
	DraftID string
	Name    string
}

// UpdateRaceInput defines the request for updating a draft's race
type UpdateRaceInput struct {
	DraftID string
	Race    string
}

// UpdateClassInput defines the request for updating a draft's class.
// Class skill picks and spell choices are reset.
type UpdateClassInput struct {
	DraftID string
	Class   string
}

// UpdateLevelInput defines the request for updating a draft's level
type UpdateLevelInput struct {
	DraftID string
	Level   int
}

// UpdateBackgroundInput defines the request for updating a draft's background.
// Background skills are relocked and class picks are reset.
type UpdateBackgroundInput struct {
	DraftID    string
	Background string
}

// UpdateDraftOutput is shared by the identity updates
type UpdateDraftOutput struct {
	Draft *echosheet.CharacterDraft
	// SuggestionCleared is set when the edit discarded a staged suggestion
	SuggestionCleared bool
	// Warnings are non-fatal problems, such as a spellbook that failed to load
	Warnings []string
}

// Allocation types

// ChangeAttributeInput defines a point-buy step
type ChangeAttributeInput struct {
	DraftID string
	Ability echosheet.Ability
	Delta   int
}

// ChangeAttributeOutput carries the updated draft and the rendered panel
type ChangeAttributeOutput struct {
	Draft *echosheet.CharacterDraft
	View  rules.AttributeView
}

// ToggleSkillInput defines a class skill pick or unpick
type ToggleSkillInput struct {
	DraftID string
	Skill   string
}

// ToggleSkillOutput carries the updated draft and the rendered panel
type ToggleSkillOutput struct {
	Draft *echosheet.CharacterDraft
	View  rules.SkillView
}

// LoadSpellbookInput defines the request for fetching the class spell list
type LoadSpellbookInput struct {
	DraftID string
	// Force refetches even when a spellbook for the class is attached
	Force bool
}

// LoadSpellbookOutput carries the draft with its spellbook attached
type LoadSpellbookOutput struct {
	Draft     *echosheet.CharacterDraft
	Spellbook *echosheet.Spellbook
}

// ToggleSpellInput defines a cantrip or spell pick or unpick
type ToggleSpellInput struct {
	DraftID string
	Kind    echosheet.SpellKind
	Name    string
}

// ToggleSpellOutput carries the updated draft and the rendered panel
type ToggleSpellOutput struct {
	Draft *echosheet.CharacterDraft
	View  rules.SpellView
}

// GetSpellInfoInput defines the request for one spell's details
type GetSpellInfoInput struct {
	DraftID string
	Name    string
}

// GetSpellInfoOutput carries the spell details
type GetSpellInfoOutput struct {
	Spell *echosheet.Spell
}

// Autofill types

// AutofillInput defines the request for a server suggestion
type AutofillInput struct {
	DraftID   string
	Playstyle string // Optional
}

// AutofillOutput carries the staged suggestion
type AutofillOutput struct {
	Draft      *echosheet.CharacterDraft
	Suggestion *echosheet.AutofillSuggestion
}

// ApplySuggestionInput defines the request for applying the staged suggestion
type ApplySuggestionInput struct {
	DraftID string
}

// ApplySuggestionOutput reports what was applied
type ApplySuggestionOutput struct {
	Draft *echosheet.CharacterDraft
	// Unmatched lists suggested skills and spells that resolved to nothing
	Unmatched []string
}

// DismissSuggestionInput defines the request for hiding the staged suggestion
type DismissSuggestionInput struct {
	DraftID string
}

// DismissSuggestionOutput carries the draft without a suggestion
type DismissSuggestionOutput struct {
	Draft *echosheet.CharacterDraft
}

// Validation and submission types

// ValidateDraftInput defines the request for validating a draft
type ValidateDraftInput struct {
	DraftID string
}

// ValidateDraftOutput lists every failing field
type ValidateDraftOutput struct {
	IsValid bool
	Errors  map[string][]string
}

// SubmitInput defines the request for creating the character on the backend
type SubmitInput struct {
	DraftID string
	// KeepDraft leaves the draft in the store after a successful submit
	KeepDraft bool
}

// SubmitOutput carries the created character ID and where to go next
type SubmitOutput struct {
	CharacterID string
	Redirect    string
}

// ViewInput defines the request for rendering a draft
type ViewInput struct {
	DraftID string
}

// ViewOutput is every rendered panel of a draft
type ViewOutput struct {
	Draft      *echosheet.CharacterDraft
	Attributes rules.AttributeView
	Skills     rules.SkillView
	Spells     rules.SpellView
	Validation *ValidateDraftOutput
}
