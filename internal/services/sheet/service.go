// Package sheet defines the interface for operations on a stored character
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/echosheet/internal/services/sheet Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

// Service defines the character sheet operations.
// Personality and inventory edits are saved after a quiet period; Flush sends
// them at once.
type Service interface {
	// Conversation
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)

	// Lifecycle
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)

	// Immediate section saves
	UpdateBasicInfo(ctx context.Context, input *UpdateBasicInfoInput) (*UpdateBasicInfoOutput, error)
	UpdatePhysicalInfo(ctx context.Context, input *UpdatePhysicalInfoInput) (*UpdatePhysicalInfoOutput, error)
	UpdateHitPoints(ctx context.Context, input *UpdateHitPointsInput) (*UpdateHitPointsOutput, error)

	// Auto-saved sections
	UpdatePersonality(ctx context.Context, input *UpdatePersonalityInput) (*UpdatePersonalityOutput, error)
	LoadInventory(ctx context.Context, input *LoadInventoryInput) (*InventoryOutput, error)
	GetInventory(ctx context.Context, input *GetInventoryInput) (*InventoryOutput, error)
	AddItem(ctx context.Context, input *AddItemInput) (*InventoryOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*InventoryOutput, error)
	SetItemWeight(ctx context.Context, input *SetItemWeightInput) (*InventoryOutput, error)
	SetCurrency(ctx context.Context, input *SetCurrencyInput) (*InventoryOutput, error)
	ApplyEquipmentPack(ctx context.Context, input *ApplyEquipmentPackInput) (*ApplyEquipmentPackOutput, error)

	// Flush sends every pending auto-save now
	Flush(ctx context.Context, input *FlushInput) (*FlushOutput, error)
}

// ChatInput defines a message to the character
type ChatInput struct {
	CharacterID string
	Message     string
}

// ChatOutput carries the character's reply
type ChatOutput struct {
	Response string
}

// DeleteCharacterInput defines the request for deleting a stored character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput says where to go once the confirmation has been shown
type DeleteCharacterOutput struct {
	Message       string
	Redirect      string
	RedirectAfter time.Duration
}

// LevelUpInput defines a level-up request. Level and ExperiencePoints are
// optional; when known they are checked before the backend is called.
type LevelUpInput struct {
	CharacterID      string
	Level            int
	ExperiencePoints *int
}

// LevelUpOutput carries the backend result
type LevelUpOutput struct {
	NewLevel int
	Message  string
}

// UpdateBasicInfoInput defines the alignment and experience block
type UpdateBasicInfoInput struct {
	CharacterID string
	Info        echosheet.BasicInfo
}

// UpdateBasicInfoOutput carries the derived level
type UpdateBasicInfoOutput struct {
	Level            int
	NextLevelXP      int
	AtMaxLevel       bool
	ProficiencyBonus int
}

// UpdatePhysicalInfoInput defines the appearance block
type UpdatePhysicalInfoInput struct {
	CharacterID string
	Info        echosheet.PhysicalInfo
}

// UpdatePhysicalInfoOutput is empty on success
type UpdatePhysicalInfoOutput struct{}

// UpdateHitPointsInput defines the hit point block
type UpdateHitPointsInput struct {
	CharacterID string
	HitPoints   echosheet.HitPoints
}

// UpdateHitPointsOutput is empty on success
type UpdateHitPointsOutput struct{}

// UpdatePersonalityInput defines the roleplay block
type UpdatePersonalityInput struct {
	CharacterID string
	Personality echosheet.Personality
}

// UpdatePersonalityOutput reports that a save is queued
type UpdatePersonalityOutput struct {
	Scheduled bool
}

// LoadInventoryInput seeds the local inventory of a character
type LoadInventoryInput struct {
	CharacterID string
	Inventory   echosheet.Inventory
	// StrengthScore is the total Strength, used for carrying capacity (optional)
	StrengthScore int
}

// GetInventoryInput defines the request for the current inventory
type GetInventoryInput struct {
	CharacterID string
}

// InventoryOutput is shared by the inventory operations
type InventoryOutput struct {
	Inventory echosheet.Inventory
	View      rules.InventoryView
	// Changed is false when the operation left the inventory as it was
	Changed bool
}

// AddItemInput defines an item to carry. An empty Weight uses the default.
type AddItemInput struct {
	CharacterID string
	Name        string
	Weight      string
}

// RemoveItemInput defines an item to drop
type RemoveItemInput struct {
	CharacterID string
	Name        string
}

// SetItemWeightInput defines a weight edit. Unparseable weights are ignored.
type SetItemWeightInput struct {
	CharacterID string
	Name        string
	Weight      string
}

// SetCurrencyInput replaces the coin counts
type SetCurrencyInput struct {
	CharacterID string
	Currency    echosheet.Currency
}

// ApplyEquipmentPackInput names a pack to add
type ApplyEquipmentPackInput struct {
	CharacterID string
	PackName    string
}

// ApplyEquipmentPackOutput carries the merged inventory
type ApplyEquipmentPackOutput struct {
	Inventory  echosheet.Inventory
	View       rules.InventoryView
	ItemsAdded []string
	Result     *echosheet.PackResult
	// Changed is true when the pack added an item or any coins
	Changed bool
}

// FlushInput defines the request for sending pending saves
type FlushInput struct{}

// FlushOutput reports how many saves were sent
type FlushOutput struct {
	Saved int
}
