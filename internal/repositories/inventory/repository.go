// Package inventory stores the carried items and coins of saved characters
package inventory

import (
	"context"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

const errCharacterIDEmpty = "character ID cannot be empty"

// Repository defines the interface for inventory persistence
type Repository interface {
	// Get retrieves the inventory of a character
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.NotFound if no inventory is stored
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the inventory of a character, creating it if needed
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes the inventory of a character
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.NotFound if no inventory is stored
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting an inventory
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting an inventory
type GetOutput struct {
	Inventory echosheet.Inventory
}

// UpdateInput defines the input for updating an inventory
type UpdateInput struct {
	CharacterID string
	Inventory   echosheet.Inventory
}

// UpdateOutput defines the output for updating an inventory
type UpdateOutput struct {
	Inventory echosheet.Inventory
}

// DeleteInput defines the input for deleting an inventory
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for deleting an inventory
type DeleteOutput struct{}
