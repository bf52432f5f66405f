// Package characterdraft defines the interface for character draft persistence
package characterdraft

//go:generate mockgen -destination=mock/mock_repository.go -package=characterdraftmock github.com/KirkDiggler/echosheet/internal/repositories/character_draft Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

// DefaultTTL is how long an untouched draft survives
const DefaultTTL = 24 * time.Hour

const (
	errDraftNil       = "draft cannot be nil"
	errDraftIDEmpty   = "draft ID cannot be empty"
	errSessionIDEmpty = "session ID cannot be empty"
	errDraftExpired   = "draft has already expired"
)

// Repository defines the interface for character draft persistence.
// A session may own several drafts.
type Repository interface {
	// Create stores a new draft
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a draft with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character draft by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if draft doesn't exist or has expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing draft and refreshes its TTL
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if draft doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a character draft by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if draft doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListBySession returns the live drafts of a session, oldest first
	// Returns errors.InvalidArgument for empty session IDs
	// Returns errors.Internal for storage failures
	ListBySession(ctx context.Context, input ListBySessionInput) (*ListBySessionOutput, error)
}

// CreateInput defines the input for creating a character draft
type CreateInput struct {
	Draft *echosheet.CharacterDraft
}

// CreateOutput defines the output for creating a character draft
type CreateOutput struct {
	Draft *echosheet.CharacterDraft
}

// GetInput defines the input for getting a character draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character draft
type GetOutput struct {
	Draft *echosheet.CharacterDraft
}

// UpdateInput defines the input for updating a character draft
type UpdateInput struct {
	Draft *echosheet.CharacterDraft
}

// UpdateOutput defines the output for updating a character draft
type UpdateOutput struct {
	Draft *echosheet.CharacterDraft
}

// DeleteInput defines the input for deleting a character draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character draft
type DeleteOutput struct{}

// ListBySessionInput defines the input for listing a session's drafts
type ListBySessionInput struct {
	SessionID string
}

// ListBySessionOutput defines the output for listing a session's drafts
type ListBySessionOutput struct {
	Drafts []*echosheet.CharacterDraft
}
