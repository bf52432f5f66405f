package echosheet

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types
const (
	EntityTypeCharacterDraft = "character_draft"
)

// DraftEntity adapts a CharacterDraft to the toolkit entity contract
type DraftEntity struct {
	*CharacterDraft
}

// GetID returns the draft ID
func (e *DraftEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type
func (e *DraftEntity) GetType() string {
	return EntityTypeCharacterDraft
}

// AsEntity wraps a draft for code that works on toolkit entities
func AsEntity(d *CharacterDraft) core.Entity {
	return &DraftEntity{CharacterDraft: d}
}

var _ core.Entity = (*DraftEntity)(nil)
