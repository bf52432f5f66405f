package compendium

import "github.com/fadedpez/dnd5e-api/entities"

// NewWithSource builds a client over a stub dnd5e source
func NewWithSource(source interface {
	GetSpell(key string) (*entities.Spell, error)
}) Client {
	return newWithSource(source)
}
