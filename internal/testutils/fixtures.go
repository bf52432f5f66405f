package testutils

import (
	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

// Draft progress stages for testing
const (
	StageNameComplete     = "name_complete"
	StageIdentityComplete = "identity_complete"
	StageNearlyComplete   = "nearly_complete"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"
)

// CreateTestCharacterDraft creates a test character draft with sensible defaults
func CreateTestCharacterDraft(sessionID string) *echosheet.CharacterDraft {
	return &echosheet.CharacterDraft{
		ID:         "draft-test-001",
		SessionID:  sessionID,
		Level:      1,
		Attributes: echosheet.NewAttributeSet(),
	}
}

// CreateTestCharacterDraftWithProgress creates a test draft at various stages of completion
func CreateTestCharacterDraftWithProgress(sessionID string, stage string) *echosheet.CharacterDraft {
	draft := CreateTestCharacterDraft(sessionID)

	switch stage {
	case StageNameComplete:
		draft.Name = TestCharacterName
		draft.Progress.SetStep(echosheet.ProgressStepName, true)

	case StageIdentityComplete:
		draft.Name = TestCharacterName
		draft.Race = "Dwarf"
		draft.Class = "Fighter"
		draft.Background = "Soldier"
		draft.Skills.Background = []string{"Athletics", "Intimidation"}
		draft.Progress.SetStep(echosheet.ProgressStepName, true)
		draft.Progress.SetStep(echosheet.ProgressStepRace, true)
		draft.Progress.SetStep(echosheet.ProgressStepClass, true)
		draft.Progress.SetStep(echosheet.ProgressStepBackground, true)

	case StageNearlyComplete:
		draft.Name = TestCharacterName
		draft.Race = "Dwarf"
		draft.Class = "Fighter"
		draft.Background = "Soldier"
		draft.Skills.Background = []string{"Athletics", "Intimidation"}
		draft.Attributes = echosheet.AttributeSet{
			echosheet.AbilityStrength: 15, echosheet.AbilityDexterity: 14, echosheet.AbilityConstitution: 14,
			echosheet.AbilityIntelligence: 8, echosheet.AbilityWisdom: 10, echosheet.AbilityCharisma: 10,
		}
		draft.Progress.SetStep(echosheet.ProgressStepName, true)
		draft.Progress.SetStep(echosheet.ProgressStepRace, true)
		draft.Progress.SetStep(echosheet.ProgressStepClass, true)
		draft.Progress.SetStep(echosheet.ProgressStepBackground, true)
		draft.Progress.SetStep(echosheet.ProgressStepAttributes, true)
	}

	return draft
}

// CreateTestAutofillResponse is a fighter suggestion as the backend sends it
func CreateTestAutofillResponse() *backend.AutofillResponse {
	return &backend.AutofillResponse{
		Attributes:          map[string]int{"STR": 15, "DEX": 14, "CON": 14, "INT": 8, "WIS": 10, "CHA": 10},
		Skills:              []string{"Athletics", "Intimidation", "Perception", "Survival"},
		Spells:              []string{},
		AvailablePlaystyles: []string{"tank", "archer", "duelist"},
		CurrentPlaystyle:    "tank",
	}
}

// CreateTestInventory is a small carried inventory with coins
func CreateTestInventory() echosheet.Inventory {
	return echosheet.Inventory{
		Items: []echosheet.InventoryItem{
			{Name: "Longsword", Weight: 3},
			{Name: "Rope, hempen (50 feet)", Weight: 10},
		},
		Currency: echosheet.Currency{GP: 15, SP: 4},
	}
}
