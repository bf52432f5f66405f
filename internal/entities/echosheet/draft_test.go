package echosheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

func TestParseAbility(t *testing.T) {
	testCases := []struct {
		in   string
		want echosheet.Ability
		ok   bool
	}{
		{in: "STR", want: echosheet.AbilityStrength, ok: true},
		{in: "dex", want: echosheet.AbilityDexterity, ok: true},
		{in: "Wisdom", want: echosheet.AbilityWisdom, ok: true},
		{in: " charisma ", want: echosheet.AbilityCharisma, ok: true},
		{in: "luck", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := echosheet.ParseAbility(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAttributeSet(t *testing.T) {
	attrs := echosheet.NewAttributeSet()
	require.Len(t, attrs, 6)

	clone := attrs.Clone()
	clone[echosheet.AbilityStrength] = 15
	assert.Equal(t, 8, attrs.Base(echosheet.AbilityStrength))
	assert.Equal(t, 8, echosheet.AttributeSet{}.Base(echosheet.AbilityWisdom))
}

func TestCreationProgress(t *testing.T) {
	var p echosheet.CreationProgress
	p.SetStep(echosheet.ProgressStepName, true)
	p.SetStep(echosheet.ProgressStepRace, true)
	assert.True(t, p.HasStep(echosheet.ProgressStepRace))
	assert.Equal(t, 28, p.CompletionPercentage)

	p.SetStep(echosheet.ProgressStepRace, false)
	assert.False(t, p.HasStep(echosheet.ProgressStepRace))
	assert.Equal(t, 14, p.CompletionPercentage)

	for _, step := range []uint8{
		echosheet.ProgressStepName, echosheet.ProgressStepRace, echosheet.ProgressStepClass,
		echosheet.ProgressStepBackground, echosheet.ProgressStepAttributes,
		echosheet.ProgressStepSkills, echosheet.ProgressStepSpells,
	} {
		p.SetStep(step, true)
	}
	assert.True(t, p.Complete())
	assert.Equal(t, 100, p.CompletionPercentage)
}

func TestDraftEntity(t *testing.T) {
	entity := echosheet.AsEntity(&echosheet.CharacterDraft{ID: "draft-1"})
	assert.Equal(t, "draft-1", entity.GetID())
	assert.Equal(t, echosheet.EntityTypeCharacterDraft, entity.GetType())
}

func TestInventoryHelpers(t *testing.T) {
	inv := echosheet.Inventory{Items: []echosheet.InventoryItem{{Name: "Rope", Weight: 10}}}
	assert.Equal(t, 0, inv.Find("rope"))
	assert.Equal(t, -1, inv.Find("Torch"))

	clone := inv.Clone()
	clone.Items[0].Weight = 1
	assert.Equal(t, 10.0, inv.Items[0].Weight)
	assert.Equal(t, map[string]float64{"Rope": 10}, inv.ItemWeights())
}

func TestCharacterPath(t *testing.T) {
	assert.Equal(t, "/character/42", echosheet.CharacterPath("42"))

	testCases := []struct {
		path string
		id   string
		ok   bool
	}{
		{path: "/character/42", id: "42", ok: true},
		{path: "http://localhost:5000/character/abc?tab=inventory", id: "abc", ok: true},
		{path: "/character/7/chat", id: "7", ok: true},
		{path: "/character/", ok: false},
		{path: "/drafts/42", ok: false},
	}
	for _, tc := range testCases {
		id, ok := echosheet.ParseCharacterPath(tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.id, id, tc.path)
	}
}
