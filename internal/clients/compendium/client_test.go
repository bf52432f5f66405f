package compendium_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/echosheet/internal/clients/compendium"
	compendiummock "github.com/KirkDiggler/echosheet/internal/clients/compendium/mock"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	apperrors "github.com/KirkDiggler/echosheet/internal/errors"
)

type mockSpellSource struct {
	mock.Mock
}

func (m *mockSpellSource) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	spell, _ := args.Get(0).(*entities.Spell)
	return spell, args.Error(1)
}

type ClientTestSuite struct {
	suite.Suite
	source *mockSpellSource
	client compendium.Client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.source = &mockSpellSource{}
	s.client = compendium.NewWithSource(s.source)
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.source.AssertExpectations(s.T())
}

func (s *ClientTestSuite) TestSlug() {
	s.Assert().Equal("cure-wounds", compendium.Slug("Cure Wounds"))
	s.Assert().Equal("tashas-hideous-laughter", compendium.Slug("Tasha's  Hideous Laughter"))
	s.Assert().Equal("melfs-acid-arrow", compendium.Slug("Melf’s Acid Arrow"))
	s.Assert().Equal("leomunds-tiny-hut", compendium.Slug("Leomund's Tiny Hut"))
	s.Assert().Equal("", compendium.Slug("   "))
}

func (s *ClientTestSuite) TestGetSpell() {
	s.source.On("GetSpell", "shield").Return(&entities.Spell{
		Key:           "shield",
		Name:          "Shield",
		SpellLevel:    1,
		CastingTime:   "1 reaction",
		Range:         "Self",
		Duration:      "1 round",
		Concentration: false,
	}, nil)

	spell, err := s.client.GetSpell(s.ctx, "Shield")
	s.Require().NoError(err)
	s.Assert().Equal("Shield", spell.Name)
	s.Assert().Equal(1, spell.Level)
	s.Assert().Equal("1 reaction", spell.CastingTime)
	s.Assert().Equal(compendium.SourceSRD, spell.Source)
	s.Assert().Contains(spell.Description, "Range: Self")
}

func (s *ClientTestSuite) TestGetSpellFlags() {
	s.source.On("GetSpell", "detect-magic").Return(&entities.Spell{
		Name:          "Detect Magic",
		SpellLevel:    1,
		Ritual:        true,
		Concentration: true,
	}, nil)

	spell, err := s.client.GetSpell(s.ctx, "Detect Magic")
	s.Require().NoError(err)
	s.Assert().Equal("Ritual, Concentration", spell.Components)
}

func (s *ClientTestSuite) TestGetSpellNotFound() {
	s.source.On("GetSpell", "wish-lite").Return(nil, errors.New("404"))

	_, err := s.client.GetSpell(s.ctx, "Wish Lite")
	s.Require().Error(err)
	s.Assert().True(apperrors.IsNotFound(err))
}

func (s *ClientTestSuite) TestGetSpellEmptyName() {
	_, err := s.client.GetSpell(s.ctx, " ")
	s.Assert().True(apperrors.IsInvalidArgument(err))
}

func TestEnrich(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := compendiummock.NewMockClient(ctrl)
	ctx := context.Background()

	t.Run("fills only empty fields", func(t *testing.T) {
		client.EXPECT().GetSpell(ctx, "Shield").Return(&echosheet.Spell{
			Name:        "Shield",
			School:      "Abjuration",
			CastingTime: "1 reaction",
			Range:       "Self",
			Duration:    "1 round",
			Description: "SRD text",
			Source:      compendium.SourceSRD,
		}, nil)

		got := compendium.Enrich(ctx, client, echosheet.Spell{Name: "Shield", Range: "Personal"})
		if got.Range != "Personal" || got.School != "Abjuration" || got.Description != "SRD text" {
			t.Fatalf("unexpected enrichment: %+v", got)
		}
		if got.Source != compendium.SourceSRD {
			t.Fatalf("source = %q", got.Source)
		}
	})

	t.Run("complete spells skip the lookup", func(t *testing.T) {
		spell := echosheet.Spell{
			Name: "Light", School: "Evocation", CastingTime: "1 action",
			Range: "Touch", Duration: "1 hour", Description: "Glow",
		}
		if got := compendium.Enrich(ctx, client, spell); got != spell {
			t.Fatalf("complete spell changed: %+v", got)
		}
	})

	t.Run("lookup errors keep the original", func(t *testing.T) {
		client.EXPECT().GetSpell(ctx, "Homebrew").Return(nil, apperrors.NotFound("nope"))
		spell := echosheet.Spell{Name: "Homebrew"}
		if got := compendium.Enrich(ctx, client, spell); got != spell {
			t.Fatalf("spell changed on error: %+v", got)
		}
	})

	t.Run("nil client", func(t *testing.T) {
		spell := echosheet.Spell{Name: "Light"}
		if got := compendium.Enrich(ctx, nil, spell); got != spell {
			t.Fatalf("spell changed: %+v", got)
		}
	})
}
