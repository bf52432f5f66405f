// Package compendium looks up SRD spell details through the dnd5e-api client
package compendium

//go:generate mockgen -destination=mock/mock_client.go -package=compendiummock github.com/KirkDiggler/echosheet/internal/clients/compendium Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

// SourceSRD marks spell details that came from the compendium
const SourceSRD = "SRD"

var (
	apostrophePattern = regexp.MustCompile(`['’]`)
	slugPattern       = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenPattern     = regexp.MustCompile(`-+`)
)

// Slug converts a display name into a dnd5e-api index, "Cure Wounds" -> "cure-wounds"
func Slug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = apostrophePattern.ReplaceAllString(slug, "")
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = hyphenPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Client fetches reference data that the backend may leave incomplete
type Client interface {
	// GetSpell returns SRD details for a spell by display name.
	// Returns errors.NotFound when the compendium has no such spell.
	GetSpell(ctx context.Context, name string) (*echosheet.Spell, error)
}

// spellSource is the part of dnd5e.Interface this package needs
type spellSource interface {
	GetSpell(key string) (*entities.Spell, error)
}

// Config contains configuration options for the compendium client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate sets defaults for unset fields.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("compendium durations must not be negative")
	}
	return nil
}

type client struct {
	source spellSource
}

// New creates a cached compendium client.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{source: dnd5e.NewCachedClient(base, cfg.CacheTTL)}, nil
}

func newWithSource(source spellSource) Client {
	return &client{source: source}
}

func (c *client) GetSpell(_ context.Context, name string) (*echosheet.Spell, error) {
	key := Slug(name)
	if key == "" {
		return nil, errors.InvalidArgument("spell name is required")
	}

	spell, err := c.source.GetSpell(key)
	if err != nil {
		slog.Debug("compendium spell lookup failed", "spell", name, "key", key, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, fmt.Sprintf("spell %q not found in compendium", name))
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %q not found in compendium", name)
	}

	return convertSpell(spell), nil
}

func convertSpell(spell *entities.Spell) *echosheet.Spell {
	out := &echosheet.Spell{
		Name:        spell.Name,
		Level:       int(spell.SpellLevel),
		CastingTime: spell.CastingTime,
		Range:       spell.Range,
		Duration:    spell.Duration,
		Source:      SourceSRD,
	}
	if spell.SpellSchool != nil {
		out.School = spell.SpellSchool.Name
	}

	// dnd5e-api does not expose V/S/M, only these flags
	var props []string
	if spell.Ritual {
		props = append(props, "Ritual")
	}
	if spell.Concentration {
		props = append(props, "Concentration")
	}
	out.Components = strings.Join(props, ", ")
	out.Description = describe(out)
	return out
}

func describe(s *echosheet.Spell) string {
	var header string
	switch {
	case s.Level == 0 && s.School != "":
		header = fmt.Sprintf("%s cantrip", s.School)
	case s.Level == 0:
		header = "Cantrip"
	case s.School != "":
		header = fmt.Sprintf("Level %d %s", s.Level, strings.ToLower(s.School))
	default:
		header = fmt.Sprintf("Level %d spell", s.Level)
	}

	parts := []string{header}
	if s.CastingTime != "" {
		parts = append(parts, "Casting Time: "+s.CastingTime)
	}
	if s.Range != "" {
		parts = append(parts, "Range: "+s.Range)
	}
	if s.Duration != "" {
		parts = append(parts, "Duration: "+s.Duration)
	}
	return strings.Join(parts, ". ")
}

// Enrich fills empty display fields of spell from the compendium. The backend
// payload always wins where it has a value.
func Enrich(ctx context.Context, c Client, spell echosheet.Spell) echosheet.Spell {
	if c == nil || complete(spell) {
		return spell
	}

	ref, err := c.GetSpell(ctx, spell.Name)
	if err != nil {
		slog.Debug("spell enrichment skipped", "spell", spell.Name, "error", err)
		return spell
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&spell.School, ref.School)
	fill(&spell.CastingTime, ref.CastingTime)
	fill(&spell.Range, ref.Range)
	fill(&spell.Components, ref.Components)
	fill(&spell.Duration, ref.Duration)
	fill(&spell.Description, ref.Description)
	if spell.Source == "" {
		spell.Source = ref.Source
	}
	return spell
}

func complete(s echosheet.Spell) bool {
	return s.School != "" && s.CastingTime != "" && s.Range != "" &&
		s.Duration != "" && s.Description != ""
}
