// Package character implements the character build orchestrator
package character

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	"github.com/KirkDiggler/echosheet/internal/clients/compendium"
	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/clock"
	"github.com/KirkDiggler/echosheet/internal/pkg/idgen"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
	draftrepo "github.com/KirkDiggler/echosheet/internal/repositories/character_draft"
	"github.com/KirkDiggler/echosheet/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	DraftRepo draftrepo.Repository
	Backend   backend.Client
	Engine    *rules.Engine

	// Compendium fills gaps in spell details (optional)
	Compendium compendium.Client
	// Notifier receives user-facing messages (optional, logs by default)
	Notifier notify.Notifier
	// Clock stamps drafts (optional)
	Clock clock.Clock
	// DraftIDs generates draft IDs (optional)
	DraftIDs idgen.Generator
	// RequestIDs generates autofill request tokens (optional)
	RequestIDs idgen.Generator
	// TTL is how long an untouched draft lives (optional, defaults to 24h)
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.Backend == nil {
		vb.RequiredField("Backend")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	draftRepo  draftrepo.Repository
	backend    backend.Client
	engine     *rules.Engine
	compendium compendium.Client
	notifier   notify.Notifier
	clock      clock.Clock
	draftIDs   idgen.Generator
	requestIDs idgen.Generator
	ttl        time.Duration

	locks      *draftLocks
	spellbooks singleflight.Group

	submitMu   sync.Mutex
	submitting map[string]bool
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		draftRepo:  cfg.DraftRepo,
		backend:    cfg.Backend,
		engine:     cfg.Engine,
		compendium: cfg.Compendium,
		notifier:   cfg.Notifier,
		clock:      cfg.Clock,
		draftIDs:   cfg.DraftIDs,
		requestIDs: cfg.RequestIDs,
		ttl:        cfg.TTL,
		locks:      newDraftLocks(),
		submitting: make(map[string]bool),
	}
	if o.notifier == nil {
		o.notifier = notify.Slog{}
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.draftIDs == nil {
		o.draftIDs = idgen.NewUUID("draft")
	}
	if o.requestIDs == nil {
		o.requestIDs = idgen.NewUUID("")
	}
	if o.ttl <= 0 {
		o.ttl = draftrepo.DefaultTTL
	}
	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

func (o *Orchestrator) notify(ctx context.Context, level notify.Level, message string) {
	o.notifier.Notify(ctx, notify.Notification{Level: level, Message: message})
}

// load reads a draft without taking its lock
func (o *Orchestrator) load(ctx context.Context, draftID string) (*echosheet.CharacterDraft, error) {
	if draftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, err
	}
	return out.Draft, nil
}

// mutate applies fn to the stored draft under its lock and saves the result.
// When fn fails nothing is written.
func (o *Orchestrator) mutate(ctx context.Context, draftID string, fn func(d *echosheet.CharacterDraft) error) (*echosheet.CharacterDraft, error) {
	unlock := o.locks.lock(draftID)
	defer unlock()

	draft, err := o.load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	draft.Progress = o.engine.Progress(draft)
	draft.UpdatedAt = now.Unix()
	draft.ExpiresAt = now.Add(o.ttl).Unix()

	out, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save draft")
	}
	return out.Draft, nil
}

// Draft lifecycle methods

// CreateDraft starts a new draft with every ability at 8 and the background
// skills locked in
func (o *Orchestrator) CreateDraft(ctx context.Context, input *character.CreateDraftInput) (*character.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	level := input.Level
	if level == 0 {
		level = echosheet.MinLevel
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateMaxLength("name", input.Name, echosheet.MaxNameLength, vb)
	errors.ValidateRange("level", level, echosheet.MinLevel, echosheet.MaxLevel, vb)
	o.validateChoices(input.Race, input.Class, input.Background, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	draft := &echosheet.CharacterDraft{
		ID:         o.draftIDs.Generate(),
		SessionID:  input.SessionID,
		Name:       input.Name,
		Race:       input.Race,
		Class:      input.Class,
		Level:      level,
		Background: input.Background,
		Attributes: echosheet.NewAttributeSet(),
		Skills:     o.engine.NewSkillSelection(input.Background),
		Spells:     echosheet.SpellSelection{Cantrips: []string{}, Spells: []string{}},
		CreatedAt:  now.Unix(),
		UpdatedAt:  now.Unix(),
		ExpiresAt:  now.Add(o.ttl).Unix(),
	}
	draft.Progress = o.engine.Progress(draft)

	if _, err := o.draftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft}); err != nil {
		return nil, errors.Wrap(err, "failed to create draft")
	}
	slog.Info("created draft", "draft_id", draft.ID, "session_id", draft.SessionID)

	if warning := o.ensureSpellbook(ctx, draft.ID); warning != "" {
		slog.Warn("spellbook not loaded for new draft", "draft_id", draft.ID, "reason", warning)
	}

	out, err := o.load(ctx, draft.ID)
	if err != nil {
		return nil, err
	}
	return &character.CreateDraftOutput{Draft: out}, nil
}

func (o *Orchestrator) validateChoices(race, class, background string, vb *errors.ValidationBuilder) {
	rs := o.engine.Ruleset()
	if race != "" {
		errors.ValidateEnum("race", race, rs.RaceNames(), vb)
	}
	if class != "" {
		errors.ValidateEnum("char_class", class, rs.ClassNames(), vb)
	}
	if background != "" {
		errors.ValidateEnum("background", background, rs.BackgroundNames(), vb)
	}
}

// GetDraft retrieves a character draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *character.GetDraftInput) (*character.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := o.load(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	return &character.GetDraftOutput{Draft: draft}, nil
}

// ListDrafts returns the live drafts of a session, oldest first
func (o *Orchestrator) ListDrafts(ctx context.Context, input *character.ListDraftsInput) (*character.ListDraftsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	out, err := o.draftRepo.ListBySession(ctx, draftrepo.ListBySessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drafts")
	}
	return &character.ListDraftsOutput{Drafts: out.Drafts}, nil
}

// DeleteDraft removes a draft
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *character.DeleteDraftInput) (*character.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	unlock := o.locks.lock(input.DraftID)
	defer unlock()

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, err
	}
	return &character.DeleteDraftOutput{Message: "Draft deleted"}, nil
}
