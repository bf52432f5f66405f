// Package sheet implements the character sheet orchestrator
package sheet

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/debounce"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
	"github.com/KirkDiggler/echosheet/internal/services/sheet"
)

// Redirect after a character is deleted
const (
	DeleteRedirect      = "/"
	DeleteRedirectDelay = 1500 * time.Millisecond
)

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	Backend backend.Client
	Engine  *rules.Engine

	// Notifier receives user-facing messages (optional, logs by default)
	Notifier notify.Notifier
	// AutosaveDelay is the quiet period before an edit is saved (optional, defaults to 1s)
	AutosaveDelay time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Backend == nil {
		vb.RequiredField("Backend")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type characterState struct {
	inventory echosheet.Inventory
	strength  int
}

// Orchestrator implements the sheet.Service interface
type Orchestrator struct {
	backend   backend.Client
	engine    *rules.Engine
	notifier  notify.Notifier
	debouncer *debounce.Debouncer

	mu         sync.Mutex
	characters map[string]*characterState
}

// New creates a new sheet orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		backend:    cfg.Backend,
		engine:     cfg.Engine,
		notifier:   cfg.Notifier,
		characters: make(map[string]*characterState),
	}
	if o.notifier == nil {
		o.notifier = notify.Slog{}
	}
	o.debouncer = debounce.New(&debounce.Config{
		Delay: cfg.AutosaveDelay,
		OnError: func(key string, err error) {
			slog.Error("auto-save failed", "key", key, "error", err)
			o.notify(context.Background(), notify.LevelError, "Failed to save changes: "+errors.GetMessage(err))
		},
	})
	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ sheet.Service = (*Orchestrator)(nil)

// Close drops pending saves without sending them. Call Flush first to keep them.
func (o *Orchestrator) Close() {
	o.debouncer.Stop()
}

func (o *Orchestrator) notify(ctx context.Context, level notify.Level, message string) {
	o.notifier.Notify(ctx, notify.Notification{Level: level, Message: message})
}

// ResolveCharacterID accepts a bare ID or anything containing "/character/{id}"
func ResolveCharacterID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if id, ok := echosheet.ParseCharacterPath(ref); ok {
		return id, nil
	}
	if ref == "" || strings.ContainsAny(ref, "/?#") {
		return "", errors.InvalidArgumentf("cannot find a character ID in %q", ref)
	}
	return ref, nil
}

func requireID(id string) error {
	if id == "" {
		return errors.InvalidArgument("character ID is required")
	}
	return nil
}

// Chat sends a message to the character and returns the reply
func (o *Orchestrator) Chat(ctx context.Context, input *sheet.ChatInput) (*sheet.ChatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, errors.InvalidArgument("message is required")
	}

	response, err := o.backend.Chat(ctx, input.CharacterID, message)
	if err != nil {
		return nil, err
	}
	return &sheet.ChatOutput{Response: response}, nil
}

// DeleteCharacter removes the character on the backend. Pending saves for it
// are dropped.
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *sheet.DeleteCharacterInput) (*sheet.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}

	message, err := o.backend.DeleteCharacter(ctx, input.CharacterID)
	if err != nil {
		o.notify(ctx, notify.LevelError, "Error deleting character: "+errors.GetMessage(err))
		return nil, err
	}
	if message == "" {
		message = "Character deleted successfully"
	}

	o.debouncer.Cancel(personalityKey(input.CharacterID))
	o.debouncer.Cancel(inventoryKey(input.CharacterID))
	o.mu.Lock()
	delete(o.characters, input.CharacterID)
	o.mu.Unlock()

	o.notify(ctx, notify.LevelSuccess, message)
	return &sheet.DeleteCharacterOutput{
		Message:       message,
		Redirect:      DeleteRedirect,
		RedirectAfter: DeleteRedirectDelay,
	}, nil
}

// LevelUp asks the backend to level the character. A character known to be at
// the maximum level, or short of the experience for the next one, is refused
// without a request.
func (o *Orchestrator) LevelUp(ctx context.Context, input *sheet.LevelUpInput) (*sheet.LevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}

	if input.Level > 0 {
		if input.Level >= echosheet.MaxLevel {
			return nil, errors.OutOfRangef("character is already at the maximum level of %d", echosheet.MaxLevel)
		}
		if input.ExperiencePoints != nil {
			if err := o.engine.CanLevelUp(input.Level, *input.ExperiencePoints); err != nil {
				return nil, err
			}
		}
	}

	result, err := o.backend.LevelUp(ctx, input.CharacterID)
	if err != nil {
		o.notify(ctx, notify.LevelError, errors.GetMessage(err))
		return nil, err
	}
	slog.Info("character levelled up", "character_id", input.CharacterID, "level", result.NewLevel)

	message := result.Message
	if message == "" {
		message = "Level up successful!"
	}
	o.notify(ctx, notify.LevelSuccess, message)
	return &sheet.LevelUpOutput{NewLevel: result.NewLevel, Message: message}, nil
}

// UpdateBasicInfo saves alignment and experience and reports the level the
// experience reaches
func (o *Orchestrator) UpdateBasicInfo(ctx context.Context, input *sheet.UpdateBasicInfoInput) (*sheet.UpdateBasicInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	if input.Info.Alignment != "" {
		errors.ValidateEnum("alignment", input.Info.Alignment, o.engine.Ruleset().Alignments, vb)
	}
	if input.Info.ExperiencePoints < 0 {
		vb.Field("experience_points", "experience cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	info := input.Info
	if err := o.backend.UpdateBasicInfo(ctx, input.CharacterID, &info); err != nil {
		o.notify(ctx, notify.LevelError, "Failed to save basic info: "+errors.GetMessage(err))
		return nil, err
	}

	level := o.engine.LevelForXP(info.ExperiencePoints)
	next, ok := o.engine.NextLevelXP(level)
	return &sheet.UpdateBasicInfoOutput{
		Level:            level,
		NextLevelXP:      next,
		AtMaxLevel:       !ok,
		ProficiencyBonus: rules.ProficiencyBonus(level),
	}, nil
}

// UpdatePhysicalInfo saves the appearance block
func (o *Orchestrator) UpdatePhysicalInfo(ctx context.Context, input *sheet.UpdatePhysicalInfoInput) (*sheet.UpdatePhysicalInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}

	info := input.Info
	if err := o.backend.UpdatePhysicalInfo(ctx, input.CharacterID, &info); err != nil {
		o.notify(ctx, notify.LevelError, "Failed to save physical info: "+errors.GetMessage(err))
		return nil, err
	}
	return &sheet.UpdatePhysicalInfoOutput{}, nil
}

// UpdateHitPoints saves the hit point block; negative values are rejected
func (o *Orchestrator) UpdateHitPoints(ctx context.Context, input *sheet.UpdateHitPointsInput) (*sheet.UpdateHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}

	hp := input.HitPoints
	vb := errors.NewValidationBuilder()
	if hp.Maximum < 0 {
		vb.Field("hit_point_maximum", "cannot be negative")
	}
	if hp.Current < 0 {
		vb.Field("current_hit_points", "cannot be negative")
	}
	if hp.Temporary < 0 {
		vb.Field("temporary_hit_points", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.backend.UpdateHitPoints(ctx, input.CharacterID, &hp); err != nil {
		o.notify(ctx, notify.LevelError, "Failed to save hit points: "+errors.GetMessage(err))
		return nil, err
	}
	return &sheet.UpdateHitPointsOutput{}, nil
}

// UpdatePersonality queues a save of the roleplay block. A later edit within
// the autosave delay replaces this one.
func (o *Orchestrator) UpdatePersonality(_ context.Context, input *sheet.UpdatePersonalityInput) (*sheet.UpdatePersonalityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}

	id := input.CharacterID
	p := input.Personality
	p.PersonalityTags = append([]string(nil), input.Personality.PersonalityTags...)
	o.debouncer.Schedule(personalityKey(id), func(ctx context.Context) error {
		return o.backend.UpdatePersonality(ctx, id, &p)
	})
	return &sheet.UpdatePersonalityOutput{Scheduled: true}, nil
}

// Flush sends every pending save concurrently and reports the first failure
func (o *Orchestrator) Flush(ctx context.Context, _ *sheet.FlushInput) (*sheet.FlushOutput, error) {
	pending := o.debouncer.Pending()
	if err := o.debouncer.Flush(ctx); err != nil {
		o.notify(ctx, notify.LevelError, "Failed to save changes: "+errors.GetMessage(err))
		return nil, err
	}
	return &sheet.FlushOutput{Saved: pending}, nil
}

func personalityKey(id string) string {
	return "personality:" + id
}

func inventoryKey(id string) string {
	return "inventory:" + id
}
