// Package backend is the HTTP/JSON client for the EchoSheet web application
package backend

//go:generate mockgen -destination=mock/mock_client.go -package=backendmock github.com/KirkDiggler/echosheet/internal/clients/backend Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

const maxResponseBytes = 4 << 20

// Client defines every backend call the build and sheet flows make.
// Transport failures return errors.Unavailable (or DeadlineExceeded),
// HTTP error statuses map to the matching code, and {"success": false}
// returns errors.FailedPrecondition carrying the server message.
type Client interface {
	// Autofill asks the backend to generate attributes, skills and spells
	Autofill(ctx context.Context, input *AutofillRequest) (*AutofillResponse, error)

	// CreateCharacter stores a finished draft and returns the new character ID
	CreateCharacter(ctx context.Context, input *CreateCharacterRequest) (*CreateCharacterResponse, error)

	// GetSpellbook returns the rules and spell options for a class
	GetSpellbook(ctx context.Context, class string) (*echosheet.Spellbook, error)

	// ValidateSpells returns the backend verdict on a selection
	ValidateSpells(ctx context.Context, input *ValidateSpellsRequest) (*echosheet.SpellValidation, error)

	// SuggestSpells returns a recommended selection for a class
	SuggestSpells(ctx context.Context, class string) (*echosheet.SpellSelection, error)

	// ListPlaystyles returns the generation profiles of a class, sorted by name
	ListPlaystyles(ctx context.Context, class string) ([]echosheet.Playstyle, error)

	// GetSpell returns details for a single spell
	GetSpell(ctx context.Context, name string) (*echosheet.Spell, error)

	// Chat sends a message to a character and returns its reply
	Chat(ctx context.Context, characterID, message string) (string, error)

	// DeleteCharacter removes a character and returns the server message
	DeleteCharacter(ctx context.Context, characterID string) (string, error)

	UpdatePersonality(ctx context.Context, characterID string, p *echosheet.Personality) error
	UpdateInventory(ctx context.Context, characterID string, inv *echosheet.Inventory) error
	ApplyPack(ctx context.Context, characterID, packName string) (*echosheet.PackResult, error)
	UpdateBasicInfo(ctx context.Context, characterID string, info *echosheet.BasicInfo) error
	UpdatePhysicalInfo(ctx context.Context, characterID string, info *echosheet.PhysicalInfo) error
	UpdateHitPoints(ctx context.Context, characterID string, hp *echosheet.HitPoints) error
	LevelUp(ctx context.Context, characterID string) (*echosheet.LevelUpResult, error)
}

// Config contains configuration options for the backend client.
type Config struct {
	// BaseURL of the EchoSheet server, e.g. http://localhost:5000 (required)
	BaseURL string
	// HTTPTimeout per request (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client (optional)
	HTTPClient *http.Client
}

// Validate checks the config and sets defaults.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("base_url", cfg.BaseURL, vb)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			vb.Fieldf("base_url", "invalid URL %q", cfg.BaseURL)
		}
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("http_timeout", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a backend client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *client) Autofill(ctx context.Context, input *AutofillRequest) (*AutofillResponse, error) {
	if input == nil {
		return nil, errors.InvalidArgument("autofill request is required")
	}
	var out AutofillResponse
	if err := c.do(ctx, http.MethodPost, "/api/autofill", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) CreateCharacter(ctx context.Context, input *CreateCharacterRequest) (*CreateCharacterResponse, error) {
	if input == nil {
		return nil, errors.InvalidArgument("create request is required")
	}
	var out createResponse
	if err := c.do(ctx, http.MethodPost, "/create", input, &out); err != nil {
		return nil, err
	}
	if out.CharacterID == "" {
		return nil, errors.Internal("backend did not return a character id")
	}
	return &CreateCharacterResponse{CharacterID: string(out.CharacterID)}, nil
}

func (c *client) GetSpellbook(ctx context.Context, class string) (*echosheet.Spellbook, error) {
	if class == "" {
		return nil, errors.InvalidArgument("class is required")
	}
	var out spellbookResponse
	if err := c.do(ctx, http.MethodGet, "/api/spells/"+url.PathEscape(class), nil, &out); err != nil {
		return nil, err
	}
	return &echosheet.Spellbook{
		Class:    class,
		Rules:    out.Rules,
		Cantrips: toSpells(out.Cantrips),
		Spells:   toSpells(out.Spells),
	}, nil
}

func (c *client) ValidateSpells(ctx context.Context, input *ValidateSpellsRequest) (*echosheet.SpellValidation, error) {
	if input == nil || input.Class == "" {
		return nil, errors.InvalidArgument("class is required")
	}
	var out validationResponse
	if err := c.do(ctx, http.MethodPost, "/api/spells/validate", input, &out); err != nil {
		return nil, err
	}
	return &out.Validation, nil
}

func (c *client) SuggestSpells(ctx context.Context, class string) (*echosheet.SpellSelection, error) {
	if class == "" {
		return nil, errors.InvalidArgument("class is required")
	}
	var out suggestionsResponse
	if err := c.do(ctx, http.MethodGet, "/api/spells/suggestions/"+url.PathEscape(class), nil, &out); err != nil {
		return nil, err
	}
	return &out.Suggestions, nil
}

func (c *client) ListPlaystyles(ctx context.Context, class string) ([]echosheet.Playstyle, error) {
	if class == "" {
		return nil, errors.InvalidArgument("class is required")
	}
	var out playstylesResponse
	if err := c.do(ctx, http.MethodGet, "/api/playstyles/"+url.PathEscape(class), nil, &out); err != nil {
		return nil, err
	}
	return out.toPlaystyles(), nil
}

func (c *client) GetSpell(ctx context.Context, name string) (*echosheet.Spell, error) {
	if name == "" {
		return nil, errors.InvalidArgument("spell name is required")
	}
	var out spellResponse
	if err := c.do(ctx, http.MethodGet, "/api/spell/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	spell := out.Spell.toSpell()
	return &spell, nil
}

func (c *client) Chat(ctx context.Context, characterID, message string) (string, error) {
	path, err := characterPath("/character/", characterID, "/chat")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(message) == "" {
		return "", errors.InvalidArgument("message is required")
	}
	var out chatResponse
	if err := c.do(ctx, http.MethodPost, path, chatRequest{Message: message}, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (c *client) DeleteCharacter(ctx context.Context, characterID string) (string, error) {
	path, err := characterPath("/character/", characterID, "/delete")
	if err != nil {
		return "", err
	}
	var out deleteResponse
	if err := c.do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *client) UpdatePersonality(ctx context.Context, characterID string, p *echosheet.Personality) error {
	if p == nil {
		return errors.InvalidArgument("personality is required")
	}
	return c.post(ctx, characterID, "/personality", p, nil)
}

func (c *client) UpdateInventory(ctx context.Context, characterID string, inv *echosheet.Inventory) error {
	if inv == nil {
		return errors.InvalidArgument("inventory is required")
	}
	body := inventoryRequest{
		Currency:    inv.Currency.ToMap(),
		Items:       inv.ItemNames(),
		ItemWeights: inv.ItemWeights(),
	}
	return c.post(ctx, characterID, "/inventory", body, nil)
}

func (c *client) ApplyPack(ctx context.Context, characterID, packName string) (*echosheet.PackResult, error) {
	if packName == "" {
		return nil, errors.InvalidArgument("pack name is required")
	}
	var out echosheet.PackResult
	if err := c.post(ctx, characterID, "/apply-pack", applyPackRequest{PackName: packName}, &out); err != nil {
		return nil, err
	}
	if out.PackName == "" {
		out.PackName = packName
	}
	return &out, nil
}

func (c *client) UpdateBasicInfo(ctx context.Context, characterID string, info *echosheet.BasicInfo) error {
	if info == nil {
		return errors.InvalidArgument("basic info is required")
	}
	return c.post(ctx, characterID, "/basic-info", info, nil)
}

func (c *client) UpdatePhysicalInfo(ctx context.Context, characterID string, info *echosheet.PhysicalInfo) error {
	if info == nil {
		return errors.InvalidArgument("physical info is required")
	}
	return c.post(ctx, characterID, "/physical-info", info, nil)
}

func (c *client) UpdateHitPoints(ctx context.Context, characterID string, hp *echosheet.HitPoints) error {
	if hp == nil {
		return errors.InvalidArgument("hit points are required")
	}
	return c.post(ctx, characterID, "/hit-points", hp, nil)
}

func (c *client) LevelUp(ctx context.Context, characterID string) (*echosheet.LevelUpResult, error) {
	var out echosheet.LevelUpResult
	if err := c.post(ctx, characterID, "/level-up", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post targets /api/character/{id}{suffix}
func (c *client) post(ctx context.Context, characterID, suffix string, body, out any) error {
	path, err := characterPath("/api/character/", characterID, suffix)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, out)
}

func characterPath(prefix, characterID, suffix string) (string, error) {
	if strings.TrimSpace(characterID) == "" {
		return "", errors.InvalidArgument("character ID is required")
	}
	return prefix + url.PathEscape(characterID) + suffix, nil
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	op := fmt.Sprintf("%s %s", method, path)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s request", path)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s request", path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("backend request failed", "op", op, "error", err)
		return errors.FromTransport(err, op)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.FromTransport(err, op)
	}

	slog.Debug("backend request",
		"op", op,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	var env envelope
	decodeErr := json.Unmarshal(data, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.FromResponse(resp.StatusCode, env.Error)
	}
	if decodeErr != nil {
		return errors.WrapWithCode(decodeErr, errors.CodeInternal, fmt.Sprintf("invalid response from %s", op))
	}
	if env.Success != nil && !*env.Success {
		return errors.FromServer(env.Error).WithMeta("op", op)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, fmt.Sprintf("invalid response from %s", op))
	}
	return nil
}
