package characterdraft

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/clock"
)

// MemoryConfig contains configuration for the in-memory draft repository.
type MemoryConfig struct {
	// Clock decides expiry (optional, defaults to the system clock)
	Clock clock.Clock
	// TTL applies to drafts without an ExpiresAt (optional, defaults to 24h)
	TTL time.Duration
}

// Validate sets defaults for the MemoryConfig.
func (cfg *MemoryConfig) Validate() error {
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

type storedDraft struct {
	data      []byte
	expiresAt time.Time
}

type memoryRepository struct {
	mu     sync.RWMutex
	clock  clock.Clock
	ttl    time.Duration
	drafts map[string]storedDraft
}

// NewMemory creates a process-local draft repository. Drafts are stored
// encoded so callers never share memory with the store.
func NewMemory(cfg *MemoryConfig) (Repository, error) {
	if cfg == nil {
		cfg = &MemoryConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &memoryRepository{
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
		drafts: make(map[string]storedDraft),
	}, nil
}

func (r *memoryRepository) encode(draft *echosheet.CharacterDraft) (storedDraft, error) {
	now := r.clock.Now()
	expiresAt := now.Add(r.ttl)
	if draft.ExpiresAt > 0 {
		expiresAt = time.Unix(draft.ExpiresAt, 0)
		if !expiresAt.After(now) {
			return storedDraft{}, errors.InvalidArgument(errDraftExpired)
		}
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return storedDraft{}, errors.Wrapf(err, "failed to marshal draft")
	}
	return storedDraft{data: data, expiresAt: expiresAt}, nil
}

// live must be called with r.mu held
func (r *memoryRepository) live(id string) (storedDraft, bool) {
	stored, ok := r.drafts[id]
	if !ok || !r.clock.Now().Before(stored.expiresAt) {
		return storedDraft{}, false
	}
	return stored, true
}

func decode(stored storedDraft) (*echosheet.CharacterDraft, error) {
	var draft echosheet.CharacterDraft
	if err := json.Unmarshal(stored.data, &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}
	return &draft, nil
}

func (r *memoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}
	if input.Draft.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	stored, err := r.encode(input.Draft)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.live(input.Draft.ID); exists {
		return nil, errors.AlreadyExistsf("draft with ID %s already exists", input.Draft.ID)
	}
	r.drafts[input.Draft.ID] = stored
	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	r.mu.RLock()
	stored, ok := r.live(input.ID)
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}

	draft, err := decode(stored)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Draft: draft}, nil
}

func (r *memoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	stored, err := r.encode(input.Draft)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.Draft.ID); !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}
	r.drafts[input.Draft.ID] = stored
	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.ID); !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}
	delete(r.drafts, input.ID)
	return &DeleteOutput{}, nil
}

func (r *memoryRepository) ListBySession(_ context.Context, input ListBySessionInput) (*ListBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	drafts := make([]*echosheet.CharacterDraft, 0)
	for id := range r.drafts {
		stored, ok := r.live(id)
		if !ok {
			delete(r.drafts, id)
			continue
		}
		draft, err := decode(stored)
		if err != nil {
			return nil, err
		}
		if draft.SessionID == input.SessionID {
			drafts = append(drafts, draft)
		}
	}

	sortDrafts(drafts)
	return &ListBySessionOutput{Drafts: drafts}, nil
}
