package characterdraft

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	redisclient "github.com/KirkDiggler/echosheet/internal/redis"
)

const (
	draftKeyPrefix   = "draft:"
	sessionKeyPrefix = "draft:session:"
)

func entityKey(e core.Entity) string {
	return draftKeyPrefix + e.GetID()
}

func draftKey(id string) string {
	return entityKey(echosheet.AsEntity(&echosheet.CharacterDraft{ID: id}))
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// RedisConfig contains configuration for the Redis draft repository.
type RedisConfig struct {
	Client redisclient.Client
	// TTL applies to drafts without an ExpiresAt (optional, defaults to 24h)
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed character draft repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

func (r *redisRepository) ttlFor(draft *echosheet.CharacterDraft) (time.Duration, error) {
	if draft.ExpiresAt <= 0 {
		return r.ttl, nil
	}
	ttl := time.Until(time.Unix(draft.ExpiresAt, 0))
	if ttl <= 0 {
		return 0, errors.InvalidArgument(errDraftExpired)
	}
	return ttl, nil
}

func validateDraft(draft *echosheet.CharacterDraft) error {
	if draft == nil {
		return errors.InvalidArgument(errDraftNil)
	}
	if draft.ID == "" {
		return errors.InvalidArgument(errDraftIDEmpty)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}
	if input.Draft.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ttl, err := r.ttlFor(input.Draft)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	key := entityKey(echosheet.AsEntity(input.Draft))
	created, err := r.client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}
	if !created {
		return nil, errors.AlreadyExistsf("draft with ID %s already exists", input.Draft.ID)
	}

	// Index entries outlive single drafts; stale members are pruned on list
	if err := r.client.SAdd(ctx, sessionKey(input.Draft.SessionID), input.Draft.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index draft")
	}

	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKey(input.ID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	var draft echosheet.CharacterDraft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	ttl, err := r.ttlFor(input.Draft)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	updated, err := r.client.SetXX(ctx, entityKey(echosheet.AsEntity(input.Draft)), data, ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}
	if !updated {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}

	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, draftKey(input.ID))
	if getOutput.Draft.SessionID != "" {
		pipe.SRem(ctx, sessionKey(getOutput.Draft.SessionID), input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListBySession(ctx context.Context, input ListBySessionInput) (*ListBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list session drafts")
	}

	drafts := make([]*echosheet.CharacterDraft, 0, len(ids))
	var stale []interface{}
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				stale = append(stale, id)
				continue
			}
			return nil, err
		}
		drafts = append(drafts, out.Draft)
	}

	if len(stale) > 0 {
		// Best effort; a failed prune is retried on the next list
		_ = r.client.SRem(ctx, sessionKey(input.SessionID), stale...).Err()
	}

	sortDrafts(drafts)
	return &ListBySessionOutput{Drafts: drafts}, nil
}

func sortDrafts(drafts []*echosheet.CharacterDraft) {
	sort.SliceStable(drafts, func(i, j int) bool {
		if drafts[i].CreatedAt != drafts[j].CreatedAt {
			return drafts[i].CreatedAt < drafts[j].CreatedAt
		}
		return drafts[i].ID < drafts[j].ID
	})
}
