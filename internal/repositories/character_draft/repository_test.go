package characterdraft_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/clock"
	characterdraft "github.com/KirkDiggler/echosheet/internal/repositories/character_draft"
	"github.com/KirkDiggler/echosheet/internal/testutils"
	"github.com/KirkDiggler/echosheet/internal/testutils/builders"
)

// contractSuite runs the same behavior checks against every implementation
type contractSuite struct {
	suite.Suite
	newRepo func() characterdraft.Repository
	repo    characterdraft.Repository
	ctx     context.Context
}

func (s *contractSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func (s *contractSuite) TestCreateAndGet() {
	draft := builders.NewCharacterDraftBuilder().AsWizard().Build()

	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: draft.ID})
	s.Require().NoError(err)
	s.Assert().Equal(draft.Name, out.Draft.Name)
	s.Assert().Equal(draft.Attributes, out.Draft.Attributes)
	s.Assert().Equal(draft.Spells, out.Draft.Spells)
	s.Require().NotNil(out.Draft.Spellbook)
	s.Assert().Equal(3, out.Draft.Spellbook.Rules.CantripsKnown)

	// stored copies are independent of the caller's value
	out.Draft.Name = "Changed"
	again, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: draft.ID})
	s.Require().NoError(err)
	s.Assert().Equal("Ilsa Vey", again.Draft.Name)
}

func (s *contractSuite) TestCreateValidation() {
	testCases := []struct {
		name  string
		input characterdraft.CreateInput
	}{
		{name: "nil draft", input: characterdraft.CreateInput{}},
		{name: "missing id", input: characterdraft.CreateInput{Draft: builders.NewCharacterDraftBuilder().WithID("").Build()}},
		{name: "missing session", input: characterdraft.CreateInput{Draft: builders.NewCharacterDraftBuilder().WithSessionID("").Build()}},
		{name: "expired", input: characterdraft.CreateInput{
			Draft: builders.NewCharacterDraftBuilder().WithExpiresAt(time.Now().Add(-time.Hour)).Build(),
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *contractSuite) TestCreateDuplicate() {
	draft := builders.NewCharacterDraftBuilder().Build()
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Assert().True(errors.IsAlreadyExists(err))
}

func (s *contractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: "nope"})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, characterdraft.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *contractSuite) TestUpdate() {
	draft := builders.NewCharacterDraftBuilder().AsFighter().Build()
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	draft.Name = "Bruna the Bold"
	draft.Level = 3
	_, err = s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: draft})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, characterdraft.GetInput{ID: draft.ID})
	s.Require().NoError(err)
	s.Assert().Equal("Bruna the Bold", out.Draft.Name)
	s.Assert().Equal(3, out.Draft.Level)
}

func (s *contractSuite) TestUpdateMissing() {
	draft := builders.NewCharacterDraftBuilder().WithID("ghost").Build()
	_, err := s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: draft})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *contractSuite) TestDelete() {
	draft := builders.NewCharacterDraftBuilder().Build()
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, characterdraft.DeleteInput{ID: draft.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, characterdraft.GetInput{ID: draft.ID})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, characterdraft.DeleteInput{ID: draft.ID})
	s.Assert().True(errors.IsNotFound(err))

	list, err := s.repo.ListBySession(s.ctx, characterdraft.ListBySessionInput{SessionID: draft.SessionID})
	s.Require().NoError(err)
	s.Assert().Empty(list.Drafts)
}

func (s *contractSuite) TestListBySession() {
	base := time.Now().Add(-time.Hour)
	first := builders.NewCharacterDraftBuilder().WithID("d1").WithSessionID("s1").WithCreatedAt(base).Build()
	second := builders.NewCharacterDraftBuilder().WithID("d2").WithSessionID("s1").WithCreatedAt(base.Add(time.Minute)).Build()
	other := builders.NewCharacterDraftBuilder().WithID("d3").WithSessionID("s2").Build()

	for _, d := range []characterdraft.CreateInput{{Draft: second}, {Draft: first}, {Draft: other}} {
		_, err := s.repo.Create(s.ctx, d)
		s.Require().NoError(err)
	}

	out, err := s.repo.ListBySession(s.ctx, characterdraft.ListBySessionInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Require().Len(out.Drafts, 2)
	s.Assert().Equal("d1", out.Drafts[0].ID)
	s.Assert().Equal("d2", out.Drafts[1].ID)

	_, err = s.repo.ListBySession(s.ctx, characterdraft.ListBySessionInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &contractSuite{newRepo: func() characterdraft.Repository {
		repo, err := characterdraft.NewMemory(nil)
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &contractSuite{newRepo: func() characterdraft.Repository {
		client, _ := testutils.CreateTestRedisClient(t)
		repo, err := characterdraft.NewRedis(&characterdraft.RedisConfig{Client: client})
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

type RedisExpiryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo characterdraft.Repository
	ctx  context.Context
}

func TestRedisExpirySuite(t *testing.T) {
	suite.Run(t, new(RedisExpiryTestSuite))
}

func (s *RedisExpiryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	repo, err := characterdraft.NewRedis(&characterdraft.RedisConfig{Client: client, TTL: time.Hour})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisExpiryTestSuite) TestNewRedisValidation() {
	_, err := characterdraft.NewRedis(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
	_, err = characterdraft.NewRedis(&characterdraft.RedisConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisExpiryTestSuite) TestKeysAndTTL() {
	draft := builders.NewCharacterDraftBuilder().WithID("draft_1").WithSessionID("sess").Build()
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	s.Assert().True(s.mr.Exists("draft:draft_1"))
	s.Assert().Equal(time.Hour, s.mr.TTL("draft:draft_1"))
	members, err := s.mr.Members("draft:session:sess")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"draft_1"}, members)
}

func (s *RedisExpiryTestSuite) TestExpiredDraftsArePruned() {
	draft := builders.NewCharacterDraftBuilder().WithID("draft_1").WithSessionID("sess").Build()
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, characterdraft.GetInput{ID: "draft_1"})
	s.Assert().True(errors.IsNotFound(err))

	out, err := s.repo.ListBySession(s.ctx, characterdraft.ListBySessionInput{SessionID: "sess"})
	s.Require().NoError(err)
	s.Assert().Empty(out.Drafts)
	s.Assert().False(s.mr.Exists("draft:session:sess"))
}

func (s *RedisExpiryTestSuite) TestUpdateRefreshesTTL() {
	draft := builders.NewCharacterDraftBuilder().WithID("draft_1").Build()
	_, err := s.repo.Create(s.ctx, characterdraft.CreateInput{Draft: draft})
	s.Require().NoError(err)

	s.mr.FastForward(30 * time.Minute)
	_, err = s.repo.Update(s.ctx, characterdraft.UpdateInput{Draft: draft})
	s.Require().NoError(err)
	s.Assert().Equal(time.Hour, s.mr.TTL("draft:draft_1"))
}

func TestMemoryRepositoryExpiry(t *testing.T) {
	clk := clock.NewFixed(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	repo, err := characterdraft.NewMemory(&characterdraft.MemoryConfig{Clock: clk, TTL: time.Hour})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	draft := builders.NewCharacterDraftBuilder().WithID("d1").WithSessionID("s1").Build()
	if _, err := repo.Create(ctx, characterdraft.CreateInput{Draft: draft}); err != nil {
		t.Fatal(err)
	}

	clk.Advance(59 * time.Minute)
	if _, err := repo.Get(ctx, characterdraft.GetInput{ID: "d1"}); err != nil {
		t.Fatalf("draft expired early: %v", err)
	}

	clk.Advance(2 * time.Minute)
	if _, err := repo.Get(ctx, characterdraft.GetInput{ID: "d1"}); !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	// an expired ID can be reused
	if _, err := repo.Create(ctx, characterdraft.CreateInput{Draft: draft}); err != nil {
		t.Fatalf("recreate: %v", err)
	}
}
