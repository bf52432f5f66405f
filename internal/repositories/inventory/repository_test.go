package inventory_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/repositories/inventory"
	"github.com/KirkDiggler/echosheet/internal/testutils"
)

const testCharID = "42"

// contractSuite runs the same behavior checks against every implementation
type contractSuite struct {
	suite.Suite
	newRepo func() inventory.Repository
	repo    inventory.Repository
	ctx     context.Context
}

func (s *contractSuite) SetupTest() {
	s.repo = s.newRepo()
	s.ctx = context.Background()
}

func (s *contractSuite) TestUpdateAndGet() {
	_, err := s.repo.Update(s.ctx, inventory.UpdateInput{CharacterID: testCharID, Inventory: testutils.CreateTestInventory()})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Assert().Equal(testutils.CreateTestInventory(), out.Inventory)
}

func (s *contractSuite) TestUpdateReplaces() {
	_, err := s.repo.Update(s.ctx, inventory.UpdateInput{CharacterID: testCharID, Inventory: testutils.CreateTestInventory()})
	s.Require().NoError(err)

	replaced := echosheet.Inventory{
		Items:    []echosheet.InventoryItem{{Name: "Lantern", Weight: 2}},
		Currency: echosheet.Currency{CP: 7},
	}
	_, err = s.repo.Update(s.ctx, inventory.UpdateInput{CharacterID: testCharID, Inventory: replaced})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Lantern"}, out.Inventory.ItemNames())
	s.Assert().Equal(7, out.Inventory.Currency.CP)
}

func (s *contractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, inventory.GetInput{CharacterID: testCharID})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *contractSuite) TestDelete() {
	_, err := s.repo.Update(s.ctx, inventory.UpdateInput{CharacterID: testCharID, Inventory: testutils.CreateTestInventory()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{CharacterID: testCharID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, inventory.GetInput{CharacterID: testCharID})
	s.Assert().True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{CharacterID: testCharID})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *contractSuite) TestEmptyCharacterID() {
	_, err := s.repo.Get(s.ctx, inventory.GetInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, inventory.UpdateInput{Inventory: testutils.CreateTestInventory()})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, inventory.DeleteInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &contractSuite{newRepo: func() inventory.Repository {
		client, _ := testutils.CreateTestRedisClient(t)
		repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func TestFileRepository(t *testing.T) {
	suite.Run(t, &contractSuite{newRepo: func() inventory.Repository {
		repo, err := inventory.NewFile(&inventory.FileConfig{Path: filepath.Join(t.TempDir(), "inventory.json")})
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

type RedisInventoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo inventory.Repository
}

func TestRedisInventorySuite(t *testing.T) {
	suite.Run(t, new(RedisInventoryTestSuite))
}

func (s *RedisInventoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := inventory.NewRedis(&inventory.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisInventoryTestSuite) TestNewRedisValidation() {
	_, err := inventory.NewRedis(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = inventory.NewRedis(&inventory.RedisConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RedisInventoryTestSuite) TestStoredWithoutExpiry() {
	_, err := s.repo.Update(context.Background(), inventory.UpdateInput{CharacterID: testCharID, Inventory: testutils.CreateTestInventory()})
	s.Require().NoError(err)

	s.Assert().Equal("inventory:character:42", inventory.GetKey(testCharID))
	s.Assert().True(s.mr.Exists(inventory.GetKey(testCharID)))
	s.Assert().Zero(s.mr.TTL(inventory.GetKey(testCharID)))
}

func (s *RedisInventoryTestSuite) TestCorruptData() {
	s.Require().NoError(s.mr.Set(inventory.GetKey(testCharID), "{not json"))

	_, err := s.repo.Get(context.Background(), inventory.GetInput{CharacterID: testCharID})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(err))
}

func TestFileRepositoryFormat(t *testing.T) {
	s := &fileFormatSuite{}
	suite.Run(t, s)
}

type fileFormatSuite struct {
	suite.Suite
}

func (s *fileFormatSuite) TestReadsHandWrittenFile() {
	path := filepath.Join(s.T().TempDir(), "inventory.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{"items":[{"name":"Rope","weight":10}],"currency":{"gp":5}}`), 0o644))

	repo, err := inventory.NewFile(&inventory.FileConfig{Path: path})
	s.Require().NoError(err)

	out, err := repo.Get(context.Background(), inventory.GetInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Rope"}, out.Inventory.ItemNames())
	s.Assert().Equal(5, out.Inventory.Currency.GP)
}

func (s *fileFormatSuite) TestMalformedFile() {
	path := filepath.Join(s.T().TempDir(), "inventory.json")
	s.Require().NoError(os.WriteFile(path, []byte(`[1, 2`), 0o644))

	repo, err := inventory.NewFile(&inventory.FileConfig{Path: path})
	s.Require().NoError(err)

	_, err = repo.Get(context.Background(), inventory.GetInput{CharacterID: testCharID})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *fileFormatSuite) TestNewFileValidation() {
	_, err := inventory.NewFile(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = inventory.NewFile(&inventory.FileConfig{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
