package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

type recorded struct {
	method string
	path   string
	body   map[string]any
}

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	last    recorded
	client  backend.Client
	ctx     context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.last = recorded{}
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.last = recorded{method: r.Method, path: r.URL.EscapedPath()}
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &s.last.body)
		}
		s.handler(w, r)
	}))

	var err error
	s.client, err = backend.New(&backend.Config{BaseURL: s.server.URL + "/"})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respond(status int, payload string) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, payload)
	}
}

func (s *ClientTestSuite) TestConfigValidate() {
	testCases := []struct {
		name    string
		cfg     backend.Config
		wantErr bool
	}{
		{name: "missing base url", cfg: backend.Config{}, wantErr: true},
		{name: "relative url", cfg: backend.Config{BaseURL: "localhost"}, wantErr: true},
		{name: "negative timeout", cfg: backend.Config{BaseURL: "http://x", HTTPTimeout: -1}, wantErr: true},
		{name: "valid", cfg: backend.Config{BaseURL: "http://localhost:5000"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.cfg.Validate()
			if tc.wantErr {
				s.Assert().True(errors.IsInvalidArgument(err))
				return
			}
			s.Require().NoError(err)
			s.Assert().Equal(30*time.Second, tc.cfg.HTTPTimeout)
		})
	}
}

func (s *ClientTestSuite) TestAutofill() {
	s.respond(http.StatusOK, `{
		"success": true,
		"attributes": {"STR": 15, "DEX": 14, "CON": 14, "INT": 8, "WIS": 10, "CHA": 10},
		"skills": ["Athletics", "Perception"],
		"spells": [],
		"available_playstyles": ["tank", "archer"],
		"current_playstyle": "tank"
	}`)

	out, err := s.client.Autofill(s.ctx, &backend.AutofillRequest{
		Name: "Bruna", Race: "Dwarf", Class: "Fighter", Level: 1, Background: "Soldier", Playstyle: "tank",
	})
	s.Require().NoError(err)
	s.Assert().Equal(http.MethodPost, s.last.method)
	s.Assert().Equal("/api/autofill", s.last.path)
	s.Assert().Equal("Fighter", s.last.body["char_class"])
	s.Assert().Equal("tank", s.last.body["playstyle"])
	s.Assert().Equal(15, out.Attributes["STR"])
	s.Assert().Equal([]string{"tank", "archer"}, out.AvailablePlaystyles)
	s.Assert().Equal("tank", out.CurrentPlaystyle)
}

func (s *ClientTestSuite) TestAutofillServerFailure() {
	s.respond(http.StatusOK, `{"success": false, "error": "Class and background are required"}`)

	_, err := s.client.Autofill(s.ctx, &backend.AutofillRequest{Name: "x"})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal("Class and background are required", errors.GetMessage(err))
}

func (s *ClientTestSuite) TestCreateCharacter() {
	s.respond(http.StatusOK, `{"success": true, "character_id": 42}`)

	out, err := s.client.CreateCharacter(s.ctx, &backend.CreateCharacterRequest{
		Name:       "Ilsa",
		Race:       "Elf",
		Class:      "Wizard",
		Level:      1,
		Background: "Sage",
		Attributes: map[string]int{"INT": 15},
		Skills:     []string{"Arcana", "History", "Insight", "Investigation"},
		Spells:     echosheet.SpellSelection{Cantrips: []string{"Light"}, Spells: []string{"Shield"}},
	})
	s.Require().NoError(err)
	s.Assert().Equal("42", out.CharacterID)
	s.Assert().Equal("/create", s.last.path)
	spells, ok := s.last.body["spells"].(map[string]any)
	s.Require().True(ok)
	s.Assert().Equal([]any{"Light"}, spells["cantrips"])
}

func (s *ClientTestSuite) TestCreateCharacterStringID() {
	s.respond(http.StatusOK, `{"success": true, "character_id": "abc"}`)
	out, err := s.client.CreateCharacter(s.ctx, &backend.CreateCharacterRequest{Name: "x"})
	s.Require().NoError(err)
	s.Assert().Equal("abc", out.CharacterID)
}

func (s *ClientTestSuite) TestCreateCharacterMissingID() {
	s.respond(http.StatusOK, `{"success": true}`)
	_, err := s.client.CreateCharacter(s.ctx, &backend.CreateCharacterRequest{Name: "x"})
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *ClientTestSuite) TestGetSpellbook() {
	s.respond(http.StatusOK, `{
		"success": true,
		"rules": {"cantrips_known": 3, "spells_known": 6, "spellcasting_ability": "INT"},
		"cantrips": [{"name": "Fire Bolt", "school": "Evocation", "components": ["V", "S"]}],
		"spells": [{"name": "Magic Missile", "level": 1, "components": "V, S"}]
	}`)

	book, err := s.client.GetSpellbook(s.ctx, "Wizard")
	s.Require().NoError(err)
	s.Assert().Equal("/api/spells/Wizard", s.last.path)
	s.Assert().Equal("Wizard", book.Class)
	s.Assert().Equal(3, book.Rules.CantripsKnown)
	s.Assert().Equal("V, S", book.Cantrips[0].Components)
	s.Assert().Equal("V, S", book.Spells[0].Components)
	s.Assert().Equal(1, book.Spells[0].Level)
}

func (s *ClientTestSuite) TestSpellEndpoints() {
	s.Run("validate", func() {
		s.respond(http.StatusOK, `{"success": true, "validation": {"valid": false, "errors": ["Too many cantrips"], "warnings": []}}`)
		out, err := s.client.ValidateSpells(s.ctx, &backend.ValidateSpellsRequest{
			Class: "Wizard", Cantrips: []string{"a", "b", "c", "d"},
		})
		s.Require().NoError(err)
		s.Assert().False(out.Valid)
		s.Assert().Equal([]string{"Too many cantrips"}, out.Errors)
		s.Assert().Equal("/api/spells/validate", s.last.path)
	})

	s.Run("suggestions", func() {
		s.respond(http.StatusOK, `{"success": true, "suggestions": {"cantrips": ["Fire Bolt"], "spells": ["Shield"]}}`)
		out, err := s.client.SuggestSpells(s.ctx, "Wizard")
		s.Require().NoError(err)
		s.Assert().Equal([]string{"Fire Bolt"}, out.Cantrips)
		s.Assert().Equal("/api/spells/suggestions/Wizard", s.last.path)
	})

	s.Run("single spell", func() {
		s.respond(http.StatusOK, `{"success": true, "spell": {"name": "Cure Wounds", "school": "Evocation"}}`)
		out, err := s.client.GetSpell(s.ctx, "Cure Wounds")
		s.Require().NoError(err)
		s.Assert().Equal("Evocation", out.School)
		s.Assert().Equal("/api/spell/Cure%20Wounds", s.last.path)
	})

	s.Run("unknown spell", func() {
		s.respond(http.StatusNotFound, `{"success": false, "error": "Spell not found"}`)
		_, err := s.client.GetSpell(s.ctx, "Nope")
		s.Assert().True(errors.IsNotFound(err))
		s.Assert().Equal("Spell not found", errors.GetMessage(err))
	})
}

func (s *ClientTestSuite) TestListPlaystyles() {
	s.respond(http.StatusOK, `{"success": true, "playstyles": {
		"tank": {"description": "Front line", "attributes": {"STR": 15}},
		"archer": {"description": "Ranged", "skills": ["Perception"]}
	}}`)

	out, err := s.client.ListPlaystyles(s.ctx, "Fighter")
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Assert().Equal("archer", out[0].Name)
	s.Assert().Equal("tank", out[1].Name)
	s.Assert().Equal(15, out[1].Attributes["STR"])
}

func (s *ClientTestSuite) TestChatAndDelete() {
	s.respond(http.StatusOK, `{"response": "Well met."}`)
	reply, err := s.client.Chat(s.ctx, "7", "hello")
	s.Require().NoError(err)
	s.Assert().Equal("Well met.", reply)
	s.Assert().Equal("/character/7/chat", s.last.path)
	s.Assert().Equal("hello", s.last.body["message"])

	s.respond(http.StatusOK, `{"success": true, "message": "Character \"Ilsa\" deleted successfully"}`)
	msg, err := s.client.DeleteCharacter(s.ctx, "7")
	s.Require().NoError(err)
	s.Assert().Contains(msg, "deleted")
	s.Assert().Equal("/character/7/delete", s.last.path)

	_, err = s.client.Chat(s.ctx, "", "hello")
	s.Assert().True(errors.IsInvalidArgument(err))
	_, err = s.client.Chat(s.ctx, "7", "  ")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestUpdateInventory() {
	s.respond(http.StatusOK, `{"success": true}`)

	inv := &echosheet.Inventory{
		Items:    []echosheet.InventoryItem{{Name: "Rope", Weight: 10}},
		Currency: echosheet.Currency{GP: 15},
	}
	s.Require().NoError(s.client.UpdateInventory(s.ctx, "3", inv))
	s.Assert().Equal("/api/character/3/inventory", s.last.path)
	s.Assert().Equal([]any{"Rope"}, s.last.body["items"])
	s.Assert().Equal(map[string]any{"Rope": float64(10)}, s.last.body["item_weights"])
	currency, ok := s.last.body["currency"].(map[string]any)
	s.Require().True(ok)
	s.Assert().Equal(float64(15), currency["gp"])
}

func (s *ClientTestSuite) TestApplyPack() {
	s.respond(http.StatusOK, `{
		"success": true,
		"pack_name": "Explorer's Pack",
		"items_added": ["Backpack", "Bedroll"],
		"currency_added": {"gp": 10},
		"total_weight": 17
	}`)

	out, err := s.client.ApplyPack(s.ctx, "3", "Explorer's Pack")
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Backpack", "Bedroll"}, out.ItemsAdded)
	s.Assert().Equal(10, out.CurrencyAdded.GP)
	s.Assert().Equal(17.0, out.TotalWeight)
	s.Assert().Equal("Explorer's Pack", s.last.body["pack_name"])
}

func (s *ClientTestSuite) TestSheetUpdates() {
	s.respond(http.StatusOK, `{"success": true}`)

	s.Require().NoError(s.client.UpdatePersonality(s.ctx, "3", &echosheet.Personality{Ideals: "Honor"}))
	s.Assert().Equal("/api/character/3/personality", s.last.path)
	s.Assert().Equal("Honor", s.last.body["ideals"])

	s.Require().NoError(s.client.UpdateBasicInfo(s.ctx, "3", &echosheet.BasicInfo{Alignment: "Lawful Good", ExperiencePoints: 300}))
	s.Assert().Equal(float64(300), s.last.body["experience_points"])

	s.Require().NoError(s.client.UpdatePhysicalInfo(s.ctx, "3", &echosheet.PhysicalInfo{Eyes: "Green"}))
	s.Assert().Equal("/api/character/3/physical-info", s.last.path)

	s.Require().NoError(s.client.UpdateHitPoints(s.ctx, "3", &echosheet.HitPoints{Maximum: 12, Current: 9}))
	s.Assert().Equal(float64(12), s.last.body["hit_point_maximum"])
}

func (s *ClientTestSuite) TestLevelUp() {
	s.respond(http.StatusOK, `{"success": true, "message": "Level up!", "new_level": 2}`)
	out, err := s.client.LevelUp(s.ctx, "3")
	s.Require().NoError(err)
	s.Assert().Equal(2, out.NewLevel)

	s.respond(http.StatusBadRequest, `{"success": false, "error": "Character cannot level up yet. Current XP: 0, XP needed: 300"}`)
	_, err = s.client.LevelUp(s.ctx, "3")
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(http.StatusBadRequest, errors.GetMeta(err)["http_status"])
}

func (s *ClientTestSuite) TestErrorMapping() {
	testCases := []struct {
		name    string
		status  int
		payload string
		code    errors.Code
	}{
		{name: "server error without body", status: http.StatusInternalServerError, payload: ``, code: errors.CodeInternal},
		{name: "not found", status: http.StatusNotFound, payload: `{"error": "Character not found"}`, code: errors.CodeNotFound},
		{name: "garbage on success", status: http.StatusOK, payload: `<html>`, code: errors.CodeInternal},
		{name: "unavailable", status: http.StatusServiceUnavailable, payload: ``, code: errors.CodeUnavailable},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.respond(tc.status, tc.payload)
			_, err := s.client.DeleteCharacter(s.ctx, "1")
			s.Require().Error(err)
			s.Assert().Equal(tc.code, errors.GetCode(err))
		})
	}
}

func (s *ClientTestSuite) TestTransportFailure() {
	s.server.Close()

	_, err := s.client.GetSpellbook(s.ctx, "Wizard")
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestTimeout() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}
	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	_, err := s.client.SuggestSpells(ctx, "Wizard")
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(err))
}
