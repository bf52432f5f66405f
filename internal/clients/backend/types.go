package backend

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

// AutofillRequest is the draft identity sent to /api/autofill
type AutofillRequest struct {
	Name       string `json:"name"`
	Race       string `json:"race"`
	Class      string `json:"char_class"`
	Level      int    `json:"level"`
	Background string `json:"background"`
	Playstyle  string `json:"playstyle,omitempty"`
}

// AutofillResponse is a generated suggestion. Attributes are base scores
// keyed by ability abbreviation; Spells mixes cantrips and leveled spells.
type AutofillResponse struct {
	Attributes          map[string]int `json:"attributes"`
	Skills              []string       `json:"skills"`
	Spells              []string       `json:"spells"`
	AvailablePlaystyles []string       `json:"available_playstyles,omitempty"`
	CurrentPlaystyle    string         `json:"current_playstyle,omitempty"`
}

// CreateCharacterRequest is the /create body
type CreateCharacterRequest struct {
	Name       string                   `json:"name"`
	Race       string                   `json:"race"`
	Class      string                   `json:"char_class"`
	Level      int                      `json:"level"`
	Background string                   `json:"background"`
	Attributes map[string]int           `json:"attributes"`
	Skills     []string                 `json:"skills"`
	Spells     echosheet.SpellSelection `json:"spells"`
}

// CreateCharacterResponse carries the ID of the stored character
type CreateCharacterResponse struct {
	CharacterID string
}

// ValidateSpellsRequest asks the backend to check a selection
type ValidateSpellsRequest struct {
	Class    string   `json:"char_class"`
	Cantrips []string `json:"cantrips"`
	Spells   []string `json:"spells"`
}

type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

type flexID string

// UnmarshalJSON accepts both numeric and string IDs
func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = flexID(n.String())
	return nil
}

type createResponse struct {
	CharacterID flexID `json:"character_id"`
}

// componentList is a spell component field, sent either as ["V", "S"] or "V, S"
type componentList string

func (c *componentList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var parts []string
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}
		*c = componentList(strings.Join(parts, ", "))
		return nil
	}
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s != nil {
		*c = componentList(*s)
	}
	return nil
}

type spellPayload struct {
	Name        string        `json:"name"`
	Level       int           `json:"level"`
	School      string        `json:"school"`
	CastingTime string        `json:"casting_time"`
	Range       string        `json:"range"`
	Components  componentList `json:"components"`
	Duration    string        `json:"duration"`
	Description string        `json:"description"`
}

func (p spellPayload) toSpell() echosheet.Spell {
	return echosheet.Spell{
		Name:        p.Name,
		Level:       p.Level,
		School:      p.School,
		CastingTime: p.CastingTime,
		Range:       p.Range,
		Components:  string(p.Components),
		Duration:    p.Duration,
		Description: p.Description,
	}
}

func toSpells(in []spellPayload) []echosheet.Spell {
	out := make([]echosheet.Spell, 0, len(in))
	for _, p := range in {
		out = append(out, p.toSpell())
	}
	return out
}

type spellbookResponse struct {
	Rules    echosheet.SpellRules `json:"rules"`
	Cantrips []spellPayload       `json:"cantrips"`
	Spells   []spellPayload       `json:"spells"`
}

type spellResponse struct {
	Spell spellPayload `json:"spell"`
}

type validationResponse struct {
	Validation echosheet.SpellValidation `json:"validation"`
}

type suggestionsResponse struct {
	Suggestions echosheet.SpellSelection `json:"suggestions"`
}

type playstyleData struct {
	Description string         `json:"description"`
	Attributes  map[string]int `json:"attributes"`
	Skills      []string       `json:"skills"`
	Spells      []string       `json:"spells"`
	Cantrips    []string       `json:"cantrips"`
}

type playstylesResponse struct {
	Playstyles map[string]playstyleData `json:"playstyles"`
}

func (r playstylesResponse) toPlaystyles() []echosheet.Playstyle {
	names := make([]string, 0, len(r.Playstyles))
	for name := range r.Playstyles {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]echosheet.Playstyle, 0, len(names))
	for _, name := range names {
		data := r.Playstyles[name]
		out = append(out, echosheet.Playstyle{
			Name:        name,
			Description: data.Description,
			Attributes:  data.Attributes,
			Skills:      data.Skills,
			Spells:      data.Spells,
			Cantrips:    data.Cantrips,
		})
	}
	return out
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type deleteResponse struct {
	Message string `json:"message"`
}

type inventoryRequest struct {
	Currency    map[string]int     `json:"currency"`
	Items       []string           `json:"items"`
	ItemWeights map[string]float64 `json:"item_weights"`
}

type applyPackRequest struct {
	PackName string `json:"pack_name"`
}
