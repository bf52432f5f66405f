package echosheet

// Draft limits
const (
	MaxNameLength = 50
	MinLevel      = 1
	MaxLevel      = 20
)

// CharacterDraft is a character under construction. It only reaches the
// backend on submit; until then it lives in the draft store.
type CharacterDraft struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"session_id"`
	Name       string         `json:"name"`
	Race       string         `json:"race"`
	Class      string         `json:"char_class"`
	Level      int            `json:"level"`
	Background string         `json:"background"`
	Attributes AttributeSet   `json:"attributes"`
	Skills     SkillSelection `json:"skills"`
	Spells     SpellSelection `json:"spells"`

	// Spellbook is the class spell payload; nil until loaded
	Spellbook *Spellbook `json:"spellbook,omitempty"`
	// Suggestion is the staged autofill preview; nil when hidden
	Suggestion *AutofillSuggestion `json:"suggestion,omitempty"`
	// PendingAutofill is the token of the latest autofill request in flight
	PendingAutofill string `json:"pending_autofill,omitempty"`

	Progress  CreationProgress `json:"progress"`
	CreatedAt int64            `json:"created_at"`
	UpdatedAt int64            `json:"updated_at"`
	ExpiresAt int64            `json:"expires_at"`
}

// Basis returns the fields an autofill suggestion depends on
func (d *CharacterDraft) Basis() DraftBasis {
	return DraftBasis{
		Race:       d.Race,
		Class:      d.Class,
		Level:      d.Level,
		Background: d.Background,
	}
}

// DraftBasis is the part of a draft that invalidates a suggestion when edited
type DraftBasis struct {
	Race       string `json:"race"`
	Class      string `json:"char_class"`
	Level      int    `json:"level"`
	Background string `json:"background"`
}

// SkillSelection separates locked background skills from class picks
type SkillSelection struct {
	Background []string `json:"background"`
	Class      []string `json:"class"`
}

// All returns background skills followed by class picks
func (s SkillSelection) All() []string {
	out := make([]string, 0, len(s.Background)+len(s.Class))
	out = append(out, s.Background...)
	return append(out, s.Class...)
}

// SpellKind distinguishes cantrips from leveled spells
type SpellKind string

// Spell kinds
const (
	SpellKindCantrip SpellKind = "cantrip"
	SpellKindSpell   SpellKind = "spell"
)

// SpellSelection holds the chosen spell names by kind
type SpellSelection struct {
	Cantrips []string `json:"cantrips"`
	Spells   []string `json:"spells"`
}

// Of returns the names selected for one kind
func (s SpellSelection) Of(kind SpellKind) []string {
	if kind == SpellKindCantrip {
		return s.Cantrips
	}
	return s.Spells
}

// SpellRules are the per-class limits returned by the backend
type SpellRules struct {
	CantripsKnown       int    `json:"cantrips_known"`
	SpellsKnown         int    `json:"spells_known"`
	SpellcastingAbility string `json:"spellcasting_ability"`
}

// IsCaster is false when the class can know neither cantrips nor spells
func (r SpellRules) IsCaster() bool {
	return r.CantripsKnown > 0 || r.SpellsKnown > 0
}

// Limit returns the cap for one kind
func (r SpellRules) Limit(kind SpellKind) int {
	if kind == SpellKindCantrip {
		return r.CantripsKnown
	}
	return r.SpellsKnown
}

// Spell is display metadata for one spell
type Spell struct {
	Name        string `json:"name"`
	Level       int    `json:"level,omitempty"`
	School      string `json:"school"`
	CastingTime string `json:"casting_time"`
	Range       string `json:"range"`
	Components  string `json:"components"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Source      string `json:"source,omitempty"`
}

// Spellbook is everything a class may choose from
type Spellbook struct {
	Class    string     `json:"char_class"`
	Rules    SpellRules `json:"rules"`
	Cantrips []Spell    `json:"cantrips"`
	Spells   []Spell    `json:"spells"`
}

// Options returns the choosable spells of one kind
func (b *Spellbook) Options(kind SpellKind) []Spell {
	if kind == SpellKindCantrip {
		return b.Cantrips
	}
	return b.Spells
}

// PreviewAttribute is one row of the staged attribute preview
type PreviewAttribute struct {
	Ability  Ability `json:"ability"`
	Base     int     `json:"base"`
	Racial   int     `json:"racial"`
	Modifier int     `json:"modifier"`
}

// AutofillSuggestion is a staged, not yet applied, server suggestion
type AutofillSuggestion struct {
	RequestID           string             `json:"request_id"`
	Basis               DraftBasis         `json:"basis"`
	Playstyle           string             `json:"playstyle,omitempty"`
	AvailablePlaystyles []string           `json:"available_playstyles,omitempty"`
	Attributes          []PreviewAttribute `json:"attributes"`
	Skills              []string           `json:"skills"`
	Spells              []string           `json:"spells"`
	Valid               bool               `json:"valid"`
	GeneratedAt         int64              `json:"generated_at"`
}

// CreationProgress tracks completed steps as bitflags
type CreationProgress struct {
	StepsCompleted       uint8 `json:"steps_completed"`
	CompletionPercentage int   `json:"completion_percentage"`
}

// Progress step bitflags
const (
	ProgressStepName       uint8 = 1 << iota // 1
	ProgressStepRace                         // 2
	ProgressStepClass                        // 4
	ProgressStepBackground                   // 8
	ProgressStepAttributes                   // 16
	ProgressStepSkills                       // 32
	ProgressStepSpells                       // 64
)

const progressStepCount = 7

// HasStep checks if a specific step is completed
func (p CreationProgress) HasStep(step uint8) bool {
	return p.StepsCompleted&step != 0
}

// SetStep marks a step completed or not and refreshes the percentage
func (p *CreationProgress) SetStep(step uint8, completed bool) {
	if completed {
		p.StepsCompleted |= step
	} else {
		p.StepsCompleted &^= step
	}

	done := 0
	for s := uint8(1); s < 1<<progressStepCount; s <<= 1 {
		if p.StepsCompleted&s != 0 {
			done++
		}
	}
	p.CompletionPercentage = done * 100 / progressStepCount
}

// Complete reports whether every step is done
func (p CreationProgress) Complete() bool {
	return p.StepsCompleted == 1<<progressStepCount-1
}
