package echosheet

// Personality is the free-text roleplay block of a character sheet
type Personality struct {
	BackgroundStory   string   `json:"background_story"`
	ShortTermGoals    string   `json:"short_term_goals"`
	LongTermGoals     string   `json:"long_term_goals"`
	PersonalGoals     string   `json:"personal_goals"`
	PersonalityTraits string   `json:"personality_traits"`
	Ideals            string   `json:"ideals"`
	Bonds             string   `json:"bonds"`
	Flaws             string   `json:"flaws"`
	PersonalityTags   []string `json:"personality_tags"`
}

// BasicInfo is the alignment and experience block
type BasicInfo struct {
	Alignment        string `json:"alignment"`
	ExperiencePoints int    `json:"experience_points"`
}

// PhysicalInfo describes the character's appearance
type PhysicalInfo struct {
	Age    string `json:"age"`
	Height string `json:"height"`
	Weight string `json:"weight"`
	Eyes   string `json:"eyes"`
	Skin   string `json:"skin"`
	Hair   string `json:"hair"`
}

// HitPoints is the hit point block
type HitPoints struct {
	Maximum   int `json:"hit_point_maximum"`
	Current   int `json:"current_hit_points"`
	Temporary int `json:"temporary_hit_points"`
}

// LevelUpResult is the backend answer to a level-up request
type LevelUpResult struct {
	NewLevel int    `json:"new_level"`
	Message  string `json:"message"`
}

// PackResult is what the backend reports after applying an equipment pack
type PackResult struct {
	PackName      string             `json:"pack_name"`
	ItemsAdded    []string           `json:"items_added"`
	ItemWeights   map[string]float64 `json:"item_weights,omitempty"`
	CurrencyAdded Currency           `json:"currency_added"`
	TotalWeight   float64            `json:"total_weight"`
}

// Playstyle is one generation profile a class offers
type Playstyle struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Attributes  map[string]int `json:"attributes,omitempty"`
	Skills      []string       `json:"skills,omitempty"`
	Spells      []string       `json:"spells,omitempty"`
	Cantrips    []string       `json:"cantrips,omitempty"`
}

// SpellValidation is the backend verdict on a spell selection
type SpellValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
