package echosheet

// Ability is one of the six ability score abbreviations
type Ability string

// Abilities in display order
const (
	AbilityStrength     Ability = "STR"
	AbilityDexterity    Ability = "DEX"
	AbilityConstitution Ability = "CON"
	AbilityIntelligence Ability = "INT"
	AbilityWisdom       Ability = "WIS"
	AbilityCharisma     Ability = "CHA"
)

// Point-buy bounds
const (
	MinBaseScore   = 8
	MaxBaseScore   = 15
	PointBuyBudget = 27
)

// AllAbilities lists the abilities in display order
var AllAbilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// Name returns the long form, e.g. "Strength"
func (a Ability) Name() string {
	if name, ok := abilityNames[a]; ok {
		return name
	}
	return string(a)
}

// Valid reports whether a is one of the six abilities
func (a Ability) Valid() bool {
	_, ok := abilityNames[a]
	return ok
}

// ParseAbility accepts either the abbreviation or the long name, any case
func ParseAbility(s string) (Ability, bool) {
	for _, a := range AllAbilities {
		if equalFold(s, string(a)) || equalFold(s, a.Name()) {
			return a, true
		}
	}
	return "", false
}

// AttributeSet maps each ability to its base score, before racial bonuses
type AttributeSet map[Ability]int

// NewAttributeSet returns every ability at the minimum base score
func NewAttributeSet() AttributeSet {
	attrs := make(AttributeSet, len(AllAbilities))
	for _, a := range AllAbilities {
		attrs[a] = MinBaseScore
	}
	return attrs
}

// Base returns the base score, treating a missing ability as the minimum
func (s AttributeSet) Base(a Ability) int {
	if v, ok := s[a]; ok {
		return v
	}
	return MinBaseScore
}

// Clone returns an independent copy
func (s AttributeSet) Clone() AttributeSet {
	out := make(AttributeSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
