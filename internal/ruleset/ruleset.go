// Package ruleset holds the static character-creation tables: races, classes,
// backgrounds, skills, experience thresholds and equipment packs.
package ruleset

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultTables []byte

// Skill is a skill and the ability it keys off.
type Skill struct {
	Name    string `yaml:"name"`
	Ability string `yaml:"ability"`
}

// Race carries the racial ability score bonuses, keyed by ability abbreviation.
type Race struct {
	Name    string         `yaml:"name"`
	Speed   int            `yaml:"speed"`
	Bonuses map[string]int `yaml:"bonuses"`
}

// Class describes the skill list a class picks from and how many picks it gets.
//
// SpellcastingAbility is empty for classes that never cast.
type Class struct {
	Name                string   `yaml:"name"`
	HitDie              string   `yaml:"hit_die"`
	SkillChoices        int      `yaml:"skill_choices"`
	Skills              []string `yaml:"skills"`
	SpellcastingAbility string   `yaml:"spellcasting_ability"`
}

// Background grants a fixed set of skill proficiencies.
type Background struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

// PackItem is one entry of an equipment pack.
type PackItem struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// EquipmentPack is a named bundle of items and coins.
type EquipmentPack struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Currency    map[string]int `yaml:"currency"`
	Items       []PackItem     `yaml:"items"`
}

// Ruleset is the parsed table document. Lookups are by exact name.
type Ruleset struct {
	Skills         []Skill         `yaml:"skills"`
	Races          []Race          `yaml:"races"`
	Classes        []Class         `yaml:"classes"`
	Backgrounds    []Background    `yaml:"backgrounds"`
	Alignments     []string        `yaml:"alignments"`
	XPThresholds   []int           `yaml:"xp_thresholds"`
	EquipmentPacks []EquipmentPack `yaml:"equipment_packs"`

	skills      map[string]*Skill
	races       map[string]*Race
	classes     map[string]*Class
	backgrounds map[string]*Background
	packs       map[string]*EquipmentPack
}

var (
	defaultOnce    sync.Once
	defaultRuleset *Ruleset
)

// Default returns the ruleset compiled into the binary.
// It panics if the embedded document is malformed, which a test guards.
func Default() *Ruleset {
	defaultOnce.Do(func() {
		rs, err := Parse(defaultTables)
		if err != nil {
			panic(fmt.Sprintf("embedded ruleset: %v", err))
		}
		defaultRuleset = rs
	})
	return defaultRuleset
}

// Parse decodes a table document and checks that every cross reference resolves.
func Parse(data []byte) (*Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing ruleset: %w", err)
	}
	if err := rs.index(); err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *Ruleset) index() error {
	r.skills = make(map[string]*Skill, len(r.Skills))
	for i := range r.Skills {
		s := &r.Skills[i]
		if _, dup := r.skills[s.Name]; dup {
			return fmt.Errorf("duplicate skill %q", s.Name)
		}
		r.skills[s.Name] = s
	}

	r.races = make(map[string]*Race, len(r.Races))
	for i := range r.Races {
		r.races[r.Races[i].Name] = &r.Races[i]
	}

	r.classes = make(map[string]*Class, len(r.Classes))
	for i := range r.Classes {
		c := &r.Classes[i]
		if c.SkillChoices < 0 || c.SkillChoices > len(c.Skills) {
			return fmt.Errorf("class %q: skill_choices %d out of range", c.Name, c.SkillChoices)
		}
		for _, skill := range c.Skills {
			if _, ok := r.skills[skill]; !ok {
				return fmt.Errorf("class %q: unknown skill %q", c.Name, skill)
			}
		}
		r.classes[c.Name] = c
	}

	r.backgrounds = make(map[string]*Background, len(r.Backgrounds))
	for i := range r.Backgrounds {
		b := &r.Backgrounds[i]
		for _, skill := range b.Skills {
			if _, ok := r.skills[skill]; !ok {
				return fmt.Errorf("background %q: unknown skill %q", b.Name, skill)
			}
		}
		r.backgrounds[b.Name] = b
	}

	r.packs = make(map[string]*EquipmentPack, len(r.EquipmentPacks))
	for i := range r.EquipmentPacks {
		r.packs[r.EquipmentPacks[i].Name] = &r.EquipmentPacks[i]
	}

	if len(r.XPThresholds) == 0 {
		return fmt.Errorf("xp_thresholds must not be empty")
	}
	for i := 1; i < len(r.XPThresholds); i++ {
		if r.XPThresholds[i] <= r.XPThresholds[i-1] {
			return fmt.Errorf("xp_thresholds must increase (level %d)", i+1)
		}
	}
	return nil
}

// Race returns the race with the given name.
func (r *Ruleset) Race(name string) (*Race, bool) {
	race, ok := r.races[name]
	return race, ok
}

// Class returns the class with the given name.
func (r *Ruleset) Class(name string) (*Class, bool) {
	class, ok := r.classes[name]
	return class, ok
}

// Background returns the background with the given name.
func (r *Ruleset) Background(name string) (*Background, bool) {
	bg, ok := r.backgrounds[name]
	return bg, ok
}

// Pack returns the equipment pack with the given name.
func (r *Ruleset) Pack(name string) (*EquipmentPack, bool) {
	pack, ok := r.packs[name]
	return pack, ok
}

// SkillAbility returns the ability a skill keys off, or "" for unknown skills.
func (r *Ruleset) SkillAbility(skill string) string {
	if s, ok := r.skills[skill]; ok {
		return s.Ability
	}
	return ""
}

// RaceNames lists races in table order.
func (r *Ruleset) RaceNames() []string {
	names := make([]string, len(r.Races))
	for i, race := range r.Races {
		names[i] = race.Name
	}
	return names
}

// ClassNames lists classes in table order.
func (r *Ruleset) ClassNames() []string {
	names := make([]string, len(r.Classes))
	for i, class := range r.Classes {
		names[i] = class.Name
	}
	return names
}

// BackgroundNames lists backgrounds in table order.
func (r *Ruleset) BackgroundNames() []string {
	names := make([]string, len(r.Backgrounds))
	for i, bg := range r.Backgrounds {
		names[i] = bg.Name
	}
	return names
}

// PackNames lists equipment packs in table order.
func (r *Ruleset) PackNames() []string {
	names := make([]string, len(r.EquipmentPacks))
	for i, pack := range r.EquipmentPacks {
		names[i] = pack.Name
	}
	return names
}
