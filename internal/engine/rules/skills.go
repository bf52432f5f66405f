package rules

import (
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

// SkillSource says why a skill is on the list
type SkillSource string

// Skill sources
const (
	SkillSourceClass      SkillSource = "class"
	SkillSourceBackground SkillSource = "background"
)

// ClassSkills returns the skills a class picks from; unknown classes have none
func (e *Engine) ClassSkills(class string) []string {
	c, ok := e.rs.Class(class)
	if !ok {
		return nil
	}
	return append([]string(nil), c.Skills...)
}

// BackgroundSkills returns the skills a background grants; unknown backgrounds grant none
func (e *Engine) BackgroundSkills(background string) []string {
	b, ok := e.rs.Background(background)
	if !ok {
		return nil
	}
	return append([]string(nil), b.Skills...)
}

// SkillQuota is the number of class skills a class picks
func (e *Engine) SkillQuota(class string) int {
	c, ok := e.rs.Class(class)
	if !ok {
		return 0
	}
	return c.SkillChoices
}

// EligibleSkills is the class list followed by background skills not already listed
func (e *Engine) EligibleSkills(class, background string) []string {
	out := e.ClassSkills(class)
	for _, skill := range e.BackgroundSkills(background) {
		if !contains(out, skill) {
			out = append(out, skill)
		}
	}
	return out
}

// NewSkillSelection locks in the background skills with no class picks
func (e *Engine) NewSkillSelection(background string) echosheet.SkillSelection {
	return echosheet.SkillSelection{
		Background: e.BackgroundSkills(background),
		Class:      []string{},
	}
}

// RemainingSkillPicks is quota minus class picks. Background skills never count.
func (e *Engine) RemainingSkillPicks(sel echosheet.SkillSelection, class string) int {
	return e.SkillQuota(class) - len(sel.Class)
}

// ToggleSkill flips a class pick.
//
// Locked background skills are left as they are without error. Skills outside
// the eligible list fail with NotFound. Selecting with no picks left fails
// with ResourceExhausted and leaves the selection unchanged.
func (e *Engine) ToggleSkill(sel echosheet.SkillSelection, class, background, skill string) (echosheet.SkillSelection, error) {
	if contains(sel.Background, skill) {
		return sel, nil
	}
	if !contains(e.EligibleSkills(class, background), skill) {
		return sel, errors.NotFoundf("%s is not available to a %s %s", skill, background, class)
	}

	out := echosheet.SkillSelection{
		Background: append([]string(nil), sel.Background...),
	}
	if contains(sel.Class, skill) {
		out.Class = remove(sel.Class, skill)
		return out, nil
	}

	if e.RemainingSkillPicks(sel, class) <= 0 {
		return sel, errors.ResourceExhaustedf("a %s can only choose %d skills", class, e.SkillQuota(class))
	}
	out.Class = append(append(make([]string, 0, len(sel.Class)+1), sel.Class...), skill)
	return out, nil
}

// ValidateSkills passes only when every class pick has been made
func (e *Engine) ValidateSkills(sel echosheet.SkillSelection, class string) error {
	remaining := e.RemainingSkillPicks(sel, class)
	switch {
	case remaining > 0:
		return errors.InvalidArgumentf("choose %d more skill(s)", remaining)
	case remaining < 0:
		return errors.InvalidArgumentf("%d too many skills selected", -remaining)
	}
	return nil
}

// ResetSkills rebuilds a selection from suggested names: background locks
// first, then suggested class skills up to quota, then the class list in order
// to fill any remaining picks. Suggestions that match nothing are skipped and
// returned.
func (e *Engine) ResetSkills(class, background string, suggested []string) (echosheet.SkillSelection, []string) {
	sel := e.NewSkillSelection(background)
	quota := e.SkillQuota(class)

	var pickable []string
	for _, skill := range e.ClassSkills(class) {
		if !contains(sel.Background, skill) {
			pickable = append(pickable, skill)
		}
	}

	var unmatched []string
	for _, name := range suggested {
		if len(sel.Class) >= quota {
			break
		}
		if containsFold(sel.Background, name) {
			continue
		}
		skill, ok := ResolveName(pickable, name)
		if !ok {
			if _, granted := ResolveName(sel.Background, name); !granted {
				unmatched = append(unmatched, name)
			}
			continue
		}
		if !contains(sel.Class, skill) {
			sel.Class = append(sel.Class, skill)
		}
	}

	for _, skill := range pickable {
		if len(sel.Class) >= quota {
			break
		}
		if !contains(sel.Class, skill) {
			sel.Class = append(sel.Class, skill)
		}
	}
	return sel, unmatched
}

// SkillItem is the rendered state of one skill
type SkillItem struct {
	Name     string
	Ability  string
	Source   SkillSource
	Selected bool
	Locked   bool
	Disabled bool
}

// SkillView is the rendered skill panel
type SkillView struct {
	Items     []SkillItem
	Quota     int
	Remaining int
	Valid     bool
}

// RenderSkills computes the display state of the skill panel
func (e *Engine) RenderSkills(sel echosheet.SkillSelection, class, background string) SkillView {
	remaining := e.RemainingSkillPicks(sel, class)
	view := SkillView{
		Quota:     e.SkillQuota(class),
		Remaining: remaining,
		Valid:     e.ValidateSkills(sel, class) == nil,
	}
	backgroundSkills := e.BackgroundSkills(background)
	for _, skill := range e.EligibleSkills(class, background) {
		item := SkillItem{
			Name:    skill,
			Ability: e.rs.SkillAbility(skill),
			Source:  SkillSourceClass,
		}
		switch {
		case contains(backgroundSkills, skill):
			item.Source = SkillSourceBackground
			item.Selected = true
			item.Locked = true
			item.Disabled = true
		case contains(sel.Class, skill):
			item.Selected = true
		default:
			item.Disabled = remaining <= 0
		}
		view.Items = append(view.Items, item)
	}
	return view
}
