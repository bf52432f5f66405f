package rules

import (
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

var pointCosts = map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}

// PointCost returns the point-buy cost of a base score
func PointCost(score int) (int, error) {
	cost, ok := pointCosts[score]
	if !ok {
		return 0, errors.OutOfRangef("base score %d is outside %d-%d",
			score, echosheet.MinBaseScore, echosheet.MaxBaseScore)
	}
	return cost, nil
}

// SpentPoints sums the cost of every ability; scores outside the table count as an error
func SpentPoints(attrs echosheet.AttributeSet) (int, error) {
	total := 0
	for _, a := range echosheet.AllAbilities {
		cost, err := PointCost(attrs.Base(a))
		if err != nil {
			return 0, errors.Wrapf(err, "invalid %s", a)
		}
		total += cost
	}
	return total, nil
}

// RemainingPoints is the unspent budget. Out-of-range scores are treated as
// their nearest bound so a corrupt draft still renders.
func RemainingPoints(attrs echosheet.AttributeSet) int {
	spent := 0
	for _, a := range echosheet.AllAbilities {
		spent += pointCosts[clampBase(attrs.Base(a))]
	}
	return echosheet.PointBuyBudget - spent
}

func clampBase(score int) int {
	if score < echosheet.MinBaseScore {
		return echosheet.MinBaseScore
	}
	if score > echosheet.MaxBaseScore {
		return echosheet.MaxBaseScore
	}
	return score
}

// Modifier returns floor((score-10)/2)
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// RacialBonus returns the bonus race grants to one ability; unknown races grant nothing
func (e *Engine) RacialBonus(race string, ability echosheet.Ability) int {
	r, ok := e.rs.Race(race)
	if !ok {
		return 0
	}
	return r.Bonuses[string(ability)]
}

// TotalScore is base plus racial bonus. It is not clamped to the base maximum.
func (e *Engine) TotalScore(attrs echosheet.AttributeSet, race string, ability echosheet.Ability) int {
	return attrs.Base(ability) + e.RacialBonus(race, ability)
}

// ChangeAttribute moves one base score by delta.
//
// Decreasing below 8 or increasing above 15 fails with OutOfRange. An increase
// the remaining budget cannot pay for fails with ResourceExhausted. attrs is
// never modified.
func ChangeAttribute(attrs echosheet.AttributeSet, ability echosheet.Ability, delta int) (echosheet.AttributeSet, error) {
	if !ability.Valid() {
		return attrs, errors.InvalidArgumentf("unknown ability %q", ability)
	}
	if delta == 0 {
		return attrs, nil
	}

	current := attrs.Base(ability)
	next := current + delta
	if next < echosheet.MinBaseScore {
		return attrs, errors.OutOfRangef("cannot decrease %s: minimum base score is %d",
			ability, echosheet.MinBaseScore)
	}
	if next > echosheet.MaxBaseScore {
		return attrs, errors.OutOfRangef("cannot increase %s: maximum base score is %d",
			ability, echosheet.MaxBaseScore)
	}

	if delta > 0 {
		costDelta := pointCosts[next] - pointCosts[clampBase(current)]
		if remaining := RemainingPoints(attrs); costDelta > remaining {
			return attrs, errors.ResourceExhaustedf("cannot increase %s: needs %d points, %d remaining",
				ability, costDelta, remaining)
		}
	}

	out := attrs.Clone()
	for _, a := range echosheet.AllAbilities {
		if _, ok := out[a]; !ok {
			out[a] = echosheet.MinBaseScore
		}
	}
	out[ability] = next
	return out, nil
}

// ValidateAttributes passes only when every score is in range and the budget
// is spent exactly.
func ValidateAttributes(attrs echosheet.AttributeSet) error {
	spent, err := SpentPoints(attrs)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "attribute scores are invalid")
	}
	remaining := echosheet.PointBuyBudget - spent
	switch {
	case remaining > 0:
		return errors.InvalidArgumentf("you have %d attribute points left to spend", remaining)
	case remaining < 0:
		return errors.InvalidArgumentf("you have spent %d points over the %d point budget",
			-remaining, echosheet.PointBuyBudget)
	}
	return nil
}

// AttributeRow is the rendered state of one ability
type AttributeRow struct {
	Ability     echosheet.Ability
	Base        int
	Racial      int
	Total       int
	Modifier    int
	Cost        int
	CanDecrease bool
	CanIncrease bool
}

// AttributeView is the rendered point-buy panel
type AttributeView struct {
	Rows      []AttributeRow
	Remaining int
	Valid     bool
}

// RenderAttributes computes the display state of the point-buy panel
func (e *Engine) RenderAttributes(attrs echosheet.AttributeSet, race string) AttributeView {
	remaining := RemainingPoints(attrs)
	view := AttributeView{
		Rows:      make([]AttributeRow, 0, len(echosheet.AllAbilities)),
		Remaining: remaining,
		Valid:     ValidateAttributes(attrs) == nil,
	}
	for _, a := range echosheet.AllAbilities {
		base := attrs.Base(a)
		racial := e.RacialBonus(race, a)
		row := AttributeRow{
			Ability:     a,
			Base:        base,
			Racial:      racial,
			Total:       base + racial,
			Modifier:    Modifier(base + racial),
			Cost:        pointCosts[clampBase(base)],
			CanDecrease: base > echosheet.MinBaseScore,
		}
		if base < echosheet.MaxBaseScore {
			row.CanIncrease = pointCosts[clampBase(base+1)]-row.Cost <= remaining
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}
