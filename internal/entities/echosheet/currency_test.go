package echosheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
)

func TestCurrency_ToCopper(t *testing.T) {
	c := echosheet.Currency{CP: 3, SP: 2, EP: 1, GP: 4, PP: 1}
	assert.Equal(t, 3+20+50+400+1000, c.ToCopper())
	assert.Equal(t, 11, c.TotalCoins())
}

func TestBreakdown_Greedy(t *testing.T) {
	assert.Equal(t, echosheet.Currency{PP: 1, GP: 2, EP: 1, SP: 1, CP: 3}, echosheet.Breakdown(1263))
	assert.Equal(t, echosheet.Currency{}, echosheet.Breakdown(0))
	assert.Equal(t, echosheet.Currency{}, echosheet.Breakdown(-5))
}

func TestCanonical_DoesNotMutate(t *testing.T) {
	c := echosheet.Currency{CP: 250}
	canon := c.Canonical()
	assert.Equal(t, echosheet.Currency{GP: 2, EP: 1}, canon)
	assert.Equal(t, 250, c.CP)
}

func TestCurrency_MapRoundTrip(t *testing.T) {
	c := echosheet.FromMap(map[string]int{"gp": 15, "sp": 3, "xx": 99})
	assert.Equal(t, echosheet.Currency{GP: 15, SP: 3}, c)
	assert.Equal(t, map[string]int{"cp": 0, "sp": 3, "ep": 0, "gp": 15, "pp": 0}, c.ToMap())
}

func TestProperty_BreakdownPreservesValue(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := echosheet.Currency{
			CP: rapid.IntRange(0, 100000).Draw(rt, "cp"),
			SP: rapid.IntRange(0, 10000).Draw(rt, "sp"),
			EP: rapid.IntRange(0, 2000).Draw(rt, "ep"),
			GP: rapid.IntRange(0, 1000).Draw(rt, "gp"),
			PP: rapid.IntRange(0, 100).Draw(rt, "pp"),
		}
		canon := c.Canonical()
		if canon.ToCopper() != c.ToCopper() {
			rt.Fatalf("breakdown changed value: %d != %d", canon.ToCopper(), c.ToCopper())
		}
		// greedy leaves less than one coin of the next size up in each tier
		if canon.CP >= 10 || canon.SP >= 5 || canon.EP >= 2 || canon.GP >= 10 {
			rt.Fatalf("breakdown not greedy: %+v", canon)
		}
	})
}

func TestProperty_AddIsValueAdditive(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := echosheet.Breakdown(rapid.IntRange(0, 50000).Draw(rt, "a"))
		b := echosheet.Breakdown(rapid.IntRange(0, 50000).Draw(rt, "b"))
		if a.Add(b).ToCopper() != a.ToCopper()+b.ToCopper() {
			rt.Fatalf("add not additive for %+v and %+v", a, b)
		}
	})
}
