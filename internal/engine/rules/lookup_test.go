package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
)

func TestResolveName(t *testing.T) {
	candidates := []string{"Fire Bolt", "Fireball", "Mage Hand", "Light"}

	testCases := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{name: "exact", in: "Fireball", want: "Fireball", found: true},
		{name: "case insensitive beats substring", in: "fire bolt", want: "Fire Bolt", found: true},
		{name: "substring of candidate", in: "hand", want: "Mage Hand", found: true},
		{name: "candidate inside input", in: "Light (cantrip)", want: "Light", found: true},
		{name: "first candidate wins substring ties", in: "fire", want: "Fire Bolt", found: true},
		{name: "no match", in: "Wish", found: false},
		{name: "blank", in: "  ", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := rules.ResolveName(candidates, tc.in)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
