package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	characterorchestrator "github.com/KirkDiggler/echosheet/internal/orchestrators/character"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
)

// out receives everything the commands print
var out io.Writer = os.Stdout

func printf(format string, args ...any) {
	_, _ = fmt.Fprintf(out, format, args...) // nolint:errcheck // terminal output
}

// ReportError prints a failed command to w. When the server cannot be
// reached the configured address is printed as a hint.
func ReportError(w io.Writer, err error) {
	slog.Debug("command failed", "code", errors.GetCode(err), "meta", errors.GetMeta(err))
	_, _ = fmt.Fprintf(w, "❌ %v\n", err) // nolint:errcheck // terminal output
	if errors.IsUnavailable(err) {
		_, _ = fmt.Fprintf(w, "   Is the EchoSheet server running at %s?\n", settings().Backend.BaseURL) // nolint:errcheck // terminal output
	}
}

var notificationMarks = map[notify.Level]string{
	notify.LevelInfo:    "ℹ️ ",
	notify.LevelSuccess: "✅",
	notify.LevelWarning: "⚠️ ",
	notify.LevelError:   "❌",
}

func printNotification(_ context.Context, n notify.Notification) {
	printf("%s %s\n", notificationMarks[n.Level], n.Message)
}

func sign(n int) string {
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}

func check(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

func printDraft(d *echosheet.CharacterDraft) {
	printf("Draft ID: %s\n", d.ID)
	printf("Name: %s\n", orDash(d.Name))
	printf("Race: %s\n", orDash(d.Race))
	printf("Class: %s\n", orDash(d.Class))
	printf("Level: %d\n", d.Level)
	printf("Background: %s\n", orDash(d.Background))
	printf("Completion: %d%%\n", d.Progress.CompletionPercentage)
	if d.Suggestion != nil {
		printf("Suggestion: staged (%s)\n", orDash(characterorchestrator.PlaystyleLabel(d.Suggestion.Playstyle)))
	}
	if d.PendingAutofill != "" {
		printf("Autofill: in progress\n")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printAttributes(v rules.AttributeView) {
	printf("\nAttributes (%d points remaining) %s\n", v.Remaining, check(v.Valid))
	for _, row := range v.Rows {
		printf("  %-3s base %2d  racial %s  total %2d  mod %s  cost %d\n",
			row.Ability, row.Base, sign(row.Racial), row.Total, sign(row.Modifier), row.Cost)
	}
}

func printSkills(v rules.SkillView) {
	printf("\nSkills (%d of %d picks remaining) %s\n", v.Remaining, v.Quota, check(v.Valid))
	for _, item := range v.Items {
		mark := "[ ]"
		switch {
		case item.Locked:
			mark = "[🔒]"
		case item.Selected:
			mark = "[x]"
		case item.Disabled:
			mark = "[-]"
		}
		printf("  %s %s (%s, %s)\n", mark, item.Name, item.Ability, item.Source)
	}
}

func printSpells(v rules.SpellView) {
	if v.Hidden {
		return
	}
	printf("\nSpells (ability %s) %s\n", v.Ability, check(v.Valid))
	printf("  Cantrips, %d remaining\n", v.CantripsRemaining)
	printSpellItems(v.Cantrips)
	printf("  Spells, %d remaining\n", v.SpellsRemaining)
	printSpellItems(v.Spells)
}

func printSpellItems(items []rules.SpellItem) {
	for _, item := range items {
		mark := "[ ]"
		if item.Selected {
			mark = "[x]"
		} else if item.Disabled {
			mark = "[-]"
		}
		printf("    %s %s\n", mark, item.Spell.Name)
	}
}

func printSpell(s *echosheet.Spell) {
	printf("%s\n", s.Name)
	if s.Level == 0 {
		printf("  %s cantrip\n", orDash(s.School))
	} else {
		printf("  Level %d %s\n", s.Level, orDash(s.School))
	}
	printf("  Casting time: %s\n", orDash(s.CastingTime))
	printf("  Range: %s\n", orDash(s.Range))
	printf("  Components: %s\n", orDash(s.Components))
	printf("  Duration: %s\n", orDash(s.Duration))
	if s.Description != "" {
		printf("\n%s\n", s.Description)
	}
	if s.Source != "" {
		printf("\nSource: %s\n", s.Source)
	}
}

func printSuggestion(s *echosheet.AutofillSuggestion) {
	if s == nil {
		return
	}
	printf("\nSuggested build")
	if s.Playstyle != "" {
		printf(" (%s)", characterorchestrator.PlaystyleLabel(s.Playstyle))
	}
	printf("\n")
	for _, row := range s.Attributes {
		printf("  %-3s %2d %s  mod %s\n", row.Ability, row.Base, sign(row.Racial), sign(row.Modifier))
	}
	if len(s.Skills) > 0 {
		printf("  Skills: %s\n", strings.Join(s.Skills, ", "))
	}
	if len(s.Spells) > 0 {
		printf("  Spells: %s\n", strings.Join(s.Spells, ", "))
	}
	if len(s.AvailablePlaystyles) > 0 {
		labels := make([]string, len(s.AvailablePlaystyles))
		for i, p := range s.AvailablePlaystyles {
			labels[i] = fmt.Sprintf("%s (%s)", characterorchestrator.PlaystyleLabel(p), p)
		}
		printf("  Other playstyles: %s\n", strings.Join(labels, ", "))
	}
}

func printValidation(valid bool, problems map[string][]string) {
	if valid {
		printf("✅ Draft is ready to submit\n")
		return
	}
	printf("❌ Draft has problems:\n")
	fields := make([]string, 0, len(problems))
	for field := range problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		for _, msg := range problems[field] {
			printf("  - %s: %s\n", field, msg)
		}
	}
}

var weightBanners = map[echosheet.WeightStatus]string{
	echosheet.WeightStatusOK:         "✅",
	echosheet.WeightStatusCaution:    "⚠️  Heavy load",
	echosheet.WeightStatusOverloaded: "❌ Overloaded",
}

func printInventory(v rules.InventoryView) {
	printf("Items:\n")
	if len(v.Items) == 0 {
		printf("  (none)\n")
	}
	for _, item := range v.Items {
		printf("  - %s (%g lb)\n", item.Name, item.Weight)
	}
	c := v.Currency
	printf("Currency: %d pp, %d gp, %d ep, %d sp, %d cp (worth %d cp)\n", c.PP, c.GP, c.EP, c.SP, c.CP, v.TotalCopper)
	printf("Weight: %.2f / %.0f lb %s\n", v.TotalWeight, v.Capacity, weightBanners[v.Status])
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	printf("\n⚠️  Warnings:\n")
	for _, w := range warnings {
		printf("  - %s\n", w)
	}
}
