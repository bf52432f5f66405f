package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/ruleset"
)

var ruleTables = []string{"races", "classes", "backgrounds", "skills", "alignments", "xp", "packs"}

var rulesCmd = &cobra.Command{
	Use:       "rules [TABLE]",
	Short:     "Print the character creation tables",
	Long:      `Print the built-in tables. TABLE is one of: ` + strings.Join(ruleTables, ", ") + `.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: ruleTables,
	RunE:      runRules,
}

func runRules(_ *cobra.Command, args []string) error {
	rs := rules.New(nil).Ruleset()
	tables := ruleTables
	if len(args) == 1 {
		tables = args
	}
	for i, table := range tables {
		if i > 0 {
			printf("\n")
		}
		if err := printTable(rs, table); err != nil {
			return err
		}
	}
	return nil
}

func printTable(rs *ruleset.Ruleset, table string) error {
	switch table {
	case "races":
		printf("Races\n")
		for _, r := range rs.Races {
			var bonuses []string
			for _, a := range echosheet.AllAbilities {
				if b := r.Bonuses[string(a)]; b != 0 {
					bonuses = append(bonuses, fmt.Sprintf("%s %s", a, sign(b)))
				}
			}
			printf("  %-12s speed %d  %s\n", r.Name, r.Speed, strings.Join(bonuses, ", "))
		}
	case "classes":
		printf("Classes\n")
		for _, c := range rs.Classes {
			casting := "no spells"
			if c.SpellcastingAbility != "" {
				casting = "casts with " + c.SpellcastingAbility
			}
			printf("  %-10s %s, %s, picks %d of: %s\n", c.Name, c.HitDie, casting, c.SkillChoices, strings.Join(c.Skills, ", "))
		}
	case "backgrounds":
		printf("Backgrounds\n")
		for _, b := range rs.Backgrounds {
			printf("  %-12s %s\n", b.Name, orDash(strings.Join(b.Skills, ", ")))
		}
	case "skills":
		printf("Skills\n")
		for _, s := range rs.Skills {
			printf("  %-16s %s\n", s.Name, s.Ability)
		}
	case "alignments":
		printf("Alignments\n")
		for _, a := range rs.Alignments {
			printf("  %s\n", a)
		}
	case "xp":
		printf("Experience\n")
		for i, xp := range rs.XPThresholds {
			printf("  level %2d  %6d XP  proficiency %s\n", i+1, xp, sign(rules.ProficiencyBonus(i+1)))
		}
	case "packs":
		printf("Equipment packs\n")
		for _, p := range rs.EquipmentPacks {
			printf("  %s: %s\n", p.Name, p.Description)
			names := make([]string, len(p.Items))
			for i, item := range p.Items {
				names[i] = item.Name
			}
			printf("    %s\n", strings.Join(names, ", "))
		}
	default:
		return fmt.Errorf("unknown table %q", table)
	}
	return nil
}
