package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/echosheet/internal/clients/backend"
	"github.com/KirkDiggler/echosheet/internal/clients/compendium"
	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	characterorchestrator "github.com/KirkDiggler/echosheet/internal/orchestrators/character"
)

var spellsCmd = &cobra.Command{
	Use:   "spells",
	Short: "Look up class spell lists without a draft",
}

var spellsListCmd = &cobra.Command{
	Use:   "list CLASS",
	Short: "List the spells a class may choose",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpellsList,
}

var (
	validateCantrips []string
	validateSpells   []string
)

var spellsValidateCmd = &cobra.Command{
	Use:   "validate CLASS",
	Short: "Ask the server to check a selection",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpellsValidate,
}

var spellsSuggestCmd = &cobra.Command{
	Use:   "suggest CLASS",
	Short: "Show the server's recommended selection",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpellsSuggest,
}

var spellsInfoCmd = &cobra.Command{
	Use:   "info NAME",
	Short: "Show spell details",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSpellsInfo,
}

var playstylesCmd = &cobra.Command{
	Use:   "playstyles CLASS",
	Short: "List the autofill playstyles of a class",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaystyles,
}

func init() {
	spellsValidateCmd.Flags().StringSliceVar(&validateCantrips, "cantrip", nil, "Cantrip to include (repeatable)")
	spellsValidateCmd.Flags().StringSliceVar(&validateSpells, "spell", nil, "Spell to include (repeatable)")

	spellsCmd.AddCommand(spellsListCmd, spellsValidateCmd, spellsSuggestCmd, spellsInfoCmd)
}

func runSpellsList(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		book, err := a.backend.GetSpellbook(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get spells: %w", err)
		}
		if !book.Rules.IsCaster() {
			printf("%s does not cast spells\n", args[0])
			return nil
		}
		printSpells(rules.RenderSpells(echosheet.SpellSelection{}, book))
		return nil
	})
}

func runSpellsValidate(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.backend.ValidateSpells(ctx, &backend.ValidateSpellsRequest{
			Class:    args[0],
			Cantrips: append([]string{}, validateCantrips...),
			Spells:   append([]string{}, validateSpells...),
		})
		if err != nil {
			return fmt.Errorf("failed to validate spells: %w", err)
		}
		if resp.Valid {
			printf("✅ Selection is valid\n")
		} else {
			printf("❌ Selection is invalid\n")
		}
		for _, msg := range resp.Errors {
			printf("  ❌ %s\n", msg)
		}
		for _, msg := range resp.Warnings {
			printf("  ⚠️  %s\n", msg)
		}
		return nil
	})
}

func runSpellsSuggest(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.backend.SuggestSpells(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to suggest spells: %w", err)
		}
		printf("Cantrips: %s\n", orDash(strings.Join(resp.Cantrips, ", ")))
		printf("Spells: %s\n", orDash(strings.Join(resp.Spells, ", ")))
		return nil
	})
}

func runSpellsInfo(_ *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	return withApp(func(ctx context.Context, a *app) error {
		spell, err := a.backend.GetSpell(ctx, name)
		if errors.IsNotFound(err) && a.compendium != nil {
			spell, err = a.compendium.GetSpell(ctx, name)
		}
		if err != nil {
			return fmt.Errorf("failed to get spell: %w", err)
		}
		enriched := compendium.Enrich(ctx, a.compendium, *spell)
		printSpell(&enriched)
		return nil
	})
}

func runPlaystyles(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		styles, err := a.backend.ListPlaystyles(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to list playstyles: %w", err)
		}
		if len(styles) == 0 {
			printf("No playstyles for %s\n", args[0])
			return nil
		}
		for _, p := range styles {
			printf("%s (%s)\n", characterorchestrator.PlaystyleLabel(p.Name), p.Name)
			if p.Description != "" {
				printf("  %s\n", p.Description)
			}
			if len(p.Skills) > 0 {
				printf("  Skills: %s\n", strings.Join(p.Skills, ", "))
			}
		}
		printf("\n💡 Use one with: echosheet draft autofill DRAFT_ID --playstyle NAME\n")
		return nil
	})
}
