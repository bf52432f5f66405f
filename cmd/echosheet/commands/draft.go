package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	draftrepo "github.com/KirkDiggler/echosheet/internal/repositories/character_draft"
	"github.com/KirkDiggler/echosheet/internal/services/character"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Build a character draft",
	Long: `Draft commands create and edit character drafts. Drafts live in Redis when
--redis or ECHOSHEET_REDIS_ADDR is set, otherwise only for the current command.`,
}

var (
	newName       string
	newRace       string
	newClass      string
	newLevel      int
	newBackground string
	newAutofill   bool
	newPlaystyle  string
	newApply      bool
	newSubmit     bool
)

var draftNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new draft",
	Long: `Create a new draft. With --autofill, --apply and --submit the whole build runs in one
command, which is the way to use --ephemeral.`,
	Args: cobra.NoArgs,
	RunE: runDraftNew,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the drafts of the session",
	Args:  cobra.NoArgs,
	RunE:  runDraftList,
}

var draftShowCmd = &cobra.Command{
	Use:   "show DRAFT_ID",
	Short: "Show every panel of a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftShow,
}

var (
	setName       string
	setRace       string
	setClass      string
	setLevel      int
	setBackground string
)

var draftSetCmd = &cobra.Command{
	Use:   "set DRAFT_ID",
	Short: "Change name, race, class, level or background",
	Long: `Change identity fields of a draft. Changing race, class, level or background
discards a staged autofill suggestion.`,
	Args: cobra.ExactArgs(1),
	RunE: runDraftSet,
}

var attrDelta int

var draftAttrCmd = &cobra.Command{
	Use:   "attr DRAFT_ID ABILITY",
	Short: "Raise or lower an ability base score by point-buy",
	Args:  cobra.ExactArgs(2),
	RunE:  runDraftAttr,
}

var draftSkillCmd = &cobra.Command{
	Use:   "skill DRAFT_ID SKILL",
	Short: "Pick or unpick a class skill",
	Args:  cobra.ExactArgs(2),
	RunE:  runDraftSkill,
}

var spellsForce bool

var draftSpellsCmd = &cobra.Command{
	Use:   "spells DRAFT_ID",
	Short: "Load and show the class spell list",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftSpells,
}

var spellCantrip bool

var draftSpellCmd = &cobra.Command{
	Use:   "spell DRAFT_ID NAME",
	Short: "Pick or unpick a spell (--cantrip for cantrips)",
	Args:  cobra.ExactArgs(2),
	RunE:  runDraftSpell,
}

var draftInfoCmd = &cobra.Command{
	Use:   "info DRAFT_ID SPELL",
	Short: "Show spell details",
	Args:  cobra.ExactArgs(2),
	RunE:  runDraftInfo,
}

var autofillPlaystyle string

var draftAutofillCmd = &cobra.Command{
	Use:   "autofill DRAFT_ID",
	Short: "Ask the server for a suggested build",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftAutofill,
}

var applyDismiss bool

var draftApplyCmd = &cobra.Command{
	Use:   "apply DRAFT_ID",
	Short: "Apply the staged suggestion (--dismiss to discard it)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftApply,
}

var draftValidateCmd = &cobra.Command{
	Use:   "validate DRAFT_ID",
	Short: "Check a draft is ready to submit",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftValidate,
}

var submitKeep bool

var draftSubmitCmd = &cobra.Command{
	Use:   "submit DRAFT_ID",
	Short: "Create the character on the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftSubmit,
}

var draftDeleteCmd = &cobra.Command{
	Use:   "delete DRAFT_ID",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraftDelete,
}

var repairFix bool

var draftRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find stored drafts that no longer decode",
	Long: `Scan Redis for draft entries that cannot be read back, for example after a format
change. Nothing is removed unless --fix is given.`,
	Args: cobra.NoArgs,
	RunE: runDraftRepair,
}

func init() {
	draftNewCmd.Flags().StringVar(&newName, "name", "", "Character name")
	draftNewCmd.Flags().StringVar(&newRace, "race", "", "Race")
	draftNewCmd.Flags().StringVar(&newClass, "class", "", "Class")
	draftNewCmd.Flags().IntVar(&newLevel, "level", 1, "Level")
	draftNewCmd.Flags().StringVar(&newBackground, "background", "", "Background")
	draftNewCmd.Flags().BoolVar(&newAutofill, "autofill", false, "Request a suggestion after creating")
	draftNewCmd.Flags().StringVar(&newPlaystyle, "playstyle", "", "Playstyle for --autofill")
	draftNewCmd.Flags().BoolVar(&newApply, "apply", false, "Apply the suggestion (implies --autofill)")
	draftNewCmd.Flags().BoolVar(&newSubmit, "submit", false, "Submit the finished draft")

	draftSetCmd.Flags().StringVar(&setName, "name", "", "Character name")
	draftSetCmd.Flags().StringVar(&setRace, "race", "", "Race")
	draftSetCmd.Flags().StringVar(&setClass, "class", "", "Class")
	draftSetCmd.Flags().IntVar(&setLevel, "level", 0, "Level")
	draftSetCmd.Flags().StringVar(&setBackground, "background", "", "Background")

	draftAttrCmd.Flags().IntVar(&attrDelta, "delta", 1, "Points to add, negative to lower (use --delta=-1)")
	draftSpellsCmd.Flags().BoolVar(&spellsForce, "force", false, "Refetch even when already loaded")
	draftSpellCmd.Flags().BoolVar(&spellCantrip, "cantrip", false, "Toggle a cantrip instead of a spell")
	draftAutofillCmd.Flags().StringVar(&autofillPlaystyle, "playstyle", "", "Playstyle to generate for")
	draftApplyCmd.Flags().BoolVar(&applyDismiss, "dismiss", false, "Discard the suggestion instead")
	draftSubmitCmd.Flags().BoolVar(&submitKeep, "keep", false, "Keep the draft after submitting")
	draftRepairCmd.Flags().BoolVar(&repairFix, "fix", false, "Delete the entries that fail to decode")

	draftCmd.AddCommand(draftNewCmd, draftListCmd, draftShowCmd, draftSetCmd, draftAttrCmd, draftSkillCmd,
		draftSpellsCmd, draftSpellCmd, draftInfoCmd, draftAutofillCmd, draftApplyCmd, draftValidateCmd,
		draftSubmitCmd, draftDeleteCmd, draftRepairCmd)
}

func runDraftNew(_ *cobra.Command, _ []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.characters.CreateDraft(ctx, &character.CreateDraftInput{
			SessionID:  a.session,
			Name:       newName,
			Race:       newRace,
			Class:      newClass,
			Level:      newLevel,
			Background: newBackground,
		})
		if err != nil {
			return fmt.Errorf("failed to create draft: %w", err)
		}
		draft := resp.Draft
		printf("✅ Draft created!\n\n")
		printDraft(draft)

		if newAutofill || newApply {
			if err := autofill(ctx, a, draft.ID, newPlaystyle); err != nil {
				return err
			}
		}
		if newApply {
			if err := apply(ctx, a, draft.ID); err != nil {
				return err
			}
		}
		if newSubmit {
			return submit(ctx, a, draft.ID, false)
		}

		if !newApply {
			printf("\n💡 Next steps:\n")
			printf("1. Autofill: echosheet draft autofill %s\n", draft.ID)
			printf("2. Or adjust by hand: echosheet draft attr %s STR --delta 1\n", draft.ID)
			printf("3. Submit: echosheet draft submit %s\n", draft.ID)
		}
		return nil
	})
}

func runDraftList(_ *cobra.Command, _ []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.characters.ListDrafts(ctx, &character.ListDraftsInput{SessionID: a.session})
		if err != nil {
			return fmt.Errorf("failed to list drafts: %w", err)
		}
		if len(resp.Drafts) == 0 {
			printf("No drafts in session %s\n", a.session)
			return nil
		}
		for _, d := range resp.Drafts {
			printf("%s  %-20s %s %s L%d (%d%%)\n", d.ID, orDash(d.Name), orDash(d.Race), orDash(d.Class),
				d.Level, d.Progress.CompletionPercentage)
		}
		return nil
	})
}

func runDraftShow(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		return show(ctx, a, args[0])
	})
}

func show(ctx context.Context, a *app, draftID string) error {
	resp, err := a.characters.View(ctx, &character.ViewInput{DraftID: draftID})
	if err != nil {
		return fmt.Errorf("failed to get draft: %w", err)
	}
	printDraft(resp.Draft)
	printAttributes(resp.Attributes)
	printSkills(resp.Skills)
	printSpells(resp.Spells)
	printSuggestion(resp.Draft.Suggestion)
	printf("\n")
	printValidation(resp.Validation.IsValid, resp.Validation.Errors)
	return nil
}

func runDraftSet(cmd *cobra.Command, args []string) error {
	id := args[0]
	flags := cmd.Flags()
	if flags.NFlag() == 0 {
		return fmt.Errorf("nothing to change, pass at least one of --name, --race, --class, --level, --background")
	}

	return withApp(func(ctx context.Context, a *app) error {
		var (
			last     *character.UpdateDraftOutput
			cleared  bool
			warnings []string
		)
		record := func(what string, resp *character.UpdateDraftOutput, err error) error {
			if err != nil {
				return fmt.Errorf("failed to update %s: %w", what, err)
			}
			last = resp
			cleared = cleared || resp.SuggestionCleared
			warnings = append(warnings, resp.Warnings...)
			return nil
		}

		if flags.Changed("name") {
			resp, err := a.characters.UpdateName(ctx, &character.UpdateNameInput{DraftID: id, Name: setName})
			if err := record("name", resp, err); err != nil {
				return err
			}
		}
		if flags.Changed("race") {
			resp, err := a.characters.UpdateRace(ctx, &character.UpdateRaceInput{DraftID: id, Race: setRace})
			if err := record("race", resp, err); err != nil {
				return err
			}
		}
		if flags.Changed("class") {
			resp, err := a.characters.UpdateClass(ctx, &character.UpdateClassInput{DraftID: id, Class: setClass})
			if err := record("class", resp, err); err != nil {
				return err
			}
		}
		if flags.Changed("level") {
			resp, err := a.characters.UpdateLevel(ctx, &character.UpdateLevelInput{DraftID: id, Level: setLevel})
			if err := record("level", resp, err); err != nil {
				return err
			}
		}
		if flags.Changed("background") {
			resp, err := a.characters.UpdateBackground(ctx, &character.UpdateBackgroundInput{DraftID: id, Background: setBackground})
			if err := record("background", resp, err); err != nil {
				return err
			}
		}
		if last == nil {
			return nil
		}

		printf("✅ Draft updated!\n\n")
		printDraft(last.Draft)
		if cleared {
			printf("\nℹ️  The staged suggestion was discarded. Run autofill again for a fresh one.\n")
		}
		printWarnings(warnings)
		return nil
	})
}

func runDraftAttr(_ *cobra.Command, args []string) error {
	ability, ok := echosheet.ParseAbility(args[1])
	if !ok {
		return fmt.Errorf("unknown ability %q", args[1])
	}
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.characters.ChangeAttribute(ctx, &character.ChangeAttributeInput{
			DraftID: args[0],
			Ability: ability,
			Delta:   attrDelta,
		})
		if err != nil {
			return fmt.Errorf("failed to change %s: %w", ability, err)
		}
		printAttributes(resp.View)
		return nil
	})
}

func runDraftSkill(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.characters.ToggleSkill(ctx, &character.ToggleSkillInput{DraftID: args[0], Skill: args[1]})
		if err != nil {
			return fmt.Errorf("failed to toggle %s: %w", args[1], err)
		}
		printSkills(resp.View)
		return nil
	})
}

func runDraftSpells(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		if _, err := a.characters.LoadSpellbook(ctx, &character.LoadSpellbookInput{DraftID: args[0], Force: spellsForce}); err != nil {
			return fmt.Errorf("failed to load spells: %w", err)
		}
		resp, err := a.characters.View(ctx, &character.ViewInput{DraftID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to get draft: %w", err)
		}
		if resp.Spells.Hidden {
			printf("%s does not cast spells at level %d\n", resp.Draft.Class, resp.Draft.Level)
			return nil
		}
		printSpells(resp.Spells)
		return nil
	})
}

func runDraftSpell(_ *cobra.Command, args []string) error {
	kind := echosheet.SpellKindSpell
	if spellCantrip {
		kind = echosheet.SpellKindCantrip
	}
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.characters.ToggleSpell(ctx, &character.ToggleSpellInput{DraftID: args[0], Kind: kind, Name: args[1]})
		if err != nil {
			return fmt.Errorf("failed to toggle %s: %w", args[1], err)
		}
		printSpells(resp.View)
		return nil
	})
}

func runDraftInfo(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.characters.GetSpellInfo(ctx, &character.GetSpellInfoInput{DraftID: args[0], Name: args[1]})
		if err != nil {
			return fmt.Errorf("failed to get spell info: %w", err)
		}
		printSpell(resp.Spell)
		return nil
	})
}

func runDraftAutofill(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		return autofill(ctx, a, args[0], autofillPlaystyle)
	})
}

func autofill(ctx context.Context, a *app, draftID, playstyle string) error {
	input := &character.AutofillInput{DraftID: draftID, Playstyle: playstyle}
	call := a.characters.Autofill
	if playstyle != "" {
		call = a.characters.RegenerateWithPlaystyle
	}
	resp, err := call(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to autofill: %w", err)
	}
	printSuggestion(resp.Suggestion)
	return nil
}

func runDraftApply(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		if applyDismiss {
			if _, err := a.characters.DismissSuggestion(ctx, &character.DismissSuggestionInput{DraftID: args[0]}); err != nil {
				return fmt.Errorf("failed to dismiss suggestion: %w", err)
			}
			printf("✅ Suggestion dismissed\n")
			return nil
		}
		if err := apply(ctx, a, args[0]); err != nil {
			return err
		}
		return show(ctx, a, args[0])
	})
}

func apply(ctx context.Context, a *app, draftID string) error {
	resp, err := a.characters.ApplySuggestion(ctx, &character.ApplySuggestionInput{DraftID: draftID})
	if err != nil {
		return fmt.Errorf("failed to apply suggestion: %w", err)
	}
	if len(resp.Unmatched) > 0 {
		printf("⚠️  Not applied: %s\n", strings.Join(resp.Unmatched, ", "))
	}
	return nil
}

func runDraftValidate(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.characters.ValidateDraft(ctx, &character.ValidateDraftInput{DraftID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to validate draft: %w", err)
		}
		printValidation(resp.IsValid, resp.Errors)
		return nil
	})
}

func runDraftSubmit(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		return submit(ctx, a, args[0], submitKeep)
	})
}

func submit(ctx context.Context, a *app, draftID string, keep bool) error {
	resp, err := a.characters.Submit(ctx, &character.SubmitInput{DraftID: draftID, KeepDraft: keep})
	if err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	printf("Character ID: %s\n", resp.CharacterID)
	printf("Sheet: %s\n", strings.TrimRight(settings().Backend.BaseURL, "/")+resp.Redirect)
	return nil
}

func runDraftDelete(_ *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		resp, err := a.characters.DeleteDraft(ctx, &character.DeleteDraftInput{DraftID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to delete draft: %w", err)
		}
		printf("✅ %s\n", resp.Message)
		return nil
	})
}

func runDraftRepair(_ *cobra.Command, _ []string) error {
	return withApp(func(ctx context.Context, a *app) error {
		if a.redis == nil {
			return fmt.Errorf("draft repair needs redis, set --redis or ECHOSHEET_REDIS_ADDR")
		}
		result, err := draftrepo.ScanCorrupt(ctx, a.redis)
		if err != nil {
			return fmt.Errorf("failed to scan drafts: %w", err)
		}
		printf("Checked %d drafts, found %d corrupted\n", result.Checked, len(result.Corrupt))
		if len(result.Corrupt) == 0 {
			printf("✅ No corrupted drafts\n")
			return nil
		}
		for _, key := range result.Corrupt {
			printf("  ❌ %s\n", key)
		}
		if !repairFix {
			printf("\n💡 Run again with --fix to delete them\n")
			return nil
		}
		n, err := draftrepo.DeleteKeys(ctx, a.redis, result.Corrupt)
		if err != nil {
			return fmt.Errorf("failed to delete drafts: %w", err)
		}
		printf("✅ Deleted %d entries\n", n)
		return nil
	})
}
