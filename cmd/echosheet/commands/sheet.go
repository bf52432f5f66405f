package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	sheetorchestrator "github.com/KirkDiggler/echosheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/echosheet/internal/repositories/inventory"
	"github.com/KirkDiggler/echosheet/internal/services/sheet"
)

const defaultInventoryFile = "inventory.json"

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Edit a saved character",
	Long: `Sheet commands act on a character the server already stores. CHARACTER may be the
numeric ID or a sheet URL such as http://localhost:5000/character/42.`,
}

var sheetChatCmd = &cobra.Command{
	Use:   "chat CHARACTER MESSAGE...",
	Short: "Talk to a character",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSheetChat,
}

var sheetDeleteCmd = &cobra.Command{
	Use:   "delete CHARACTER",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetDelete,
}

var personality echosheet.Personality

var sheetPersonalityCmd = &cobra.Command{
	Use:   "personality CHARACTER",
	Short: "Save the roleplay block",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetPersonality,
}

var (
	inventoryFile string
	strengthScore int
	itemWeight    string
	currency      echosheet.Currency
)

var sheetInventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Edit a character's inventory",
	Long: `Inventory commands load the stored inventory, apply the edit, store it again and save
the result on the server. The inventory lives in --file when given, in redis when one is
configured, and in ` + defaultInventoryFile + ` otherwise.`,
}

var inventoryShowCmd = &cobra.Command{
	Use:   "show CHARACTER",
	Short: "Show the inventory and weight",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryShow,
}

var inventoryAddCmd = &cobra.Command{
	Use:   "add CHARACTER ITEM",
	Short: "Carry a new item",
	Args:  cobra.ExactArgs(2),
	RunE:  runInventoryAdd,
}

var inventoryRemoveCmd = &cobra.Command{
	Use:   "remove CHARACTER ITEM",
	Short: "Drop an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runInventoryRemove,
}

var inventoryWeightCmd = &cobra.Command{
	Use:   "weight CHARACTER ITEM WEIGHT",
	Short: "Change an item's weight",
	Args:  cobra.ExactArgs(3),
	RunE:  runInventoryWeight,
}

var inventoryCurrencyCmd = &cobra.Command{
	Use:   "currency CHARACTER",
	Short: "Replace the coin counts",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventoryCurrency,
}

var sheetApplyPackCmd = &cobra.Command{
	Use:   "apply-pack CHARACTER PACK",
	Short: "Add an equipment pack",
	Args:  cobra.ExactArgs(2),
	RunE:  runSheetApplyPack,
}

var basicInfo echosheet.BasicInfo

var sheetBasicInfoCmd = &cobra.Command{
	Use:   "basic-info CHARACTER",
	Short: "Save alignment and experience",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetBasicInfo,
}

var physicalInfo echosheet.PhysicalInfo

var sheetPhysicalInfoCmd = &cobra.Command{
	Use:   "physical-info CHARACTER",
	Short: "Save the appearance block",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetPhysicalInfo,
}

var hitPoints echosheet.HitPoints

var sheetHitPointsCmd = &cobra.Command{
	Use:   "hit-points CHARACTER",
	Short: "Save hit points",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetHitPoints,
}

var (
	levelUpLevel int
	levelUpXP    int
)

var sheetLevelUpCmd = &cobra.Command{
	Use:   "level-up CHARACTER",
	Short: "Level a character up",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheetLevelUp,
}

func init() {
	pf := sheetPersonalityCmd.Flags()
	pf.StringVar(&personality.BackgroundStory, "story", "", "Background story")
	pf.StringVar(&personality.ShortTermGoals, "short-term-goals", "", "Short-term goals")
	pf.StringVar(&personality.LongTermGoals, "long-term-goals", "", "Long-term goals")
	pf.StringVar(&personality.PersonalGoals, "personal-goals", "", "Personal goals")
	pf.StringVar(&personality.PersonalityTraits, "traits", "", "Personality traits")
	pf.StringVar(&personality.Ideals, "ideals", "", "Ideals")
	pf.StringVar(&personality.Bonds, "bonds", "", "Bonds")
	pf.StringVar(&personality.Flaws, "flaws", "", "Flaws")
	pf.StringSliceVar(&personality.PersonalityTags, "tag", nil, "Personality tag (repeatable)")

	sheetInventoryCmd.PersistentFlags().StringVar(&inventoryFile, "file", "", "Inventory JSON file")
	sheetInventoryCmd.PersistentFlags().IntVar(&strengthScore, "strength", 0, "Strength score for carrying capacity")
	sheetApplyPackCmd.Flags().StringVar(&inventoryFile, "file", "", "Inventory JSON file")
	sheetApplyPackCmd.Flags().IntVar(&strengthScore, "strength", 0, "Strength score for carrying capacity")
	inventoryAddCmd.Flags().StringVar(&itemWeight, "weight", "", "Weight in pounds (defaults to 1)")
	cf := inventoryCurrencyCmd.Flags()
	cf.IntVar(&currency.CP, "cp", 0, "Copper pieces")
	cf.IntVar(&currency.SP, "sp", 0, "Silver pieces")
	cf.IntVar(&currency.EP, "ep", 0, "Electrum pieces")
	cf.IntVar(&currency.GP, "gp", 0, "Gold pieces")
	cf.IntVar(&currency.PP, "pp", 0, "Platinum pieces")
	sheetInventoryCmd.AddCommand(inventoryShowCmd, inventoryAddCmd, inventoryRemoveCmd, inventoryWeightCmd, inventoryCurrencyCmd)

	sheetBasicInfoCmd.Flags().StringVar(&basicInfo.Alignment, "alignment", "", "Alignment")
	sheetBasicInfoCmd.Flags().IntVar(&basicInfo.ExperiencePoints, "xp", 0, "Experience points")

	yf := sheetPhysicalInfoCmd.Flags()
	yf.StringVar(&physicalInfo.Age, "age", "", "Age")
	yf.StringVar(&physicalInfo.Height, "height", "", "Height")
	yf.StringVar(&physicalInfo.Weight, "weight", "", "Weight")
	yf.StringVar(&physicalInfo.Eyes, "eyes", "", "Eyes")
	yf.StringVar(&physicalInfo.Skin, "skin", "", "Skin")
	yf.StringVar(&physicalInfo.Hair, "hair", "", "Hair")

	sheetHitPointsCmd.Flags().IntVar(&hitPoints.Maximum, "max", 0, "Hit point maximum")
	sheetHitPointsCmd.Flags().IntVar(&hitPoints.Current, "current", 0, "Current hit points")
	sheetHitPointsCmd.Flags().IntVar(&hitPoints.Temporary, "temp", 0, "Temporary hit points")

	sheetLevelUpCmd.Flags().IntVar(&levelUpLevel, "level", 0, "Current level, checked before asking the server")
	sheetLevelUpCmd.Flags().IntVar(&levelUpXP, "xp", -1, "Current experience, checked before asking the server")

	sheetCmd.AddCommand(sheetChatCmd, sheetDeleteCmd, sheetPersonalityCmd, sheetInventoryCmd, sheetApplyPackCmd,
		sheetBasicInfoCmd, sheetPhysicalInfoCmd, sheetHitPointsCmd, sheetLevelUpCmd)
}

// withCharacter resolves the character reference before building the app
func withCharacter(ref string, fn func(ctx context.Context, a *app, id string) error) error {
	id, err := sheetorchestrator.ResolveCharacterID(ref)
	if err != nil {
		return err
	}
	return withApp(func(ctx context.Context, a *app) error {
		return fn(ctx, a, id)
	})
}

// flush sends queued saves before the process exits
func flush(ctx context.Context, a *app) error {
	resp, err := a.sheets.Flush(ctx, &sheet.FlushInput{})
	if err != nil {
		return fmt.Errorf("failed to save changes: %w", err)
	}
	if resp.Saved > 0 {
		printf("✅ Saved\n")
	}
	return nil
}

func runSheetChat(_ *cobra.Command, args []string) error {
	return withCharacter(args[0], func(ctx context.Context, a *app, id string) error {
		resp, err := a.sheets.Chat(ctx, &sheet.ChatInput{CharacterID: id, Message: strings.Join(args[1:], " ")})
		if err != nil {
			return fmt.Errorf("failed to chat: %w", err)
		}
		printf("%s\n", resp.Response)
		return nil
	})
}

func runSheetDelete(_ *cobra.Command, args []string) error {
	return withCharacter(args[0], func(ctx context.Context, a *app, id string) error {
		_, err := a.sheets.DeleteCharacter(ctx, &sheet.DeleteCharacterInput{CharacterID: id})
		if err != nil {
			return fmt.Errorf("failed to delete character: %w", err)
		}
		store, err := a.inventories()
		if err != nil {
			return err
		}
		if _, err := store.Delete(ctx, inventory.DeleteInput{CharacterID: id}); err != nil && !errors.IsNotFound(err) {
			printf("⚠️  Stored inventory was not removed: %v\n", err)
		}
		return nil
	})
}

func runSheetPersonality(_ *cobra.Command, args []string) error {
	return withCharacter(args[0], func(ctx context.Context, a *app, id string) error {
		if _, err := a.sheets.UpdatePersonality(ctx, &sheet.UpdatePersonalityInput{CharacterID: id, Personality: personality}); err != nil {
			return fmt.Errorf("failed to update personality: %w", err)
		}
		return flush(ctx, a)
	})
}

// loadInventory reads the stored inventory, treating a missing one as empty
func loadInventory(ctx context.Context, store inventory.Repository, id string) (echosheet.Inventory, error) {
	out, err := store.Get(ctx, inventory.GetInput{CharacterID: id})
	if errors.IsNotFound(err) {
		return echosheet.Inventory{}, nil
	}
	if err != nil {
		return echosheet.Inventory{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	return out.Inventory, nil
}

func storeInventory(ctx context.Context, store inventory.Repository, id string, inv echosheet.Inventory) error {
	if _, err := store.Update(ctx, inventory.UpdateInput{CharacterID: id, Inventory: inv}); err != nil {
		return fmt.Errorf("failed to store inventory: %w", err)
	}
	return nil
}

// editInventory loads the stored inventory, applies edit, stores the result and flushes
func editInventory(ref string, edit func(ctx context.Context, a *app, id string) (*sheet.InventoryOutput, error)) error {
	return withCharacter(ref, func(ctx context.Context, a *app, id string) error {
		store, err := a.inventories()
		if err != nil {
			return err
		}
		inv, err := loadInventory(ctx, store, id)
		if err != nil {
			return err
		}
		if _, err := a.sheets.LoadInventory(ctx, &sheet.LoadInventoryInput{
			CharacterID:   id,
			Inventory:     inv,
			StrengthScore: strengthScore,
		}); err != nil {
			return err
		}

		resp, err := edit(ctx, a, id)
		if err != nil {
			return err
		}
		printInventory(resp.View)
		if !resp.Changed {
			return nil
		}
		if err := storeInventory(ctx, store, id, resp.Inventory); err != nil {
			return err
		}
		return flush(ctx, a)
	})
}

func runInventoryShow(_ *cobra.Command, args []string) error {
	return editInventory(args[0], func(ctx context.Context, a *app, id string) (*sheet.InventoryOutput, error) {
		return a.sheets.GetInventory(ctx, &sheet.GetInventoryInput{CharacterID: id})
	})
}

func runInventoryAdd(_ *cobra.Command, args []string) error {
	return editInventory(args[0], func(ctx context.Context, a *app, id string) (*sheet.InventoryOutput, error) {
		resp, err := a.sheets.AddItem(ctx, &sheet.AddItemInput{CharacterID: id, Name: args[1], Weight: itemWeight})
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", args[1], err)
		}
		return resp, nil
	})
}

func runInventoryRemove(_ *cobra.Command, args []string) error {
	return editInventory(args[0], func(ctx context.Context, a *app, id string) (*sheet.InventoryOutput, error) {
		resp, err := a.sheets.RemoveItem(ctx, &sheet.RemoveItemInput{CharacterID: id, Name: args[1]})
		if err != nil {
			return nil, fmt.Errorf("failed to remove %s: %w", args[1], err)
		}
		return resp, nil
	})
}

func runInventoryWeight(_ *cobra.Command, args []string) error {
	return editInventory(args[0], func(ctx context.Context, a *app, id string) (*sheet.InventoryOutput, error) {
		resp, err := a.sheets.SetItemWeight(ctx, &sheet.SetItemWeightInput{CharacterID: id, Name: args[1], Weight: args[2]})
		if err != nil {
			return nil, fmt.Errorf("failed to set weight: %w", err)
		}
		if !resp.Changed {
			printf("⚠️  %q is not a weight, nothing changed\n", args[2])
		}
		return resp, nil
	})
}

func runInventoryCurrency(_ *cobra.Command, args []string) error {
	return editInventory(args[0], func(ctx context.Context, a *app, id string) (*sheet.InventoryOutput, error) {
		resp, err := a.sheets.SetCurrency(ctx, &sheet.SetCurrencyInput{CharacterID: id, Currency: currency})
		if err != nil {
			return nil, fmt.Errorf("failed to set currency: %w", err)
		}
		return resp, nil
	})
}

func runSheetApplyPack(_ *cobra.Command, args []string) error {
	return editInventory(args[0], func(ctx context.Context, a *app, id string) (*sheet.InventoryOutput, error) {
		resp, err := a.sheets.ApplyEquipmentPack(ctx, &sheet.ApplyEquipmentPackInput{CharacterID: id, PackName: args[1]})
		if err != nil {
			return nil, fmt.Errorf("failed to apply pack: %w", err)
		}
		if len(resp.ItemsAdded) > 0 {
			printf("Added: %s\n", strings.Join(resp.ItemsAdded, ", "))
		}
		// The server already holds the pack; a change only rewrites the local copy
		return &sheet.InventoryOutput{Inventory: resp.Inventory, View: resp.View, Changed: resp.Changed}, nil
	})
}

func runSheetBasicInfo(_ *cobra.Command, args []string) error {
	return withCharacter(args[0], func(ctx context.Context, a *app, id string) error {
		resp, err := a.sheets.UpdateBasicInfo(ctx, &sheet.UpdateBasicInfoInput{CharacterID: id, Info: basicInfo})
		if err != nil {
			return fmt.Errorf("failed to update basic info: %w", err)
		}
		printf("✅ Basic info saved\n")
		printf("Level: %d (proficiency %s)\n", resp.Level, sign(resp.ProficiencyBonus))
		if resp.AtMaxLevel {
			printf("Next level: maximum level reached\n")
		} else {
			printf("Next level at: %d XP\n", resp.NextLevelXP)
		}
		return nil
	})
}

func runSheetPhysicalInfo(_ *cobra.Command, args []string) error {
	return withCharacter(args[0], func(ctx context.Context, a *app, id string) error {
		if _, err := a.sheets.UpdatePhysicalInfo(ctx, &sheet.UpdatePhysicalInfoInput{CharacterID: id, Info: physicalInfo}); err != nil {
			return fmt.Errorf("failed to update physical info: %w", err)
		}
		printf("✅ Physical info saved\n")
		return nil
	})
}

func runSheetHitPoints(_ *cobra.Command, args []string) error {
	return withCharacter(args[0], func(ctx context.Context, a *app, id string) error {
		if _, err := a.sheets.UpdateHitPoints(ctx, &sheet.UpdateHitPointsInput{CharacterID: id, HitPoints: hitPoints}); err != nil {
			return fmt.Errorf("failed to update hit points: %w", err)
		}
		printf("✅ Hit points saved\n")
		return nil
	})
}

func runSheetLevelUp(_ *cobra.Command, args []string) error {
	input := &sheet.LevelUpInput{Level: levelUpLevel}
	if levelUpXP >= 0 {
		xp := levelUpXP
		input.ExperiencePoints = &xp
	}
	return withCharacter(args[0], func(ctx context.Context, a *app, id string) error {
		input.CharacterID = id
		resp, err := a.sheets.LevelUp(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to level up: %w", err)
		}
		printf("New level: %d\n", resp.NewLevel)
		return nil
	})
}
