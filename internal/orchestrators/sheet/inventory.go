package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/echosheet/internal/engine/rules"
	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
	"github.com/KirkDiggler/echosheet/internal/pkg/notify"
	"github.com/KirkDiggler/echosheet/internal/ruleset"
	"github.com/KirkDiggler/echosheet/internal/services/sheet"
)

// LoadInventory replaces the local inventory of a character. Nothing is saved.
func (o *Orchestrator) LoadInventory(_ context.Context, input *sheet.LoadInventoryInput) (*sheet.InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}

	state := &characterState{
		inventory: input.Inventory.Clone(),
		strength:  input.StrengthScore,
	}
	o.mu.Lock()
	o.characters[input.CharacterID] = state
	o.mu.Unlock()

	return render(state, false), nil
}

// GetInventory returns the local inventory
func (o *Orchestrator) GetInventory(_ context.Context, input *sheet.GetInventoryInput) (*sheet.InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	state, err := o.stateLocked(input.CharacterID)
	if err != nil {
		return nil, err
	}
	return render(state, false), nil
}

// AddItem carries a new item. An unparseable weight is rejected.
func (o *Orchestrator) AddItem(ctx context.Context, input *sheet.AddItemInput) (*sheet.InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	weight := 0.0
	if input.Weight != "" {
		w, ok := rules.ParseWeight(input.Weight)
		if !ok {
			return nil, errors.InvalidArgumentf("weight %q must be a non-negative number", input.Weight)
		}
		weight = w
	}

	out, err := o.editInventory(ctx, input.CharacterID, func(inv echosheet.Inventory) (echosheet.Inventory, bool, error) {
		out, err := rules.AddItem(inv, input.Name, weight)
		return out, err == nil, err
	})
	if errors.IsAlreadyExists(err) {
		o.notify(ctx, notify.LevelWarning, errors.GetMessage(err))
	}
	return out, err
}

// RemoveItem drops an item by name ignoring case
func (o *Orchestrator) RemoveItem(ctx context.Context, input *sheet.RemoveItemInput) (*sheet.InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.editInventory(ctx, input.CharacterID, func(inv echosheet.Inventory) (echosheet.Inventory, bool, error) {
		out, err := rules.RemoveItem(inv, input.Name)
		return out, err == nil, err
	})
}

// SetItemWeight edits one weight. Empty or invalid input is ignored and
// nothing is queued.
func (o *Orchestrator) SetItemWeight(ctx context.Context, input *sheet.SetItemWeightInput) (*sheet.InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.editInventory(ctx, input.CharacterID, func(inv echosheet.Inventory) (echosheet.Inventory, bool, error) {
		return rules.SetItemWeight(inv, input.Name, input.Weight)
	})
}

// SetCurrency replaces the coin counts
func (o *Orchestrator) SetCurrency(ctx context.Context, input *sheet.SetCurrencyInput) (*sheet.InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.editInventory(ctx, input.CharacterID, func(inv echosheet.Inventory) (echosheet.Inventory, bool, error) {
		out, err := rules.SetCurrency(inv, input.Currency)
		if err != nil {
			return inv, false, err
		}
		return out, out.Currency != inv.Currency, nil
	})
}

type inventoryEdit func(inv echosheet.Inventory) (echosheet.Inventory, bool, error)

// editInventory applies edit to the local inventory and queues a save when it
// changed anything
func (o *Orchestrator) editInventory(_ context.Context, id string, edit inventoryEdit) (*sheet.InventoryOutput, error) {
	o.mu.Lock()
	state, err := o.stateLocked(id)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	next, changed, err := edit(state.inventory)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	if changed {
		state.inventory = next
	}
	out := render(state, changed)
	o.mu.Unlock()

	if changed {
		o.scheduleInventorySave(id)
	}
	return out, nil
}

// scheduleInventorySave queues a save that sends whatever the inventory holds
// when the timer fires
func (o *Orchestrator) scheduleInventorySave(id string) {
	o.debouncer.Schedule(inventoryKey(id), func(ctx context.Context) error {
		o.mu.Lock()
		state, ok := o.characters[id]
		var inv echosheet.Inventory
		if ok {
			inv = state.inventory.Clone()
		}
		o.mu.Unlock()
		if !ok {
			return nil
		}
		slog.Debug("saving inventory", "character_id", id, "items", len(inv.Items))
		return o.backend.UpdateInventory(ctx, id, &inv)
	})
}

// ApplyEquipmentPack asks the backend to add a pack and merges the result into
// the local inventory. Items already carried are not duplicated.
func (o *Orchestrator) ApplyEquipmentPack(ctx context.Context, input *sheet.ApplyEquipmentPackInput) (*sheet.ApplyEquipmentPackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.CharacterID); err != nil {
		return nil, err
	}

	rs := o.engine.Ruleset()
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("pack_name", input.PackName, vb)
	if input.PackName != "" {
		errors.ValidateEnum("pack_name", input.PackName, rs.PackNames(), vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	_, err := o.stateLocked(input.CharacterID)
	o.mu.Unlock()
	if err != nil {
		return nil, err
	}

	result, err := o.backend.ApplyPack(ctx, input.CharacterID, input.PackName)
	if err != nil {
		o.notify(ctx, notify.LevelError, "Failed to apply equipment pack: "+errors.GetMessage(err))
		return nil, err
	}

	if result == nil {
		result = &echosheet.PackResult{}
	}
	if result.PackName == "" {
		result.PackName = input.PackName
	}
	items, weights, coins := packContents(result, rs.Pack)

	o.mu.Lock()
	state, err := o.stateLocked(input.CharacterID)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}
	merged, added := rules.MergePack(state.inventory, items, weights, coins)
	state.inventory = merged
	out := render(state, len(added) > 0 || coins != (echosheet.Currency{}))
	o.mu.Unlock()

	slog.Info("applied equipment pack", "character_id", input.CharacterID, "pack", input.PackName, "added", len(added))
	o.notify(ctx, notify.LevelSuccess, "Added "+input.PackName)
	return &sheet.ApplyEquipmentPackOutput{
		Inventory:  out.Inventory,
		View:       out.View,
		ItemsAdded: added,
		Result:     result,
		Changed:    out.Changed,
	}, nil
}

// packContents prefers what the backend reports and falls back to the local
// pack table for anything it left out
func packContents(result *echosheet.PackResult, lookup func(string) (*ruleset.EquipmentPack, bool)) ([]string, map[string]float64, echosheet.Currency) {
	items := result.ItemsAdded
	weights := result.ItemWeights
	coins := result.CurrencyAdded

	pack, ok := lookup(result.PackName)
	if !ok {
		return items, weights, coins
	}
	if len(items) == 0 {
		for _, item := range pack.Items {
			items = append(items, item.Name)
		}
	}
	if len(weights) == 0 {
		weights = make(map[string]float64, len(pack.Items))
		for _, item := range pack.Items {
			weights[item.Name] = item.Weight
		}
	}
	if coins == (echosheet.Currency{}) {
		coins = echosheet.FromMap(pack.Currency)
	}
	return items, weights, coins
}

func (o *Orchestrator) stateLocked(id string) (*characterState, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	state, ok := o.characters[id]
	if !ok {
		return nil, errors.FailedPreconditionf("inventory for character %s is not loaded", id)
	}
	return state, nil
}

func render(state *characterState, changed bool) *sheet.InventoryOutput {
	inv := state.inventory.Clone()
	return &sheet.InventoryOutput{
		Inventory: inv,
		View:      rules.RenderInventory(inv, rules.CarryingCapacity(state.strength)),
		Changed:   changed,
	}
}
