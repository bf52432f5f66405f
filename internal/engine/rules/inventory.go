package rules

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

// Weight status thresholds as fractions of capacity
const (
	cautionThreshold = 0.8
	overloadedAbove  = 1.0
)

// AddItem appends an item. A zero weight becomes the default weight.
func AddItem(inv echosheet.Inventory, name string, weight float64) (echosheet.Inventory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return inv, errors.InvalidArgument("item name is required")
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return inv, errors.InvalidArgumentf("weight for %s must be a non-negative number", name)
	}
	if inv.Find(name) >= 0 {
		return inv, errors.AlreadyExistsf("%s is already in the inventory", name)
	}
	if weight == 0 {
		weight = echosheet.DefaultItemWeight
	}

	out := inv.Clone()
	out.Items = append(out.Items, echosheet.InventoryItem{Name: name, Weight: weight})
	return out, nil
}

// RemoveItem drops the item matching name ignoring case
func RemoveItem(inv echosheet.Inventory, name string) (echosheet.Inventory, error) {
	idx := inv.Find(name)
	if idx < 0 {
		return inv, errors.NotFoundf("%s is not in the inventory", name)
	}
	out := inv.Clone()
	out.Items = append(out.Items[:idx], out.Items[idx+1:]...)
	return out, nil
}

// ParseWeight reads a user-entered weight. ok is false for empty, negative or
// non-numeric input.
func ParseWeight(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, false
	}
	return w, true
}

// SetItemWeight replaces an item's weight from raw user input. Invalid or
// empty input leaves the inventory unchanged and reports changed == false.
func SetItemWeight(inv echosheet.Inventory, name, raw string) (out echosheet.Inventory, changed bool, err error) {
	idx := inv.Find(name)
	if idx < 0 {
		return inv, false, errors.NotFoundf("%s is not in the inventory", name)
	}
	w, ok := ParseWeight(raw)
	if !ok {
		return inv, false, nil
	}
	out = inv.Clone()
	out.Items[idx].Weight = w
	return out, true, nil
}

// SetCurrency replaces the coin counts; negative counts are rejected
func SetCurrency(inv echosheet.Inventory, c echosheet.Currency) (echosheet.Inventory, error) {
	for _, d := range echosheet.Denominations {
		if c.Get(d) < 0 {
			return inv, errors.InvalidArgumentf("%s cannot be negative", d)
		}
	}
	out := inv.Clone()
	out.Currency = c
	return out, nil
}

// MergePack adds pack items not already present, matching names ignoring case
// as AddItem does, and adds the pack coins to the existing counts. It returns
// the names actually added.
func MergePack(inv echosheet.Inventory, items []string, weights map[string]float64, coins echosheet.Currency) (echosheet.Inventory, []string) {
	out := inv.Clone()
	present := make(map[string]bool, len(out.Items))
	for _, item := range out.Items {
		present[strings.ToLower(item.Name)] = true
	}

	var added []string
	for _, name := range items {
		key := strings.ToLower(name)
		if name == "" || present[key] {
			continue
		}
		weight, ok := weights[name]
		if !ok || weight < 0 {
			weight = echosheet.DefaultItemWeight
		}
		out.Items = append(out.Items, echosheet.InventoryItem{Name: name, Weight: weight})
		present[key] = true
		added = append(added, name)
	}
	out.Currency = out.Currency.Add(coins)
	return out, added
}

// TotalWeight is the item weights plus coin weight
func TotalWeight(inv echosheet.Inventory) float64 {
	total := 0.0
	for _, item := range inv.Items {
		total += item.Weight
	}
	return total + float64(inv.Currency.TotalCoins())*echosheet.CoinWeight
}

// CarryingCapacity is 15 times the Strength score, or the default when unknown
func CarryingCapacity(strengthScore int) float64 {
	if strengthScore <= 0 {
		return echosheet.DefaultCarryingCapacity
	}
	return float64(strengthScore) * 15
}

// Status grades weight against capacity: caution from 80%, overloaded past 100%
func Status(weight, capacity float64) echosheet.WeightStatus {
	if capacity <= 0 {
		capacity = echosheet.DefaultCarryingCapacity
	}
	ratio := weight / capacity
	switch {
	case ratio > overloadedAbove:
		return echosheet.WeightStatusOverloaded
	case ratio >= cautionThreshold:
		return echosheet.WeightStatusCaution
	default:
		return echosheet.WeightStatusOK
	}
}

// InventoryView is the rendered inventory panel
type InventoryView struct {
	Items       []echosheet.InventoryItem
	Currency    echosheet.Currency
	Canonical   echosheet.Currency
	TotalCopper int
	TotalWeight float64
	Capacity    float64
	Status      echosheet.WeightStatus
}

// RenderInventory computes totals and the weight banner
func RenderInventory(inv echosheet.Inventory, capacity float64) InventoryView {
	if capacity <= 0 {
		capacity = echosheet.DefaultCarryingCapacity
	}
	weight := TotalWeight(inv)
	return InventoryView{
		Items:       inv.Clone().Items,
		Currency:    inv.Currency,
		Canonical:   inv.Currency.Canonical(),
		TotalCopper: inv.Currency.ToCopper(),
		TotalWeight: weight,
		Capacity:    capacity,
		Status:      Status(weight, capacity),
	}
}
