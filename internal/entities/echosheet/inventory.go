package echosheet

// DefaultItemWeight is used when an item is added without a weight
const DefaultItemWeight = 1.0

// DefaultCarryingCapacity applies when no Strength score is known
const DefaultCarryingCapacity = 150.0

// InventoryItem is a carried item. Names are unique ignoring case.
type InventoryItem struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Inventory is the carried items and coins of a character
type Inventory struct {
	Items    []InventoryItem `json:"items"`
	Currency Currency        `json:"currency"`
}

// Find returns the index of the item matching name ignoring case, or -1
func (inv Inventory) Find(name string) int {
	for i, item := range inv.Items {
		if equalFold(item.Name, name) {
			return i
		}
	}
	return -1
}

// Clone returns an inventory that shares no slices with inv
func (inv Inventory) Clone() Inventory {
	out := Inventory{Currency: inv.Currency}
	if inv.Items != nil {
		out.Items = append(make([]InventoryItem, 0, len(inv.Items)), inv.Items...)
	}
	return out
}

// ItemNames lists the item names in order
func (inv Inventory) ItemNames() []string {
	names := make([]string, len(inv.Items))
	for i, item := range inv.Items {
		names[i] = item.Name
	}
	return names
}

// ItemWeights maps item names to weights, the shape the backend stores
func (inv Inventory) ItemWeights() map[string]float64 {
	weights := make(map[string]float64, len(inv.Items))
	for _, item := range inv.Items {
		weights[item.Name] = item.Weight
	}
	return weights
}

// WeightStatus is the carried weight banner level
type WeightStatus string

// Weight statuses
const (
	WeightStatusOK         WeightStatus = "ok"
	WeightStatusCaution    WeightStatus = "caution"
	WeightStatusOverloaded WeightStatus = "overloaded"
)
