package echosheet

// Denomination is a coin type
type Denomination string

// Denominations from smallest to largest
const (
	Copper   Denomination = "cp"
	Silver   Denomination = "sp"
	Electrum Denomination = "ep"
	Gold     Denomination = "gp"
	Platinum Denomination = "pp"
)

// CoinWeight is the weight in pounds of a single coin
const CoinWeight = 0.02

// Denominations lists coin types largest first, the order used for breakdowns
var Denominations = []Denomination{Platinum, Gold, Electrum, Silver, Copper}

// CopperValue is the worth of one coin in copper pieces
var CopperValue = map[Denomination]int{
	Copper:   1,
	Silver:   10,
	Electrum: 50,
	Gold:     100,
	Platinum: 1000,
}

// Currency holds a count per denomination
type Currency struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// Get returns the count for one denomination
func (c Currency) Get(d Denomination) int {
	switch d {
	case Copper:
		return c.CP
	case Silver:
		return c.SP
	case Electrum:
		return c.EP
	case Gold:
		return c.GP
	case Platinum:
		return c.PP
	}
	return 0
}

// With returns a copy with one denomination replaced
func (c Currency) With(d Denomination, n int) Currency {
	switch d {
	case Copper:
		c.CP = n
	case Silver:
		c.SP = n
	case Electrum:
		c.EP = n
	case Gold:
		c.GP = n
	case Platinum:
		c.PP = n
	}
	return c
}

// ToCopper returns the total value in copper pieces
func (c Currency) ToCopper() int {
	total := 0
	for _, d := range Denominations {
		total += c.Get(d) * CopperValue[d]
	}
	return total
}

// TotalCoins is the number of physical coins, which determines coin weight
func (c Currency) TotalCoins() int {
	return c.CP + c.SP + c.EP + c.GP + c.PP
}

// Add returns the per-denomination sum
func (c Currency) Add(o Currency) Currency {
	return Currency{
		CP: c.CP + o.CP,
		SP: c.SP + o.SP,
		EP: c.EP + o.EP,
		GP: c.GP + o.GP,
		PP: c.PP + o.PP,
	}
}

// Canonical returns the same value re-expressed in the largest coins.
// The receiver is not modified.
func (c Currency) Canonical() Currency {
	return Breakdown(c.ToCopper())
}

// Breakdown splits a copper amount greedily from platinum down to copper.
//
// Postcondition: Breakdown(n).ToCopper() == n for n >= 0; negative n yields the zero value.
func Breakdown(copper int) Currency {
	var out Currency
	if copper <= 0 {
		return out
	}
	remaining := copper
	for _, d := range Denominations {
		value := CopperValue[d]
		out = out.With(d, remaining/value)
		remaining %= value
	}
	return out
}

// FromMap builds a Currency from a {"gp": 10} style map; unknown keys are ignored
func FromMap(m map[string]int) Currency {
	var c Currency
	for k, v := range m {
		c = c.With(Denomination(k), c.Get(Denomination(k))+v)
	}
	return c
}

// ToMap is the inverse of FromMap; every denomination is present
func (c Currency) ToMap() map[string]int {
	out := make(map[string]int, len(Denominations))
	for _, d := range Denominations {
		out[string(d)] = c.Get(d)
	}
	return out
}
