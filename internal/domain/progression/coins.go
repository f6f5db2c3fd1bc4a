package progression

import (
	"fmt"
	"math"
	"strconv"
)

// Coin abbreviation boundaries, inclusive on the lower side.
const (
	coinThousand = 1_000
	coinMillion  = 1_000_000
)

// FormatCoins renders a coin balance for display: balances of a million or
// more abbreviate to one decimal with an "M" suffix, a thousand or more to
// one decimal with a "K" suffix, smaller balances print as plain integers.
// Half-way values round away from zero, so 1050 renders as "1.1K".
func (e *Engine) FormatCoins(coins int) string {
	switch {
	case coins >= coinMillion:
		return fmt.Sprintf("%.1fM", math.Round(float64(coins)/100_000)/10)
	case coins >= coinThousand:
		return fmt.Sprintf("%.1fK", math.Round(float64(coins)/100)/10)
	default:
		return strconv.Itoa(coins)
	}
}
