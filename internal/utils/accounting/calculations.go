package accounting

import (
	"github.com/shopspring/decimal"
)

const (
	// MoneyScale is the number of decimal places kept for monetary amounts.
	MoneyScale int32 = 2
	// QuantityScale is the number of decimal places kept for quantities and rates.
	QuantityScale int32 = 4
)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds half-up (away from zero) to the money scale.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// RoundQuantity rounds half-up to the quantity scale.
func RoundQuantity(d decimal.Decimal) decimal.Decimal {
	return d.Round(QuantityScale)
}

// ApplyPercent returns amount × rate / 100 rounded to the money scale.
// The rate is expressed in percent, e.g. 15 for 15%.
func ApplyPercent(amount, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return RoundMoney(amount.Mul(rate).Div(hundred))
}
