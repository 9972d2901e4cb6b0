package utils

import (
	"github.com/shopspring/decimal"
)

var decimalOneHundred = decimal.NewFromInt(100)

// GstBreakdown keeps the three tax components separate for display;
// totals are derived, never stored.
type GstBreakdown struct {
	Cgst decimal.Decimal `json:"cgst"`
	Sgst decimal.Decimal `json:"sgst"`
	Igst decimal.Decimal `json:"igst"`
}

func (b GstBreakdown) Total() decimal.Decimal {
	return b.Cgst.Add(b.Sgst).Add(b.Igst)
}

func (b GstBreakdown) Add(other GstBreakdown) GstBreakdown {
	return GstBreakdown{
		Cgst: b.Cgst.Add(other.Cgst),
		Sgst: b.Sgst.Add(other.Sgst),
		Igst: b.Igst.Add(other.Igst),
	}
}

// CalculateBaseAmount is quantity * unit rate. Inputs are total: zero and
// negative values flow through arithmetically; business rules reject them
// elsewhere.
func CalculateBaseAmount(quantity decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// CalculateGstBreakdown applies each percentage to the base amount.
// No currency rounding here; responses round to 2 places at the edge.
func CalculateGstBreakdown(baseAmount decimal.Decimal, cgstPercent decimal.Decimal, sgstPercent decimal.Decimal, igstPercent decimal.Decimal) GstBreakdown {
	return GstBreakdown{
		Cgst: baseAmount.Mul(cgstPercent).Div(decimalOneHundred),
		Sgst: baseAmount.Mul(sgstPercent).Div(decimalOneHundred),
		Igst: baseAmount.Mul(igstPercent).Div(decimalOneHundred),
	}
}

// CalculateGstAmount is the combined tax for one line:
// baseAmount * (cgst + sgst + igst) / 100.
func CalculateGstAmount(baseAmount decimal.Decimal, cgstPercent decimal.Decimal, sgstPercent decimal.Decimal, igstPercent decimal.Decimal) decimal.Decimal {
	return CalculateGstBreakdown(baseAmount, cgstPercent, sgstPercent, igstPercent).Total()
}
