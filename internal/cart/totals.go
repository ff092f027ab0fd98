package cart

import (
	"github.com/shopspring/decimal"
)

// TaxRate is the flat rate applied to every cart and order subtotal.
var TaxRate = decimal.NewFromFloat(0.18)

// PricedLine feeds the totals computation with one cart or order line.
type PricedLine struct {
	UnitPrice float64
	SetPieces int
	Quantity  int
}

// LineAmount returns unit price x pieces per set x quantity as an exact decimal.
func LineAmount(line PricedLine) decimal.Decimal {
	pieces := line.SetPieces
	if pieces <= 0 {
		pieces = 1
	}
	return decimal.NewFromFloat(line.UnitPrice).
		Mul(decimal.NewFromInt(int64(pieces))).
		Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// ComputeTotals sums the lines and applies the tax rate.
func ComputeTotals(lines []PricedLine) TotalsDTO {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineAmount(line))
	}
	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(tax)
	return TotalsDTO{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Tax:      tax.Round(2).InexactFloat64(),
		Total:    total.Round(2).InexactFloat64(),
	}
}
