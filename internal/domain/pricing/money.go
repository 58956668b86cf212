package pricing

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// VATRate is the VAT applied on parts plus labor.
	VATRate = 0.22
	// LaborEpsilon is the smallest labor change committed by a parts-driven recompute.
	LaborEpsilon = 0.01
)

var (
	vatRate       = decimal.NewFromFloat(VATRate)
	vatMultiplier = decimal.NewFromInt(1).Add(vatRate)
	laborEpsilon  = decimal.NewFromFloat(LaborEpsilon)
)

// Round2 rounds to cents, half away from zero. The value is taken from its
// shortest decimal representation, so 1.005 rounds to 1.01 as a person would expect.
func Round2(v float64) float64 {
	return round2(decimal.NewFromFloat(Coerce(v))).InexactFloat64()
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Coerce maps values that cannot be amounts (NaN, ±Inf) to zero.
func Coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseAmount reads a user-typed amount. Both "12.50" and "12,50" are accepted;
// anything that is not a number becomes zero.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return Coerce(d.InexactFloat64())
}

// FinalFromLabor returns round2(1.22 × (parts + labor)).
func FinalFromLabor(partsTotal, labor float64) float64 {
	net := round2(dec(partsTotal).Add(dec(labor)))
	return round2(net.Mul(vatMultiplier)).InexactFloat64()
}

// LaborFromFinal returns round2(final / 1.22 − parts). The result may be negative.
func LaborFromFinal(final, partsTotal float64) float64 {
	net := round2(dec(final).Div(vatMultiplier))
	return round2(net.Sub(dec(partsTotal))).InexactFloat64()
}

// VAT returns round2(0.22 × (parts + labor)).
func VAT(partsTotal, labor float64) float64 {
	net := round2(dec(partsTotal).Add(dec(labor)))
	return round2(net.Mul(vatRate)).InexactFloat64()
}

// PaymentTotals computes the VAT and the VAT-inclusive total of a payment.
func PaymentTotals(partsAmount, laborAmount float64) (vat, total float64) {
	net := round2(dec(partsAmount).Add(dec(laborAmount)))
	v := round2(net.Mul(vatRate))
	return v.InexactFloat64(), round2(net.Add(v)).InexactFloat64()
}

// LineTotal returns round2(quantity × unit price).
func LineTotal(quantity int, unitPrice float64) float64 {
	return round2(decimal.NewFromInt(int64(quantity)).Mul(dec(unitPrice))).InexactFloat64()
}

// Sum adds cent amounts, rounding after each addition.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = round2(total.Add(dec(v)))
	}
	return total.InexactFloat64()
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(Coerce(v))
}
