package carpet

import "github.com/shopspring/decimal"

// FreeShippingLabel replaces the fee when shipping is free.
const FreeShippingLabel = "Gratuit"

// FormatAmount renders a price or an area with exactly two decimals, e.g. "112.50".
// Values are rounded half away from zero from their shortest decimal form.
// Infinity saturates at math.MaxFloat64 and NaN reads as 0, so it never fails.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(bounded(v)).StringFixed(2)
}

// ShippingLabel is the shipping line shown to the customer and sent with the
// order: FreeShippingLabel, or the fee in lei such as "15.00 lei".
func ShippingLabel(t Totals, p Pricing) string {
	if t.IsFreeShipping {
		return FreeShippingLabel
	}
	return FormatAmount(p.ShippingFee) + " lei"
}
