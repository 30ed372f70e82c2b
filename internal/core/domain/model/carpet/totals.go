package carpet

import (
	"errors"
	"fmt"
	"math"

	"pickup/internal/pkg/errs"
)

const (
	// DefaultPricePerSqm is the cleaning rate in lei per square metre.
	DefaultPricePerSqm = 20.0
	// DefaultMinPrice is the minimum order value in lei.
	DefaultMinPrice = 100.0
	// DefaultFreeShippingThreshold is the order value from which pickup is free.
	DefaultFreeShippingThreshold = 100.0
	// DefaultShippingFee is charged below the free shipping threshold.
	DefaultShippingFee = 15.0
)

// Pricing holds the tariff the totals engine applies.
type Pricing struct {
	PricePerSqm           float64
	MinPrice              float64
	FreeShippingThreshold float64
	ShippingFee           float64
}

// DefaultPricing returns the standard tariff.
func DefaultPricing() Pricing {
	return Pricing{
		PricePerSqm:           DefaultPricePerSqm,
		MinPrice:              DefaultMinPrice,
		FreeShippingThreshold: DefaultFreeShippingThreshold,
		ShippingFee:           DefaultShippingFee,
	}
}

// Validate checks that every amount is usable. The threshold must be positive
// because progress is expressed relative to it.
func (p Pricing) Validate() error {
	var errList []error
	if p.PricePerSqm < 0 || math.IsNaN(p.PricePerSqm) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("price per sqm", fmt.Errorf("%v is negative", p.PricePerSqm)))
	}
	if p.MinPrice <= 0 || math.IsNaN(p.MinPrice) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("min price", fmt.Errorf("%v is not greater than 0", p.MinPrice)))
	}
	if p.FreeShippingThreshold <= 0 || math.IsNaN(p.FreeShippingThreshold) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"free shipping threshold", fmt.Errorf("%v is not greater than 0", p.FreeShippingThreshold)))
	}
	if p.ShippingFee < 0 || math.IsNaN(p.ShippingFee) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("shipping fee", fmt.Errorf("%v is negative", p.ShippingFee)))
	}
	return errors.Join(errList...)
}

// Totals is the summary shown under every wizard screen. It is always
// recomputed from the items and never edited directly.
type Totals struct {
	TotalArea             float64
	TotalPrice            float64
	IsFreeShipping        bool
	FreeShippingThreshold float64
	// Progress towards free shipping, in percent, clamped to [0, 100].
	Progress float64
}

// RemainingForFreeShipping is how much more the order must be worth to ship for free.
func (t Totals) RemainingForFreeShipping() float64 {
	return math.Max(t.FreeShippingThreshold-t.TotalPrice, 0)
}

// CalculateTotals computes area, price and shipping progress for items.
// An order without any measurable carpet is priced at exactly the minimum.
func CalculateTotals(items []*Item, p Pricing) Totals {
	var area float64
	for _, item := range items {
		area = bounded(area + item.Area())
	}

	price := bounded(area * p.PricePerSqm)
	if price == 0 {
		price = p.MinPrice
	} else {
		price = math.Max(price, p.MinPrice)
	}

	return Totals{
		TotalArea:             area,
		TotalPrice:            price,
		IsFreeShipping:        price >= p.FreeShippingThreshold,
		FreeShippingThreshold: p.FreeShippingThreshold,
		Progress:              math.Max(math.Min(price/p.FreeShippingThreshold*100, 100), 0),
	}
}

// bounded keeps v representable: overflow saturates at math.MaxFloat64 and
// NaN or negative infinity count as 0.
func bounded(v float64) float64 {
	switch {
	case math.IsNaN(v), math.IsInf(v, -1):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	default:
		return v
	}
}
