package wizard

import (
	"fmt"

	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/challenge"
)

// OrderNumberPrefix starts every order number.
const OrderNumberPrefix = "DBY-"

// Order is the snapshot taken when the customer finishes the wizard. It is
// detached from the wizard and safe to hand to another goroutine.
type Order struct {
	Number  string
	Items   []*carpet.Item
	Totals  carpet.Totals
	Pricing carpet.Pricing
	Info    OrderInfo
}

// ActiveItems returns the carpets with both dimensions measured, in order.
func (o Order) ActiveItems() []*carpet.Item {
	out := make([]*carpet.Item, 0, len(o.Items))
	for _, item := range o.Items {
		if item.IsActive() {
			out = append(out, item)
		}
	}
	return out
}

// ShippingFee is what the customer pays for pickup, 0 when shipping is free.
func (o Order) ShippingFee() float64 {
	if o.Totals.IsFreeShipping {
		return 0
	}
	return o.Pricing.ShippingFee
}

// newOrderNumber formats a four digit number in [1000, 9999].
func newOrderNumber(rnd challenge.Source) string {
	return fmt.Sprintf("%s%d", OrderNumberPrefix, 1000+rnd.IntN(9000))
}
