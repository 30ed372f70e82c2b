// Package notify delivers finished orders to the back office endpoint, which
// emails them to the operators and the customer.
package notify

import (
	"pickup/internal/core/domain/model/carpet"
	"pickup/internal/core/domain/model/wizard"
)

// OrderDTO is the JSON document POSTed for every finished order.
type OrderDTO struct {
	OrderNumber string      `json:"orderNumber"`
	Client      ClientDTO   `json:"client"`
	Carpets     []CarpetDTO `json:"carpets"`
	Totals      TotalsDTO   `json:"totals"`
}

// ClientDTO carries the contact details, address, pickup date and notes.
type ClientDTO struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Date         string `json:"date"`
	Observations string `json:"observations"`
}

// CarpetDTO describes one measured carpet. Index is 1-based over the listed carpets.
type CarpetDTO struct {
	Index int    `json:"index"`
	Dims  string `json:"dims"`
	Area  string `json:"area"`
	Price string `json:"price"`
}

type TotalsDTO struct {
	TotalPrice string `json:"totalPrice"`
	TotalArea  string `json:"totalArea"`
	Shipping   string `json:"shipping"`
}

// ResponseDTO is the endpoint's answer.
type ResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// fromDomain maps an order to its wire form. Carpets missing a dimension are
// left out; the per-carpet price is the plain area rate, without the minimum.
func fromDomain(order wizard.Order) OrderDTO {
	active := order.ActiveItems()
	carpets := make([]CarpetDTO, 0, len(active))
	for i, item := range active {
		carpets = append(carpets, CarpetDTO{
			Index: i + 1,
			Dims:  item.Length() + "x" + item.Width() + " cm",
			Area:  carpet.FormatAmount(item.Area()),
			Price: carpet.FormatAmount(item.Area() * order.Pricing.PricePerSqm),
		})
	}

	return OrderDTO{
		OrderNumber: order.Number,
		Client: ClientDTO{
			FullName:     order.Info.FullName,
			Phone:        order.Info.Phone,
			Email:        order.Info.Email,
			Address:      order.Info.Address,
			Date:         order.Info.Date.String(),
			Observations: order.Info.Observations,
		},
		Carpets: carpets,
		Totals: TotalsDTO{
			TotalPrice: carpet.FormatAmount(order.Totals.TotalPrice),
			TotalArea:  carpet.FormatAmount(order.Totals.TotalArea),
			Shipping:   carpet.ShippingLabel(order.Totals, order.Pricing),
		},
	}
}
