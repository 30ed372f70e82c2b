package wizard

import "pickup/internal/core/domain/model/kernel"

// OrderInfo accumulates what the customer entered after the calculator.
// Address holds the composed one-line address, not the individual fields.
type OrderInfo struct {
	FullName     string
	Phone        string
	Email        string
	Address      string
	Date         kernel.Date
	Observations string
}

// IsComplete reports whether every screen before the notes has been passed.
// Observations are optional.
func (i OrderInfo) IsComplete() bool {
	return i.FullName != "" && i.Phone != "" && i.Email != "" && i.Address != "" && !i.Date.IsZero()
}
