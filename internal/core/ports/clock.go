package ports

import "pickup/internal/core/domain/model/kernel"

// Clock tells the current civil date in the business time zone.
type Clock interface {
	Today() kernel.Date
}
