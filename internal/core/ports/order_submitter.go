package ports

import (
	"context"

	"pickup/internal/core/domain/model/wizard"
)

// OrderSubmitter delivers a finished order to the back office.
type OrderSubmitter interface {
	// Submit sends the order once. It reports transport failures and
	// rejections by the receiving side as errors and never retries.
	Submit(ctx context.Context, order wizard.Order) error
}
