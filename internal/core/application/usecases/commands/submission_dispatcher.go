package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pickup/internal/core/domain/model/wizard"
	"pickup/internal/core/ports"
)

// SubmissionDispatcher delivers finished orders in the background. Each order
// gets one attempt; the outcome is only logged.
type SubmissionDispatcher struct {
	submitter ports.OrderSubmitter
	timeout   time.Duration
	logger    *slog.Logger

	wg sync.WaitGroup
}

// NewSubmissionDispatcher creates a dispatcher. A zero timeout leaves the
// deadline to the submitter.
func NewSubmissionDispatcher(submitter ports.OrderSubmitter, timeout time.Duration, logger *slog.Logger) *SubmissionDispatcher {
	return &SubmissionDispatcher{
		submitter: submitter,
		timeout:   timeout,
		logger:    logger.With("component", "submission_dispatcher"),
	}
}

// Dispatch starts the submission and returns immediately. The submission
// outlives ctx's cancellation but keeps its values. A panicking submitter is
// logged like any other failure.
func (d *SubmissionDispatcher) Dispatch(ctx context.Context, order wizard.Order) {
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.ErrorContext(ctx, "Order submission panicked",
					"order_number", order.Number,
					"panic", r,
				)
			}
		}()

		if d.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.timeout)
			defer cancel()
		}

		started := time.Now()
		if err := d.submitter.Submit(ctx, order); err != nil {
			d.logger.WarnContext(ctx, "Order submission failed",
				"order_number", order.Number,
				"error", err,
			)
			return
		}

		d.logger.InfoContext(ctx, "Order submitted",
			"order_number", order.Number,
			"items", len(order.ActiveItems()),
			"duration", time.Since(started),
		)
	}()
}

// Wait blocks until every dispatched submission has finished.
func (d *SubmissionDispatcher) Wait() {
	d.wg.Wait()
}
