package processors

import (
	"context"
	"errors"

	"algowoo/internal/events"
	"algowoo/internal/indexer"
	"algowoo/internal/logger"
	"algowoo/internal/metrics"
	"algowoo/internal/worker/processors/validation"
)

// Indexer is the part of indexer.Service the worker drives.
type Indexer interface {
	SendAll(ctx context.Context) (*indexer.Report, error)
	PublishEvent(ctx context.Context, id int64) (*indexer.Report, error)
}

type EventProcessor struct {
	logger    *logger.Logger
	validator *validation.Validator
	indexer   Indexer
}

func NewEventProcessor(idx Indexer, logger *logger.Logger) *EventProcessor {
	return &EventProcessor{
		logger:    logger,
		validator: validation.New(logger),
		indexer:   idx,
	}
}

// Process routes one event to the matching send trigger. Publish events
// that are skipped by configuration are not errors.
func (ep *EventProcessor) Process(ctx context.Context, event events.Event) error {
	if err := ep.validator.ValidateEvent(event); err != nil {
		metrics.EventsProcessed.WithLabelValues(event.Type, "invalid").Inc()
		return err
	}

	var (
		report *indexer.Report
		err    error
	)
	switch event.Type {
	case events.TypeProductPublished:
		report, err = ep.indexer.PublishEvent(ctx, event.ProductID)
	case events.TypeSyncRequested:
		report, err = ep.indexer.SendAll(ctx)
	}

	switch {
	case errors.Is(err, indexer.ErrAutoSendDisabled), errors.Is(err, indexer.ErrNotEligible):
		ep.logger.Info("Event %s skipped: %v", event.ID, err)
		metrics.EventsProcessed.WithLabelValues(event.Type, "skipped").Inc()
		return nil
	case err != nil:
		metrics.EventsProcessed.WithLabelValues(event.Type, "error").Inc()
		return err
	}

	ep.logger.Info("Event %s processed: %d product(s) sent to %s", event.ID, report.Products, report.IndexName)
	metrics.EventsProcessed.WithLabelValues(event.Type, "ok").Inc()
	return nil
}
