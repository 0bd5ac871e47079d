package validation

import (
	"errors"
	"fmt"

	"algowoo/internal/events"
	"algowoo/internal/logger"
)

var ErrInvalidEvent = errors.New("invalid event")

type Validator struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Validator {
	return &Validator{
		logger: logger,
	}
}

// ValidateEvent checks that an event carries what its type needs.
func (v *Validator) ValidateEvent(e events.Event) error {
	v.logger.Debug("Validating event: %+v", e)

	switch e.Type {
	case events.TypeProductPublished:
		if e.ProductID <= 0 {
			return fmt.Errorf("%w: %s without product id", ErrInvalidEvent, e.Type)
		}
	case events.TypeSyncRequested:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	return nil
}
