package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"nexturdayadmin/internal/domain"
	"nexturdayadmin/internal/forms"
)

// Submission progress messages surfaced through the notifier.
const (
	msgSubmitting    = "Submitting form..."
	msgSubmitSuccess = "Event Added successfully!"
	msgSubmitFailure = "Error submitting form. Please try again."
)

// SubmitService runs the event submission flow: validate, serialize, send.
// Validation failures never reach the network; submission failures leave the
// form state untouched so the user can retry without re-entering data.
type SubmitService struct {
	api            domain.EventAPI
	notifier       domain.Notifier
	logger         *slog.Logger
	loc            *time.Location
	contextTimeout time.Duration
	inFlight       atomic.Bool
}

// NewSubmitService creates a SubmitService. loc is the zone local date-time
// inputs are interpreted in; nil means time.Local.
func NewSubmitService(api domain.EventAPI, notifier domain.Notifier, logger *slog.Logger, loc *time.Location, timeout time.Duration) *SubmitService {
	return &SubmitService{
		api:            api,
		notifier:       notifier,
		logger:         logger,
		loc:            loc,
		contextTimeout: timeout,
	}
}

// Submit validates the session's form and, on success, serializes and sends
// it. A second Submit while one is in flight returns ErrSubmitInFlight
// without touching the form or the network.
func (s *SubmitService) Submit(ctx context.Context, token string, session *forms.Session) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	form := session.Form()
	if err := forms.Validate(form, s.loc); err != nil {
		if verr, ok := domain.AsValidationError(err); ok {
			s.notifier.Error(verr.Message)
		}
		return err
	}

	payload, err := forms.BuildPayload(form, s.loc)
	if err != nil {
		s.notifier.Error(msgSubmitFailure)
		return fmt.Errorf("serialize form: %w", err)
	}

	s.notifier.Info(msgSubmitting)
	s.logger.Info("submitting event",
		"session", session.ID().String(),
		"event", form.EventName,
		"paid", form.IsPaidEvent,
	)

	if err := s.api.CreateEvent(ctx, token, session.ID().String(), payload); err != nil {
		s.notifier.Error(msgSubmitFailure)
		return fmt.Errorf("create event: %w", err)
	}

	s.notifier.Success(msgSubmitSuccess)
	return nil
}
