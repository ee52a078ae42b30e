package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
)

type DeclineBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeclineBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeclineBooking {
	return &DeclineBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeclineBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "booking not found")
	}

	// Declining never cascades; it only moves this booking to cancelled.
	if err := domain.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_declined",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
