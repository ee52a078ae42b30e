package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/usecase/barber"
)

type CompleteBooking struct {
	repo     domain.Repository
	resolver *barber.Resolver
	audit    *audit.Dispatcher
}

func NewCompleteBooking(
	repo domain.Repository,
	resolver *barber.Resolver,
	audit *audit.Dispatcher,
) *CompleteBooking {
	return &CompleteBooking{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "booking not found")
	}

	// The actor is a barber account; its roster id decides ownership.
	actingBarberID, err := uc.resolver.TryResolve(ctx, actor.ID)
	if err != nil {
		return nil, httperr.ErrForbidden("not_booking_barber", "this booking belongs to another barber")
	}

	if b.BarberID != actingBarberID {
		return nil, httperr.ErrForbidden("not_booking_barber", "this booking belongs to another barber")
	}

	if err := domain.Complete(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
