package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
)

// RemoveBooking hard-deletes a booking regardless of its status. Admins may
// delete anything; users only their own.
type RemoveBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveBooking {
	return &RemoveBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) error {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return httperr.ErrNotFound("booking_not_found", "booking not found")
	}

	if !actor.IsAdmin() && b.UserID != actor.ID {
		return httperr.ErrForbidden("not_owner", "you can only delete your own bookings")
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
