package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
)

// SetBookingStatus is the explicit correction path: an admin overwrites the
// status directly, bypassing approve/decline. Not part of the normal flow.
type SetBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetBookingStatus {
	return &SetBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetBookingStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
	status string,
) (*models.Booking, error) {

	if !actor.IsAdmin() {
		return nil, httperr.ErrForbidden("admin_only", "only admins can set a booking status directly")
	}

	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrValidation("invalid_status", "status", "unknown booking status")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "booking not found")
	}

	b.Status = status
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_status_set",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"status": status},
	})

	return b, nil
}
