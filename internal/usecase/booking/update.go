package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	"github.com/sharpfade/barbershop-api/internal/clock"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/usecase/barber"
)

type UpdateBookingInput struct {
	BookingID   uint
	ServiceID   uint
	BarberRawID uint

	Date string
	Time string

	Notes string

	// Status is an explicit correction, honored for admins only. Empty
	// leaves the current status alone.
	Status string
}

type UpdateBooking struct {
	repo     domain.Repository
	resolver *barber.Resolver
	clock    clock.Clock
	audit    *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	resolver *barber.Resolver,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:     repo,
		resolver: resolver,
		clock:    clk,
		audit:    audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	in UpdateBookingInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "booking not found")
	}

	if b.UserID != actor.ID {
		return nil, httperr.ErrForbidden("not_owner", "you can only update your own bookings")
	}

	if err := validateSlotRequest(in.Date, in.Time, uc.clock.Now()); err != nil {
		return nil, err
	}

	barberID, err := uc.resolver.ResolveOrProvision(ctx, in.BarberRawID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrNotFound("service_not_found", "the selected service does not exist")
	}

	// Same checks as create, minus the booking being edited.
	dup, err := uc.repo.HasActiveUserBooking(ctx, actor.ID, in.ServiceID, in.Date, in.Time, b.ID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, httperr.ErrBusinessField(
			"duplicate_booking",
			"booking",
			"you already have another booking for this service, date, and time",
		)
	}

	taken, err := uc.repo.HasConfirmedSlot(ctx, barberID, in.Date, in.Time, b.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken", "this time slot is already booked")
	}

	b.ServiceID = in.ServiceID
	b.BarberID = barberID
	b.BookingDate = in.Date
	b.BookingTime = in.Time
	b.Notes = in.Notes

	if in.Status != "" && actor.IsAdmin() {
		if !domain.IsValidStatus(in.Status) {
			return nil, httperr.ErrValidation("invalid_status", "status", "unknown booking status")
		}
		b.Status = in.Status
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
