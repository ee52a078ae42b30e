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

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID   uint
	BarberRawID uint

	Date string
	Time string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	resolver *barber.Resolver
	clock    clock.Clock
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	resolver *barber.Resolver,
	clk clock.Clock,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		resolver: resolver,
		clock:    clk,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := validateSlotRequest(in.Date, in.Time, uc.clock.Now()); err != nil {
		return nil, err
	}

	// Provisioning is acceptable here: a barber account booking its first
	// client gets a roster entry on the fly.
	barberID, err := uc.resolver.ResolveOrProvision(ctx, in.BarberRawID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetService(ctx, in.ServiceID); err != nil {
		return nil, httperr.ErrNotFound("service_not_found", "the selected service does not exist")
	}

	// One active request per (user, service, date, time). A cancelled
	// booking frees the combination for re-booking.
	dup, err := uc.repo.HasActiveUserBooking(ctx, actor.ID, in.ServiceID, in.Date, in.Time, 0)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, httperr.ErrBusinessField(
			"duplicate_booking",
			"booking",
			"you already have a booking for this service, date, and time",
		)
	}

	// Only a confirmed booking blocks the slot. Competing pending requests
	// are allowed; approval settles them.
	taken, err := uc.repo.HasConfirmedSlot(ctx, barberID, in.Date, in.Time, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken", "this time slot is already booked")
	}

	b := &models.Booking{
		UserID:      actor.ID,
		ServiceID:   in.ServiceID,
		BarberID:    barberID,
		BookingDate: in.Date,
		BookingTime: in.Time,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
