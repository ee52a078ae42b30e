package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/audit"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/models"
)

// ApproveBooking confirms one pending request for a slot and auto-declines
// every other pending request for the same (barber, date, time). Contention
// between requests is settled here, not at creation time.
type ApproveBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApproveBooking {
	return &ApproveBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ApproveBooking) Execute(
	ctx context.Context,
	actor domain.Actor,
	bookingID uint,
) (*models.Booking, int64, error) {

	// The cascade and the confirm must land together; the repository runs
	// them in one transaction serialized per slot.
	b, declined, err := uc.repo.ApproveWithCascade(ctx, bookingID)
	if err != nil {
		return nil, 0, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.ID,
		Action:   "booking_approved",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]int64{"declined_count": declined},
	})

	return b, declined, nil
}
