package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/clock"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/usecase/barber"
)

type GetAvailableSlots struct {
	repo     domain.Repository
	resolver *barber.Resolver
	clock    clock.Clock
}

func NewGetAvailableSlots(
	repo domain.Repository,
	resolver *barber.Resolver,
	clk clock.Clock,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:     repo,
		resolver: resolver,
		clock:    clk,
	}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barberRawID uint,
	date string,
) ([]domain.TimeSlot, error) {

	if err := validateSlotRequest(date, "", uc.clock.Now()); err != nil {
		return nil, err
	}

	// Pure lookup. A slot preview must never provision roster entries.
	barberID, err := uc.resolver.TryResolve(ctx, barberRawID)
	if err != nil {
		return nil, err
	}

	occupied, err := uc.repo.ListConfirmedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(occupied), nil
}
