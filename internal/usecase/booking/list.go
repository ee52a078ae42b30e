package booking

import (
	"context"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/usecase/barber"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx, filter)
}

func (uc *ListBookings) ForUser(
	ctx context.Context,
	actor domain.Actor,
	status string,
) ([]models.Booking, error) {
	return uc.repo.ListUserBookings(ctx, actor.ID, status)
}

func (uc *ListBookings) Get(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {
	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, httperr.ErrNotFound("booking_not_found", "booking not found")
	}
	return b, nil
}

// ListBarberBookings serves a barber's own appointment list; the acting
// roster id comes from resolving the barber's account id.
type ListBarberBookings struct {
	repo     domain.Repository
	resolver *barber.Resolver
}

func NewListBarberBookings(
	repo domain.Repository,
	resolver *barber.Resolver,
) *ListBarberBookings {
	return &ListBarberBookings{
		repo:     repo,
		resolver: resolver,
	}
}

func (uc *ListBarberBookings) Execute(
	ctx context.Context,
	actor domain.Actor,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	barberID, err := uc.resolver.TryResolve(ctx, actor.ID)
	if err != nil {
		// A barber account with no roster entry has no appointments yet.
		return []models.Booking{}, nil
	}

	return uc.repo.ListBarberBookings(ctx, barberID, filter)
}
