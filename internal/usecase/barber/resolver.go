package barber

import (
	"context"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
)

// Resolver maps an ambiguous identifier to a canonical barber id. Clients
// send whichever id they have: a roster entry id, or the account id of a
// barber-type user.
type Resolver struct {
	registry domain.Registry
}

func NewResolver(registry domain.Registry) *Resolver {
	return &Resolver{registry: registry}
}

// TryResolve is the pure lookup: it never writes. Read paths (slot
// availability) use this so a preview can't create roster entries.
func (r *Resolver) TryResolve(
	ctx context.Context,
	rawID uint,
) (uint, error) {

	if b, err := r.registry.GetBarber(ctx, rawID); err == nil {
		return b.ID, nil
	}

	user, err := r.registry.GetBarberUser(ctx, rawID)
	if err != nil {
		return 0, httperr.ErrNotFound("barber_not_found", "the selected barber is invalid")
	}

	if b, err := r.findForUser(ctx, user); err == nil {
		return b.ID, nil
	}

	return 0, httperr.ErrNotFound("barber_not_found", "the selected barber is invalid")
}

// ResolveOrProvision resolves like TryResolve but, when the id belongs to a
// barber-type user that has no roster entry yet, creates one backed by that
// account. Booking create/update call this deliberately; nothing else does.
func (r *Resolver) ResolveOrProvision(
	ctx context.Context,
	rawID uint,
) (uint, error) {

	if b, err := r.registry.GetBarber(ctx, rawID); err == nil {
		return b.ID, nil
	}

	user, err := r.registry.GetBarberUser(ctx, rawID)
	if err != nil {
		return 0, httperr.ErrNotFound("barber_not_found", "the selected barber is invalid")
	}

	if b, err := r.findForUser(ctx, user); err == nil {
		// Seeded rows predate accounts; record the link once found.
		if b.UserID == nil {
			b.UserID = &user.ID
			if b.Email == "" {
				b.Email = user.Email
			}
			if err := r.registry.UpdateBarber(ctx, b); err != nil {
				return 0, err
			}
		}
		return b.ID, nil
	}

	created := &models.Barber{
		UserID:    &user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Specialty: "Expert Barber",
	}
	if err := r.registry.CreateBarber(ctx, created); err != nil {
		return 0, err
	}

	return created.ID, nil
}

// findForUser looks for an existing roster entry for the account: by the
// explicit link first, then by email, then by display name (legacy seed
// rows carry neither link nor email).
func (r *Resolver) findForUser(
	ctx context.Context,
	user *models.User,
) (*models.Barber, error) {

	if b, err := r.registry.FindBarberByUserID(ctx, user.ID); err == nil {
		return b, nil
	}

	if user.Email != "" {
		if b, err := r.registry.FindBarberByEmail(ctx, user.Email); err == nil {
			return b, nil
		}
	}

	return r.registry.FindBarberByName(ctx, user.Name)
}
