package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/usecase/barber"
	"github.com/sharpfade/barbershop-api/internal/usecase/booking"
)

func TestDeclineBooking(t *testing.T) {
	admin := domain.Actor{ID: 1, Role: models.UserTypeAdmin}

	seed := func(repo *memRepo, status domain.Status) *models.Booking {
		return repo.addBooking(models.Booking{
			UserID:      10,
			BarberID:    1,
			BookingDate: tomorrow,
			BookingTime: "10:00",
			Status:      string(status),
		})
	}

	t.Run("declines pending and confirmed", func(t *testing.T) {
		for _, status := range []domain.Status{domain.StatusPending, domain.StatusConfirmed} {
			repo := newMemRepo()
			uc := booking.NewDeclineBooking(repo, newDispatcher())
			b := seed(repo, status)

			got, err := uc.Execute(context.Background(), admin, b.ID)
			require.NoError(t, err, "status %s", status)
			assert.Equal(t, string(domain.StatusCancelled), got.Status)
		}
	})

	t.Run("terminal states stay put", func(t *testing.T) {
		for _, status := range []domain.Status{domain.StatusCancelled, domain.StatusCompleted} {
			repo := newMemRepo()
			uc := booking.NewDeclineBooking(repo, newDispatcher())
			b := seed(repo, status)

			_, err := uc.Execute(context.Background(), admin, b.ID)
			assert.True(t, httperr.Is(err, "invalid_state"), "status %s", status)

			stored, err := repo.GetBooking(context.Background(), b.ID)
			require.NoError(t, err)
			assert.Equal(t, string(status), stored.Status)
		}
	})

	t.Run("declining leaves other requests for the slot alone", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewDeclineBooking(repo, newDispatcher())

		b := seed(repo, domain.StatusPending)
		other := seed(repo, domain.StatusPending)

		_, err := uc.Execute(context.Background(), admin, b.ID)
		require.NoError(t, err)

		stored, err := repo.GetBooking(context.Background(), other.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), stored.Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewDeclineBooking(repo, newDispatcher())

		_, err := uc.Execute(context.Background(), admin, 404)
		assert.True(t, httperr.Is(err, "booking_not_found"))
	})
}

func TestCompleteBooking(t *testing.T) {
	setup := func(status domain.Status) (*memRepo, *memRegistry, *booking.CompleteBooking, *models.Booking, domain.Actor) {
		repo := newMemRepo()
		reg := newMemRegistry()

		acct := reg.addUser(models.User{
			Name:     "Marcus Johnson",
			Email:    "marcus@sharpfade.com",
			UserType: models.UserTypeBarber,
		})
		brb := reg.addBarber(models.Barber{
			UserID: &acct.ID,
			Name:   "Marcus Johnson",
			Email:  "marcus@sharpfade.com",
		})

		b := repo.addBooking(models.Booking{
			UserID:      10,
			BarberID:    brb.ID,
			BookingDate: tomorrow,
			BookingTime: "10:00",
			Status:      string(status),
		})

		uc := booking.NewCompleteBooking(repo, barber.NewResolver(reg), newDispatcher())
		actor := domain.Actor{ID: acct.ID, Role: models.UserTypeBarber, Email: acct.Email}
		return repo, reg, uc, b, actor
	}

	t.Run("barber completes their confirmed booking", func(t *testing.T) {
		repo, _, uc, b, actor := setup(domain.StatusConfirmed)

		got, err := uc.Execute(context.Background(), actor, b.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), got.Status)

		stored, err := repo.GetBooking(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), stored.Status)
	})

	t.Run("only confirmed bookings can be completed", func(t *testing.T) {
		for _, status := range []domain.Status{
			domain.StatusPending,
			domain.StatusCancelled,
			domain.StatusCompleted,
		} {
			_, _, uc, b, actor := setup(status)
			_, err := uc.Execute(context.Background(), actor, b.ID)
			assert.True(t, httperr.Is(err, "invalid_state"), "status %s", status)
		}
	})

	t.Run("another barber cannot complete it", func(t *testing.T) {
		_, reg, uc, b, _ := setup(domain.StatusConfirmed)

		otherAcct := reg.addUser(models.User{
			Name:     "Diego Costa",
			Email:    "diego@sharpfade.com",
			UserType: models.UserTypeBarber,
		})
		reg.addBarber(models.Barber{
			UserID: &otherAcct.ID,
			Name:   "Diego Costa",
			Email:  "diego@sharpfade.com",
		})

		other := domain.Actor{ID: otherAcct.ID, Role: models.UserTypeBarber}
		_, err := uc.Execute(context.Background(), other, b.ID)
		assert.True(t, httperr.Is(err, "not_booking_barber"))
	})

	t.Run("actor without a roster entry is rejected", func(t *testing.T) {
		_, _, uc, b, _ := setup(domain.StatusConfirmed)

		stranger := domain.Actor{ID: 999, Role: models.UserTypeBarber}
		_, err := uc.Execute(context.Background(), stranger, b.ID)
		assert.True(t, httperr.Is(err, "not_booking_barber"))
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, _, uc, _, actor := setup(domain.StatusConfirmed)

		_, err := uc.Execute(context.Background(), actor, 404)
		assert.True(t, httperr.Is(err, "booking_not_found"))
	})
}

func TestRemoveBooking(t *testing.T) {
	owner := domain.Actor{ID: 50, Role: models.UserTypeUser}
	admin := domain.Actor{ID: 1, Role: models.UserTypeAdmin}

	seed := func(repo *memRepo) *models.Booking {
		return repo.addBooking(models.Booking{
			UserID:      owner.ID,
			BarberID:    1,
			BookingDate: tomorrow,
			BookingTime: "10:00",
			Status:      string(domain.StatusCompleted),
		})
	}

	t.Run("owner deletes regardless of status", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewRemoveBooking(repo, newDispatcher())
		b := seed(repo)

		require.NoError(t, uc.Execute(context.Background(), owner, b.ID))

		_, err := repo.GetBooking(context.Background(), b.ID)
		assert.Error(t, err)
	})

	t.Run("admin deletes anyone's booking", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewRemoveBooking(repo, newDispatcher())
		b := seed(repo)

		assert.NoError(t, uc.Execute(context.Background(), admin, b.ID))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewRemoveBooking(repo, newDispatcher())
		b := seed(repo)

		err := uc.Execute(context.Background(), domain.Actor{ID: 99, Role: models.UserTypeUser}, b.ID)
		assert.True(t, httperr.Is(err, "not_owner"))

		_, getErr := repo.GetBooking(context.Background(), b.ID)
		assert.NoError(t, getErr)
	})

	t.Run("unknown booking", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewRemoveBooking(repo, newDispatcher())

		err := uc.Execute(context.Background(), admin, 404)
		assert.True(t, httperr.Is(err, "booking_not_found"))
	})
}

func TestSetBookingStatus(t *testing.T) {
	admin := domain.Actor{ID: 1, Role: models.UserTypeAdmin}

	t.Run("admin overwrites the status directly", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewSetBookingStatus(repo, newDispatcher())

		b := repo.addBooking(models.Booking{
			UserID:      10,
			BarberID:    1,
			BookingDate: tomorrow,
			BookingTime: "10:00",
			Status:      string(domain.StatusCompleted),
		})

		// The correction path bypasses transition guards.
		got, err := uc.Execute(context.Background(), admin, b.ID, string(domain.StatusPending))
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), got.Status)
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewSetBookingStatus(repo, newDispatcher())

		user := domain.Actor{ID: 10, Role: models.UserTypeUser}
		_, err := uc.Execute(context.Background(), user, 1, string(domain.StatusConfirmed))
		assert.True(t, httperr.Is(err, "admin_only"))
	})

	t.Run("unknown status value", func(t *testing.T) {
		repo := newMemRepo()
		uc := booking.NewSetBookingStatus(repo, newDispatcher())

		_, err := uc.Execute(context.Background(), admin, 1, "approved")
		assert.True(t, httperr.Is(err, "invalid_status"))
	})
}
