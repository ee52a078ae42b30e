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

func newCreateUC(repo *memRepo, reg *memRegistry) *booking.CreateBooking {
	return booking.NewCreateBooking(repo, barber.NewResolver(reg), fixedClock(), newDispatcher())
}

func TestCreateBooking(t *testing.T) {
	client := domain.Actor{ID: 50, Role: models.UserTypeUser}

	setup := func() (*memRepo, *memRegistry, *models.Service, *models.Barber) {
		repo := newMemRepo()
		reg := newMemRegistry()
		svc := repo.addService(models.Service{Name: "Haircut", Price: 45, DurationMin: 45})
		brb := reg.addBarber(models.Barber{Name: "Marcus Johnson"})
		return repo, reg, svc, brb
	}

	t.Run("creates a pending booking", func(t *testing.T) {
		repo, reg, svc, brb := setup()
		uc := newCreateUC(repo, reg)

		b, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: brb.ID,
			Date:        tomorrow,
			Time:        "10:00",
			Notes:       "first visit",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), b.Status)
		assert.Equal(t, client.ID, b.UserID)
		assert.Equal(t, brb.ID, b.BarberID)
		assert.Equal(t, tomorrow, b.BookingDate)
		assert.Equal(t, "10:00", b.BookingTime)
		assert.NotZero(t, b.ID)
	})

	t.Run("rejects today and past dates", func(t *testing.T) {
		repo, reg, svc, brb := setup()
		uc := newCreateUC(repo, reg)

		for _, date := range []string{"2026-08-30", "2026-08-29"} {
			_, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
				ServiceID:   svc.ID,
				BarberRawID: brb.ID,
				Date:        date,
				Time:        "08:00",
			})
			assert.True(t, httperr.Is(err, "date_not_in_future"), "date %s", date)
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		repo, reg, svc, brb := setup()
		uc := newCreateUC(repo, reg)

		_, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: brb.ID,
			Date:        "31-08-2026",
			Time:        "08:00",
		})
		assert.True(t, httperr.Is(err, "invalid_date"))
	})

	t.Run("rejects a time outside the slot template", func(t *testing.T) {
		repo, reg, svc, brb := setup()
		uc := newCreateUC(repo, reg)

		for _, tm := range []string{"09:00", "11:30", "19:00"} {
			_, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
				ServiceID:   svc.ID,
				BarberRawID: brb.ID,
				Date:        tomorrow,
				Time:        tm,
			})
			assert.True(t, httperr.Is(err, "invalid_time"), "time %q", tm)
		}
	})

	t.Run("rejects unknown service", func(t *testing.T) {
		repo, reg, _, brb := setup()
		uc := newCreateUC(repo, reg)

		_, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   999,
			BarberRawID: brb.ID,
			Date:        tomorrow,
			Time:        "08:00",
		})
		assert.True(t, httperr.Is(err, "service_not_found"))
	})

	t.Run("rejects unknown barber", func(t *testing.T) {
		repo, reg, svc, _ := setup()
		uc := newCreateUC(repo, reg)

		_, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: 999,
			Date:        tomorrow,
			Time:        "08:00",
		})
		assert.True(t, httperr.Is(err, "barber_not_found"))
	})

	t.Run("rejects a duplicate active request", func(t *testing.T) {
		repo, reg, svc, brb := setup()
		uc := newCreateUC(repo, reg)

		in := booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: brb.ID,
			Date:        tomorrow,
			Time:        "13:00",
		}
		_, err := uc.Execute(context.Background(), client, in)
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), client, in)
		assert.True(t, httperr.Is(err, "duplicate_booking"))
	})

	t.Run("cancelled booking frees the combination", func(t *testing.T) {
		repo, reg, svc, brb := setup()
		uc := newCreateUC(repo, reg)

		repo.addBooking(models.Booking{
			UserID:      client.ID,
			ServiceID:   svc.ID,
			BarberID:    brb.ID,
			BookingDate: tomorrow,
			BookingTime: "13:00",
			Status:      string(domain.StatusCancelled),
		})

		_, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: brb.ID,
			Date:        tomorrow,
			Time:        "13:00",
		})
		assert.NoError(t, err)
	})

	t.Run("confirmed slot blocks new requests", func(t *testing.T) {
		repo, reg, svc, brb := setup()
		uc := newCreateUC(repo, reg)

		repo.addBooking(models.Booking{
			UserID:      77,
			ServiceID:   svc.ID,
			BarberID:    brb.ID,
			BookingDate: tomorrow,
			BookingTime: "15:00",
			Status:      string(domain.StatusConfirmed),
		})

		_, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: brb.ID,
			Date:        tomorrow,
			Time:        "15:00",
		})
		assert.True(t, httperr.Is(err, "slot_taken"))
	})

	t.Run("competing pending requests are allowed", func(t *testing.T) {
		repo, reg, svc, brb := setup()
		uc := newCreateUC(repo, reg)

		repo.addBooking(models.Booking{
			UserID:      77,
			ServiceID:   svc.ID,
			BarberID:    brb.ID,
			BookingDate: tomorrow,
			BookingTime: "15:00",
			Status:      string(domain.StatusPending),
		})

		b, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: brb.ID,
			Date:        tomorrow,
			Time:        "15:00",
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), b.Status)
	})

	t.Run("resolves a barber account id and provisions a roster entry", func(t *testing.T) {
		repo, reg, svc, _ := setup()
		uc := newCreateUC(repo, reg)

		acct := reg.addUser(models.User{
			Name:     "Diego Costa",
			Email:    "diego@sharpfade.com",
			UserType: models.UserTypeBarber,
		})

		b, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: acct.ID,
			Date:        tomorrow,
			Time:        "17:00",
		})
		require.NoError(t, err)

		created, err := reg.FindBarberByUserID(context.Background(), acct.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, b.BarberID)
		assert.Equal(t, "Diego Costa", created.Name)
		assert.Equal(t, "Expert Barber", created.Specialty)
	})

	t.Run("regular user id does not resolve as a barber", func(t *testing.T) {
		repo, reg, svc, _ := setup()
		uc := newCreateUC(repo, reg)

		acct := reg.addUser(models.User{
			Name:     "Just A Client",
			Email:    "client@example.com",
			UserType: models.UserTypeUser,
		})

		_, err := uc.Execute(context.Background(), client, booking.CreateBookingInput{
			ServiceID:   svc.ID,
			BarberRawID: acct.ID,
			Date:        tomorrow,
			Time:        "17:00",
		})
		assert.True(t, httperr.Is(err, "barber_not_found"))
		// no roster entry provisioned for the failed resolution
		assert.Len(t, reg.barbers, 1)
	})
}
