package booking

import (
	"context"

	"github.com/sharpfade/barbershop-api/internal/models"
)

type ListFilter struct {
	Status string
	Search string
}

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, error)

	ListUserBookings(
		ctx context.Context,
		userID uint,
		status string,
	) ([]models.Booking, error)

	ListBarberBookings(
		ctx context.Context,
		barberID uint,
		filter ListFilter,
	) ([]models.Booking, error)

	// -------- Booking (rule checks) --------

	// HasActiveUserBooking reports whether the user already holds a
	// non-cancelled booking for the same service, date and time.
	// excludeID skips the booking being updated; zero excludes nothing.
	HasActiveUserBooking(
		ctx context.Context,
		userID uint,
		serviceID uint,
		date string,
		slot string,
		excludeID uint,
	) (bool, error)

	// HasConfirmedSlot reports whether a confirmed booking already holds
	// the (barber, date, slot) triple.
	HasConfirmedSlot(
		ctx context.Context,
		barberID uint,
		date string,
		slot string,
		excludeID uint,
	) (bool, error)

	// ListConfirmedTimes returns the slot starts occupied by confirmed
	// bookings for the barber on the given date.
	ListConfirmedTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	// -------- Booking (write) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// ApproveWithCascade confirms the booking and cancels every other
	// pending booking for the same (barber, date, slot), atomically and
	// serialized per slot. Returns the confirmed booking and the number
	// of competitors cancelled.
	ApproveWithCascade(
		ctx context.Context,
		id uint,
	) (*models.Booking, int64, error)
}

// Registry is the lookup surface the identity resolver works against.
type Registry interface {
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	FindBarberByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Barber, error)

	FindBarberByEmail(
		ctx context.Context,
		email string,
	) (*models.Barber, error)

	FindBarberByName(
		ctx context.Context,
		name string,
	) (*models.Barber, error)

	CreateBarber(
		ctx context.Context,
		b *models.Barber,
	) error

	UpdateBarber(
		ctx context.Context,
		b *models.Barber,
	) error

	// GetBarberUser returns the user with the given id only when its
	// account type is barber.
	GetBarberUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)
}
