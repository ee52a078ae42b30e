package booking_test

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sharpfade/barbershop-api/internal/audit"
	"github.com/sharpfade/barbershop-api/internal/clock"
	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
)

// Today as the fixed clock sees it; bookings use tomorrow/dayAfter.
var (
	today    = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tomorrow = "2026-08-31"
	dayAfter = "2026-09-01"
)

func fixedClock() clock.Clock {
	return clock.Fixed(today)
}

type nopSink struct{}

func (nopSink) Log(userID *uint, action, entity string, entityID *uint, metadata any) error {
	return nil
}

func newDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopSink{}, zap.NewNop())
}

// --------------------------------------------------
// In-memory registry
// --------------------------------------------------

type memRegistry struct {
	barbers map[uint]*models.Barber
	users   map[uint]*models.User
	nextID  uint
}

func newMemRegistry() *memRegistry {
	return &memRegistry{
		barbers: map[uint]*models.Barber{},
		users:   map[uint]*models.User{},
		nextID:  1,
	}
}

func (r *memRegistry) addBarber(b models.Barber) *models.Barber {
	b.ID = r.nextID
	r.nextID++
	r.barbers[b.ID] = &b
	return r.barbers[b.ID]
}

func (r *memRegistry) addUser(u models.User) *models.User {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = &u
	return r.users[u.ID]
}

func (r *memRegistry) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	if b, ok := r.barbers[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRegistry) FindBarberByUserID(_ context.Context, userID uint) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.UserID != nil && *b.UserID == userID {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRegistry) FindBarberByEmail(_ context.Context, email string) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.Email == email && email != "" {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRegistry) FindBarberByName(_ context.Context, name string) (*models.Barber, error) {
	for _, b := range r.barbers {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRegistry) CreateBarber(_ context.Context, b *models.Barber) error {
	b.ID = r.nextID
	r.nextID++
	r.barbers[b.ID] = b
	return nil
}

func (r *memRegistry) UpdateBarber(_ context.Context, b *models.Barber) error {
	r.barbers[b.ID] = b
	return nil
}

func (r *memRegistry) GetBarberUser(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok && u.UserType == models.UserTypeBarber {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

var _ domain.Registry = (*memRegistry)(nil)

// --------------------------------------------------
// In-memory booking repository
// --------------------------------------------------

type memRepo struct {
	services map[uint]*models.Service
	bookings map[uint]*models.Booking
	nextID   uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		services: map[uint]*models.Service{},
		bookings: map[uint]*models.Booking{},
		nextID:   1,
	}
}

func (r *memRepo) addService(s models.Service) *models.Service {
	s.ID = r.nextID
	r.nextID++
	r.services[s.ID] = &s
	return r.services[s.ID]
}

func (r *memRepo) addBooking(b models.Booking) *models.Booking {
	b.ID = r.nextID
	r.nextID++
	r.bookings[b.ID] = &b
	return r.bookings[b.ID]
}

func (r *memRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRepo) ListBookings(_ context.Context, filter domain.ListFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memRepo) ListUserBookings(_ context.Context, userID uint, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memRepo) ListBarberBookings(_ context.Context, barberID uint, filter domain.ListFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BarberID != barberID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memRepo) HasActiveUserBooking(_ context.Context, userID, serviceID uint, date, slot string, excludeID uint) (bool, error) {
	for _, b := range r.bookings {
		if b.ID == excludeID {
			continue
		}
		if b.UserID == userID && b.ServiceID == serviceID &&
			b.BookingDate == date && b.BookingTime == slot &&
			b.Status != string(domain.StatusCancelled) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) HasConfirmedSlot(_ context.Context, barberID uint, date, slot string, excludeID uint) (bool, error) {
	for _, b := range r.bookings {
		if b.ID == excludeID {
			continue
		}
		if b.BarberID == barberID && b.BookingDate == date &&
			b.BookingTime == slot && b.Status == string(domain.StatusConfirmed) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) ListConfirmedTimes(_ context.Context, barberID uint, date string) ([]string, error) {
	var out []string
	for _, b := range r.bookings {
		if b.BarberID == barberID && b.BookingDate == date &&
			b.Status == string(domain.StatusConfirmed) {
			out = append(out, b.BookingTime)
		}
	}
	return out, nil
}

func (r *memRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *memRepo) DeleteBooking(_ context.Context, id uint) error {
	delete(r.bookings, id)
	return nil
}

func (r *memRepo) ApproveWithCascade(_ context.Context, id uint) (*models.Booking, int64, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, 0, httperr.ErrNotFound("booking_not_found", "booking not found")
	}
	if err := domain.CanConfirm(domain.Status(b.Status)); err != nil {
		return nil, 0, err
	}

	var declined int64
	for _, other := range r.bookings {
		if other.ID == b.ID {
			continue
		}
		if other.BarberID == b.BarberID &&
			other.BookingDate == b.BookingDate &&
			other.BookingTime == b.BookingTime &&
			other.Status == string(domain.StatusPending) {
			other.Status = string(domain.StatusCancelled)
			declined++
		}
	}

	b.Status = string(domain.StatusConfirmed)
	cp := *b
	return &cp, declined, nil
}

var _ domain.Repository = (*memRepo)(nil)
