package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/models"
)

// statusOrder keeps actionable bookings first in every listing.
const statusOrder = `CASE
	WHEN status = 'pending' THEN 1
	WHEN status = 'confirmed' THEN 2
	WHEN status = 'completed' THEN 3
	WHEN status = 'cancelled' THEN 4
	ELSE 5
END`

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Preload("Barber").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Preload("User").
		Preload("Service").
		Preload("Barber")

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Joins("LEFT JOIN users ON users.id = bookings.user_id").
			Joins("LEFT JOIN services ON services.id = bookings.service_id").
			Joins("LEFT JOIN barbers ON barbers.id = bookings.barber_id").
			Where(
				"users.name ILIKE ? OR users.email ILIKE ? OR services.name ILIKE ? OR barbers.name ILIKE ? OR bookings.booking_date::text LIKE ?",
				like, like, like, like, like,
			)
	}

	var bookings []models.Booking
	if err := q.
		Order(statusOrder).
		Order("booking_date DESC").
		Order("booking_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListUserBookings(
	ctx context.Context,
	userID uint,
	status string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Preload("Service").
		Preload("Barber").
		Where("user_id = ?", userID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.
		Order(statusOrder).
		Order("booking_date DESC").
		Order("booking_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBarberBookings(
	ctx context.Context,
	barberID uint,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Preload("User").
		Preload("Service").
		Where("barber_id = ?", barberID)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Joins("LEFT JOIN users ON users.id = bookings.user_id").
			Joins("LEFT JOIN services ON services.id = bookings.service_id").
			Where(
				"users.name ILIKE ? OR services.name ILIKE ? OR bookings.booking_date::text LIKE ?",
				like, like, like,
			)
	}

	var bookings []models.Booking
	if err := q.
		Order(statusOrder).
		Order("booking_date DESC").
		Order("booking_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (rule checks)
// --------------------------------------------------

func (r *BookingGormRepository) HasActiveUserBooking(
	ctx context.Context,
	userID uint,
	serviceID uint,
	date string,
	slot string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"user_id = ? AND service_id = ? AND booking_date = ? AND booking_time = ? AND status <> ?",
			userID, serviceID, date, slot, string(domain.StatusCancelled),
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) HasConfirmedSlot(
	ctx context.Context,
	barberID uint,
	date string,
	slot string,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barber_id = ? AND booking_date = ? AND booking_time = ? AND status = ?",
			barberID, date, slot, string(domain.StatusConfirmed),
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) ListConfirmedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barber_id = ? AND booking_date = ? AND status = ?",
			barberID, date, string(domain.StatusConfirmed),
		).
		Order("booking_time ASC").
		Pluck("booking_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		return mapSlotConflict(err)
	}
	return nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// ApproveWithCascade runs the cascade-then-confirm sequence in one
// transaction. All approvals for a slot are serialized through an advisory
// lock keyed on the (barber, date, time) triple, so exactly one of two
// racing approvals wins; the loser re-reads its target and finds it
// cancelled. The partial unique index on confirmed slots backstops the
// invariant.
func (r *BookingGormRepository) ApproveWithCascade(
	ctx context.Context,
	id uint,
) (*models.Booking, int64, error) {

	var approved models.Booking
	var declined int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("booking_not_found", "booking not found")
			}
			return err
		}

		slotKey := fmt.Sprintf("%d|%s|%s", b.BarberID, b.BookingDate, b.BookingTime)
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			slotKey,
		).Error; err != nil {
			return err
		}

		// Re-read under the lock: a concurrent approval of a competitor
		// may have cancelled this booking while we waited.
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&b, id).Error; err != nil {
			return err
		}
		if err := domain.CanConfirm(domain.Status(b.Status)); err != nil {
			return err
		}

		res := tx.Model(&models.Booking{}).
			Where(
				"barber_id = ? AND booking_date = ? AND booking_time = ? AND status = ? AND id <> ?",
				b.BarberID, b.BookingDate, b.BookingTime, string(domain.StatusPending), b.ID,
			).
			Update("status", string(domain.StatusCancelled))
		if res.Error != nil {
			return res.Error
		}
		declined = res.RowsAffected

		b.Status = string(domain.StatusConfirmed)
		if err := tx.Save(&b).Error; err != nil {
			return mapSlotConflict(err)
		}

		approved = b
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return &approved, declined, nil
}

// mapSlotConflict turns a unique violation on the confirmed-slot index into
// the slot-taken business error.
func mapSlotConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return httperr.ErrBusiness("slot_taken", "this time slot is already booked")
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
