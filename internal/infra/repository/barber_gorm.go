package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/models"
)

type BarberGormRegistry struct {
	db *gorm.DB
}

func NewBarberGormRegistry(db *gorm.DB) *BarberGormRegistry {
	return &BarberGormRegistry{db: db}
}

func (r *BarberGormRegistry) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BarberGormRegistry) FindBarberByUserID(
	ctx context.Context,
	userID uint,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BarberGormRegistry) FindBarberByEmail(
	ctx context.Context,
	email string,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BarberGormRegistry) FindBarberByName(
	ctx context.Context,
	name string,
) (*models.Barber, error) {

	var b models.Barber
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BarberGormRegistry) CreateBarber(
	ctx context.Context,
	b *models.Barber,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BarberGormRegistry) UpdateBarber(
	ctx context.Context,
	b *models.Barber,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BarberGormRegistry) GetBarberUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_type = ?", id, models.UserTypeBarber).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Compile-time check
var _ domain.Registry = (*BarberGormRegistry)(nil)
