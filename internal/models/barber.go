package models

import "time"

// Barber is the roster entry clients book against. Seeded barbers have no
// login account; UserID links the ones that do.
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `gorm:"index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Email     string `gorm:"size:100" json:"email"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Bio       string `gorm:"size:500" json:"bio"`
	Phone     string `gorm:"size:20" json:"phone"`
	ImagePath string `gorm:"size:255" json:"image_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
