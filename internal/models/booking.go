package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	// Calendar date and slot start, kept as the shop sees them. The slot
	// template is fixed, so equality on these strings is slot equality.
	BookingDate string `gorm:"type:date;index:idx_bookings_slot" json:"booking_date"`
	BookingTime string `gorm:"size:5;index:idx_bookings_slot" json:"booking_time"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
