package booking

import "github.com/sharpfade/barbershop-api/internal/models"

// Actor is the authenticated identity a request acts as. It is passed
// explicitly into every operation so authorization is checkable without a
// request context.
type Actor struct {
	ID    uint
	Role  string
	Email string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.UserTypeAdmin
}

func (a Actor) IsBarber() bool {
	return a.Role == models.UserTypeBarber
}
