package booking

import (
	"time"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
)

const dateLayout = "2006-01-02"

// validateSlotRequest checks the date format, that the time names a
// template slot, and the one-day minimum lead time (a booking for today is
// rejected, tomorrow is the earliest). slot may be empty for date-only
// checks.
func validateSlotRequest(date, slot string, now time.Time) error {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return httperr.ErrValidation(
			"invalid_date",
			"booking_date",
			"booking date must be in YYYY-MM-DD format",
		)
	}

	if slot != "" && !domain.IsSlotStart(slot) {
		return httperr.ErrValidation(
			"invalid_time",
			"booking_time",
			"booking time must be the start of an offered slot",
		)
	}

	today := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0,
		now.Location(),
	)
	if !d.After(today) {
		return httperr.ErrBusinessField(
			"date_not_in_future",
			"booking_date",
			"the booking date must be tomorrow or later",
		)
	}

	return nil
}
