package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/httpresp"
	ucBooking "github.com/sharpfade/barbershop-api/internal/usecase/booking"
)

type BookingHandler struct {
	createUC    *ucBooking.CreateBooking
	updateUC    *ucBooking.UpdateBooking
	setStatusUC *ucBooking.SetBookingStatus
	removeUC    *ucBooking.RemoveBooking
	listUC      *ucBooking.ListBookings
	slotsUC     *ucBooking.GetAvailableSlots
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBooking,
	setStatusUC *ucBooking.SetBookingStatus,
	removeUC *ucBooking.RemoveBooking,
	listUC *ucBooking.ListBookings,
	slotsUC *ucBooking.GetAvailableSlots,
) *BookingHandler {
	return &BookingHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		setStatusUC: setStatusUC,
		removeUC:    removeUC,
		listUC:      listUC,
		slotsUC:     slotsUC,
	}
}

// --------- Requests ---------

type BookingRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	BarberID    uint   `json:"barber_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

// GET /api/bookings
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context(), domain.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, bookings)
}

// GET /api/bookings/my
func (h *BookingHandler) My(c *gin.Context) {
	bookings, err := h.listUC.ForUser(c.Request.Context(), actorFrom(c), c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, bookings)
}

// GET /api/bookings/:id
func (h *BookingHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.listUC.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), actorFrom(c), ucBooking.CreateBookingInput{
		ServiceID:   req.ServiceID,
		BarberRawID: req.BarberID,
		Date:        req.BookingDate,
		Time:        req.BookingTime,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"booking": b})
}

// PUT /api/bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.updateUC.Execute(c.Request.Context(), actorFrom(c), ucBooking.UpdateBookingInput{
		BookingID:   id,
		ServiceID:   req.ServiceID,
		BarberRawID: req.BarberID,
		Date:        req.BookingDate,
		Time:        req.BookingTime,
		Notes:       req.Notes,
		Status:      req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

// PATCH /api/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.setStatusUC.Execute(c.Request.Context(), actorFrom(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

// DELETE /api/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "booking deleted")
}

// GET /api/available-slots?barber_id=&date=
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id must be a number")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), uint(barberID), c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"available_slots": slots})
}
