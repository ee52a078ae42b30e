package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/httpresp"
	"github.com/sharpfade/barbershop-api/internal/middleware"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/storage"
	ucBooking "github.com/sharpfade/barbershop-api/internal/usecase/booking"
)

type BarberHandler struct {
	db         *gorm.DB
	uploader   storage.Uploader
	myListUC   *ucBooking.ListBarberBookings
	completeUC *ucBooking.CompleteBooking
}

func NewBarberHandler(
	db *gorm.DB,
	uploader storage.Uploader,
	myListUC *ucBooking.ListBarberBookings,
	completeUC *ucBooking.CompleteBooking,
) *BarberHandler {
	return &BarberHandler{
		db:         db,
		uploader:   uploader,
		myListUC:   myListUC,
		completeUC: completeUC,
	}
}

// --------- Public roster ---------

// GET /api/barbers
func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list barbers")
		return
	}
	httpresp.List(c, barbers)
}

// GET /api/barbers/:id
func (h *BarberHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var b models.Barber
	if err := h.db.First(&b, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "barber not found")
		return
	}
	httpresp.OK(c, b)
}

// --------- Admin roster management ---------

type BarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Phone     string `json:"phone"`
}

// POST /api/barbers
func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b := models.Barber{
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Specialty: req.Specialty,
		Bio:       req.Bio,
		Phone:     req.Phone,
	}
	if err := h.db.Create(&b).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create barber")
		return
	}
	httpresp.Created(c, b)
}

// PUT /api/barbers/:id
func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var b models.Barber
	if err := h.db.First(&b, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "barber not found")
		return
	}

	b.Name = req.Name
	b.Email = strings.ToLower(strings.TrimSpace(req.Email))
	b.Specialty = req.Specialty
	b.Bio = req.Bio
	b.Phone = req.Phone

	if err := h.db.Save(&b).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update barber")
		return
	}
	httpresp.OK(c, b)
}

// DELETE /api/barbers/:id
func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Barber{}, id)
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "failed to delete barber")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "barber not found")
		return
	}
	httpresp.Message(c, "barber deleted")
}

// --------- Barber self-service ---------

// GET /api/barber/appointments
func (h *BarberHandler) MyAppointments(c *gin.Context) {
	bookings, err := h.myListUC.Execute(c.Request.Context(), actorFrom(c), domain.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, bookings)
}

// PATCH /api/barber/appointments/:id/complete
func (h *BarberHandler) MarkComplete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Appointment completed",
		"booking": b,
	})
}

// GET /api/barber/profile
func (h *BarberHandler) GetProfile(c *gin.Context) {
	b, ok := h.profileFor(c)
	if !ok {
		return
	}
	httpresp.OK(c, b)
}

type BarberProfileRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Phone     string `json:"phone"`
}

// POST /api/barber/profile
func (h *BarberHandler) UpdateProfile(c *gin.Context) {
	var req BarberProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, ok := h.profileFor(c)
	if !ok {
		return
	}

	if req.Name != "" {
		b.Name = req.Name
	}
	if req.Specialty != "" {
		b.Specialty = req.Specialty
	}
	b.Bio = req.Bio
	if req.Phone != "" {
		b.Phone = req.Phone
	}

	if err := h.db.Save(b).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update profile")
		return
	}
	httpresp.OK(c, b)
}

// POST /api/barber/profile/image
func (h *BarberHandler) UploadProfileImage(c *gin.Context) {
	b, ok := h.profileFor(c)
	if !ok {
		return
	}

	url, err := receiveImage(c, h.uploader, "image", "barbers")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	b.ImagePath = url
	if err := h.db.Save(b).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to save image")
		return
	}
	httpresp.OK(c, gin.H{"image_path": url})
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/barber/credentials
//
// Creates (or updates) the login account behind the barber's roster entry
// and records the explicit link.
func (h *BarberHandler) UpdateCredentials(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, ok := h.profileFor(c)
	if !ok {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to hash password")
		return
	}

	var user models.User
	err = h.db.First(&user, c.GetUint(middleware.ContextUserID)).Error
	if err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	user.Email = email
	user.PasswordHash = string(hashed)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update credentials")
		return
	}

	b.Email = email
	b.UserID = &user.ID
	if err := h.db.Save(b).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to link barber account")
		return
	}

	httpresp.Message(c, "credentials updated")
}

// profileFor loads the roster entry behind the authenticated barber
// account, matching by the explicit link first and then by email for rows
// that predate it. Reports false after writing the error.
func (h *BarberHandler) profileFor(c *gin.Context) (*models.Barber, bool) {
	userID := c.GetUint(middleware.ContextUserID)

	var b models.Barber
	if err := h.db.Where("user_id = ?", userID).First(&b).Error; err == nil {
		return &b, true
	}

	email := c.GetString(middleware.ContextUserEmail)
	if email != "" {
		if err := h.db.Where("email = ?", email).First(&b).Error; err == nil {
			return &b, true
		}
	}

	httperr.NotFound(c, "barber_profile_not_found", "no barber profile for this account")
	return nil, false
}
