package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/httpresp"
	"github.com/sharpfade/barbershop-api/internal/models"
	ucBooking "github.com/sharpfade/barbershop-api/internal/usecase/booking"
)

type AdminHandler struct {
	db        *gorm.DB
	listUC    *ucBooking.ListBookings
	approveUC *ucBooking.ApproveBooking
	declineUC *ucBooking.DeclineBooking
}

func NewAdminHandler(
	db *gorm.DB,
	listUC *ucBooking.ListBookings,
	approveUC *ucBooking.ApproveBooking,
	declineUC *ucBooking.DeclineBooking,
) *AdminHandler {
	return &AdminHandler{
		db:        db,
		listUC:    listUC,
		approveUC: approveUC,
		declineUC: declineUC,
	}
}

// --------- Appointments ---------

// GET /api/admin/appointments
func (h *AdminHandler) ListAppointments(c *gin.Context) {
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

// PATCH /api/admin/appointments/:id/approve
func (h *AdminHandler) ApproveAppointment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, declined, err := h.approveUC.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	msg := "Appointment approved"
	if declined > 0 {
		msg = fmt.Sprintf("Appointment approved (%d conflicting appointment(s) automatically declined)", declined)
	}

	httpresp.OK(c, gin.H{
		"message":        msg,
		"booking":        b,
		"declined_count": declined,
	})
}

// PATCH /api/admin/appointments/:id/decline
func (h *AdminHandler) DeclineAppointment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.declineUC.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Appointment declined",
		"booking": b,
	})
}

// --------- Users ---------

type AdminUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	q := h.db.Model(&models.User{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}
	if role := c.Query("user_type"); role != "" {
		q = q.Where("user_type = ?", role)
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list users")
		return
	}
	httpresp.List(c, users)
}

// POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req AdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if req.Password == "" {
		httperr.BadRequest(c, "invalid_request", "password is required")
		return
	}

	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeUser
	}
	switch userType {
	case models.UserTypeAdmin, models.UserTypeBarber, models.UserTypeUser:
	default:
		httperr.Unprocessable(c, "invalid_user_type", "unknown account type")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Unprocessable(c, "email_already_registered", "an account with this email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to hash password")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		UserType:     userType,
	}
	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create user")
		return
	}

	httpresp.Created(c, user)
}

// PUT /api/admin/users/:id
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	user.Name = req.Name
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.UserType != "" {
		switch req.UserType {
		case models.UserTypeAdmin, models.UserTypeBarber, models.UserTypeUser:
			user.UserType = req.UserType
		default:
			httperr.Unprocessable(c, "invalid_user_type", "unknown account type")
			return
		}
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "internal_error", "failed to hash password")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update user")
		return
	}
	httpresp.OK(c, user)
}

// DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.User{}, id)
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "failed to delete user")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}
	httpresp.Message(c, "user deleted")
}
