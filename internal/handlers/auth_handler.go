package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sharpfade/barbershop-api/internal/config"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/httpresp"
	"github.com/sharpfade/barbershop-api/internal/middleware"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/storage"
	"github.com/sharpfade/barbershop-api/internal/validators"
	"github.com/sharpfade/barbershop-api/internal/verification"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	store    *verification.Store
	mailer   verification.Mailer
	uploader storage.Uploader
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	store *verification.Store,
	mailer verification.Mailer,
	uploader storage.Uploader,
) *AuthHandler {
	return &AuthHandler{
		db:       db,
		config:   cfg,
		store:    store,
		mailer:   mailer,
		uploader: uploader,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

type ResetWithOTPRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "the email domain does not appear to be valid")
		return
	}

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
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hashed),
		UserType:     models.UserTypeUser,
	}
	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create user")
		return
	}

	code, err := h.store.IssueVerificationCode(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to issue verification code")
		return
	}
	_ = h.mailer.SendVerificationCode(email, code)

	c.JSON(http.StatusCreated, gin.H{
		"message": "registered; check your email for a verification code",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ok, err := h.store.ConsumeVerificationCode(c.Request.Context(), email, req.Code)
	if err != nil {
		httperr.Internal(c, "internal_error", "verification failed")
		return
	}
	if !ok {
		httperr.Unprocessable(c, "invalid_code", "invalid or expired verification code")
		return
	}

	now := time.Now()
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("email_verified_at", &now).Error; err != nil {
		httperr.Internal(c, "internal_error", "verification failed")
		return
	}

	httpresp.Message(c, "email verified, you can now log in")
}

func (h *AuthHandler) ResendVerify(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		// Same response either way; don't leak which emails exist.
		httpresp.Message(c, "if the account exists, a new code has been sent")
		return
	}
	if user.IsVerified() {
		httpresp.Message(c, "this account is already verified")
		return
	}

	if code, err := h.store.IssueVerificationCode(c.Request.Context(), email); err == nil {
		_ = h.mailer.SendVerificationCode(email, code)
	}

	httpresp.Message(c, "if the account exists, a new code has been sent")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
		return
	}

	if !user.IsVerified() {
		if code, err := h.store.IssueVerificationCode(c.Request.Context(), email); err == nil {
			_ = h.mailer.SendVerificationCode(email, code)
		}
		httperr.Forbidden(c, "email_not_verified", "verify your email first; a new code has been sent")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"user_type": user.UserType,
			"avatar":    user.Avatar,
		},
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)
	if token != "" {
		_ = h.store.RevokeToken(c.Request.Context(), token, tokenTTL)
	}
	httpresp.Message(c, "logged out")
}

func (h *AuthHandler) Me(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, c.GetUint(middleware.ContextUserID)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}
	httpresp.OK(c, user)
}

func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, c.GetUint(middleware.ContextUserID)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Username != "" {
		user.Username = req.Username
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update profile")
		return
	}
	httpresp.OK(c, user)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, c.GetUint(middleware.ContextUserID)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.Unprocessable(c, "wrong_password", "current password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to hash password")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to change password")
		return
	}

	// Force re-login with the new password.
	if token := c.GetString(middleware.ContextToken); token != "" {
		_ = h.store.RevokeToken(c.Request.Context(), token, tokenTTL)
	}

	httpresp.Message(c, "password changed, please log in again")
}

func (h *AuthHandler) AvatarUpload(c *gin.Context) {
	url, err := receiveImage(c, h.uploader, "avatar", "avatars")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", c.GetUint(middleware.ContextUserID)).
		Update("avatar", url).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to save avatar")
		return
	}

	httpresp.OK(c, gin.H{"avatar": url})
}

// --------- Password reset (OTP) ---------

func (h *AuthHandler) SendResetOTP(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		if otp, err := h.store.IssueResetOTP(c.Request.Context(), email); err == nil {
			_ = h.mailer.SendResetOTP(email, otp)
		}
	}

	httpresp.Message(c, "if an account exists, an OTP has been sent")
}

func (h *AuthHandler) VerifyResetOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ok, err := h.store.CheckResetOTP(c.Request.Context(), email, req.OTP)
	if err != nil {
		httperr.Internal(c, "internal_error", "verification failed")
		return
	}
	if !ok {
		httperr.Unprocessable(c, "invalid_otp", "invalid or expired OTP")
		return
	}

	httpresp.Message(c, "OTP verified")
}

func (h *AuthHandler) ResetWithOTP(c *gin.Context) {
	var req ResetWithOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	ok, err := h.store.ConsumeResetOTP(c.Request.Context(), email, req.OTP)
	if err != nil {
		httperr.Internal(c, "internal_error", "reset failed")
		return
	}
	if !ok {
		httperr.Unprocessable(c, "invalid_otp", "invalid or expired OTP")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "internal_error", "failed to hash password")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "internal_error", "reset failed")
		return
	}

	httpresp.Message(c, "password has been reset")
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"role":  user.UserType,
		"email": user.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
