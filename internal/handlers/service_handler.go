package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/httpresp"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/storage"
)

type ServiceHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
}

func NewServiceHandler(db *gorm.DB, uploader storage.Uploader) *ServiceHandler {
	return &ServiceHandler{db: db, uploader: uploader}
}

// GET /api/services
func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to list services")
		return
	}
	httpresp.List(c, services)
}

// GET /api/services/:id
func (h *ServiceHandler) Show(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "service not found")
		return
	}
	httpresp.OK(c, svc)
}

// POST /api/services  (multipart: fields + optional image)
func (h *ServiceHandler) Create(c *gin.Context) {
	svc, ok := h.serviceFromForm(c, &models.Service{})
	if !ok {
		return
	}

	if err := h.db.Create(svc).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to create service")
		return
	}
	httpresp.Created(c, svc)
}

// PUT /api/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var existing models.Service
	if err := h.db.First(&existing, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "service not found")
		return
	}

	svc, ok := h.serviceFromForm(c, &existing)
	if !ok {
		return
	}

	if err := h.db.Save(svc).Error; err != nil {
		httperr.Internal(c, "internal_error", "failed to update service")
		return
	}
	httpresp.OK(c, svc)
}

// DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Internal(c, "internal_error", "failed to delete service")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "service not found")
		return
	}
	httpresp.Message(c, "service deleted")
}

// serviceFromForm fills svc from multipart form fields, uploading a new
// image when one is attached. Reports false after writing the error.
func (h *ServiceHandler) serviceFromForm(c *gin.Context, svc *models.Service) (*models.Service, bool) {
	name := c.PostForm("name")
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "name is required")
		return nil, false
	}
	svc.Name = name
	svc.Description = c.PostForm("description")

	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			httperr.Unprocessable(c, "invalid_price", "price must be a non-negative number")
			return nil, false
		}
		svc.Price = price
	}
	if v := c.PostForm("duration_min"); v != "" {
		dur, err := strconv.Atoi(v)
		if err != nil || dur <= 0 {
			httperr.Unprocessable(c, "invalid_duration", "duration_min must be a positive number")
			return nil, false
		}
		svc.DurationMin = dur
	}

	if _, err := c.FormFile("image"); err == nil {
		url, err := receiveImage(c, h.uploader, "image", "services")
		if err != nil {
			httperr.Respond(c, err)
			return nil, false
		}
		svc.ImagePath = url
	}

	return svc, true
}
