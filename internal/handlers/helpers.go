package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/sharpfade/barbershop-api/internal/domain/booking"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/middleware"
	"github.com/sharpfade/barbershop-api/internal/storage"
)

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:    c.GetUint(middleware.ContextUserID),
		Role:  c.GetString(middleware.ContextUserRole),
		Email: c.GetString(middleware.ContextUserEmail),
	}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// receiveImage pulls a multipart file field, normalizes it to WebP and
// stores it under a fresh key in the given folder. Returns the public URL.
func receiveImage(
	c *gin.Context,
	uploader storage.Uploader,
	field string,
	folder string,
) (string, error) {

	fh, err := c.FormFile(field)
	if err != nil {
		return "", httperr.ErrValidation("missing_file", field, "no file uploaded")
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	body, err := storage.NormalizeImage(f)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.webp", folder, uuid.NewString())
	return uploader.Upload(c.Request.Context(), key, body, "image/webp")
}
