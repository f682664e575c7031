package controllers

import (
	"errors"
	"net/http"

	"github.com/rajsingh19/wearhouse/app/requests"
	"github.com/rajsingh19/wearhouse/app/services"
	"github.com/rajsingh19/wearhouse/pkg/ctx"
	"github.com/rajsingh19/wearhouse/pkg/logger"
)

type UploadController struct {
	service *services.UploadService
}

func NewUploadController(service *services.UploadService) *UploadController {
	return &UploadController{service: service}
}

// Upload handles POST /api/upload (multipart, field name "file"). The
// endpoint stores the image and returns its descriptor; associating it
// with a product happens in a later create/update call.
func (uc *UploadController) Upload(c *ctx.Context) {
	file, header, err := c.R.FormFile("file")
	if err != nil {
		c.Error(http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	image, err := uc.service.Upload(file, header.Size, header.Header.Get("Content-Type"))
	switch {
	case errors.Is(err, services.ErrNoFile),
		errors.Is(err, services.ErrUnsupportedType),
		errors.Is(err, services.ErrFileTooLarge):
		c.Error(http.StatusBadRequest, err.Error())
	case err != nil:
		logger.WithCtx(c.Context()).Error("upload image", "error", err)
		c.Internal()
	default:
		c.Success(map[string]any{
			"success": true,
			"image":   image,
		})
	}
}

// Delete handles DELETE /api/upload. No referential check is made; a
// product can be left pointing at a removed image.
func (uc *UploadController) Delete(c *ctx.Context) {
	var req requests.DeleteUploadRequest
	if !c.BindJSON(&req) {
		return
	}

	if err := uc.service.Delete(req.PublicID); err != nil {
		logger.WithCtx(c.Context()).Error("delete image", "public_id", req.PublicID, "error", err)
		c.Internal()
		return
	}

	logger.WithCtx(c.Context()).Info("image deleted", "public_id", req.PublicID)
	c.Success(map[string]any{"success": true})
}
