package handler

import (
	"log/slog"
	"net/http"

	"innkeep/internal/delivery/http/response"
	"innkeep/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler relays image uploads to the media storage backend.
type UploadHandler struct {
	uploads service.UploadService
	logger  *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uploads service.UploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uploads: uploads, logger: logger}
}

// UploadImage streams the multipart "image" part to the storage backend and
// returns the stored URL.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'image' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read uploaded file")
	}
	defer file.Close()

	result, err := h.uploads.UploadImage(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		fileHeader.Size,
		file,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Image uploaded")
}
