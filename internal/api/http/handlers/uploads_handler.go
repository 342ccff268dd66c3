package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/storage"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

const uploadField = "files"

// UploadsHandler accepts ticket and message attachments.
type UploadsHandler struct {
	disk   *storage.Disk
	logger *zap.Logger
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(disk *storage.Disk, logger *zap.Logger) *UploadsHandler {
	return &UploadsHandler{disk: disk, logger: logger}
}

// Upload POST /api/uploads with one or more multipart "files".
func (h *UploadsHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return apperrors.NewValidationError("multipart form expected", nil)
	}
	headers := form.File[uploadField]
	if len(headers) == 0 {
		return apperrors.NewValidationError("no files uploaded", map[string]any{uploadField: "required"})
	}

	for _, header := range headers {
		if err := h.disk.Check(header); err != nil {
			return uploadError(err, header.Filename)
		}
	}

	saved := make([]domain.Attachment, 0, len(headers))
	for _, header := range headers {
		attachment, err := h.disk.Save(uploadField, header)
		if err != nil {
			h.discard(saved)
			return uploadError(err, header.Filename)
		}
		h.logger.Debug("attachment stored", zap.String("url", attachment.URL), zap.String("type", string(attachment.Type)))
		saved = append(saved, attachment)
	}

	out := make([]dto.AttachmentPayload, 0, len(saved))
	for _, attachment := range saved {
		out = append(out, dto.AttachmentPayload{Type: string(attachment.Type), URL: attachment.URL})
	}
	return c.Status(http.StatusCreated).JSON(out)
}

// discard removes files stored earlier in a request that failed.
func (h *UploadsHandler) discard(saved []domain.Attachment) {
	for _, attachment := range saved {
		if err := h.disk.Remove(attachment); err != nil {
			h.logger.Warn("failed to remove partial upload", zap.String("url", attachment.URL), zap.Error(err))
		}
	}
}

func uploadError(err error, filename string) error {
	if errors.Is(err, storage.ErrUnsupportedType) || errors.Is(err, storage.ErrTooLarge) {
		return apperrors.NewValidationError(err.Error(), map[string]any{"arquivo": filename})
	}
	return apperrors.NewInternalError(err)
}
