package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studymind/studymind/internal/app/models/dto"
	"github.com/studymind/studymind/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the API error envelope. Messages
// attached through apperrors.CustomError reach the client; anything
// unrecognized collapses to a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	message := ""
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Note not found")))
	case errors.Is(err, apperrors.ErrCollaboratorNotFound):
		c.JSON(http.StatusNotFound, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Collaborator not found")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, orDefault(message, "Resource not found"))))
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeUnsupportedFileType, orDefault(message, "Unsupported file type"))))
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, orDefault(message, "Invalid request"))))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Permission denied")))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))
	case errors.Is(err, apperrors.ErrProcessingFailed), errors.Is(err, apperrors.ErrExtractionFailed):
		c.JSON(http.StatusInternalServerError, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeProcessingFailed, orDefault(message, "Note processing failed"))))
	default:
		c.JSON(http.StatusInternalServerError, dto.Failure(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
