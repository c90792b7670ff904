package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendapro/agendapro-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response. AppErrors choose their own status
// code; anything else becomes a 500 with a generic message.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// NoticeResponse carries a non-error informational message.
type NoticeResponse struct {
	Message string `json:"message"`
}

// Notice sends an informational message where an endpoint has nothing
// else to return (e.g. "nothing to export").
func Notice(c *gin.Context, code int, message string) {
	c.JSON(code, NoticeResponse{Message: message})
}
