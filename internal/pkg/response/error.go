package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharanipt/bike-rental-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Error sends a JSON error response.
// AppErrors carry their own status code; anything else is treated as an
// unexpected failure and surfaced as a generic 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Message: appErr.Message})
		return
	}

	// Keep internal details out of the response body; the recovery and
	// request logging middleware record the cause server-side.
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "server error"})
}
