package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirankumarashokpatil/battery-swapping-marine-vessels/internal/api/models"
)

// ErrorHandler recovers panics from handlers and renders them as the
// same structured JSON error envelope a normal error path returns.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "an unexpected error occurred"
		if err, ok := recovered.(string); ok {
			message = err
		} else if err, ok := recovered.(error); ok {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
