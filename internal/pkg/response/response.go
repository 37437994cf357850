package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/criscode097/vacarent/internal/domain"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// Result forwards an operational outcome. A failed outcome is still a valid
// request, so it maps to 409 rather than a validation error status.
func Result(c *gin.Context, okStatus int, res domain.Result) {
	if res.Success {
		Success(c, okStatus, res)
		return
	}
	c.JSON(http.StatusConflict, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "OPERATION_FAILED",
			"message": res.Message,
		},
	})
}
