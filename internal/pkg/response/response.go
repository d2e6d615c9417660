package response

import (
	"math"

	"github.com/gin-gonic/gin"
)

// Pagination is echoed back on every list endpoint.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

func OK(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func OKWithMessage(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func Paginated(c *gin.Context, statusCode int, data interface{}, p Pagination) {
	c.JSON(statusCode, gin.H{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// Internal carries a diagnostic string alongside the user-facing message.
func Internal(c *gin.Context, statusCode int, message, diagnostic string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
		"error":   diagnostic,
	})
}
