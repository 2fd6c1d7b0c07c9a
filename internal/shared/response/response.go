package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// ceil(total/limit)
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

type pageEnvelope struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type errorEnvelope struct {
	Error any `json:"error"`
}

// JSON writes a bare success body (single entity or plain array).
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Paginated writes a {data, meta} body for filtered list endpoints.
func Paginated(c *gin.Context, status int, data any, meta PaginationMeta) {
	c.JSON(status, pageEnvelope{Data: data, Meta: meta})
}

// Error writes {"error": ...} where the payload is either a message string
// or a list of field-level validation errors.
func Error(c *gin.Context, status int, errBody any) {
	c.JSON(status, errorEnvelope{Error: errBody})
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(204)
}
