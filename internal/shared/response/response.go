package response

import (
	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// Envelope is the uniform result shape for every endpoint.
type Envelope struct {
	Success      bool        `json:"success"`
	StatusCode   int         `json:"statusCode"`
	Message      string      `json:"message"`
	Data         any         `json:"data,omitempty"`
	Pagination   *Pagination `json:"pagination,omitempty"`
	ErrorDetails []string    `json:"errorDetails,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

func SuccessPage(c *gin.Context, status int, message string, data any, pagination Pagination) {
	c.JSON(status, Envelope{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
	})
}

func Error(c *gin.Context, status int, message string, details []string) {
	c.JSON(status, Envelope{
		Success:      false,
		StatusCode:   status,
		Message:      message,
		ErrorDetails: details,
	})
}
