package response

import (
	"errors"
	"net/http"

	"github.com/GreenRoute/service-ecoroute/internal/domain/route"
	"github.com/gin-gonic/gin"
)

// Success writes the payload as-is with a 200 status.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the payload as-is with a 201 status.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Paginated writes a paginated list envelope.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// BadRequest writes a 400 with an {error} body.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps a pipeline error to its HTTP status and writes an {error} body.
// Validation and upstream-input failures are client errors; everything
// unexpected is a 500.
func Error(c *gin.Context, err error) {
	var domainErr *route.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(statusForCode(domainErr.Code), gin.H{"error": domainErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func statusForCode(code string) int {
	switch code {
	case route.CodeValidation, route.CodeRouteUnavailable, route.CodeEnergyUnavailable:
		return http.StatusBadRequest
	case route.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
