package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodrecall/backend/internal/domain"
	"github.com/foodrecall/backend/internal/usecase"
)

// RecallChecker is the slice of the recall service the handlers need
type RecallChecker interface {
	SearchByBarcode(ctx context.Context, barcode, countryOverride string) (*domain.LookupResult, error)
	SearchByText(ctx context.Context, query, countryOverride string) ([]domain.RecallRecord, error)
	SetCountry(code string)
	Country() string
	ClearCache(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recalls RecallChecker
}

// NewHandler creates a new HTTP handler
func NewHandler(recalls RecallChecker) *Handler {
	return &Handler{recalls: recalls}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "foodrecall-backend",
		"version": "1.0.0",
	})
}

// CheckBarcode handles GET /api/v1/recalls/:barcode
func (h *Handler) CheckBarcode(c *gin.Context) {
	barcode, err := usecase.ValidateBarcode(c.Param("barcode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid barcode"})
		return
	}

	result, err := h.recalls.SearchByBarcode(c.Request.Context(), barcode, c.Query("country"))
	if err != nil {
		h.terminalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchRecalls handles GET /api/v1/recalls/search
func (h *Handler) SearchRecalls(c *gin.Context) {
	query := usecase.ValidateSearchQuery(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no query entered"})
		return
	}

	recalls, err := h.recalls.SearchByText(c.Request.Context(), query, c.Query("country"))
	if err != nil {
		h.terminalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recalls": recalls})
}

// countryRequest is the body of PUT /api/v1/settings/country
type countryRequest struct {
	Country string `json:"country" binding:"required"`
}

// SetCountry handles PUT /api/v1/settings/country
func (h *Handler) SetCountry(c *gin.Context) {
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "country is required"})
		return
	}

	h.recalls.SetCountry(req.Country)
	c.JSON(http.StatusOK, gin.H{"country": h.recalls.Country()})
}

// ClearCache handles DELETE /api/v1/cache
func (h *Handler) ClearCache(c *gin.Context) {
	if err := h.recalls.ClearCache(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cache"})
		return
	}
	c.Status(http.StatusNoContent)
}

// terminalError maps the service's two terminal errors to a generic retry
// response. Clients get no structured detail beyond the message.
func (h *Handler) terminalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecallCheckFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": domain.ErrRecallCheckFailed.Error()})
	case errors.Is(err, domain.ErrRecallSearchFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": domain.ErrRecallSearchFailed.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, try again"})
	}
}
