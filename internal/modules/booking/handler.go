package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/pkg/response"
	"github.com/criscode097/vacarent/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	bookings := v1.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.POST("/quote", h.Quote)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/bookings", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must use the YYYY-MM-DD format", fields)
		return
	}

	info, err := h.service.Create(c.GetString("user_id"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, info)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must use the YYYY-MM-DD format", fields)
		return
	}

	quote, err := h.service.Quote(req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, quote)
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"bookings": h.service.List()})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, ErrPropertyNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
	case errors.Is(err, ErrGuestNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guest not found")
	case errors.Is(err, ErrGuestsOnly):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only guest accounts can book")
	case errors.Is(err, domain.ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out must be after check-in")
	case errors.As(err, &verr):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
	default:
		response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to create booking")
	}
}
