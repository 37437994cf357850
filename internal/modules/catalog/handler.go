package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/criscode097/vacarent/internal/domain"
	"github.com/criscode097/vacarent/internal/middleware"
	"github.com/criscode097/vacarent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	props := v1.Group("/properties")
	{
		props.GET("", h.List)
		props.GET("/stats", h.Stats)
		props.GET("/:id", h.Get)
	}
	v1.GET("/property-types", h.PropertyTypes)
	v1.GET("/users", h.Users)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	// Property management is host work; guests only browse and book.
	props := protected.Group("/properties")
	props.Use(middleware.HostOnly())
	{
		props.POST("", h.Create)
		props.PATCH("/:id", h.Update)
		props.PATCH("/:id/toggle", h.Toggle)
		props.DELETE("/:id", h.Remove)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CreateProperty(req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	response.Result(c, http.StatusCreated, res)
}

func (h *Handler) List(c *gin.Context) {
	var q FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid filter parameters")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"properties": h.service.List(q)})
}

func (h *Handler) Get(c *gin.Context) {
	info, err := h.service.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		return
	}
	response.Success(c, http.StatusOK, info)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	info, err := h.service.Update(c.Param("id"), req)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Message)
		case errors.Is(err, ErrPropertyNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update property")
		}
		return
	}

	response.Success(c, http.StatusOK, info)
}

func (h *Handler) Toggle(c *gin.Context) {
	response.Result(c, http.StatusOK, h.service.Toggle(c.Param("id")))
}

func (h *Handler) Remove(c *gin.Context) {
	response.Result(c, http.StatusOK, h.service.Remove(c.Param("id")))
}

func (h *Handler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Stats())
}

func (h *Handler) PropertyTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"types": TypeOptions()})
}

func (h *Handler) Users(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		info, err := h.service.UserByEmail(email)
		if err != nil {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"user": info})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": h.service.Users(c.Query("role"), c.Query("search"))})
}
