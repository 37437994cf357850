package listings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/criscode097/vacarent/internal/listing"
	"github.com/criscode097/vacarent/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	group := v1.Group("/listings")
	{
		group.GET("", h.List)
		group.GET("/stats", h.Stats)
		group.GET("/priorities", h.Priorities)
		group.GET("/:id", h.Get)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/listings")
	{
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
		group.PATCH("/:id/toggle", h.Toggle)
		group.POST("/clear-inactive", h.ClearInactive)
	}
}

func (h *Handler) List(c *gin.Context) {
	filters := listing.Filters{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}
	response.Success(c, http.StatusOK, gin.H{"listings": h.service.List(filters)})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Listing id must be an integer")
		return
	}

	item, err := h.service.Get(id)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Create(c *gin.Context) {
	var draft listing.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item := h.service.Create(c.Request.Context(), draft)
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Listing id must be an integer")
		return
	}

	var ch listing.Changes
	if err := c.ShouldBindJSON(&ch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, ch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Listing id must be an integer")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) Toggle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Listing id must be an integer")
		return
	}

	item, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) ClearInactive(c *gin.Context) {
	removed := h.service.ClearInactive(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"removed": removed})
}

func (h *Handler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Stats())
}

func (h *Handler) Priorities(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"priorities": PriorityOptions()})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrItemNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "LISTING_FAILED", "Failed to process listing")
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
