package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bharanipt/bike-rental-backend/internal/bike"
	"github.com/bharanipt/bike-rental-backend/internal/pkg/response"
)

type Handler struct {
	service bike.Service
}

func NewHandler(service bike.Service) *Handler {
	return &Handler{service: service}
}

func parseBikeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid bike id"})
		return 0, false
	}
	return id, true
}

// List returns the full catalog. Public.
func (h *Handler) List(c *gin.Context) {
	bikes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BikeResponse, len(bikes))
	for i, b := range bikes {
		items[i] = NewBikeResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"bikes": items})
}

// Get returns a single bike. Public.
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseBikeID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bike": NewBikeResponse(b)})
}

// Create adds a bike to the catalog. Admin only.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBikeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), bike.CreateRequest{
		Name:         body.Name,
		Type:         bike.Type(body.Type),
		PricePerHour: body.PricePerHour,
		Image:        body.Image,
		Description:  body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bike": NewBikeResponse(b)})
}

// Update edits catalog fields. Admin only.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseBikeID(c)
	if !ok {
		return
	}

	var body UpdateBikeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	var bikeType *bike.Type
	if body.Type != nil {
		t := bike.Type(*body.Type)
		bikeType = &t
	}

	b, err := h.service.Update(c.Request.Context(), id, bike.UpdateRequest{
		Name:         body.Name,
		Type:         bikeType,
		PricePerHour: body.PricePerHour,
		Image:        body.Image,
		Description:  body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bike": NewBikeResponse(b)})
}

// Delete removes a bike from the catalog. Admin only. Existing bookings
// keep their snapshot of the bike.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseBikeID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
