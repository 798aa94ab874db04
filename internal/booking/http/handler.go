package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bharanipt/bike-rental-backend/internal/auth"
	"github.com/bharanipt/bike-rental-backend/internal/booking"
	"github.com/bharanipt/bike-rental-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Create persists a new booking owned by the authenticated caller and
// returns it with the computed total.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "access token required"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:       userID,
		BikeID:       body.BikeID,
		BikeName:     body.BikeName,
		BikeType:     body.BikeType,
		CustomerName: body.CustomerName,
		Phone:        body.Phone,
		Address:      body.Address,
		License:      body.License,
		Date:         body.Date,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		PricePerHour: body.PricePerHour,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": NewBookingResponse(b),
		"message": "Booking created successfully",
	})
}

// ListMine returns the caller's bookings, most recent first.
func (h *Handler) ListMine(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "access token required"})
		return
	}

	bookings, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"bookings": items})
}

// ListAll returns every booking across all owners with owner details
// joined in. Any valid token passes; there is no admin role check on this
// route.
func (h *Handler) ListAll(c *gin.Context) {
	bookings, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AdminBookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewAdminBookingResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"bookings": items})
}

// UpdateStatus overwrites the status of a booking owned by the caller.
// A booking owned by someone else is indistinguishable from a missing one.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status required"})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "access token required"})
		return
	}

	b, err := h.service.SetStatus(c.Request.Context(), id, userID, booking.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": NewBookingResponse(b),
		"message": "Booking status updated",
	})
}
