package http

import (
	"time"

	"github.com/bharanipt/bike-rental-backend/internal/booking"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	BikeID       int64     `json:"bikeId"`
	BikeName     string    `json:"bikeName"`
	BikeType     string    `json:"bikeType"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	License      string    `json:"license"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	PricePerHour float64   `json:"pricePerHour"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		BikeID:       b.BikeID,
		BikeName:     b.BikeName,
		BikeType:     b.BikeType,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Address:      b.Address,
		License:      b.License,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		PricePerHour: b.PricePerHour,
		TotalAmount:  b.TotalAmount,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

// OwnerTag identifies the booking owner in the cross-owner listing.
type OwnerTag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminBookingResponse is a booking with its owner joined in, returned by
// the cross-owner listing.
type AdminBookingResponse struct {
	BookingResponse
	Owner OwnerTag `json:"owner"`
}

func NewAdminBookingResponse(b *booking.Booking) AdminBookingResponse {
	return AdminBookingResponse{
		BookingResponse: NewBookingResponse(b),
		Owner: OwnerTag{
			ID:    b.UserID,
			Name:  b.OwnerName,
			Email: b.OwnerEmail,
		},
	}
}

type CreateBookingBody struct {
	BikeID       int64   `json:"bikeId" binding:"required"`
	BikeName     string  `json:"bikeName" binding:"required"`
	BikeType     string  `json:"bikeType" binding:"required"`
	CustomerName string  `json:"customerName" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	License      string  `json:"license" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	StartTime    string  `json:"startTime" binding:"required"`
	EndTime      string  `json:"endTime" binding:"required"`
	PricePerHour float64 `json:"pricePerHour" binding:"required,gt=0"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required"`
}
