package http

import (
	"time"

	"github.com/bharanipt/bike-rental-backend/internal/bike"
)

type BikeResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	PricePerHour float64   `json:"pricePerHour"`
	Image        string    `json:"image"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewBikeResponse(b *bike.Bike) BikeResponse {
	return BikeResponse{
		ID:           b.ID,
		Name:         b.Name,
		Type:         string(b.Type),
		PricePerHour: b.PricePerHour,
		Image:        b.Image,
		Description:  b.Description,
		CreatedAt:    b.CreatedAt,
	}
}

type CreateBikeBody struct {
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=Gear Non-Gear"`
	PricePerHour float64 `json:"pricePerHour" binding:"required,gt=0"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
}

type UpdateBikeBody struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type" binding:"omitempty,oneof=Gear Non-Gear"`
	PricePerHour *float64 `json:"pricePerHour" binding:"omitempty,gt=0"`
	Image        *string  `json:"image"`
	Description  *string  `json:"description"`
}
