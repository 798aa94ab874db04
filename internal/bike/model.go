package bike

import (
	"net/http"
	"time"

	"github.com/bharanipt/bike-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "bike not found")
	ErrEmptyName    = apperror.New(http.StatusBadRequest, "bike name cannot be empty")
	ErrInvalidType  = apperror.New(http.StatusBadRequest, "bike type must be Gear or Non-Gear")
	ErrInvalidPrice = apperror.New(http.StatusBadRequest, "price per hour must be positive")
)

type Type string

const (
	TypeGear    Type = "Gear"
	TypeNonGear Type = "Non-Gear"
)

// ValidType reports whether t is a known bike type.
func ValidType(t Type) bool {
	return t == TypeGear || t == TypeNonGear
}

// Bike is a rentable catalog item. Bookings snapshot its fields at booking
// time, so editing or deleting a bike never affects existing bookings.
type Bike struct {
	ID           int64
	Name         string
	Type         Type
	PricePerHour float64
	Image        string
	Description  string
	CreatedAt    time.Time
}
