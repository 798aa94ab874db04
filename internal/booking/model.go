package booking

import (
	"net/http"
	"time"

	"github.com/bharanipt/bike-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTime   = apperror.New(http.StatusBadRequest, "invalid date or time format")
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s Status) bool {
	return s == StatusUpcoming || s == StatusCompleted || s == StatusCancelled
}

// Booking is a reservation of a bike for a date/time window at a fixed
// hourly rate. Bike fields are snapshotted at creation; TotalAmount is
// computed once and never recomputed.
type Booking struct {
	ID           string // UUID
	UserID       string // owner; may be a fixed demo-admin id
	BikeID       int64
	BikeName     string
	BikeType     string
	CustomerName string
	Phone        string
	Address      string
	License      string
	Date         string // 2006-01-02
	StartTime    string // 15:04
	EndTime      string // 15:04
	PricePerHour float64
	TotalAmount  float64
	Status       Status
	CreatedAt    time.Time

	// Owner name/email, populated only by ListAll via join.
	OwnerName  string
	OwnerEmail string
}
